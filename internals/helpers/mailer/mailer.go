package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"ikk_backend/internals/configs"
)

// SendMail mengirim email notifikasi via SMTP. Kalau SMTP belum dikonfigurasi,
// hanya dicatat di log supaya flow approval tidak gagal gara-gara email.
func SendMail(to, subject, body string) error {
	if strings.TrimSpace(configs.SMTPHost) == "" {
		log.Printf("[MAIL] SMTP belum diset, skip kirim ke %s (%s)", to, subject)
		return nil
	}

	addr := configs.SMTPHost + ":" + configs.SMTPPort
	auth := smtp.PlainAuth("", configs.SMTPSender, configs.SMTPPassword, configs.SMTPHost)

	msg := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=\"utf-8\"\r\n\r\n%s\r\n",
		configs.SMTPSender, to, subject, body,
	)

	if err := smtp.SendMail(addr, auth, configs.SMTPSender, []string{to}, []byte(msg)); err != nil {
		log.Printf("[MAIL ERROR] gagal kirim ke %s: %v", to, err)
		return err
	}
	log.Printf("[MAIL] terkirim ke %s (%s)", to, subject)
	return nil
}

// SendMailAsync kirim email fire-and-forget (side effect approval user).
func SendMailAsync(to, subject, body string) {
	go func() { _ = SendMail(to, subject, body) }()
}
