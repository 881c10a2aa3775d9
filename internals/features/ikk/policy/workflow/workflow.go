// Package workflow memodelkan siklus hidup kebijakan IKK sebagai satu tabel
// transisi eksplisit. Dulu policy_status dan policy_process diubah lepas-lepas
// oleh masing-masing handler; sekarang semua perubahan state lewat tabel ini
// dan precondition-nya ikut masuk ke klausa WHERE saat update (lihat Guard).
package workflow

import "fmt"

// PolicyStatus adalah tahap verifikasi/validasi kebijakan.
type PolicyStatus string

const (
	StatusBelumTerverifikasi PolicyStatus = "BELUM_TERVERIFIKASI"
	StatusSedangVerifikasi   PolicyStatus = "SEDANG_VERIFIKASI"
	StatusMenungguValidasiKI PolicyStatus = "MENUNGGU_VALIDASI_KI"
	StatusMenungguValidasiKU PolicyStatus = "MENUNGGU_VALIDASI_KU"
	StatusSelesaiValidasiKU  PolicyStatus = "SELESAI_VALIDASI_KU"
	StatusSelesaiVerifikasi  PolicyStatus = "SELESAI_VERIFIKASI"
)

// PolicyProcess adalah tahap proses pengisian kebijakan.
type PolicyProcess string

const (
	ProsesDiajukan  PolicyProcess = "DIAJUKAN"
	ProsesProses    PolicyProcess = "PROSES"
	ProsesSelesai   PolicyProcess = "SELESAI"
	ProsesDisetujui PolicyProcess = "DISETUJUI"
	ProsesDitolak   PolicyProcess = "DITOLAK"
)

// Event adalah aksi aktor yang menggeser state kebijakan.
type Event string

const (
	EventAssignEnumerator Event = "ASSIGN_ENUMERATOR" // Koordinator Instansi memilih enumerator
	EventSendToKI         Event = "SEND_TO_KI"        // Enumerator selesai mengisi, kirim ke KI
	EventForwardToKU      Event = "FORWARD_TO_KU"     // KI meneruskan ke Koordinator Utama
	EventMarkVerification Event = "MARK_VERIFICATION" // KU menandai batch untuk verifikasi
	EventApprove          Event = "APPROVE"           // Verifikator menyetujui
	EventReject           Event = "REJECT"            // Verifikator menolak
	EventValidateKU       Event = "VALIDATE_KU"       // Tanda tangan akhir Koordinator Utama
)

// Transition mendeskripsikan satu baris tabel transisi.
// FromStatus kosong berarti event dijaga lewat FromProcess (assign enumerator
// tidak mengubah status). Status/Process tujuan yang nil berarti field itu
// tidak disentuh oleh event.
type Transition struct {
	Event       Event
	FromStatus  []PolicyStatus
	FromProcess []PolicyProcess
	ToStatus    *PolicyStatus
	ToProcess   *PolicyProcess
}

func statusPtr(s PolicyStatus) *PolicyStatus    { return &s }
func processPtr(p PolicyProcess) *PolicyProcess { return &p }

// Tabel transisi. Setiap event memasukkan state tujuannya sendiri ke daftar
// from yang diizinkan, supaya pemanggilan berulang idempoten (approve dua kali
// tetap sukses dengan hasil akhir yang sama).
var transitions = map[Event]Transition{
	EventAssignEnumerator: {
		Event:       EventAssignEnumerator,
		FromProcess: []PolicyProcess{ProsesDiajukan, ProsesProses},
		ToProcess:   processPtr(ProsesProses),
	},
	EventSendToKI: {
		Event:      EventSendToKI,
		FromStatus: []PolicyStatus{StatusBelumTerverifikasi, StatusMenungguValidasiKI},
		ToStatus:   statusPtr(StatusMenungguValidasiKI),
		ToProcess:  processPtr(ProsesProses),
	},
	EventForwardToKU: {
		Event:      EventForwardToKU,
		FromStatus: []PolicyStatus{StatusMenungguValidasiKI, StatusMenungguValidasiKU},
		ToStatus:   statusPtr(StatusMenungguValidasiKU),
		ToProcess:  processPtr(ProsesSelesai),
	},
	EventMarkVerification: {
		Event:      EventMarkVerification,
		FromStatus: []PolicyStatus{StatusMenungguValidasiKU, StatusSedangVerifikasi},
		ToStatus:   statusPtr(StatusSedangVerifikasi),
	},
	EventApprove: {
		Event:      EventApprove,
		FromStatus: []PolicyStatus{StatusSedangVerifikasi, StatusSelesaiVerifikasi},
		ToStatus:   statusPtr(StatusSelesaiVerifikasi),
		ToProcess:  processPtr(ProsesDisetujui),
	},
	EventReject: {
		Event:      EventReject,
		FromStatus: []PolicyStatus{StatusSedangVerifikasi, StatusSelesaiVerifikasi},
		ToStatus:   statusPtr(StatusSelesaiVerifikasi),
		ToProcess:  processPtr(ProsesDitolak),
	},
	EventValidateKU: {
		Event:      EventValidateKU,
		FromStatus: []PolicyStatus{StatusMenungguValidasiKU, StatusSelesaiVerifikasi, StatusSelesaiValidasiKU},
		ToStatus:   statusPtr(StatusSelesaiValidasiKU),
	},
}

// Guard mengembalikan baris transisi untuk sebuah event.
// Panic kalau event tidak terdaftar — itu bug pemrograman, bukan input user.
func Guard(ev Event) Transition {
	t, ok := transitions[ev]
	if !ok {
		panic(fmt.Sprintf("workflow: event %q tidak terdaftar", ev))
	}
	return t
}

// StatusScope mengembalikan daftar status asal untuk klausa WHERE ... IN (?).
func (t Transition) StatusScope() []string {
	out := make([]string, 0, len(t.FromStatus))
	for _, s := range t.FromStatus {
		out = append(out, string(s))
	}
	return out
}

// ProcessScope mengembalikan daftar process asal untuk klausa WHERE ... IN (?).
func (t Transition) ProcessScope() []string {
	out := make([]string, 0, len(t.FromProcess))
	for _, p := range t.FromProcess {
		out = append(out, string(p))
	}
	return out
}

// AllowedFrom mengecek apakah pasangan (status, process) boleh menerima event.
func (t Transition) AllowedFrom(status PolicyStatus, process PolicyProcess) bool {
	if len(t.FromStatus) > 0 {
		found := false
		for _, s := range t.FromStatus {
			if s == status {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if len(t.FromProcess) > 0 {
		found := false
		for _, p := range t.FromProcess {
			if p == process {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Apply menghitung state hasil event tanpa menyentuh DB (dipakai di test dan
// untuk menyusun kolom update).
func (t Transition) Apply(status PolicyStatus, process PolicyProcess) (PolicyStatus, PolicyProcess) {
	if t.ToStatus != nil {
		status = *t.ToStatus
	}
	if t.ToProcess != nil {
		process = *t.ToProcess
	}
	return status, process
}

// ValidStatus memvalidasi nilai mentah dari DB/input.
func ValidStatus(s string) bool {
	switch PolicyStatus(s) {
	case StatusBelumTerverifikasi, StatusSedangVerifikasi, StatusMenungguValidasiKI,
		StatusMenungguValidasiKU, StatusSelesaiValidasiKU, StatusSelesaiVerifikasi:
		return true
	}
	return false
}

// ValidProcess memvalidasi nilai mentah dari DB/input.
func ValidProcess(p string) bool {
	switch PolicyProcess(p) {
	case ProsesDiajukan, ProsesProses, ProsesSelesai, ProsesDisetujui, ProsesDitolak:
		return true
	}
	return false
}
