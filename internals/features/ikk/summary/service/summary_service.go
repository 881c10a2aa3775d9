package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"ikk_backend/internals/configs"
	policyModel "ikk_backend/internals/features/ikk/policy/model"
)

var ErrSummaryUnavailable = errors.New("layanan ringkasan tidak dikonfigurasi")

// SummaryService membungkus klien OpenAI-compatible untuk meringkas kebijakan.
type SummaryService struct {
	client *openai.Client
	model  string
}

func NewSummaryService() *SummaryService {
	apiKey := configs.OpenAIAPIKey
	if apiKey == "" {
		return &SummaryService{}
	}
	cfg := openai.DefaultConfig(apiKey)
	if configs.OpenAIBaseURL != "" {
		cfg.BaseURL = configs.OpenAIBaseURL
	}
	model := configs.GetEnvOr("OPENAI_MODEL", openai.GPT4oMini)
	return &SummaryService{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *SummaryService) Enabled() bool { return s.client != nil }

// Summarize membuat ringkasan singkat berbahasa Indonesia dari data kebijakan.
func (s *SummaryService) Summarize(ctx context.Context, p *policyModel.PolicyModel) (string, error) {
	if s.client == nil {
		return "", ErrSummaryUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	var sb strings.Builder
	fmt.Fprintf(&sb, "Nama kebijakan: %s\n", p.PolicyName)
	if p.PolicyNameDetail != nil && *p.PolicyNameDetail != "" {
		fmt.Fprintf(&sb, "Detail: %s\n", *p.PolicyNameDetail)
	}
	if p.PolicySector != "" {
		fmt.Fprintf(&sb, "Sektor: %s\n", p.PolicySector)
	}
	if p.PolicyEffectiveDate != nil {
		fmt.Fprintf(&sb, "Tanggal berlaku: %s\n", p.PolicyEffectiveDate.Format("2006-01-02"))
	}
	for key, val := range p.PolicyProgramDetail {
		fmt.Fprintf(&sb, "%s: %v\n", key, val)
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "Anda adalah asisten penilaian kualitas kebijakan publik. " +
					"Buat ringkasan singkat (maksimal 3 paragraf) berbahasa Indonesia " +
					"yang menjelaskan isi dan tujuan kebijakan berikut untuk verifikator.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: sb.String(),
			},
		},
		Temperature: 0.2,
	})
	if err != nil {
		return "", fmt.Errorf("gagal memanggil layanan ringkasan: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("layanan ringkasan tidak mengembalikan jawaban")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
