package infra

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/whisper_api/internal/ports"
	openai "github.com/sashabaranov/go-openai"
)

type OpenAIWhisperClient struct {
	client *openai.Client
}

func NewOpenAIWhisperClient(apiKey string, httpClient *http.Client) *OpenAIWhisperClient {
	cfg := openai.DefaultConfig(apiKey)
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &OpenAIWhisperClient{
		client: openai.NewClientWithConfig(cfg),
	}
}

func (c *OpenAIWhisperClient) Transcribe(ctx context.Context, audioPath string) (ports.RawResult, error) {
	// verbose_json — иначе не вернут language и duration
	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
		Format:   openai.AudioResponseFormatVerboseJSON,
	})
	if err != nil {
		return ports.RawResult{}, fmt.Errorf("openai transcription: %w", err)
	}

	return ports.RawResult{
		Text:     resp.Text,
		Language: resp.Language,
		Duration: resp.Duration,
	}, nil
}
