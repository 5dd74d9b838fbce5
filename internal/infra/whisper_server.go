package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vovarama1992/whisper_api/internal/ports"
)

// WhisperServerClient говорит с локальным whisper.cpp server
// (POST /inference, multipart)
type WhisperServerClient struct {
	baseURL string
	client  *http.Client
}

func NewWhisperServerClient(baseURL string, httpClient *http.Client) *WhisperServerClient {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &WhisperServerClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpClient,
	}
}

func (c *WhisperServerClient) Transcribe(ctx context.Context, audioPath string) (ports.RawResult, error) {
	f, err := os.Open(audioPath)
	if err != nil {
		return ports.RawResult{}, fmt.Errorf("read audio file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	if err := mw.WriteField("response_format", "verbose_json"); err != nil {
		return ports.RawResult{}, err
	}

	fw, err := mw.CreateFormFile("file", filepath.Base(audioPath))
	if err != nil {
		return ports.RawResult{}, err
	}
	if _, err := io.Copy(fw, f); err != nil {
		return ports.RawResult{}, fmt.Errorf("copy audio into request: %w", err)
	}
	if err := mw.Close(); err != nil {
		return ports.RawResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/inference", &buf)
	if err != nil {
		return ports.RawResult{}, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return ports.RawResult{}, fmt.Errorf("whisper server request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != 200 {
		return ports.RawResult{}, fmt.Errorf("whisper server error: %s", body)
	}

	var parsed struct {
		Text     string  `json:"text"`
		Language string  `json:"language"`
		Duration float64 `json:"duration"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return ports.RawResult{}, fmt.Errorf("decode whisper server response: %w", err)
	}

	return ports.RawResult{
		Text:     parsed.Text,
		Language: parsed.Language,
		Duration: parsed.Duration,
	}, nil
}
