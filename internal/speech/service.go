package speech

import (
	"context"
	"strings"
	"sync"

	"github.com/Vovarama1992/whisper_api/internal/apperr"
	"github.com/Vovarama1992/whisper_api/internal/ports"
)

// Service держит единственный на процесс экземпляр модели. Загрузка
// ленивая: build вызывается один раз при первом обращении (sync.Once,
// без гонки двойной загрузки), выгрузки нет — живёт до конца процесса.
type Service struct {
	variant string
	build   func() ports.Transcriber

	once   sync.Once
	handle ports.Transcriber
}

func NewService(variant string, build func() ports.Transcriber) *Service {
	return &Service{
		variant: variant,
		build:   build,
	}
}

func (s *Service) model() ports.Transcriber {
	s.once.Do(func() {
		s.handle = s.build()
	})
	return s.handle
}

func (s *Service) Tag() string {
	s.model()
	return s.variant
}

func (s *Service) Transcribe(ctx context.Context, audioPath string) (ports.TranscriptionResult, error) {
	raw, err := s.model().Transcribe(ctx, audioPath)
	if err != nil {
		return ports.TranscriptionResult{}, apperr.Upstream("transcription failed: " + err.Error())
	}
	return s.validate(audioPath, raw)
}

// validate — граница доверия: провайдер может вернуть что угодно.
// text и language обязательны, duration опциональна (по умолчанию 0).
func (s *Service) validate(audioPath string, raw ports.RawResult) (ports.TranscriptionResult, error) {
	text := strings.TrimSpace(raw.Text)
	if text == "" {
		return ports.TranscriptionResult{}, apperr.Upstream("transcription backend returned no text")
	}

	lang := strings.TrimSpace(raw.Language)
	if lang == "" {
		return ports.TranscriptionResult{}, apperr.Upstream("transcription backend returned no language")
	}

	duration := raw.Duration
	if duration <= 0 {
		// не все провайдеры отдают длительность — пробуем ffprobe
		if d, err := AudioDuration(audioPath); err == nil {
			duration = d
		} else {
			duration = 0
		}
	}

	return ports.TranscriptionResult{
		Transcript: text,
		Language:   lang,
		Duration:   duration,
	}, nil
}
