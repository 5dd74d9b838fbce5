package ports

import "context"

type TranscriptionResult struct {
	Transcript string  `json:"transcript"`
	Language   string  `json:"language"`
	Duration   float64 `json:"duration"`
}

type SpeechService interface {
	// Transcribe — голос → текст, язык, длительность
	Transcribe(ctx context.Context, audioPath string) (TranscriptionResult, error)

	// Tag — имя загруженной модели (для /health). Форсирует загрузку.
	Tag() string
}
