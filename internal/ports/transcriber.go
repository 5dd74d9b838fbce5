package ports

import "context"

// RawResult — то, что вернул провайдер распознавания, до валидации.
// Поля могут быть пустыми: каждый провайдер заполняет их по-своему.
type RawResult struct {
	Text     string
	Language string
	Duration float64 // секунды, 0 если провайдер не отдал
}

type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (RawResult, error)
}
