package delivery

import (
	"net/http"

	"github.com/Vovarama1992/whisper_api/internal/ports"
	json "github.com/goccy/go-json"
)

const rootMessage = "Whisper Transcription API is running. Post to /transcribe to transcribe audio."

type HealthHandler struct {
	speech ports.SpeechService
}

func NewHealthHandler(speech ports.SpeechService) *HealthHandler {
	return &HealthHandler{speech: speech}
}

// Health форсирует загрузку модели и отдаёт её тег
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status": "ok",
		"model":  h.speech.Tag(),
	})
}

// Root — статический ответ, модель не трогаем
func (h *HealthHandler) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": rootMessage,
	})
}
