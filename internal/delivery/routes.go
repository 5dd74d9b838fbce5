package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(
	r chi.Router,
	hTranscribe *TranscribeHandler,
	hHealth *HealthHandler,
) {
	r.With(httputil.RecoverMiddleware).Post("/transcribe", hTranscribe.Transcribe)
	r.With(httputil.RecoverMiddleware).Get("/health", hHealth.Health)
	r.With(httputil.RecoverMiddleware).Get("/", hHealth.Root)
}
