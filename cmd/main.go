package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Vovarama1992/go-utils/logger"

	"github.com/Vovarama1992/whisper_api/internal/config"
	"github.com/Vovarama1992/whisper_api/internal/delivery"
	"github.com/Vovarama1992/whisper_api/internal/infra"
	"github.com/Vovarama1992/whisper_api/internal/ports"
	"github.com/Vovarama1992/whisper_api/internal/speech"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {

	// =========================================================================
	// ENV / CONFIG
	// =========================================================================

	_ = godotenv.Load()

	cfg := config.Load()

	if !speech.KnownVariant(cfg.ModelVariant) {
		log.Fatalf("unknown whisper model %q (known: %s)",
			cfg.ModelVariant, strings.Join(speech.VariantNames(), ", "))
	}

	if cfg.Backend == config.BackendOpenAI && cfg.OpenAIAPIKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}

	baseLogger, _ := zap.NewProduction()
	defer baseLogger.Sync()
	zl := logger.NewZapLogger(baseLogger.Sugar())

	if cfg.InsecureSkipTLSVerify {
		zl.Log(logger.LogEntry{
			Level:   "warn",
			Message: "TLS certificate verification DISABLED for the transcription backend client",
			Service: "whisper_api",
		})
	}

	// =========================================================================
	// INFRASTRUCTURE
	// =========================================================================

	tempStore, err := infra.NewTempStore(cfg.TempDir)
	if err != nil {
		log.Fatalf("failed to init temp store: %v", err)
	}

	backendClient := infra.NewBackendHTTPClient(cfg.InsecureSkipTLSVerify)

	// модель грузится лениво, на первом запросе — поэтому фабрика
	buildModel := func() ports.Transcriber {
		switch cfg.Backend {
		case config.BackendWhisperServer:
			return infra.NewWhisperServerClient(cfg.WhisperServerURL, backendClient)
		default:
			return infra.NewOpenAIWhisperClient(cfg.OpenAIAPIKey, backendClient)
		}
	}

	// =========================================================================
	// SERVICES
	// =========================================================================

	speechService := speech.NewService(cfg.ModelVariant, buildModel)

	// =========================================================================
	// HTTP ROUTER
	// =========================================================================

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(httprate.LimitByIP(cfg.RateLimitPerMinute, time.Minute))

	// HANDLERS
	transcribeHandler := delivery.NewTranscribeHandler(speechService, tempStore, zl)
	healthHandler := delivery.NewHealthHandler(speechService)

	// ROUTES
	delivery.RegisterRoutes(r, transcribeHandler, healthHandler)

	// =========================================================================
	// START SERVER
	// =========================================================================

	addr := cfg.Host + ":" + cfg.Port
	zl.Log(logger.LogEntry{
		Level:   "info",
		Message: "listening at " + addr,
		Service: "whisper_api",
	})

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
