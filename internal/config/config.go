package config

import (
	"os"
	"strconv"
)

const (
	BackendOpenAI        = "openai"
	BackendWhisperServer = "whisper-server"
)

type Config struct {
	Host string
	Port string

	// TempDir — корень для временных копий загруженного аудио
	TempDir string

	ModelVariant     string
	Backend          string
	OpenAIAPIKey     string
	WhisperServerURL string

	// InsecureSkipTLSVerify отключает проверку сертификатов ТОЛЬКО для
	// http-клиента бэкенда распознавания. По умолчанию выключено.
	InsecureSkipTLSVerify bool

	RateLimitPerMinute int
}

func Load() Config {
	return Config{
		Host:                  getenv("WHISPER_API_HOST", "0.0.0.0"),
		Port:                  getenv("WHISPER_API_PORT", "8000"),
		TempDir:               getenv("WHISPER_API_TEMP_DIR", "/tmp/whisper_api"),
		ModelVariant:          getenv("WHISPER_MODEL", "base"),
		Backend:               getenv("WHISPER_BACKEND", BackendOpenAI),
		OpenAIAPIKey:          os.Getenv("OPENAI_API_KEY"),
		WhisperServerURL:      getenv("WHISPER_SERVER_URL", "http://127.0.0.1:8080"),
		InsecureSkipTLSVerify: os.Getenv("WHISPER_INSECURE_SKIP_TLS_VERIFY") == "true",
		RateLimitPerMinute:    getenvInt("WHISPER_RATE_LIMIT", 120),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
