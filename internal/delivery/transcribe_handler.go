package delivery

import (
	"errors"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/whisper_api/internal/apperr"
	"github.com/Vovarama1992/whisper_api/internal/ports"
	"github.com/dustin/go-humanize"
	json "github.com/goccy/go-json"
)

var allowedFormats = []string{".mp3", ".wav", ".m4a", ".webm"}

type TranscribeHandler struct {
	speech ports.SpeechService
	store  ports.TempStore
	log    *logger.ZapLogger
}

func NewTranscribeHandler(speech ports.SpeechService, store ports.TempStore, log *logger.ZapLogger) *TranscribeHandler {
	return &TranscribeHandler{
		speech: speech,
		store:  store,
		log:    log,
	}
}

func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		http.Error(w, "invalid multipart: "+err.Error(), http.StatusBadRequest)
		return
	}

	var upload multipart.File
	var header *multipart.FileHeader
	if f, hdr, err := r.FormFile("file"); err == nil {
		upload = f
		header = hdr
		defer f.Close()
	}
	filePath := r.FormValue("file_path")

	if upload == nil && filePath == "" {
		writeError(w, apperr.NoSource())
		return
	}

	var audioPath string

	if upload != nil {
		// расширение проверяем ДО того, как что-то писать на диск
		ext := strings.ToLower(filepath.Ext(header.Filename))
		if !isAllowed(ext) {
			writeError(w, apperr.UnsupportedFormat(allowedFormats))
			return
		}

		tempPath, err := h.store.Save(upload, ext)
		if err != nil {
			h.log.Log(logger.LogEntry{Level: "error", Message: "failed to save upload", Error: err})
			http.Error(w, "failed to save upload: "+err.Error(), http.StatusInternalServerError)
			return
		}
		// временный файл удаляем на любом исходе; ошибка удаления не
		// должна затереть основную — только лог
		defer func() {
			if err := h.store.Remove(tempPath); err != nil {
				h.log.Log(logger.LogEntry{Level: "error", Message: "temp file cleanup failed", Error: err})
			}
		}()

		h.log.Log(logger.LogEntry{
			Level:   "info",
			Message: "audio upload received: " + header.Filename + " (" + humanize.Bytes(uint64(header.Size)) + ")",
		})

		audioPath = tempPath
	} else {
		if _, err := os.Stat(filePath); err != nil {
			writeError(w, apperr.PathNotFound(filePath))
			return
		}
		// локальный путь используем как есть, без копии
		audioPath = filePath
	}

	result, err := h.speech.Transcribe(r.Context(), audioPath)
	if err != nil {
		h.log.Log(logger.LogEntry{Level: "error", Message: "transcription failed", Error: err})
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(result)
}

func isAllowed(ext string) bool {
	for _, allowed := range allowedFormats {
		if ext == allowed {
			return true
		}
	}
	return false
}

func writeError(w http.ResponseWriter, err error) {
	var ae *apperr.Error
	if errors.As(err, &ae) {
		http.Error(w, ae.Detail, ae.Status)
		return
	}
	http.Error(w, err.Error(), apperr.StatusOf(err))
}
