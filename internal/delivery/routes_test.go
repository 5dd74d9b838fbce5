package delivery

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vovarama1992/whisper_api/internal/ports"
	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestEndToEndUploadSampleWav(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	r := chi.NewRouter()
	RegisterRoutes(r, env.handler, env.health)

	srv := httptest.NewServer(r)
	defer srv.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", "sample.wav")
	require.NoError(t, err)
	_, err = fw.Write([]byte("RIFF fake wav payload"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	resp, err := http.Post(srv.URL+"/transcribe", mw.FormDataContentType(), &body)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var result ports.TranscriptionResult
	require.NoError(t, json.Unmarshal(raw, &result))
	require.NotEmpty(t, result.Transcript)
	require.Len(t, result.Language, 2)
	require.GreaterOrEqual(t, result.Duration, 0.0)

	// после ответа временная копия удалена
	require.Empty(t, tempRootEntries(t, env.store))
}

func TestHealthOverHTTP(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	r := chi.NewRouter()
	RegisterRoutes(r, env.handler, env.health)

	srv := httptest.NewServer(r)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	require.Equal(t, "ok", payload["status"])
	require.Equal(t, "base", payload["model"])
}
