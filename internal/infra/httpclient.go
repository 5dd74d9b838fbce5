package infra

import (
	"crypto/tls"
	"net/http"
)

// NewBackendHTTPClient — клиент для бэкенда распознавания. insecure
// отключает проверку сертификатов только здесь, не на весь процесс.
func NewBackendHTTPClient(insecure bool) *http.Client {
	if !insecure {
		return &http.Client{}
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}

	return &http.Client{Transport: transport}
}
