package langdetect_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"titlelookup/pkg/core/langdetect"
)

func newTestDetector(t *testing.T, handler http.HandlerFunc) *langdetect.Detector {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return langdetect.NewDetector(langdetect.Config{
		APIKey:  "test-key",
		APIHost: "test-host",
		URL:     server.URL,
	}, nil)
}

func TestDetectSuccess(t *testing.T) {
	detector := newTestDetector(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "La matrice", r.PostForm.Get("q"))

		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, `{"data": {"detections": [[{"language": "fr", "isReliable": false, "confidence": 0.82}]]}}`)
	})

	lang, err := detector.Detect(context.Background(), "La matrice")

	require.NoError(t, err)
	assert.Equal(t, "FR", lang)
}

func TestDetectErrors(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		respBody   string
	}{
		{"Non-OK Status", http.StatusTooManyRequests, `{"message": "quota exceeded"}`},
		{"Bad JSON", http.StatusOK, `{"data": {`},
		{"Empty Detections", http.StatusOK, `{"data": {"detections": []}}`},
		{"Empty Inner List", http.StatusOK, `{"data": {"detections": [[]]}}`},
		{"Missing Language", http.StatusOK, `{"data": {"detections": [[{"confidence": 1}]]}}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			detector := newTestDetector(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.statusCode)
				fmt.Fprintln(w, tc.respBody)
			})

			lang, err := detector.Detect(context.Background(), "whatever")

			require.Error(t, err)
			assert.Empty(t, lang)
		})
	}
}
