package receipt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"spendtrack/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "receipt.png")
	require.NoError(t, os.WriteFile(path, []byte("fake image bytes"), 0600))
	return path
}

func TestRecognizeFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-key", r.Header.Get("apikey"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "receipt.png", header.Filename)
		assert.Equal(t, "eng", r.FormValue("language"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ParsedResults":[{"ParsedText":"STARBUCKS\nLatte $4.50"}],"IsErroredOnProcessing":false}`))
	}))
	defer server.Close()

	client := NewOCRClient(server.URL, "test-key", 5*time.Second, logging.NewMockLogger())

	text, err := client.RecognizeFile(context.Background(), writeTestImage(t))
	require.NoError(t, err)
	assert.Equal(t, "STARBUCKS\nLatte $4.50", text)
}

func TestRecognizeFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		errMsg  string
	}{
		{
			name: "service error flag",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"ParsedResults":[],"IsErroredOnProcessing":true,"ErrorMessage":"bad image"}`))
			},
			errMsg: "failed to process image",
		},
		{
			name: "non-200 status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusForbidden)
			},
			errMsg: "status 403",
		},
		{
			name: "empty results",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"ParsedResults":[],"IsErroredOnProcessing":false}`))
			},
			errMsg: "no text",
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{not json`))
			},
			errMsg: "decoding OCR response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			client := NewOCRClient(server.URL, "test-key", 5*time.Second, logging.NewMockLogger())
			_, err := client.RecognizeFile(context.Background(), writeTestImage(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRecognizeFileMissingKey(t *testing.T) {
	client := NewOCRClient("http://unused", "", time.Second, logging.NewMockLogger())
	_, err := client.RecognizeFile(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}

func TestRecognizeFileMissingImage(t *testing.T) {
	client := NewOCRClient("http://unused", "key", time.Second, logging.NewMockLogger())
	_, err := client.RecognizeFile(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening image file")
}

func TestRecognizeFileCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(time.Second)
	}))
	defer server.Close()

	client := NewOCRClient(server.URL, "key", 5*time.Second, logging.NewMockLogger())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.RecognizeFile(ctx, writeTestImage(t))
	assert.Error(t, err)
}
