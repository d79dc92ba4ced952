package receipt

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"spendtrack/internal/logging"
)

// OCRClient talks to a hosted OCR HTTP API that accepts an image upload and
// returns the recognized text.
type OCRClient struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     logging.Logger
}

// NewOCRClient creates a client for the OCR service.
func NewOCRClient(endpoint, apiKey string, timeout time.Duration, logger logging.Logger) *OCRClient {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &OCRClient{
		endpoint:   endpoint,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// ocrResponse mirrors the service's JSON envelope.
type ocrResponse struct {
	ParsedResults []struct {
		ParsedText string `json:"ParsedText"`
	} `json:"ParsedResults"`
	IsErroredOnProcessing bool        `json:"IsErroredOnProcessing"`
	ErrorMessage          interface{} `json:"ErrorMessage"`
}

// RecognizeFile uploads the image at path and returns the recognized text.
func (c *OCRClient) RecognizeFile(ctx context.Context, path string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("OCR API key is not configured")
	}

	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening image file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			c.logger.WithError(err).Warn("Failed to close image file")
		}
	}()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("error building upload request: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("error reading image file: %w", err)
	}
	if err := writer.WriteField("language", "eng"); err != nil {
		return "", fmt.Errorf("error building upload request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("error finalizing upload request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("error creating OCR request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("apikey", c.apiKey)

	c.logger.WithField(logging.FieldFile, path).Debug("Sending image to OCR service")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("OCR request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.WithError(err).Warn("Failed to close OCR response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OCR service returned status %d", resp.StatusCode)
	}

	var parsed ocrResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("error decoding OCR response: %w", err)
	}

	if parsed.IsErroredOnProcessing {
		return "", fmt.Errorf("OCR service failed to process image: %v", parsed.ErrorMessage)
	}

	var texts []string
	for _, r := range parsed.ParsedResults {
		if r.ParsedText != "" {
			texts = append(texts, r.ParsedText)
		}
	}
	if len(texts) == 0 {
		return "", fmt.Errorf("OCR service returned no text")
	}

	return strings.Join(texts, "\n"), nil
}
