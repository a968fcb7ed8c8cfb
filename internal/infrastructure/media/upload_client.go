package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/google/uuid"

	"tecnoseguridad/pkg/errors"
	"tecnoseguridad/pkg/logger"
)

// UploadClient talks to the image hosting HTTP endpoint: an unsigned
// multipart upload that returns a permanent, publicly resolvable URL.
// The folder parameter is opaque routing metadata; the client knows
// nothing about what the image is for.
type UploadClient struct {
	uploadURL    string
	uploadPreset string
	httpClient   *http.Client
}

// NewUploadClient fails fast when the host credentials are missing so a
// misconfigured deployment is caught at startup, not at the first upload.
func NewUploadClient(cloudName, uploadPreset string) (*UploadClient, error) {
	if cloudName == "" || uploadPreset == "" {
		return nil, fmt.Errorf("media host credentials missing: MEDIA_CLOUD_NAME and MEDIA_UPLOAD_PRESET must be set")
	}

	return &UploadClient{
		uploadURL:    fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", cloudName),
		uploadPreset: uploadPreset,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}, nil
}

type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload transmits the image bytes and returns the hosted secure URL.
// Persisting that URL is the caller's responsibility.
func (c *UploadClient) Upload(ctx context.Context, file io.Reader, filename, folder string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", errors.Internal("Failed to build upload request", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", errors.Internal("Failed to read upload file", err)
	}

	writer.WriteField("upload_preset", c.uploadPreset)
	if folder != "" {
		writer.WriteField("folder", folder)
	}
	writer.WriteField("public_id", uuid.New().String())

	if err := writer.Close(); err != nil {
		return "", errors.Internal("Failed to build upload request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadURL, &body)
	if err != nil {
		return "", errors.Internal("Failed to build upload request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.New("NETWORK_ERROR", "No se pudo subir la imagen. Verifica tu conexión", http.StatusServiceUnavailable, err)
	}
	defer resp.Body.Close()

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Internal("Failed to decode upload response", err)
	}

	if resp.StatusCode >= 400 || result.SecureURL == "" {
		message := "upload rejected"
		if result.Error != nil {
			message = result.Error.Message
		}
		logger.Error("Image host rejected upload: status=%d message=%s", resp.StatusCode, message)
		return "", errors.New("UPLOAD_REJECTED", "No se pudo subir la imagen", http.StatusBadGateway, fmt.Errorf("image host: %s", message))
	}

	return result.SecureURL, nil
}
