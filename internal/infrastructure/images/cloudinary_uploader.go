package images

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/tino-ryan/restaurant-app/internal/usecase/interfaces"
)

var ErrMissingCloudinaryConfig = errors.New("missing CLOUDINARY_CLOUD_NAME or CLOUDINARY_UPLOAD_PRESET")

// CloudinaryUploader pushes menu images to Cloudinary's unsigned upload
// endpoint and returns the hosted URL. Unsigned presets keep credentials out
// of this service; the preset restricts what can be uploaded.

type CloudinaryUploader struct {
	cloudName    string
	uploadPreset string
	httpClient   *http.Client
	baseURL      string
}

var _ interfaces.IImageUploader = (*CloudinaryUploader)(nil)

func NewCloudinaryUploader(cloudName, uploadPreset string) (*CloudinaryUploader, error) {
	if strings.TrimSpace(cloudName) == "" || strings.TrimSpace(uploadPreset) == "" {
		return nil, ErrMissingCloudinaryConfig
	}
	return &CloudinaryUploader{
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		baseURL:      "https://api.cloudinary.com/v1_1",
	}, nil
}

// NewCloudinaryUploaderFromEnv returns nil when Cloudinary is not configured
// so menu management still works, just without images.
func NewCloudinaryUploaderFromEnv() *CloudinaryUploader {
	up, err := NewCloudinaryUploader(os.Getenv("CLOUDINARY_CLOUD_NAME"), os.Getenv("CLOUDINARY_UPLOAD_PRESET"))
	if err != nil {
		log.Printf("[images] cloudinary uploader not configured: %v", err)
		return nil
	}
	return up
}

func (u *CloudinaryUploader) Upload(ctx context.Context, filename string, r io.Reader) (string, error) {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)

	part, err := form.CreateFormFile("file", filename)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", err
	}
	if err := form.WriteField("upload_preset", u.uploadPreset); err != nil {
		return "", err
	}
	if err := form.Close(); err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/%s/image/upload", u.baseURL, u.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("cloudinary upload failed: status=%d body=%s", resp.StatusCode, string(raw))
	}

	var parsed struct {
		SecureURL string `json:"secure_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.SecureURL == "" {
		return "", errors.New("cloudinary upload succeeded but returned no secure_url")
	}
	return parsed.SecureURL, nil
}
