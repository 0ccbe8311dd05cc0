// Package imagestore uploads avatar images to the external image
// hosting service and returns their public URLs.
package imagestore

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Config holds the image store endpoint and credentials.
type Config struct {
	UploadURL string
	APIKey    string
	APISecret string
}

// Client talks to the hosted image service over HTTP.
type Client struct {
	cfg  Config
	http *http.Client
}

// NewClient creates an image store client using the given HTTP client.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	return &Client{cfg: cfg, http: httpClient}
}

// uploadResponse is the subset of the service's JSON reply we use.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	Error     struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload sends the image under a deterministic public id derived from
// the owner's email, so re-uploading replaces the previous avatar.
// It returns the public URL of the stored image.
func (c *Client) Upload(ctx context.Context, ownerEmail string, file io.Reader) (string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		defer pw.Close()
		defer mw.Close()
		if err := mw.WriteField("public_id", "avatars/"+ownerEmail); err != nil {
			pw.CloseWithError(err)
			return
		}
		part, err := mw.CreateFormFile("file", "avatar")
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.UploadURL, pr)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetBasicAuth(c.cfg.APIKey, c.cfg.APISecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("image upload failed: %w", err)
	}
	defer resp.Body.Close()

	var body uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image store returned %d: %s", resp.StatusCode, body.Error.Message)
	}
	if body.SecureURL == "" {
		return "", fmt.Errorf("image store returned no URL")
	}
	return body.SecureURL, nil
}
