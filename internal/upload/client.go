package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net"
	"net/http"
	"path"

	"RECIPES_BACK-END/internal/config"
)

var (
	// ErrFileTooLarge is returned when the file exceeds the configured size cap
	ErrFileTooLarge = errors.New("file too large")
	// ErrUnsupportedType is returned when the MIME type is not in the allow-list
	ErrUnsupportedType = errors.New("unsupported file type")
	// ErrUpstreamTimeout is returned when the upload host does not answer
	// within the bounded timeout
	ErrUpstreamTimeout = errors.New("upload host timed out")
)

// Client talks to the UploadThing HTTP API: it requests a presigned upload
// target, posts the file there, and can delete previously uploaded files.
type Client struct {
	apiKey       string
	baseURL      string
	maxFileSize  int64
	allowedTypes map[string]bool
	httpClient   *http.Client
}

// NewClient creates a new upload client from the upload configuration
func NewClient(cfg *config.UploadConfig) *Client {
	allowed := make(map[string]bool, len(cfg.AllowedTypes))
	for _, t := range cfg.AllowedTypes {
		allowed[t] = true
	}
	return &Client{
		apiKey:       cfg.APIKey,
		baseURL:      cfg.BaseURL,
		maxFileSize:  cfg.MaxFileSize,
		allowedTypes: allowed,
		httpClient:   &http.Client{Timeout: cfg.Timeout},
	}
}

// MaxFileSize returns the configured file size cap in bytes.
func (c *Client) MaxFileSize() int64 {
	return c.maxFileSize
}

// TypeAllowed reports whether the MIME type is in the allow-list.
func (c *Client) TypeAllowed(fileType string) bool {
	return c.allowedTypes[fileType]
}

type presignFile struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Size int    `json:"size"`
}

type presignRequest struct {
	Files []presignFile `json:"files"`
}

type presignTarget struct {
	URL     string            `json:"url"`
	Fields  map[string]string `json:"fields"`
	FileURL string            `json:"fileUrl"`
}

type presignResponse struct {
	Data []presignTarget `json:"data"`
}

type deleteRequest struct {
	FileKeys []string `json:"fileKeys"`
}

// UploadFile validates the file, requests a presigned target and posts the
// file to it. Returns the public URL of the uploaded file.
func (c *Client) UploadFile(ctx context.Context, data []byte, fileType, username string) (string, error) {
	if int64(len(data)) > c.maxFileSize {
		return "", ErrFileTooLarge
	}
	if !c.allowedTypes[fileType] {
		return "", ErrUnsupportedType
	}

	var presigned presignResponse
	err := c.apiRequest(ctx, "uploadFiles", presignRequest{
		Files: []presignFile{{Name: username, Type: fileType, Size: len(data)}},
	}, &presigned)
	if err != nil {
		return "", err
	}
	if len(presigned.Data) == 0 {
		return "", fmt.Errorf("upload: presign response contained no targets")
	}
	target := presigned.Data[0]

	if err := c.postToTarget(ctx, target, data, username); err != nil {
		return "", err
	}

	log.Printf("uploaded file for user %s", username)
	return target.FileURL, nil
}

// DeleteFile deletes a previously uploaded file by its public URL.
func (c *Client) DeleteFile(ctx context.Context, fileURL string) error {
	fileKey := path.Base(fileURL)
	return c.apiRequest(ctx, "deleteFile", deleteRequest{FileKeys: []string{fileKey}}, nil)
}

// postToTarget posts the file as multipart form data to the presigned target,
// carrying over the fields returned by the presign call.
func (c *Client) postToTarget(ctx context.Context, target presignTarget, data []byte, filename string) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range target.Fields {
		if err := writer.WriteField(key, value); err != nil {
			return fmt.Errorf("upload: write form field: %w", err)
		}
	}
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return fmt.Errorf("upload: create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return fmt.Errorf("upload: write file data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("upload: close form writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.URL, &body)
	if err != nil {
		return fmt.Errorf("upload: build target request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.classifyError(err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("upload: target returned status %d", resp.StatusCode)
	}
	return nil
}

// apiRequest performs an authenticated JSON request against the upload API.
func (c *Client) apiRequest(ctx context.Context, endpoint string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("upload: encode %s request: %w", endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("upload: build %s request: %w", endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-uploadthing-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.classifyError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upload: %s returned status %d", endpoint, resp.StatusCode)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("upload: decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) classifyError(err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return ErrUpstreamTimeout
	}
	return fmt.Errorf("upload: request failed: %w", err)
}
