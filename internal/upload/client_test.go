package upload

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RECIPES_BACK-END/internal/config"
)

func testConfig(baseURL string) *config.UploadConfig {
	return &config.UploadConfig{
		APIKey:       "test-api-key",
		BaseURL:      baseURL,
		MaxFileSize:  1024,
		AllowedTypes: []string{"image/jpeg", "image/png"},
		Timeout:      2 * time.Second,
	}
}

func TestUploadFile_Success(t *testing.T) {
	var gotAPIKey, gotField, gotFile string

	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	defer srv.Close()

	mux.HandleFunc("/uploadFiles", func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("x-uploadthing-api-key")

		var req presignRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Files, 1)
		assert.Equal(t, "alice", req.Files[0].Name)
		assert.Equal(t, "image/jpeg", req.Files[0].Type)

		json.NewEncoder(w).Encode(presignResponse{Data: []presignTarget{{
			URL:     srv.URL + "/target",
			Fields:  map[string]string{"key": "abc123"},
			FileURL: "https://files.example.com/f/abc123",
		}}})
	})
	mux.HandleFunc("/target", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1 << 20))
		gotField = r.FormValue("key")
		file, _, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		buf := make([]byte, 16)
		n, _ := file.Read(buf)
		gotFile = string(buf[:n])
		w.WriteHeader(http.StatusNoContent)
	})

	client := NewClient(testConfig(srv.URL))
	url, err := client.UploadFile(context.Background(), []byte("jpeg-bytes"), "image/jpeg", "alice")
	require.NoError(t, err)

	assert.Equal(t, "https://files.example.com/f/abc123", url)
	assert.Equal(t, "test-api-key", gotAPIKey)
	assert.Equal(t, "abc123", gotField)
	assert.Equal(t, "jpeg-bytes", gotFile)
}

func TestUploadFile_RejectsOversizedFile(t *testing.T) {
	client := NewClient(testConfig("http://unused"))

	_, err := client.UploadFile(context.Background(), make([]byte, 2048), "image/jpeg", "alice")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestUploadFile_RejectsUnsupportedType(t *testing.T) {
	client := NewClient(testConfig("http://unused"))

	_, err := client.UploadFile(context.Background(), []byte("gif"), "image/gif", "alice")
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestUploadFile_UpstreamTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Timeout = 20 * time.Millisecond
	client := NewClient(cfg)

	_, err := client.UploadFile(context.Background(), []byte("jpeg-bytes"), "image/jpeg", "alice")
	assert.ErrorIs(t, err, ErrUpstreamTimeout)
}

func TestUploadFile_PresignFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))

	_, err := client.UploadFile(context.Background(), []byte("jpeg-bytes"), "image/jpeg", "alice")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUpstreamTimeout)
}

func TestDeleteFile(t *testing.T) {
	var gotKeys []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/deleteFile", r.URL.Path)
		var req deleteRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		gotKeys = req.FileKeys
		w.Write([]byte(`{"success":true}`))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	err := client.DeleteFile(context.Background(), "https://files.example.com/f/abc123")
	require.NoError(t, err)
	assert.Equal(t, []string{"abc123"}, gotKeys)
}
