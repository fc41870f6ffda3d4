package handlers

import (
	"errors"
	"io"
	"net/http"

	"RECIPES_BACK-END/internal/dto"
	"RECIPES_BACK-END/internal/upload"
	"RECIPES_BACK-END/internal/utils"
)

// multipartOverhead allows for form framing on top of the file size cap.
const multipartOverhead = 1 << 20

// UploadHandler handles image uploads to the external file host
type UploadHandler struct {
	uploads *upload.Client
}

// NewUploadHandler creates a new UploadHandler instance
func NewUploadHandler(uploads *upload.Client) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload handles POST /api/upload
// @Summary Upload an image
// @Description Upload an image for a user to the external file host
// @Tags upload
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param user query string true "Resource owner username"
// @Param file formData file true "Image file"
// @Success 200 {object} dto.UploadResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 413 {object} dto.ErrorResponse "File too large"
// @Failure 415 {object} dto.ErrorResponse "Unsupported file type"
// @Failure 504 {object} dto.ErrorResponse "Upload host timed out"
// @Router /api/upload [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.uploads.MaxFileSize()+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "File too large", "Request body exceeds the upload size cap")
			return
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "file field is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			utils.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "File too large", "Request body exceeds the upload size cap")
			return
		}
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", "failed to read file")
		return
	}

	fileType := header.Header.Get("Content-Type")
	if fileType == "" {
		fileType = "application/octet-stream"
	}

	imageURL, err := h.uploads.UploadFile(r.Context(), data, fileType, username)
	if err != nil {
		switch {
		case errors.Is(err, upload.ErrFileTooLarge):
			utils.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "File too large", "File exceeds the upload size cap")
		case errors.Is(err, upload.ErrUnsupportedType):
			utils.WriteErrorResponse(w, http.StatusUnsupportedMediaType, "Unsupported file type", "MIME type "+fileType+" is not allowed")
		case errors.Is(err, upload.ErrUpstreamTimeout):
			utils.WriteErrorResponse(w, http.StatusGatewayTimeout, "Upstream timeout", "Request to upload host timed out")
		default:
			utils.WriteErrorResponse(w, http.StatusInternalServerError, "Upload failed", err.Error())
		}
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.UploadResponse{User: username, ImageURL: imageURL})
}
