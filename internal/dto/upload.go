package dto

// UploadResponse is returned after a successful image upload
type UploadResponse struct {
	User     string `json:"user"`
	ImageURL string `json:"image_url"`
}
