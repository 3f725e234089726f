package models

// FileUploadResponse describes a stored product image, returned alongside the
// created product so clients know where to download it from.
type FileUploadResponse struct {
	FileName    string `json:"fileName"`
	DownloadURI string `json:"downloadURI"`
	Size        int64  `json:"size"`
}
