package dto

type FileInfo struct {
	Filename         string `json:"filename"`
	Size             int64  `json:"size"`
	ContentType      string `json:"content_type"`
	Path             string `json:"path"`
	ExtractedContent string `json:"extracted_content"`
}

type UploadFileResponse struct {
	Message  string   `json:"message"`
	FileInfo FileInfo `json:"file_info"`
}
