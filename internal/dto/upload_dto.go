package dto

import (
	"time"

	"github.com/google/uuid"
)

type UploadedFileDTO struct {
	Id               uuid.UUID `json:"id"`
	Url              string    `json:"url"`
	OriginalFilename string    `json:"original_filename"`
	FileType         string    `json:"file_type"`
	FileSize         int64     `json:"file_size"`
	UploadContext    string    `json:"upload_context,omitempty"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

type UploadFileResponse struct {
	Files     []UploadedFileDTO `json:"files"`
	SessionId string            `json:"session_id"`
}
