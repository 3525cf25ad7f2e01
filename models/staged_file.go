package models

import "github.com/google/uuid"

// StagedFile is a user-selected file held only in draft state: raw bytes plus
// a generated preview, not yet transmitted upstream. Once a draft submits, the
// file becomes server-stored and the staged entry is released.
type StagedFile struct {
	LocalID     uuid.UUID `json:"local_id"`
	Filename    string    `json:"filename"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	PreviewURL  string    `json:"preview_url"`
	Bytes       []byte    `json:"-"`
}
