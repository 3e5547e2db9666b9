package dto

import "io"

// FileInput is one locally selected file handed to the upload pipeline.
type FileInput struct {
	Name        string
	ContentType string
	Size        int64
	Data        io.Reader
}

// UploadForm carries one batch submission: the selected files plus the
// metadata shared by every file in the batch. Album holds a chosen
// existing album, NewAlbum a freshly typed one; the pipeline requires
// at least one of the two.
type UploadForm struct {
	Files       []FileInput
	Description string
	Tags        []string
	Album       string
	NewAlbum    string
}

// ItemResult is the settled outcome of one file of a batch.
type ItemResult struct {
	FileName string `json:"file_name"`
	PhotoID  string `json:"photo_id,omitempty"`
	Progress int    `json:"progress"`
	Error    string `json:"error,omitempty"`
}

// BatchResult is returned after every item of a batch has settled.
// Failed items keep their error here; succeeded items are already
// persisted and are never rolled back.
type BatchResult struct {
	Items  []ItemResult `json:"items"`
	Failed int          `json:"failed"`
}
