package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultAlbum is the implicit album of photos uploaded without one.
const DefaultAlbum = "Default Album"

// FavoritesLabel is the synthetic album label reserved for the viewer's
// favorites. It is never a real album name.
const FavoritesLabel = "Favorites"

type Photo struct {
	ID uuid.UUID `json:"id"`

	FamilyID uuid.UUID `json:"family_id"`

	ImagePath   string `json:"image_path"`
	DownloadURL string `json:"download_url,omitempty"`

	FileName    string   `json:"file_name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Album       string   `json:"album,omitempty"`

	UploadDate     time.Time `json:"upload_date"`
	UploadedBy     string    `json:"uploaded_by"`
	UploadedByName string    `json:"uploaded_by_name"`

	FileSize int64  `json:"file_size"`
	FileType string `json:"file_type"`
}

// EffectiveAlbum maps an absent or blank album to DefaultAlbum.
func (p *Photo) EffectiveAlbum() string {
	if strings.TrimSpace(p.Album) == "" {
		return DefaultAlbum
	}
	return p.Album
}
