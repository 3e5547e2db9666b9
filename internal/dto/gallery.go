package dto

import "github.com/tareksherif64/Family-Photo-Storage/internal/entity"

type GroupMode string

const (
	GroupByDate  GroupMode = "date"
	GroupByAlbum GroupMode = "album"
)

// GalleryQuery is the viewer's active filter and grouping selection.
type GalleryQuery struct {
	Search string
	Tag    string
	Album  string
	Mode   GroupMode
}

// PhotoGroup is one ordered display group of the gallery.
type PhotoGroup struct {
	Title  string         `json:"title"`
	Photos []entity.Photo `json:"photos"`
}

type GalleryView struct {
	Groups []PhotoGroup `json:"groups"`
	Total  int          `json:"total"`
}

// Facets are the distinct filter options derived from the full
// unfiltered family photo set.
type Facets struct {
	Tags   []string `json:"tags"`
	Albums []string `json:"albums"`
}
