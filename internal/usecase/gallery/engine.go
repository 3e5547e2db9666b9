package gallery

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tareksherif64/Family-Photo-Storage/internal/dto"
	"github.com/tareksherif64/Family-Photo-Storage/internal/entity"
)

// Criteria is the active filter selection. Zero values mean "no filter".
type Criteria struct {
	Search string
	Tag    string
	Album  string
}

// Filter applies the criteria to an ordered photo list, preserving the
// input order. When Album is the reserved favorites label the result is
// exactly the photos in the favorites set and every other criterion is
// ignored.
func Filter(photos []entity.Photo, favorites map[uuid.UUID]struct{}, c Criteria) []entity.Photo {
	if c.Album == entity.FavoritesLabel {
		var out []entity.Photo
		for _, p := range photos {
			if _, ok := favorites[p.ID]; ok {
				out = append(out, p)
			}
		}
		return out
	}

	search := strings.ToLower(strings.TrimSpace(c.Search))

	var out []entity.Photo
	for _, p := range photos {
		if search != "" && !matchesSearch(&p, search) {
			continue
		}
		if c.Tag != "" && !hasTag(&p, c.Tag) {
			continue
		}
		if c.Album != "" && p.EffectiveAlbum() != c.Album {
			continue
		}
		out = append(out, p)
	}

	return out
}

// GroupByAlbum produces a synthetic leading favorites group followed by
// one group per distinct effective album, albums in first-seen order.
// A favorited photo appears both in the favorites group and in its real
// album group: the two are independent facets, not a partition.
func GroupByAlbum(photos []entity.Photo, favorites map[uuid.UUID]struct{}) []dto.PhotoGroup {
	favGroup := dto.PhotoGroup{Title: entity.FavoritesLabel}

	var order []string
	byAlbum := make(map[string][]entity.Photo)

	for _, p := range photos {
		if _, ok := favorites[p.ID]; ok {
			favGroup.Photos = append(favGroup.Photos, p)
		}

		album := p.EffectiveAlbum()
		if _, ok := byAlbum[album]; !ok {
			order = append(order, album)
		}
		byAlbum[album] = append(byAlbum[album], p)
	}

	groups := make([]dto.PhotoGroup, 0, len(order)+1)
	groups = append(groups, favGroup)
	for _, album := range order {
		groups = append(groups, dto.PhotoGroup{Title: album, Photos: byAlbum[album]})
	}

	return groups
}

// GroupByDate buckets every photo into exactly one date label relative
// to now. Buckets keep first-seen order: since the input is sorted by
// upload date descending, groups emerge newest-first on their own.
func GroupByDate(photos []entity.Photo, now time.Time) []dto.PhotoGroup {
	type dateGroup struct {
		rule    bucketRule
		offYear int
		photos  []entity.Photo
	}

	var order []string
	byKey := make(map[string]*dateGroup)

	for _, p := range photos {
		key, rule := dateBucket(p.UploadDate, now)

		g, ok := byKey[key]
		if !ok {
			g = &dateGroup{rule: rule}
			byKey[key] = g
			order = append(order, key)
		}
		g.photos = append(g.photos, p)

		// Weekday and month-day labels drop the year; remember it when
		// a photo in the bucket is not from the current year so the
		// title can be disambiguated.
		if rule == bucketWeekday || rule == bucketMonthDay {
			if year := p.UploadDate.In(now.Location()).Year(); year != now.Year() {
				g.offYear = year
			}
		}
	}

	groups := make([]dto.PhotoGroup, 0, len(order))
	for _, key := range order {
		g := byKey[key]

		title := key
		if g.offYear != 0 {
			title = fmt.Sprintf("%s, %d", key, g.offYear)
		}

		groups = append(groups, dto.PhotoGroup{Title: title, Photos: g.photos})
	}

	return groups
}

// TagFacets returns every distinct tag across the full photo set,
// first-seen order, deduplicated.
func TagFacets(photos []entity.Photo) []string {
	seen := make(map[string]struct{})

	var tags []string
	for _, p := range photos {
		for _, tag := range p.Tags {
			if _, ok := seen[tag]; ok {
				continue
			}
			seen[tag] = struct{}{}
			tags = append(tags, tag)
		}
	}

	return tags
}

// AlbumFacets returns the synthetic favorites entry followed by the
// distinct effective album names. A literal user album named like the
// favorites label is excluded to avoid colliding with the synthetic
// entry.
func AlbumFacets(photos []entity.Photo) []string {
	albums := []string{entity.FavoritesLabel}

	seen := make(map[string]struct{})
	for _, p := range photos {
		album := p.EffectiveAlbum()
		if album == entity.FavoritesLabel {
			continue
		}
		if _, ok := seen[album]; ok {
			continue
		}
		seen[album] = struct{}{}
		albums = append(albums, album)
	}

	return albums
}

func matchesSearch(p *entity.Photo, search string) bool {
	if strings.Contains(strings.ToLower(p.Description), search) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), search) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(p.EffectiveAlbum()), search)
}

func hasTag(p *entity.Photo, tag string) bool {
	for _, t := range p.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
