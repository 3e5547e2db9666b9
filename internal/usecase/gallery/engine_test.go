package gallery

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tareksherif64/Family-Photo-Storage/internal/entity"
)

func newPhoto(album, description string, tags ...string) entity.Photo {
	return entity.Photo{
		ID:          uuid.New(),
		Album:       album,
		Description: description,
		Tags:        tags,
	}
}

func TestFilterFavoritesShortCircuit(t *testing.T) {
	beach := newPhoto("Summer", "beach day", "sun")
	hike := newPhoto("Trips", "mountain hike", "forest")
	cake := newPhoto("Summer", "birthday cake")

	favorites := map[uuid.UUID]struct{}{hike.ID: {}}

	// every other criterion is ignored once favorites is selected
	got := Filter([]entity.Photo{beach, hike, cake}, favorites, Criteria{
		Album:  entity.FavoritesLabel,
		Search: "beach",
		Tag:    "sun",
	})

	require.Len(t, got, 1)
	assert.Equal(t, hike.ID, got[0].ID)
}

func TestFilterSearch(t *testing.T) {
	beach := newPhoto("Summer", "Beach day", "Sunset")
	hike := newPhoto("Trips", "mountain hike")
	blank := newPhoto("", "no album here")

	photos := []entity.Photo{beach, hike, blank}

	tests := []struct {
		name   string
		search string
		want   []uuid.UUID
	}{
		{
			name:   "description, case-insensitive",
			search: "BEACH",
			want:   []uuid.UUID{beach.ID},
		},
		{
			name:   "tag substring",
			search: "sunset",
			want:   []uuid.UUID{beach.ID},
		},
		{
			name:   "album substring",
			search: "trip",
			want:   []uuid.UUID{hike.ID},
		},
		{
			name:   "blank album searches as the default album",
			search: "default",
			want:   []uuid.UUID{blank.ID},
		},
		{
			name:   "whitespace-only search matches everything",
			search: "   ",
			want:   []uuid.UUID{beach.ID, hike.ID, blank.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(photos, nil, Criteria{Search: tt.search})

			ids := make([]uuid.UUID, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ID)
			}

			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterTagIsExact(t *testing.T) {
	sun := newPhoto("Summer", "", "sun")
	sunset := newPhoto("Summer", "", "sunset")

	got := Filter([]entity.Photo{sun, sunset}, nil, Criteria{Tag: "sun"})

	require.Len(t, got, 1)
	assert.Equal(t, sun.ID, got[0].ID)
}

func TestFilterAlbumMatchesEffectiveAlbum(t *testing.T) {
	blank := newPhoto("", "")
	named := newPhoto("Trips", "")

	got := Filter([]entity.Photo{blank, named}, nil, Criteria{Album: entity.DefaultAlbum})

	require.Len(t, got, 1)
	assert.Equal(t, blank.ID, got[0].ID)
}

func TestFilterCriteriaCombine(t *testing.T) {
	match := newPhoto("Trips", "mountain hike", "forest")
	wrongTag := newPhoto("Trips", "mountain walk", "city")
	wrongAlbum := newPhoto("Summer", "mountain hike", "forest")

	got := Filter([]entity.Photo{match, wrongTag, wrongAlbum}, nil, Criteria{
		Search: "mountain",
		Tag:    "forest",
		Album:  "Trips",
	})

	require.Len(t, got, 1)
	assert.Equal(t, match.ID, got[0].ID)
}

func TestGroupByAlbum(t *testing.T) {
	beach := newPhoto("Summer", "")
	hike := newPhoto("Trips", "")
	cake := newPhoto("Summer", "")
	blank := newPhoto("", "")

	favorites := map[uuid.UUID]struct{}{hike.ID: {}}

	groups := GroupByAlbum([]entity.Photo{beach, hike, cake, blank}, favorites)

	require.Len(t, groups, 4)

	// synthetic favorites group always leads
	assert.Equal(t, entity.FavoritesLabel, groups[0].Title)
	require.Len(t, groups[0].Photos, 1)
	assert.Equal(t, hike.ID, groups[0].Photos[0].ID)

	// remaining albums in first-seen order, blank album under the default
	assert.Equal(t, "Summer", groups[1].Title)
	assert.Len(t, groups[1].Photos, 2)
	assert.Equal(t, "Trips", groups[2].Title)
	assert.Equal(t, entity.DefaultAlbum, groups[3].Title)

	// a favorited photo stays in its real album group too
	require.Len(t, groups[2].Photos, 1)
	assert.Equal(t, hike.ID, groups[2].Photos[0].ID)
}

func TestGroupByAlbumEmptyFavorites(t *testing.T) {
	beach := newPhoto("Summer", "")

	groups := GroupByAlbum([]entity.Photo{beach}, nil)

	require.Len(t, groups, 2)
	assert.Equal(t, entity.FavoritesLabel, groups[0].Title)
	assert.Empty(t, groups[0].Photos)
}

func TestGroupByDate(t *testing.T) {
	// Friday
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	at := func(date time.Time) entity.Photo {
		p := newPhoto("Summer", "")
		p.UploadDate = date
		return p
	}

	photos := []entity.Photo{
		at(time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)),
		at(time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)),
		at(time.Date(2024, time.March, 14, 20, 0, 0, 0, time.UTC)),
		at(time.Date(2024, time.March, 10, 11, 0, 0, 0, time.UTC)),
		at(time.Date(2024, time.March, 5, 7, 0, 0, 0, time.UTC)),
		at(time.Date(2023, time.March, 10, 7, 0, 0, 0, time.UTC)),
	}

	groups := GroupByDate(photos, now)

	require.Len(t, groups, 5)

	wantTitles := []string{"Today", "Yesterday", "Sunday", "March 5", "March 10, 2023"}
	for i, want := range wantTitles {
		assert.Equal(t, want, groups[i].Title)
	}

	// every photo lands in exactly one bucket
	total := 0
	for _, g := range groups {
		total += len(g.Photos)
	}
	assert.Equal(t, len(photos), total)

	assert.Len(t, groups[0].Photos, 2)
}

func TestGroupByDateYearDisambiguation(t *testing.T) {
	// Tuesday; the week begins Sunday December 31 of the previous year
	now := time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC)

	p := newPhoto("Summer", "")
	p.UploadDate = time.Date(2023, time.December, 31, 10, 0, 0, 0, time.UTC)

	groups := GroupByDate([]entity.Photo{p}, now)

	require.Len(t, groups, 1)
	assert.Equal(t, "Sunday, 2023", groups[0].Title)
}

func TestTagFacets(t *testing.T) {
	first := newPhoto("", "", "a", "b")
	second := newPhoto("", "", "b", "c")
	third := newPhoto("", "")

	got := TagFacets([]entity.Photo{first, second, third})

	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestAlbumFacets(t *testing.T) {
	photos := []entity.Photo{
		newPhoto("Summer", ""),
		newPhoto("Trips", ""),
		newPhoto("Summer", ""),
		newPhoto("", ""),
		// a literal album named like the reserved label never surfaces
		newPhoto(entity.FavoritesLabel, ""),
	}

	got := AlbumFacets(photos)

	assert.Equal(t, []string{entity.FavoritesLabel, "Summer", "Trips", entity.DefaultAlbum}, got)
}

func TestAlbumFacetsNoPhotos(t *testing.T) {
	got := AlbumFacets(nil)

	assert.Equal(t, []string{entity.FavoritesLabel}, got)
}
