package gallery

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tareksherif64/Family-Photo-Storage/internal/dto"
	"github.com/tareksherif64/Family-Photo-Storage/internal/entity"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/logger"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/types/errs"
)

type userRepoStub struct {
	user *entity.UserProfile
}

func (s *userRepoStub) GetByID(_ context.Context, id string) (*entity.UserProfile, error) {
	if s.user == nil || s.user.ID != id {
		return nil, errs.ErrRecordNotFound
	}

	u := *s.user

	return &u, nil
}

func (s *userRepoStub) SetFamily(_ context.Context, _ string, _ uuid.UUID) error    { return nil }
func (s *userRepoStub) AddFavorite(_ context.Context, _ string, _ uuid.UUID) error { return nil }
func (s *userRepoStub) RemoveFavorite(_ context.Context, _ string, _ uuid.UUID) error {
	return nil
}

type photoRepoStub struct {
	photos []entity.Photo
	albums []string
}

func (s *photoRepoStub) Create(_ context.Context, _ *entity.Photo) error { return nil }

func (s *photoRepoStub) GetByID(_ context.Context, _ uuid.UUID) (*entity.Photo, error) {
	return nil, errs.ErrRecordNotFound
}

func (s *photoRepoStub) ListByFamily(_ context.Context, _ uuid.UUID) ([]entity.Photo, error) {
	return append([]entity.Photo(nil), s.photos...), nil
}

func (s *photoRepoStub) ListAlbums(_ context.Context, _ uuid.UUID) ([]string, error) {
	return s.albums, nil
}

func (s *photoRepoStub) Delete(_ context.Context, _ uuid.UUID) error { return nil }

type blobRepoStub struct {
	failOn string // ResolveURL fails when the key matches
}

func (s *blobRepoStub) Upload(_ context.Context, _ string, _ io.Reader, _ string, _ int64) error {
	return nil
}

func (s *blobRepoStub) ResolveURL(_ context.Context, key string) (string, error) {
	if s.failOn != "" && key == s.failOn {
		return "", errors.New("key not found")
	}

	return "https://blob.local/" + key, nil
}

func (s *blobRepoStub) Delete(_ context.Context, _ string) error { return nil }

type favoritesStub struct {
	set map[uuid.UUID]struct{}
}

func (s *favoritesStub) Favorites(_ context.Context, _ string) (map[uuid.UUID]struct{}, error) {
	return s.set, nil
}

func newTestGallery(photos *photoRepoStub, blob *blobRepoStub, favorites *favoritesStub, user *entity.UserProfile) *GalleryUseCase {
	uc := New(&userRepoStub{user: user}, photos, blob, favorites, logger.New("error"))
	uc.now = func() time.Time {
		return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
	}

	return uc
}

func viewerProfile() *entity.UserProfile {
	familyID := uuid.New()

	return &entity.UserProfile{ID: "viewer-1", FamilyID: &familyID}
}

func TestGallery(t *testing.T) {
	beach := newPhoto("Summer", "beach day", "sun")
	beach.ImagePath = "families/f/beach.jpg"
	beach.UploadDate = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	hike := newPhoto("Trips", "mountain hike")
	hike.ImagePath = "families/f/hike.jpg"
	hike.UploadDate = time.Date(2024, time.March, 14, 9, 0, 0, 0, time.UTC)

	photos := &photoRepoStub{photos: []entity.Photo{beach, hike}}
	uc := newTestGallery(photos, &blobRepoStub{}, &favoritesStub{}, viewerProfile())

	view, err := uc.Gallery(context.Background(), "viewer-1", dto.GalleryQuery{Mode: dto.GroupByDate})
	require.NoError(t, err)

	assert.Equal(t, 2, view.Total)
	require.Len(t, view.Groups, 2)
	assert.Equal(t, "Today", view.Groups[0].Title)
	assert.Equal(t, "Yesterday", view.Groups[1].Title)

	// every served photo carries a resolved URL
	for _, g := range view.Groups {
		for _, p := range g.Photos {
			assert.NotEmpty(t, p.DownloadURL)
		}
	}
}

func TestGalleryDropsUnresolvablePhotos(t *testing.T) {
	beach := newPhoto("Summer", "beach day")
	beach.ImagePath = "families/f/beach.jpg"
	beach.UploadDate = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	gone := newPhoto("Summer", "lost blob")
	gone.ImagePath = "families/f/gone.jpg"
	gone.UploadDate = time.Date(2024, time.March, 15, 8, 0, 0, 0, time.UTC)

	photos := &photoRepoStub{photos: []entity.Photo{beach, gone}}
	blob := &blobRepoStub{failOn: "families/f/gone.jpg"}
	uc := newTestGallery(photos, blob, &favoritesStub{}, viewerProfile())

	view, err := uc.Gallery(context.Background(), "viewer-1", dto.GalleryQuery{Mode: dto.GroupByDate})
	require.NoError(t, err)

	assert.Equal(t, 1, view.Total)
	require.Len(t, view.Groups, 1)
	assert.Equal(t, beach.ID, view.Groups[0].Photos[0].ID)
}

func TestGalleryFavoritesAlbum(t *testing.T) {
	beach := newPhoto("Summer", "beach day")
	beach.ImagePath = "families/f/beach.jpg"
	beach.UploadDate = time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)

	hike := newPhoto("Trips", "mountain hike")
	hike.ImagePath = "families/f/hike.jpg"
	hike.UploadDate = time.Date(2024, time.March, 14, 9, 0, 0, 0, time.UTC)

	photos := &photoRepoStub{photos: []entity.Photo{beach, hike}}
	favorites := &favoritesStub{set: map[uuid.UUID]struct{}{hike.ID: {}}}
	uc := newTestGallery(photos, &blobRepoStub{}, favorites, viewerProfile())

	view, err := uc.Gallery(context.Background(), "viewer-1", dto.GalleryQuery{
		Album: entity.FavoritesLabel,
		Mode:  dto.GroupByDate,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, view.Total)
	require.Len(t, view.Groups, 1)
	assert.Equal(t, hike.ID, view.Groups[0].Photos[0].ID)
}

func TestGalleryRequiresFamily(t *testing.T) {
	uc := newTestGallery(&photoRepoStub{}, &blobRepoStub{}, &favoritesStub{}, &entity.UserProfile{ID: "viewer-1"})

	_, err := uc.Gallery(context.Background(), "viewer-1", dto.GalleryQuery{})

	assert.ErrorIs(t, err, errs.ErrNotInFamily)
}

func TestFacets(t *testing.T) {
	photos := &photoRepoStub{photos: []entity.Photo{
		newPhoto("Summer", "", "a", "b"),
		newPhoto("Trips", "", "b", "c"),
	}}
	uc := newTestGallery(photos, &blobRepoStub{}, &favoritesStub{}, viewerProfile())

	facets, err := uc.Facets(context.Background(), "viewer-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c"}, facets.Tags)
	assert.Equal(t, []string{entity.FavoritesLabel, "Summer", "Trips"}, facets.Albums)
}

func TestAlbums(t *testing.T) {
	photos := &photoRepoStub{albums: []string{"Summer", "Trips"}}
	uc := newTestGallery(photos, &blobRepoStub{}, &favoritesStub{}, viewerProfile())

	albums, err := uc.Albums(context.Background(), "viewer-1")
	require.NoError(t, err)

	assert.Equal(t, []string{"Summer", "Trips"}, albums)
}
