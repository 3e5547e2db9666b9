package gallery

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tareksherif64/Family-Photo-Storage/internal/dto"
	"github.com/tareksherif64/Family-Photo-Storage/internal/entity"
	"github.com/tareksherif64/Family-Photo-Storage/internal/repo"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/logger"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/types/errs"
)

// FavoritesSource exposes the viewer's favorites set, including any
// optimistic in-flight toggles.
type FavoritesSource interface {
	Favorites(ctx context.Context, userID string) (map[uuid.UUID]struct{}, error)
}

type GalleryUseCase struct {
	userRepo  repo.UserRepo
	photoRepo repo.PhotoMetadataRepo
	blobRepo  repo.PhotoBlobRepo
	favorites FavoritesSource

	logger logger.Interface
	now    func() time.Time
}

func New(
	userRepo repo.UserRepo,
	photoRepo repo.PhotoMetadataRepo,
	blobRepo repo.PhotoBlobRepo,
	favorites FavoritesSource,
	l logger.Interface,
) *GalleryUseCase {
	return &GalleryUseCase{
		userRepo:  userRepo,
		photoRepo: photoRepo,
		blobRepo:  blobRepo,
		favorites: favorites,
		logger:    l,
		now:       time.Now,
	}
}

// Gallery returns the viewer's family photos filtered and grouped per
// the query. The engine itself is pure; this method only assembles its
// inputs: family records newest-first, resolved URLs, favorites set.
func (uc *GalleryUseCase) Gallery(ctx context.Context, viewerID string, q dto.GalleryQuery) (*dto.GalleryView, error) {
	familyID, err := uc.familyOf(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("GalleryUseCase - Gallery - uc.familyOf: %w", err)
	}

	photos, err := uc.photoRepo.ListByFamily(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("GalleryUseCase - Gallery - uc.photoRepo.ListByFamily: %w", err)
	}

	photos = uc.resolveURLs(ctx, photos)

	favorites, err := uc.favorites.Favorites(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("GalleryUseCase - Gallery - uc.favorites.Favorites: %w", err)
	}

	filtered := Filter(photos, favorites, Criteria{
		Search: q.Search,
		Tag:    q.Tag,
		Album:  q.Album,
	})

	var groups []dto.PhotoGroup
	switch q.Mode {
	case dto.GroupByAlbum:
		groups = GroupByAlbum(filtered, favorites)
	default:
		groups = GroupByDate(filtered, uc.now())
	}

	return &dto.GalleryView{
		Groups: groups,
		Total:  len(filtered),
	}, nil
}

// Facets derives the tag and album filter options from the full
// unfiltered family photo set.
func (uc *GalleryUseCase) Facets(ctx context.Context, viewerID string) (*dto.Facets, error) {
	familyID, err := uc.familyOf(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("GalleryUseCase - Facets - uc.familyOf: %w", err)
	}

	photos, err := uc.photoRepo.ListByFamily(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("GalleryUseCase - Facets - uc.photoRepo.ListByFamily: %w", err)
	}

	return &dto.Facets{
		Tags:   TagFacets(photos),
		Albums: AlbumFacets(photos),
	}, nil
}

// Albums returns the distinct album names of the viewer's family, for
// the upload form's album picker.
func (uc *GalleryUseCase) Albums(ctx context.Context, viewerID string) ([]string, error) {
	familyID, err := uc.familyOf(ctx, viewerID)
	if err != nil {
		return nil, fmt.Errorf("GalleryUseCase - Albums - uc.familyOf: %w", err)
	}

	albums, err := uc.photoRepo.ListAlbums(ctx, familyID)
	if err != nil {
		return nil, fmt.Errorf("GalleryUseCase - Albums - uc.photoRepo.ListAlbums: %w", err)
	}

	return albums, nil
}

func (uc *GalleryUseCase) familyOf(ctx context.Context, viewerID string) (uuid.UUID, error) {
	user, err := uc.userRepo.GetByID(ctx, viewerID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("uc.userRepo.GetByID: %w", err)
	}

	if user.FamilyID == nil {
		return uuid.Nil, errs.ErrNotInFamily
	}

	return *user.FamilyID, nil
}

// resolveURLs fills DownloadURL per photo. A photo whose URL cannot be
// resolved is dropped from the view, not fatal to the whole read.
func (uc *GalleryUseCase) resolveURLs(ctx context.Context, photos []entity.Photo) []entity.Photo {
	resolved := photos[:0]

	for _, p := range photos {
		url, err := uc.blobRepo.ResolveURL(ctx, p.ImagePath)
		if err != nil {
			uc.logger.Warn("failed to resolve url for photo=%s, error=%v", p.ID, err)
			continue
		}

		p.DownloadURL = url
		resolved = append(resolved, p)
	}

	return resolved
}
