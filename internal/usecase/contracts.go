package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/tareksherif64/Family-Photo-Storage/internal/dto"
	"github.com/tareksherif64/Family-Photo-Storage/internal/entity"
)

type (
	// UploadUseCase is the photo write path: batch upload and deletion.
	UploadUseCase interface {
		UploadBatch(ctx context.Context, actorID string, form *dto.UploadForm) (*dto.BatchResult, error)
		DeletePhoto(ctx context.Context, actorID string, id uuid.UUID) error
	}

	// GalleryUseCase is the read path: filtered, grouped views over the
	// viewer's family photos plus the derived filter facets.
	GalleryUseCase interface {
		Gallery(ctx context.Context, viewerID string, q dto.GalleryQuery) (*dto.GalleryView, error)
		Facets(ctx context.Context, viewerID string) (*dto.Facets, error)
		Albums(ctx context.Context, viewerID string) ([]string, error)
	}

	FavoritesUseCase interface {
		Toggle(ctx context.Context, userID string, photoID uuid.UUID) (bool, error)
		Favorites(ctx context.Context, userID string) (map[uuid.UUID]struct{}, error)
	}

	FamilyUseCase interface {
		JoinOrCreate(ctx context.Context, userID, familyName string) (*entity.Family, error)
	}
)
