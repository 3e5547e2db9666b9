package repo

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/tareksherif64/Family-Photo-Storage/internal/entity"
)

type (
	// PhotoBlobRepo is the blob store: bytes live under an opaque key.
	PhotoBlobRepo interface {
		Upload(ctx context.Context, key string, data io.Reader, contentType string, size int64) error
		ResolveURL(ctx context.Context, key string) (string, error)
		Delete(ctx context.Context, key string) error
	}

	// PhotoMetadataRepo is the photo record store, partitioned by family.
	PhotoMetadataRepo interface {
		Create(ctx context.Context, photo *entity.Photo) error
		GetByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error)
		ListByFamily(ctx context.Context, familyID uuid.UUID) ([]entity.Photo, error)
		ListAlbums(ctx context.Context, familyID uuid.UUID) ([]string, error)
		Delete(ctx context.Context, id uuid.UUID) error
	}

	UserRepo interface {
		GetByID(ctx context.Context, id string) (*entity.UserProfile, error)
		SetFamily(ctx context.Context, userID string, familyID uuid.UUID) error
		AddFavorite(ctx context.Context, userID string, photoID uuid.UUID) error
		RemoveFavorite(ctx context.Context, userID string, photoID uuid.UUID) error
	}

	FamilyRepo interface {
		Create(ctx context.Context, family *entity.Family) error
		GetByNameLower(ctx context.Context, nameLower string) (*entity.Family, error)
		AddMember(ctx context.Context, familyID uuid.UUID, userID string) error
	}

	Transactor interface {
		WithinTransaction(ctx context.Context, f func(ctx context.Context) error) error
	}
)
