package persistent

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tareksherif64/Family-Photo-Storage/internal/entity"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/postgres"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/types/errs"
)

const (
	// Table
	photosTable = "photos"

	// Columns
	idColumn             = "id"
	familyIDColumn       = "family_id"
	imagePathColumn      = "image_path"
	fileNameColumn       = "file_name"
	descriptionColumn    = "description"
	tagsColumn           = "tags"
	albumColumn          = "album"
	uploadDateColumn     = "upload_date"
	uploadedByColumn     = "uploaded_by"
	uploadedByNameColumn = "uploaded_by_name"
	fileSizeColumn       = "file_size"
	fileTypeColumn       = "file_type"
)

type PhotoMetadataRepo struct {
	*postgres.Postgres
}

func NewPhotoMetadataRepo(pg *postgres.Postgres) *PhotoMetadataRepo {
	return &PhotoMetadataRepo{pg}
}

func (r *PhotoMetadataRepo) Create(ctx context.Context, photo *entity.Photo) error {
	sql, args, err := r.Builder.
		Insert(photosTable).
		Columns(
			idColumn,
			familyIDColumn,
			imagePathColumn,
			fileNameColumn,
			descriptionColumn,
			tagsColumn,
			albumColumn,
			uploadDateColumn,
			uploadedByColumn,
			uploadedByNameColumn,
			fileSizeColumn,
			fileTypeColumn,
		).
		Values(
			photo.ID,
			photo.FamilyID,
			photo.ImagePath,
			photo.FileName,
			photo.Description,
			photo.Tags,
			photo.Album,
			photo.UploadDate,
			photo.UploadedBy,
			photo.UploadedByName,
			photo.FileSize,
			photo.FileType,
		).ToSql()
	if err != nil {
		return fmt.Errorf("PhotoMetadataRepo - Create - r.Builder.ToSql: %w", err)
	}

	// Pool / Tx
	executor := r.GetExecutor(ctx)

	_, err = executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("PhotoMetadataRepo - Create - executor.Exec: %w", err)
	}

	return nil
}

func (r *PhotoMetadataRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	sql, args, err := r.selectPhoto().
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PhotoMetadataRepo - GetByID - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	var photo entity.Photo
	err = executor.QueryRow(ctx, sql, args...).Scan(
		&photo.ID,
		&photo.FamilyID,
		&photo.ImagePath,
		&photo.FileName,
		&photo.Description,
		&photo.Tags,
		&photo.Album,
		&photo.UploadDate,
		&photo.UploadedBy,
		&photo.UploadedByName,
		&photo.FileSize,
		&photo.FileType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("PhotoMetadataRepo - GetByID: %w", errs.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("PhotoMetadataRepo - GetByID - executor.QueryRow: %w", err)
	}

	return &photo, nil
}

// ListByFamily returns the family's photos newest-first. Everything
// downstream (grouping, facets) relies on this order.
func (r *PhotoMetadataRepo) ListByFamily(ctx context.Context, familyID uuid.UUID) ([]entity.Photo, error) {
	sql, args, err := r.selectPhoto().
		Where(squirrel.Eq{familyIDColumn: familyID}).
		OrderBy(uploadDateColumn + " DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PhotoMetadataRepo - ListByFamily - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("PhotoMetadataRepo - ListByFamily - executor.Query: %w", err)
	}
	defer rows.Close()

	var photos []entity.Photo
	for rows.Next() {
		var photo entity.Photo
		err = rows.Scan(
			&photo.ID,
			&photo.FamilyID,
			&photo.ImagePath,
			&photo.FileName,
			&photo.Description,
			&photo.Tags,
			&photo.Album,
			&photo.UploadDate,
			&photo.UploadedBy,
			&photo.UploadedByName,
			&photo.FileSize,
			&photo.FileType,
		)
		if err != nil {
			return nil, fmt.Errorf("PhotoMetadataRepo - ListByFamily - rows.Scan: %w", err)
		}
		photos = append(photos, photo)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PhotoMetadataRepo - ListByFamily - rows.Err: %w", err)
	}

	return photos, nil
}

// ListAlbums returns the distinct non-empty album names of one family.
// Scoped by family id so album names never leak across families.
func (r *PhotoMetadataRepo) ListAlbums(ctx context.Context, familyID uuid.UUID) ([]string, error) {
	sql, args, err := r.Builder.
		Select(albumColumn).
		Distinct().
		From(photosTable).
		Where(squirrel.And{
			squirrel.Eq{familyIDColumn: familyID},
			squirrel.NotEq{albumColumn: ""},
		}).
		OrderBy(albumColumn).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("PhotoMetadataRepo - ListAlbums - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	rows, err := executor.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("PhotoMetadataRepo - ListAlbums - executor.Query: %w", err)
	}
	defer rows.Close()

	var albums []string
	for rows.Next() {
		var album string
		if err = rows.Scan(&album); err != nil {
			return nil, fmt.Errorf("PhotoMetadataRepo - ListAlbums - rows.Scan: %w", err)
		}
		albums = append(albums, album)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("PhotoMetadataRepo - ListAlbums - rows.Err: %w", err)
	}

	return albums, nil
}

func (r *PhotoMetadataRepo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := r.Builder.
		Delete(photosTable).
		Where(squirrel.Eq{idColumn: id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("PhotoMetadataRepo - Delete - r.Builder.ToSql: %w", err)
	}

	executor := r.GetExecutor(ctx)

	tag, err := executor.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("PhotoMetadataRepo - Delete - executor.Exec: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("PhotoMetadataRepo - Delete: %w", errs.ErrRecordNotFound)
	}

	return nil
}

func (r *PhotoMetadataRepo) selectPhoto() squirrel.SelectBuilder {
	return r.Builder.
		Select(
			idColumn,
			familyIDColumn,
			imagePathColumn,
			fileNameColumn,
			descriptionColumn,
			tagsColumn,
			albumColumn,
			uploadDateColumn,
			uploadedByColumn,
			uploadedByNameColumn,
			fileSizeColumn,
			fileTypeColumn,
		).
		From(photosTable)
}
