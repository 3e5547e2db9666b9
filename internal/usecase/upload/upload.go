package upload

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tareksherif64/Family-Photo-Storage/internal/dto"
	"github.com/tareksherif64/Family-Photo-Storage/internal/entity"
	"github.com/tareksherif64/Family-Photo-Storage/internal/infrastructure"
	"github.com/tareksherif64/Family-Photo-Storage/internal/repo"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/logger"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/types/errs"
	"golang.org/x/sync/errgroup"
)

type UploadUseCase struct {
	blobRepo  repo.PhotoBlobRepo
	photoRepo repo.PhotoMetadataRepo
	userRepo  repo.UserRepo
	events    infrastructure.ActivityPublisher

	logger logger.Interface

	workers     int
	maxFileSize int64
	now         func() time.Time
}

func New(
	blobRepo repo.PhotoBlobRepo,
	photoRepo repo.PhotoMetadataRepo,
	userRepo repo.UserRepo,
	events infrastructure.ActivityPublisher,
	l logger.Interface,
	workers int,
	maxFileSize int64,
) *UploadUseCase {
	if workers < 1 {
		workers = 1
	}

	return &UploadUseCase{
		blobRepo:    blobRepo,
		photoRepo:   photoRepo,
		userRepo:    userRepo,
		events:      events,
		logger:      l,
		workers:     workers,
		maxFileSize: maxFileSize,
		now:         time.Now,
	}
}

// batchMeta is the shared metadata applied to every file of one batch.
type batchMeta struct {
	familyID    uuid.UUID
	actorID     string
	actorName   string
	description string
	album       string
	tags        []string
	base        time.Time
}

// UploadBatch drives every file of the form through blob write and
// record creation on a bounded worker pool. Files fail independently:
// one item's failure never cancels or rolls back its siblings. After
// all items settle, a batch error is raised if any failed; succeeded
// items stay persisted either way. On full success the submitted form
// state is cleared.
func (uc *UploadUseCase) UploadBatch(ctx context.Context, actorID string, form *dto.UploadForm) (*dto.BatchResult, error) {
	// 1. validation, before any I/O
	album, tags, err := uc.validate(form)
	if err != nil {
		return nil, fmt.Errorf("UploadUseCase - UploadBatch - uc.validate: %w", err)
	}

	// 2. resolve the acting user's family
	user, err := uc.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("UploadUseCase - UploadBatch - uc.userRepo.GetByID: %w", err)
	}
	if user.FamilyID == nil {
		return nil, fmt.Errorf("UploadUseCase - UploadBatch: %w", errs.ErrNotInFamily)
	}

	actorName := user.DisplayName
	if actorName == "" {
		actorName = user.Email
	}

	meta := batchMeta{
		familyID:    *user.FamilyID,
		actorID:     actorID,
		actorName:   actorName,
		description: strings.TrimSpace(form.Description),
		album:       album,
		tags:        tags,
		base:        uc.now().UTC(),
	}

	items := make([]*Item, len(form.Files))
	for i, file := range form.Files {
		items[i] = &Item{FileName: file.Name}
	}

	// 3. upload concurrently on a bounded pool
	var eg errgroup.Group
	eg.SetLimit(uc.workers)

	for i := range form.Files {
		idx := i
		file := form.Files[i]
		item := items[i]

		eg.Go(func() error {
			// A worker never returns an error: per-item failures stay
			// on the item so siblings keep running.
			if err := uc.uploadOne(ctx, meta, idx, file, item); err != nil {
				item.fail(err)
				uc.logger.Error(err, "UploadUseCase - UploadBatch - uc.uploadOne")
			}
			return nil
		})
	}

	_ = eg.Wait()

	// 4. batch join: collect per-item outcomes
	result := &dto.BatchResult{Items: make([]dto.ItemResult, len(items))}
	for i, item := range items {
		res := dto.ItemResult{
			FileName: item.FileName,
			Progress: item.Progress(),
		}

		if err := item.Err(); err != nil {
			res.Error = err.Error()
			result.Failed++
		} else {
			res.PhotoID = item.PhotoID.String()
		}

		result.Items[i] = res
	}

	if result.Failed > 0 {
		return result, fmt.Errorf("UploadUseCase - UploadBatch: %w", errs.ErrBatchFailed)
	}

	// 5. full success clears the transient form state
	*form = dto.UploadForm{}

	return result, nil
}

func (uc *UploadUseCase) uploadOne(ctx context.Context, meta batchMeta, idx int, file dto.FileInput, item *Item) error {
	// The base timestamp offset by the item's position keeps keys
	// unique even for same-millisecond batches.
	key := fmt.Sprintf("families/%s/%s_%d_%s", meta.familyID, meta.actorID, meta.base.UnixMilli()+int64(idx), file.Name)

	// 1. write the blob, observing byte-level progress
	reader := &progressReader{r: file.Data, total: file.Size, item: item}
	err := uc.blobRepo.Upload(ctx, key, reader, file.ContentType, file.Size)
	if err != nil {
		return fmt.Errorf("uc.blobRepo.Upload: %w", err)
	}

	// 2. resolve a retrievable URL
	url, err := uc.blobRepo.ResolveURL(ctx, key)
	if err != nil {
		return fmt.Errorf("uc.blobRepo.ResolveURL: %w", err)
	}

	// 3. create the photo record
	photo := &entity.Photo{
		ID:             uuid.New(),
		FamilyID:       meta.familyID,
		ImagePath:      key,
		DownloadURL:    url,
		FileName:       file.Name,
		Description:    meta.description,
		Tags:           meta.tags,
		Album:          meta.album,
		UploadDate:     uc.now().UTC(),
		UploadedBy:     meta.actorID,
		UploadedByName: meta.actorName,
		FileSize:       file.Size,
		FileType:       file.ContentType,
	}

	err = uc.photoRepo.Create(ctx, photo)
	if err != nil {
		return fmt.Errorf("uc.photoRepo.Create: %w", err)
	}

	item.PhotoID = photo.ID
	item.setProgress(100)

	uc.publish(ctx, dto.ActivityPhotoUploaded, photo.ID, meta.familyID, meta.actorID)

	return nil
}

// DeletePhoto removes a photo record and its blob. Only the uploader
// may delete. The record goes first: if the blob delete fails the
// record is already gone - an orphan blob beats a dangling record.
func (uc *UploadUseCase) DeletePhoto(ctx context.Context, actorID string, id uuid.UUID) error {
	photo, err := uc.photoRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("UploadUseCase - DeletePhoto - uc.photoRepo.GetByID: %w", err)
	}

	if photo.UploadedBy != actorID {
		return fmt.Errorf("UploadUseCase - DeletePhoto: %w", errs.ErrNotUploader)
	}

	err = uc.photoRepo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("UploadUseCase - DeletePhoto - uc.photoRepo.Delete: %w", err)
	}

	err = uc.blobRepo.Delete(ctx, photo.ImagePath)
	if err != nil {
		uc.logger.Warn("failed to delete key=%s, error=%v", photo.ImagePath, err)
	}

	uc.publish(ctx, dto.ActivityPhotoDeleted, photo.ID, photo.FamilyID, actorID)

	return nil
}

func (uc *UploadUseCase) validate(form *dto.UploadForm) (string, []string, error) {
	if len(form.Files) == 0 {
		return "", nil, errs.ErrEmptySelection
	}

	for _, file := range form.Files {
		if !strings.HasPrefix(file.ContentType, "image/") {
			return "", nil, errs.ErrNotAnImage
		}
		if uc.maxFileSize > 0 && file.Size > uc.maxFileSize {
			return "", nil, errs.ErrFileTooLarge
		}
	}

	// A freshly typed album wins over a picked one.
	album := strings.TrimSpace(form.NewAlbum)
	if album == "" {
		album = strings.TrimSpace(form.Album)
	}
	if album == "" {
		return "", nil, errs.ErrMissingAlbum
	}
	if album == entity.FavoritesLabel {
		return "", nil, errs.ErrReservedAlbum
	}

	return album, dedupeTags(form.Tags), nil
}

func (uc *UploadUseCase) publish(ctx context.Context, eventType string, photoID, familyID uuid.UUID, actorID string) {
	err := uc.events.PublishActivity(ctx, dto.ActivityEvent{
		Type:       eventType,
		PhotoID:    photoID,
		FamilyID:   familyID,
		ActorID:    actorID,
		OccurredAt: uc.now().UTC(),
	})
	if err != nil {
		uc.logger.Warn("failed to publish %s for photo=%s, error=%v", eventType, photoID, err)
	}
}

// dedupeTags trims and deduplicates tags, keeping input order.
func dedupeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))

	var out []string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}

	return out
}
