package errs

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")

	// Validation errors - surfaced before any I/O.
	ErrEmptySelection    = errors.New("selection must contain at least one file")
	ErrNotAnImage        = errors.New("selection must contain only image files")
	ErrFileTooLarge      = errors.New("file is too large")
	ErrMissingAlbum      = errors.New("an existing or a new album name is required")
	ErrReservedAlbum     = errors.New("album name is reserved")
	ErrNotInFamily       = errors.New("user is not part of a family")
	ErrMissingFamilyName = errors.New("family name is required")

	// ErrBatchFailed is raised after all upload items settle, if at
	// least one failed. Callers inspect the items to learn which.
	ErrBatchFailed = errors.New("one or more uploads failed")

	ErrToggleInFlight = errors.New("favorite toggle already in flight")
	ErrNotUploader    = errors.New("only the uploader may delete a photo")
)
