package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tareksherif64/Family-Photo-Storage/internal/dto"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/types/errs"
)

// @Summary  	Upload a batch of photos
// @Description Uploads every file concurrently: blob write, then photo record. Files fail independently; succeeded items stay persisted even when the batch reports failure.
// @Tags 		photos
// @Accept 		mpfd
// @Produce 	json
// @Param 		X-User-ID 	header 	 string true  "Acting user id"
// @Param 		files 		formData file 	true  "Image files"
// @Param 		description formData string false "Shared description"
// @Param 		tags 		formData string false "Comma-separated tags"
// @Param 		album 		formData string false "Existing album name"
// @Param 		new_album 	formData string false "New album name (wins over album)"
// @Success 	201 {object} dto.BatchResult
// @Failure 	400 {object} response.Error "Validation failed"
// @Failure 	403 {object} response.Error "Not in a family"
// @Failure 	422 {object} dto.BatchResult "Some items failed"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/photos [post]
func (r *V1) uploadPhotos(ctx *fiber.Ctx) error {
	userID := viewerID(ctx)
	if userID == "" {
		return errorResponse(ctx, http.StatusUnauthorized, "user id is required")
	}

	mf, err := ctx.MultipartForm()
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "multipart form is required")
	}

	form := dto.UploadForm{
		Description: ctx.FormValue("description"),
		Album:       ctx.FormValue("album"),
		NewAlbum:    ctx.FormValue("new_album"),
	}
	if tags := ctx.FormValue("tags"); tags != "" {
		form.Tags = strings.Split(tags, ",")
	}

	for _, header := range mf.File["files"] {
		file, err := header.Open()
		if err != nil {
			r.logger.Error(err, "restapi - v1 - uploadPhotos")

			return errorResponse(ctx, http.StatusInternalServerError, "problems with opening a file")
		}
		defer file.Close()

		form.Files = append(form.Files, dto.FileInput{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Data:        file,
		})
	}

	result, err := r.photos.UploadBatch(ctx.UserContext(), userID, &form)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrBatchFailed):
			// partial success: items carry their individual outcomes
			return ctx.Status(http.StatusUnprocessableEntity).JSON(result)
		case errors.Is(err, errs.ErrNotInFamily):
			return errorResponse(ctx, http.StatusForbidden, errs.ErrNotInFamily.Error())
		case isValidationErr(err):
			return errorResponse(ctx, http.StatusBadRequest, validationMessage(err))
		default:
			r.logger.Error(err, "restapi - v1 - uploadPhotos")

			return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
		}
	}

	return ctx.Status(http.StatusCreated).JSON(result)
}

// @Summary 	Delete a photo
// @Description Deletes the photo record, then its blob. Uploader only.
// @Tags 		photos
// @Param 		X-User-ID 	header string true "Acting user id"
// @Param		id 			path   string true "Photo ID(uuid)"
// @Success		204 "Deleted"
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	403 {object} response.Error "Not the uploader"
// @Failure 	404 {object} response.Error "Photo not found"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/photos/{id} [delete]
func (r *V1) deletePhoto(ctx *fiber.Ctx) error {
	userID := viewerID(ctx)
	if userID == "" {
		return errorResponse(ctx, http.StatusUnauthorized, "user id is required")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	err = r.photos.DeletePhoto(ctx.UserContext(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRecordNotFound):
			return errorResponse(ctx, http.StatusNotFound, "photo not found")
		case errors.Is(err, errs.ErrNotUploader):
			return errorResponse(ctx, http.StatusForbidden, errs.ErrNotUploader.Error())
		default:
			r.logger.Error(err, "restapi - v1 - deletePhoto")

			return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
		}
	}

	return ctx.SendStatus(http.StatusNoContent)
}

func isValidationErr(err error) bool {
	for _, sentinel := range []error{
		errs.ErrEmptySelection,
		errs.ErrNotAnImage,
		errs.ErrFileTooLarge,
		errs.ErrMissingAlbum,
		errs.ErrReservedAlbum,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// validationMessage strips the internal wrapping and keeps the
// sentinel's user-facing text.
func validationMessage(err error) string {
	for _, sentinel := range []error{
		errs.ErrEmptySelection,
		errs.ErrNotAnImage,
		errs.ErrFileTooLarge,
		errs.ErrMissingAlbum,
		errs.ErrReservedAlbum,
	} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return "validation failed"
}
