package v1

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/tareksherif64/Family-Photo-Storage/internal/dto"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/types/errs"
)

// @Summary 	Browse the family gallery
// @Description Returns the viewer's family photos filtered by search/tag/album and grouped by date bucket or album. album=Favorites returns exactly the favorited photos.
// @Tags 		photos
// @Produce 	json
// @Param 		X-User-ID 	header string true  "Acting user id"
// @Param 		search 		query  string false "Case-insensitive substring over description, tags, album"
// @Param 		tag 		query  string false "Exact tag"
// @Param 		album 		query  string false "Effective album name, or Favorites"
// @Param 		group 		query  string false "Grouping mode" Enums(date, album) default(date)
// @Success 	200 {object} dto.GalleryView
// @Failure 	400 {object} response.Error "Invalid group mode"
// @Failure 	403 {object} response.Error "Not in a family"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/photos [get]
func (r *V1) getGallery(ctx *fiber.Ctx) error {
	userID := viewerID(ctx)
	if userID == "" {
		return errorResponse(ctx, http.StatusUnauthorized, "user id is required")
	}

	mode := dto.GroupMode(ctx.Query("group", string(dto.GroupByDate)))
	if mode != dto.GroupByDate && mode != dto.GroupByAlbum {
		return errorResponse(ctx, http.StatusBadRequest, "invalid group mode. Allowed: date, album")
	}

	view, err := r.gallery.Gallery(ctx.UserContext(), userID, dto.GalleryQuery{
		Search: ctx.Query("search"),
		Tag:    ctx.Query("tag"),
		Album:  ctx.Query("album"),
		Mode:   mode,
	})
	if err != nil {
		return r.readError(ctx, err, "restapi - v1 - getGallery")
	}

	return ctx.JSON(view)
}

// @Summary 	Filter facets
// @Description Distinct tags and album names of the viewer's family, for filter pickers. Albums lead with the synthetic Favorites entry.
// @Tags 		photos
// @Produce 	json
// @Param 		X-User-ID header string true "Acting user id"
// @Success 	200 {object} dto.Facets
// @Failure 	403 {object} response.Error "Not in a family"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/facets [get]
func (r *V1) getFacets(ctx *fiber.Ctx) error {
	userID := viewerID(ctx)
	if userID == "" {
		return errorResponse(ctx, http.StatusUnauthorized, "user id is required")
	}

	facets, err := r.gallery.Facets(ctx.UserContext(), userID)
	if err != nil {
		return r.readError(ctx, err, "restapi - v1 - getFacets")
	}

	return ctx.JSON(facets)
}

// @Summary 	Album names
// @Description Distinct album names of the viewer's family, for the upload form's album picker.
// @Tags 		photos
// @Produce 	json
// @Param 		X-User-ID header string true "Acting user id"
// @Success 	200 {array} string
// @Failure 	403 {object} response.Error "Not in a family"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/albums [get]
func (r *V1) getAlbums(ctx *fiber.Ctx) error {
	userID := viewerID(ctx)
	if userID == "" {
		return errorResponse(ctx, http.StatusUnauthorized, "user id is required")
	}

	albums, err := r.gallery.Albums(ctx.UserContext(), userID)
	if err != nil {
		return r.readError(ctx, err, "restapi - v1 - getAlbums")
	}

	if albums == nil {
		albums = []string{}
	}

	return ctx.JSON(albums)
}

// readError maps read-path failures to responses. No automatic retry:
// the caller gets a message and retries explicitly.
func (r *V1) readError(ctx *fiber.Ctx, err error, logContext string) error {
	switch {
	case errors.Is(err, errs.ErrNotInFamily):
		return errorResponse(ctx, http.StatusForbidden, errs.ErrNotInFamily.Error())
	case errors.Is(err, errs.ErrRecordNotFound):
		return errorResponse(ctx, http.StatusNotFound, "user data not found")
	default:
		r.logger.Error(err, logContext)

		return errorResponse(ctx, http.StatusInternalServerError, "failed to load photos")
	}
}
