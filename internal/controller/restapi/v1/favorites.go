package v1

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/tareksherif64/Family-Photo-Storage/internal/controller/restapi/v1/response"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/types/errs"
)

// @Summary 	Toggle a favorite
// @Description Flips the photo in or out of the viewer's favorites set and reports the new state. A toggle racing an in-flight toggle on the same photo is rejected.
// @Tags 		photos
// @Produce 	json
// @Param 		X-User-ID header string true "Acting user id"
// @Param		id 		  path	 string true "Photo ID(uuid)"
// @Success 	200 {object} response.Favorite
// @Failure 	400 {object} response.Error "Invalid ID"
// @Failure 	409 {object} response.Error "Toggle already in flight"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/photos/{id}/favorite [post]
func (r *V1) toggleFavorite(ctx *fiber.Ctx) error {
	userID := viewerID(ctx)
	if userID == "" {
		return errorResponse(ctx, http.StatusUnauthorized, "user id is required")
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid id")
	}

	favorite, err := r.favorites.Toggle(ctx.UserContext(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrToggleInFlight):
			return errorResponse(ctx, http.StatusConflict, errs.ErrToggleInFlight.Error())
		case errors.Is(err, errs.ErrRecordNotFound):
			return errorResponse(ctx, http.StatusNotFound, "user data not found")
		default:
			r.logger.Error(err, "restapi - v1 - toggleFavorite")

			return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
		}
	}

	return ctx.JSON(response.Favorite{
		PhotoID:  id.String(),
		Favorite: favorite,
	})
}
