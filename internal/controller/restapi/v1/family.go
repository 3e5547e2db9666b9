package v1

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/tareksherif64/Family-Photo-Storage/internal/controller/restapi/v1/response"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/types/errs"
)

type joinFamilyRequest struct {
	Name string `json:"name"`
}

// @Summary 	Join or create a family
// @Description Puts the user into the named family, creating it when it does not exist. Lookup is case-insensitive.
// @Tags 		family
// @Accept 		json
// @Produce 	json
// @Param 		X-User-ID header string 			true "Acting user id"
// @Param 		request   body   joinFamilyRequest 	true "Family name"
// @Success 	200 {object} response.Family
// @Failure 	400 {object} response.Error "Missing name"
// @Failure 	500 {object} response.Error "Internal"
// @Router 		/v1/family [post]
func (r *V1) joinFamily(ctx *fiber.Ctx) error {
	userID := viewerID(ctx)
	if userID == "" {
		return errorResponse(ctx, http.StatusUnauthorized, "user id is required")
	}

	var req joinFamilyRequest
	if err := ctx.BodyParser(&req); err != nil {
		return errorResponse(ctx, http.StatusBadRequest, "invalid request body")
	}

	family, err := r.family.JoinOrCreate(ctx.UserContext(), userID, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrMissingFamilyName):
			return errorResponse(ctx, http.StatusBadRequest, errs.ErrMissingFamilyName.Error())
		case errors.Is(err, errs.ErrRecordNotFound):
			return errorResponse(ctx, http.StatusNotFound, "user data not found")
		default:
			r.logger.Error(err, "restapi - v1 - joinFamily")

			return errorResponse(ctx, http.StatusInternalServerError, "storage problems")
		}
	}

	return ctx.JSON(response.Family{
		FamilyID: family.ID.String(),
		Name:     family.Name,
		Members:  family.Members,
	})
}
