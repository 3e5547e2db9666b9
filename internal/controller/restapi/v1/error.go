package v1

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tareksherif64/Family-Photo-Storage/internal/controller/restapi/v1/response"
)

const _userIDHeader = "X-User-ID"

func errorResponse(ctx *fiber.Ctx, code int, msg string) error {
	return ctx.Status(code).JSON(response.Error{Error: msg})
}

// viewerID is the acting user's id, set by the upstream auth proxy.
func viewerID(ctx *fiber.Ctx) string {
	return strings.TrimSpace(ctx.Get(_userIDHeader))
}
