package restapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/tareksherif64/Family-Photo-Storage/config"
	v1 "github.com/tareksherif64/Family-Photo-Storage/internal/controller/restapi/v1"
	"github.com/tareksherif64/Family-Photo-Storage/internal/usecase"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/logger"
)

// @title Family Photo Storage
// @version 1.0.0
// @host localhost:8080
// @BasePath /v1
func NewRouter(
	app *fiber.App,
	cfg *config.Config,
	photos usecase.UploadUseCase,
	gallery usecase.GalleryUseCase,
	favorites usecase.FavoritesUseCase,
	family usecase.FamilyUseCase,
	l logger.Interface,
) {
	// Swagger
	if cfg.Swagger.Enabled {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	// Routers
	apiV1Group := app.Group("/v1")
	{
		v1.NewPhotoRoutes(apiV1Group, photos, gallery, favorites, family, l)
	}
}
