package v1

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tareksherif64/Family-Photo-Storage/internal/usecase"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/logger"
)

func NewPhotoRoutes(
	apiV1Group fiber.Router,
	photos usecase.UploadUseCase,
	gallery usecase.GalleryUseCase,
	favorites usecase.FavoritesUseCase,
	family usecase.FamilyUseCase,
	l logger.Interface,
) {
	r := &V1{
		photos:    photos,
		gallery:   gallery,
		favorites: favorites,
		family:    family,
		logger:    l,
	}

	{
		apiV1Group.Post("/photos", r.uploadPhotos)
		apiV1Group.Get("/photos", r.getGallery)
		apiV1Group.Delete("/photos/:id", r.deletePhoto)
		apiV1Group.Post("/photos/:id/favorite", r.toggleFavorite)

		apiV1Group.Get("/facets", r.getFacets)
		apiV1Group.Get("/albums", r.getAlbums)

		apiV1Group.Post("/family", r.joinFamily)
	}
}
