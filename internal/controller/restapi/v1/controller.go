package v1

import (
	"github.com/tareksherif64/Family-Photo-Storage/internal/usecase"
	"github.com/tareksherif64/Family-Photo-Storage/pkg/logger"
)

type V1 struct {
	photos    usecase.UploadUseCase
	gallery   usecase.GalleryUseCase
	favorites usecase.FavoritesUseCase
	family    usecase.FamilyUseCase
	logger    logger.Interface
}
