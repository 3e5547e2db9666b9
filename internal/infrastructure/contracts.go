package infrastructure

import (
	"context"

	"github.com/tareksherif64/Family-Photo-Storage/internal/dto"
)

type (
	// ActivityPublisher fans photo lifecycle events out to downstream
	// notifiers. Publishing is best-effort: the write path never fails
	// because the broker is down.
	ActivityPublisher interface {
		PublishActivity(ctx context.Context, event dto.ActivityEvent) error
		Close() error
	}
)
