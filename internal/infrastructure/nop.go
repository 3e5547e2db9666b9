package infrastructure

import (
	"context"

	"github.com/tareksherif64/Family-Photo-Storage/internal/dto"
)

// NopPublisher is used when activity events are disabled by config.
type NopPublisher struct{}

func (NopPublisher) PublishActivity(_ context.Context, _ dto.ActivityEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
