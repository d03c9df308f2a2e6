package ports

import (
	"context"
	"time"

	"github.com/uybor/uybor-api/internal/core/domain"
)

// ActivityInput is one catalog write waiting to be recorded in the
// trail. EntityID is the dispatcher's sharding key.
type ActivityInput struct {
	Action     string
	EntityID   string
	EntityName string
	OccurredAt time.Time
}

// ActivityService processes queued activity inputs.
type ActivityService interface {
	Process(ctx context.Context, input ActivityInput) error
}

// ActivityRepository persists trail entries and serves the recent feed.
type ActivityRepository interface {
	Insert(ctx context.Context, entry *domain.ActivityEntry) error
	ListRecent(ctx context.Context, limit int64) ([]domain.ActivityEntry, error)
}
