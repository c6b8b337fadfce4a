package queries

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ordertracker/internal/core/ports"

	"go.uber.org/zap"
)

// GetNextOrderNumberQueryHandler derives "<year>-<count+1, 4 digits>" from the
// number of stored orders. Two callers that read the same count get the same
// number; nothing reserves it.
type GetNextOrderNumberQueryHandler struct {
	repo   ports.OrderRepository
	logger *zap.Logger
}

func NewGetNextOrderNumberQueryHandler(repo ports.OrderRepository, logger *zap.Logger) GetNextOrderNumberQueryHandler {
	return GetNextOrderNumberQueryHandler{
		repo:   repo,
		logger: logger.With(zap.String("component", "order_number")),
	}
}

// Handle falls back to "<year>-<last 4 digits of the unix millis clock>" when
// the count cannot be read, so it only fails on an unconstructed query.
func (h GetNextOrderNumberQueryHandler) Handle(ctx context.Context, query GetNextOrderNumberQuery) (string, error) {
	if err := query.Validate(); err != nil {
		return "", err
	}

	now := time.Now()
	count, err := h.repo.Count(ctx)
	if err != nil {
		h.logger.Warn("order count unavailable, using clock based number", zap.Error(err))
		return FallbackOrderNumber(now), nil
	}

	return fmt.Sprintf("%d-%04d", now.Year(), count+1), nil
}

// FallbackOrderNumber builds the clock based order number.
func FallbackOrderNumber(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	return fmt.Sprintf("%d-%s", now.Year(), millis[len(millis)-4:])
}
