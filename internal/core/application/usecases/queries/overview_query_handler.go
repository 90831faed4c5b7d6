package queries

import (
	"context"
	"encoding/json"
	"time"

	"parcelpilot/internal/core/domain/model/account"
	"parcelpilot/internal/core/domain/model/parcel"
	"parcelpilot/internal/core/domain/model/rider"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const overviewCacheKey = "overview:counts"

// OverviewQueryHandler computes the dashboard rollup. Results are cached
// in Redis for a short TTL; a cache miss or a cache failure falls through
// to the database, so the rollup stays available without Redis.
type OverviewQueryHandler struct {
	db    *gorm.DB
	cache *redis.Client
	ttl   time.Duration
}

// NewOverviewQueryHandler creates a handler for dashboard rollup queries.
// cache may be nil, in which case every call hits the database.
func NewOverviewQueryHandler(db *gorm.DB, cache *redis.Client, ttl time.Duration) OverviewQueryHandler {
	return OverviewQueryHandler{db: db, cache: cache, ttl: ttl}
}

// Handle executes the query, serving from cache when a fresh rollup is
// available.
func (h OverviewQueryHandler) Handle(
	ctx context.Context,
	query OverviewQuery,
) (OverviewResponse, error) {
	if err := query.Validate(); err != nil {
		return OverviewResponse{}, err
	}

	if cached, ok := h.fromCache(ctx); ok {
		return cached, nil
	}

	var overview OverviewResponse

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM parcels),
			(SELECT COUNT(*) FROM parcels WHERE delivery_status = ?),
			(SELECT COUNT(*) FROM users WHERE role = ?),
			(SELECT COUNT(*) FROM users WHERE role = ?),
			(SELECT COUNT(*) FROM riders WHERE status = ?)
	`,
		parcel.Delivered.String(),
		account.RoleUser.String(),
		account.RoleRider.String(),
		rider.Pending.String(),
	).Row()

	err := row.Scan(
		&overview.TotalParcels,
		&overview.DeliveredParcels,
		&overview.TotalUsers,
		&overview.TotalRiders,
		&overview.PendingRiders,
	)
	if err != nil {
		return OverviewResponse{}, err
	}

	h.toCache(ctx, overview)

	return overview, nil
}

func (h OverviewQueryHandler) fromCache(ctx context.Context) (OverviewResponse, bool) {
	if h.cache == nil {
		return OverviewResponse{}, false
	}

	payload, err := h.cache.Get(ctx, overviewCacheKey).Bytes()
	if err != nil {
		return OverviewResponse{}, false
	}

	var overview OverviewResponse
	if err = json.Unmarshal(payload, &overview); err != nil {
		return OverviewResponse{}, false
	}
	return overview, true
}

func (h OverviewQueryHandler) toCache(ctx context.Context, overview OverviewResponse) {
	if h.cache == nil {
		return
	}

	payload, err := json.Marshal(overview)
	if err != nil {
		return
	}
	// Best effort: a failed SET only means the next call recomputes.
	h.cache.Set(ctx, overviewCacheKey, payload, h.ttl)
}
