package sqlc

import (
	"context"
	"time"

	"github.com/sqlc-dev/pqtype"
)

// Analytics writes are best effort and must not hold
// up a websocket reply for long.
const QuerierCtxTimeout = time.Second * 10

type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(queries),
	}
}

// Server wide counters, one row per server ip
type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementEnginesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementEnginesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementShotsTakenCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementShotsTakenCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementShipsSunkCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementShipsSunkCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetEnginesCreatedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetEnginesCreatedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetShotsTakenCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetShotsTakenCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetShipsSunkCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetShipsSunkCount(ctx, serverIpNet)
}
