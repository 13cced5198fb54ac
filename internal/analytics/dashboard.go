package analytics

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/edixon-javier/qargo-coffee-manager/internal/dependency"
	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
	"github.com/shopspring/decimal"
)

const defaultTopProducts = 5

// Config holds the dashboard aggregation settings.
type Config struct {
	// TopProducts caps the product ranking; dashboard cards show 5.
	TopProducts int `mapstructure:"top_products"`
	// DeliveredStatuses lists the status names treated as terminal
	// "successfully fulfilled" for delivery-time computation.
	DeliveredStatuses []string `mapstructure:"delivered_statuses"`
	// Timezone sets the day boundary for the revenue series, e.g.
	// "America/Detroit". Empty means the process-local zone.
	Timezone string `mapstructure:"timezone"`
}

// Service turns the order history into time-windowed dashboard metrics.
// It is stateless between calls: every call reads one snapshot and
// computes over it in memory, so concurrent calls are safe.
type Service struct {
	orders    dependency.Orders
	cache     dependency.Cache
	delivered map[entity.StatusName]bool
	loc       *time.Location
	topN      int
}

// New creates the dashboard service.
func New(c *Config, orders dependency.Orders, cache dependency.Cache) (*Service, error) {
	loc := time.Local
	if c.Timezone != "" {
		var err error
		loc, err = time.LoadLocation(c.Timezone)
		if err != nil {
			return nil, fmt.Errorf("can't load dashboard timezone %q: %w", c.Timezone, err)
		}
	}

	delivered := make(map[entity.StatusName]bool, len(c.DeliveredStatuses))
	for _, name := range c.DeliveredStatuses {
		delivered[entity.StatusName(name)] = true
	}
	if len(delivered) == 0 {
		delivered[entity.Delivered] = true
	}

	topN := c.TopProducts
	if topN <= 0 {
		topN = defaultTopProducts
	}

	return &Service{
		orders:    orders,
		cache:     cache,
		delivered: delivered,
		loc:       loc,
		topN:      topN,
	}, nil
}

// ComputeMetrics resolves the current and previous windows for the period
// and aggregates one order snapshot into the full metrics bundle. The
// previous window only feeds the trend baselines, so it is aggregated for
// order count and revenue alone. A zero now means time.Now.
//
// The call is idempotent and side-effect free: the same snapshot, catalog
// and period always produce the same bundle.
func (s *Service) ComputeMetrics(ctx context.Context, period Period, now time.Time) (*entity.DashboardMetrics, error) {
	if now.IsZero() {
		now = time.Now()
	}
	w, err := ResolveWindow(period, now.In(s.loc))
	if err != nil {
		return nil, err
	}

	snapshot, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("can't list orders: %w", err)
	}
	catalog := s.cache.GetOrderStatuses()

	current := SelectWindow(snapshot, w.CurrentStart, w.Now)
	revenue := Revenue(current)
	count := len(current)
	aov := AverageOrderValue(revenue, count)
	customers := UniqueFranchisees(current)

	// PreviousEnd is exclusive; the aggregate interval is inclusive on
	// both ends, so step back one tick.
	previous := SelectWindow(snapshot, w.PreviousStart, w.PreviousEnd.Add(-time.Nanosecond))
	prevRevenue := Revenue(previous)
	prevCount := len(previous)
	prevAOV := AverageOrderValue(prevRevenue, prevCount)
	prevCustomers := UniqueFranchisees(previous)

	byStatus := CountByStatus(current, catalog)
	if n := len(byStatus); n > 0 && byStatus[n-1].Status == OtherStatus {
		slog.Default().WarnContext(ctx, "orders with status outside the catalog",
			slog.Int("count", byStatus[n-1].Count),
			slog.String("period", string(period)),
		)
	}

	return &entity.DashboardMetrics{
		Period:         entity.TimeRange{From: w.CurrentStart, To: w.Now},
		PreviousPeriod: entity.TimeRange{From: w.PreviousStart, To: w.PreviousEnd},

		TotalOrders: entity.MetricWithTrend{
			Value:        decimal.NewFromInt(int64(count)),
			TrendPercent: ChangePctInt(count, prevCount),
		},
		TotalRevenue: entity.MetricWithTrend{
			Value:        revenue,
			TrendPercent: ChangePct(revenue, prevRevenue),
		},
		AvgOrderValue: entity.MetricWithTrend{
			Value:        aov,
			TrendPercent: ChangePct(aov, prevAOV),
		},
		UniqueCustomers: entity.MetricWithTrend{
			Value:        decimal.NewFromInt(int64(customers)),
			TrendPercent: ChangePctInt(customers, prevCustomers),
		},

		OrdersByStatus:  byStatus,
		TopProducts:     TopProducts(current, s.topN),
		RevenueByDay:    RevenueByDay(current, s.loc),
		AvgDeliveryDays: AverageDeliveryDays(current, s.delivered),
	}, nil
}
