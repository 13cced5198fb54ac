package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOrders serves a fixed snapshot.
type fakeOrders struct {
	snapshot []entity.Order
	calls    int
}

func (f *fakeOrders) ListOrders(context.Context) ([]entity.Order, error) {
	f.calls++
	return f.snapshot, nil
}

func (f *fakeOrders) ListOrdersPaged(context.Context, entity.StatusName, int, int) ([]entity.Order, int, error) {
	return nil, 0, nil
}
func (f *fakeOrders) GetOrderByUUID(context.Context, string) (*entity.Order, error) {
	return nil, nil
}
func (f *fakeOrders) CreateOrder(context.Context, *entity.OrderNew) (*entity.Order, error) {
	return nil, nil
}
func (f *fakeOrders) UpdateOrderStatus(context.Context, string, entity.StatusName) error { return nil }
func (f *fakeOrders) SetTrackingNumber(context.Context, string, string) error            { return nil }

type fakeCache struct {
	statuses []entity.OrderStatus
}

func (f *fakeCache) GetOrderStatuses() []entity.OrderStatus { return f.statuses }
func (f *fakeCache) GetOrderStatusByID(id int) (*entity.OrderStatus, bool) {
	for i := range f.statuses {
		if f.statuses[i].ID == id {
			return &f.statuses[i], true
		}
	}
	return nil, false
}
func (f *fakeCache) GetOrderStatusByName(name entity.StatusName) (entity.OrderStatus, bool) {
	for _, st := range f.statuses {
		if st.Name == name {
			return st, true
		}
	}
	return entity.OrderStatus{}, false
}

func newTestService(t *testing.T, snapshot []entity.Order) (*Service, *fakeOrders) {
	t.Helper()
	orders := &fakeOrders{snapshot: snapshot}
	svc, err := New(&Config{Timezone: "UTC"}, orders, &fakeCache{statuses: catalog})
	require.NoError(t, err)
	return svc, orders
}

func TestComputeMetricsWeek(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	snapshot := []entity.Order{
		// previous week: 40 revenue over 2 orders
		withFranchisee(order(now.AddDate(0, 0, -10), "15", entity.Delivered), 1),
		order(now.AddDate(0, 0, -9), "25", entity.Delivered),
		// current week: 60 revenue over 2 orders
		withFranchisee(order(now.AddDate(0, 0, -3), "20", entity.Pending), 1),
		withFranchisee(order(now.AddDate(0, 0, -1), "40", entity.Delivered), 2),
		// outside both windows
		order(now.AddDate(0, 0, -20), "1000", entity.Cancelled),
	}

	svc, _ := newTestService(t, snapshot)
	m, err := svc.ComputeMetrics(context.Background(), PeriodWeek, now)
	require.NoError(t, err)

	assert.Equal(t, now.AddDate(0, 0, -7), m.Period.From)
	assert.Equal(t, now, m.Period.To)
	assert.Equal(t, now.AddDate(0, 0, -14), m.PreviousPeriod.From)
	assert.Equal(t, now.AddDate(0, 0, -7), m.PreviousPeriod.To)

	assert.True(t, m.TotalOrders.Value.Equal(decimal.NewFromInt(2)))
	assert.InDelta(t, 0.0, m.TotalOrders.TrendPercent, 1e-9)

	assert.True(t, m.TotalRevenue.Value.Equal(decimal.RequireFromString("60")))
	assert.InDelta(t, 50.0, m.TotalRevenue.TrendPercent, 1e-9)

	assert.True(t, m.AvgOrderValue.Value.Equal(decimal.RequireFromString("30")))
	assert.InDelta(t, 50.0, m.AvgOrderValue.TrendPercent, 1e-9)

	// two franchisees now vs one before
	assert.True(t, m.UniqueCustomers.Value.Equal(decimal.NewFromInt(2)))
	assert.InDelta(t, 100.0, m.UniqueCustomers.TrendPercent, 1e-9)

	// status buckets cover the current window only
	total := 0
	for _, c := range m.OrdersByStatus {
		total += c.Count
	}
	assert.Equal(t, 2, total)
}

func TestComputeMetricsZeroBaseline(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	snapshot := []entity.Order{
		order(now.AddDate(0, 0, -2), "250.00", entity.Pending),
	}

	svc, _ := newTestService(t, snapshot)
	m, err := svc.ComputeMetrics(context.Background(), PeriodWeek, now)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, m.TotalRevenue.TrendPercent, 1e-9)
	assert.InDelta(t, 100.0, m.TotalOrders.TrendPercent, 1e-9)
}

func TestComputeMetricsEmptySnapshot(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	svc, _ := newTestService(t, nil)
	m, err := svc.ComputeMetrics(context.Background(), PeriodMonth, now)
	require.NoError(t, err)

	assert.True(t, m.TotalOrders.Value.IsZero())
	assert.InDelta(t, 0.0, m.TotalOrders.TrendPercent, 1e-9)
	assert.True(t, m.AvgOrderValue.Value.IsZero())
	assert.Zero(t, m.AvgDeliveryDays)
	assert.Empty(t, m.TopProducts)
	assert.Empty(t, m.RevenueByDay)
	// zero buckets still enumerate the catalog
	assert.Len(t, m.OrdersByStatus, len(catalog))
}

func TestComputeMetricsWindowBoundary(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	weekAgo := now.AddDate(0, 0, -7)

	snapshot := []entity.Order{
		// exactly on the current window start: current, not previous
		order(weekAgo, "10", entity.Pending),
		// one tick before the start: previous window
		order(weekAgo.Add(-time.Nanosecond), "20", entity.Pending),
	}

	svc, _ := newTestService(t, snapshot)
	m, err := svc.ComputeMetrics(context.Background(), PeriodWeek, now)
	require.NoError(t, err)

	assert.True(t, m.TotalRevenue.Value.Equal(decimal.RequireFromString("10")))
	// previous revenue 20 -> current 10 is -50%
	assert.InDelta(t, -50.0, m.TotalRevenue.TrendPercent, 1e-9)
}

func TestComputeMetricsIdempotent(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	snapshot := []entity.Order{
		withFranchisee(order(now.AddDate(0, 0, -1), "42", entity.Delivered), 3),
	}

	svc, orders := newTestService(t, snapshot)

	first, err := svc.ComputeMetrics(context.Background(), PeriodWeek, now)
	require.NoError(t, err)
	second, err := svc.ComputeMetrics(context.Background(), PeriodWeek, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	// one snapshot read per call, no cross-call state
	assert.Equal(t, 2, orders.calls)
}

func TestComputeMetricsUnknownPeriod(t *testing.T) {
	svc, _ := newTestService(t, nil)
	_, err := svc.ComputeMetrics(context.Background(), Period("fortnight"), time.Now())
	assert.ErrorIs(t, err, ErrUnknownPeriod)
}
