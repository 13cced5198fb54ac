package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/edixon-javier/qargo-coffee-manager/internal/analytics"
	"github.com/edixon-javier/qargo-coffee-manager/internal/apisrv/auth"
	"github.com/edixon-javier/qargo-coffee-manager/internal/dependency"
	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCatalog = []entity.OrderStatus{
	{ID: 1, Name: entity.Pending, Color: "#F59E0B"},
	{ID: 2, Name: entity.Delivered, Color: "#10B981"},
}

type fakeOrders struct {
	snapshot []entity.Order
}

func (f *fakeOrders) ListOrders(context.Context) ([]entity.Order, error) {
	return f.snapshot, nil
}
func (f *fakeOrders) ListOrdersPaged(_ context.Context, status entity.StatusName, limit, offset int) ([]entity.Order, int, error) {
	return f.snapshot, len(f.snapshot), nil
}
func (f *fakeOrders) GetOrderByUUID(_ context.Context, orderUUID string) (*entity.Order, error) {
	for i := range f.snapshot {
		if f.snapshot[i].UUID == orderUUID {
			return &f.snapshot[i], nil
		}
	}
	return nil, fmt.Errorf("order not found: %s", orderUUID)
}
func (f *fakeOrders) CreateOrder(_ context.Context, orderNew *entity.OrderNew) (*entity.Order, error) {
	return &entity.Order{UUID: "new-uuid", CustomerName: orderNew.CustomerName, Status: entity.Pending}, nil
}
func (f *fakeOrders) UpdateOrderStatus(context.Context, string, entity.StatusName) error { return nil }
func (f *fakeOrders) SetTrackingNumber(context.Context, string, string) error            { return nil }

type fakeCache struct{}

func (fakeCache) GetOrderStatuses() []entity.OrderStatus { return testCatalog }
func (fakeCache) GetOrderStatusByID(id int) (*entity.OrderStatus, bool) {
	for i := range testCatalog {
		if testCatalog[i].ID == id {
			return &testCatalog[i], true
		}
	}
	return nil, false
}
func (fakeCache) GetOrderStatusByName(name entity.StatusName) (entity.OrderStatus, bool) {
	for _, st := range testCatalog {
		if st.Name == name {
			return st, true
		}
	}
	return entity.OrderStatus{}, false
}

type fakeAdmin struct{}

func (fakeAdmin) AddAdmin(context.Context, string, string) error       { return nil }
func (fakeAdmin) DeleteAdmin(context.Context, string) error            { return nil }
func (fakeAdmin) ChangePassword(context.Context, string, string) error { return nil }
func (fakeAdmin) PasswordHashByUsername(context.Context, string) (string, error) {
	return "", fmt.Errorf("admin not found")
}
func (fakeAdmin) GetAdminByUsername(context.Context, string) (*entity.Admin, error) {
	return nil, fmt.Errorf("admin not found")
}

// fakeRepo wires the fakes into the repository boundary. Accessors outside
// the routes under test return nil.
type fakeRepo struct {
	orders *fakeOrders
}

func (r *fakeRepo) Orders() dependency.Orders           { return r.orders }
func (r *fakeRepo) Products() dependency.Products       { return nil }
func (r *fakeRepo) Suppliers() dependency.Suppliers     { return nil }
func (r *fakeRepo) Franchisees() dependency.Franchisees { return nil }
func (r *fakeRepo) Statuses() dependency.Statuses       { return nil }
func (r *fakeRepo) Admin() dependency.Admin             { return fakeAdmin{} }
func (r *fakeRepo) Tx(ctx context.Context, f func(context.Context, dependency.Repository) error) error {
	return f(ctx, r)
}
func (r *fakeRepo) TxBegin(context.Context) (dependency.Repository, error) { return r, nil }
func (r *fakeRepo) TxCommit(context.Context) error                         { return nil }
func (r *fakeRepo) TxRollback(context.Context) error                       { return nil }
func (r *fakeRepo) Now() time.Time                                         { return time.Now() }
func (r *fakeRepo) InTx() bool                                             { return false }
func (r *fakeRepo) Close()                                                 {}
func (r *fakeRepo) IsErrUniqueViolation(error) bool                        { return false }
func (r *fakeRepo) IsErrorRepeat(error) bool                               { return false }
func (r *fakeRepo) Cache() dependency.Cache                                { return fakeCache{} }
func (r *fakeRepo) DB() dependency.DB                                      { return nil }

func newTestServer(t *testing.T, snapshot []entity.Order) *Server {
	t.Helper()

	repo := &fakeRepo{orders: &fakeOrders{snapshot: snapshot}}

	authSrv, err := auth.New(&auth.Config{
		JWTSecret:                "test-secret",
		MasterPassword:           "master-password",
		PasswordHasherSaltSize:   16,
		PasswordHasherIterations: 1000,
		JWTTTL:                   "60m",
	}, repo.Admin())
	require.NoError(t, err)

	metrics, err := analytics.New(&analytics.Config{Timezone: "UTC"}, repo.orders, fakeCache{})
	require.NoError(t, err)

	return New(&Config{Port: "0", Address: ""}, repo, metrics, authSrv)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestDashboardMetricsEndpoint(t *testing.T) {
	now := time.Now().UTC()
	snapshot := []entity.Order{
		{TotalPrice: decimal.RequireFromString("60"), Status: entity.Pending, Placed: now.Add(-24 * time.Hour)},
		{TotalPrice: decimal.RequireFromString("40"), Status: entity.Delivered, Placed: now.Add(-10 * 24 * time.Hour)},
	}
	s := newTestServer(t, snapshot)

	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/metrics?period=week", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	for _, key := range []string{
		"period", "previousPeriod", "totalOrders", "totalRevenue",
		"averageOrderValue", "uniqueCustomers", "ordersByStatus",
		"topProducts", "revenueByDay", "averageDeliveryDays",
	} {
		assert.Contains(t, body, key)
	}

	var revenue struct {
		Value        string  `json:"value"`
		TrendPercent float64 `json:"trendPercent"`
	}
	require.NoError(t, json.Unmarshal(body["totalRevenue"], &revenue))
	assert.Equal(t, "60", revenue.Value)
	assert.InDelta(t, 50.0, revenue.TrendPercent, 1e-9)
}

func TestDashboardMetricsBadPeriod(t *testing.T) {
	s := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/dashboard/metrics?period=quarter", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStatusesEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/statuses", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var statuses []struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &statuses))
	require.Len(t, statuses, len(testCatalog))
	assert.Equal(t, "pending", statuses[0].Name)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"ghost","password":"pw"}`))
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMutationsRequireAuth(t *testing.T) {
	s := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/",
		strings.NewReader(`{"customerName":"Jane"}`))
	rec := httptest.NewRecorder()
	s.router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
