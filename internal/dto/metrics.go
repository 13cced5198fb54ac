package dto

import (
	"time"

	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
)

// DashboardMetrics is the wire shape of the dashboard metrics bundle.
// Monetary values are serialized as decimal strings to keep exact cents.
type DashboardMetrics struct {
	Period         TimeRange `json:"period"`
	PreviousPeriod TimeRange `json:"previousPeriod"`

	TotalOrders       MetricWithTrend `json:"totalOrders"`
	TotalRevenue      MetricWithTrend `json:"totalRevenue"`
	AverageOrderValue MetricWithTrend `json:"averageOrderValue"`
	UniqueCustomers   MetricWithTrend `json:"uniqueCustomers"`

	OrdersByStatus      []StatusCount     `json:"ordersByStatus"`
	TopProducts         []ProductMetric   `json:"topProducts"`
	RevenueByDay        []TimeSeriesPoint `json:"revenueByDay"`
	AverageDeliveryDays float64           `json:"averageDeliveryDays"`
}

type TimeRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

type MetricWithTrend struct {
	Value        string  `json:"value"`
	TrendPercent float64 `json:"trendPercent"`
}

type StatusCount struct {
	Status string `json:"status"`
	Color  string `json:"color,omitempty"`
	Count  int    `json:"count"`
}

type ProductMetric struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
}

type TimeSeriesPoint struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
}

func ConvertEntityDashboardMetrics(m *entity.DashboardMetrics) *DashboardMetrics {
	if m == nil {
		return nil
	}
	out := &DashboardMetrics{
		Period:            timeRangeToDTO(m.Period),
		PreviousPeriod:    timeRangeToDTO(m.PreviousPeriod),
		TotalOrders:       metricWithTrendToDTO(m.TotalOrders),
		TotalRevenue:      metricWithTrendToDTO(m.TotalRevenue),
		AverageOrderValue: metricWithTrendToDTO(m.AvgOrderValue),
		UniqueCustomers:   metricWithTrendToDTO(m.UniqueCustomers),

		OrdersByStatus:      make([]StatusCount, 0, len(m.OrdersByStatus)),
		TopProducts:         make([]ProductMetric, 0, len(m.TopProducts)),
		RevenueByDay:        make([]TimeSeriesPoint, 0, len(m.RevenueByDay)),
		AverageDeliveryDays: m.AvgDeliveryDays,
	}
	for _, sc := range m.OrdersByStatus {
		out.OrdersByStatus = append(out.OrdersByStatus, StatusCount{
			Status: sc.Status.String(),
			Color:  sc.Color,
			Count:  sc.Count,
		})
	}
	for _, pm := range m.TopProducts {
		out.TopProducts = append(out.TopProducts, ProductMetric{
			ProductID: pm.ProductID,
			Name:      pm.Name,
			Quantity:  pm.Quantity,
		})
	}
	for _, p := range m.RevenueByDay {
		out.RevenueByDay = append(out.RevenueByDay, TimeSeriesPoint{
			Date:   p.Date.Format("2006-01-02"),
			Amount: p.Amount.Round(2).String(),
		})
	}
	return out
}

func timeRangeToDTO(tr entity.TimeRange) TimeRange {
	return TimeRange{From: tr.From, To: tr.To}
}

func metricWithTrendToDTO(m entity.MetricWithTrend) MetricWithTrend {
	return MetricWithTrend{
		Value:        m.Value.Round(2).String(),
		TrendPercent: m.TrendPercent,
	}
}
