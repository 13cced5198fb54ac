package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimeRange is a bounded interval used to select orders for aggregation.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// MetricWithTrend pairs a scalar metric for the current window with its
// signed percentage change against the equivalent previous window.
// TrendPercent is unrounded; rounding is a presentation concern.
type MetricWithTrend struct {
	Value        decimal.Decimal
	TrendPercent float64
}

// StatusCount is one bucket of the orders-by-status breakdown. Every
// catalog status appears, zero counts included. Color is the catalog's
// display hint, opaque to the engine.
type StatusCount struct {
	Status StatusName
	Color  string
	Count  int
}

// ProductMetric is one row of the top-products ranking: accumulated
// ordered quantity per product, with the first-seen product name.
type ProductMetric struct {
	ProductID int
	Name      string
	Quantity  int
}

// TimeSeriesPoint is one day of the revenue series. The series is sparse:
// days without orders are not synthesized.
type TimeSeriesPoint struct {
	Date   time.Time
	Amount decimal.Decimal
}

// DashboardMetrics is the read-only bundle consumed by the dashboard and
// reporting layers. Trends compare Period against PreviousPeriod.
type DashboardMetrics struct {
	Period         TimeRange
	PreviousPeriod TimeRange

	TotalOrders     MetricWithTrend
	TotalRevenue    MetricWithTrend
	AvgOrderValue   MetricWithTrend
	UniqueCustomers MetricWithTrend

	OrdersByStatus  []StatusCount
	TopProducts     []ProductMetric
	RevenueByDay    []TimeSeriesPoint
	AvgDeliveryDays float64
}
