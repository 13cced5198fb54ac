package analytics

import (
	"sort"
	"time"

	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
	"github.com/shopspring/decimal"
)

// OtherStatus labels the synthetic bucket collecting selected orders whose
// status is absent from the supplied catalog, so that bucket counts always
// sum to the selection size.
const OtherStatus = entity.StatusName("other")

// SelectWindow returns the orders placed within [from, to], both ends
// inclusive. Every other aggregate in this package operates on such a
// selection; orders outside the interval never influence a metric.
func SelectWindow(orders []entity.Order, from, to time.Time) []entity.Order {
	selected := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Placed.Before(from) || o.Placed.After(to) {
			continue
		}
		selected = append(selected, o)
	}
	return selected
}

// Revenue sums the stored order totals. The total is read as-is, never
// recomputed from item subtotals.
func Revenue(orders []entity.Order) decimal.Decimal {
	total := decimal.Zero
	for _, o := range orders {
		total = total.Add(o.TotalPrice)
	}
	return total
}

// CountByStatus tallies orders into one bucket per catalog entry,
// preserving catalog order and emitting zero-count buckets. Orders whose
// status is not in the catalog land in a trailing "other" bucket, appended
// only when non-empty.
func CountByStatus(orders []entity.Order, catalog []entity.OrderStatus) []entity.StatusCount {
	counts := make(map[entity.StatusName]int, len(catalog))
	known := make(map[entity.StatusName]bool, len(catalog))
	for _, st := range catalog {
		known[st.Name] = true
	}

	other := 0
	for _, o := range orders {
		if known[o.Status] {
			counts[o.Status]++
		} else {
			other++
		}
	}

	result := make([]entity.StatusCount, 0, len(catalog)+1)
	for _, st := range catalog {
		result = append(result, entity.StatusCount{
			Status: st.Name,
			Color:  st.Color,
			Count:  counts[st.Name],
		})
	}
	if other > 0 {
		result = append(result, entity.StatusCount{Status: OtherStatus, Count: other})
	}
	return result
}

// TopProducts accumulates ordered quantity per product across all items of
// the selection and returns the top n by quantity. The first-seen product
// name wins for a given id; ties rank by first appearance.
func TopProducts(orders []entity.Order, n int) []entity.ProductMetric {
	if n <= 0 {
		return nil
	}

	index := make(map[int]int)
	ranking := make([]entity.ProductMetric, 0)
	for _, o := range orders {
		for _, item := range o.Items {
			i, seen := index[item.ProductID]
			if !seen {
				index[item.ProductID] = len(ranking)
				ranking = append(ranking, entity.ProductMetric{
					ProductID: item.ProductID,
					Name:      item.ProductName,
				})
				i = len(ranking) - 1
			}
			ranking[i].Quantity += item.Quantity
		}
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})
	if len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// AverageDeliveryDays averages, over selected orders whose current status
// is in the delivered set, the fractional days between placement and the
// first history entry carrying a delivered status. An order with no such
// entry falls back to its placement time (contributing zero). No
// qualifying orders yields 0, never NaN.
func AverageDeliveryDays(orders []entity.Order, delivered map[entity.StatusName]bool) float64 {
	var sum float64
	var count int
	for _, o := range orders {
		if !delivered[o.Status] {
			continue
		}
		deliveredAt := o.Placed
		for _, h := range o.StatusHistory {
			if delivered[h.Status] {
				deliveredAt = h.ChangedAt
				break
			}
		}
		sum += deliveredAt.Sub(o.Placed).Hours() / 24
		count++
	}
	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// UniqueFranchisees counts distinct franchisee ids in the selection.
// Orders without a franchisee are excluded entirely.
func UniqueFranchisees(orders []entity.Order) int {
	seen := make(map[int32]bool)
	for _, o := range orders {
		if o.FranchiseeID.Valid {
			seen[o.FranchiseeID.Int32] = true
		}
	}
	return len(seen)
}

// AverageOrderValue is revenue/count with the zero-order window pinned to
// zero rather than a division by zero.
func AverageOrderValue(revenue decimal.Decimal, count int) decimal.Decimal {
	if count == 0 {
		return decimal.Zero
	}
	return revenue.Div(decimal.NewFromInt(int64(count)))
}

// RevenueByDay groups the selection by calendar date in loc, summing
// totals per day. The series is sparse and strictly ascending; days with
// no orders are omitted.
func RevenueByDay(orders []entity.Order, loc *time.Location) []entity.TimeSeriesPoint {
	byDay := make(map[time.Time]decimal.Decimal)
	for _, o := range orders {
		placed := o.Placed.In(loc)
		day := time.Date(placed.Year(), placed.Month(), placed.Day(), 0, 0, 0, 0, loc)
		byDay[day] = byDay[day].Add(o.TotalPrice)
	}

	series := make([]entity.TimeSeriesPoint, 0, len(byDay))
	for day, amount := range byDay {
		series = append(series, entity.TimeSeriesPoint{Date: day, Amount: amount})
	}
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})
	return series
}
