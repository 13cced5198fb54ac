package dto

import (
	"time"

	"github.com/edixon-javier/qargo-coffee-manager/internal/entity"
)

// Order is the wire shape of an order with its items and status history.
type Order struct {
	UUID           string               `json:"uuid"`
	OrderNumber    string               `json:"orderNumber"`
	CustomerName   string               `json:"customerName"`
	FranchiseeID   *int                 `json:"franchiseeId,omitempty"`
	Total          string               `json:"total"`
	Status         string               `json:"status"`
	TrackingNumber string               `json:"trackingNumber,omitempty"`
	Placed         time.Time            `json:"placed"`
	Modified       time.Time            `json:"modified"`
	Items          []OrderItem          `json:"items"`
	StatusHistory  []StatusHistoryEntry `json:"statusHistory"`
}

type OrderItem struct {
	ProductID   int    `json:"productId"`
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
}

type StatusHistoryEntry struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
}

func ConvertEntityOrder(o *entity.Order) *Order {
	if o == nil {
		return nil
	}
	out := &Order{
		UUID:         o.UUID,
		OrderNumber:  o.OrderNumber,
		CustomerName: o.CustomerName,
		Total:        o.TotalPriceDecimal().String(),
		Status:       o.Status.String(),
		Placed:       o.Placed,
		Modified:     o.Modified,
		Items:        make([]OrderItem, 0, len(o.Items)),
	}
	if o.FranchiseeID.Valid {
		id := int(o.FranchiseeID.Int32)
		out.FranchiseeID = &id
	}
	if o.TrackingNumber.Valid {
		out.TrackingNumber = o.TrackingNumber.String
	}
	for _, item := range o.Items {
		out.Items = append(out.Items, OrderItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			Price:       item.Price.Round(2).String(),
		})
	}
	for _, h := range o.StatusHistory {
		out.StatusHistory = append(out.StatusHistory, StatusHistoryEntry{
			Status:    h.Status.String(),
			ChangedAt: h.ChangedAt,
		})
	}
	return out
}

func ConvertEntityOrders(orders []entity.Order) []Order {
	out := make([]Order, 0, len(orders))
	for i := range orders {
		out = append(out, *ConvertEntityOrder(&orders[i]))
	}
	return out
}
