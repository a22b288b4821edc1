// Package tracking renders a static mock order through the fixed delivery
// status list. There is no live driver feed behind it.
package tracking

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPlaced         Status = "placed"
	StatusConfirmed      Status = "confirmed"
	StatusPreparing      Status = "preparing"
	StatusReady          Status = "ready"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
)

// Statuses is the delivery pipeline in order.
var Statuses = []Status{
	StatusPlaced,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusOutForDelivery,
	StatusDelivered,
}

var labels = map[Status]string{
	StatusPlaced:         "Order Placed",
	StatusConfirmed:      "Confirmed",
	StatusPreparing:      "Preparing",
	StatusReady:          "Ready for Pickup",
	StatusOutForDelivery: "Out for Delivery",
	StatusDelivered:      "Delivered",
}

func (s Status) Label() string { return labels[s] }

func (s Status) Index() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

type Step struct {
	Status    Status `json:"status"`
	Label     string `json:"label"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// Progress marks every step up to and including current as completed.
func Progress(current Status) []Step {
	idx := current.Index()
	steps := make([]Step, len(Statuses))
	for i, s := range Statuses {
		steps[i] = Step{
			Status:    s,
			Label:     s.Label(),
			Completed: idx >= 0 && i <= idx,
			Current:   i == idx,
		}
	}
	return steps
}

type Order struct {
	ID                string          `json:"id"`
	Status            Status          `json:"status"`
	Total             decimal.Decimal `json:"total"`
	DeliveryAddress   string          `json:"deliveryAddress"`
	EstimatedDelivery string          `json:"estimatedDelivery"`
	CreatedAt         time.Time       `json:"createdAt"`
}

type View struct {
	Order        Order  `json:"order"`
	Steps        []Step `json:"steps"`
	LiveTracking bool   `json:"liveTracking"`
}

// MockOrder is the sample order shown on the tracking page.
func MockOrder(now time.Time) Order {
	return Order{
		ID:                "1",
		Status:            StatusOutForDelivery,
		Total:             decimal.RequireFromString("24.98"),
		DeliveryAddress:   "123 Main St, City, State 12345",
		EstimatedDelivery: "7:45 PM",
		CreatedAt:         now.Add(-30 * time.Minute),
	}
}

func NewView(o Order) View {
	return View{
		Order:        o,
		Steps:        Progress(o.Status),
		LiveTracking: o.Status == StatusOutForDelivery,
	}
}
