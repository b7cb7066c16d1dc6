package model

// Delivery is one scheduled flower delivery inside a subscription order.
// It arrives from the storefront and is never mutated by this service;
// the gateway echoes it back verbatim inside webhook metadata.
type Delivery struct {
	Date             string `json:"date"`
	Event            string `json:"event"`
	RecipientName    string `json:"recipientName"`
	RecipientPhone   string `json:"recipientPhone"`
	RecipientAddress string `json:"recipientAddress"`
	Wishes           string `json:"wishes,omitempty"`
}

// Order is an inbound subscription order as submitted by the storefront.
type Order struct {
	ID            string     `json:"orderId"`
	CustomerName  string     `json:"customerName"`
	CustomerEmail string     `json:"customerEmail,omitempty"`
	CustomerPhone string     `json:"customerPhone,omitempty"`
	PlanKey       string     `json:"planKey"`
	Deliveries    []Delivery `json:"deliveries"`
}

// tariffs is the fixed price-per-delivery table in whole rubles.
// Prices are integers to avoid float drift (amounts are always <n>.00).
var tariffs = map[string]int64{
	"basic":    500,
	"standard": 750,
	"premium":  1000,
}

// PlanPrice returns the per-delivery price for a plan key.
// An unknown key reports ok=false; callers must reject such orders.
func PlanPrice(planKey string) (price int64, ok bool) {
	price, ok = tariffs[planKey]
	return price, ok
}
