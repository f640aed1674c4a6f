package order

import "storefront-client/internal/catalog"

// statusMap collapses backend order statuses into the set the app shows.
// "completed" intentionally maps to "shipped"; a "delivered" state is never
// surfaced to the user.
var statusMap = map[string]Status{
	"pending":    StatusPending,
	"processing": StatusProcessing,
	"on-hold":    StatusProcessing,
	"completed":  StatusShipped,
	"cancelled":  StatusCancelled,
	"refunded":   StatusRefunded,
	"failed":     StatusFailed,
}

// MapStatus returns the collapsed status; unknown values pass through as-is.
func MapStatus(backend string) Status {
	if s, ok := statusMap[backend]; ok {
		return s
	}
	return Status(backend)
}

// TransformOrder normalizes a backend order record. Total functions like the
// catalog transformers: malformed fields default instead of failing.
func TransformOrder(raw RawOrder) Order {
	products := make([]OrderProduct, 0, len(raw.LineItems))
	for _, li := range raw.LineItems {
		products = append(products, OrderProduct{
			ProductID: li.ProductID,
			Name:      catalog.DecodeHTMLEntities(li.Name),
			Quantity:  li.Quantity,
			Price:     catalog.ParsePrice(string(li.Price)),
		})
	}

	return Order{
		OrderID:   raw.ID,
		DateAdded: raw.DateCreated,
		Status:    MapStatus(raw.Status),
		Total:     catalog.ParsePrice(string(raw.Total)),
		Products:  products,
	}
}

func TransformOrders(raws []RawOrder) []Order {
	orders := make([]Order, 0, len(raws))
	for _, r := range raws {
		orders = append(orders, TransformOrder(r))
	}
	return orders
}
