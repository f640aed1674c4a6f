package order

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-client/internal/catalog"
)

func TestMapStatus(t *testing.T) {
	cases := map[string]Status{
		"pending":        StatusPending,
		"processing":     StatusProcessing,
		"on-hold":        StatusProcessing,
		"completed":      StatusShipped,
		"cancelled":      StatusCancelled,
		"refunded":       StatusRefunded,
		"failed":         StatusFailed,
		"unknown-status": Status("unknown-status"),
	}

	for backend, want := range cases {
		assert.Equal(t, want, MapStatus(backend), "backend status %q", backend)
	}
}

func TestTransformOrder(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		raw := RawOrder{
			ID:          1001,
			DateCreated: "2024-11-02T10:15:00",
			Status:      "completed",
			Total:       "45.97",
			LineItems: []RawLineItem{
				{ProductID: 42, Name: "Coffee &amp; Tea Mug", Quantity: 3, Price: "12.99"},
				{ProductID: 7, Name: "Coaster", Quantity: 1, Price: "7.00"},
			},
		}

		o := TransformOrder(raw)

		assert.Equal(t, 1001, o.OrderID)
		assert.Equal(t, "2024-11-02T10:15:00", o.DateAdded)
		assert.Equal(t, StatusShipped, o.Status)
		assert.Equal(t, 45.97, o.Total)
		assert.Len(t, o.Products, 2)
		assert.Equal(t, "Coffee & Tea Mug", o.Products[0].Name)
		assert.Equal(t, 12.99, o.Products[0].Price)
	})

	t.Run("Empty input does not fail", func(t *testing.T) {
		o := TransformOrder(RawOrder{})

		assert.Equal(t, 0, o.OrderID)
		assert.Equal(t, Status(""), o.Status)
		assert.Equal(t, float64(0), o.Total)
		assert.Empty(t, o.Products)
	})
}

func TestTransformOrders(t *testing.T) {
	raws := []RawOrder{
		{ID: 1, Status: "pending", Total: catalog.FlexString("10")},
		{ID: 2, Status: "cancelled", Total: catalog.FlexString("20")},
	}

	orders := TransformOrders(raws)

	assert.Len(t, orders, 2)
	assert.Equal(t, StatusPending, orders[0].Status)
	assert.Equal(t, StatusCancelled, orders[1].Status)
}
