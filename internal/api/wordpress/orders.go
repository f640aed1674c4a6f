package wordpress

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront-client/internal/api"
	"storefront-client/internal/catalog"
	"storefront-client/internal/order"
)

func (c *Client) GetPaymentMethods(ctx context.Context) ([]api.PaymentMethod, error) {
	var methods []api.PaymentMethod
	err := c.do(ctx, http.MethodGet, wcPath+"/payment_gateways", nil, nil, authBasic, &methods)
	if err != nil {
		return nil, err
	}

	enabled := make([]api.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		if m.Enabled {
			enabled = append(enabled, m)
		}
	}
	return enabled, nil
}

func (c *Client) GetShippingMethods(ctx context.Context) ([]api.ShippingMethod, error) {
	var raw []struct {
		ID       int    `json:"id"`
		Title    string `json:"title"`
		Settings struct {
			Cost struct {
				Value catalog.FlexString `json:"value"`
			} `json:"cost"`
		} `json:"settings"`
	}
	err := c.do(ctx, http.MethodGet, wcPath+"/shipping/zones/1/methods", nil, nil, authBasic, &raw)
	if err != nil {
		return nil, err
	}

	methods := make([]api.ShippingMethod, 0, len(raw))
	for _, m := range raw {
		methods = append(methods, api.ShippingMethod{
			ID:    strconv.Itoa(m.ID),
			Title: m.Title,
			Cost:  catalog.ParsePrice(string(m.Settings.Cost.Value)),
		})
	}
	return methods, nil
}

func (c *Client) CreateOrder(ctx context.Context, req order.OrderRequest) (order.RawOrder, error) {
	var created order.RawOrder
	err := c.do(ctx, http.MethodPost, wcPath+"/orders", nil, req, authBearer, &created)
	if err != nil {
		return order.RawOrder{}, err
	}
	return created, nil
}

func (c *Client) GetOrders(ctx context.Context) ([]order.RawOrder, error) {
	customerID, err := c.customerID(ctx)
	if err != nil {
		return nil, err
	}

	var orders []order.RawOrder
	values := url.Values{"customer": {customerID}}
	err = c.do(ctx, http.MethodGet, wcPath+"/orders", values, nil, authBearer, &orders)
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) GetOrderInfo(ctx context.Context, id int) (order.RawOrder, error) {
	var o order.RawOrder
	err := c.do(ctx, http.MethodGet, wcPath+"/orders/"+strconv.Itoa(id), nil, nil, authBearer, &o)
	if err != nil {
		return order.RawOrder{}, err
	}
	return o, nil
}
