package wordpress

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"storefront-client/internal/api"
	"storefront-client/internal/catalog"
)

func (c *Client) GetProducts(ctx context.Context, query api.ProductQuery) ([]catalog.RawProduct, error) {
	var products []catalog.RawProduct
	err := c.do(ctx, http.MethodGet, wcPath+"/products", productQueryValues(query), nil, authBasic, &products)
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id int) (catalog.RawProduct, error) {
	var product catalog.RawProduct
	err := c.do(ctx, http.MethodGet, wcPath+"/products/"+strconv.Itoa(id), nil, nil, authBasic, &product)
	if err != nil {
		return catalog.RawProduct{}, err
	}
	return product, nil
}

// SearchProducts is the one catalog call returning transformed entities.
func (c *Client) SearchProducts(ctx context.Context, q string, page, limit int) ([]catalog.Product, error) {
	raws, err := c.GetProducts(ctx, api.ProductQuery{Search: q, Page: page, PerPage: limit})
	if err != nil {
		return nil, err
	}
	return catalog.TransformProducts(raws), nil
}

func (c *Client) GetCategories(ctx context.Context, query api.CategoryQuery) ([]catalog.RawCategory, error) {
	values := url.Values{}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(query.PerPage))
	}
	if query.Parent > 0 {
		values.Set("parent", strconv.Itoa(query.Parent))
	}
	if query.HideEmpty {
		values.Set("hide_empty", "true")
	}

	var categories []catalog.RawCategory
	err := c.do(ctx, http.MethodGet, wcPath+"/products/categories", values, nil, authBasic, &categories)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) GetCategory(ctx context.Context, id int) (catalog.RawCategory, error) {
	var category catalog.RawCategory
	err := c.do(ctx, http.MethodGet, wcPath+"/products/categories/"+strconv.Itoa(id), nil, nil, authBasic, &category)
	if err != nil {
		return catalog.RawCategory{}, err
	}
	return category, nil
}

// GetCarouselItems feeds the home carousel with featured products.
func (c *Client) GetCarouselItems(ctx context.Context) ([]catalog.Product, error) {
	raws, err := c.GetProducts(ctx, api.ProductQuery{Featured: true, PerPage: 10})
	if err != nil {
		return nil, err
	}
	return catalog.TransformProducts(raws), nil
}

func productQueryValues(q api.ProductQuery) url.Values {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}
	if q.Category > 0 {
		values.Set("category", strconv.Itoa(q.Category))
	}
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Featured {
		values.Set("featured", "true")
	}
	if q.OrderBy != "" {
		values.Set("orderby", q.OrderBy)
	}
	if q.Order != "" {
		values.Set("order", q.Order)
	}
	return values
}
