package cart

import "strconv"

// Item is one cart line. Key is unique per add-event; ProductID carries the
// merge identity. ID duplicates the product id for callers that only have the
// product entity in hand.
type Item struct {
	Key       string  `json:"key"`
	ProductID int     `json:"productId"`
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Contents is the authoritative cart snapshot.
type Contents struct {
	Items     []Item  `json:"cart_items"`
	CartTotal float64 `json:"cart_total"`
	ItemCount int     `json:"item_count"`
}

// Matches reports whether ref identifies this item. The match is deliberately
// loose: the add-event key, the product id, or the plain id all qualify,
// tolerating the different identifiers callers hold in different contexts.
func (i Item) Matches(ref string) bool {
	if ref == "" {
		return false
	}
	if i.Key == ref {
		return true
	}
	if n, err := strconv.Atoi(ref); err == nil {
		return i.ProductID == n || i.ID == n
	}
	return false
}

// Merge folds add into items: an existing line with the same product id has
// its quantity incremented, otherwise add becomes a new line.
func Merge(items []Item, add Item) []Item {
	for idx := range items {
		if items[idx].ProductID == add.ProductID {
			items[idx].Quantity += add.Quantity
			return items
		}
	}
	return append(items, add)
}

// RemoveMatching drops every line identified by ref, leaving the rest as-is.
func RemoveMatching(items []Item, ref string) []Item {
	kept := make([]Item, 0, len(items))
	for _, it := range items {
		if !it.Matches(ref) {
			kept = append(kept, it)
		}
	}
	return kept
}

// SetQuantity sets the quantity of the line identified by ref; a quantity of
// zero or less removes the line.
func SetQuantity(items []Item, ref string, qty int) []Item {
	if qty <= 0 {
		return RemoveMatching(items, ref)
	}
	for idx := range items {
		if items[idx].Matches(ref) {
			items[idx].Quantity = qty
		}
	}
	return items
}

// Total is the price-weighted quantity sum.
func Total(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

// Count is the quantity sum across all lines (the badge number).
func Count(items []Item) int {
	var count int
	for _, it := range items {
		count += it.Quantity
	}
	return count
}

// Snapshot bundles items with their derived totals. An empty cart carries an
// empty slice, never nil, matching the wishlist convention.
func Snapshot(items []Item) Contents {
	if items == nil {
		items = []Item{}
	}
	return Contents{
		Items:     items,
		CartTotal: Total(items),
		ItemCount: Count(items),
	}
}
