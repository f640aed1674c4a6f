package catalog

type Product struct {
	ID            int           `json:"id"`
	Title         string        `json:"title"`
	Image         string        `json:"image"`
	Price         float64       `json:"price"`
	OriginalPrice float64       `json:"original_price"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	CategoryID    int           `json:"category_id,omitempty"`
	Categories    []CategoryRef `json:"categories,omitempty"`
	Rating        *Rating       `json:"rating,omitempty"`
}

type CategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

type Category struct {
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
}
