package catalog

import (
	"encoding/json"
	"strconv"
)

// The backend is loose about shapes: prices arrive as strings or numbers,
// images as objects, arrays or bare URLs, and the display name lives under
// one of several fields depending on the endpoint. The Raw types absorb all
// of that once so the transformers stay total.

// FlexString decodes a JSON string or number into a string.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		// tolerate any other shape as empty
		*f = ""
		return nil
	}
	*f = FlexString(n.String())
	return nil
}

// RawImage decodes either {"src": "..."} or a bare URL string.
type RawImage struct {
	Src string `json:"src"`
}

func (r *RawImage) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		r.Src = ""
		return nil
	}
	if data[0] == '"' {
		return json.Unmarshal(data, &r.Src)
	}
	type alias RawImage
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		r.Src = ""
		return nil
	}
	r.Src = a.Src
	return nil
}

type RawCategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type RawProduct struct {
	ID               int              `json:"id"`
	Name             string           `json:"name"`
	Title            string           `json:"title"`
	PostTitle        string           `json:"post_title"`
	Slug             string           `json:"slug"`
	Price            FlexString       `json:"price"`
	RegularPrice     FlexString       `json:"regular_price"`
	SalePrice        FlexString       `json:"sale_price"`
	Description      string           `json:"description"`
	ShortDescription string           `json:"short_description"`
	Images           []RawImage       `json:"images"`
	Image            RawImage         `json:"image"`
	Categories       []RawCategoryRef `json:"categories"`
	Featured         bool             `json:"featured"`
	AverageRating    FlexString       `json:"average_rating"`
	RatingCount      int              `json:"rating_count"`
}

// DisplayName is the prioritized fallback chain for a product's name. The
// order is fixed here instead of being re-decided at every call site.
func (p RawProduct) DisplayName() string {
	for _, candidate := range []string{p.Name, p.Title, p.PostTitle, p.Slug} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// ImageURL resolves the product image: first entry of the images array, then
// the single image field, then empty.
func (p RawProduct) ImageURL() string {
	if len(p.Images) > 0 && p.Images[0].Src != "" {
		return p.Images[0].Src
	}
	return p.Image.Src
}

type RawCategory struct {
	ID    int      `json:"id"`
	Name  string   `json:"name"`
	Slug  string   `json:"slug"`
	Image RawImage `json:"image"`
	Count int      `json:"count"`
}

// ParsePrice mirrors parseFloat semantics: the longest leading numeric prefix
// is parsed, anything else yields 0.
func ParsePrice(s string) float64 {
	end := 0
	seenDot := false
	for i, r := range s {
		if r == '-' && i == 0 {
			end++
			continue
		}
		if r == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		if r < '0' || r > '9' {
			break
		}
		end++
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return 0
	}
	return v
}
