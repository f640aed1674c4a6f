package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	defaultProductTitle = "Untitled Product"
	defaultCategory     = "General"
	defaultCategoryName = "Uncategorized"
)

var (
	entityReplacer = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#039;", "'",
		"&nbsp;", " ",
	)
	tagRegex = regexp.MustCompile(`<[^>]*>`)
)

// DecodeHTMLEntities resolves the six entities the backend actually emits.
func DecodeHTMLEntities(s string) string {
	return entityReplacer.Replace(s)
}

// StripHTML removes markup tags, leaving the text content.
func StripHTML(s string) string {
	return strings.TrimSpace(tagRegex.ReplaceAllString(s, ""))
}

func FormatPrice(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// TransformProduct normalizes a backend product record. It never fails:
// missing fields fall back to defaults.
func TransformProduct(raw RawProduct) Product {
	title := DecodeHTMLEntities(raw.DisplayName())
	if title == "" {
		title = defaultProductTitle
	}

	price := ParsePrice(string(raw.Price))
	original := ParsePrice(string(raw.RegularPrice))
	if original == 0 {
		original = price
	}

	p := Product{
		ID:            raw.ID,
		Title:         title,
		Image:         raw.ImageURL(),
		Price:         price,
		OriginalPrice: original,
		Description:   DecodeHTMLEntities(StripHTML(description(raw))),
		Category:      defaultCategory,
	}

	if len(raw.Categories) > 0 {
		refs := make([]CategoryRef, 0, len(raw.Categories))
		for _, c := range raw.Categories {
			refs = append(refs, CategoryRef{
				ID:   c.ID,
				Name: DecodeHTMLEntities(c.Name),
				Slug: c.Slug,
			})
		}
		p.Categories = refs
		// first category wins as the primary one
		p.Category = refs[0].Name
		p.CategoryID = refs[0].ID
		if p.Category == "" {
			p.Category = defaultCategory
		}
	}

	if rate := ParsePrice(string(raw.AverageRating)); rate > 0 || raw.RatingCount > 0 {
		p.Rating = &Rating{Rate: rate, Count: raw.RatingCount}
	}

	return p
}

func TransformProducts(raws []RawProduct) []Product {
	products := make([]Product, 0, len(raws))
	for _, r := range raws {
		products = append(products, TransformProduct(r))
	}
	return products
}

func description(raw RawProduct) string {
	if raw.Description != "" {
		return raw.Description
	}
	return raw.ShortDescription
}

// TransformCategory normalizes a backend category record.
func TransformCategory(raw RawCategory) Category {
	name := DecodeHTMLEntities(raw.Name)
	if name == "" {
		name = defaultCategoryName
	}
	return Category{
		CategoryID: raw.ID,
		Name:       name,
		Image:      raw.Image.Src,
	}
}

func TransformCategories(raws []RawCategory) []Category {
	categories := make([]Category, 0, len(raws))
	for _, r := range raws {
		categories = append(categories, TransformCategory(r))
	}
	return categories
}
