package cart

import "storefront-client/internal/apperr"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = apperr.New(apperr.KindValidation, "cart", "invalid cart quantity")
	ErrInvalidProduct  = apperr.New(apperr.KindValidation, "cart", "product id is required")
	ErrInvalidItemRef  = apperr.New(apperr.KindValidation, "cart", "item reference is required")
)
