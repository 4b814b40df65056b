package types

// UnitProduct is the broken-out single-item pricing attached to a case product.
type UnitProduct struct {
	UnitPriceCents int `json:"unit_price_cents"`
}

// ApparelVariant carries the variant-level pricing for apparel lines.
type ApparelVariant struct {
	UnitPriceCents int    `json:"unit_price_cents"`
	Size           string `json:"size,omitempty"`
	Gender         string `json:"gender,omitempty"`
	Color          string `json:"color,omitempty"`
}

// CartProduct is the read-only product snapshot embedded in a cart line.
type CartProduct struct {
	Title          string       `json:"title"`
	SKU            string       `json:"sku"`
	CasePriceCents int          `json:"case_price_cents"`
	UnitProduct    *UnitProduct `json:"unit_product,omitempty"`
	IsShow         bool         `json:"is_show"`
	IsApparel      bool         `json:"is_apparel"`
}

// CartLine is one row of a cart as served by the cart read API.
type CartLine struct {
	Product      CartProduct     `json:"product"`
	CaseQuantity int             `json:"case_quantity"`
	UnitQuantity int             `json:"unit_quantity"`
	Variant      *ApparelVariant `json:"variant,omitempty"`
}

// SubtotalCents prices the line. Apparel lines price only through the
// variant; all other lines price through case plus unit quantities.
func (l CartLine) SubtotalCents() int {
	if l.Product.IsApparel {
		if l.Variant == nil {
			return 0
		}
		return l.Variant.UnitPriceCents * l.UnitQuantity
	}
	total := l.Product.CasePriceCents * l.CaseQuantity
	if l.Product.UnitProduct != nil {
		total += l.Product.UnitProduct.UnitPriceCents * l.UnitQuantity
	}
	return total
}
