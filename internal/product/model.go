package product

// Product is one catalog entry. Variations holds the package sizes the
// product ships in; each value participates in cart/order identity as the
// variationQuantity.
type Product struct {
	Key         uint    `json:"_key"`
	Name        string  `json:"productName"`
	CategoryKey uint    `json:"categoryKey"`
	Price       float64 `json:"price"`
	Picture     string  `json:"productPicture"`
	Variations  []int64 `json:"variations"`
}

// SelectorType discriminates what a catalog lookup key refers to.
type SelectorType string

const (
	SelectorProduct  SelectorType = "product"
	SelectorCategory SelectorType = "category"
)

// Selector is a tagged lookup: one product by key, or every product under a
// category.
type Selector struct {
	Type SelectorType `json:"type"`
	Key  uint         `json:"key"`
}
