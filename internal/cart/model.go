package cart

// CartItem is one cart line. Identity is the (UserKey, ProductKey,
// VariationQuantity) triple; at most one row exists per identity.
type CartItem struct {
	UserKey           uint  `json:"userKey"`
	ProductKey        uint  `json:"productKey"`
	VariationQuantity int64 `json:"variationQuantity"`
	NoOfItems         int   `json:"noOfItems"`
}

// Item is an add-to-cart payload.
type Item struct {
	ProductKey        uint  `json:"productKey"`
	NoOfItems         int   `json:"noOfItems"`
	VariationQuantity int64 `json:"variationQuantity"`
}

// ItemRef names a cart line by composite identity, without a quantity.
type ItemRef struct {
	ProductKey        uint  `json:"productKey"`
	VariationQuantity int64 `json:"variationQuantity"`
}

// Change is a move-or-update request: Old names the existing line, New the
// identity and quantity it should end up with.
type Change struct {
	Old Item `json:"old"`
	New Item `json:"new"`
}
