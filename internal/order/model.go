package order

// Order is immutable once placed, except for appending to DeliveryStages.
type Order struct {
	Key               uint     `json:"_key"`
	UserKey           uint     `json:"userKey"`
	ProductKey        uint     `json:"productKey"`
	VariationQuantity int64    `json:"variationQuantity"`
	NoOfItems         int      `json:"noOfItems"`
	PaidPrice         float64  `json:"paidPrice"`
	PaymentStatus     int      `json:"paymentStatus"`
	OrderedDate       int64    `json:"orderedDate"`
	DeliveryAddress   string   `json:"deliveryAddress"`
	DeliveryStages    []string `json:"deliveryStages"`
}

// ProductDetails names the cart line an order entry converts.
type ProductDetails struct {
	ProductKey        uint  `json:"productKey"`
	NoOfItems         int   `json:"noOfItems"`
	VariationQuantity int64 `json:"variationQuantity"`
}

// Entry is one order payload inside a placement batch.
type Entry struct {
	DeliveryAddress string         `json:"deliveryAddress"`
	DeliveryStages  []string       `json:"deliveryStages"`
	OrderedDate     int64          `json:"orderedDate"`
	PaidPrice       float64        `json:"paidPrice"`
	PaymentStatus   int            `json:"paymentStatus"`
	ProductDetails  ProductDetails `json:"productDetails"`
}

// Batch is a place-order request. All entries commit or none do.
type Batch struct {
	Orders []Entry `json:"orders"`
}

// PlaceResult is the structured outcome consumed by the request layer.
type PlaceResult struct {
	OK      bool   `json:"result"`
	Message string `json:"message,omitempty"`
}
