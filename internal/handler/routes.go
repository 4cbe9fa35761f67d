package handler

import "net/http"

// method wraps a handler func with a method guard.
func method(m string, fn http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != m {
			writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
			return
		}
		fn(w, r)
	}
}

// Routes wires every endpoint onto a fresh mux.
func Routes(u *UserHandler, p *ProductHandler, c *CartHandler, o *OrderHandler, pay *PaymentHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/users/check_user", method(http.MethodPost, u.CheckUser))
	mux.HandleFunc("/users/login", method(http.MethodPost, u.Login))
	mux.HandleFunc("/users/signup", method(http.MethodPost, u.SignUp))
	mux.HandleFunc("/users/get-current-user", method(http.MethodGet, u.GetCurrentUser))

	mux.HandleFunc("/products/get-all-categories", method(http.MethodGet, p.GetAllCategories))
	mux.HandleFunc("/products/search-product", method(http.MethodGet, p.SearchProduct))
	mux.HandleFunc("/products/get-product-from-keys", method(http.MethodGet, p.GetProductFromKeys))
	mux.HandleFunc("/products/get-products-from-category", method(http.MethodGet, p.GetProductsFromCategory))
	mux.HandleFunc("/products/get-related-products", method(http.MethodGet, p.GetRelatedProducts))

	mux.HandleFunc("/users/add-to-cart", method(http.MethodPost, c.AddToCart))
	mux.HandleFunc("/users/remove-from-cart", method(http.MethodDelete, c.RemoveFromCart))
	mux.HandleFunc("/users/change-no-of-product-in-cart", method(http.MethodPut, c.ChangeNoOfProductInCart))
	mux.HandleFunc("/users/get-cart-items", method(http.MethodGet, c.GetCartItems))

	mux.HandleFunc("/orders/place-order", method(http.MethodPost, o.PlaceOrder))
	mux.HandleFunc("/users/get-all-orders", method(http.MethodGet, o.GetAllOrders))

	mux.HandleFunc("/users/payment", method(http.MethodPost, pay.CreatePayment))

	return mux
}
