package handler

import (
	"net/http"

	"freshkart-be/internal/cart"
	"freshkart-be/internal/product"
	"freshkart-be/internal/user"
	"freshkart-be/internal/utils"
)

type CartHandler struct {
	Svc        cart.Service
	UserSvc    user.Service
	ProductSvc product.Service
}

type cartItemsRequest struct {
	CartItems []cart.Item `json:"cartItems"`
}

func (h *CartHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	userKey, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "Session expired")
		return
	}

	var req cartItemsRequest
	if err := decodeJSON(r, &req); err != nil || len(req.CartItems) == 0 {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	for _, item := range req.CartItems {
		if err := h.Svc.AddToCart(r.Context(), item, userKey); err != nil {
			writeError(w, http.StatusBadRequest, "Failure adding to your cart")
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "Successfully add to your cart"})
}

type removeCartRequest struct {
	CartItems []cart.ItemRef `json:"cartItems"`
}

func (h *CartHandler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	userKey, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "Session expired")
		return
	}

	var req removeCartRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.Svc.RemoveFromCart(r.Context(), req.CartItems, userKey); err != nil {
		writeError(w, http.StatusBadRequest, "Failure removing from your cart")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "Successfully remove from your cart"})
}

func (h *CartHandler) ChangeNoOfProductInCart(w http.ResponseWriter, r *http.Request) {
	userKey, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "Session expired")
		return
	}

	var change cart.Change
	if err := decodeJSON(r, &change); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	if err := h.Svc.ChangeNoOfProductInCart(r.Context(), change, userKey); err != nil {
		writeError(w, http.StatusBadRequest, "Failure changing number of product in your cart")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "Successfully change number of product in your cart"})
}

type cartModel struct {
	cart.CartItem
	ProductDetails *product.Product `json:"productDetails,omitempty"`
}

// GetCartItems returns the user's cart lines joined with product details for
// display.
func (h *CartHandler) GetCartItems(w http.ResponseWriter, r *http.Request) {
	userKey, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "Session expired")
		return
	}

	profile, err := h.UserSvc.GetUserByKey(r.Context(), userKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get cart items")
		return
	}
	if profile == nil {
		writeError(w, http.StatusNotFound, "Cart items not found")
		return
	}

	models := make([]cartModel, 0, len(profile.CartItems))
	for _, item := range profile.CartItems {
		m := cartModel{CartItem: item}

		products, err := h.ProductSvc.GetProductsFromKey(r.Context(),
			product.Selector{Type: product.SelectorProduct, Key: item.ProductKey})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to get cart items")
			return
		}
		if len(products) > 0 {
			m.ProductDetails = &products[0]
		}

		models = append(models, m)
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"result": map[string]any{"cartModels": models},
	})
}
