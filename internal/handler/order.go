package handler

import (
	"net/http"

	"freshkart-be/internal/order"
	"freshkart-be/internal/product"
	"freshkart-be/internal/utils"
)

type OrderHandler struct {
	Svc        order.Service
	ProductSvc product.Service
}

func (h *OrderHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	userKey, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "Session expired")
		return
	}

	var batch order.Batch
	if err := decodeJSON(r, &batch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	res := h.Svc.PlaceOrder(r.Context(), batch, userKey)
	if !res.OK {
		writeJSON(w, http.StatusBadRequest, map[string]string{"result": res.Message})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"result": "Successfully place order"})
}

type orderModel struct {
	order.Order
	ProductDetails *product.Product `json:"productDetails,omitempty"`
}

// GetAllOrders returns the user's orders joined with product details.
func (h *OrderHandler) GetAllOrders(w http.ResponseWriter, r *http.Request) {
	userKey, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusNotFound, "Session expired")
		return
	}

	orders, err := h.Svc.GetOrdersOfUser(r.Context(), userKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get orders")
		return
	}

	result := make([]map[string]any, 0, len(orders))
	for _, o := range orders {
		m := orderModel{Order: o}

		products, err := h.ProductSvc.GetProductsFromKey(r.Context(),
			product.Selector{Type: product.SelectorProduct, Key: o.ProductKey})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to get orders")
			return
		}
		if len(products) > 0 {
			m.ProductDetails = &products[0]
		}

		result = append(result, map[string]any{"orderModel": m})
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}
