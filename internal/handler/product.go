package handler

import (
	"net/http"
	"strconv"
	"strings"

	"freshkart-be/internal/category"
	"freshkart-be/internal/product"
	"freshkart-be/internal/recommend"
)

type ProductHandler struct {
	CategorySvc  category.Service
	ProductSvc   product.Service
	RecommendSvc recommend.Service
}

func (h *ProductHandler) GetAllCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.CategorySvc.GetCategories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get categories")
		return
	}
	if len(categories) == 0 {
		writeError(w, http.StatusNotFound, "Categories not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": categories})
}

func (h *ProductHandler) SearchProduct(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("searchTerm")

	products, err := h.ProductSvc.SearchProductsByName(r.Context(), term)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to search products")
		return
	}
	if len(products) == 0 {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": products})
}

// GetProductFromKeys resolves a comma separated key list into products.
func (h *ProductHandler) GetProductFromKeys(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("key")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	result := make([]product.Product, 0)
	for _, part := range strings.Split(raw, ",") {
		key, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid product key")
			return
		}

		products, err := h.ProductSvc.GetProductsFromKey(r.Context(),
			product.Selector{Type: product.SelectorProduct, Key: uint(key)})
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to get products")
			return
		}
		result = append(result, products...)
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": result})
}

func (h *ProductHandler) GetProductsFromCategory(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("category")
	key, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid category key")
		return
	}

	products, err := h.ProductSvc.GetProductsFromKey(r.Context(),
		product.Selector{Type: product.SelectorCategory, Key: uint(key)})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get products")
		return
	}
	if len(products) == 0 {
		writeError(w, http.StatusNotFound, "Products not found for the given category")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": products})
}

func (h *ProductHandler) GetRelatedProducts(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("productKey")
	key, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product key")
		return
	}

	related, err := h.RecommendSvc.RelatedToProduct(r.Context(), uint(key))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get related products")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": related})
}
