package handler

import (
	"net/http"

	"freshkart-be/internal/payment"
)

type PaymentHandler struct {
	Gateway payment.Gateway
}

// CreatePayment runs a synchronous capture. A processing intent hands the
// client secret back so the frontend can confirm.
func (h *PaymentHandler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var params payment.CaptureParams
	if err := decodeJSON(r, &params); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request")
		return
	}

	result, err := h.Gateway.Capture(r.Context(), params)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if result.Status == payment.StatusSucceeded {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Payment Completed Successfully"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message":       "Confirm payment please",
		"client_secret": result.ClientSecret,
	})
}
