package payment

type CaptureParams struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// CaptureResult mirrors the slice of the payment intent the request layer
// needs: a terminal status, or a client secret when confirmation is pending.
type CaptureResult struct {
	Status       string `json:"status"`
	ClientSecret string `json:"client_secret,omitempty"`
}

const (
	StatusSucceeded  = "succeeded"
	StatusProcessing = "processing"
)
