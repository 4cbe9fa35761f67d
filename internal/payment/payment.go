package payment

import "context"

// Gateway is the payment-capture collaborator. The engine only consumes its
// data shapes; failures are returned, never panicked.
type Gateway interface {
	Capture(ctx context.Context, params CaptureParams) (*CaptureResult, error)
}
