package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"freshkart-be/internal/logger"

	"go.uber.org/zap"
)

const defaultStripeBaseURL = "https://api.stripe.com"

type stripeGateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewStripeGateway(apiKey string) Gateway {
	if apiKey == "" {
		logger.L().Warn("Stripe API key is empty")
	}

	return &stripeGateway{
		apiKey:  apiKey,
		baseURL: defaultStripeBaseURL,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Capture creates a confirmed payment intent. Amount is in the currency's
// smallest unit, per the Stripe wire format.
func (g *stripeGateway) Capture(ctx context.Context, params CaptureParams) (*CaptureResult, error) {
	log := logger.FromCtx(ctx).With(
		zap.Int64("amount", params.Amount),
		zap.String("currency", params.Currency),
	)

	if params.Amount <= 0 {
		return nil, errors.New("capture amount must be positive")
	}
	if params.Currency == "" {
		return nil, errors.New("capture currency is required")
	}

	form := url.Values{}
	form.Set("amount", fmt.Sprint(params.Amount))
	form.Set("currency", params.Currency)
	form.Set("confirm", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		g.baseURL+"/v1/payment_intents", strings.NewReader(form.Encode()))
	if err != nil {
		log.Error("failed creating capture request", zap.Error(err))
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+g.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("capture request failed", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		log.Error("capture rejected",
			zap.Int("status_code", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return nil, fmt.Errorf("payment capture failed with status %d", resp.StatusCode)
	}

	var result CaptureResult
	if err := json.Unmarshal(body, &result); err != nil {
		log.Error("failed to decode capture response", zap.Error(err))
		return nil, err
	}

	log.Info("payment captured", zap.String("status", result.Status))
	return &result, nil
}
