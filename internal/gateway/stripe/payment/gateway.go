package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/client"
	"github.com/stripe/stripe-go/v79/paymentintent"
	"marketplace/internal/entities"
	"marketplace/internal/gateway/metrics"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const serviceName = "stripe"

// Экспонента минорной единицы валюты. По умолчанию сотые доли.
// https://docs.stripe.com/currencies#zero-decimal
const defaultMinorUnitExponent = -2

var minorUnitExponents = map[string]int32{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "JPY": 0, "KMF": 0, "KRW": 0, "MGA": 0,
	"PYG": 0, "RWF": 0, "UGX": 0, "VND": 0, "VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,

	"BHD": -3, "JOD": -3, "KWD": -3, "OMR": -3, "TND": -3,
}

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 6 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// StripeGateway читает PaymentIntent по ссылке на платёж, которую прислал покупатель.
type StripeGateway struct {
	intents intents
	retrier retrier
}

// NewClient собирает клиент PaymentIntents без глобального состояния stripe-go.
func NewClient(secretKey string) *paymentintent.Client {
	api := &client.API{}
	api.Init(secretKey, nil)
	return api.PaymentIntents
}

func New(intents intents) *StripeGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &StripeGateway{
		intents: intents,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *StripeGateway) GetPayment(ctx context.Context, reference string) (*entities.Payment, error) {
	var (
		intent  *stripe.PaymentIntent
		attempt uint64
	)
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++

		params := &stripe.PaymentIntentParams{}
		params.Context = ctx

		var err error
		intent, err = g.intents.Get(reference, params)
		return err
	})

	metrics.Observe(serviceName, "GetPayment", statusCode(err), start, attempt)

	if err != nil {
		if isMissing(err) {
			return nil, fmt.Errorf("%w: %s", ErrPaymentNotFound, reference)
		}
		return nil, fmt.Errorf("gateway stripe, get payment intent %s: %w", reference, err)
	}

	return toPayment(reference, intent), nil
}

func toPayment(reference string, intent *stripe.PaymentIntent) *entities.Payment {
	currency := strings.ToUpper(string(intent.Currency))
	return &entities.Payment{
		Reference: reference,
		Succeeded: intent.Status == stripe.PaymentIntentStatusSucceeded,
		Amount:    decimal.New(intent.Amount, minorUnitExponent(currency)),
		Currency:  currency,
	}
}

func minorUnitExponent(currency string) int32 {
	if exp, ok := minorUnitExponents[currency]; ok {
		return exp
	}
	return defaultMinorUnitExponent
}

func isRetryable(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false
	}

	if stripeErr.HTTPStatusCode >= http.StatusInternalServerError {
		return true
	}

	switch stripeErr.Code {
	case stripe.ErrorCodeRateLimit,
		stripe.ErrorCodeLockTimeout:
		return true
	default:
		return stripeErr.HTTPStatusCode == http.StatusTooManyRequests
	}
}

func isMissing(err error) bool {
	var stripeErr *stripe.Error
	if !errors.As(err, &stripeErr) {
		return false
	}
	return stripeErr.Code == stripe.ErrorCodeResourceMissing || stripeErr.HTTPStatusCode == http.StatusNotFound
}

func statusCode(err error) string {
	if err == nil {
		return "OK"
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) && stripeErr.HTTPStatusCode != 0 {
		return http.StatusText(stripeErr.HTTPStatusCode)
	}
	return "UNKNOWN"
}
