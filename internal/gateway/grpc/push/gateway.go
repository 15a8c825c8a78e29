package push

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"marketplace/internal/entities"
	"marketplace/internal/gateway/metrics"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "push-service"
	sendMethod  = "/push.v1.PushService/Send"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type PushGateway struct {
	client  client
	retrier retrier
}

func New(client client) *PushGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryableCode,
	}

	return &PushGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (p *PushGateway) Send(ctx context.Context, message entities.PushMessage) error {
	req, err := toProto(message)
	if err != nil {
		return fmt.Errorf("gateway push, build request: %w", err)
	}

	err = p.executeWithMetrics(ctx, "Send", func(ctx context.Context) error {
		return p.client.Invoke(ctx, sendMethod, req, &emptypb.Empty{})
	})
	if err != nil {
		return fmt.Errorf("gateway push, send to %s: %w", message.RecipientID, err)
	}
	return nil
}

func isRetryableCode(err error) bool {
	if err == nil {
		return false
	}
	st, ok := status.FromError(err)
	if !ok {
		return false
	}

	switch st.Code() {
	case codes.ResourceExhausted,
		codes.Unavailable,
		codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

func (p *PushGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := p.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	metrics.Observe(serviceName, method, getGRPCCode(err), start, attempt)
	return err
}

func getGRPCCode(err error) string {
	if err == nil {
		return "OK"
	}
	if st, ok := status.FromError(err); ok {
		return st.Code().String()
	}
	return "UNKNOWN"
}
