package bidding_window_report

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"marketplace/pkg/logger"
)

var ExpiredOpenListings = promauto.NewGauge(
	prometheus.GaugeOpts{
		Name: "listings_expired_open",
		Help: "Open listings whose bidding window has elapsed without an award",
	},
)

// BiddingWindowReport только считает листинги с истёкшим окном.
// Окно не закрывается автоматически, ставки после срока отклоняются лениво.
type BiddingWindowReport struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func New(log taskLogger, service Service, interval time.Duration) *BiddingWindowReport {
	return &BiddingWindowReport{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (b *BiddingWindowReport) TTL() time.Duration {
	return b.interval
}

func (b *BiddingWindowReport) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, b.interval)
	defer cancel()

	expired, err := b.service.CountExpiredOpenListings(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count expired open listings: %w", err)
	}

	ExpiredOpenListings.Set(float64(expired))

	if expired > 0 {
		b.log.With(
			logger.NewField("expired_open_listings", expired),
		).Info("bidding window report")
	}
	return nil
}

func (b *BiddingWindowReport) Info() string {
	return "bidding window report"
}
