//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	pushGateway "marketplace/internal/gateway/grpc/push"
	"marketplace/internal/gateway/kafka/transition"
	"marketplace/internal/gateway/stripe/payment"
	"marketplace/internal/handlers/tasks/bidding_window_report"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/factory/push_message"
	bidRepo "marketplace/internal/repository/bid"
	deliveryRepo "marketplace/internal/repository/delivery"
	listingRepo "marketplace/internal/repository/listing"
	"marketplace/internal/repository/memory"
	ratingRepo "marketplace/internal/repository/rating"
	trackingRepo "marketplace/internal/repository/tracking"
	deliveryService "marketplace/internal/service/delivery"
	fulfillmentService "marketplace/internal/service/fulfillment"
	listingService "marketplace/internal/service/listing"
	orderService "marketplace/internal/service/order"
	pushService "marketplace/internal/service/push"
	ratingService "marketplace/internal/service/rating"
	"marketplace/pkg/clock"
	"marketplace/pkg/logger"
	"marketplace/pkg/tx"
)

// businessSet не зависит от драйвера хранилища.
var businessSet = wire.NewSet(
	clock.New,
	provideTransitionTopic,
	provideTransitionPublisher,
	provideStripeGateway,
	provideSettlementCurrency,

	provideServiceListing,
	provideServiceOrder,
	provideServiceDelivery,
	provideServiceFulfillment,
	provideServiceRating,

	provideBiddingWindowReportInterval,
	provideBiddingWindowReportTask,
	provideTaskList,
	provideBackgroundWorkers,

	wire.Struct(new(Application), "*"),

	wire.Bind(new(ServiceListing), new(*listingService.Service)),
	wire.Bind(new(ServiceOrder), new(*orderService.Service)),
	wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
	wire.Bind(new(ServiceFulfillment), new(*fulfillmentService.Fulfillment)),
	wire.Bind(new(ServiceRating), new(*ratingService.Rating)),

	wire.Bind(new(listingService.Clock), new(clock.Real)),
	wire.Bind(new(orderService.Clock), new(clock.Real)),
	wire.Bind(new(deliveryService.Clock), new(clock.Real)),
	wire.Bind(new(fulfillmentService.Clock), new(clock.Real)),
	wire.Bind(new(ratingService.Clock), new(clock.Real)),

	wire.Bind(new(listingService.Notifier), new(*transition.Publisher)),
	wire.Bind(new(orderService.Notifier), new(*transition.Publisher)),
	wire.Bind(new(deliveryService.Notifier), new(*transition.Publisher)),
	wire.Bind(new(fulfillmentService.Notifier), new(*transition.Publisher)),
	wire.Bind(new(ratingService.Notifier), new(*transition.Publisher)),

	wire.Bind(new(orderService.PaymentGateway), new(*payment.StripeGateway)),
	wire.Bind(new(bidding_window_report.Service), new(*listingService.Service)),
)

var postgresSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideListingRepository,
	provideBidRepository,
	provideDeliveryRepository,
	provideTrackingRepository,
	provideRatingRepository,

	wire.Bind(new(listingService.Repository), new(*listingRepo.Repository)),
	wire.Bind(new(listingService.BidRepository), new(*bidRepo.Repository)),
	wire.Bind(new(listingService.TxManager), new(*tx.Manager)),

	wire.Bind(new(orderService.ListingRepository), new(*listingRepo.Repository)),
	wire.Bind(new(orderService.BidRepository), new(*bidRepo.Repository)),
	wire.Bind(new(orderService.DeliveryOfferRepository), new(*deliveryRepo.Repository)),
	wire.Bind(new(orderService.TrackingRepository), new(*trackingRepo.Repository)),
	wire.Bind(new(orderService.RatingRepository), new(*ratingRepo.Repository)),
	wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

	wire.Bind(new(deliveryService.ListingRepository), new(*listingRepo.Repository)),
	wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
	wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

	wire.Bind(new(fulfillmentService.ListingRepository), new(*listingRepo.Repository)),
	wire.Bind(new(fulfillmentService.OfferRepository), new(*deliveryRepo.Repository)),
	wire.Bind(new(fulfillmentService.TrackingRepository), new(*trackingRepo.Repository)),
	wire.Bind(new(fulfillmentService.TxManager), new(*tx.Manager)),

	wire.Bind(new(ratingService.ListingRepository), new(*listingRepo.Repository)),
	wire.Bind(new(ratingService.OfferRepository), new(*deliveryRepo.Repository)),
	wire.Bind(new(ratingService.Repository), new(*ratingRepo.Repository)),
	wire.Bind(new(ratingService.TxManager), new(*tx.Manager)),
)

var memorySet = wire.NewSet(
	provideMemoryListings,
	provideMemoryBids,
	provideMemoryOffers,
	provideMemoryTracking,
	provideMemoryRatings,

	wire.Bind(new(listingService.Repository), new(*memory.ListingRepository)),
	wire.Bind(new(listingService.BidRepository), new(*memory.BidRepository)),
	wire.Bind(new(listingService.TxManager), new(*memory.Store)),

	wire.Bind(new(orderService.ListingRepository), new(*memory.ListingRepository)),
	wire.Bind(new(orderService.BidRepository), new(*memory.BidRepository)),
	wire.Bind(new(orderService.DeliveryOfferRepository), new(*memory.OfferRepository)),
	wire.Bind(new(orderService.TrackingRepository), new(*memory.TrackingRepository)),
	wire.Bind(new(orderService.RatingRepository), new(*memory.RatingRepository)),
	wire.Bind(new(orderService.TxManager), new(*memory.Store)),

	wire.Bind(new(deliveryService.ListingRepository), new(*memory.ListingRepository)),
	wire.Bind(new(deliveryService.Repository), new(*memory.OfferRepository)),
	wire.Bind(new(deliveryService.TxManager), new(*memory.Store)),

	wire.Bind(new(fulfillmentService.ListingRepository), new(*memory.ListingRepository)),
	wire.Bind(new(fulfillmentService.OfferRepository), new(*memory.OfferRepository)),
	wire.Bind(new(fulfillmentService.TrackingRepository), new(*memory.TrackingRepository)),
	wire.Bind(new(fulfillmentService.TxManager), new(*memory.Store)),

	wire.Bind(new(ratingService.ListingRepository), new(*memory.ListingRepository)),
	wire.Bind(new(ratingService.OfferRepository), new(*memory.OfferRepository)),
	wire.Bind(new(ratingService.Repository), new(*memory.RatingRepository)),
	wire.Bind(new(ratingService.TxManager), new(*memory.Store)),
)

// InitializeApplication для HTTP сервиса (cmd/service) поверх Postgres
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		postgresSet,
		businessSet,
	)
	return &Application{}, nil
}

// InitializeInMemoryApplication для HTTP сервиса с STORAGE_DRIVER=memory
func InitializeInMemoryApplication(
	ctx context.Context,
	log logger.Logger,
	store *memory.Store,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		memorySet,
		businessSet,
	)
	return &Application{}, nil
}

// InitializeNotifyWorkerApp для Kafka воркера (cmd/worker-transition-notify)
func InitializeNotifyWorkerApp(conn *grpc.ClientConn) (*NotifyWorkerApp, error) {
	wire.Build(
		providePushGateway,
		push_message.New,
		pushService.New,

		wire.Bind(new(pushService.Gateway), new(*pushGateway.PushGateway)),
		wire.Bind(new(pushService.MessageFactory), new(*push_message.MessageFactory)),

		wire.Struct(new(NotifyWorkerApp), "*"),
	)
	return nil, nil
}
