package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"google.golang.org/grpc"
	"marketplace/internal/entities"
	pushGateway "marketplace/internal/gateway/grpc/push"
	"marketplace/internal/gateway/kafka/transition"
	"marketplace/internal/gateway/stripe/payment"
	"marketplace/internal/handlers/rest/bid_accept_post"
	"marketplace/internal/handlers/rest/bid_decline_post"
	"marketplace/internal/handlers/rest/bid_post"
	"marketplace/internal/handlers/rest/bids_get"
	"marketplace/internal/handlers/rest/checkpoint_post"
	"marketplace/internal/handlers/rest/delivery_offer_accept_post"
	"marketplace/internal/handlers/rest/delivery_offer_post"
	"marketplace/internal/handlers/rest/delivery_offers_get"
	"marketplace/internal/handlers/rest/listing_bidding_end_put"
	"marketplace/internal/handlers/rest/listing_close_post"
	"marketplace/internal/handlers/rest/listing_delete"
	"marketplace/internal/handlers/rest/listing_get"
	"marketplace/internal/handlers/rest/listing_post"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/partner_rating_get"
	"marketplace/internal/handlers/rest/purchase_post"
	"marketplace/internal/handlers/rest/rating_post"
	"marketplace/internal/handlers/rest/tracking_get"
	"marketplace/internal/handlers/tasks/bidding_window_report"
	"marketplace/internal/pkg/config"
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
	"marketplace/pkg/background"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	"marketplace/pkg/tx"
)

type (
	BiddingWindowReportInterval time.Duration
	TransitionTopic             string
	SettlementCurrency          string
)

type Application struct {
	Listings          ServiceListing
	Orders            ServiceOrder
	Delivery          ServiceDelivery
	Fulfillment       ServiceFulfillment
	Ratings           ServiceRating
	BackgroundWorkers *background.Worker
}

type ServiceListing interface {
	listing_post.Service
	listing_get.Service
	listing_bidding_end_put.Service
	listing_close_post.Service
	listing_delete.Service
	bid_post.Service
	bids_get.Service
	bid_accept_post.Service
	bid_decline_post.Service
	bidding_window_report.Service
}

type ServiceOrder interface {
	purchase_post.Service
	order_get.Service
}

type ServiceDelivery interface {
	delivery_offer_post.Service
	delivery_offers_get.Service
	delivery_offer_accept_post.Service
}

type ServiceFulfillment interface {
	checkpoint_post.Service
	tracking_get.Service
}

type ServiceRating interface {
	rating_post.Service
	partner_rating_get.Service
}

type NotifyWorkerApp struct {
	PushService *pushService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, tx.WithConflictError(entities.ErrVersionConflict))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideListingRepository(querier *querier.Querier) *listingRepo.Repository {
	return listingRepo.New(querier)
}

func provideBidRepository(querier *querier.Querier) *bidRepo.Repository {
	return bidRepo.New(querier)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideTrackingRepository(querier *querier.Querier) *trackingRepo.Repository {
	return trackingRepo.New(querier)
}

func provideRatingRepository(querier *querier.Querier) *ratingRepo.Repository {
	return ratingRepo.New(querier)
}

func provideMemoryListings(store *memory.Store) *memory.ListingRepository {
	return store.Listings()
}

func provideMemoryBids(store *memory.Store) *memory.BidRepository {
	return store.Bids()
}

func provideMemoryOffers(store *memory.Store) *memory.OfferRepository {
	return store.Offers()
}

func provideMemoryTracking(store *memory.Store) *memory.TrackingRepository {
	return store.Tracking()
}

func provideMemoryRatings(store *memory.Store) *memory.RatingRepository {
	return store.Ratings()
}

func provideTransitionTopic(cfg *config.Config) TransitionTopic {
	return TransitionTopic(cfg.Kafka.Topic)
}

func provideTransitionPublisher(log logger.Logger, producer sarama.SyncProducer, topic TransitionTopic) *transition.Publisher {
	return transition.New(log, producer, string(topic))
}

func provideStripeGateway(cfg *config.Config) *payment.StripeGateway {
	return payment.New(payment.NewClient(cfg.Stripe.SecretKey))
}

func provideSettlementCurrency(cfg *config.Config) SettlementCurrency {
	return SettlementCurrency(cfg.Stripe.Currency)
}

func provideServiceListing(
	repository listingService.Repository,
	bidRepository listingService.BidRepository,
	txManager listingService.TxManager,
	clock listingService.Clock,
	notifier listingService.Notifier,
) *listingService.Service {
	return listingService.New(repository, bidRepository, txManager, clock, notifier)
}

func provideServiceOrder(
	listings orderService.ListingRepository,
	bids orderService.BidRepository,
	offers orderService.DeliveryOfferRepository,
	tracking orderService.TrackingRepository,
	ratings orderService.RatingRepository,
	payments orderService.PaymentGateway,
	txManager orderService.TxManager,
	clock orderService.Clock,
	notifier orderService.Notifier,
	currency SettlementCurrency,
) *orderService.Service {
	return orderService.New(
		listings,
		bids,
		offers,
		tracking,
		ratings,
		payments,
		txManager,
		clock,
		notifier,
		string(currency),
	)
}

func provideServiceDelivery(
	listings deliveryService.ListingRepository,
	repository deliveryService.Repository,
	txManager deliveryService.TxManager,
	clock deliveryService.Clock,
	notifier deliveryService.Notifier,
) *deliveryService.Delivery {
	return deliveryService.New(listings, repository, txManager, clock, notifier)
}

func provideServiceFulfillment(
	listings fulfillmentService.ListingRepository,
	offers fulfillmentService.OfferRepository,
	tracking fulfillmentService.TrackingRepository,
	txManager fulfillmentService.TxManager,
	clock fulfillmentService.Clock,
	notifier fulfillmentService.Notifier,
) *fulfillmentService.Fulfillment {
	return fulfillmentService.New(listings, offers, tracking, txManager, clock, notifier)
}

func provideServiceRating(
	listings ratingService.ListingRepository,
	offers ratingService.OfferRepository,
	repository ratingService.Repository,
	txManager ratingService.TxManager,
	clock ratingService.Clock,
	notifier ratingService.Notifier,
) *ratingService.Rating {
	return ratingService.New(listings, offers, repository, txManager, clock, notifier)
}

func provideBiddingWindowReportInterval(cfg *config.Config) BiddingWindowReportInterval {
	return BiddingWindowReportInterval(cfg.Tasks.BiddingWindowReportInterval)
}

func provideBiddingWindowReportTask(
	log logger.Logger,
	service bidding_window_report.Service,
	interval BiddingWindowReportInterval,
) *bidding_window_report.BiddingWindowReport {
	return bidding_window_report.New(log, service, time.Duration(interval))
}

func provideTaskList(
	biddingWindowReportTask *bidding_window_report.BiddingWindowReport,
) []background.Task {
	return []background.Task{
		biddingWindowReportTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

func providePushGateway(conn *grpc.ClientConn) *pushGateway.PushGateway {
	return pushGateway.New(conn)
}
