//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"errors"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/handlers/rest/bucket_toggle_post"
	"dispatch/internal/handlers/rest/buckets_get"
	"dispatch/internal/handlers/rest/cancel_confirm_post"
	"dispatch/internal/handlers/rest/cancel_delete"
	"dispatch/internal/handlers/rest/cancel_post"
	"dispatch/internal/handlers/rest/detail_get"
	"dispatch/internal/handlers/rest/logout_post"
	"dispatch/internal/handlers/rest/map_get"
	"dispatch/internal/handlers/rest/notification_delete"
	"dispatch/internal/handlers/rest/notifications_get"
	"dispatch/internal/handlers/rest/order_get"
	"dispatch/internal/handlers/rest/order_post"
	"dispatch/internal/handlers/rest/orders_get"
	"dispatch/internal/handlers/rest/selection_delete"
	"dispatch/internal/handlers/rest/selection_put"
	"dispatch/internal/handlers/rest/signin_post"
	"dispatch/internal/handlers/tasks/session_cleanup"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/factory/order_id"
	"dispatch/internal/pkg/middlewares/session_gate"
	"dispatch/internal/pkg/session_token"
	"dispatch/internal/pkg/sessionctx"

	orderRepo "dispatch/internal/repository/order"
	sessionRepo "dispatch/internal/repository/session"
	detailService "dispatch/internal/service/detail"
	mapviewService "dispatch/internal/service/mapview"
	notificationService "dispatch/internal/service/notification"
	orderService "dispatch/internal/service/order"
	panelService "dispatch/internal/service/panel"
	sessionService "dispatch/internal/service/session"

	"dispatch/pkg/background"
	"dispatch/pkg/logger"
	"dispatch/pkg/retrier"
	"dispatch/pkg/retrier/backoff_adapter"
	"dispatch/pkg/tx"

	"github.com/google/wire"
)

// Число попыток сгенерировать свободный ID заказа.
const orderIDMaxRetries = 5

type (
	CleanupInterval time.Duration
)

type Application struct {
	ServiceSession      ServiceSession
	ServiceOrder        ServiceOrder
	ServicePanel        ServicePanel
	ServiceDetail       ServiceDetail
	ServiceMap          ServiceMap
	ServiceNotification ServiceNotification
	SessionStore        *sessionRepo.Repository
	BackgroundWorkers   *background.Worker
}

type ServiceSession interface {
	signin_post.Service
	logout_post.Service
	session_gate.Authenticator
}

type ServiceOrder interface {
	orders_get.Service
	order_post.Service
	order_get.Service
}

type ServicePanel interface {
	buckets_get.Service
	bucket_toggle_post.Service
	selection_put.Service
	selection_delete.Service
	cancel_post.Service
	cancel_confirm_post.Service
	cancel_delete.Service
}

type ServiceDetail interface {
	detail_get.Service
}

type ServiceMap interface {
	map_get.Service
}

type ServiceNotification interface {
	notifications_get.Service
	notification_delete.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideRetrier,
		provideCleanupInterval,
		provideSessionConfig,
		provideMapConfig,
		provideTokenIssuer,

		orderRepo.New,
		sessionRepo.New,
		order_id.New,

		provideNotificationService,
		orderService.New,
		panelService.New,
		detailService.New,
		sessionService.New,
		mapviewService.New,

		provideSessionCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceSession), new(*sessionService.Service)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServicePanel), new(*panelService.Service)),
		wire.Bind(new(ServiceDetail), new(*detailService.Service)),
		wire.Bind(new(ServiceMap), new(*mapviewService.Service)),
		wire.Bind(new(ServiceNotification), new(*notificationService.Service)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.IDFactory), new(*order_id.IDFactory)),
		wire.Bind(new(orderService.Notifier), new(*notificationService.Service)),
		wire.Bind(new(orderService.Retrier), new(*backoff_adapter.Retrier)),
		wire.Bind(new(orderService.SessionStore), new(*sessionRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(panelService.OrderStore), new(*orderService.Service)),
		wire.Bind(new(panelService.StateStore), new(*sessionRepo.Repository)),
		wire.Bind(new(panelService.TxManager), new(*tx.Manager)),

		wire.Bind(new(detailService.Selector), new(*panelService.Service)),
		wire.Bind(new(mapviewService.OrderLister), new(*orderService.Service)),

		wire.Bind(new(sessionService.Repository), new(*sessionRepo.Repository)),
		wire.Bind(new(sessionService.TokenIssuer), new(*session_token.Issuer)),
		wire.Bind(new(sessionService.OrderStore), new(*orderService.Service)),
		wire.Bind(new(sessionService.Notifier), new(*notificationService.Service)),
		wire.Bind(new(sessionService.TxManager), new(*tx.Manager)),

		wire.Bind(new(session_cleanup.Service), new(*sessionService.Service)),
	)
	return &Application{}, nil
}

func provideTxManager() *tx.Manager {
	return tx.New(sessionctx.Key)
}

// provideRetrier повторяет создание заказа только при коллизии сгенерированного ID.
func provideRetrier() *backoff_adapter.Retrier {
	return backoff_adapter.New(retrier.Config{
		MaxRetries: orderIDMaxRetries,
		ShouldRetry: func(err error) bool {
			return errors.Is(err, orderService.ErrConflict)
		},
	})
}

func provideNotificationService(cfg *config.Config) *notificationService.Service {
	return notificationService.New(cfg.Notification.TTL)
}

func provideTokenIssuer(cfg *config.Config) *session_token.Issuer {
	return session_token.New([]byte(cfg.Session.Secret))
}

func provideSessionConfig(cfg *config.Config) sessionService.Config {
	return sessionService.Config{
		TokenTTL: cfg.Session.TokenTTL,
		IdleTTL:  cfg.Session.IdleTTL,
	}
}

func provideMapConfig(cfg *config.Config) mapviewService.Config {
	center := entities.Location{Lat: cfg.Map.CenterLat, Lng: cfg.Map.CenterLng}
	return mapviewService.Config{
		Center: center,
		Hub:    center,
	}
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.SessionCleanupInterval)
}

func provideSessionCleanupTask(
	log logger.Logger,
	sessionService session_cleanup.Service,
	interval CleanupInterval,
) *session_cleanup.SessionCleanup {
	return session_cleanup.NewSessionCleanup(log, sessionService, time.Duration(interval))
}

func provideTaskList(
	sessionCleanupTask *session_cleanup.SessionCleanup,
) []background.Task {
	return []background.Task{
		sessionCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
