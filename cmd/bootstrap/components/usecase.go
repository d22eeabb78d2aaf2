package components

import (
	"context"
	"log/slog"

	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/metrics"
	"court-booking/internal/usecase/commands"
	"court-booking/internal/usecase/queries"
	"court-booking/internal/usecase/session"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseSessionModule,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseSessionModule = fx.Module("usecase/session",
	fx.Provide(
		session.NewAccessor,
	),
	fx.Invoke(registerSessionListeners),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingCommands,
		func(cfg config.Config) commands.BookingPolicy {
			return commands.BookingPolicy{HorizonDays: cfg.Club.BookingHorizon}
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAvailabilityQueries,
	),
)

// registerSessionListeners attaches the metrics and audit listeners for the app lifetime.
func registerSessionListeners(lc fx.Lifecycle, accessor *session.Accessor, logger *slog.Logger) {
	var unsubscribe []func()
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			metrics.Register()
			unsubscribe = append(unsubscribe,
				accessor.Subscribe(session.MetricsListener),
				accessor.Subscribe(session.AuditListener(logger)),
			)
			return nil
		},
		OnStop: func(_ context.Context) error {
			for _, fn := range unsubscribe {
				fn()
			}
			return nil
		},
	})
}
