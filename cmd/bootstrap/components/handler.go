package components

import (
	"court-booking/internal/handler"
	"court-booking/internal/handler/api"
	"court-booking/internal/handler/middleware"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"
	"court-booking/internal/pkg/cookie"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(cfg config.Config) *cookie.Jar {
			return cookie.NewJar(cfg.Cookie, cfg.JWT)
		},
		func(cfg config.Config, clk clock.Clock) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.RateLimit, clk)
		},
		api.NewAuthHandler,
		api.NewAvailabilityHandler,
		api.NewReservationHandler,
		middleware.NewAuthMiddleware,
		func(
			auth *api.AuthHandler,
			availability *api.AvailabilityHandler,
			reservation *api.ReservationHandler,
			authMw *middleware.AuthMiddleware,
			limiter *middleware.RateLimiter,
			logger *middleware.Logger,
		) handler.Handlers {
			return handler.Handlers{
				Auth:         auth,
				Availability: availability,
				Reservation:  reservation,
				AuthMw:       authMw,
				RateLimiter:  limiter,
				Logger:       logger,
			}
		},
	),
	fx.Invoke(handler.NewRouter),
)
