package bootstrap

import (
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewClubClock,
	),
)

// NewClubClock reads wall time in the club time zone so dates and slot starts are club-local.
func NewClubClock(cfg config.Config) clock.Clock {
	return clock.InLocation(clock.NewRealClock(), cfg.Club.Location())
}
