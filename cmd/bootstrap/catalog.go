package bootstrap

import (
	"log/slog"

	"court-booking/internal/domain/court"
	"court-booking/internal/pkg/config"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Provide(
		NewCatalog,
	),
)

func NewCatalog(cfg config.Config, logger *slog.Logger) (*court.Catalog, error) {
	catalog, err := court.LoadCatalog(cfg.Club.CourtsFile)
	if err != nil {
		return nil, err
	}
	logger.Info("court catalog loaded", "courts", catalog.Len(), "file", cfg.Club.CourtsFile)
	return catalog, nil
}
