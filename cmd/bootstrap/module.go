package bootstrap

import (
	"court-booking/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RedisModule,
	JWTModule,
	CatalogModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
