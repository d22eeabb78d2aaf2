package components

import (
	"court-booking/internal/infra/dbq"
	"court-booking/internal/infra/identity"
	"court-booking/internal/infra/readstore"
	"court-booking/internal/infra/uow"
	"court-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	writeModule,
	identityModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Reservation
		func(q *dbq.Queries) readstore.ReservationViewQueries { return q },
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(shared.ReservationReadStore)),
		),
		// User
		func(q *dbq.Queries) readstore.UserReadQueries { return q },
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(shared.UserReadStore)),
		),
	),
)

// Write repositories are bound per transaction by the unit of work.
var writeModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

var identityModule = fx.Module("persistence/identity",
	fx.Provide(
		fx.Annotate(
			identity.NewRedisRevocationStore,
			fx.As(new(identity.RevocationStore)),
		),
		fx.Annotate(
			identity.NewProvider,
			fx.As(new(shared.IdentityProvider)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *dbq.Queries {
	return dbq.New()
}

func NewDBTX(pool *pgxpool.Pool) dbq.DBTX {
	return pool
}
