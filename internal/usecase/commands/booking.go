package commands

//go:generate mockgen -source=booking.go -destination=../../../tests/mock/commands/booking.go -package=commandsmock

import (
	"context"
	"errors"
	"log/slog"

	"court-booking/internal/domain/auth"
	"court-booking/internal/domain/court"
	"court-booking/internal/domain/reservation"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/metrics"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// Machine-readable conflict reasons returned to clients.
const (
	ReasonAlreadyBookedToday = "already-booked-today"
	ReasonSlotTaken          = "slot-taken"
	ReasonSlotInPast         = "slot-in-past"
)

type BookingRequest struct {
	CourtID   int
	Date      string
	StartTime string
}

type BookingCommands interface {
	RequestBooking(ctx context.Context, session *auth.Session, req BookingRequest) (*reservation.Reservation, error)
	CancelBooking(ctx context.Context, session *auth.Session, reservationID uuid.UUID) error
}

// BookingPolicy holds the club rules applied before a booking reaches the store.
type BookingPolicy struct {
	// HorizonDays is how many days ahead of today a member may book. Zero disables the limit.
	HorizonDays int
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	reads   shared.ReservationReadStore
	catalog *court.Catalog
	clock   clock.Clock
	policy  BookingPolicy
	logger  *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	reads shared.ReservationReadStore,
	catalog *court.Catalog,
	clk clock.Clock,
	policy BookingPolicy,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:     uow,
		reads:   reads,
		catalog: catalog,
		clock:   clk,
		policy:  policy,
		logger:  logger,
	}
}

// RequestBooking re-reads the reservations of the requested date, applies the
// one-booking-per-day rule and the cell state, then inserts. Races lost at insert
// time are reported through the store's unique constraints.
func (b *bookingCommandsImpl) RequestBooking(ctx context.Context, session *auth.Session, req BookingRequest) (*reservation.Reservation, error) {
	if session == nil {
		return nil, errs.ErrAuthRequired
	}

	courtEntry, slot, date, err := b.validate(req)
	if err != nil {
		return nil, err
	}

	existing, err := b.reads.Query(ctx, shared.ByDate(date))
	if err != nil {
		metrics.IncBookingRequest("store_unavailable")
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	userID := session.UserID()
	if reservation.HasBookingOn(userID, date, existing) {
		metrics.IncBookingRequest("already_booked_today")
		return nil, errs.ErrAlreadyBookedToday
	}

	now := b.clock.Now()
	switch cell := reservation.ComputeCellStatus(courtEntry.ID, slot, date, now, existing); cell.Status {
	case reservation.StatusReserved:
		metrics.IncBookingRequest("slot_taken")
		return nil, errs.ErrSlotTaken
	case reservation.StatusPast:
		metrics.IncBookingRequest("slot_in_past")
		return nil, errs.ErrSlotInPast
	}

	draft, err := reservation.New(userID, courtEntry.ID, date, slot, session.Identity.DisplayName())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var stored *reservation.Reservation
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var insertErr error
		stored, insertErr = tx.Reservations().Insert(ctx, draft)
		return insertErr
	})
	if err != nil {
		mapped := mapInsertError(err)
		metrics.IncBookingRequest(resultLabel(mapped))
		if errors.Is(mapped, errs.ErrStoreUnavailable) {
			b.logger.Error("reservation insert failed", "user_id", userID, "court_id", courtEntry.ID, "error", err.Error())
		}
		return nil, mapped
	}

	metrics.IncBookingRequest("ok")
	b.logger.Info("reservation created",
		"reservation_id", stored.ID(),
		"user_id", userID,
		"court_id", stored.CourtID(),
		"date", stored.Date().String(),
		"start_time", stored.StartTime().String())

	return stored, nil
}

func (b *bookingCommandsImpl) CancelBooking(ctx context.Context, session *auth.Session, reservationID uuid.UUID) error {
	if session == nil {
		return errs.ErrAuthRequired
	}

	userID := session.UserID()
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindByIDForUpdate(ctx, reservationID)
		if err != nil {
			return mapLookupError(err)
		}

		if !res.IsOwnedBy(userID) {
			return errs.ErrForbidden
		}

		if err := tx.Reservations().DeleteByID(ctx, reservationID); err != nil {
			return mapLookupError(err)
		}
		return nil
	})

	switch {
	case err == nil:
		metrics.IncCancellation("ok")
		b.logger.Info("reservation cancelled", "reservation_id", reservationID, "user_id", userID)
	case errors.Is(err, errs.ErrForbidden):
		metrics.IncCancellation("forbidden")
		b.logger.Warn("cancellation refused", "reservation_id", reservationID, "user_id", userID)
	case errors.Is(err, errs.ErrReservationNotFound):
		metrics.IncCancellation("not_found")
	default:
		metrics.IncCancellation("store_unavailable")
		err = errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return err
}

func (b *bookingCommandsImpl) validate(req BookingRequest) (court.Court, reservation.Slot, reservation.Date, error) {
	courtEntry, ok := b.catalog.Get(req.CourtID)
	if !ok {
		return court.Court{}, reservation.Slot{}, reservation.Date{}, errs.ErrUnknownCourt
	}

	slot, err := reservation.ParseSlot(req.StartTime)
	if err != nil {
		return court.Court{}, reservation.Slot{}, reservation.Date{}, errs.Mark(err, errs.ErrInvalidSlot)
	}
	if !slot.IsOffered() {
		return court.Court{}, reservation.Slot{}, reservation.Date{}, errs.ErrInvalidSlot
	}

	date, err := reservation.ParseDate(req.Date)
	if err != nil {
		return court.Court{}, reservation.Slot{}, reservation.Date{}, errs.Mark(err, errs.ErrDomainValidation)
	}

	if b.policy.HorizonDays > 0 {
		today := reservation.DateOf(b.clock.Now())
		if date.After(today.AddDays(b.policy.HorizonDays)) {
			return court.Court{}, reservation.Slot{}, reservation.Date{}, errs.ErrOutsideHorizon
		}
	}

	return courtEntry, slot, date, nil
}

// mapInsertError turns a failed insert into a booking conflict when one of the
// reservation unique constraints fired.
func mapInsertError(err error) error {
	if !infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	if infra.ConstraintOf(err) == infra.ConstraintReservationUserDay {
		return errs.Mark(err, errs.ErrAlreadyBookedToday)
	}
	return errs.Mark(err, errs.ErrSlotTaken)
}

func mapLookupError(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrReservationNotFound)
	}
	return errs.Mark(err, errs.ErrStoreUnavailable)
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, errs.ErrAlreadyBookedToday):
		return "already_booked_today"
	case errors.Is(err, errs.ErrSlotTaken):
		return "slot_taken"
	default:
		return "store_unavailable"
	}
}

// ConflictReason reports the machine-readable reason of a booking conflict, or "".
func ConflictReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrAlreadyBookedToday):
		return ReasonAlreadyBookedToday
	case errors.Is(err, errs.ErrSlotTaken):
		return ReasonSlotTaken
	case errors.Is(err, errs.ErrSlotInPast):
		return ReasonSlotInPast
	default:
		return ""
	}
}
