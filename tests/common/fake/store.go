//go:build unit || e2e

// Package fake provides an in-memory record store for usecase tests.
// It honours the same unique constraints as the postgres schema and reports
// violations the way the postgres repositories do.
package fake

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"court-booking/internal/domain/reservation"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Job struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type Store struct {
	mu           sync.Mutex
	reservations map[uuid.UUID]*reservation.Reservation
	users        map[uuid.UUID]*user.User
	jobs         []Job
	now          func() time.Time

	insertCalls int
	// QueryErr and InsertErr, when set, are returned by the next matching call.
	QueryErr  error
	InsertErr error
}

var (
	_ shared.UnitOfWork           = (*Store)(nil)
	_ shared.ReservationReadStore = (*Store)(nil)
)

func NewStore() *Store {
	return &Store{
		reservations: make(map[uuid.UUID]*reservation.Reservation),
		users:        make(map[uuid.UUID]*user.User),
		now:          time.Now,
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, storeTx{s})
}

// Query implements shared.ReservationReadStore.
func (s *Store) Query(_ context.Context, filter shared.ReservationFilter) ([]*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.QueryErr != nil {
		err := s.QueryErr
		s.QueryErr = nil
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}

	var out []*reservation.Reservation
	for _, r := range s.reservations {
		if filter.ID != nil && r.ID() != *filter.ID {
			continue
		}
		if filter.Date != nil && r.Date() != *filter.Date {
			continue
		}
		if filter.UserID != nil && r.UserID() != *filter.UserID {
			continue
		}
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Date() != b.Date() {
			return a.Date().Before(b.Date())
		}
		if a.StartTime() != b.StartTime() {
			return a.StartTime().Before(b.StartTime())
		}
		return a.CourtID() < b.CourtID()
	})
	return out, nil
}

func (s *Store) UserReads() shared.UserReadStore {
	return userReads{s}
}

// Seed stores reservations as-is, bypassing the unique constraints.
func (s *Store) Seed(rs ...*reservation.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range rs {
		if r.ID() == uuid.Nil {
			r = reservation.Reconstruct(uuid.New(), r.UserID(), r.CourtID(), r.Date(), r.StartTime(), r.UserName(), s.now())
		}
		s.reservations[r.ID()] = r
	}
}

func (s *Store) SeedUsers(us ...*user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range us {
		s.users[u.ID()] = u
	}
}

func (s *Store) Reservations() []*reservation.Reservation {
	out, _ := s.Query(context.Background(), shared.ReservationFilter{})
	return out
}

func (s *Store) User(id uuid.UUID) (*user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	return u, ok
}

func (s *Store) Jobs() []Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Job(nil), s.jobs...)
}

func (s *Store) InsertCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertCalls
}

func uniqueViolation(constraint string) error {
	return &pgconn.PgError{Code: "23505", ConstraintName: constraint}
}

type storeTx struct{ s *Store }

func (t storeTx) Reservations() shared.ReservationRepository   { return reservationRepo(t) }
func (t storeTx) Users() shared.UserRepository                 { return userRepo(t) }
func (t storeTx) Notifications() shared.NotificationRepository { return notificationRepo(t) }

type reservationRepo struct{ s *Store }

func (r reservationRepo) Insert(_ context.Context, res *reservation.Reservation) (*reservation.Reservation, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insertCalls++
	if s.InsertErr != nil {
		err := s.InsertErr
		s.InsertErr = nil
		return nil, infra.WrapRepoErr("failed to insert reservation", err)
	}

	for _, existing := range s.reservations {
		if existing.Date() != res.Date() {
			continue
		}
		if existing.CourtID() == res.CourtID() && existing.StartTime() == res.StartTime() {
			return nil, infra.WrapRepoErr("failed to insert reservation", uniqueViolation(infra.ConstraintReservationSlot))
		}
		if existing.UserID() == res.UserID() {
			return nil, infra.WrapRepoErr("failed to insert reservation", uniqueViolation(infra.ConstraintReservationUserDay))
		}
	}

	stored := reservation.Reconstruct(uuid.New(), res.UserID(), res.CourtID(), res.Date(), res.StartTime(), res.UserName(), s.now())
	s.reservations[stored.ID()] = stored
	return stored, nil
}

func (r reservationRepo) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res, ok := r.s.reservations[id]
	if !ok {
		return nil, infra.WrapRepoErr("failed to find reservation", pgx.ErrNoRows)
	}
	return res, nil
}

func (r reservationRepo) DeleteByID(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.reservations[id]; !ok {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	delete(r.s.reservations, id)
	return nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *user.User) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.users {
		if existing.Email() == u.Email() {
			return uuid.Nil, infra.WrapRepoErr("failed to create user", uniqueViolation(infra.ConstraintUserEmail))
		}
	}
	now := r.s.now()
	r.s.users[u.ID()] = user.Reconstruct(u.ID(), u.Email(), u.PasswordHash(), u.Profile(),
		u.EmailVerifiedAt(), u.VerificationToken(), u.LastLogin(), now, now)
	return u.ID(), nil
}

func (r userRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	r.s.users[id] = user.Reconstruct(u.ID(), u.Email(), u.PasswordHash(), u.Profile(),
		u.EmailVerifiedAt(), u.VerificationToken(), &at, u.CreatedAt(), at)
	return nil
}

func (r userRepo) ConfirmEmail(_ context.Context, id uuid.UUID, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	u.ConfirmEmail(at)
	return nil
}

func (r userRepo) SetVerificationToken(_ context.Context, id uuid.UUID, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok || u.IsEmailVerified() {
		return infra.WrapRepoErr("user not found or already verified", nil, infra.KindNotFound)
	}
	u.RotateVerificationToken(token)
	return nil
}

type notificationRepo struct{ s *Store }

func (r notificationRepo) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.jobs = append(r.s.jobs, Job{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt})
	return nil
}

type userReads struct{ s *Store }

func (r userReads) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		return u, nil
	}
	return nil, infra.WrapRepoErr("failed to find user by id", pgx.ErrNoRows)
}

func (r userReads) FindByEmail(_ context.Context, email string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.s.users {
		if u.Email().Value() == email {
			return u, nil
		}
	}
	return nil, infra.WrapRepoErr("failed to find user by email", pgx.ErrNoRows)
}

func (r userReads) FindByVerificationToken(_ context.Context, token string) (*user.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if t := u.VerificationToken(); t != nil && *t == token && !u.IsEmailVerified() {
			return u, nil
		}
	}
	return nil, infra.WrapRepoErr("failed to find user by verification token", pgx.ErrNoRows)
}
