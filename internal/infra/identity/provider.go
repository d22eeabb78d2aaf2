// Package identity is the local identity provider: members live in the users table,
// sessions are signed JWTs and sign-outs are remembered in Redis.
package identity

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"court-booking/internal/domain/auth"
	"court-booking/internal/domain/user"
	"court-booking/internal/infra"
	"court-booking/internal/pkg/clock"
	"court-booking/internal/pkg/errs"
	"court-booking/internal/pkg/jwt"
	"court-booking/internal/pkg/password"
	"court-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	JobKindEmailVerification = "email_verification"
	jobTopicAuth             = "auth"
)

type verificationPayload struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Code   string    `json:"code"`
}

type Provider struct {
	uow         shared.UnitOfWork
	users       shared.UserReadStore
	tokens      *jwt.Service
	revocations RevocationStore
	clock       clock.Clock
	logger      *slog.Logger
}

func NewProvider(
	uow shared.UnitOfWork,
	users shared.UserReadStore,
	tokens *jwt.Service,
	revocations RevocationStore,
	clk clock.Clock,
	logger *slog.Logger,
) *Provider {
	return &Provider{
		uow:         uow,
		users:       users,
		tokens:      tokens,
		revocations: revocations,
		clock:       clk,
		logger:      logger,
	}
}

func (p *Provider) SignUp(ctx context.Context, in shared.SignUpInput) (*auth.Identity, error) {
	credentials, err := auth.NewCredentials(in.Email, in.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	profile, err := user.NewProfile(in.FirstName, in.LastName, in.Phone, in.Gender)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := password.HashPassword(credentials.Password().Value())
	if err != nil {
		return nil, errs.Wrap(err, "failed to hash password")
	}

	member := user.NewUser(credentials.Email(), hash, profile, newVerificationCode())

	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Users().Create(ctx, member); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrEmailTaken)
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		return p.enqueueVerification(ctx, tx, member.ID(), member.Email().Value(), *member.VerificationToken())
	})
	if err != nil {
		return nil, err
	}

	p.logger.Info("member signed up", "user_id", member.ID())
	identity := identityOf(member)
	return &identity, nil
}

func (p *Provider) SignInWithPassword(ctx context.Context, email, pw string) (*auth.Session, error) {
	credentials, err := auth.NewCredentials(email, pw)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	member, err := p.users.FindByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same answer as a wrong password so emails cannot be enumerated.
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCredentials)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	if err := password.ComparePassword(member.PasswordHash(), credentials.Password().Value()); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidCredentials)
	}

	if !member.IsEmailVerified() {
		return nil, errs.ErrEmailNotConfirmed
	}

	session, err := p.issueSession(member)
	if err != nil {
		return nil, err
	}

	p.touchLastLogin(ctx, member.ID())
	return session, nil
}

func (p *Provider) GetSession(ctx context.Context, accessToken string) (*auth.Session, error) {
	if accessToken == "" {
		return nil, errs.ErrAuthRequired
	}

	claims, err := p.tokens.ValidateToken(accessToken, jwt.KindAccess)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrAuthRequired)
	}

	if err := p.ensureNotRevoked(ctx, claims.ID); err != nil {
		return nil, err
	}

	member, err := p.findMember(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return &auth.Session{
		Identity:    identityOf(member),
		AccessToken: accessToken,
		TokenID:     claims.ID,
		ExpiresAt:   claims.ExpiresAtTime(),
	}, nil
}

// SignOut revokes the access token and, when present, the refresh token of the session.
func (p *Provider) SignOut(ctx context.Context, session *auth.Session) error {
	if session == nil {
		return nil
	}

	if session.TokenID != "" {
		if err := p.revocations.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
	}

	if session.RefreshToken != "" {
		claims, err := p.tokens.ValidateToken(session.RefreshToken, jwt.KindRefresh)
		if err != nil {
			return nil
		}
		if err := p.revocations.Revoke(ctx, claims.ID, claims.ExpiresAtTime()); err != nil {
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
	}

	p.logger.Info("member signed out", "user_id", session.UserID())
	return nil
}

// ResendVerification succeeds silently for unknown or already confirmed addresses.
func (p *Provider) ResendVerification(ctx context.Context, email string) error {
	address, err := user.NewEmail(email)
	if err != nil {
		return errs.Mark(err, errs.ErrDomainValidation)
	}

	member, err := p.users.FindByEmail(ctx, address.Value())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			p.logger.Debug("verification resend for unknown email")
			return nil
		}
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}

	if member.IsEmailVerified() {
		return nil
	}

	code := newVerificationCode()
	return p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().SetVerificationToken(ctx, member.ID(), code); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		return p.enqueueVerification(ctx, tx, member.ID(), member.Email().Value(), code)
	})
}

// ExchangeCode confirms the email owning code and opens a session for it.
func (p *Provider) ExchangeCode(ctx context.Context, code string) (*auth.Session, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errs.ErrInvalidCode
	}

	member, err := p.users.FindByVerificationToken(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidCode)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	now := p.clock.Now()
	err = p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().ConfirmEmail(ctx, member.ID(), now); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrInvalidCode)
			}
			return errs.Mark(err, errs.ErrStoreUnavailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	member.ConfirmEmail(now)

	p.logger.Info("member confirmed email", "user_id", member.ID())
	return p.issueSession(member)
}

// Refresh rotates the refresh token: the presented one is revoked.
func (p *Provider) Refresh(ctx context.Context, refreshToken string) (*auth.Session, error) {
	if refreshToken == "" {
		return nil, errs.ErrAuthRequired
	}

	claims, err := p.tokens.ValidateToken(refreshToken, jwt.KindRefresh)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrAuthRequired)
	}

	if err := p.ensureNotRevoked(ctx, claims.ID); err != nil {
		return nil, err
	}

	member, err := p.findMember(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	if err := p.revocations.Revoke(ctx, claims.ID, claims.ExpiresAtTime()); err != nil {
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}

	return p.issueSession(member)
}

func (p *Provider) issueSession(member *user.User) (*auth.Session, error) {
	access, accessClaims, err := p.tokens.GenerateToken(member.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate access token")
	}

	refresh, _, err := p.tokens.GenerateRefreshToken(member.ID())
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate refresh token")
	}

	return &auth.Session{
		Identity:     identityOf(member),
		AccessToken:  access,
		RefreshToken: refresh,
		TokenID:      accessClaims.ID,
		ExpiresAt:    accessClaims.ExpiresAtTime(),
	}, nil
}

func (p *Provider) ensureNotRevoked(ctx context.Context, tokenID string) error {
	revoked, err := p.revocations.IsRevoked(ctx, tokenID)
	if err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	if revoked {
		return errs.ErrAuthRequired
	}
	return nil
}

func (p *Provider) findMember(ctx context.Context, id uuid.UUID) (*user.User, error) {
	member, err := p.users.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrAuthRequired)
		}
		return nil, errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return member, nil
}

func (p *Provider) touchLastLogin(ctx context.Context, id uuid.UUID) {
	err := p.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, id, p.clock.Now())
	})
	if err != nil {
		// Sign-in already succeeded.
		p.logger.Warn("failed to update last login", "user_id", id, "error", err.Error())
	}
}

func (p *Provider) enqueueVerification(ctx context.Context, tx shared.Tx, id uuid.UUID, email, code string) error {
	payload, err := json.Marshal(verificationPayload{UserID: id, Email: email, Code: code})
	if err != nil {
		return errs.Wrap(err, "failed to encode verification payload")
	}
	if err := tx.Notifications().CreateJob(ctx, JobKindEmailVerification, jobTopicAuth, payload, p.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrStoreUnavailable)
	}
	return nil
}

func identityOf(u *user.User) auth.Identity {
	profile := u.Profile()
	return auth.Identity{
		UserID:    u.ID(),
		Email:     u.Email().Value(),
		FirstName: profile.FirstName(),
		LastName:  profile.LastName(),
		Phone:     profile.Phone(),
		Gender:    profile.Gender().String(),
	}
}

func newVerificationCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
