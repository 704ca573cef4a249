package user

import (
	"context"
	"time"

	"github.com/sealpay/wallet-ledger/internal/domain/entity"
	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	authport "github.com/sealpay/wallet-ledger/internal/domain/port/auth"
	coreport "github.com/sealpay/wallet-ledger/internal/domain/port/core"
	"github.com/sealpay/wallet-ledger/internal/domain/port/persistence"
)

// TokenPair is the result of a successful login or refresh
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Service handles registration and authentication. Registration creates the
// user and its wallet in one unit of work: a user without a wallet must never
// be observable.
type Service struct {
	uow          persistence.UnitOfWork
	hasher       authport.PasswordHasher
	issuer       authport.TokenIssuer
	sessions     authport.SessionStore
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	refreshTTL   time.Duration
}

// NewService creates a new user service
func NewService(
	uow persistence.UnitOfWork,
	hasher authport.PasswordHasher,
	issuer authport.TokenIssuer,
	sessions authport.SessionStore,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	refreshTTL time.Duration,
) *Service {
	return &Service{
		uow:          uow,
		hasher:       hasher,
		issuer:       issuer,
		sessions:     sessions,
		timeProvider: timeProvider,
		logger:       logger,
		refreshTTL:   refreshTTL,
	}
}

// Register creates a new user identified by phone together with an active,
// zero-balance wallet
func (s *Service) Register(ctx context.Context, phone, password string) (*entity.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Error("Failed to hash password", map[string]any{"error": err.Error()})
		return nil, errs.ErrInternalServer
	}

	newUser, err := entity.NewUser(phone, hash, s.timeProvider)
	if err != nil {
		return nil, err
	}

	err = s.uow.Execute(ctx, func(txCtx context.Context) error {
		users := s.uow.UserRepository(txCtx)

		exists, err := users.ExistsByPhone(txCtx, newUser.Phone)
		if err != nil {
			return err
		}
		if exists {
			return errs.ErrDuplicatePhone
		}

		if err := users.Create(txCtx, newUser); err != nil {
			return err
		}

		w := entity.NewWallet(newUser.ID, s.timeProvider)
		return s.uow.WalletRepository(txCtx).Create(txCtx, w)
	})
	if err != nil {
		s.logger.Warn("Registration failed", map[string]any{
			"phone": phone,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("User registered", map[string]any{
		"user_id": newUser.ID,
		"phone":   newUser.Phone,
	})
	return newUser, nil
}

// Login verifies credentials and issues an access/refresh token pair
func (s *Service) Login(ctx context.Context, phone, password string) (*TokenPair, error) {
	users := s.uow.UserRepository(ctx)

	u, err := users.GetByPhone(ctx, phone)
	if err != nil {
		if errs.IsNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		s.logger.Warn("Login rejected", map[string]any{"phone": phone})
		return nil, errs.ErrInvalidCredentials
	}

	pair, err := s.issueTokens(ctx, authport.Identity{UserID: u.ID, Phone: u.Phone})
	if err != nil {
		return nil, err
	}

	u.TouchLogin(s.timeProvider)
	if err := users.UpdateLastLogin(ctx, u); err != nil {
		// Login succeeded; a stale last_login stamp is not worth failing over.
		s.logger.Warn("Failed to stamp last login", map[string]any{
			"user_id": u.ID,
			"error":   err.Error(),
		})
	}

	s.logger.Info("User logged in", map[string]any{"user_id": u.ID})
	return pair, nil
}

// Refresh rotates a refresh token and issues a fresh token pair
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	identity, err := s.sessions.Get(ctx, refreshToken)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Delete(ctx, refreshToken); err != nil {
		s.logger.Warn("Failed to revoke rotated refresh token", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
	}

	return s.issueTokens(ctx, *identity)
}

// Logout revokes every refresh session the user holds. Outstanding access
// tokens stay valid until they expire; no new ones can be minted from old
// refresh tokens.
func (s *Service) Logout(ctx context.Context, userID uint64) error {
	if err := s.sessions.DeleteAllForUser(ctx, userID); err != nil {
		s.logger.Error("Failed to revoke sessions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return err
	}

	s.logger.Info("User logged out", map[string]any{"user_id": userID})
	return nil
}

func (s *Service) issueTokens(ctx context.Context, identity authport.Identity) (*TokenPair, error) {
	access, err := s.issuer.Issue(identity)
	if err != nil {
		s.logger.Error("Failed to issue access token", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	refresh, err := s.sessions.Create(ctx, identity, s.refreshTTL)
	if err != nil {
		s.logger.Error("Failed to create session", map[string]any{
			"user_id": identity.UserID,
			"error":   err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
