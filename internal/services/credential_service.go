package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/isdelr/admin-auth-be/internal/auth"
	"github.com/isdelr/admin-auth-be/internal/models"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"
)

// Audit outcomes attached to every verification log event.
const (
	OutcomeMissingCredentials = "missing_credentials"
	OutcomeUnknownUser        = "unknown_user"
	OutcomeWrongPassword      = "wrong_password"
	OutcomeAuthenticated      = "authenticated"
	OutcomeInternalFailure    = "internal_failure"
)

// CredentialServiceProvider defines the interface for credential verification.
type CredentialServiceProvider interface {
	Verify(ctx context.Context, userID, password string) (models.Verdict, error)
}

// CredentialService verifies login attempts against the registered admin account.
// It holds no mutable state besides the hashing semaphore and is safe for
// concurrent use.
type CredentialService struct {
	account models.Account
	hasher  auth.PasswordHasher
	workers *semaphore.Weighted
}

// NewCredentialService creates a new CredentialService. maxConcurrent bounds how
// many bcrypt comparisons run at once; values below 1 are treated as 1.
func NewCredentialService(account models.Account, hasher auth.PasswordHasher, maxConcurrent int) *CredentialService {
	if maxConcurrent < 1 {
		maxConcurrent = 1
	}
	return &CredentialService{
		account: account,
		hasher:  hasher,
		workers: semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

// Verify checks a claimed username/password pair.
//
// Empty fields fail with ErrMissingCredentials before any hashing. An unknown
// username fails with ErrUnknownUser and a bad password with ErrWrongPassword;
// both match ErrInvalidCredentials. Hashing backend failures match ErrInternal.
func (s *CredentialService) Verify(ctx context.Context, userID, password string) (models.Verdict, error) {
	logger := log.With().
		Str("attempt_id", uuid.NewString()).
		Str("user_id", userID).
		Logger()

	if userID == "" || password == "" {
		logger.Warn().Str("outcome", OutcomeMissingCredentials).Msg("Rejected login attempt with missing credentials")
		return models.Verdict{}, ErrMissingCredentials
	}

	if models.NormalizeUsername(userID) != s.account.Username {
		// Spend a comparison anyway so unknown users take as long as wrong passwords.
		_, _ = s.compare(ctx, password)
		logger.Warn().Str("outcome", OutcomeUnknownUser).Msg("Failed authentication attempt")
		return models.Verdict{}, ErrUnknownUser
	}

	ok, err := s.compare(ctx, password)
	if err != nil {
		logger.Error().Err(err).Str("outcome", OutcomeInternalFailure).Msg("Password verification failed")
		return models.Verdict{}, err
	}
	if !ok {
		logger.Warn().Str("outcome", OutcomeWrongPassword).Msg("Failed authentication attempt")
		return models.Verdict{}, ErrWrongPassword
	}

	logger.Info().Str("outcome", OutcomeAuthenticated).Msg("User authenticated")
	return models.Verdict{Authenticated: true, Username: s.account.Username}, nil
}

// compare runs the bcrypt comparison on one of the bounded hashing slots.
func (s *CredentialService) compare(ctx context.Context, password string) (bool, error) {
	if err := s.workers.Acquire(ctx, 1); err != nil {
		return false, errors.Wrapf(ErrInternal, "waiting for hash worker: %v", err)
	}
	defer s.workers.Release(1)

	ok, err := s.hasher.Compare(s.account.PasswordHash, password)
	if err != nil {
		return false, errors.Wrapf(ErrInternal, "%v", err)
	}
	return ok, nil
}
