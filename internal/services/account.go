package services

import (
	"github.com/isdelr/admin-auth-be/internal/auth"
	"github.com/isdelr/admin-auth-be/internal/config"
	"github.com/isdelr/admin-auth-be/internal/models"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// BuildAccount creates the admin account from configuration. A configured
// ADMIN_PASSWORD_HASH is used as-is after validation. Without one, the
// development fallback password is hashed on the spot; production refuses
// to start in that case.
func BuildAccount(cfg *config.Config, hasher auth.PasswordHasher) (models.Account, error) {
	if cfg.AdminPasswordHash != "" {
		if err := auth.ValidateHash(cfg.AdminPasswordHash); err != nil {
			return models.Account{}, errors.Wrap(err, "invalid ADMIN_PASSWORD_HASH")
		}
		return models.NewAccount(cfg.AdminUsername, cfg.AdminPasswordHash), nil
	}

	if cfg.IsProduction() {
		return models.Account{}, errors.New("ADMIN_PASSWORD_HASH must be set when APP_ENV=production")
	}

	hash, err := hasher.Hash(config.DevFallbackPassword)
	if err != nil {
		return models.Account{}, errors.Wrap(err, "failed to hash fallback admin password")
	}

	log.Warn().
		Str("username", cfg.AdminUsername).
		Msg("ADMIN_PASSWORD_HASH not set: using the built-in development password. Do NOT run this configuration in production")

	return models.NewAccount(cfg.AdminUsername, hash), nil
}
