// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	userstore "recetario/internal/app/store/users"
	"recetario/internal/app/system/authutil"
	"recetario/internal/app/system/status"
	"recetario/internal/domain/apperr"
	"recetario/internal/domain/models"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs once after DB connections and schema/index setup are
// complete, but before the HTTP handler is built and requests are served.
//
// Returning a non-nil error aborts startup and prevents the server from
// starting.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SeedAdminEmail != "" {
		if err := ensureAdminUser(ctx, appCfg, deps, logger); err != nil {
			logger.Error("failed to seed admin account", zap.Error(err))
			return err
		}
	}

	return nil
}

// ensureAdminUser makes sure the configured admin account exists. An
// existing account with the seed email is left untouched; a fresh one is
// created fully registered with the admin role.
func ensureAdminUser(ctx context.Context, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	scheme, err := authutil.NewScheme(appCfg.CredentialScheme)
	if err != nil {
		return err
	}
	users := userstore.New(deps.MongoDatabase, scheme)

	if existing, err := users.GetByEmail(ctx, appCfg.SeedAdminEmail); err == nil {
		logger.Debug("admin account already present",
			zap.String("email", existing.Email),
			zap.String("role", existing.Role),
		)
		return nil
	} else if !apperr.IsNotFound(err) {
		return err
	}

	u, err := users.Create(ctx, userstore.CreateParams{
		Username: appCfg.SeedAdminUsername,
		Password: appCfg.SeedAdminPassword,
		Email:    appCfg.SeedAdminEmail,
		Status:   status.UserFullRegistered,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		return err
	}

	logger.Info("created admin account",
		zap.String("email", u.Email),
		zap.String("user_id", u.ID.Hex()),
	)
	return nil
}
