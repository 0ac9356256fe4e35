// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	healthfeature "recetario/internal/app/features/health"
	ingredientsfeature "recetario/internal/app/features/ingredients"
	recipesfeature "recetario/internal/app/features/recipes"
	usersfeature "recetario/internal/app/features/users"
	ingredientstore "recetario/internal/app/store/ingredients"
	recipestore "recetario/internal/app/store/recipes"
	userstore "recetario/internal/app/store/users"
	"recetario/internal/app/system/apicors"
	"recetario/internal/app/system/authutil"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. The app is a cookie-free JSON API, so
// the /api subtree gets permissive CORS and no session machinery.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	scheme, err := authutil.NewScheme(appCfg.CredentialScheme)
	if err != nil {
		logger.Error("credential scheme init failed", zap.Error(err))
		return nil, err
	}
	logger.Info("credential scheme configured", zap.String("scheme", scheme.Name()))

	ingredients := ingredientstore.New(deps.MongoDatabase)
	recipes := recipestore.New(deps.MongoDatabase)
	users := userstore.New(deps.MongoDatabase, scheme)

	r := chi.NewRouter()

	// Global middleware. CORS must be early in the chain to handle
	// preflight requests.
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.CORSFromConfig(coreCfg))
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// JSON API
	r.Route("/api", func(api chi.Router) {
		api.Use(apicors.Middleware())

		api.Mount("/ingredients", ingredientsfeature.Routes(
			ingredientsfeature.NewHandler(ingredients, logger),
		))
		api.Mount("/recipes", recipesfeature.Routes(
			recipesfeature.NewHandler(recipes, users, logger),
		))
		api.Mount("/users", usersfeature.Routes(
			usersfeature.NewHandler(users, deps.Mailer, logger),
		))
	})

	return r, nil
}
