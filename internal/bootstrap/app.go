// Package bootstrap constructs every dependency once at process start and
// hands them to the router. Nothing in the app lazily initializes a client.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"careerforge-backend/internal/contract"
	"careerforge-backend/internal/coverletters"
	"careerforge-backend/internal/generate"
	"careerforge-backend/internal/identity"
	"careerforge-backend/internal/interview"
	"careerforge-backend/internal/jobs"
	"careerforge-backend/internal/linkedin"
	"careerforge-backend/internal/llm"
	"careerforge-backend/internal/llm/gemini"
	"careerforge-backend/internal/payments"
	"careerforge-backend/internal/resumes"
	"careerforge-backend/internal/shared/config"
	"careerforge-backend/internal/shared/server"
	"careerforge-backend/internal/shared/storage/db"
	"careerforge-backend/internal/users"
)

// App holds shared dependencies.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Ops    *contract.Registry

	LLM      llm.Client
	Verifier identity.Verifier

	ResumesRepo      resumes.Repo
	CoverLettersRepo coverletters.Repo
	UsersRepo        users.Repo
	PaymentsRepo     payments.Repo

	ResumesService      *resumes.Service
	CoverLettersService *coverletters.Service
	UsersService        *users.Service
	JobsService         *jobs.Service
	InterviewService    *interview.Service
	LinkedInService     *linkedin.Service
	PaymentsService     *payments.Service

	ResumesHandler      *resumes.Handler
	CoverLettersHandler *coverletters.Handler
	UsersHandler        *users.Handler
	JobsHandler         *jobs.Handler
	InterviewHandler    *interview.Handler
	LinkedInHandler     *linkedin.Handler
	PaymentsHandler     *payments.Handler
}

// Build prepares shared dependencies and wires the router.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	llmClient, err := buildLLM(ctx, cfg)
	if err != nil {
		return nil, err
	}

	verifier, err := buildVerifier(cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		DB:       sqlDB,
		Ops:      contract.Default(),
		LLM:      llmClient,
		Verifier: verifier,
	}

	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Env:              cfg.Env,
		CORSAllowOrigins: cfg.CORSAllowOrigin,
		Verifier:         app.Verifier,
		Ops:              app.Ops,
		Resumes:          app.ResumesHandler,
		CoverLetters:     app.CoverLettersHandler,
		Jobs:             app.JobsHandler,
		Interview:        app.InterviewHandler,
		LinkedIn:         app.LinkedInHandler,
		Payments:         app.PaymentsHandler,
		Users:            app.UsersHandler,
	})

	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: DATABASE_URL empty; using in-memory repositories")
			return nil, nil
		}
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if isDevLike(cfg.Env) {
			log.Printf("bootstrap: database connect failed; using in-memory repositories: %v", err)
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

func buildLLM(ctx context.Context, cfg config.Config) (llm.Client, error) {
	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		log.Printf("bootstrap: GEMINI_API_KEY empty; generation endpoints disabled")
		return llm.Placeholder{}, nil
	}
	return gemini.New(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
}

// buildVerifier prefers local JWT verification when the provider secret is
// shared with us; otherwise it falls back to remote lookup. With neither
// configured, authenticated routes answer 500 rather than pretending a 401.
func buildVerifier(cfg config.Config) (identity.Verifier, error) {
	if strings.TrimSpace(cfg.IdentityJWTSecret) != "" {
		return identity.NewJWTVerifier(cfg.IdentityJWTSecret)
	}
	if strings.TrimSpace(cfg.IdentityURL) != "" {
		return identity.NewRemoteVerifier(cfg.IdentityURL, cfg.IdentityAPIKey)
	}
	log.Printf("bootstrap: no identity provider configured; authenticated routes will fail")
	return identity.Disabled{}, nil
}

func buildServices(app *App) error {
	if app.DB != nil {
		app.ResumesRepo = &resumes.PGRepo{DB: app.DB}
		app.CoverLettersRepo = &coverletters.PGRepo{DB: app.DB}
		app.UsersRepo = &users.PGRepo{DB: app.DB}
		app.PaymentsRepo = &payments.PGRepo{DB: app.DB}
	} else {
		app.ResumesRepo = resumes.NewMemoryRepo()
		app.CoverLettersRepo = coverletters.NewMemoryRepo()
		app.UsersRepo = users.NewMemoryRepo()
		app.PaymentsRepo = payments.NewMemoryRepo()
	}

	gen := generate.NewAdapter(app.LLM)

	app.ResumesService = &resumes.Service{Repo: app.ResumesRepo, Gen: gen}
	app.CoverLettersService = &coverletters.Service{Repo: app.CoverLettersRepo, Gen: gen}
	app.UsersService = users.NewService(app.UsersRepo)
	app.JobsService = jobs.NewService(jobs.NewHTTPFetcher(), gen)
	app.InterviewService = interview.NewService(gen)
	app.LinkedInService = linkedin.NewService(gen)
	app.PaymentsService = &payments.Service{
		Repo:        app.PaymentsRepo,
		Stripe:      buildStripe(app.Config),
		PayPal:      buildPayPal(app.Config),
		Users:       app.UsersRepo,
		AmountCents: app.Config.PremiumPriceCents,
		Currency:    app.Config.PremiumCurrency,
	}

	app.ResumesHandler = resumes.NewHandler(app.ResumesService, app.Ops)
	app.CoverLettersHandler = coverletters.NewHandler(app.CoverLettersService, app.Ops)
	app.UsersHandler = users.NewHandler(app.UsersService)
	app.JobsHandler = jobs.NewHandler(app.JobsService, app.Ops)
	app.InterviewHandler = interview.NewHandler(app.InterviewService, app.Ops)
	app.LinkedInHandler = linkedin.NewHandler(app.LinkedInService, app.Ops)
	app.PaymentsHandler = payments.NewHandler(app.PaymentsService, app.Ops)

	return nil
}

func buildStripe(cfg config.Config) payments.StripeGateway {
	if strings.TrimSpace(cfg.StripeSecretKey) == "" {
		log.Printf("bootstrap: STRIPE_SECRET_KEY empty; Stripe payments disabled")
		return payments.DisabledStripe{}
	}
	return payments.NewStripeClient(cfg.StripeSecretKey)
}

func buildPayPal(cfg config.Config) payments.PayPalGateway {
	if strings.TrimSpace(cfg.PayPalClientID) == "" || strings.TrimSpace(cfg.PayPalSecret) == "" {
		log.Printf("bootstrap: PayPal credentials empty; PayPal payments disabled")
		return payments.DisabledPayPal{}
	}
	client, err := payments.NewPayPalClient(cfg.PayPalClientID, cfg.PayPalSecret, cfg.PayPalLive)
	if err != nil {
		log.Printf("bootstrap: PayPal client init failed; PayPal payments disabled: %v", err)
		return payments.DisabledPayPal{}
	}
	return client
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}

// Close releases long-lived resources.
func (a *App) Close() {
	if a.DB != nil {
		_ = a.DB.Close()
	}
	if closer, ok := a.LLM.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
