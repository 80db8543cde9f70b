package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/redis/go-redis/v9"

	"github.com/imaginarybank/webcore/config"
	"github.com/imaginarybank/webcore/internal/adapters/bff"
	adapteroidc "github.com/imaginarybank/webcore/internal/adapters/oidc"
	"github.com/imaginarybank/webcore/internal/adapters/redisstore"
	"github.com/imaginarybank/webcore/internal/adapters/storage"
	"github.com/imaginarybank/webcore/internal/csrf"
	apperrors "github.com/imaginarybank/webcore/internal/errors"
	"github.com/imaginarybank/webcore/internal/observability/statsd"
	"github.com/imaginarybank/webcore/internal/ports"
	"github.com/imaginarybank/webcore/internal/service"
	"github.com/imaginarybank/webcore/internal/transport"
)

// App is the assembled client stack: the pipeline-backed BFF client
// plus every service built on it.
type App struct {
	Config config.AppConfig
	Logger *slog.Logger

	BFF      *bff.Client
	Uploader *storage.Uploader
	Tokens   *csrf.Cache
	Sessions *service.SessionCache
	Guard    *service.Guard
	Auth     *service.AuthFlow
	Banking  *service.Banking

	store   ports.RegistrationStore
	redis   *redis.Client
	metrics *statsd.Client
}

// NewApp wires the full stack from configuration. The CSRF token cache
// is fed by a bootstrap client that runs the same pipeline minus the
// CSRF stage; both clients share one cookie router so the session
// cookie observed by either is visible to both.
func NewApp(ctx context.Context, cfg config.AppConfig, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	origin, err := url.Parse(cfg.HTTP.BaseURL)
	if err != nil || origin.Host == "" {
		return nil, fmt.Errorf("invalid APP_BASE_URL %q", cfg.HTTP.BaseURL)
	}

	metrics, err := statsd.NewClient(statsd.Config{
		Enabled: cfg.Observability.Metrics.IsEnabled(),
		Address: cfg.Observability.Metrics.StatsdAddress,
		Prefix:  cfg.Observability.Metrics.Prefix,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	router, err := transport.NewCookieRouter(origin, cfg.Security.CredentialPrefixes)
	if err != nil {
		return nil, fmt.Errorf("init cookie router: %w", err)
	}

	decoder, err := apperrors.NewDecoder(cfg.Security.ErrorCorrelationExpr)
	if err != nil {
		return nil, err
	}

	// The token fetcher must not itself require a token.
	bootHTTP := transport.NewClient(transport.ClientOptions{
		Origin:   origin,
		Security: cfg.Security,
		Router:   router,
		Metrics:  metrics,
		Timeout:  cfg.HTTP.Timeout,
	})
	bootBFF, err := bff.NewClient(bff.ClientOptions{
		BaseURL:    cfg.HTTP.BaseURL,
		HTTPClient: bootHTTP,
		Decoder:    decoder,
		TokenPath:  cfg.Security.CSRFTokenPath,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}
	tokens := csrf.NewCache(bootBFF)

	fullHTTP := transport.NewClient(transport.ClientOptions{
		Origin:   origin,
		Security: cfg.Security,
		Tokens:   tokens,
		Router:   router,
		Metrics:  metrics,
		Timeout:  cfg.HTTP.Timeout,
	})
	bffClient, err := bff.NewClient(bff.ClientOptions{
		BaseURL:    cfg.HTTP.BaseURL,
		HTTPClient: fullHTTP,
		Decoder:    decoder,
		TokenPath:  cfg.Security.CSRFTokenPath,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	// Presigned uploads go cross-origin; the router and CSRF stage
	// exempt them by destination, so they can ride the same pipeline.
	uploadHTTP := transport.NewClient(transport.ClientOptions{
		Origin:   origin,
		Security: cfg.Security,
		Router:   router,
		Metrics:  metrics,
		Timeout:  cfg.HTTP.UploadTimeout,
	})
	uploader, err := storage.NewUploader(storage.UploaderOptions{
		HTTPClient: uploadHTTP,
		Timeout:    cfg.HTTP.UploadTimeout,
		Logger:     logger,
	})
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		Logger:   logger,
		BFF:      bffClient,
		Uploader: uploader,
		Tokens:   tokens,
		metrics:  metrics,
	}

	app.Sessions = service.NewSessionCache(service.SessionCacheOptions{API: bffClient, Logger: logger})
	app.Guard = service.NewGuard(service.GuardOptions{
		Sessions:    app.Sessions,
		LoginPath:   cfg.HTTP.LoginPath,
		LandingPath: cfg.HTTP.LandingPath,
	})
	app.Banking = service.NewBanking(service.BankingOptions{API: bffClient, Logger: logger})

	var provider ports.AuthProvider
	if cfg.Auth.OIDC.DiscoveryURL != "" {
		p, err := adapteroidc.NewProvider(ctx, adapteroidc.ProviderConfig{
			ClientID:     cfg.Auth.OIDC.ClientID,
			ClientSecret: cfg.Auth.OIDC.ClientSecret,
			RedirectURL:  cfg.Auth.OIDC.RedirectURL,
			Scope:        cfg.Auth.OIDC.Scope,
			DiscoveryURL: cfg.Auth.OIDC.DiscoveryURL,
		})
		if err != nil {
			return nil, err
		}
		provider = p
	}
	app.Auth = service.NewAuthFlow(service.AuthFlowOptions{
		API:      bffClient,
		Provider: provider,
		Caches:   service.AuthFlowCaches{Sessions: app.Sessions, Tokens: tokens},
		Config:   service.AuthFlowConfig{LoginStartPath: cfg.HTTP.LoginStartPath},
		Logger:   logger,
	})

	if cfg.Workflow.Store == config.WorkflowStoreRedis {
		app.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.URI,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store, err := redisstore.NewRegistrationStore(redisstore.StoreOptions{
			Client: app.redis,
			TTL:    cfg.Workflow.SnapshotTTL,
		})
		if err != nil {
			return nil, err
		}
		app.store = store
	}

	return app, nil
}

// NewOnboarding returns a workflow for a fresh enrollment.
func (a *App) NewOnboarding() *service.Workflow {
	return service.NewWorkflow(a.workflowOptions())
}

// ResumeOnboarding loads a checkpointed enrollment. Requires
// WORKFLOW_STORE=redis.
func (a *App) ResumeOnboarding(ctx context.Context, registrationID string) (*service.Workflow, error) {
	return service.ResumeWorkflow(ctx, a.workflowOptions(), registrationID)
}

func (a *App) workflowOptions() service.WorkflowOptions {
	return service.WorkflowOptions{
		API:      a.BFF,
		Uploader: a.Uploader,
		Store:    a.store,
		Logger:   a.Logger,
	}
}

// Close releases the app's network resources.
func (a *App) Close() error {
	var firstErr error
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			firstErr = err
		}
	}
	if a.metrics != nil {
		if err := a.metrics.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
