package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"carrier-bridge/internal/config"
	"carrier-bridge/internal/domain"
	"carrier-bridge/internal/gateway/carrier"
	"carrier-bridge/internal/http/handlers"
	"carrier-bridge/internal/http/router"
	"carrier-bridge/internal/logx"
	"carrier-bridge/internal/metrics"
	"carrier-bridge/internal/normalize"
	"carrier-bridge/internal/service/lookups"
	"carrier-bridge/internal/service/printing"
	"carrier-bridge/internal/service/shipments"
	"carrier-bridge/internal/service/sites"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	logFatalf  func(string, ...interface{})
	registerer prometheus.Registerer
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		logFatalf:  log.Fatalf,
		registerer: prometheus.DefaultRegisterer,
	}
}

// WithLogFatalf sets the log.Fatalf function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// WithRegisterer sets the Prometheus registerer (tests use a fresh one).
func (b *ContainerBuilder) WithRegisterer(r prometheus.Registerer) *ContainerBuilder {
	if r != nil {
		b.registerer = r
	}
	return b
}

// MustBuild builds and returns a new dig container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerGateway(container, b.registerer); err != nil {
		return nil, fmt.Errorf("gateway: %w", err)
	}
	if err := registerService(container, b.registerer); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
	)
}

func registerGateway(container *dig.Container, reg prometheus.Registerer) error {
	return provideAll(container,
		func(cfg *config.Config) *http.Client {
			return carrier.NewHTTPClient(cfg.Carrier.Timeout)
		},
		func(cfg *config.Config) domain.Credentials {
			return domain.Credentials{
				Username: cfg.Carrier.Username,
				Password: cfg.Carrier.Password,
			}
		},
		func() (*prometheus.CounterVec, error) {
			v := metrics.NewCarrierRequestsTotal()
			if err := reg.Register(v); err != nil {
				return nil, err
			}
			return v, nil
		},
		func(cfg *config.Config, creds domain.Credentials, httpc *http.Client, logger logx.Logger, requests *prometheus.CounterVec) *carrier.Client {
			return carrier.New(carrier.Config{
				BaseURL:     cfg.Carrier.BaseURL,
				Credentials: creds,
				Language:    cfg.Carrier.Language,
			}, httpc, logger, requests)
		},
	)
}

func registerService(container *dig.Container, reg prometheus.Registerer) error {
	return provideAll(container,
		func(cfg *config.Config) normalize.Defaults {
			return normalize.Defaults{DropoffOfficeID: cfg.Carrier.DefaultDropoffOfficeID}
		},
		normalize.New,
		func(gw *carrier.Client, logger logx.Logger) (*sites.Resolver, error) {
			attempts := metrics.NewSiteResolutionAttemptsTotal()
			failures := metrics.NewSiteResolutionFailuresTotal()
			if err := reg.Register(attempts); err != nil {
				return nil, err
			}
			if err := reg.Register(failures); err != nil {
				return nil, err
			}
			return sites.NewResolver(gw, logger, attempts, failures), nil
		},
		func(norm *normalize.Normalizer, gw *carrier.Client, resolver *sites.Resolver, creds domain.Credentials, logger logx.Logger) *shipments.Service {
			return shipments.NewService(norm, gw, resolver, creds, logger)
		},
		func(norm *normalize.Normalizer, gw *carrier.Client, creds domain.Credentials, logger logx.Logger) *printing.Service {
			return printing.NewService(norm, gw, creds, logger)
		},
		func(gw *carrier.Client, creds domain.Credentials) *lookups.Service {
			return lookups.NewService(gw, creds)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      75 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewShipmentUsecase,
		handlers.NewShipmentHandler,
		handlers.NewPrintUsecase,
		handlers.NewPrintHandler,
		handlers.NewLookupUsecase,
		handlers.NewLookupHandler,
		router.New,
		serverProvider,
	)
}
