package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go.uber.org/dig"

	"carrier-bridge/internal/config"
	"carrier-bridge/internal/http/pprofserver"
)

// MustRun starts the HTTP server using the provided DI container.
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(func(server *http.Server, ctx context.Context, cfg *config.Config) error {
		pprofSrv := startPprof(cfg)
		startServer(server)
		waitForShutdown(ctx)
		gracefulShutdown(server, 15*time.Second)
		closeResources(server, pprofSrv)
		return nil
	})
}

func startServer(server *http.Server) {
	go func() {
		log.Printf("carrier-bridge listening on %s", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

// startPprof serves the debug pprof mux on its own listener when enabled.
func startPprof(cfg *config.Config) *http.Server {
	if cfg.PprofAddr == "" {
		return nil
	}
	srv := &http.Server{
		Addr:              cfg.PprofAddr,
		Handler:           pprofserver.Handler(pprofserver.Config{User: cfg.PprofUser, Pass: cfg.PprofPass}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("pprof listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("pprof listen error: %v", err)
		}
	}()
	return srv
}

func waitForShutdown(ctx context.Context) {
	<-ctx.Done()
	log.Println("shutting down carrier-bridge...")
}

func gracefulShutdown(srv *http.Server, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func closeResources(server *http.Server, pprofSrv *http.Server) {
	if err := server.Close(); err != nil {
		log.Printf("server close error: %v", err)
	}
	if pprofSrv != nil {
		if err := pprofSrv.Close(); err != nil {
			log.Printf("pprof server close error: %v", err)
		}
	}
}
