package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const DefaultShutdownTimeout = 10 * time.Second

// Run serves until ctx is cancelled, then shuts down gracefully, giving in-flight
// requests up to the shutdown timeout to finish. Request contexts are cancelled as
// soon as shutdown begins so open streams stop generating and return.
func (srv HTTPServer) Run(ctx context.Context) error {
	httpSrv := srv.newHTTPServer()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		srv.l.Infof(gctx, "HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), srv.shutdownTimeout)
		defer cancel()

		srv.l.Infof(shutdownCtx, "HTTP server shutting down")
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// newHTTPServer builds the server. Every request context derives from a base
// context that is cancelled when Shutdown is called.
func (srv HTTPServer) newHTTPServer() *http.Server {
	baseCtx, cancelBase := context.WithCancel(context.Background())
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	httpSrv.RegisterOnShutdown(cancelBase)
	return httpSrv
}
