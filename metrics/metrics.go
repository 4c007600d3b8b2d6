package metrics

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/status-im/wc-signer/common"
	"github.com/status-im/wc-signer/logutils"
)

// Server exposes prometheus metrics and a health probe over HTTP.
type Server struct {
	server *http.Server
	logger *zap.Logger
}

func NewMetricsServer(host string, port int, gatherer prom.Gatherer) *Server {
	if gatherer == nil {
		gatherer = prom.DefaultGatherer
	}
	mux := http.NewServeMux()
	mux.Handle("/health", healthHandler())
	mux.Handle("/metrics", Handler(gatherer))
	return &Server{
		server: &http.Server{
			Addr:              net.JoinHostPort(host, fmt.Sprint(port)),
			ReadHeaderTimeout: 5 * time.Second,
			Handler:           mux,
		},
		logger: logutils.ZapLogger().Named("metrics"),
	}
}

func healthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("OK"))
		if err != nil {
			logutils.ZapLogger().Error("health handler error", zap.Error(err))
		}
	})
}

func Handler(gatherer prom.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func (p *Server) Addr() string {
	return p.server.Addr
}

// Listen serves until Stop is called. Meant to run in its own goroutine.
func (p *Server) Listen() {
	defer common.LogOnPanic()
	p.logger.Info("metrics server started", zap.String("addr", p.server.Addr))
	err := p.server.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		err = nil
	}
	p.logger.Info("metrics server stopped", zap.Error(err))
}

// Stop gracefully stops the HTTP server.
func (p *Server) Stop(ctx context.Context) error {
	return p.server.Shutdown(ctx)
}
