package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/event"
	"github.com/ethereum/go-ethereum/node"
	gethrpc "github.com/ethereum/go-ethereum/rpc"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/status-im/wc-signer/common"
	"github.com/status-im/wc-signer/logutils"
	"github.com/status-im/wc-signer/metrics"
	"github.com/status-im/wc-signer/params"
	"github.com/status-im/wc-signer/rpc/network"
	"github.com/status-im/wc-signer/services/wallet/walletconnect"
	"github.com/status-im/wc-signer/services/wallet/walletevent"
)

const shutdownTimeout = 5 * time.Second

func serve(cCtx *cli.Context) error {
	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}
	logger := logutils.ZapLogger().Named("serve")
	if config.Name != "" {
		logger = logger.With(zap.String("name", config.Name))
	}
	logger.Debug("loaded config", zap.Stringer("config", config))

	ctx, stop := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var transport walletconnect.Transport = walletconnect.NewWriterTransport(cCtx.App.Writer)
	if config.RelayConfig.Enabled {
		rpcTransport, err := walletconnect.DialRPCTransport(ctx, config.RelayConfig.URL)
		if err != nil {
			return err
		}
		defer rpcTransport.Close()
		transport = rpcTransport
	}

	feed := &event.Feed{}
	events := make(chan walletevent.Event, 10)
	sub := feed.Subscribe(events)
	defer sub.Unsubscribe()
	go logEvents(logger, events, sub)

	networkManager := network.NewManager(config.Networks)
	for _, n := range networkManager.Get(true) {
		logger.Debug("network enabled", zap.Uint64("chainId", n.ChainID), zap.String("name", n.ChainName))
	}

	service := walletconnect.NewService(networkManager, transport, feed, config.SessionRequestTTL())
	if err := service.Start(); err != nil {
		return err
	}
	defer func() {
		if err := service.Stop(); err != nil {
			logger.Error("failed to stop service", zap.Error(err))
		}
	}()

	if config.MetricsEnabled {
		metricsServer := metrics.NewMetricsServer(config.HTTPHost, config.MetricsPort, nil)
		go metricsServer.Listen()
		defer shutdown(logger, metricsServer.Stop)
	}

	if !config.HTTPEnabled {
		logger.Info("HTTP API disabled, waiting for shutdown")
		<-ctx.Done()
		return nil
	}

	rpcServer, err := newRPCServer(service)
	if err != nil {
		return err
	}
	defer rpcServer.Stop()

	httpServer := newHTTPServer(config, rpcServer)
	defer shutdown(logger, httpServer.Shutdown)

	errCh := make(chan error, 1)
	go func() {
		defer common.LogOnPanic()
		logger.Info("HTTP API started", zap.String("endpoint", config.HTTPEndpoint()))
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func newRPCServer(service *walletconnect.Service) (*gethrpc.Server, error) {
	server := gethrpc.NewServer()
	for _, api := range service.APIs() {
		if err := server.RegisterName(api.Namespace, api.Service); err != nil {
			server.Stop()
			return nil, err
		}
	}
	return server, nil
}

func newHTTPServer(config *params.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              config.HTTPEndpoint(),
		Handler:           node.NewHTTPHandlerStack(handler, config.HTTPCors, config.HTTPVirtualHosts, nil),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func shutdown(logger *zap.Logger, stop func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := stop(ctx); err != nil {
		logger.Warn("shutdown failed", zap.Error(err))
	}
}

func logEvents(logger *zap.Logger, events <-chan walletevent.Event, sub event.Subscription) {
	defer common.LogOnPanic()
	for {
		select {
		case e := <-events:
			logger.Debug("wallet event",
				zap.String("type", string(e.Type)),
				zap.Int64("id", e.RequestID),
				zap.String("topic", e.Topic),
				zap.Uint64("chainId", e.ChainID))
		case err := <-sub.Err():
			if err != nil {
				logger.Error("wallet event subscription failed", zap.Error(err))
			}
			return
		}
	}
}
