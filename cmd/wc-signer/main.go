package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/status-im/wc-signer/logutils"
	"github.com/status-im/wc-signer/params"
)

const (
	ConfigFlag   = "config"
	RequestFlag  = "request"
	SessionFlag  = "session"
	RelayFlag    = "relay"
	DecisionFlag = "decision"
	LogLevelFlag = "log-level"
)

var (
	gitCommit = "N/A"
	version   = "0.1.0"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logutils.ZapLogger().Error("wc-signer failed", zap.Error(err))
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "wc-signer",
		Usage:   "Review and answer WalletConnect sign requests",
		Version: fmt.Sprintf("%s-%s", version, gitCommit),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    ConfigFlag,
				Aliases: []string{"c"},
				Usage:   "JSON config file",
			},
			&cli.StringFlag{
				Name:  LogLevelFlag,
				Usage: `Log level, one of: "ERROR", "WARN", "INFO", "DEBUG", and "TRACE"`,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "review",
				Usage: "Show a sign request and answer it",
				Flags: []cli.Flag{
					&cli.PathFlag{
						Name:     RequestFlag,
						Aliases:  []string{"r"},
						Usage:    "session_request event JSON file",
						Required: true,
					},
					&cli.PathFlag{
						Name:    SessionFlag,
						Aliases: []string{"s"},
						Usage:   "session JSON file of the requesting peer",
					},
					&cli.StringFlag{
						Name:  RelayFlag,
						Usage: "relay JSON-RPC endpoint, responses are printed to stdout when empty",
					},
					&cli.StringFlag{
						Name:  DecisionFlag,
						Usage: `answer without prompting, "approve" or "reject"`,
					},
				},
				Action: review,
			},
			{
				Name:   "serve",
				Usage:  "Serve the walletconnect JSON-RPC API",
				Action: serve,
			},
		},
	}
}

// loadConfig reads the config file if given and installs the root logger.
func loadConfig(cCtx *cli.Context) (*params.Config, error) {
	config := params.NewConfig()
	if path := cCtx.String(ConfigFlag); path != "" {
		var err error
		config, err = params.LoadConfigFromFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "load config %s", path)
		}
	}
	if level := cCtx.String(LogLevelFlag); level != "" {
		config.LogLevel = level
		if err := config.Validate(); err != nil {
			return nil, err
		}
	}

	if err := logutils.OverrideRootLoggerWithConfig(config.LogSettings()); err != nil {
		return nil, errors.Wrap(err, "setup logger")
	}
	return config, nil
}
