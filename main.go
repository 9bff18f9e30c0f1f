package main

import (
	"flag"

	"github.com/ghaggin/bingwa/internal/account"
	"github.com/ghaggin/bingwa/internal/config"
	"github.com/ghaggin/bingwa/internal/logging"
	"github.com/ghaggin/bingwa/internal/middleware"
	"github.com/ghaggin/bingwa/internal/repository"
	"github.com/ghaggin/bingwa/internal/server"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

func main() {
	var configPath = flag.String("config", "config/config.yaml", "path to the yaml config file")
	flag.Parse()

	newPath := func() config.Path {
		return config.Path(*configPath)
	}

	app := fx.New(
		fx.Provide(
			newPath,
			config.New,
			logging.New,
			middleware.NewSessionManager,
			repository.NewJSON,
			account.NewController,
			server.New,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(server.RegisterHooks),
	)

	app.Run()
}
