package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/cors"
	"go.uber.org/zap"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"droscher.com/MyWhiskies/configs"
	"droscher.com/MyWhiskies/pkg/auth"
	"droscher.com/MyWhiskies/pkg/images"
	"droscher.com/MyWhiskies/pkg/integrations"
	"droscher.com/MyWhiskies/pkg/mail"
	"droscher.com/MyWhiskies/pkg/repository"
	"droscher.com/MyWhiskies/pkg/server"
)

const timeout = 5 * time.Second

type ServeCmd struct {
	ConfigFile string `default:".MyWhiskies.toml" help:"Path to config file" short:"c"`
}

func (s *ServeCmd) Run(ctx *Context) error {
	logConfig := zap.NewProductionConfig()
	if ctx.Debug {
		logConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	logger, _ := logConfig.Build()
	defer logger.Sync() //nolint:errcheck // we don't care about logger sync errors

	conf, err := configs.GetConfig(s.ConfigFile, logger)
	if err != nil {
		logger.Error("error loading config", zap.Error(err))

		return err
	}

	repo, err := repository.Open(conf, logger)
	if err != nil {
		logger.Error("error connecting to database", zap.Error(err))

		return err
	}
	defer repo.Close()

	store, imageFiles, err := openStore(context.Background(), conf.Images)
	if err != nil {
		logger.Error("error opening image store", zap.Error(err))

		return err
	}

	router, err := server.NewRouter(server.Dependencies{
		Config:       conf,
		Users:        repo,
		Distilleries: repo,
		Bottlers:     repo,
		Bottles:      repo,
		Images:       images.NewManager(repo, store, conf.Images, logger),
		ImageFiles:   imageFiles,
		Auth:         auth.NewAuthManager(conf, repo, logger),
		Mailer:       mail.NewMailer(conf.Mail, logger),
		Lookup:       integrations.GetIntegration(conf.Integrations, logger),
		Logger:       logger,
	})
	if err != nil {
		logger.Error("error building router", zap.Error(err))

		return err
	}

	address := fmt.Sprintf(":%d", conf.Server.Port)
	serverHandler := h2c.NewHandler(configureCORS(conf.Server, router), &http2.Server{})

	svr := &http.Server{
		Addr:              address,
		ReadHeaderTimeout: timeout,
		Handler:           serverHandler,
	}

	logger.Info("listening", zap.String("address", address), zap.String("images", conf.Images.Driver))

	err = svr.ListenAndServe()
	if err != nil {
		logger.Error("failed to start server", zap.Error(err))

		return err
	}

	return nil
}

// configureCORS only lets the site's own origin make credentialed
// requests; gRPC health probes are sent without an origin.
func configureCORS(conf configs.Server, handler http.Handler) http.Handler {
	corsOpts := cors.New(cors.Options{
		AllowedOrigins:   []string{conf.BaseURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{
			"accept",
			"accept-encoding",
			"accept-language",
			"cache-control",
			"connect-protocol-version",
			"connect-timeout-ms",
			"content-type",
			"grpc-timeout",
			"origin",
			"referer",
			"user-agent",
		},
		ExposedHeaders: []string{
			"connect-protocol-version",
			"grpc-message",
			"grpc-status",
		},
		MaxAge: 86400, // 24 hours
	})

	return corsOpts.Handler(handler)
}
