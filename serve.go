package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"pictocat/config"
	_ "pictocat/config/swagger"
	"pictocat/middleware"
	"pictocat/routes"
	"pictocat/services/admin"
	"pictocat/services/assistant"
	"pictocat/services/community"
	"pictocat/services/economy"
	"pictocat/services/friendship"
	"pictocat/services/game"
	"pictocat/services/missions"
	"pictocat/services/profile"
	"pictocat/services/redis"
	"pictocat/services/scheduler"
	"pictocat/services/settings"
	"pictocat/services/socket_io"
	socketio_types "pictocat/services/socket_io/types"
	"pictocat/services/storage"
	"pictocat/services/trading"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP and socket.io server",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := setup()
		if err != nil {
			return err
		}
		defer b.close()
		return serve(cmd.Context(), b)
	},
}

func serve(ctx context.Context, b *base) error {
	log := b.log
	cfg := b.settings

	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	// Only migrate in development or during deployment
	if cfg.MigratePostgres {
		log.Info("migrating PostgreSQL database")
		if err := b.migrate(ctx); err != nil {
			log.Warn("database migration failed", zap.Error(err))
		}
	}

	cache, err := config.Connect_redis(cfg, log)
	if err != nil {
		return err
	}
	defer redis.CloseRedis(cache)

	verifier, err := middleware.NewVerifier(cfg)
	if err != nil {
		return err
	}

	hub := (*socket_io.MySocketServer)(socketio_types.NewSocketServer())
	notifier := hub.Notifier()

	settingsService := settings.NewService(b.db, cache, log)
	missionService := missions.NewService(b.db, settingsService, log)
	profiles := profile.NewService(b.db, settingsService, missionService, log, cfg.AdminSubject)
	friendshipService := friendship.NewService(b.db, settingsService, notifier, log)
	tradingService := trading.NewService(b.db, settingsService, friendshipService, notifier, log)

	var uploader storage.Uploader
	r2, err := storage.NewR2Uploader(ctx, cfg)
	if err != nil {
		return err
	}
	if r2 != nil {
		uploader = r2
	} else {
		log.Warn("R2 credentials not set, catalog uploads disabled")
	}

	var generator assistant.Generator
	gemini, err := assistant.NewGeminiGenerator(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Warn("Gemini client unavailable, chat replies will use the fallback", zap.Error(err))
	} else if gemini != nil {
		generator = gemini
	}

	svc := routes.Services{
		Profiles:   profiles,
		Economy:    economy.NewService(b.db, cache, missionService, log),
		Missions:   missionService,
		Friendship: friendshipService,
		Trading:    tradingService,
		Community:  community.NewService(b.db, cache, missionService, friendshipService, log),
		Game:       game.NewService(b.db, friendshipService, missionService, log),
		Assistant:  assistant.NewService(generator, missionService, log),
		Admin:      admin.NewService(b.db, cache, settingsService, tradingService, uploader, log),
	}

	jobs, err := scheduler.New(missionService, log)
	if err != nil {
		return err
	}
	jobs.Start()
	defer func() {
		if err := jobs.Shutdown(); err != nil {
			log.Warn("scheduler shutdown", zap.Error(err))
		}
	}()

	r := gin.New()
	middleware.SetUpMiddleware(r, cfg, log)
	routes.SetupRoutes(r, verifier, svc, log)
	hub.Start(r, verifier, log)
	defer hub.Close()

	port := cfg.Port
	if cfg.UseHTTPS && port == "8080" {
		port = "443"
	}
	srv := &http.Server{Addr: ":" + port, Handler: r}

	errc := make(chan error, 1)
	go func() {
		log.Info("server started", zap.String("port", port), zap.Bool("https", cfg.UseHTTPS))
		if cfg.UseHTTPS {
			errc <- srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			errc <- srv.ListenAndServe()
		}
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
