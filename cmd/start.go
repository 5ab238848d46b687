package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rein-stock/core/loader"
	"rein-stock/core/logger"
	"rein-stock/core/middleware/auth"
	"rein-stock/core/middleware/rayid"
	"rein-stock/feature/integrity"
	"rein-stock/feature/stock"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "rein-stock/docs/swagger"
)

// @title REIN Stock API
// @version 1.0
// @description Cached stock list and synchronization for the REIN ERP catalog.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the HTTP server and sync scheduler",
	Long:  `Starts the HTTP server, loads the stock feature and runs scheduled syncs when sync.interval_minutes is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt, err := newRuntime(ctx)
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           time.Duration(rt.cfg.Server.ReadTimeoutSeconds) * time.Second,
			WriteTimeout:          time.Duration(rt.cfg.Server.WriteTimeoutSeconds) * time.Second,
		})

		// RayID first so every later log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(rt.metrics.Handler()))

		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		mgr := loader.NewManager()
		mgr.Register(stock.NewFeature(rt.service, logg))
		mgr.Register(integrity.NewFeature(
			integrity.NewService(rt.cache, rt.db, rt.storage, rt.cfg.Storage.Bucket, rt.cfg.Rein, logg),
		))
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go stock.NewScheduler(rt.service, rt.cfg.Sync, logg).Run(ctx)

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(rt.cfg.Server.Addr()); err != nil {
				logg.Error("Server stopped", zap.Error(err))
				stop()
			}
		}()

		<-ctx.Done()
		logg.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
