// @title           Grocery List API
// @version         1.0
// @description     Per-user grocery lists behind bearer token authentication.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/grocery-server/database"
	httpctx "github.com/dtroode/grocery-server/internal/api/http/context"
	"github.com/dtroode/grocery-server/internal/api/http/router"
	"github.com/dtroode/grocery-server/internal/config"
	"github.com/dtroode/grocery-server/internal/hasher"
	"github.com/dtroode/grocery-server/internal/logger"
	"github.com/dtroode/grocery-server/internal/model"
	"github.com/dtroode/grocery-server/internal/repository/postgres"
	"github.com/dtroode/grocery-server/internal/server"
	"github.com/dtroode/grocery-server/internal/service"
	storage "github.com/dtroode/grocery-server/internal/storage/minio"
	"github.com/dtroode/grocery-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, cfg.Database.DSN); err != nil {
			logger.Fatal("failed to apply migrations", "error", err)
		}
		logger.Info("database migrations applied")
	}

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.MaxConns)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	groceryRepo := postgres.NewGroceryRepository(db)
	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	passwordHasher := hasher.NewBcrypt(cfg.Bcrypt.Cost)

	authService := service.NewAuth(userRepo, passwordHasher, tokenManager, logger)

	var exportStorage model.Storage
	routerOpts := []router.Option{router.WithCORS(cfg.CORS)}
	if cfg.Storage.Enabled {
		exportStorage = newExportStorage(ctx, cfg.Storage, logger)
		routerOpts = append(routerOpts, router.WithExport())
	}
	groceryService := service.NewGrocery(groceryRepo, exportStorage, logger)

	r := router.New(authService, groceryService, authService, httpctx.NewManager(), db, logger, routerOpts...)
	httpServer := server.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port), cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout)

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newExportStorage(ctx context.Context, cfg config.Storage, logger *logger.Logger) *storage.Client {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}

	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}
	return storageClient
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
