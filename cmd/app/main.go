package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"esg-maturity-backend/cmd/app/internal/controller"
	"esg-maturity-backend/internal/config"
	"esg-maturity-backend/internal/db"
	"esg-maturity-backend/internal/esg"
	"esg-maturity-backend/internal/repository"
	"esg-maturity-backend/internal/service"
	"esg-maturity-backend/pkg/middleware"
	"esg-maturity-backend/utilities"
)

const version = "1.0.0"

func main() {
	printStartUpBanner()
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

// run owns every resource it opens, so its deferred cleanup always runs
// before main exits.
func run(args []string) error {
	// Load XML configuration from file.
	cfg, err := config.LoadConfig("config.xml")
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := utilities.SetupLogging(cfg.Logging); err != nil {
		return fmt.Errorf("set up logging: %w", err)
	}
	defer utilities.CloseLogging()

	catalog := esg.DefaultCatalog()
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("invalid questionnaire: %w", err)
	}

	// Initialize DB using the loaded config.
	conn, err := db.InitDBFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()
	if cfg.DB.Initialize {
		if err := db.Migrate(conn); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	// Create repositories.
	userRepo := repository.NewUserRepository(conn)
	assessmentRepo := repository.NewAssessmentRepository(conn)

	// Create services.
	tokens := utilities.NewTokenManager(cfg.Authentication)
	bus := utilities.GlobalEventBus
	authService := service.NewAuthService(userRepo, tokens)
	userService := service.NewUserService(userRepo)
	assessmentService := service.NewAssessmentService(assessmentRepo, catalog, esg.DefaultRules(), bus)
	reportService := service.NewReportService(assessmentRepo, assessmentService, catalog, esg.DefaultRules(), cfg.Report.Municipality)

	if len(args) > 0 && args[0] == "admin" {
		if err := runAdminCommand(authService, args[1:]); err != nil {
			return fmt.Errorf("admin: %w", err)
		}
		return nil
	}

	created, err := authService.EnsureAdmin(context.Background(), cfg.Authentication.AdminEmail, cfg.Authentication.AdminPassword)
	if err != nil {
		utilities.Warn("administrator not provisioned: %v", err)
	} else if created {
		utilities.Info("administrator %s provisioned from configuration", cfg.Authentication.AdminEmail)
	}

	bus.Subscribe(utilities.EventAssessmentSubmitted, func(ev utilities.Event) {
		total, err := assessmentRepo.CountCompleted(context.Background())
		if err != nil {
			utilities.Error("count completed assessments: %v", err)
			return
		}
		utilities.Info("assessment %v submitted, %d completed in total", ev.Data, total)
	})

	// Initialize Gin router.
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	// CORS configuration.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.RateLimit.Enabled {
		limiter := utilities.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		r.Use(utilities.RateLimitMiddleware(limiter))
		go pruneLimiter(ctx, limiter)
	}
	if cfg.RequestDump {
		r.Use(middleware.RequestDumpMiddleware())
	}

	controller.RegisterRoutes(r, tokens, authService, userService, assessmentService, reportService)

	// Start server on the host and port specified in the XML config.
	var handler http.Handler = r
	if cfg.Context.EnableH2C {
		handler = h2c.NewHandler(r, &http2.Server{})
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Context.Host, cfg.Context.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		utilities.Info("listening on %s (h2c=%t)", srv.Addr, cfg.Context.EnableH2C)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			bus.Drain()
			return fmt.Errorf("serve: %w", err)
		}
	case <-ctx.Done():
	}

	utilities.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utilities.Error("graceful shutdown failed: %v", err)
	}
	bus.Drain()
	return nil
}

func pruneLimiter(ctx context.Context, limiter *utilities.RateLimiter) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := limiter.Prune(); n > 0 {
				utilities.Debug("pruned %d idle rate limit clients", n)
			}
		}
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("ESG", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("ESG MATURITY API (v%s)\n\n", version)
}
