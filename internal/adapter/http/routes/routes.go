package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"kiosk_quote/docs"
	"kiosk_quote/internal/adapter/http/dto/request"
	"kiosk_quote/internal/adapter/http/handlers"
	"kiosk_quote/internal/adapter/http/middleware"
	"kiosk_quote/internal/config"
	"kiosk_quote/internal/usecase"
	"kiosk_quote/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterDeps is everything the HTTP surface needs.
type RouterDeps struct {
	Kiosk    usecase.IKioskUseCase
	Auth     config.AuthConfig
	Log      *logger.Logger
	Gatherer prometheus.Gatherer
	DevMode  bool
}

// Run wires the service from cfg and serves until SIGINT/SIGTERM.
func Run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	kiosk, cleanup, err := buildKioskUseCase(ctx, cfg, log, reg)
	if err != nil {
		return err
	}
	defer cleanup()

	docs.SwaggerInfo.BasePath = "/v1"
	if !cfg.App.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router, err := NewRouter(RouterDeps{
		Kiosk:    kiosk,
		Auth:     cfg.Auth,
		Log:      log,
		Gatherer: reg,
		DevMode:  cfg.App.IsDev(),
	})
	if err != nil {
		return err
	}

	srv := &http.Server{Addr: ":" + cfg.App.Port, Handler: router}
	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, fmt.Sprintf("[kiosk][http] listening addr=%s", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
	}

	log.Info(context.Background(), "[kiosk][http] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(deps RouterDeps) (*gin.Engine, error) {
	if err := request.RegisterBindingValidators(); err != nil {
		return nil, fmt.Errorf("registering validators: %w", err)
	}
	router := gin.New()
	setMiddlewares(router, deps)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	if deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addKioskRoutes(v1, handlers.NewKioskHandler(deps.Kiosk))
	return router, nil
}

func setMiddlewares(router *gin.Engine, deps RouterDeps) {
	if deps.DevMode {
		router.Use(gin.Logger())
	}
	router.Use(middleware.Recovery(deps.Log))
	router.Use(middleware.RequestLogging(deps.Log))
	router.Use(middleware.OperatorAuth(deps.Auth, deps.Log))
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", handlers.Ping)
}
