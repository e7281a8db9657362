package main

import (
	"context"
	"fmt"
	"os"

	"kiosk_quote/internal/adapter/http/routes"
	"kiosk_quote/internal/config"
	"kiosk_quote/pkg/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Kiosk Quote Service API
// @version         1.0
// @description     In-store kitchen remodel quote kiosk: wizard sessions, pricing and appointment booking.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		ServiceName: cfg.App.ServiceName,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		Format:      cfg.App.LogFormat,
	})

	if err := routes.Run(cfg, log); err != nil {
		log.Error(context.Background(), "[kiosk][main] server stopped", err)
		os.Exit(1)
	}
}
