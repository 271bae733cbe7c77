package main

import (
	"log"
	_ "orcamento_api/docs"
	"orcamento_api/internal/adapter/http/routes"
	"orcamento_api/internal/config"
	"os"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Orcamento API
// @version         1.0
// @description     Construction budget calculator with an admin review dashboard, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token returned by /auth/login.

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	routes.Run(cfg)
}
