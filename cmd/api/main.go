package main

import (
	_ "github.com/rezaesmaeili3562-spec/login.b/docs"
	"github.com/rezaesmaeili3562-spec/login.b/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           CoffeeNet Storefront API
// @version         1.0
// @description     Coffee-shop storefront (catalog, cart, orders) over a pluggable key/value store.
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
	routes.Run()
}
