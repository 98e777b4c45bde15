package main

import (
	_ "casamento_presentes/docs"
	"casamento_presentes/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Casamento Presentes Checkout API
// @version         1.0
// @description     Checkout of the wedding gift list: PIX and credit card through Mercado Pago, hosted checkout through PagBank.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
