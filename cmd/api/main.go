package main

import (
	_ "freightdesk/docs"
	"freightdesk/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           FreightDesk Portal API
// @version         1.0
// @description     Server-side portal for freight procurement: shipper tenders, vendor quotes, awards and negotiation, backed by the freight API with DynamoDB session storage.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /portal

// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
// @description Portal session cookie (fd_session) issued by POST /portal/login.

func main() {
	routes.Run()
}
