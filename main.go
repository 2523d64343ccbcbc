package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/yizeng/gab/gin/gorm/airport-api/cmd/app"
)

// @title        Airport API
// @version      1.0
// @description  Airport reference data, flight schedules and seat orders.
// @BasePath     /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Token returned by /auth/login, sent as "Bearer <token>".
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
