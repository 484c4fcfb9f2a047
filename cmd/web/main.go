// @title           Evently API
// @version         1.0
// @description     API маркетплейса ивент-услуг (документация Swagger).
// @contact.name    Evently
// @contact.email   support@evently.example
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1

package main

import (
	"evently_backend/internal/app"

	_ "evently_backend/docs" // сгенерированная swagger-спецификация
)

func main() {
	app.Run()
}
