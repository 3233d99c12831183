package main

import (
	_ "marcenaria_site/docs"
	"marcenaria_site/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Marcenaria Sob Medida API
// @version         1.0
// @description     Estimador de preços, formulário de contato e eventos de navegação do site da marcenaria.

// @contact.name   Marcenaria Sob Medida
// @contact.email  contato@marcenariasobmedida.com.br

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
