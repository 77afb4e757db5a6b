package main

import (
	"os"

	"github.com/jiamdoescs/AnnenBites/config"
	"github.com/jiamdoescs/AnnenBites/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
