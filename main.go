package main

import (
	"os"

	"github.com/householdhq/tasks-api/app"
	_ "github.com/householdhq/tasks-api/docs"
)

func getPort() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = ":8080"
	} else {
		port = ":" + port
	}

	return port
}

// @title Household Tasks API
// @version 0.1
// @description Backend API for the household task and bill tracker.
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	err := app.SetupAndRunApp(getPort())
	if err != nil {
		panic(err)
	}
}
