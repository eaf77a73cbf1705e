package main

import (
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"hireflow/cmd"
)

func main() {
	// A missing .env is fine; real deployments use the environment.
	if err := godotenv.Load(); err == nil {
		log.Debug("Loaded environment from .env")
	}

	cmd.Execute()
}
