package main

import (
	"log"

	"svcdocs/cmd"
	"svcdocs/internal/config"
)

func main() {
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	cmd.Execute()
}
