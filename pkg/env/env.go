package env

import (
	"log"

	"github.com/joho/godotenv"
)

// Load reads a .env file from the working directory into the process
// environment. Variables already set keep their values; a missing file is
// not an error.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}
}
