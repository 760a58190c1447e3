package env

import (
	"github.com/joho/godotenv"
)

// LoadEnv pulls a .env file into the process environment when one is
// present. Deployed environments set real env vars and ship no .env file.
func LoadEnv() {
	godotenv.Load()
}
