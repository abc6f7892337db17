package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load читает .env и флаги командной строки. Флаги перекрывают переменные окружения.
func Load() error {
	var (
		envFile   string
		portFlag  string
		storeFlag string
	)
	flag.StringVar(&envFile, "env-file", ".env", "Path to the env file")
	flag.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	flag.StringVar(&storeFlag, "session-store", "", "Login attempts store file (overrides AUTH_SESSION_STORE_PATH)")
	flag.Parse()

	if err := godotenv.Load(envFile); err != nil {
		return err
	}

	overrides := map[string]string{
		"PORT":                    portFlag,
		"AUTH_SESSION_STORE_PATH": storeFlag,
	}
	for key, value := range overrides {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return nil
}
