package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Load подмешивает в окружение файл -env (по умолчанию .env) и флаги -port, -storage.
// Уже заданные переменные окружения файл не перезаписывает, флаги перезаписывают.
// Отсутствие файла не ошибка, loaded сообщает, был ли он прочитан.
func Load(args []string) (loaded bool, err error) {
	fset := flag.NewFlagSet("marketplace", flag.ContinueOnError)
	envFile := fset.String("env", ".env", "path to .env file")
	port := fset.String("port", "", "Server port (overrides PORT environment variable)")
	storage := fset.String("storage", "", "Storage driver (overrides STORAGE_DRIVER environment variable)")

	if err := fset.Parse(args); err != nil {
		return false, fmt.Errorf("parse flags: %w", err)
	}

	err = godotenv.Load(*envFile)
	switch {
	case err == nil:
		loaded = true
	case errors.Is(err, fs.ErrNotExist):
	default:
		return false, fmt.Errorf("load %s: %w", *envFile, err)
	}

	overrides := map[string]string{
		"PORT":           *port,
		"STORAGE_DRIVER": *storage,
	}
	for key, val := range overrides {
		if val == "" {
			continue
		}
		if err := os.Setenv(key, val); err != nil {
			return loaded, fmt.Errorf("failed to set %s environment variable: %w", key, err)
		}
	}
	return loaded, nil
}
