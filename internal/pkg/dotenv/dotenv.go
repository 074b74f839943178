package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const DefaultFile = ".env"

// Load подгружает переменные из .env-файлов (уже заданные в окружении не
// перезаписываются). Отсутствующие файлы пропускаются, loaded сообщает,
// был ли прочитан хотя бы один.
func Load(files ...string) (loaded bool, err error) {
	if len(files) == 0 {
		files = []string{DefaultFile}
	}

	for _, file := range files {
		if _, err := os.Stat(file); errors.Is(err, fs.ErrNotExist) {
			continue
		}

		if err := godotenv.Load(file); err != nil {
			return loaded, fmt.Errorf("load %s: %w", file, err)
		}
		loaded = true
	}
	return loaded, nil
}

// ApplyFlags разбирает флаги командной строки. -port перекрывает PORT.
func ApplyFlags(args []string) error {
	flags := flag.NewFlagSet("dispatch", flag.ContinueOnError)

	var portFlag string
	flags.StringVar(&portFlag, "port", "", "Server port (overrides PORT environment variable)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if portFlag != "" {
		err := os.Setenv("PORT", portFlag)
		if err != nil {
			return fmt.Errorf("failed to set PORT environment variable: %w", err)
		}
	}
	return nil
}
