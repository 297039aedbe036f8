package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Storage   StorageConfig
	Templates TemplatesConfig
	Export    ExportConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StorageConfig struct {
	// DataDir holds the single persisted state document.
	DataDir string
}

type TemplatesConfig struct {
	Dir string
}

type ExportConfig struct {
	// ChromePath overrides the headless browser binary; empty lets
	// chromedp find one.
	ChromePath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", "./resume-data"),
		},
		Templates: TemplatesConfig{
			Dir: getEnv("TEMPLATES_DIR", "templates"),
		},
		Export: ExportConfig{
			ChromePath: getEnv("CHROME_PATH", ""),
		},
	}
}

// StateSchemaPath locates the schema the persisted document is checked
// against on rehydration.
func (c *Config) StateSchemaPath() string {
	return filepath.Join(c.Templates.Dir, "state.schema.json")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
