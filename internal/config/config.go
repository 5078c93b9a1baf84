package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config: toda la configuración de la aplicación viene del entorno, con
// defaults pensados para desarrollo local.
type Config struct {
	HTTPPort       string
	DataDir        string // directorio de artefactos (se crea si no existe)
	CORSOrigins    string // orígenes permitidos, separados por coma
	MaxUploadBytes int64  // tamaño máximo de archivo importado
}

// Load lee las variables de entorno (y un .env si hay) y valida.
func Load() (*Config, error) {
	// Un .env ausente no es error: la config puede venir del entorno directo.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "3000"),
		DataDir:     getEnv("DATA_DIR", "./data"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
	}

	maxStr := getEnv("MAX_UPLOAD_BYTES", "10485760") // 10 MiB
	max, err := strconv.ParseInt(maxStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES inválido: %q", maxStr)
	}
	cfg.MaxUploadBytes = max

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate chequea que los campos obligatorios tengan valores usables.
func (c *Config) Validate() error {
	if c.HTTPPort == "" {
		return errors.New("HTTP_PORT no puede estar vacío")
	}
	if _, err := strconv.Atoi(c.HTTPPort); err != nil {
		return fmt.Errorf("HTTP_PORT inválido: %q", c.HTTPPort)
	}
	if c.DataDir == "" {
		return errors.New("DATA_DIR no puede estar vacío")
	}
	if c.MaxUploadBytes <= 0 {
		return errors.New("MAX_UPLOAD_BYTES debe ser positivo")
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
