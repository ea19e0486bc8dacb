package config

import (
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config agrupa toda la configuración del servicio. Todo viene de env vars;
// los secretos nunca de archivos.
type Config struct {
	Port    string `env:"PORT" env-default:"8080"`
	AppName string `env:"APP_NAME" env-default:"petmate"`

	// Storage: si DBDSN está vacío se usa el store de archivos en DataDir.
	DataDir       string `env:"DATA_DIR" env-default:"data"`
	DBDSN         string `env:"DB_DSN" env-default:""`
	MigrationsDir string `env:"MIGRATIONS_DIR" env-default:"migrations"`

	// Auth: sin secret => modo dev (header X-Debug-User).
	AuthSecret string `env:"AUTH_SECRET" env-default:""`

	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat string `env:"LOG_FORMAT" env-default:"text"`
}

func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Port = strings.TrimSpace(cfg.Port)
	cfg.DBDSN = strings.TrimSpace(cfg.DBDSN)
	return cfg, nil
}

// DevAuth indica si corremos sin verificación de tokens (solo dev).
func (c Config) DevAuth() bool { return strings.TrimSpace(c.AuthSecret) == "" }
