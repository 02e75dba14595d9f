package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del servicio.
// Se carga desde env vars y opcionalmente un .env local.
type Config struct {
	Port      string `mapstructure:"PORT"`
	Env       string `mapstructure:"ENV"`
	AppName   string `mapstructure:"APP_NAME"`
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Días de anticipación por defecto para recordatorios,
	// cuando el paciente no configura uno propio.
	ReminderAdvanceDays int `mapstructure:"REMINDER_ADVANCE_DAYS"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("APP_NAME", "vaccination-planner")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("REMINDER_ADVANCE_DAYS", 3)

	// Bind explícito para que Unmarshal los tome desde env
	v.BindEnv("PORT")
	v.BindEnv("ENV")
	v.BindEnv("APP_NAME")
	v.BindEnv("LOG_LEVEL")
	v.BindEnv("LOG_FORMAT")
	v.BindEnv("REMINDER_ADVANCE_DAYS")

	// .env es opcional; si no existe seguimos con defaults/env
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ReminderAdvanceDays <= 0 {
		cfg.ReminderAdvanceDays = 3
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return c.Env == "development"
}
