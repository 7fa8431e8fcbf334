package config

import (
	"os"
	"strconv"

	"github.com/tidegate/charcore/internal/domain/attribute"
)

// Config holds all configuration for the simulation core
type Config struct {
	Redis      RedisConfig
	Simulation SimulationConfig
}

// RedisConfig holds the optional replication publisher configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// SimulationConfig holds tuning values for input routing and attribute
// defaults
type SimulationConfig struct {
	BaseTurnRate   float64
	BaseLookUpRate float64
	Defaults       attribute.Defaults
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	healthMax := getEnvAsFloatOrDefault("HEALTH_MAX", 100)
	manaMax := getEnvAsFloatOrDefault("MANA_MAX", 100)
	staminaMax := getEnvAsFloatOrDefault("STAMINA_MAX", 100)

	cfg := &Config{
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
			Channel:  os.Getenv("REDIS_CHANNEL"),
		},
		Simulation: SimulationConfig{
			BaseTurnRate:   getEnvAsFloatOrDefault("BASE_TURN_RATE", 45),
			BaseLookUpRate: getEnvAsFloatOrDefault("BASE_LOOKUP_RATE", 45),
			Defaults: attribute.Defaults{
				Health: attribute.GroupDefaults{
					Current: getEnvAsFloatOrDefault("HEALTH_START", healthMax),
					Maximum: healthMax,
					Regen:   getEnvAsFloatOrDefault("HEALTH_REGEN", 1),
				},
				Mana: attribute.GroupDefaults{
					Current: getEnvAsFloatOrDefault("MANA_START", manaMax),
					Maximum: manaMax,
					Regen:   getEnvAsFloatOrDefault("MANA_REGEN", 2),
				},
				Stamina: attribute.GroupDefaults{
					Current: getEnvAsFloatOrDefault("STAMINA_START", staminaMax),
					Maximum: staminaMax,
					Regen:   getEnvAsFloatOrDefault("STAMINA_REGEN", 5),
				},
			},
		},
	}

	return cfg, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
