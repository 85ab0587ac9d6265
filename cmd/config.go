package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"room-cli/api"
	"room-cli/storage"

	"github.com/joho/godotenv"
)

const (
	envEndpoint = "ROOMS_ENDPOINT"
	envTimeout  = "ROOMS_TIMEOUT"
)

type Config struct {
	Endpoint       string `json:"endpoint"`
	DefaultTime    string `json:"default_time"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

func loadConfig() (Config, error) {
	path, err := storage.ConfigPath()
	if err != nil {
		return Config{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if info.IsDir() {
		return Config{}, fmt.Errorf("config path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var conf Config
	if err := json.NewDecoder(file).Decode(&conf); err != nil {
		return Config{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return conf, nil
}

// loadEnv reads an optional .env file and lets the environment override conf.
func loadEnv(conf Config, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return conf, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	if endpoint := strings.TrimSpace(os.Getenv(envEndpoint)); endpoint != "" {
		conf.Endpoint = endpoint
	}
	if raw := strings.TrimSpace(os.Getenv(envTimeout)); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds < 0 {
			return conf, fmt.Errorf("%s must be a non-negative number of seconds", envTimeout)
		}
		conf.TimeoutSeconds = seconds
	}
	return conf, nil
}

func (c Config) apply(target *api.Client) {
	if c.Endpoint != "" {
		target.Endpoint = c.Endpoint
	}
	if c.TimeoutSeconds > 0 {
		target.HTTP.Timeout = time.Duration(c.TimeoutSeconds) * time.Second
	}
}
