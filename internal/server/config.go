package server

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/nlncalc/internal/numeral"
	"github.com/DjordjeVuckovic/nlncalc/pkg/config/env"
)

const (
	defaultPort     = "8080"
	defaultMaxLines = 100
	defaultEnvPath  = "cmd/nlncalc_api/.env"
)

type Config struct {
	Port        string
	UseHttp2    bool
	CorsOrigins []string

	MaxLines       int
	MaxInputLength int
	FoldCase       bool
	LogLevel       slog.Level
}

func LoadConfig() (*Config, error) {
	if err := env.LoadDotEnv(os.Getenv("APP_ENV"), defaultEnvPath); err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if err := validatePort(port); err != nil {
		return nil, fmt.Errorf("invalid port: %w", err)
	}

	useHttp2, err := env.Bool("USE_HTTP2")
	if err != nil {
		return nil, err
	}

	origins := env.List("CORS_ORIGINS")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	maxLines, err := env.Int("MAX_LINES", defaultMaxLines)
	if err != nil {
		return nil, err
	}
	if maxLines < 0 {
		return nil, errors.New("MAX_LINES must not be negative")
	}

	maxInputLength, err := env.Int("MAX_INPUT_LENGTH", numeral.DefaultMaxInputLength)
	if err != nil {
		return nil, err
	}
	if maxInputLength < 1 {
		return nil, errors.New("MAX_INPUT_LENGTH must be positive")
	}

	foldCase, err := env.Bool("FOLD_CASE")
	if err != nil {
		return nil, err
	}

	level, err := parseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:           port,
		UseHttp2:       useHttp2,
		CorsOrigins:    origins,
		MaxLines:       maxLines,
		MaxInputLength: maxInputLength,
		FoldCase:       foldCase,
		LogLevel:       level,
	}, nil
}

func validatePort(port string) error {
	portNum, err := strconv.Atoi(port)

	if err != nil {
		return errors.New("port must be a number")
	}

	if portNum < 1 || portNum > 65535 {
		return errors.New("port must be between 1 and 65535")
	}

	return nil
}

func parseLogLevel(s string) (slog.Level, error) {
	if strings.TrimSpace(s) == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL %q: %w", s, err)
	}
	return level, nil
}
