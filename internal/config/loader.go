package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"httpmsg/header"
)

type config struct {
	httpPort string

	proxyPort    string
	upstreamAddr string

	headerFieldLimit int
	bufferSize       int
	readTimeout      time.Duration

	serverName string
	logLevel   string
}

func parse() (*config, error) {
	httpPort := getenv("HTTP_PORT", "8080")

	proxyPort := getenv("PROXY_PORT", "8081")
	upstreamAddr := getenv("UPSTREAM_ADDR", "")

	headerFieldLimit := parseHeaderFieldLimit()
	bufferSize := parseBufferSize()
	readTimeout := parseReadTimeout()

	serverName := getenv("SERVER_NAME", "httpmsg")
	logLevel := getenv("LOG_LEVEL", "info")

	return &config{
		httpPort:         httpPort,
		proxyPort:        proxyPort,
		upstreamAddr:     upstreamAddr,
		headerFieldLimit: headerFieldLimit,
		bufferSize:       bufferSize,
		readTimeout:      readTimeout,
		serverName:       serverName,
		logLevel:         logLevel,
	}, nil
}

func loadEnvFile() error {
	if _, err := os.Stat(".env"); err == nil {
		return godotenv.Load(".env")
	}
	return nil
}

func parseHeaderFieldLimit() int {
	raw := getenv("HEADER_FIELD_LIMIT", "")
	if raw == "" {
		return header.DefaultFieldLimit
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		log.Warnf("Invalid HEADER_FIELD_LIMIT, falling back to %d", header.DefaultFieldLimit)
		return header.DefaultFieldLimit
	}
	return limit
}

func parseBufferSize() int {
	raw := getenv("BUFFER_SIZE", "32768")
	size, err := strconv.Atoi(raw)
	if err != nil || size < 4096 || size > 1048576 {
		log.Warn("Invalid BUFFER_SIZE, falling back to 4096")
		return 4096
	}
	return size
}

func parseReadTimeout() time.Duration {
	raw := getenv("READ_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(raw)
	if err != nil || timeout <= 0 {
		log.Warn("Invalid READ_TIMEOUT, falling back to 30s")
		return 30 * time.Second
	}
	return timeout
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
