package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	HTTPAddr      string
	RedisAddr     string
	KafkaBrokers  []string
	ServiceName   string
	SeedDemoData  bool
	AlertsGroup   string
	AlertsWorkers int
}

func Load() Config {
	return Config{
		HTTPAddr:      getenv("HTTP_ADDR", ":8081"),
		RedisAddr:     getenv("REDIS_ADDR", "redis:6379"),
		KafkaBrokers:  splitCSV(getenv("KAFKA_BROKERS", "kafka:9092")),
		ServiceName:   getenv("SERVICE_NAME", "estoque-api"),
		SeedDemoData:  getenv("SEED_DEMO_DATA", "true") == "true",
		AlertsGroup:   getenv("ALERTS_GROUP", "estoque-alerts"),
		AlertsWorkers: atoi(getenv("ALERTS_WORKERS", "4")),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func atoi(s string) int {
	i, err := strconv.Atoi(s)
	if err != nil || i <= 0 {
		return 1
	}
	return i
}
