package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds run defaults. CLI flags and the positional argument
// override these.
type Config struct {
	CSVPath        string // input file when no positional argument is given
	GroupChartPath string
	TimeChartPath  string
	TopGroups      int // grouped sums printed to console
	RecentMonths   int // monthly sums printed to console
}

// Load reads configuration from the environment, after loading a .env
// file from the working directory when one exists.
func Load() *Config {
	_ = godotenv.Load() // .env is optional

	return &Config{
		CSVPath:        getEnv("SALES_CSV", "sales.csv"),
		GroupChartPath: getEnv("GROUP_CHART_PATH", "sales_by_group.png"),
		TimeChartPath:  getEnv("TIME_CHART_PATH", "sales_over_time.png"),
		TopGroups:      getEnvInt("TOP_GROUPS", 10),
		RecentMonths:   getEnvInt("RECENT_MONTHS", 12),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
