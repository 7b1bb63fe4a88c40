package app

import (
	"strings"

	"github.com/yungbote/dailyfeels-backend/internal/platform/envutil"
)

type Config struct {
	Port        string
	Environment string
	Version     string
	CORSOrigins []string
}

func LoadConfig() Config {
	origins := strings.Split(envutil.String("CORS_ORIGINS", "*"), ",")
	return Config{
		Port:        envutil.String("PORT", "8080"),
		Environment: envutil.String("APP_ENV", "development"),
		Version:     envutil.String("APP_VERSION", "dev"),
		CORSOrigins: origins,
	}
}
