package config

import (
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	DefaultPort                 = "8080"
	DefaultAccessTokenExpiryMin = 10080
	DefaultRedisAddr            = "localhost:6379"
	DefaultRedisPoolSize        = 10
	DefaultViewDebounceSeconds  = 30
	DefaultHotWindowDays        = 7
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultAuthRateLimitRPS     = 5.0
	DefaultAuthRateLimitBurst   = 10
	DefaultKafkaEventTopic      = "zootube-events"
)

type Config struct {
	Env                 string
	Port                string
	DBURL               string
	AccessTokenSecret   string
	AccessExpiryMin     int
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	RedisPoolSize       int
	ViewDebounceSeconds int
	HotWindowDays       int
	LogLevel            string
	LogFormat           string
	AuthRateLimitRPS    float64
	AuthRateLimitBurst  int
	KafkaBootstrap      string
	KafkaEventTopic     string
	RunMigrations       bool
	MediaServiceURL     string
	StaticServiceURL    string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// IsDevelopment gates anything that exposes internals, such as error detail in responses.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads config/.env.dev (or config/.env.prod when ENV=production) and lets
// environment variables override anything in the file.
func Load() *Config {
	env := getEnv("ENV", "development")

	v := viper.New()
	v.SetConfigFile(filepath.Join("config", envFileName(env)))
	v.SetConfigType("env")
	v.AutomaticEnv()
	if err := v.ReadInConfig(); err != nil {
		logrus.Debugf("no config file for %s environment, using environment only: %v", env, err)
	}

	v.SetDefault("PORT", DefaultPort)
	v.SetDefault("ACCESS_TOKEN_EXPIRY", DefaultAccessTokenExpiryMin)
	v.SetDefault("REDIS_ADDR", DefaultRedisAddr)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_POOL_SIZE", DefaultRedisPoolSize)
	v.SetDefault("VIEW_DEBOUNCE_SECONDS", DefaultViewDebounceSeconds)
	v.SetDefault("HOT_WINDOW_DAYS", DefaultHotWindowDays)
	v.SetDefault("LOG_LEVEL", DefaultLogLevel)
	v.SetDefault("AUTH_RATE_LIMIT_RPS", DefaultAuthRateLimitRPS)
	v.SetDefault("AUTH_RATE_LIMIT_BURST", DefaultAuthRateLimitBurst)
	v.SetDefault("KAFKA_EVENT_TOPIC", DefaultKafkaEventTopic)
	v.SetDefault("RUN_MIGRATIONS", true)
	if env == "production" {
		v.SetDefault("LOG_FORMAT", "json")
	} else {
		v.SetDefault("LOG_FORMAT", DefaultLogFormat)
	}

	return &Config{
		Env:                 env,
		Port:                v.GetString("PORT"),
		DBURL:               mustGet(v, "DB_URL"),
		AccessTokenSecret:   mustGet(v, "ACCESS_TOKEN_SECRET"),
		AccessExpiryMin:     v.GetInt("ACCESS_TOKEN_EXPIRY"),
		RedisAddr:           v.GetString("REDIS_ADDR"),
		RedisPassword:       v.GetString("REDIS_PASSWORD"),
		RedisDB:             v.GetInt("REDIS_DB"),
		RedisPoolSize:       v.GetInt("REDIS_POOL_SIZE"),
		ViewDebounceSeconds: v.GetInt("VIEW_DEBOUNCE_SECONDS"),
		HotWindowDays:       v.GetInt("HOT_WINDOW_DAYS"),
		LogLevel:            v.GetString("LOG_LEVEL"),
		LogFormat:           v.GetString("LOG_FORMAT"),
		AuthRateLimitRPS:    v.GetFloat64("AUTH_RATE_LIMIT_RPS"),
		AuthRateLimitBurst:  v.GetInt("AUTH_RATE_LIMIT_BURST"),
		KafkaBootstrap:      v.GetString("KAFKA_BOOTSTRAP_SERVER"),
		KafkaEventTopic:     v.GetString("KAFKA_EVENT_TOPIC"),
		RunMigrations:       v.GetBool("RUN_MIGRATIONS"),
		MediaServiceURL:     v.GetString("MEDIA_SERVICE_URL"),
		StaticServiceURL:    v.GetString("STATIC_SERVICE_URL"),
	}
}

func envFileName(env string) string {
	if env == "production" {
		return ".env.prod"
	}
	return ".env.dev"
}

func mustGet(v *viper.Viper, key string) string {
	if value := v.GetString(key); value != "" {
		return value
	}
	logrus.Fatalf("Missing required config: %s", key)
	return ""
}

func getEnv(key string, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}
