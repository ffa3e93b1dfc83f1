package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/DevTechAI/photosyncwork-sub003/core/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Queue    QueueConfig
}

type ServerConfig struct {
	Host    string
	Port    int
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type AuthConfig struct {
	JWTSecret      string
	TokenTTLMinute int
}

type QueueConfig struct {
	RedisAddr       string
	AdvanceCronSpec string
}

var (
	instance *Config
	once     sync.Once
	loadErr  error
)

// Load reads .env (if present) and environment variables into the singleton.
func Load() error {
	once.Do(func() {
		_ = godotenv.Load()

		v := viper.New()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.AutomaticEnv()

		v.SetDefault("server.host", "0.0.0.0")
		v.SetDefault("server.port", 7070)
		v.SetDefault("server.baseurl", "")
		v.SetDefault("database.host", "localhost")
		v.SetDefault("database.port", 5432)
		v.SetDefault("database.user", "postgres")
		v.SetDefault("database.password", "")
		v.SetDefault("database.dbname", "photosyncwork")
		v.SetDefault("database.sslmode", "disable")
		v.SetDefault("redis.addr", "localhost:6379")
		v.SetDefault("redis.password", "")
		v.SetDefault("redis.db", 0)
		v.SetDefault("auth.jwtsecret", "")
		v.SetDefault("auth.tokenttlminute", 60)
		v.SetDefault("queue.redisaddr", "localhost:6379")
		v.SetDefault("queue.advancecronspec", constants.DefaultAdvanceCronSpec)

		cfg := &Config{
			Server: ServerConfig{
				Host:    v.GetString("server.host"),
				Port:    v.GetInt("server.port"),
				BaseURL: v.GetString("server.baseurl"),
			},
			Database: DatabaseConfig{
				Host:     v.GetString("database.host"),
				Port:     v.GetInt("database.port"),
				User:     v.GetString("database.user"),
				Password: v.GetString("database.password"),
				DBName:   v.GetString("database.dbname"),
				SSLMode:  v.GetString("database.sslmode"),
			},
			Redis: RedisConfig{
				Addr:     v.GetString("redis.addr"),
				Password: v.GetString("redis.password"),
				DB:       v.GetInt("redis.db"),
			},
			Auth: AuthConfig{
				JWTSecret:      v.GetString("auth.jwtsecret"),
				TokenTTLMinute: v.GetInt("auth.tokenttlminute"),
			},
			Queue: QueueConfig{
				RedisAddr:       v.GetString("queue.redisaddr"),
				AdvanceCronSpec: v.GetString("queue.advancecronspec"),
			},
		}

		if cfg.Auth.JWTSecret == "" {
			loadErr = fmt.Errorf("config: AUTH_JWTSECRET is required")
			return
		}
		instance = cfg
	})
	return loadErr
}

// Get returns the loaded config. Panics when Load has not succeeded.
func Get() *Config {
	if instance == nil {
		panic("config: not loaded")
	}
	return instance
}

// GetSafe returns the config and whether it has been initialized.
func GetSafe() (*Config, bool) {
	return instance, instance != nil
}
