package config

import (
	"errors"
	"log/slog"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	Redis      RedisConfig
	Notify     NotifyConfig
	Push       PushConfig
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	PoolSize int
}

// NotifyConfig governs the notification dispatcher.
// ThrottleWindow caps repeat notifications of the same semantic event.
type NotifyConfig struct {
	ThrottleWindow time.Duration
	SendTimeout    time.Duration
}

// PushConfig carries the push-provider credential. Empty CredentialsFile
// means push delivery runs as a no-op.
type PushConfig struct {
	CredentialsFile string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

const (
	DefaultThrottleWindow = 5 * time.Minute
	DefaultSendTimeout    = 3 * time.Second
)

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	if c.Notify.ThrottleWindow <= 0 {
		c.Notify.ThrottleWindow = DefaultThrottleWindow
	}
	if c.Notify.SendTimeout <= 0 {
		c.Notify.SendTimeout = DefaultSendTimeout
	}
	return &c, nil
}
