package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	DB     DBConfig
	Sweep  SweepConfig
}

type ServerConfig struct {
	Address string
}

type DBConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     int
}

// SweepConfig 設定離線清理的節奏：每隔 Interval 檢查一次，
// 超過 StaleThreshold 沒有心跳的參與者會被移出聊天室
type SweepConfig struct {
	Interval       time.Duration
	StaleThreshold time.Duration
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./pkg/config")

	viper.SetDefault("sweep.interval", 15*time.Second)
	viper.SetDefault("sweep.stalethreshold", 10*time.Second)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}
