package config

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Host            string `mapstructure:"host"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout_sec"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

type SimulationConfig struct {
	DefaultQuantum int `mapstructure:"default_quantum"`
	MaxProcesses   int `mapstructure:"max_processes"`
	MaxTotalBurst  int `mapstructure:"max_total_burst"`
}

type CacheConfig struct {
	Enable bool `mapstructure:"enable"`
	TTLSec int  `mapstructure:"ttl_sec"`
}

func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSec) * time.Second
}

type MongoDBConfig struct {
	Enable   bool        `mapstructure:"enable"`
	Database string      `mapstructure:"database"`
	User     string      `mapstructure:"user"`
	Password SecretValue `mapstructure:"password"`
	Port     string      `mapstructure:"port"`
	Host     string      `mapstructure:"host"`
}

// URI builds the connection string. Credentials are omitted when no user is configured.
func (c MongoDBConfig) URI() string {
	if c.User == "" {
		return fmt.Sprintf("mongodb://%s:%s", c.Host, c.Port)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s", c.User, c.Password.Value(), c.Host, c.Port)
}

type TokenConfig struct {
	Enable           bool        `mapstructure:"enable"`
	RsaPrivateKeyPem SecretValue `mapstructure:"rsa_private_key_pem"`
	TokenDurationHr  int         `mapstructure:"token_duration_hr"` // in hours
}

type SimConfig struct {
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Cache      CacheConfig      `mapstructure:"cache"`
	MongoDB    MongoDBConfig    `mapstructure:"mongodb"`
	Token      TokenConfig      `mapstructure:"token"`
}

var (
	simCfg *SimConfig
)

func GetConfig() *SimConfig {
	return simCfg
}

func setDefaults() {
	viper.SetDefault("server.host", ":8080")
	viper.SetDefault("server.shutdown_timeout_sec", 10)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("simulation.default_quantum", 2)
	viper.SetDefault("simulation.max_processes", 1000)
	viper.SetDefault("simulation.max_total_burst", 1_000_000)
	viper.SetDefault("cache.ttl_sec", 300)
	viper.SetDefault("token.token_duration_hr", 24)
}

// InitSimConfig reads <configName>.toml from configPath or the repository's config
// directory. Every key can be overridden by SCHEDSIM_<SECTION>_<KEY>.
func InitSimConfig(configName string, configPath string) (SimConfig, error) {
	var cfg SimConfig
	if configPath != "" {
		viper.AddConfigPath(configPath)
	}
	if configName == "" {
		configName = "sim_config"
	}
	viper.AddConfigPath(GetAbsPath("config"))
	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.SetEnvPrefix("SCHEDSIM")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults()
	err := viper.ReadInConfig()
	if err != nil {
		return cfg, err
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return cfg, err
	}
	simCfg = &cfg
	return cfg, nil
}

// GetAbsPath joins paths onto the repository root.
func GetAbsPath(paths ...string) string {
	_, filePath, _, _ := runtime.Caller(0)
	rootPath := filepath.Join(filepath.Dir(filePath), "..")
	return filepath.Join(rootPath, filepath.Join(paths...))
}
