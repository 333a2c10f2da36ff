package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	apperrors "github.com/Aixtrade/nothing/pkg/errors"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
	Env  string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTP  HTTPConfig     `mapstructure:"http"`
	Admin ListenerConfig `mapstructure:"admin"`
	GRPC  ListenerConfig `mapstructure:"grpc"`
}

type HTTPConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// ListenerConfig 辅助监听器配置（管理端口、gRPC 健康检查）
type ListenerConfig struct {
	// Enabled 是否启用
	Enabled bool   `mapstructure:"enabled"`
	Host    string `mapstructure:"host"`
	Port    int    `mapstructure:"port"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("NOTHING")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// An explicit path must exist; the search path is optional.
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "nothing")
	v.SetDefault("app.env", "production")

	v.SetDefault("server.http.host", "0.0.0.0")
	v.SetDefault("server.http.port", 3000)
	v.SetDefault("server.http.read_timeout", 15*time.Second)
	v.SetDefault("server.http.write_timeout", 15*time.Second)
	v.SetDefault("server.http.idle_timeout", 60*time.Second)
	v.SetDefault("server.http.shutdown_timeout", 30*time.Second)

	v.SetDefault("server.admin.enabled", false)
	v.SetDefault("server.admin.host", "127.0.0.1")
	v.SetDefault("server.admin.port", 9090)

	v.SetDefault("server.grpc.enabled", false)
	v.SetDefault("server.grpc.host", "127.0.0.1")
	v.SetDefault("server.grpc.port", 9091)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
}

func (c *Config) Validate() error {
	if err := validPort("server.http.port", c.Server.HTTP.Port); err != nil {
		return err
	}
	if c.Server.HTTP.ReadTimeout < 0 {
		return invalid("server.http.read_timeout must be greater than or equal to 0")
	}
	if c.Server.HTTP.WriteTimeout < 0 {
		return invalid("server.http.write_timeout must be greater than or equal to 0")
	}
	if c.Server.HTTP.IdleTimeout < 0 {
		return invalid("server.http.idle_timeout must be greater than or equal to 0")
	}
	if c.Server.HTTP.ShutdownTimeout < 0 {
		return invalid("server.http.shutdown_timeout must be greater than or equal to 0")
	}

	if c.Server.Admin.Enabled {
		if err := validPort("server.admin.port", c.Server.Admin.Port); err != nil {
			return err
		}
		if c.Server.Admin.Port == c.Server.HTTP.Port {
			return invalid("server.admin.port must differ from server.http.port")
		}
	}
	if c.Server.GRPC.Enabled {
		if err := validPort("server.grpc.port", c.Server.GRPC.Port); err != nil {
			return err
		}
		if c.Server.GRPC.Port == c.Server.HTTP.Port {
			return invalid("server.grpc.port must differ from server.http.port")
		}
		if c.Server.Admin.Enabled && c.Server.GRPC.Port == c.Server.Admin.Port {
			return invalid("server.grpc.port must differ from server.admin.port")
		}
	}
	return nil
}

func validPort(key string, port int) error {
	if port <= 0 || port > 65535 {
		return invalid(fmt.Sprintf("%s must be between 1 and 65535", key))
	}
	return nil
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", apperrors.ErrInvalidConfig, msg)
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func (c *HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ListenerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
