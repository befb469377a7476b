package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type EmailConfig struct {
	SMTPHost           string `mapstructure:"smtp_host"`
	SMTPPort           int    `mapstructure:"smtp_port"`
	SMTPUser           string `mapstructure:"smtp_user"`
	SMTPPassword       string `mapstructure:"smtp_password"`
	FromAddress        string `mapstructure:"from_address"`
	FromName           string `mapstructure:"from_name"`
	SupportAddress     string `mapstructure:"support_address"`
	LogoPath           string `mapstructure:"logo_path"`
	SendTimeoutSeconds int    `mapstructure:"send_timeout_seconds"`
}

func (e *EmailConfig) SendTimeout() time.Duration {
	return time.Duration(e.SendTimeoutSeconds) * time.Second
}

type LedgerConfig struct {
	Path string `mapstructure:"path"`
}

type ChatLogConfig struct {
	Path string `mapstructure:"path"`
}
