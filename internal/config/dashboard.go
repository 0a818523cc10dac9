package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/Zahkklm/FinRiskDetector/internal/logger"
	"gopkg.in/yaml.v3"
)

type BackendConfig struct {
	Address           string        `yaml:"address"`
	RequestTimeout    time.Duration `yaml:"request_timeout"`
	RequestsPerMinute int           `yaml:"requests_per_minute"`
}

const (
	_requestTimeoutDefault    = 10 * time.Second
	_requestsPerMinuteDefault = 300
)

func (c *BackendConfig) Setup() error {
	if c.Address == "" {
		return fmt.Errorf("backend address is required")
	}

	if _, err := url.Parse(c.Address); err != nil {
		return err
	}

	if c.RequestTimeout <= 0 {
		c.RequestTimeout = _requestTimeoutDefault
	}
	if c.RequestsPerMinute <= 0 {
		c.RequestsPerMinute = _requestsPerMinuteDefault
	}

	return nil
}

type RefreshConfig struct {
	Interval time.Duration `yaml:"interval"`
}

const _refreshIntervalDefault = 5 * time.Second

func (c *RefreshConfig) Setup() {
	if c.Interval <= 0 {
		c.Interval = _refreshIntervalDefault
	}
}

type ServerConfig struct {
	Port string `yaml:"port"`
}

const _serverPortDefault = "8080"

func (c *ServerConfig) Setup() {
	if c.Port == "" {
		c.Port = _serverPortDefault
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		c.Port = _serverPortDefault
	}
}

type DashboardConfig struct {
	LogLevel logger.LogLevel `yaml:"log_level"`
	UserID   string          `yaml:"user_id"`
	Backend  BackendConfig   `yaml:"backend"`
	Refresh  RefreshConfig   `yaml:"refresh"`
	Server   ServerConfig    `yaml:"server"`
}

func (c *DashboardConfig) ValidateAndSetup() error {
	if c.LogLevel == "" {
		c.LogLevel = logger.Info
	}

	if userID := os.Getenv("DASHBOARD_USER_ID"); userID != "" {
		c.UserID = userID
	}
	if c.UserID == "" {
		return fmt.Errorf("empty dashboard user id")
	}

	if err := c.Backend.Setup(); err != nil {
		return fmt.Errorf("%w: can't setup backend cfg", err)
	}

	c.Refresh.Setup()
	c.Server.Setup()

	return nil
}

func LoadDashboardConfig(filename string) (DashboardConfig, error) {
	var cfg DashboardConfig
	input, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("%w: can't read file", err)
	}

	if err := yaml.Unmarshal(input, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: can't unmarshal config", err)
	}

	if err := cfg.ValidateAndSetup(); err != nil {
		return cfg, fmt.Errorf("%w: can't setup cfg", err)
	}

	return cfg, nil
}
