package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/forge-api/internal/config"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(":8080", cfg.HTTPAddr)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal(0, cfg.RedisDB)
	s.Equal(30*time.Second, cfg.ShutdownTimeout)
}

func (s *ConfigTestSuite) TestLoadFromEnvironment() {
	s.T().Setenv("FORGE_HTTP_ADDR", ":9090")
	s.T().Setenv("FORGE_REDIS_ADDR", "redis.internal:6380")
	s.T().Setenv("FORGE_REDIS_DB", "3")
	s.T().Setenv("FORGE_SHUTDOWN_TIMEOUT", "5s")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(":9090", cfg.HTTPAddr)
	s.Equal("redis.internal:6380", cfg.RedisAddr)
	s.Equal(3, cfg.RedisDB)
	s.Equal(5*time.Second, cfg.ShutdownTimeout)
}

func (s *ConfigTestSuite) TestValidateRejectsEmptyAddr() {
	cfg := &config.Config{
		HTTPAddr:        "",
		RedisAddr:       "localhost:6379",
		ShutdownTimeout: time.Second,
	}

	s.Error(cfg.Validate())
}

func (s *ConfigTestSuite) TestValidateRejectsZeroTimeout() {
	cfg := &config.Config{
		HTTPAddr:  ":8080",
		RedisAddr: "localhost:6379",
	}

	s.Error(cfg.Validate())
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
