// Package config provides configuration management for the Paysera payment adapter.
// Configuration can be loaded from YAML files and overridden by environment variables.
package config

import (
	"errors"
	"fmt"
	"github.com/ilyakaznacheev/cleanenv"
	"os"
	"paysera/entity"
)

// Config holds all configuration for the Paysera payment adapter.
// Values can be set via YAML configuration file or environment variables.
// Environment variables take precedence over YAML values.
type Config struct {
	IsDebug bool `yaml:"is_debug" env:"DEBUG" env-default:"false"`
	Listen  struct {
		BindIP   string `yaml:"bind_ip" env:"BIND_IP" env-default:"0.0.0.0"`
		Port     string `yaml:"port" env:"PORT" env-default:"5200"`
		TLS      bool   `yaml:"tls_enabled" env:"TLS_ENABLED" env-default:"false"`
		CertFile string `yaml:"cert_file" env:"TLS_CERT_FILE" env-default:""`
		KeyFile  string `yaml:"key_file" env:"TLS_KEY_FILE" env-default:""`
	} `yaml:"listen"`
	Mongo struct {
		Enabled  bool   `yaml:"enabled" env:"MONGO_ENABLED" env-default:"false"`
		Host     string `yaml:"host" env:"MONGO_HOST" env-default:"127.0.0.1"`
		Port     string `yaml:"port" env:"MONGO_PORT" env-default:"27017"`
		User     string `yaml:"user" env:"MONGO_USER" env-default:""`
		Password string `yaml:"password" env:"MONGO_PASSWORD" env-default:""`
		Database string `yaml:"database" env:"MONGO_DATABASE" env-default:"paysera"`
	} `yaml:"mongo"`
	Merchant Merchant `yaml:"merchant"`
}

// Merchant is the Paysera project section of the configuration.
type Merchant struct {
	ProjectId    string `yaml:"project_id" env:"PAYSERA_PROJECT_ID" env-default:""`
	SignPassword string `yaml:"sign_password" env:"PAYSERA_SIGN_PASSWORD" env-default:""`
	AcceptUrl    string `yaml:"accept_url" env:"ACCEPT_URL" env-default:""`
	CancelUrl    string `yaml:"cancel_url" env:"CANCEL_URL" env-default:""`
	CallbackUrl  string `yaml:"callback_url" env:"CALLBACK_URL" env-default:""`
	PayUrl       string `yaml:"pay_url" env:"PAYSERA_PAY_URL" env-default:"https://www.paysera.com/pay/"`
	TestMode     bool   `yaml:"test_mode" env:"PAYSERA_TEST_MODE" env-default:"false"`
}

// MerchantConfig converts the merchant section into the validated, immutable
// value consumed by the payment adapter.
func (m Merchant) MerchantConfig() (*entity.MerchantConfig, error) {
	return entity.NewMerchantConfig(m.ProjectId, m.SignPassword, m.AcceptUrl, m.CancelUrl, m.CallbackUrl)
}

// GetConfig loads configuration from the specified YAML file path.
// If the file does not exist, configuration is read from environment variables only.
// Every call returns a new value; there is no shared instance.
//
// Example:
//
//	cfg, err := config.GetConfig("config.yml")
//	if err != nil {
//	    log.Fatal(err)
//	}
func GetConfig(path string) (*Config, error) {
	conf := &Config{}

	var err error
	if _, statErr := os.Stat(path); path != "" && statErr == nil {
		err = cleanenv.ReadConfig(path, conf)
	} else if path != "" && !errors.Is(statErr, os.ErrNotExist) {
		return nil, fmt.Errorf("stat config file: %w", statErr)
	} else {
		err = cleanenv.ReadEnv(conf)
	}
	if err != nil {
		desc, _ := cleanenv.GetDescription(conf, nil)
		return nil, fmt.Errorf("load config: %w; %s", err, desc)
	}

	return conf, nil
}
