package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/Ebesoh-Adrian/ADForexPre/model"

	"github.com/joho/godotenv"
)

type SystemConfigs struct {
	Config *model.EnvConfig
}

func LoadConfigs() (*SystemConfigs, error) {
	godotenv.Load()

	rawJson := os.Getenv("config")
	if rawJson == "" {
		return nil, fmt.Errorf("environment variable 'config' is empty or not set")
	}

	var envCfg model.EnvConfig
	err := json.Unmarshal([]byte(rawJson), &envCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &SystemConfigs{
		Config: &envCfg,
	}, nil
}

// ConfigManager holds runtime-tunable settings behind an atomic swap so
// request handlers never block on a config update.
type ConfigManager struct {
	value atomic.Value
}

func NewConfigManager(initial *model.AppSettings) *ConfigManager {
	cm := &ConfigManager{}
	cm.value.Store(initial)
	return cm
}

func (cm *ConfigManager) GetConfig() *model.AppSettings {
	return cm.value.Load().(*model.AppSettings)
}

func (cm *ConfigManager) UpdateConfig(newCfg *model.AppSettings) {
	cm.value.Store(newCfg)
}
