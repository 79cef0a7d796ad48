// Package config 提供控制器默认配置的读写
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// ControllerConfig 控制器默认配置
type ControllerConfig struct {
	FailSafe bool   `json:"fail_safe"`
	PauseMs  int    `json:"pause_ms"`
	LogLevel string `json:"log_level"`
}

// DefaultControllerConfig 默认配置
func DefaultControllerConfig() *ControllerConfig {
	return &ControllerConfig{
		FailSafe: true,
		PauseMs:  50,
		LogLevel: "INFO",
	}
}

// Pause 将 PauseMs 转换为 time.Duration
func (c *ControllerConfig) Pause() time.Duration {
	return time.Duration(c.PauseMs) * time.Millisecond
}

// Manager 配置管理器
type Manager struct {
	configDir  string
	configFile string
	mu         sync.RWMutex
}

// NewManager 创建配置管理器，配置文件位于 ~/.deskauto/config.json
func NewManager() *Manager {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := filepath.Join(homeDir, ".deskauto")
	return &Manager{
		configDir:  configDir,
		configFile: filepath.Join(configDir, "config.json"),
	}
}

// NewManagerWithDir 使用指定目录创建配置管理器
func NewManagerWithDir(configDir string) *Manager {
	return &Manager{
		configDir:  configDir,
		configFile: filepath.Join(configDir, "config.json"),
	}
}

// ensureDir 确保配置目录存在
func (m *Manager) ensureDir() error {
	return os.MkdirAll(m.configDir, 0755)
}

// Load 加载配置
// 文件不存在时返回默认值；解析时以默认值为基准，缺失字段保持默认。
func (m *Manager) Load() (*ControllerConfig, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	config := DefaultControllerConfig()

	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return config, nil
	}

	data, err := os.ReadFile(m.configFile)
	if err != nil {
		return DefaultControllerConfig(), fmt.Errorf("读取配置文件失败: %w", err)
	}

	if err := json.Unmarshal(data, config); err != nil {
		return DefaultControllerConfig(), fmt.Errorf("解析配置文件失败: %w", err)
	}

	return config, nil
}

// Save 保存配置
func (m *Manager) Save(config *ControllerConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.ensureDir(); err != nil {
		return fmt.Errorf("创建配置目录失败: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	if err := os.WriteFile(m.configFile, data, 0600); err != nil {
		return fmt.Errorf("写入配置文件失败: %w", err)
	}

	return nil
}

// Clear 清除配置
func (m *Manager) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, err := os.Stat(m.configFile); os.IsNotExist(err) {
		return nil
	}

	return os.Remove(m.configFile)
}

// GetConfigFile 获取配置文件路径
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// Exists 检查配置文件是否存在
func (m *Manager) Exists() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	_, err := os.Stat(m.configFile)
	return err == nil
}

// 全局配置管理器
var defaultManager = NewManager()

// GetDefaultManager 获取默认配置管理器
func GetDefaultManager() *Manager {
	return defaultManager
}

// Load 使用默认管理器加载配置
func Load() (*ControllerConfig, error) {
	return defaultManager.Load()
}

// Save 使用默认管理器保存配置
func Save(config *ControllerConfig) error {
	return defaultManager.Save(config)
}
