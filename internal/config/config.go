package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config lumo 配置
type Config struct {
	Lang string     `toml:"lang"` // 诊断信息语言，"en" 或 "zh"，留空则自动检测
	Repl ReplConfig `toml:"repl"`
}

// ReplConfig 交互式会话配置
type ReplConfig struct {
	Prompt string `toml:"prompt"` // 提示符
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Repl: ReplConfig{
			Prompt: "> ",
		},
	}
}

// FindAndLoad 从指定目录向上查找 lumo.toml 并加载
func FindAndLoad(startDir string) (*Config, string, error) {
	configPath := FindConfigFile(startDir)
	if configPath == "" {
		// 没找到配置文件，返回默认配置
		return DefaultConfig(), "", nil
	}

	config, err := Load(configPath)
	if err != nil {
		return nil, "", err
	}

	return config, configPath, nil
}

// FindConfigFile 从指定目录向上查找 lumo.toml
func FindConfigFile(startDir string) string {
	dir := startDir

	for {
		configPath := filepath.Join(dir, "lumo.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		// 获取父目录
		parent := filepath.Dir(dir)
		if parent == dir {
			// 已到根目录
			return ""
		}
		dir = parent
	}
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	config := DefaultConfig()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, err
	}

	// 提示符不允许为空
	if config.Repl.Prompt == "" {
		config.Repl.Prompt = "> "
	}

	return config, nil
}
