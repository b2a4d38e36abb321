package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config 命令行工具配置
type Config struct {
	Model   ModelConfig   `yaml:"model"`
	Mapping MappingConfig `yaml:"mapping"`
	Log     LogConfig     `yaml:"log"`
}

// ModelConfig FinBERT 模型相关配置
type ModelConfig struct {
	Path     string `yaml:"path"`
	HFRepo   string `yaml:"hf_repo"`
	OnnxFile string `yaml:"onnx_file"`
}

// MappingConfig 分类映射默认参数
type MappingConfig struct {
	TopK        int     `yaml:"top_k"`
	Temperature float64 `yaml:"temperature"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
