package model

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type DBType string

const (
	DBTypeDuckDB     DBType = "duckdb"
	DBTypeClickHouse DBType = "clickhouse"
)

type DBConfig struct {
	Type DBType `yaml:"type"`
	DSN  string `yaml:"dsn"`
}

// Config CLI 的文件配置，命令行参数优先于文件
type Config struct {
	DB DBConfig `yaml:"db"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &cfg, nil
}
