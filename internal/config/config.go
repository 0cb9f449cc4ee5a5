package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"resume-iq-go/internal/constants"
	"resume-iq-go/internal/logger"
	"resume-iq-go/internal/tracing"
)

// Config 应用程序配置
type Config struct {
	// 服务器配置
	Server ServerConfig `yaml:"server"`

	// 分析器配置
	Analyzer AnalyzerConfig `yaml:"analyzer"`

	// 启发式评分配置
	Heuristics HeuristicsConfig `yaml:"heuristics"`

	// 日志配置
	Logger logger.Config `yaml:"logger"`

	// 链路追踪配置
	Tracing tracing.Config `yaml:"tracing"`
}

// ServerConfig 定义服务器配置
type ServerConfig struct {
	Address string `yaml:"address"` // 例如 ":8080" or "0.0.0.0:8080"
	// APIKey 非空时启用请求头鉴权
	APIKey string `yaml:"api_key,omitempty"`
	// MaxUploadSizeMB 上传文件大小上限(MB)
	MaxUploadSizeMB int `yaml:"max_upload_size_mb"`
}

// AnalyzerConfig 分析器配置
type AnalyzerConfig struct {
	// DefaultRole 请求未携带岗位时使用的默认岗位
	DefaultRole string `yaml:"default_role"`
	// ExtraSkillVocab 部署方追加的技能词表
	ExtraSkillVocab []string `yaml:"extra_skill_vocab"`
	// Version 报告中回显的分析器版本号
	Version string `yaml:"version"`
}

// HeuristicsConfig 启发式评分的可调参数
// 零值字段在加载时回填为内置默认值
type HeuristicsConfig struct {
	MinBulletWords     int `yaml:"min_bullet_words"`
	MaxSkills          int `yaml:"max_skills"`
	MaxCandidatePhrases int `yaml:"max_candidate_phrases"`

	StructuralWeight float64 `yaml:"structural_weight"`
	DepthWeight      float64 `yaml:"depth_weight"`
	PatternWeight    float64 `yaml:"pattern_weight"`
}

// LoadConfig 从文件加载配置
func LoadConfig(configPath string) (*Config, error) {
	// 如果未指定配置文件路径，则尝试在默认位置查找
	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			"./config.yaml",
			"../config.yaml",
			filepath.Join(os.Getenv("HOME"), ".resume-iq", "config.yaml"),
		}

		execPath, err := os.Executable()
		if err == nil {
			execDir := filepath.Dir(execPath)
			searchPaths = append(searchPaths, filepath.Join(execDir, "config.yaml"))
			searchPaths = append(searchPaths, filepath.Join(execDir, "..", "config.yaml"))
		}

		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}

		// 找不到配置文件时使用内置默认配置，方便开箱即用和测试
		if configPath == "" {
			return createDefaultConfig(), nil
		}
	}

	_, err := os.Stat(configPath)
	if err != nil {
		if inTestEnv() {
			return createDefaultConfig(), nil
		}
		return nil, fmt.Errorf("配置文件不存在: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	config := createDefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	applyEnvOverrides(config)
	applyDefaults(config)
	return config, nil
}

// applyEnvOverrides 从环境变量覆盖配置（如果存在）
func applyEnvOverrides(config *Config) {
	if addr := os.Getenv("RESUME_IQ_SERVER_ADDRESS"); addr != "" {
		config.Server.Address = addr
	}
	if key := os.Getenv("RESUME_IQ_API_KEY"); key != "" {
		config.Server.APIKey = key
	}
	if endpoint := os.Getenv("RESUME_IQ_OTLP_ENDPOINT"); endpoint != "" {
		config.Tracing.Endpoint = endpoint
		config.Tracing.Enabled = true
	}
	if level := os.Getenv("RESUME_IQ_LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}
}

// applyDefaults 回填缺失字段的默认值
func applyDefaults(config *Config) {
	if config.Server.Address == "" {
		config.Server.Address = ":8080"
	}
	if config.Server.MaxUploadSizeMB <= 0 {
		config.Server.MaxUploadSizeMB = 10
	}
	if config.Analyzer.Version == "" {
		config.Analyzer.Version = constants.DefaultAnalyzerVer
	}
	if config.Heuristics.MinBulletWords <= 0 {
		config.Heuristics.MinBulletWords = constants.MinBulletWords
	}
	if config.Heuristics.MaxSkills <= 0 {
		config.Heuristics.MaxSkills = constants.MaxSkills
	}
	if config.Heuristics.MaxCandidatePhrases <= 0 {
		config.Heuristics.MaxCandidatePhrases = constants.MaxCandidatePhrases
	}
	// 权重三项必须同时给出且和为正，否则整组回退默认
	sum := config.Heuristics.StructuralWeight + config.Heuristics.DepthWeight + config.Heuristics.PatternWeight
	if sum <= 0 {
		config.Heuristics.StructuralWeight = constants.StructuralWeight
		config.Heuristics.DepthWeight = constants.DepthWeight
		config.Heuristics.PatternWeight = constants.PatternWeight
	}
	if config.Logger.Level == "" {
		config.Logger.Level = "info"
	}
	if config.Logger.Format == "" {
		config.Logger.Format = "json"
	}
	if config.Tracing.ServiceName == "" {
		config.Tracing.ServiceName = "resume-iq"
	}
	if config.Tracing.SampleRatio <= 0 {
		config.Tracing.SampleRatio = 1.0
	}
}

// 创建一个默认配置，用于测试环境和零配置启动
func createDefaultConfig() *Config {
	config := &Config{}
	config.Server.Address = ":8080"
	config.Server.MaxUploadSizeMB = 10

	config.Analyzer.DefaultRole = ""
	config.Analyzer.Version = constants.DefaultAnalyzerVer

	config.Heuristics.MinBulletWords = constants.MinBulletWords
	config.Heuristics.MaxSkills = constants.MaxSkills
	config.Heuristics.MaxCandidatePhrases = constants.MaxCandidatePhrases
	config.Heuristics.StructuralWeight = constants.StructuralWeight
	config.Heuristics.DepthWeight = constants.DepthWeight
	config.Heuristics.PatternWeight = constants.PatternWeight

	config.Logger.Level = "info"
	config.Logger.Format = "pretty" // 开发环境默认使用美化输出
	config.Logger.TimeFormat = "2006-01-02 15:04:05"
	config.Logger.ReportCaller = true

	config.Tracing.Enabled = false
	config.Tracing.ServiceName = "resume-iq"
	config.Tracing.SampleRatio = 1.0

	return config
}

// CreateSampleConfig 创建一个示例配置文件
func CreateSampleConfig(filePath string) error {
	if _, err := os.Stat(filePath); err == nil {
		return fmt.Errorf("文件 '%s' 已存在，不会覆盖", filePath)
	}

	config := createDefaultConfig()

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("序列化配置失败: %w", err)
	}

	err = os.WriteFile(filePath, data, 0644)
	if err != nil {
		return fmt.Errorf("写入示例配置文件 '%s' 失败: %w", filePath, err)
	}

	fmt.Printf("示例配置文件已创建: %s\n", filePath)
	return nil
}

// 检测是否在go test环境中运行
func inTestEnv() bool {
	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			return true
		}
	}
	return false
}
