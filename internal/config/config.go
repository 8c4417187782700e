package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the planner CLI.
type Config struct {
	LLM        LLMConfig        `mapstructure:"llm"`
	Generation GenerationConfig `mapstructure:"generation"`
	Search     SearchConfig     `mapstructure:"search"`
	Validation ValidationConfig `mapstructure:"validation"`
	Execution  ExecutionConfig  `mapstructure:"execution"`
}

// LLMConfig selects the provider backing planning and summarization.
type LLMConfig struct {
	Provider           string        `mapstructure:"provider"` // openai, anthropic, gemini, mock
	APIKey             string        `mapstructure:"api_key"`
	BaseURL            string        `mapstructure:"base_url"`
	PlanningModel      string        `mapstructure:"planning_model"`
	SummarizationModel string        `mapstructure:"summarization_model"`
	Timeout            time.Duration `mapstructure:"timeout"`
}

// GenerationConfig bounds model output and summarizer input.
type GenerationConfig struct {
	PlanningMaxTokens int `mapstructure:"planning_max_tokens"`
	SummaryMaxLength  int `mapstructure:"summary_max_length"`
	SummaryMinLength  int `mapstructure:"summary_min_length"`
	MaxInputChars     int `mapstructure:"max_input_chars"`
}

// SearchConfig shapes the instant-answer API client.
type SearchConfig struct {
	Endpoint         string        `mapstructure:"endpoint"`
	Timeout          time.Duration `mapstructure:"timeout"`
	MaxAttempts      int           `mapstructure:"max_attempts"`
	RetryDelay       time.Duration `mapstructure:"retry_delay"`
	MaxRelatedTopics int           `mapstructure:"max_related_topics"`
}

// ValidationConfig bounds accepted goal strings.
type ValidationConfig struct {
	MinGoalLength int `mapstructure:"min_goal_length"`
	MaxGoalLength int `mapstructure:"max_goal_length"`
}

// ExecutionConfig bounds plan execution.
type ExecutionConfig struct {
	DefaultMaxSteps int `mapstructure:"default_max_steps"`
}

func (s SearchConfig) Validate() error {
	if s.MaxAttempts <= 0 {
		return fmt.Errorf("search.max_attempts must be > 0")
	}
	if s.Endpoint == "" {
		return fmt.Errorf("search.endpoint must not be empty")
	}
	return nil
}

func (v ValidationConfig) Validate() error {
	if v.MinGoalLength <= 0 || v.MaxGoalLength < v.MinGoalLength {
		return fmt.Errorf("validation goal length bounds are inconsistent")
	}
	return nil
}

// Load reads configuration from an optional YAML file and AGENTIC_* environment
// variables, falling back to built-in defaults for everything else.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("AGENTIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("agentic")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Search.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validation.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.base_url", "")
	v.SetDefault("llm.planning_model", "")
	v.SetDefault("llm.summarization_model", "")
	v.SetDefault("llm.timeout", 45*time.Second)

	v.SetDefault("generation.planning_max_tokens", 80)
	v.SetDefault("generation.summary_max_length", 100)
	v.SetDefault("generation.summary_min_length", 30)
	v.SetDefault("generation.max_input_chars", 800)

	v.SetDefault("search.endpoint", "https://api.duckduckgo.com/")
	v.SetDefault("search.timeout", 10*time.Second)
	v.SetDefault("search.max_attempts", 3)
	v.SetDefault("search.retry_delay", 1*time.Second)
	v.SetDefault("search.max_related_topics", 3)

	v.SetDefault("validation.min_goal_length", 5)
	v.SetDefault("validation.max_goal_length", 200)

	v.SetDefault("execution.default_max_steps", 10)
}
