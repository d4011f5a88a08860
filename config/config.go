package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Provider names accepted in the llm section.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderCohere    = "cohere"
)

// ErrMissingSecret is wrapped by Validate for every absent required secret.
var ErrMissingSecret = errors.New("config: missing secret")

// LLM holds the language model boundary configuration.
type LLM struct {
	Provider    string  `yaml:"provider"`
	APIKey      string  `yaml:"api_key"`
	BaseURL     string  `yaml:"base_url"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
	MaxTokens   int     `yaml:"max_tokens"`
}

// Tripadvisor holds the location-info API configuration.
type Tripadvisor struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

// Search holds the web search API configuration.
type Search struct {
	BaseURL    string `yaml:"base_url"`
	MaxResults int    `yaml:"max_results"`
}

// Config is the immutable process configuration, loaded once at startup and
// passed explicitly to the components that need it. Secrets are never read
// from the environment at call time.
type Config struct {
	LLM         LLM         `yaml:"llm"`
	Tripadvisor Tripadvisor `yaml:"tripadvisor"`
	Search      Search      `yaml:"search"`
	// StepLimit bounds router/worker alternations per run; zero means the
	// executor default.
	StepLimit int `yaml:"step_limit"`
}

// FromEnv builds a Config from process environment variables and validates
// it. The LLM API key variable depends on the provider (OPENAI_API_KEY,
// ANTHROPIC_API_KEY or COHERE_API_KEY).
func FromEnv() (*Config, error) {
	cfg := new(Config)
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads a YAML configuration file, overlays environment variables
// on top and validates the result.
func LoadFile(path string) (*Config, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := new(Config)
	if err := yaml.Unmarshal(bs, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LLM_PROVIDER"); v != "" {
		c.LLM.Provider = v
	}
	if c.LLM.Provider == "" {
		c.LLM.Provider = ProviderOpenAI
	}
	if v := os.Getenv(c.apiKeyEnv()); v != "" {
		c.LLM.APIKey = v
	}
	if v := os.Getenv(c.baseURLEnv()); v != "" {
		c.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		c.LLM.Model = v
	}
	if v := os.Getenv("TRIPADVISOR_API_KEY"); v != "" {
		c.Tripadvisor.APIKey = v
	}
	if v := os.Getenv("TRIPADVISOR_BASE_URL"); v != "" {
		c.Tripadvisor.BaseURL = v
	}
	if v := os.Getenv("SEARXNG_BASE_URL"); v != "" {
		c.Search.BaseURL = v
	}
	if v := os.Getenv("GRAPH_STEP_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.StepLimit = n
		}
	}
}

func (c *Config) apiKeyEnv() string {
	return strings.ToUpper(c.LLM.Provider) + "_API_KEY"
}

func (c *Config) baseURLEnv() string {
	return strings.ToUpper(c.LLM.Provider) + "_API_BASE_URL"
}

// Validate fails fast on configuration the process cannot run without.
func (c *Config) Validate() error {
	var missing []string
	if c.LLM.APIKey == "" {
		missing = append(missing, c.apiKeyEnv())
	}
	if c.Tripadvisor.APIKey == "" {
		missing = append(missing, "TRIPADVISOR_API_KEY")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingSecret, strings.Join(missing, ", "))
	}
	switch c.LLM.Provider {
	case ProviderOpenAI, ProviderAnthropic, ProviderCohere:
	default:
		return fmt.Errorf("config: unknown llm provider %q", c.LLM.Provider)
	}
	return nil
}
