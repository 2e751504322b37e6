package model

import "time"

// Config is the runtime configuration assembled from defaults, the
// config file, LEXLENS_* environment variables, and CLI flags. Rule
// semantics live in the catalog, not here.
type Config struct {
	Analysis    AnalysisConfig    `yaml:"analysis"`
	Catalog     CatalogRef        `yaml:"catalog"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
	LLM         LLMConfig         `yaml:"llm"`
}

// AnalysisConfig tunes the orchestrator, not the rules.
type AnalysisConfig struct {
	// ChunkBytes is the size above which a document is split into
	// chunks for detection. Chunk boundaries always fall on line
	// breaks, never mid-token. Zero disables chunking.
	ChunkBytes int `yaml:"chunk_bytes"`
}

// CatalogRef points at an external rule catalog. Empty means the
// built-in defaults.
type CatalogRef struct {
	Path string `yaml:"path"`
}

// CacheConfig controls the in-memory analysis cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	TTL     time.Duration `yaml:"ttl"`
}

// ConcurrencyConfig controls batch processing.
type ConcurrencyConfig struct {
	Workers int `yaml:"workers"`
}

// OutputConfig controls rendering.
type OutputConfig struct {
	Verbose       bool `yaml:"verbose"`
	IncludeFooter bool `yaml:"include_footer"`
}

// LLMConfig configures the optional plain-language summarizer.
type LLMConfig struct {
	Provider          string  `yaml:"provider"` // "openai" or "" (disabled)
	Model             string  `yaml:"model"`
	APIKey            string  `yaml:"api_key,omitempty"`
	BaseURL           string  `yaml:"base_url,omitempty"`
	TimeoutSeconds    int     `yaml:"timeout_seconds"`
	MaxTokens         int     `yaml:"max_tokens"`
	RequestsPerSecond float64 `yaml:"requests_per_second"` // Throttle for batch runs
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			ChunkBytes: 256 * 1024,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     15 * time.Minute,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		Output: OutputConfig{
			IncludeFooter: true,
		},
		LLM: LLMConfig{
			Provider:          "",
			Model:             "gpt-4o-mini",
			TimeoutSeconds:    30,
			MaxTokens:         700,
			RequestsPerSecond: 1,
		},
	}
}
