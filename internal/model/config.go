package model

import "time"

// Config is the complete raadsel configuration
type Config struct {
	Wiki         WikiConfig        `yaml:"wiki" mapstructure:"wiki"`
	RateLimiting RateLimitConfig   `yaml:"rate_limiting" mapstructure:"rate_limiting"`
	Cache        CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Filter       FilterConfig      `yaml:"filter" mapstructure:"filter"`
	Lexicon      LexiconConfig     `yaml:"lexicon" mapstructure:"lexicon"`
	Puzzle       PuzzleConfig      `yaml:"puzzle" mapstructure:"puzzle"`
	LLM          LLMConfig         `yaml:"llm" mapstructure:"llm"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
}

// WikiConfig controls access to the MediaWiki and Wikidata APIs
type WikiConfig struct {
	APIURL        string        `yaml:"api_url" mapstructure:"api_url"`
	WikidataURL   string        `yaml:"wikidata_url" mapstructure:"wikidata_url"`
	Category      string        `yaml:"category" mapstructure:"category"`             // Disambiguation category
	PageviewDays  int           `yaml:"pageview_days" mapstructure:"pageview_days"`   // Popularity window
	UserAgent     string        `yaml:"user_agent" mapstructure:"user_agent"`
	Timeout       time.Duration `yaml:"timeout" mapstructure:"timeout"`
	MaxBodyBytes  int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
	RespectRobots bool          `yaml:"respect_robots" mapstructure:"respect_robots"`
	HTTPProxy     string        `yaml:"http_proxy,omitempty" mapstructure:"http_proxy"`
	HTTPSProxy    string        `yaml:"https_proxy,omitempty" mapstructure:"https_proxy"`
	NoProxy       string        `yaml:"no_proxy,omitempty" mapstructure:"no_proxy"`
}

// RateLimitConfig limits requests per host
type RateLimitConfig struct {
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	BurstSize         int     `yaml:"burst_size" mapstructure:"burst_size"`
}

// CacheConfig controls the API response cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// FilterConfig holds the thresholds used by the aspect cascade and prefilter
type FilterConfig struct {
	MinLinks                  int  `yaml:"min_links" mapstructure:"min_links"`
	MinTitleLength            int  `yaml:"min_title_length" mapstructure:"min_title_length"`
	DemonymThreshold          int  `yaml:"demonym_threshold" mapstructure:"demonym_threshold"`
	CountryThreshold          int  `yaml:"country_threshold" mapstructure:"country_threshold"`
	CountryQualifiedThreshold int  `yaml:"country_qualified_threshold" mapstructure:"country_qualified_threshold"`
	CategoryLeak              bool `yaml:"category_leak" mapstructure:"category_leak"` // Reproduce page-level exclusion flag
}

// LexiconConfig points at optional files replacing the built-in word lists
type LexiconConfig struct {
	LexiconFile   string `yaml:"lexicon_file,omitempty" mapstructure:"lexicon_file"`
	CountriesFile string `yaml:"countries_file,omitempty" mapstructure:"countries_file"`
	WordNetFile   string `yaml:"wordnet_file,omitempty" mapstructure:"wordnet_file"`
}

// PuzzleConfig controls puzzle set construction
type PuzzleConfig struct {
	TestRatio float64 `yaml:"test_ratio" mapstructure:"test_ratio"`
	Seed      uint64  `yaml:"seed" mapstructure:"seed"` // 0 = fresh entropy on every run
}

// LLMConfig configures the answer-collection provider
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"`
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"api_key"`
	BaseURL   string `yaml:"base_url,omitempty" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// ConcurrencyConfig controls answer-collection fan-out
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() *Config {
	return &Config{
		Wiki: WikiConfig{
			APIURL:        "https://nl.wikipedia.org/w/api.php",
			WikidataURL:   "https://www.wikidata.org/w/api.php",
			Category:      "Categorie:Wikipedia:Doorverwijspagina",
			PageviewDays:  30,
			UserAgent:     "Raadsel/0.1 (+https://github.com/ppiankov/raadsel)",
			Timeout:       30 * time.Second,
			MaxBodyBytes:  10 << 20,
			RespectRobots: false,
		},
		RateLimiting: RateLimitConfig{
			RequestsPerSecond: 5,
			BurstSize:         5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".raadsel-cache",
			MemoryTTL: time.Hour,
			DiskTTL:   7 * 24 * time.Hour,
		},
		Filter: FilterConfig{
			MinLinks:                  3,
			MinTitleLength:            4,
			DemonymThreshold:          3000,
			CountryThreshold:          350,
			CountryQualifiedThreshold: 3000,
			CategoryLeak:              true,
		},
		Puzzle: PuzzleConfig{
			TestRatio: 0.9,
		},
		LLM: LLMConfig{
			Provider:  "openai",
			Model:     "gpt-4o",
			Timeout:   30,
			MaxTokens: 100,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
	}
}
