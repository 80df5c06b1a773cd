package rustem

import (
	"os"
	"runtime"

	"github.com/oarkflow/json"

	"github.com/oarkflow/rustem/tokenizer"
)

const (
	AND Mode = "AND"
	OR  Mode = "OR"
)

type Mode string

type BM25Params struct {
	K float64 `json:"k"`
	B float64 `json:"b"`
	D float64 `json:"d"`
}

var DefaultRelevance = BM25Params{K: 1.2, B: 0.75, D: 0.5}

type Config struct {
	Language        tokenizer.Language `json:"language"`
	// KeepStopWords returns stop words unstemmed from Stem.
	KeepStopWords   bool               `json:"keep_stop_words"`
	// CacheSize is the LRU capacity. Zero keeps the default, a negative
	// value disables the cache.
	CacheSize       int                `json:"cache_size"`
	Workers         int                `json:"workers"`
	Compress        bool               `json:"compress"`
	TokenizerConfig *tokenizer.Config  `json:"tokenizer"`
	Relevance       BM25Params         `json:"relevance"`
}

func DefaultConfig() *Config {
	return &Config{
		Language:  tokenizer.RUSSIAN,
		CacheSize: 10000,
		Workers:   runtime.NumCPU(),
		TokenizerConfig: &tokenizer.Config{
			EnableStemming:  true,
			EnableStopWords: true,
		},
		Relevance: DefaultRelevance,
	}
}

// MergeConfigs merges multiple Config structs into one. Later non-zero
// values win.
func MergeConfigs(configs ...*Config) *Config {
	mergedConfig := &Config{}

	for _, cfg := range configs {
		if cfg == nil {
			continue
		}
		if cfg.Language != "" {
			mergedConfig.Language = cfg.Language
		}
		if cfg.KeepStopWords {
			mergedConfig.KeepStopWords = cfg.KeepStopWords
		}
		if cfg.CacheSize != 0 {
			mergedConfig.CacheSize = cfg.CacheSize
		}
		if cfg.Workers != 0 {
			mergedConfig.Workers = cfg.Workers
		}
		if cfg.Compress {
			mergedConfig.Compress = cfg.Compress
		}
		if cfg.TokenizerConfig != nil {
			mergedConfig.TokenizerConfig = cfg.TokenizerConfig
		}
		if cfg.Relevance.K != 0 {
			mergedConfig.Relevance.K = cfg.Relevance.K
		}
		if cfg.Relevance.B != 0 {
			mergedConfig.Relevance.B = cfg.Relevance.B
		}
		if cfg.Relevance.D != 0 {
			mergedConfig.Relevance.D = cfg.Relevance.D
		}
	}

	return mergedConfig
}

// LoadConfig reads a JSON config file and fills the gaps from DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return MergeConfigs(DefaultConfig(), &cfg), nil
}
