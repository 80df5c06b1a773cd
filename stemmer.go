package rustem

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/oarkflow/gopool"
	"github.com/oarkflow/log"
	"github.com/oarkflow/xsync"

	"github.com/oarkflow/rustem/lib"
	"github.com/oarkflow/rustem/snowball"
	"github.com/oarkflow/rustem/storage"
	"github.com/oarkflow/rustem/tokenizer"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Stemmer wraps the snowball stemmer of one language with an LRU cache and
// the helpers a search pipeline needs around it.
type Stemmer struct {
	cfg    *Config
	cache  *storage.LRU[string, string]
	hits   *xsync.Counter
	misses *xsync.Counter
}

type Stats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Cached int   `json:"cached"`
}

type Frequency struct {
	Stem  string `json:"stem"`
	Count int    `json:"count"`
}

func New(cfg ...*Config) (*Stemmer, error) {
	c := DefaultConfig()
	if len(cfg) > 0 {
		c = MergeConfigs(c, cfg[0])
	}
	if !tokenizer.IsSupportedLanguage(c.Language) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, c.Language)
	}
	if _, err := snowball.Stem("", string(c.Language), true); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedLanguage, c.Language)
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return &Stemmer{
		cfg:    c,
		cache:  storage.NewLRU[string, string](c.CacheSize),
		hits:   xsync.NewCounter(),
		misses: xsync.NewCounter(),
	}, nil
}

func (s *Stemmer) Config() Config {
	return *s.cfg
}

// Stem a single word.
func (s *Stemmer) Stem(word string) string {
	if stemmed, ok := s.cache.Get(word); ok {
		s.hits.Inc()
		return stemmed
	}
	s.misses.Inc()
	// The language was checked in New.
	stemmed, _ := snowball.Stem(word, string(s.cfg.Language), !s.cfg.KeepStopWords)
	s.cache.Put(word, stemmed)
	return stemmed
}

func (s *Stemmer) StemTokens(tokens []string) []string {
	stemmed := make([]string, len(tokens))
	for i, token := range tokens {
		stemmed[i] = s.Stem(token)
	}
	return stemmed
}

// Tokens splits text into words, drops stop words and stems the rest as the
// tokenizer config says.
func (s *Stemmer) Tokens(text string) ([]string, error) {
	tokenizerConfig := *s.cfg.TokenizerConfig
	stem := tokenizerConfig.EnableStemming
	tokenizerConfig.EnableStemming = false
	tokens, err := tokenizer.Split(tokenizer.TokenizeParams{
		Text:     text,
		Language: s.cfg.Language,
	}, tokenizerConfig)
	if err != nil {
		return nil, err
	}
	if stem {
		for i, token := range tokens {
			tokens[i] = s.Stem(token)
		}
	}
	return tokens, nil
}

// StemText returns the stems of text joined by single spaces.
func (s *Stemmer) StemText(text string) (string, error) {
	tokens, err := s.Tokens(text)
	if err != nil {
		return "", err
	}
	return strings.Join(tokens, " "), nil
}

type batchJob struct {
	pos  int
	text string
}

// StemBatch runs StemText over texts on the configured number of workers.
// Results keep the order of texts.
func (s *Stemmer) StemBatch(texts []string) ([]string, error) {
	start := time.Now()
	results := make([]string, len(texts))
	if len(texts) == 0 {
		return results, nil
	}
	var (
		once     sync.Once
		firstErr error
	)
	pool, err := gopool.NewPoolSimple(s.cfg.Workers, func(job gopool.Job[batchJob], workerID int) error {
		stemmed, err := s.StemText(job.Payload.text)
		if err != nil {
			once.Do(func() { firstErr = err })
			return err
		}
		results[job.Payload.pos] = stemmed
		return nil
	})
	if err != nil {
		return nil, err
	}
	for i, text := range texts {
		pool.Submit(batchJob{pos: i, text: text})
	}
	pool.StopAndWait()
	if firstErr != nil {
		return nil, firstErr
	}
	log.Info().Str("latency", fmt.Sprintf("%s", time.Since(start))).Int("texts", len(texts)).Int("workers", s.cfg.Workers).Msg("Stemmed batch...")
	return results, nil
}

// Frequencies counts how often every stem occurs in text.
func (s *Stemmer) Frequencies(text string) (map[string]int, error) {
	tokens, err := s.Tokens(text)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}
	return counts, nil
}

// TopFrequencies returns the n most frequent stems, most frequent first and
// alphabetical among equals. n <= 0 returns all of them.
func (s *Stemmer) TopFrequencies(text string, n int) ([]Frequency, error) {
	counts, err := s.Frequencies(text)
	if err != nil {
		return nil, err
	}
	pairs := lib.TopN(counts, n)
	frequencies := make([]Frequency, len(pairs))
	for i, p := range pairs {
		frequencies[i] = Frequency{Stem: p.Key, Count: p.Value}
	}
	return frequencies, nil
}

func (s *Stemmer) Stats() Stats {
	return Stats{
		Hits:   s.hits.Value(),
		Misses: s.misses.Value(),
		Cached: s.cache.Len(),
	}
}

func (s *Stemmer) CacheLen() int {
	return s.cache.Len()
}

func (s *Stemmer) ClearCache() {
	s.cache.Clear()
}
