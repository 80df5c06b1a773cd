package tokenizer

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	RUSSIAN Language = "ru"
)

var Languages = []Language{RUSSIAN}

// Anything that is not a Cyrillic letter or a digit separates tokens.
var splitRules = map[Language]*regexp.Regexp{
	RUSSIAN: regexp.MustCompile(`[^а-яё0-9]+`),
}

var (
	LanguageNotSupported = errors.New("language not supported")
)

type Language string

type Config struct {
	EnableStemming  bool `json:"enable_stemming"`
	EnableStopWords bool `json:"enable_stop_words"`
}

type TokenizeParams struct {
	Text            string
	Language        Language
	AllowDuplicates bool
}

type normalizeParams struct {
	token    string
	language Language
}

func IsSupportedLanguage(language Language) bool {
	_, ok := splitRules[language]
	return ok
}

// Stress marks are dropped; other combining marks (the breve of "й", the
// diaeresis of "ё") are recomposed by NFC.
func isStressMark(r rune) bool {
	return r == '\u0300' || r == '\u0301'
}

// Transformers keep state, so every call builds its own chain.
func newNormalizer() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.Predicate(isStressMark)), norm.NFC)
}

// Split returns the normalized tokens of params.Text in order of appearance.
func Split(params TokenizeParams, config Config) ([]string, error) {
	if !IsSupportedLanguage(params.Language) {
		return nil, LanguageNotSupported
	}
	text, _, err := transform.String(newNormalizer(), strings.ToLower(params.Text))
	if err != nil {
		return nil, err
	}
	var tokens []string
	for _, token := range splitRules[params.Language].Split(text, -1) {
		normParams := normalizeParams{
			token:    token,
			language: params.Language,
		}
		if normToken := normalizeToken(&normParams, &config); normToken != "" {
			tokens = append(tokens, normToken)
		}
	}
	return tokens, nil
}

// Tokenize counts the tokens of params.Text into tokens. Without
// AllowDuplicates every distinct token is counted once.
func Tokenize(params TokenizeParams, config Config, tokens map[string]int) error {
	splitText, err := Split(params, config)
	if err != nil {
		return err
	}
	for _, token := range splitText {
		if _, ok := tokens[token]; ok && !params.AllowDuplicates {
			continue
		}
		tokens[token]++
	}
	return nil
}

func normalizeToken(params *normalizeParams, config *Config) string {
	token := params.token
	if token == "" {
		return ""
	}
	if config.EnableStopWords && IsStopWord(params.language, token) {
		return ""
	}
	if stem, ok := stems[params.language]; config.EnableStemming && ok {
		token = stem(token, false)
	}
	return token
}
