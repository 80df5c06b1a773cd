package tokenizer

import (
	"errors"
	"reflect"
	"testing"
)

var fullConfig = Config{EnableStemming: true, EnableStopWords: true}

func TestSplit(t *testing.T) {
	cases := []struct {
		name   string
		text   string
		config Config
		want   []string
	}{
		{"stems and drops stop words", "Красивые книги, и ДОМАМИ!", fullConfig, []string{"красив", "книг", "дом"}},
		{"stress marks removed", "за\u0301мок", fullConfig, []string{"замок"}},
		{"й survives normalization", "чайник", fullConfig, []string{"чайник"}},
		{"digits kept", "2024 год", fullConfig, []string{"2024", "год"}},
		{"latin is a separator", "hello мир", fullConfig, []string{"мир"}},
		{"stop words kept unstemmed", "и было", Config{EnableStemming: true}, []string{"и", "было"}},
		{"no stemming", "Домами", Config{}, []string{"домами"}},
		{"empty", "  ,  ", fullConfig, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Split(TokenizeParams{Text: tc.text, Language: RUSSIAN}, tc.config)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("Split(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tokens := make(map[string]int)
	err := Tokenize(TokenizeParams{Text: "дом дома домами", Language: RUSSIAN, AllowDuplicates: true}, fullConfig, tokens)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tokens, map[string]int{"дом": 3}) {
		t.Errorf("with duplicates: %v", tokens)
	}

	clear(tokens)
	err = Tokenize(TokenizeParams{Text: "дом дома домами вазы", Language: RUSSIAN}, fullConfig, tokens)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(tokens, map[string]int{"дом": 1, "ваз": 1}) {
		t.Errorf("without duplicates: %v", tokens)
	}
}

func TestUnsupportedLanguage(t *testing.T) {
	_, err := Split(TokenizeParams{Text: "running", Language: "en"}, fullConfig)
	if !errors.Is(err, LanguageNotSupported) {
		t.Fatalf("err = %v, want LanguageNotSupported", err)
	}
	if IsSupportedLanguage("en") || !IsSupportedLanguage(RUSSIAN) {
		t.Error("IsSupportedLanguage is wrong")
	}
}

func TestIsStopWord(t *testing.T) {
	if !IsStopWord(RUSSIAN, "ещё") || !IsStopWord(RUSSIAN, "еще") {
		t.Error("ещё should be a stop word")
	}
	if IsStopWord(RUSSIAN, "книга") || IsStopWord("en", "the") {
		t.Error("unexpected stop word")
	}
}
