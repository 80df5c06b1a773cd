package snowball

import (
	"testing"
)

func TestStem(t *testing.T) {
	for _, lang := range Languages() {
		got, err := Stem("книгами", lang, true)
		if err != nil {
			t.Fatalf("Stem(%s): %v", lang, err)
		}
		if got != "книг" {
			t.Errorf("Stem(книгами, %s) = %q, want книг", lang, got)
		}
	}
}

func TestStemUnknownLanguage(t *testing.T) {
	if _, err := Stem("running", "english", true); err == nil {
		t.Fatal("expected an error for an unsupported language")
	}
}
