package russian

import (
	"strings"
	"testing"
	"unicode/utf8"
)

var vocabulary = []struct {
	in, out string
}{
	{"вазы", "ваз"},
	{"книги", "книг"},
	{"красивая", "красив"},
	{"бегающий", "бега"},
	{"читаешь", "чита"},
	{"умываться", "умыва"},
	{"сделавши", "сдела"},
	{"длинный", "длин"},
	{"красивейший", "красив"},
	{"жестокость", "жесток"},
	{"говорила", "говор"},
	{"домами", "дом"},
	{"армии", "арм"},
	{"здоровье", "здоров"},
	{"радость", "радост"},
	{"писатели", "писател"},
	{"играющих", "игра"},
	{"бежать", "бежа"},
	{"вечера", "вечер"},
	{"столом", "стол"},
}

func TestStem(t *testing.T) {
	for _, tc := range vocabulary {
		if got := Stem(tc.in, true); got != tc.out {
			t.Errorf("Stem(%q) = %q, want %q", tc.in, got, tc.out)
		}
	}
}

func TestStemScenarios(t *testing.T) {
	cases := []struct {
		name, in, out string
	}{
		{"noun ending", "вазы", "ваз"},
		{"perfective gerund stops step one", "сделавши", "сдела"},
		{"reflexive and verb in one pass", "умываться", "умыва"},
		{"double н without superlative", "длинный", "длин"},
		{"superlative then undouble", "красивейший", "красив"},
		{"derivational in R2", "жестокость", "жесток"},
		{"derivational outside R2", "радость", "радост"},
		{"no vowels", "бвгд", "бвгд"},
		{"no vowels upper case", "ВКЛ", "вкл"},
		{"empty", "", ""},
		{"latin passes through", "hello", "hello"},
		{"digits pass through", "2024", "2024"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Stem(tc.in, true); got != tc.out {
				t.Errorf("Stem(%q) = %q, want %q", tc.in, got, tc.out)
			}
		})
	}
}

func TestStemAlreadyStemmed(t *testing.T) {
	for _, word := range []string{"дом", "стол", "ваз", "книг", "арм"} {
		if got := Stem(word, true); got != word {
			t.Errorf("Stem(%q) = %q, want it unchanged", word, got)
		}
	}
}

func TestStemCaseInsensitive(t *testing.T) {
	for _, tc := range vocabulary {
		lower := Stem(strings.ToLower(tc.in), true)
		upper := Stem(strings.ToUpper(tc.in), true)
		if lower != upper || lower != Stem(tc.in, true) {
			t.Errorf("case changed result for %q: lower=%q upper=%q", tc.in, lower, upper)
		}
	}
	if got := Stem("ДОМАМИ", true); got != "дом" {
		t.Errorf("Stem(ДОМАМИ) = %q, want дом", got)
	}
}

func TestStemYo(t *testing.T) {
	pairs := [][2]string{
		{"ёлка", "елка"},
		{"ЁЛКА", "ЕЛКА"},
		{"зелёный", "зеленый"},
		{"берёзами", "березами"},
	}
	for _, p := range pairs {
		if a, b := Stem(p[0], true), Stem(p[1], true); a != b {
			t.Errorf("Stem(%q) = %q but Stem(%q) = %q", p[0], a, p[1], b)
		}
	}
	if got := Stem("ёлка", true); got != "елк" {
		t.Errorf("Stem(ёлка) = %q, want елк", got)
	}
}

func TestStemPrefixAndLength(t *testing.T) {
	for _, tc := range vocabulary {
		in := normalize(tc.in)
		got := Stem(tc.in, true)
		if utf8.RuneCountInString(got) > utf8.RuneCountInString(in) {
			t.Errorf("Stem(%q) = %q grew the word", tc.in, got)
		}
		runes := []rune(in)
		prefix := ""
		for i, r := range runes {
			if isVowel(r) {
				prefix = string(runes[:i+1])
				break
			}
		}
		if !strings.HasPrefix(got, prefix) {
			t.Errorf("Stem(%q) = %q lost prefix %q", tc.in, got, prefix)
		}
	}
}

func TestStemStopWords(t *testing.T) {
	if got := Stem("было", false); got != "было" {
		t.Errorf("stop word was stemmed: %q", got)
	}
	if got := Stem("Было", false); got != "было" {
		t.Errorf("stop word not lowercased: %q", got)
	}
	if got := Stem("было", true); got != "был" {
		t.Errorf("Stem(было, true) = %q, want был", got)
	}
	if got := Stem("домами", false); got != "дом" {
		t.Errorf("regular word affected by stop word switch: %q", got)
	}
}

func BenchmarkStem(b *testing.B) {
	for i := 0; i < b.N; i++ {
		for _, tc := range vocabulary {
			Stem(tc.in, true)
		}
	}
}
