package russian

// Snowball Russian stop word list with "ё" folded into "е".
var stopWords = map[string]struct{}{}

func init() {
	for _, word := range []string{
		"и", "в", "во", "не", "что", "он", "на", "я", "с", "со", "как", "а", "то", "все",
		"она", "так", "его", "но", "да", "ты", "к", "у", "же", "вы", "за", "бы", "по",
		"только", "ее", "мне", "было", "вот", "от", "меня", "еще", "нет", "о", "из", "ему",
		"теперь", "когда", "даже", "ну", "вдруг", "ли", "если", "уже", "или", "ни", "быть",
		"был", "него", "до", "вас", "нибудь", "опять", "уж", "вам", "ведь", "там", "потом",
		"себя", "ничего", "ей", "может", "они", "тут", "где", "есть", "надо", "ней", "для",
		"мы", "тебя", "их", "чем", "была", "сам", "чтоб", "без", "будто", "чего", "раз",
		"тоже", "себе", "под", "будет", "ж", "тогда", "кто", "этот", "того", "потому",
		"этого", "какой", "совсем", "ним", "здесь", "этом", "один", "почти", "мой", "тем",
		"чтобы", "нее", "сейчас", "были", "куда", "зачем", "всех", "никогда", "можно", "при",
		"наконец", "два", "об", "другой", "хоть", "после", "над", "больше", "тот", "через",
		"эти", "нас", "про", "всего", "них", "какая", "много", "разве", "три", "эту", "моя",
		"впрочем", "хорошо", "свою", "этой", "перед", "иногда", "лучше", "чуть", "том",
		"нельзя", "такой", "им", "более", "всегда", "конечно", "всю", "между",
	} {
		stopWords[word] = struct{}{}
	}
}

// IsStopWord expects a lowercase word with "ё" already folded into "е".
func IsStopWord(word string) bool {
	_, ok := stopWords[word]
	return ok
}

// StopWords returns a copy of the stop word set.
func StopWords() map[string]struct{} {
	out := make(map[string]struct{}, len(stopWords))
	for w := range stopWords {
		out[w] = struct{}{}
	}
	return out
}
