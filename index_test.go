package rustem

import (
	"bytes"
	"sort"
	"testing"
)

var corpus = map[int64]string{
	1: "Красивые книги стояли на полках",
	2: "Книгами полки заставлены",
	3: "Домами и вазами",
}

func newIndex(t *testing.T, cfg ...*Config) *Index {
	t.Helper()
	idx := NewIndex(newStemmer(t, cfg...))
	for id, text := range corpus {
		if err := idx.InsertWithID(id, text); err != nil {
			t.Fatal(err)
		}
	}
	return idx
}

func hitIDs(hits []Hit) []int64 {
	ids := make([]int64, len(hits))
	for i, h := range hits {
		ids[i] = h.Id
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestIndexSearch(t *testing.T) {
	idx := newIndex(t)
	cases := []struct {
		query string
		mode  Mode
		want  []int64
	}{
		{"книга", OR, []int64{1, 2}},
		{"книга полка", AND, []int64{1, 2}},
		{"книга ваза", AND, nil},
		{"книга ваза", OR, []int64{1, 2, 3}},
		{"стол", OR, nil},
	}
	for _, tc := range cases {
		hits, err := idx.Search(SearchParams{Query: tc.query, BoolMode: tc.mode})
		if err != nil {
			t.Fatal(err)
		}
		if got := hitIDs(hits); !equalIDs(got, tc.want) {
			t.Errorf("Search(%q, %s) = %v, want %v", tc.query, tc.mode, got, tc.want)
		}
		for i := 1; i < len(hits); i++ {
			if hits[i-1].Score < hits[i].Score {
				t.Errorf("Search(%q) not sorted by score", tc.query)
			}
		}
	}
}

func TestIndexExpandedSearch(t *testing.T) {
	idx := newIndex(t)
	hits, _ := idx.Search(SearchParams{Query: "пол", Prefix: true})
	if got := hitIDs(hits); !equalIDs(got, []int64{1, 2}) {
		t.Errorf("prefix Search(пол) = %v", got)
	}
	hits, _ = idx.Search(SearchParams{Query: "стол", Tolerance: 1})
	if got := hitIDs(hits); !equalIDs(got, []int64{1}) {
		t.Errorf("fuzzy Search(стол) = %v", got)
	}
	hits, _ = idx.Search(SearchParams{Query: "стол"})
	if len(hits) != 0 {
		t.Errorf("exact Search(стол) = %v", hitIDs(hits))
	}
}

func TestIndexSuggest(t *testing.T) {
	idx := newIndex(t)
	if got := idx.Suggest("КНИ", 0); len(got) != 1 || got[0] != "книг" {
		t.Errorf("Suggest(КНИ) = %q", got)
	}
	if got := idx.Suggest("", 0); got != nil {
		t.Errorf("Suggest(\"\") = %q", got)
	}
	idx.Delete(1)
	idx.Delete(2)
	if got := idx.Suggest("кни", 0); len(got) != 0 {
		t.Errorf("Suggest after delete = %q", got)
	}
}

func TestIndexLimit(t *testing.T) {
	idx := newIndex(t)
	hits, err := idx.Search(SearchParams{Query: "книга ваза", Limit: 2})
	if err != nil {
		t.Fatal(err)
	}
	if len(hits) != 2 {
		t.Errorf("Limit 2 returned %d hits", len(hits))
	}
	hits, _ = idx.Search(SearchParams{Query: "книга ваза", Offset: 2})
	if len(hits) != 1 {
		t.Errorf("Offset 2 returned %d hits", len(hits))
	}
}

func TestIndexInsertDelete(t *testing.T) {
	idx := newIndex(t)
	id, err := idx.Insert("Длинный стол")
	if err != nil {
		t.Fatal(err)
	}
	if idx.Len() != 4 {
		t.Fatalf("Len = %d, want 4", idx.Len())
	}
	hits, _ := idx.Search(SearchParams{Query: "столы"})
	if !equalIDs(hitIDs(hits), []int64{id}) {
		t.Errorf("Search(столы) = %v, want [%d]", hitIDs(hits), id)
	}

	if !idx.Delete(1) || idx.Delete(1) {
		t.Error("Delete(1) should succeed exactly once")
	}
	hits, _ = idx.Search(SearchParams{Query: "книга"})
	if !equalIDs(hitIDs(hits), []int64{2}) {
		t.Errorf("after delete Search(книга) = %v", hitIDs(hits))
	}

	// Re-inserting an id replaces the old document.
	if err := idx.InsertWithID(2, "вазы"); err != nil {
		t.Fatal(err)
	}
	hits, _ = idx.Search(SearchParams{Query: "книга"})
	if len(hits) != 0 {
		t.Errorf("replaced document still found: %v", hitIDs(hits))
	}
}

func TestIndexSaveLoad(t *testing.T) {
	for _, compress := range []bool{false, true} {
		src := newIndex(t, &Config{Compress: compress})
		var buf bytes.Buffer
		if err := src.Save(&buf); err != nil {
			t.Fatal(err)
		}
		dst := NewIndex(newStemmer(t))
		if err := dst.Load(&buf); err != nil {
			t.Fatalf("Load (compress=%v): %v", compress, err)
		}
		if dst.Len() != len(corpus) {
			t.Errorf("loaded %d documents, want %d", dst.Len(), len(corpus))
		}
		hits, _ := dst.Search(SearchParams{Query: "книга полка", BoolMode: AND})
		if !equalIDs(hitIDs(hits), []int64{1, 2}) {
			t.Errorf("loaded index Search = %v", hitIDs(hits))
		}
	}
}
