package rustem

import (
	"bytes"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/oarkflow/xid"

	"github.com/oarkflow/rustem/lib"
	"github.com/oarkflow/rustem/radix"
)

type SearchParams struct {
	Query     string     `json:"q"`
	BoolMode  Mode       `json:"m"`
	Relevance BM25Params `json:"relevance"`
	Offset    int        `json:"o"`
	Limit     int        `json:"s"`
	// Tolerance expands each query stem to indexed stems within that edit distance.
	Tolerance int `json:"t"`
	// Prefix expands each query stem to indexed stems starting with it.
	Prefix bool `json:"p"`
}

type Hit struct {
	Id    int64   `json:"id"`
	Score float64 `json:"score"`
}

// Index is an inverted index from stems to documents, scored with BM25.
type Index struct {
	mu           sync.RWMutex
	stemmer      *Stemmer
	postings     map[string]map[int64]int
	terms        *radix.Trie
	documents    map[int64]map[string]int
	fieldLengths map[int64]int
	totalLength  int
}

type snapshot struct {
	Documents map[int64]map[string]int `json:"documents"`
}

func NewIndex(stemmer *Stemmer) *Index {
	return &Index{
		stemmer:      stemmer,
		postings:     make(map[string]map[int64]int),
		terms:        radix.New(),
		documents:    make(map[int64]map[string]int),
		fieldLengths: make(map[int64]int),
	}
}

// Insert indexes text under a fresh id.
func (idx *Index) Insert(text string) (int64, error) {
	id := xid.New().Int64()
	return id, idx.InsertWithID(id, text)
}

// InsertWithID indexes text under id, replacing what was stored there.
func (idx *Index) InsertWithID(id int64, text string) error {
	tokens, err := idx.stemmer.Frequencies(text)
	if err != nil {
		return err
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.remove(id)
	idx.add(id, tokens)
	return nil
}

func (idx *Index) add(id int64, tokens map[string]int) {
	length := 0
	for token, count := range tokens {
		docs, ok := idx.postings[token]
		if !ok {
			docs = make(map[int64]int)
			idx.postings[token] = docs
			idx.terms.Insert(token)
		}
		docs[id] = count
		length += count
	}
	idx.documents[id] = tokens
	idx.fieldLengths[id] = length
	idx.totalLength += length
}

func (idx *Index) remove(id int64) bool {
	tokens, ok := idx.documents[id]
	if !ok {
		return false
	}
	for token := range tokens {
		docs := idx.postings[token]
		delete(docs, id)
		if len(docs) == 0 {
			delete(idx.postings, token)
			idx.terms.Delete(token)
		}
	}
	idx.totalLength -= idx.fieldLengths[id]
	delete(idx.fieldLengths, id)
	delete(idx.documents, id)
	return true
}

func (idx *Index) Delete(id int64) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	return idx.remove(id)
}

func (idx *Index) Len() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.documents)
}

// Search scores every document containing the query stems. In AND mode a
// document must contain all of them.
func (idx *Index) Search(params SearchParams) ([]Hit, error) {
	tokens, err := idx.stemmer.Tokens(params.Query)
	if err != nil {
		return nil, err
	}
	tokens = lib.Unique(tokens)
	relevance := MergeConfigs(&Config{Relevance: idx.stemmer.cfg.Relevance}, &Config{Relevance: params.Relevance}).Relevance

	idx.mu.RLock()
	docsCount := len(idx.documents)
	avgFieldLength := 0.0
	if docsCount > 0 {
		avgFieldLength = float64(idx.totalLength) / float64(docsCount)
	}
	scores := make(map[int64]float64)
	matched := make(map[int64]int)
	for _, token := range tokens {
		seen := make(map[int64]struct{})
		for _, term := range idx.expand(token, params) {
			docs := idx.postings[term]
			for id, count := range docs {
				tf := float64(count) / float64(idx.fieldLengths[id])
				scores[id] += lib.BM25(tf, len(docs), idx.fieldLengths[id], avgFieldLength, docsCount,
					relevance.K, relevance.B, relevance.D)
				if _, ok := seen[id]; !ok {
					seen[id] = struct{}{}
					matched[id]++
				}
			}
		}
	}
	idx.mu.RUnlock()

	hits := make([]Hit, 0, len(scores))
	for id, score := range scores {
		if params.BoolMode == AND && matched[id] != len(tokens) {
			continue
		}
		hits = append(hits, Hit{Id: id, Score: score})
	}
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		return hits[i].Id < hits[j].Id
	})
	if params.Limit > 0 || params.Offset > 0 {
		limit := params.Limit
		if limit <= 0 {
			limit = len(hits)
		}
		start, end := lib.Paginate(params.Offset, limit, len(hits))
		hits = hits[start:end]
	}
	return hits, nil
}

func (idx *Index) expand(token string, params SearchParams) []string {
	if params.Tolerance <= 0 && !params.Prefix {
		return []string{token}
	}
	return idx.terms.Find(radix.FindParams{Term: token, Tolerance: params.Tolerance, Prefix: params.Prefix})
}

// Suggest lists up to limit indexed stems starting with prefix. The prefix
// is lowercased but not stemmed.
func (idx *Index) Suggest(prefix string, limit int) []string {
	prefix = strings.ReplaceAll(strings.ToLower(prefix), "ё", "е")
	if prefix == "" {
		return nil
	}
	stems := idx.terms.Find(radix.FindParams{Term: prefix, Prefix: true})
	if limit > 0 && limit < len(stems) {
		stems = stems[:limit]
	}
	return stems
}

var gzipMagic = []byte{0x1f, 0x8b}

// Save writes a msgpack snapshot of the indexed documents, gzip compressed
// when the config asks for it.
func (idx *Index) Save(w io.Writer) error {
	idx.mu.RLock()
	data, err := lib.Serialize(snapshot{Documents: idx.documents})
	idx.mu.RUnlock()
	if err != nil {
		return err
	}
	if idx.stemmer.cfg.Compress {
		if data, err = lib.Compress(data); err != nil {
			return err
		}
	}
	_, err = w.Write(data)
	return err
}

// Load replaces the index content with a snapshot written by Save.
func (idx *Index) Load(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if bytes.HasPrefix(data, gzipMagic) {
		if data, err = lib.Decompress(data); err != nil {
			return err
		}
	}
	snap, err := lib.Deserialize[snapshot](data)
	if err != nil {
		return err
	}
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.postings = make(map[string]map[int64]int)
	idx.terms = radix.New()
	idx.documents = make(map[int64]map[string]int)
	idx.fieldLengths = make(map[int64]int)
	idx.totalLength = 0
	for id, tokens := range snap.Documents {
		idx.add(id, tokens)
	}
	return nil
}
