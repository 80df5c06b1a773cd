package web

import (
	"errors"

	"github.com/oarkflow/rustem"
)

// Upper bound on words per stem request.
const MaxWords = 10000

var (
	errNoWords    = errors.New("words are required")
	errTooMany    = errors.New("too many words")
	errNoText     = errors.New("text is required")
	errNoQuery    = errors.New("q is required")
	errWrongMode  = errors.New("m must be AND or OR")
	errBadOffsets = errors.New("offset, size and tolerance must not be negative")
)

const defaultSuggestions = 10

type StemRequest struct {
	Words []string `json:"words"`
}

func (r *StemRequest) validate() error {
	if len(r.Words) == 0 {
		return errNoWords
	}
	if len(r.Words) > MaxWords {
		return errTooMany
	}
	return nil
}

type StemResult struct {
	Word string `json:"word"`
	Stem string `json:"stem"`
}

type TextRequest struct {
	Text string `json:"text"`
	Top  int    `json:"top"`
}

func (r *TextRequest) validate() error {
	if r.Text == "" {
		return errNoText
	}
	return nil
}

type Query struct {
	Query     string      `json:"q" query:"q"`
	Match     rustem.Mode `json:"m" query:"m"`
	Offset    int         `json:"o" query:"o"`
	Size      int         `json:"s" query:"s"`
	Tolerance int         `json:"t" query:"t"`
	Prefix    bool        `json:"p" query:"p"`
}

func (q *Query) validate() error {
	if q.Query == "" {
		return errNoQuery
	}
	switch q.Match {
	case "":
		q.Match = rustem.OR
	case rustem.AND, rustem.OR:
	default:
		return errWrongMode
	}
	if q.Offset < 0 || q.Size < 0 || q.Tolerance < 0 {
		return errBadOffsets
	}
	return nil
}

func (q *Query) params() rustem.SearchParams {
	return rustem.SearchParams{
		Query:     q.Query,
		BoolMode:  q.Match,
		Offset:    q.Offset,
		Limit:     q.Size,
		Tolerance: q.Tolerance,
		Prefix:    q.Prefix,
	}
}

type SuggestRequest struct {
	Size int `json:"s" query:"s"`
}

func (r *SuggestRequest) limit() int {
	if r.Size <= 0 {
		return defaultSuggestions
	}
	return r.Size
}
