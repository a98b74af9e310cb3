// Package search is an in-memory prefix index over team and player names.
package search

import (
	"cmp"
	"slices"
	"strings"
	"unicode"
)

type Kind string

const (
	KindTeam   Kind = "team"
	KindPlayer Kind = "player"
)

// Entry is one searchable name.
type Entry struct {
	ID   string
	Name string
	Kind Kind
}

type Result struct {
	Entry
	Rank int
}

// Ranks, best first.
const (
	RankExact = iota
	RankPrefix
	RankToken
)

type indexed struct {
	entry      Entry
	normalized string
	tokens     []string
}

// Index answers token-prefix queries. It is immutable after NewIndex and safe for concurrent use.
type Index struct {
	entries []indexed
}

func NewIndex(teams []Entry, players []Entry) *Index {
	idx := &Index{entries: make([]indexed, 0, len(teams)+len(players))}
	add := func(entries []Entry, kind Kind) {
		for _, e := range entries {
			tokens := Tokenize(e.Name)
			if len(tokens) == 0 {
				continue
			}
			e.Kind = kind
			idx.entries = append(idx.entries, indexed{
				entry:      e,
				normalized: strings.Join(tokens, " "),
				tokens:     tokens,
			})
		}
	}
	add(teams, KindTeam)
	add(players, KindPlayer)
	return idx
}

func (i *Index) Len() int {
	if i == nil {
		return 0
	}
	return len(i.entries)
}

// Query returns entries whose name tokens cover every query token by prefix.
// Results are ordered by rank, then teams before players, then name. limit <= 0 means no limit.
func (i *Index) Query(q string, limit int) []Result {
	queryTokens := Tokenize(q)
	if i == nil || len(queryTokens) == 0 {
		return []Result{}
	}
	normalizedQuery := strings.Join(queryTokens, " ")

	results := make([]Result, 0)
	for _, e := range i.entries {
		if !coversAll(e.tokens, queryTokens) {
			continue
		}
		rank := RankToken
		switch {
		case e.normalized == normalizedQuery:
			rank = RankExact
		case strings.HasPrefix(e.normalized, normalizedQuery):
			rank = RankPrefix
		}
		results = append(results, Result{Entry: e.entry, Rank: rank})
	}

	slices.SortStableFunc(results, func(a, b Result) int {
		if c := cmp.Compare(a.Rank, b.Rank); c != 0 {
			return c
		}
		if c := cmp.Compare(kindOrder(a.Kind), kindOrder(b.Kind)); c != 0 {
			return c
		}
		if c := cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Tokenize lower-cases s and splits it on anything that is not a letter or digit.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func coversAll(nameTokens, queryTokens []string) bool {
	for _, q := range queryTokens {
		if !slices.ContainsFunc(nameTokens, func(n string) bool { return strings.HasPrefix(n, q) }) {
			return false
		}
	}
	return true
}

func kindOrder(k Kind) int {
	if k == KindTeam {
		return 0
	}
	return 1
}
