// Package search turns free text plus a selected category into
// canonical remote-filter parameters. The resolver is pure: it never
// performs I/O, so every rule is testable against literal strings.
package search

import (
	"regexp"
	"strings"

	"filmreel/internal/models"
)

// Category selects how the query text is interpreted.
type Category string

const (
	ByTitle Category = "title"
	ByActor Category = "actor"
	ByMood  Category = "mood"
	ByGenre Category = "genre"
	ByYear  Category = "year"
)

// Filters is the canonical parameter set produced by resolution. Zero
// fields mean "no filter of that kind".
type Filters struct {
	// Query is a free-text search term (combined movie+TV search).
	Query string
	// GenreIDs is the union of all matched genre ids, order stable.
	GenreIDs []int
	// PersonQuery is text still needing person-id resolution.
	PersonQuery string
	// Year is a four-digit release year.
	Year string
}

// Empty reports whether resolution produced no usable filter.
func (f Filters) Empty() bool {
	return f.Query == "" && len(f.GenreIDs) == 0 && f.PersonQuery == "" && f.Year == ""
}

var yearPattern = regexp.MustCompile(`(19|20)\d\d`)

// moodGenres maps mood keywords to the genre ids they imply. A keyword
// contributes whenever it appears as a substring of the input.
var moodGenres = map[string][]int{
	"happy":       {35, 10751},
	"funny":       {35},
	"sad":         {18, 10749},
	"romantic":    {10749, 35},
	"excited":     {28, 12},
	"thrilled":    {53, 27},
	"scared":      {27, 53},
	"scary":       {27},
	"thoughtful":  {18, 878},
	"curious":     {99, 9648},
	"nostalgic":   {36, 10402},
	"adventurous": {12, 14},
	"chill":       {35, 10751},
}

// moodKeywordOrder keeps mood contributions deterministic.
var moodKeywordOrder = []string{
	"happy", "funny", "sad", "romantic", "excited", "thrilled",
	"scared", "scary", "thoughtful", "curious", "nostalgic",
	"adventurous", "chill",
}

// Resolve produces filters for the query text under the category.
// known is the genre list to match against (typically genres.Map.All).
func Resolve(query string, cat Category, known []models.Genre) Filters {
	text := strings.TrimSpace(query)

	switch cat {
	case ByActor:
		return Filters{PersonQuery: text}
	case ByGenre:
		return Filters{GenreIDs: matchGenres(text, known)}
	case ByMood:
		ids := matchGenres(text, known)
		lower := strings.ToLower(text)
		for _, kw := range moodKeywordOrder {
			if strings.Contains(lower, kw) {
				ids = append(ids, moodGenres[kw]...)
			}
		}
		return Filters{GenreIDs: dedupIDs(ids)}
	case ByYear:
		return Filters{Year: ExtractYear(text)}
	default:
		return Filters{Query: text}
	}
}

// ExtractYear returns the first four-digit year found anywhere in the
// text, or "" when none matches.
func ExtractYear(text string) string {
	return yearPattern.FindString(text)
}

// matchGenres collects every genre matched by the text: an exact
// full-string match, a substring containment either way (for text of
// three or more characters), or any whitespace token equal to a genre
// name. All matches are unioned, not reduced to a single best.
func matchGenres(text string, known []models.Genre) []int {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return nil
	}
	tokens := strings.Fields(lower)

	var ids []int
	for _, g := range known {
		name := strings.ToLower(g.Name)
		switch {
		case lower == name:
			ids = append(ids, g.ID)
		case len(lower) >= 3 && (strings.Contains(name, lower) || strings.Contains(lower, name)):
			ids = append(ids, g.ID)
		default:
			for _, tok := range tokens {
				if tok == name {
					ids = append(ids, g.ID)
					break
				}
			}
		}
	}
	return dedupIDs(ids)
}

func dedupIDs(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := ids[:0:0]
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
