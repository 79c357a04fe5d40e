package calc

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	maxSuggestions  = 3
	maxEditDistance = 2
)

// Suggest returns up to three command names close to an unknown name,
// nearest first. Only word commands are considered; operator symbols are
// too short to rank meaningfully.
func Suggest(name string) []string {
	if name == "" {
		return nil
	}
	upper := strings.ToUpper(name)

	type candidate struct {
		name     string
		distance int
	}
	var found []candidate
	for _, word := range wordCommands() {
		d := fuzzy.LevenshteinDistance(upper, word)
		if d <= maxEditDistance || fuzzy.MatchFold(name, word) {
			found = append(found, candidate{name: word, distance: d})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].distance < found[j].distance
	})

	var out []string
	for _, c := range found {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, c.name)
	}
	return out
}

func wordCommands() []string {
	var words []string
	for _, name := range kindNames {
		if isASCIILetter(name[0]) {
			words = append(words, name)
		}
	}
	return words
}
