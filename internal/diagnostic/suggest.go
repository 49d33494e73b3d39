package diagnostic

import "github.com/xrash/smetrics"

// jaroWinklerBoostThreshold and jaroWinklerPrefixSize are the
// conventional Winkler parameters: names sharing a long common prefix
// score higher, capped at a 4-character prefix.
const (
	jaroWinklerBoostThreshold = 0.7
	jaroWinklerPrefixSize     = 4
)

// suggestThreshold is spec.md §7's cutoff: "typo suggestion via
// Jaro-Winkler > 0.75 over a built-in lexicon".
const suggestThreshold = 0.75

// Suggest finds the closest match to name in lexicon by Jaro-Winkler
// similarity, returning it only if the score clears suggestThreshold —
// below that, a suggestion is more likely to mislead than help, so
// EUndefinedVariable/EUnknownFunction fall back to no hint at all.
func Suggest(name string, lexicon []string) (string, bool) {
	best := ""
	bestScore := 0.0
	for _, candidate := range lexicon {
		if candidate == name {
			continue
		}
		score := smetrics.JaroWinkler(name, candidate, jaroWinklerBoostThreshold, jaroWinklerPrefixSize)
		if score > bestScore {
			bestScore = score
			best = candidate
		}
	}
	if bestScore > suggestThreshold {
		return best, true
	}
	return "", false
}
