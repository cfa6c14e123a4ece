package analytics

import (
	"regexp"
	"sort"
	"strings"

	"panorama/internal/model"
)

const (
	topWordLimit      = 30
	topPhraseLimit    = 20
	defaultMinPhrases = 2
	defaultSimilarity = 0.3
)

var nonWordPattern = regexp.MustCompile(`[^\w\s]`)

// stopWords are common English function words excluded from frequency
// counts and phrase extraction.
var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`
		the and for are but not you all any can had her was one our out
		his has have him how man new now old see two way who boy did its
		let put say she too use this that with from they were been them
		there their would could should about which when what your more
		some into than then only also just very much most other over
		such because while where after before between during through
		will each both few being does doing having until again these
		those same here why own off down under above once`) {
		stopWords[w] = struct{}{}
	}
}

func isStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// tokenize lowercases, strips punctuation to spaces, splits on
// whitespace, and drops tokens of length <= 2. Stop words survive this
// stage; callers filter them where it matters.
func tokenize(s string) []string {
	cleaned := nonWordPattern.ReplaceAllString(strings.ToLower(s), " ")
	var tokens []string
	for _, t := range strings.Fields(cleaned) {
		if len(t) > 2 {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// AnalyzeText builds word-frequency statistics over a set of free-text
// responses.
func AnalyzeText(texts []string) *model.TextStats {
	counts := make(map[string]int)
	total := 0
	for _, text := range texts {
		for _, token := range tokenize(text) {
			if isStopWord(token) {
				continue
			}
			counts[token]++
			total++
		}
	}

	words := make([]model.WordCount, 0, len(counts))
	for word, count := range counts {
		freq := 0.0
		if total > 0 {
			freq = float64(count) / float64(total)
		}
		words = append(words, model.WordCount{Word: word, Count: count, Frequency: freq})
	}
	// Descending by count, alphabetical within ties
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})

	top := words
	if len(top) > topWordLimit {
		top = top[:topWordLimit]
	}

	return &model.TextStats{
		Words:         words,
		TopWords:      top,
		TotalTokens:   total,
		DistinctWords: len(counts),
	}
}

// ExtractPhrases slides 2- and 3-word windows over each tokenized
// response and counts phrases whose words are all content words.
// Phrases seen fewer than minCount times are dropped (default 2);
// the top 20 by count are returned.
func ExtractPhrases(texts []string, minCount int) []model.PhraseCount {
	if minCount <= 0 {
		minCount = defaultMinPhrases
	}

	counts := make(map[string]int)
	for _, text := range texts {
		tokens := tokenize(text)
		for _, size := range []int{2, 3} {
			for i := 0; i+size <= len(tokens); i++ {
				window := tokens[i : i+size]
				if containsStopWord(window) {
					continue
				}
				counts[strings.Join(window, " ")]++
			}
		}
	}

	phrases := make([]model.PhraseCount, 0, len(counts))
	for phrase, count := range counts {
		if count >= minCount {
			phrases = append(phrases, model.PhraseCount{Phrase: phrase, Count: count})
		}
	}
	sort.Slice(phrases, func(i, j int) bool {
		if phrases[i].Count != phrases[j].Count {
			return phrases[i].Count > phrases[j].Count
		}
		return phrases[i].Phrase < phrases[j].Phrase
	})
	if len(phrases) > topPhraseLimit {
		phrases = phrases[:topPhraseLimit]
	}
	return phrases
}

func containsStopWord(words []string) bool {
	for _, w := range words {
		if isStopWord(w) {
			return true
		}
	}
	return false
}

// GroupSimilar clusters responses greedily by Jaccard similarity of
// their content-word sets. Each response joins the first existing
// group whose representative (first member) meets the threshold
// (default 0.3), otherwise it starts a new group. Single pass, order
// dependent.
func GroupSimilar(texts []string, threshold float64) []model.ResponseGroup {
	if threshold <= 0 {
		threshold = defaultSimilarity
	}

	type group struct {
		representative map[string]struct{}
		responses      []string
	}

	var groups []*group
	for _, text := range texts {
		set := contentWordSet(text)

		joined := false
		for _, g := range groups {
			if jaccard(set, g.representative) >= threshold {
				g.responses = append(g.responses, text)
				joined = true
				break
			}
		}
		if !joined {
			groups = append(groups, &group{representative: set, responses: []string{text}})
		}
	}

	out := make([]model.ResponseGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, model.ResponseGroup{Responses: g.responses})
	}
	return out
}

func contentWordSet(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, token := range tokenize(text) {
		if !isStopWord(token) {
			set[token] = struct{}{}
		}
	}
	return set
}

// jaccard is |A∩B| / |A∪B|, 0 when either set is empty so blank
// responses never cluster together.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if _, ok := b[w]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}
