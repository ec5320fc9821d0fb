// Package fuzzy ranks directory entries against a typed search query with
// typo tolerance.
package fuzzy

import (
	"strings"
	"unicode"
)

// LevenshteinDistance returns the number of single-rune insertions,
// deletions or substitutions that turn s1 into s2, after normalization.
func LevenshteinDistance(s1, s2 string) int {
	r1 := []rune(normalize(s1))
	r2 := []rune(normalize(s2))
	if len(r1) == 0 {
		return len(r2)
	}
	if len(r2) == 0 {
		return len(r1)
	}

	// Two rolling rows are enough.
	prev := make([]int, len(r2)+1)
	curr := make([]int, len(r2)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(r1); i++ {
		curr[0] = i
		for j := 1; j <= len(r2); j++ {
			cost := 1
			if r1[i-1] == r2[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(r2)]
}

// Threshold is the edit distance tolerated for a query of this length.
func Threshold(query string) int {
	n := len([]rune(normalize(query)))
	switch {
	case n <= 3:
		return 1
	case n >= 8:
		return 3
	default:
		return 2
	}
}

// Match reports whether query matches text by substring, word prefix, or a
// word within threshold edits.
func Match(query, text string, threshold int) bool {
	query = normalize(query)
	text = normalize(text)
	if query == "" {
		return true
	}
	if strings.Contains(text, query) {
		return true
	}
	for _, word := range strings.Fields(text) {
		if strings.HasPrefix(word, query) {
			return true
		}
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
	}
	return false
}

// MatchUser checks the query against a user's full name and email.
func MatchUser(query, fullName, email string) bool {
	threshold := Threshold(query)
	return Match(query, fullName, threshold) || Match(query, localPart(email), threshold) ||
		strings.Contains(normalize(email), normalize(query))
}

// UserScore ranks a user for query. Higher is more relevant; name hits
// outrank email hits.
func UserScore(query, fullName, email string) float64 {
	query = normalize(query)
	if query == "" {
		return 0
	}
	score := 0.0

	name := normalize(fullName)
	switch {
	case name == query:
		score += 150
	case strings.Contains(name, query):
		score += 100
		if containsWord(name, query) {
			score += 40
		}
	default:
		for _, word := range strings.Fields(name) {
			if strings.HasPrefix(word, query) {
				score += 60
				continue
			}
			if dist := LevenshteinDistance(query, word); dist <= Threshold(query) {
				score += 50 - float64(dist)*15
			}
		}
	}

	mail := normalize(email)
	local := localPart(mail)
	switch {
	case local == query:
		score += 80
	case strings.HasPrefix(local, query):
		score += 50
	case strings.Contains(mail, query):
		score += 30
	}
	return score
}

func localPart(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return email
}

// normalize lowercases, folds accents and collapses whitespace.
func normalize(s string) string {
	s = removeAccents(strings.ToLower(s))
	return strings.Join(strings.Fields(s), " ")
}

func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}

func removeAccents(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		switch r {
		case 'á', 'à', 'ả', 'ã', 'ạ', 'ă', 'ắ', 'ằ', 'ẳ', 'ẵ', 'ặ', 'â', 'ấ', 'ầ', 'ẩ', 'ẫ', 'ậ', 'ä', 'å':
			b.WriteRune('a')
		case 'é', 'è', 'ẻ', 'ẽ', 'ẹ', 'ê', 'ế', 'ề', 'ể', 'ễ', 'ệ', 'ë':
			b.WriteRune('e')
		case 'í', 'ì', 'ỉ', 'ĩ', 'ị', 'ï', 'î':
			b.WriteRune('i')
		case 'ó', 'ò', 'ỏ', 'õ', 'ọ', 'ô', 'ố', 'ồ', 'ổ', 'ỗ', 'ộ', 'ơ', 'ớ', 'ờ', 'ở', 'ỡ', 'ợ', 'ö':
			b.WriteRune('o')
		case 'ú', 'ù', 'ủ', 'ũ', 'ụ', 'ư', 'ứ', 'ừ', 'ử', 'ữ', 'ự', 'ü', 'û':
			b.WriteRune('u')
		case 'ý', 'ỳ', 'ỷ', 'ỹ', 'ỵ':
			b.WriteRune('y')
		case 'đ':
			b.WriteRune('d')
		case 'ç':
			b.WriteRune('c')
		case 'ñ':
			b.WriteRune('n')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
