package textutil

// DefaultSynonyms maps skill spellings to their canonical form.
var DefaultSynonyms = map[string]string{
	"cpp": "c++",
	"js":  "javascript",
}

var defaultNormalizer = NewNormalizer(DefaultSynonyms)

// Normalizer canonicalizes skill names.
type Normalizer struct {
	synonyms map[string]string
}

// NewNormalizer builds a Normalizer from a synonym table.
// Keys and values are case folded and chains (a->b, b->c) are collapsed so that
// Normalize stays idempotent. Entries taking part in a cycle are dropped.
func NewNormalizer(synonyms map[string]string) *Normalizer {
	folded := make(map[string]string, len(synonyms))
	for k, v := range synonyms {
		k, v = LowerTrim(k), LowerTrim(v)
		if k == "" || v == "" || k == v {
			continue
		}
		folded[k] = v
	}

	resolved := make(map[string]string, len(folded))
	for k := range folded {
		if v, ok := resolve(folded, k); ok {
			resolved[k] = v
		}
	}

	return &Normalizer{synonyms: resolved}
}

func resolve(table map[string]string, key string) (string, bool) {
	seen := map[string]bool{key: true}
	current := table[key]
	for {
		next, ok := table[current]
		if !ok {
			return current, true
		}
		if seen[current] {
			return "", false
		}
		seen[current] = true
		current = next
	}
}

// Normalize lowercases and trims s and applies the synonym table.
func (n *Normalizer) Normalize(s string) string {
	t := LowerTrim(s)
	if canonical, ok := n.synonyms[t]; ok {
		return canonical
	}
	return t
}

// Synonyms returns a copy of the resolved synonym table.
func (n *Normalizer) Synonyms() map[string]string {
	out := make(map[string]string, len(n.synonyms))
	for k, v := range n.synonyms {
		out[k] = v
	}
	return out
}

// NormalizeSkill normalizes s with DefaultSynonyms.
func NormalizeSkill(s string) string {
	return defaultNormalizer.Normalize(s)
}
