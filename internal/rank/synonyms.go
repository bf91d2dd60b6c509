package rank

import "slices"

const (
	directSynonymScore = 0.9
	sharedSynonymScore = 0.8
)

var defaultTitleSynonyms = map[string][]string{
	"ux designer":          {"user experience designer", "product designer", "interaction designer"},
	"ui designer":          {"user interface designer", "visual designer", "product designer"},
	"product designer":     {"ux designer", "ui designer", "user experience designer"},
	"senior ux designer":   {"senior product designer", "lead ux designer"},
	"frontend developer":   {"front-end developer", "ui developer", "web developer"},
	"backend developer":    {"back-end developer", "server-side developer"},
	"full stack developer": {"fullstack developer", "full-stack developer"},
	"data scientist":       {"machine learning engineer", "data analyst"},
	"software engineer":    {"software developer", "programmer"},
	"design manager":       {"design lead", "head of design"},
	"engineering manager":  {"engineering lead", "tech lead"},
}

// Synonyms is an immutable title-synonym table keyed by lowercase
// canonical title. Build it once at start-up and share it.
type Synonyms struct {
	m map[string][]string
}

func DefaultSynonyms() *Synonyms {
	return NewSynonyms(nil)
}

// NewSynonyms copies the default table and merges extra into it. Keys and
// entries are lowercased; entries for an existing key are appended.
func NewSynonyms(extra map[string][]string) *Synonyms {
	m := make(map[string][]string, len(defaultTitleSynonyms)+len(extra))
	add := func(src map[string][]string) {
		for k, vs := range src {
			k = norm(k)
			if k == "" {
				continue
			}
			for _, v := range vs {
				v = norm(v)
				if v == "" || slices.Contains(m[k], v) {
					continue
				}
				m[k] = append(m[k], v)
			}
		}
	}
	add(defaultTitleSynonyms)
	add(extra)
	return &Synonyms{m: m}
}

func (s *Synonyms) Lookup(title string) []string {
	if s == nil {
		return nil
	}
	return slices.Clone(s.m[norm(title)])
}

func (s *Synonyms) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// Score compares two already-lowercased titles: 0.9 when one lists the
// other, 0.8 when their lists overlap, else 0.
func (s *Synonyms) Score(a, b string) float64 {
	if s == nil {
		return 0
	}
	aSyn := s.m[a]
	bSyn := s.m[b]

	if slices.Contains(aSyn, b) || slices.Contains(bSyn, a) {
		return directSynonymScore
	}
	for _, syn := range aSyn {
		if slices.Contains(bSyn, syn) {
			return sharedSynonymScore
		}
	}
	return 0
}
