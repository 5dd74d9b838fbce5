package speech

import "sort"

const DefaultVariant = "base"

// линейка whisper-моделей; имя идёт в тег /health
var variants = map[string]struct{}{
	"tiny":     {},
	"base":     {},
	"small":    {},
	"medium":   {},
	"large-v3": {},
}

func KnownVariant(name string) bool {
	_, ok := variants[name]
	return ok
}

func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
