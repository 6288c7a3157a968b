package extract

// Symbol categories used by the fragment builder's per-category deduplication.
const (
	catExport = iota
	catFunction
	catClass
	catInterface
	catConstant
	catType
)

// fragmentBuilder accumulates scan results for one file. Imports keep order
// and repetition; every other category records an identifier at most once.
type fragmentBuilder struct {
	frag Fragment
	seen [catType + 1]map[string]bool
}

func newFragmentBuilder() *fragmentBuilder {
	b := &fragmentBuilder{}
	for i := range b.seen {
		b.seen[i] = make(map[string]bool)
	}
	return b
}

func (b *fragmentBuilder) addImport(path string) {
	if path == "" {
		return
	}
	b.frag.Imports = append(b.frag.Imports, path)
}

func (b *fragmentBuilder) add(category int, name string) {
	if name == "" || b.seen[category][name] {
		return
	}
	b.seen[category][name] = true

	switch category {
	case catExport:
		b.frag.Exports = append(b.frag.Exports, name)
	case catFunction:
		b.frag.Functions = append(b.frag.Functions, name)
	case catClass:
		b.frag.Classes = append(b.frag.Classes, name)
	case catInterface:
		b.frag.Interfaces = append(b.frag.Interfaces, name)
	case catConstant:
		b.frag.Constants = append(b.frag.Constants, name)
	case catType:
		b.frag.Types = append(b.frag.Types, name)
	}
}

// addExported records a symbol both as an export and in its specific category.
func (b *fragmentBuilder) addExported(category int, name string) {
	b.add(catExport, name)
	if category != catExport {
		b.add(category, name)
	}
}

func (b *fragmentBuilder) build() Fragment {
	return b.frag
}

// isUpperSnakeCase reports whether a name follows the SCREAMING_SNAKE_CASE
// convention: at least one uppercase letter, and nothing but uppercase
// letters, digits, and underscores. Identifiers bound at top level are only
// classified as constants when this holds.
func isUpperSnakeCase(name string) bool {
	hasLetter := false
	for _, r := range name {
		switch {
		case r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}
	return hasLetter
}
