package extract

import "regexp"

// rubyExtractor scans Ruby source. Modules map to the types bucket; the
// upper-snake constant rule intentionally skips CamelCase Ruby constants.
type rubyExtractor struct{}

var (
	rbRequire  = regexp.MustCompile(`(?m)^\s*require(?:_relative)?\s+['"]([^'"]+)['"]`)
	rbDef      = regexp.MustCompile(`(?m)^\s*def\s+(?:self\.)?([\w?!]+)`)
	rbClass    = regexp.MustCompile(`(?m)^\s*class\s+(\w+)`)
	rbModule   = regexp.MustCompile(`(?m)^\s*module\s+(\w+)`)
	rbConstant = regexp.MustCompile(`(?m)^\s*(\w+)\s*=`)
)

func (rubyExtractor) Extract(content string) Fragment {
	b := newFragmentBuilder()

	for _, m := range rbRequire.FindAllStringSubmatch(content, -1) {
		b.addImport(m[1])
	}

	for _, m := range rbDef.FindAllStringSubmatch(content, -1) {
		b.add(catFunction, m[1])
	}
	for _, m := range rbClass.FindAllStringSubmatch(content, -1) {
		b.add(catClass, m[1])
	}
	for _, m := range rbModule.FindAllStringSubmatch(content, -1) {
		b.add(catType, m[1])
	}
	for _, m := range rbConstant.FindAllStringSubmatch(content, -1) {
		if isUpperSnakeCase(m[1]) {
			b.add(catConstant, m[1])
		}
	}

	return b.build()
}
