package extract

import "regexp"

// shellExtractor scans shell scripts. Sourced files count as imports.
type shellExtractor struct{}

var (
	shSource   = regexp.MustCompile(`(?m)^\s*(?:source|\.)\s+(\S+)`)
	shFunction = regexp.MustCompile(`(?m)^\s*(?:function\s+)?([\w-]+)\s*\(\)\s*\{`)
	shFuncKw   = regexp.MustCompile(`(?m)^\s*function\s+([\w-]+)\s*\{`)
	shConstant = regexp.MustCompile(`(?m)^(?:readonly\s+|export\s+)?(\w+)=`)
)

func (shellExtractor) Extract(content string) Fragment {
	b := newFragmentBuilder()

	for _, m := range shSource.FindAllStringSubmatch(content, -1) {
		b.addImport(m[1])
	}

	for _, m := range shFunction.FindAllStringSubmatch(content, -1) {
		b.add(catFunction, m[1])
	}
	for _, m := range shFuncKw.FindAllStringSubmatch(content, -1) {
		b.add(catFunction, m[1])
	}

	for _, m := range shConstant.FindAllStringSubmatch(content, -1) {
		if isUpperSnakeCase(m[1]) {
			b.add(catConstant, m[1])
		}
	}

	return b.build()
}
