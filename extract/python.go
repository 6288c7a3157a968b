package extract

import "regexp"

// pythonExtractor scans Python source. Python has no export keyword, so the
// exports bucket stays empty; top-level defs and classes are recorded
// directly.
type pythonExtractor struct{}

var (
	pyImport     = regexp.MustCompile(`(?m)^\s*import\s+([\w.]+)`)
	pyFromImport = regexp.MustCompile(`(?m)^\s*from\s+([\w.]+)\s+import\b`)
	pyDef        = regexp.MustCompile(`(?m)^(?:async\s+)?def\s+(\w+)\s*\(`)
	pyClass      = regexp.MustCompile(`(?m)^class\s+(\w+)`)
	pyConstant   = regexp.MustCompile(`(?m)^(\w+)\s*(?::[^=\n]+)?=`)
)

func (pythonExtractor) Extract(content string) Fragment {
	b := newFragmentBuilder()

	for _, m := range pyImport.FindAllStringSubmatch(content, -1) {
		b.addImport(m[1])
	}
	for _, m := range pyFromImport.FindAllStringSubmatch(content, -1) {
		b.addImport(m[1])
	}

	// Unindented defs and classes only; methods belong to their class
	for _, m := range pyDef.FindAllStringSubmatch(content, -1) {
		b.add(catFunction, m[1])
	}
	for _, m := range pyClass.FindAllStringSubmatch(content, -1) {
		b.add(catClass, m[1])
	}

	for _, m := range pyConstant.FindAllStringSubmatch(content, -1) {
		if isUpperSnakeCase(m[1]) {
			b.add(catConstant, m[1])
		}
	}

	return b.build()
}
