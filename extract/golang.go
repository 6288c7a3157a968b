package extract

import "regexp"

// goExtractor scans Go source. Capitalized top-level identifiers are treated
// as exported; structs and other type declarations land in the types bucket,
// interfaces in their own.
type goExtractor struct{}

var (
	goImportSingle = regexp.MustCompile(`(?m)^import\s+(?:\w+\s+)?"([^"]+)"`)
	goImportBlock  = regexp.MustCompile(`(?ms)^import\s*\((.*?)^\)`)
	goImportLine   = regexp.MustCompile(`"([^"]+)"`)

	goFuncDecl      = regexp.MustCompile(`(?m)^func\s+(?:\([^)]*\)\s+)?(\w+)\s*[(\[]`)
	goStructDecl    = regexp.MustCompile(`(?m)^type\s+(\w+)(?:\[[^\]]*\])?\s+struct\b`)
	goInterfaceDecl = regexp.MustCompile(`(?m)^type\s+(\w+)(?:\[[^\]]*\])?\s+interface\b`)
	goTypeDecl      = regexp.MustCompile(`(?m)^type\s+(\w+)(?:\[[^\]]*\])?\s+`)
	goConstSingle   = regexp.MustCompile(`(?m)^const\s+(\w+)`)
	goConstBlock    = regexp.MustCompile(`(?ms)^const\s*\((.*?)^\)`)
	goConstLine     = regexp.MustCompile(`(?m)^\s+(\w+)\b`)
)

func (goExtractor) Extract(content string) Fragment {
	b := newFragmentBuilder()

	for _, m := range goImportSingle.FindAllStringSubmatch(content, -1) {
		b.addImport(m[1])
	}
	for _, block := range goImportBlock.FindAllStringSubmatch(content, -1) {
		for _, m := range goImportLine.FindAllStringSubmatch(block[1], -1) {
			b.addImport(m[1])
		}
	}

	for _, m := range goFuncDecl.FindAllStringSubmatch(content, -1) {
		if isExportedGoName(m[1]) {
			b.addExported(catFunction, m[1])
		} else {
			b.add(catFunction, m[1])
		}
	}
	for _, m := range goInterfaceDecl.FindAllStringSubmatch(content, -1) {
		if isExportedGoName(m[1]) {
			b.addExported(catInterface, m[1])
		} else {
			b.add(catInterface, m[1])
		}
	}
	for _, m := range goStructDecl.FindAllStringSubmatch(content, -1) {
		if isExportedGoName(m[1]) {
			b.addExported(catType, m[1])
		} else {
			b.add(catType, m[1])
		}
	}
	// Remaining type declarations (aliases, named basics); interface and
	// struct names dedupe against the scans above via the types bucket.
	for _, m := range goTypeDecl.FindAllStringSubmatch(content, -1) {
		if b.seen[catInterface][m[1]] {
			continue
		}
		b.add(catType, m[1])
	}

	for _, m := range goConstSingle.FindAllStringSubmatch(content, -1) {
		if isUpperSnakeCase(m[1]) {
			b.add(catConstant, m[1])
		}
	}
	for _, block := range goConstBlock.FindAllStringSubmatch(content, -1) {
		for _, m := range goConstLine.FindAllStringSubmatch(block[1], -1) {
			if isUpperSnakeCase(m[1]) {
				b.add(catConstant, m[1])
			}
		}
	}

	return b.build()
}

func isExportedGoName(name string) bool {
	return name != "" && name[0] >= 'A' && name[0] <= 'Z'
}
