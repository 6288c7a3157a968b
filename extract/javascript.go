package extract

import "regexp"

// scriptExtractor handles JavaScript and TypeScript. The TypeScript flag
// enables the interface and type-alias scans, which have no JS equivalent.
type scriptExtractor struct {
	typescript bool
}

var (
	jsImportFrom = regexp.MustCompile(`(?m)^\s*import\s+(?:type\s+)?[\w${},*\s]+?\s+from\s+['"]([^'"]+)['"]`)
	jsImportBare = regexp.MustCompile(`(?m)^\s*import\s+['"]([^'"]+)['"]`)
	jsRequire    = regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`)
	jsExportFrom = regexp.MustCompile(`(?m)^\s*export\s+(?:\*|\{[^}]*\})\s+from\s+['"]([^'"]+)['"]`)

	jsExportFunc      = regexp.MustCompile(`(?m)^\s*export\s+(?:default\s+)?(?:async\s+)?function\s*\*?\s*(\w+)`)
	jsExportClass     = regexp.MustCompile(`(?m)^\s*export\s+(?:default\s+)?(?:abstract\s+)?class\s+(\w+)`)
	tsExportInterface = regexp.MustCompile(`(?m)^\s*export\s+interface\s+(\w+)`)
	tsExportType      = regexp.MustCompile(`(?m)^\s*export\s+type\s+(\w+)`)
	jsExportBinding   = regexp.MustCompile(`(?m)^\s*export\s+(?:const|let|var)\s+(\w+)`)

	jsFunctionDecl = regexp.MustCompile(`(?m)^\s*(?:async\s+)?function\s*\*?\s*(\w+)\s*\(`)
	jsArrowBinding = regexp.MustCompile(`(?m)^\s*(?:export\s+)?const\s+(\w+)\s*=\s*(?:async\s+)?(?:\([^)]*\)|\w+)\s*=>`)
	jsClassDecl    = regexp.MustCompile(`(?m)^\s*(?:abstract\s+)?class\s+(\w+)`)
	tsInterface    = regexp.MustCompile(`(?m)^\s*interface\s+(\w+)`)
	tsTypeAlias    = regexp.MustCompile(`(?m)^\s*type\s+(\w+)\s*=`)
	jsConstBinding = regexp.MustCompile(`(?m)^(?:export\s+)?const\s+(\w+)\s*=`)
)

func (e scriptExtractor) Extract(content string) Fragment {
	b := newFragmentBuilder()

	// Module references, order and repetition preserved
	for _, m := range jsImportFrom.FindAllStringSubmatch(content, -1) {
		b.addImport(m[1])
	}
	for _, m := range jsImportBare.FindAllStringSubmatch(content, -1) {
		b.addImport(m[1])
	}
	for _, m := range jsRequire.FindAllStringSubmatch(content, -1) {
		b.addImport(m[1])
	}
	for _, m := range jsExportFrom.FindAllStringSubmatch(content, -1) {
		b.addImport(m[1])
	}

	// Exported symbols, most specific bucket first
	for _, m := range jsExportFunc.FindAllStringSubmatch(content, -1) {
		b.addExported(catFunction, m[1])
	}
	for _, m := range jsExportClass.FindAllStringSubmatch(content, -1) {
		b.addExported(catClass, m[1])
	}
	if e.typescript {
		for _, m := range tsExportInterface.FindAllStringSubmatch(content, -1) {
			b.addExported(catInterface, m[1])
		}
		for _, m := range tsExportType.FindAllStringSubmatch(content, -1) {
			b.addExported(catType, m[1])
		}
	}
	for _, m := range jsExportBinding.FindAllStringSubmatch(content, -1) {
		if isUpperSnakeCase(m[1]) {
			b.addExported(catConstant, m[1])
		} else {
			b.add(catExport, m[1])
		}
	}

	// Secondary declaration scans catch what the export scans missed
	for _, m := range jsFunctionDecl.FindAllStringSubmatch(content, -1) {
		b.add(catFunction, m[1])
	}
	for _, m := range jsArrowBinding.FindAllStringSubmatch(content, -1) {
		b.add(catFunction, m[1])
	}
	for _, m := range jsClassDecl.FindAllStringSubmatch(content, -1) {
		b.add(catClass, m[1])
	}
	if e.typescript {
		for _, m := range tsInterface.FindAllStringSubmatch(content, -1) {
			b.add(catInterface, m[1])
		}
		for _, m := range tsTypeAlias.FindAllStringSubmatch(content, -1) {
			b.add(catType, m[1])
		}
	}
	for _, m := range jsConstBinding.FindAllStringSubmatch(content, -1) {
		if isUpperSnakeCase(m[1]) {
			b.add(catConstant, m[1])
		}
	}

	return b.build()
}
