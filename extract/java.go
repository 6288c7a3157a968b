package extract

import "regexp"

// javaExtractor scans Java (and, approximately, Kotlin). Public top-level
// declarations are recorded as exports; enums land in the types bucket.
type javaExtractor struct{}

var (
	javaImport = regexp.MustCompile(`(?m)^\s*import\s+(?:static\s+)?([\w.]+(?:\.\*)?)\s*;?\s*$`)

	javaClass     = regexp.MustCompile(`(?m)^\s*(public\s+)?(?:abstract\s+|final\s+|open\s+|data\s+)*class\s+(\w+)`)
	javaInterface = regexp.MustCompile(`(?m)^\s*(public\s+)?interface\s+(\w+)`)
	javaEnum      = regexp.MustCompile(`(?m)^\s*(public\s+)?enum\s+(\w+)`)
	javaMethod    = regexp.MustCompile(`(?m)^\s+(?:public|protected|private)\s+(?:static\s+|final\s+|synchronized\s+)*[\w<>\[\],\s]+?\s(\w+)\s*\(`)
	kotlinFun     = regexp.MustCompile(`(?m)^\s*(?:public\s+|private\s+|internal\s+)?(?:suspend\s+)?fun\s+(\w+)`)
	javaConstant  = regexp.MustCompile(`(?m)\bstatic\s+final\s+[\w<>\[\],\s]+?\s(\w+)\s*=`)
)

func (javaExtractor) Extract(content string) Fragment {
	b := newFragmentBuilder()

	for _, m := range javaImport.FindAllStringSubmatch(content, -1) {
		b.addImport(m[1])
	}

	for _, m := range javaClass.FindAllStringSubmatch(content, -1) {
		if m[1] != "" {
			b.addExported(catClass, m[2])
		} else {
			b.add(catClass, m[2])
		}
	}
	for _, m := range javaInterface.FindAllStringSubmatch(content, -1) {
		if m[1] != "" {
			b.addExported(catInterface, m[2])
		} else {
			b.add(catInterface, m[2])
		}
	}
	for _, m := range javaEnum.FindAllStringSubmatch(content, -1) {
		if m[1] != "" {
			b.addExported(catType, m[2])
		} else {
			b.add(catType, m[2])
		}
	}

	for _, m := range javaMethod.FindAllStringSubmatch(content, -1) {
		b.add(catFunction, m[1])
	}
	for _, m := range kotlinFun.FindAllStringSubmatch(content, -1) {
		b.add(catFunction, m[1])
	}

	for _, m := range javaConstant.FindAllStringSubmatch(content, -1) {
		if isUpperSnakeCase(m[1]) {
			b.add(catConstant, m[1])
		}
	}

	return b.build()
}
