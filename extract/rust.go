package extract

import "regexp"

// rustExtractor scans Rust source. Traits map to the interfaces bucket,
// structs and enums to types, and pub items are additionally recorded as
// exports.
type rustExtractor struct{}

var (
	rsUse = regexp.MustCompile(`(?m)^\s*use\s+([\w:]+)`)

	rsFn     = regexp.MustCompile(`(?m)^\s*(pub(?:\([^)]*\))?\s+)?(?:async\s+)?(?:unsafe\s+)?fn\s+(\w+)`)
	rsStruct = regexp.MustCompile(`(?m)^\s*(pub(?:\([^)]*\))?\s+)?struct\s+(\w+)`)
	rsEnum   = regexp.MustCompile(`(?m)^\s*(pub(?:\([^)]*\))?\s+)?enum\s+(\w+)`)
	rsTrait  = regexp.MustCompile(`(?m)^\s*(pub(?:\([^)]*\))?\s+)?trait\s+(\w+)`)
	rsType   = regexp.MustCompile(`(?m)^\s*(pub(?:\([^)]*\))?\s+)?type\s+(\w+)\s*=`)
	rsConst  = regexp.MustCompile(`(?m)^\s*(pub(?:\([^)]*\))?\s+)?(?:const|static)\s+(\w+)\s*:`)
)

func (rustExtractor) Extract(content string) Fragment {
	b := newFragmentBuilder()

	for _, m := range rsUse.FindAllStringSubmatch(content, -1) {
		b.addImport(m[1])
	}

	addItem := func(matches [][]string, category int, constantRule bool) {
		for _, m := range matches {
			name := m[2]
			if constantRule && !isUpperSnakeCase(name) {
				continue
			}
			if m[1] != "" {
				b.addExported(category, name)
			} else {
				b.add(category, name)
			}
		}
	}

	addItem(rsFn.FindAllStringSubmatch(content, -1), catFunction, false)
	addItem(rsTrait.FindAllStringSubmatch(content, -1), catInterface, false)
	addItem(rsStruct.FindAllStringSubmatch(content, -1), catType, false)
	addItem(rsEnum.FindAllStringSubmatch(content, -1), catType, false)
	addItem(rsType.FindAllStringSubmatch(content, -1), catType, false)
	addItem(rsConst.FindAllStringSubmatch(content, -1), catConstant, true)

	return b.build()
}
