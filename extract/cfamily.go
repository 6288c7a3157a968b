package extract

import "regexp"

// cFamilyExtractor scans C and C++ source. Function detection is the weakest
// heuristic here: a name followed by an argument list and an opening brace at
// the start of a line. #define names count as constants only when
// SCREAMING_SNAKE_CASE, which also filters out function-like macros' lowercase
// helpers.
type cFamilyExtractor struct{}

var (
	cInclude  = regexp.MustCompile(`(?m)^\s*#include\s*[<"]([^>"]+)[>"]`)
	cDefine   = regexp.MustCompile(`(?m)^\s*#define\s+(\w+)`)
	cppClass  = regexp.MustCompile(`(?m)^\s*(?:template\s*<[^>]*>\s*)?class\s+(\w+)`)
	cStruct   = regexp.MustCompile(`(?m)^\s*(?:typedef\s+)?struct\s+(\w+)`)
	cTypedef  = regexp.MustCompile(`(?m)^\s*typedef\s+[^;{]+?(\w+)\s*;`)
	cEnum     = regexp.MustCompile(`(?m)^\s*(?:typedef\s+)?enum\s+(\w+)`)
	cFunction = regexp.MustCompile(`(?m)^[A-Za-z_][\w:<>,\s\*&]*?[\s\*]([A-Za-z_]\w*)\s*\([^;{]*\)\s*(?:const\s*)?\{`)
	cConst    = regexp.MustCompile(`(?m)^\s*(?:static\s+)?const\s+\w+[\w\s\*]*?\b(\w+)\s*=`)
)

func (cFamilyExtractor) Extract(content string) Fragment {
	b := newFragmentBuilder()

	for _, m := range cInclude.FindAllStringSubmatch(content, -1) {
		b.addImport(m[1])
	}

	for _, m := range cFunction.FindAllStringSubmatch(content, -1) {
		b.add(catFunction, m[1])
	}
	for _, m := range cppClass.FindAllStringSubmatch(content, -1) {
		b.add(catClass, m[1])
	}
	for _, m := range cStruct.FindAllStringSubmatch(content, -1) {
		b.add(catType, m[1])
	}
	for _, m := range cEnum.FindAllStringSubmatch(content, -1) {
		b.add(catType, m[1])
	}
	for _, m := range cTypedef.FindAllStringSubmatch(content, -1) {
		b.add(catType, m[1])
	}

	for _, m := range cDefine.FindAllStringSubmatch(content, -1) {
		if isUpperSnakeCase(m[1]) {
			b.add(catConstant, m[1])
		}
	}
	for _, m := range cConst.FindAllStringSubmatch(content, -1) {
		if isUpperSnakeCase(m[1]) {
			b.add(catConstant, m[1])
		}
	}

	return b.build()
}
