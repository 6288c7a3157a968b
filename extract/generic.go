package extract

import "strings"

// genericExtractor handles extensions no language strategy claims. It reports
// nothing structural, only whether the file appears to carry comments at all.
type genericExtractor struct{}

// commentTokens are scanned in order; the first hit wins.
var commentTokens = []string{"//", "/*", "<!--", "--", ";;"}

func (genericExtractor) Extract(content string) Fragment {
	return Fragment{HasComments: hasCommentTokens(content)}
}

func hasCommentTokens(content string) bool {
	for _, token := range commentTokens {
		if strings.Contains(content, token) {
			return true
		}
	}
	// A # at the start of a line is a comment in most config formats
	if strings.HasPrefix(content, "#") || strings.Contains(content, "\n#") {
		return true
	}
	return false
}
