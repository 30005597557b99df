package parser

// Balance holds raw bracket counts. The count is purely lexical: brackets in
// strings and comments are counted too.
type Balance struct {
	OpenBraces  int `json:"open_braces"`
	CloseBraces int `json:"close_braces"`
	OpenParens  int `json:"open_parens"`
	CloseParens int `json:"close_parens"`
}

// Balanced reports equal open/close counts for both bracket kinds.
func (b Balance) Balanced() bool {
	return b.OpenBraces == b.CloseBraces && b.OpenParens == b.CloseParens
}

// CheckBalance counts braces and parentheses in content.
func CheckBalance(content []byte) Balance {
	var b Balance
	for _, c := range content {
		switch c {
		case '{':
			b.OpenBraces++
		case '}':
			b.CloseBraces++
		case '(':
			b.OpenParens++
		case ')':
			b.CloseParens++
		}
	}
	return b
}
