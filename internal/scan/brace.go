package scan

// MatchBrace scans forward from the opening brace at open and returns the
// index of its matching closing brace. Depth only changes outside string and
// character literals; a backslash escapes exactly one following character
// wherever it appears. When the input ends before the brace closes, the
// length of the text is returned so truncated files still yield a usable
// span.
func MatchBrace(text string, open int) int {
	depth := 0
	inString := false
	inChar := false
	escaped := false

	for i := open; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		switch {
		case inString:
			if c == '"' {
				inString = false
			}
		case inChar:
			if c == '\'' {
				inChar = false
			}
		default:
			switch c {
			case '"':
				inString = true
			case '\'':
				inChar = true
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					return i
				}
			}
		}
	}
	return len(text)
}
