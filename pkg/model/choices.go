package model

import "strings"

// ParseChoices extracts the option literals from a full declared type of the
// form TYPE('a','b',...), e.g. enum('new','open','closed') or set('a','b').
// Options come back in declaration order. A doubled quote inside a literal
// ('it''s') unescapes to a single quote. When the text has no matching
// parenthesised body, the result is nil and the caller falls back to a plain
// text control.
func ParseChoices(fullType string) []string {
	open := strings.Index(fullType, "(")
	end := strings.LastIndex(fullType, ")")
	if open < 0 || end < 0 || end <= open {
		return nil
	}
	body := fullType[open+1 : end]

	var options []string
	for i := 0; i < len(body); {
		for i < len(body) && body[i] != '\'' {
			i++
		}
		if i >= len(body) {
			break
		}
		i++ // opening quote

		var literal strings.Builder
		for i < len(body) {
			if body[i] == '\'' {
				if i+1 < len(body) && body[i+1] == '\'' {
					literal.WriteByte('\'')
					i += 2
					continue
				}
				i++ // closing quote
				break
			}
			literal.WriteByte(body[i])
			i++
		}
		options = append(options, literal.String())
	}
	return options
}
