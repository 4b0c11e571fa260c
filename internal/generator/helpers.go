package generator

import "strings"

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = []rune(strings.ToLower(string(r[0])))[0]
	return string(r)
}

// receiverName is the one-letter receiver used by generated methods.
func receiverName(typ string) string {
	return string([]rune(lowerFirst(typ))[:1])
}

// pickString sets dst to the first non-nil candidate, if any.
func pickString(dst *string, candidates ...*string) {
	for _, c := range candidates {
		if c != nil {
			*dst = *c
			return
		}
	}
}

func pickBool(dst *bool, candidates ...*bool) {
	for _, c := range candidates {
		if c != nil {
			*dst = *c
			return
		}
	}
}
