package enummap

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	identRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	prefixRe = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9_]*)?$`)
)

// Keys is an ordered, validated key specification. The key at index i names
// the i-th element of every member's value tuple.
type Keys []string

// ParseKeys splits a single-string key specification on whitespace and
// commas. Dashes are normalized to underscores, so "top-speed color" yields
// the keys top_speed and color.
func ParseKeys(spec string) (Keys, error) {
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	return NewKeys(fields...)
}

// NewKeys validates names as a key specification.
func NewKeys(names ...string) (Keys, error) {
	if len(names) == 0 {
		return nil, &ConfigurationError{Reason: "at least one key must be specified"}
	}
	keys := make(Keys, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		k := normalizeKey(n)
		if k == "" {
			if len(names) == 1 {
				return nil, &ConfigurationError{Reason: "at least one key must be specified"}
			}
			return nil, &ConfigurationError{Token: n, Reason: "empty key"}
		}
		if !identRe.MatchString(k) {
			return nil, &ConfigurationError{Token: n, Reason: "key must match [A-Za-z][A-Za-z0-9_]*"}
		}
		if seen[k] {
			return nil, &ConfigurationError{Token: n, Reason: "duplicate key"}
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys, nil
}

// Index returns the tuple position of key, or -1.
func (k Keys) Index(key string) int {
	key = normalizeKey(key)
	for i, s := range k {
		if s == key {
			return i
		}
	}
	return -1
}

func (k Keys) String() string { return strings.Join(k, " ") }

func normalizeKey(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "-", "_")
}

func validatePrefix(p string) error {
	if !prefixRe.MatchString(p) {
		return &ConfigurationError{Token: p, Reason: "prefix must be empty or match [A-Za-z][A-Za-z0-9_]*"}
	}
	return nil
}

// GoName converts an operation name such as "to_color" into the exported Go
// identifier "ToColor". Each underscore-separated part keeps its remaining
// case, so "from_http_URL" becomes "FromHttpURL".
func GoName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}
	return b.String()
}
