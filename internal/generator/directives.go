package generator

import (
	"fmt"
	"go/ast"
	"go/parser"
	"strconv"
	"strings"

	"github.com/calumari/enummap"
)

// Directives are line comments of the form
//
//	//enummap:keys color sound
//	//enummap:options to_prefix=as_ from_prefix=with_ allow_override
//
// on the enumeration type, and
//
//	ChocolateLab Animal = iota // enummap: "brown", "woof"
//
// on each member constant.
const directivePrefix = "enummap:"

// typeDirectives collects the settings declared on the type itself.
type typeDirectives struct {
	Keys          string
	ToPrefix      *string
	FromPrefix    *string
	AllowOverride *bool
	MultipleFrom  *bool
}

func directiveLines(groups ...*ast.CommentGroup) []string {
	var lines []string
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			text := strings.TrimPrefix(c.Text, "//")
			text = strings.TrimSpace(text)
			if rest, ok := strings.CutPrefix(text, directivePrefix); ok {
				lines = append(lines, rest)
			}
		}
	}
	return lines
}

func parseTypeDirectives(groups ...*ast.CommentGroup) (typeDirectives, error) {
	var td typeDirectives
	for _, line := range directiveLines(groups...) {
		verb, args, _ := strings.Cut(line, " ")
		switch verb {
		case "keys":
			td.Keys = strings.TrimSpace(args)
		case "options":
			if err := td.parseOptions(args); err != nil {
				return td, err
			}
		default:
			return td, &enummap.ConfigurationError{Token: directivePrefix + verb, Reason: "unknown directive"}
		}
	}
	return td, nil
}

func (td *typeDirectives) parseOptions(args string) error {
	for _, field := range strings.Fields(args) {
		name, value, hasValue := strings.Cut(field, "=")
		switch name {
		case "to_prefix", "from_prefix":
			if !hasValue {
				return &enummap.ConfigurationError{Token: field, Reason: "prefix option needs a value"}
			}
			v := value
			if name == "to_prefix" {
				td.ToPrefix = &v
			} else {
				td.FromPrefix = &v
			}
		case "allow_override", "multiple_from":
			b := true
			if hasValue {
				parsed, err := strconv.ParseBool(value)
				if err != nil {
					return &enummap.ConfigurationError{Token: field, Reason: "expected a boolean"}
				}
				b = parsed
			}
			if name == "allow_override" {
				td.AllowOverride = &b
			} else {
				td.MultipleFrom = &b
			}
		default:
			return &enummap.ConfigurationError{Token: field, Reason: "unknown option"}
		}
	}
	return nil
}

// memberValues returns the value expressions attached to a member constant.
// A member without a directive has no values.
func memberValues(typ, member string, groups ...*ast.CommentGroup) ([]ast.Expr, error) {
	lines := directiveLines(groups...)
	switch len(lines) {
	case 0:
		return nil, nil
	case 1:
	default:
		return nil, &enummap.StructuralError{Type: typ, Member: member, Reason: "more than one enummap directive"}
	}
	text := strings.TrimSpace(lines[0])
	if text == "" {
		return nil, nil
	}
	expr, err := parser.ParseExpr("[]any{" + text + "}")
	if err != nil {
		return nil, &enummap.StructuralError{Type: typ, Member: member, Reason: fmt.Sprintf("malformed values %q: %v", text, err)}
	}
	lit, ok := expr.(*ast.CompositeLit)
	if !ok {
		return nil, &enummap.StructuralError{Type: typ, Member: member, Reason: fmt.Sprintf("malformed values %q", text)}
	}
	return lit.Elts, nil
}
