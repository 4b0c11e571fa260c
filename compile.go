package enummap

import (
	"fmt"
	"reflect"
)

// Tuple is a member value with more than one element. A member whose Value
// is not a Tuple is a scalar and only fits a single-key specification.
type Tuple []any

// MemberDef describes one enumeration member in declaration order.
type MemberDef struct {
	Name  string
	Value any
}

// Surface reports operations already defined on the target type.
type Surface interface {
	Defines(op Operation) bool
}

// SurfaceFunc adapts a function to Surface.
type SurfaceFunc func(op Operation) bool

func (f SurfaceFunc) Defines(op Operation) bool { return f(op) }

// Definition is the closed enumeration handed to Compile.
type Definition struct {
	Type    string
	Members []MemberDef
	Surface Surface // nil when the type defines nothing that could collide
}

// OpKind distinguishes forward accessors from reverse lookups.
type OpKind int

const (
	Forward OpKind = iota
	Reverse
)

func (k OpKind) String() string {
	if k == Reverse {
		return "reverse"
	}
	return "forward"
}

// Operation is one generated accessor.
type Operation struct {
	Kind   OpKind
	Key    string
	Index  int
	Name   string // e.g. to_color
	GoName string // e.g. ToColor
	// Skipped is set when AllowOverride kept a pre-existing definition.
	Skipped bool
}

// Accessor pairs the forward and reverse operation of one key.
type Accessor struct {
	Key   string
	Index int
	To    Operation
	From  Operation
}

// Plan is the compiled mapping table. It is immutable once returned.
type Plan struct {
	Type      string
	Keys      Keys
	Options   Options
	Members   []string // declaration order
	Values    [][]any  // Values[m][i] is member m's value for key i
	Accessors []Accessor
}

// Compile validates keys, options and def and builds the accessor set.
// Either a complete Plan or an error is returned, never both.
func Compile(keys Keys, def *Definition, opts Options) (*Plan, error) {
	keys, err := NewKeys(keys...)
	if err != nil {
		return nil, err
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if def == nil {
		return nil, &StructuralError{Reason: "target is not a closed enumeration"}
	}

	p := &Plan{Type: def.Type, Keys: keys, Options: opts}
	seen := make(map[string]bool, len(def.Members))
	for _, m := range def.Members {
		if seen[m.Name] {
			return nil, &StructuralError{Type: def.Type, Member: m.Name, Reason: "duplicate member"}
		}
		seen[m.Name] = true
		tuple, err := valueTuple(def.Type, m, len(keys))
		if err != nil {
			return nil, err
		}
		p.Members = append(p.Members, m.Name)
		p.Values = append(p.Values, tuple)
	}

	generated := map[string]bool{}
	op := func(kind OpKind, prefix, key string, index int) (Operation, error) {
		name := prefix + key
		o := Operation{Kind: kind, Key: key, Index: index, Name: name, GoName: GoName(name)}
		if generated[o.GoName] {
			return o, &CollisionError{Type: def.Type, Operation: o.GoName, Generated: true}
		}
		if def.Surface != nil && def.Surface.Defines(o) {
			if !opts.AllowOverride {
				return o, &CollisionError{Type: def.Type, Operation: o.GoName}
			}
			o.Skipped = true
			return o, nil
		}
		generated[o.GoName] = true
		return o, nil
	}
	for i, k := range keys {
		to, err := op(Forward, opts.ToPrefix, k, i)
		if err != nil {
			return nil, err
		}
		from, err := op(Reverse, opts.FromPrefix, k, i)
		if err != nil {
			return nil, err
		}
		p.Accessors = append(p.Accessors, Accessor{Key: k, Index: i, To: to, From: from})
	}
	return p, nil
}

func valueTuple(typ string, m MemberDef, arity int) ([]any, error) {
	var tuple []any
	if t, ok := m.Value.(Tuple); ok {
		tuple = append([]any(nil), t...)
	} else {
		tuple = []any{m.Value}
	}
	if len(tuple) != arity {
		return nil, &StructuralError{Type: typ, Member: m.Name, Expected: arity, Actual: len(tuple)}
	}
	for i, v := range tuple {
		if v == nil {
			continue
		}
		// dynamic check: an interface field may hold a slice or map
		if !reflect.ValueOf(v).Comparable() {
			return nil, &StructuralError{Type: typ, Member: m.Name, Reason: fmt.Sprintf("value %d of type %T is not comparable", i, v)}
		}
	}
	return tuple, nil
}

// Value returns member m's value for key index i.
func (p *Plan) Value(m, i int) any { return p.Values[m][i] }

// Find returns the index of the first member, in declaration order, whose
// value for key index i equals v, or -1.
func (p *Plan) Find(i int, v any) int {
	for m, tuple := range p.Values {
		if tuple[i] == v {
			return m
		}
	}
	return -1
}

// FindAll returns the indexes of every member whose value for key index i
// equals v, in declaration order.
func (p *Plan) FindAll(i int, v any) []int {
	matches := []int{}
	for m, tuple := range p.Values {
		if tuple[i] == v {
			matches = append(matches, m)
		}
	}
	return matches
}

// Operations lists generated operations in key order, forward before reverse.
// Operations skipped under AllowOverride are omitted.
func (p *Plan) Operations() []Operation {
	var ops []Operation
	for _, a := range p.Accessors {
		for _, o := range []Operation{a.To, a.From} {
			if !o.Skipped {
				ops = append(ops, o)
			}
		}
	}
	return ops
}

// Operation looks up a generated operation by its name or Go name.
func (p *Plan) Operation(name string) (Operation, bool) {
	for _, o := range p.Operations() {
		if o.Name == name || o.GoName == name {
			return o, true
		}
	}
	return Operation{}, false
}
