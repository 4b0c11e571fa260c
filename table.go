package enummap

import (
	"errors"
	"fmt"
	"reflect"
)

// Member is one element of a runtime enumeration.
type Member[E comparable] struct {
	ID    E
	Name  string
	Value any // scalar, or Tuple for more than one key
}

// Enumeration is the closed-enumeration capability: an ordered, immutable
// list of members with their values.
type Enumeration[E comparable] interface {
	Members() []Member[E]
}

// Table is a compiled runtime mapping for the enumeration E. It is immutable
// and safe for concurrent use.
type Table[E comparable] struct {
	plan *Plan
	ids  []E
	pos  map[E]int
}

// New compiles a Table for target, which must implement Enumeration[E].
// Methods already defined on target's type count as pre-existing operations
// for the collision policy.
func New[E comparable](target any, keys Keys, opts ...Option) (*Table[E], error) {
	o := NewOptions(opts...)
	var (
		def     *Definition
		members []Member[E]
	)
	if enum, ok := target.(Enumeration[E]); ok {
		members = enum.Members()
		def = &Definition{Type: typeName(target), Surface: methodSurface(target)}
		for _, m := range members {
			def.Members = append(def.Members, MemberDef{Name: m.Name, Value: m.Value})
		}
	}
	plan, err := Compile(keys, def, o)
	if err != nil {
		var se *StructuralError
		if errors.As(err, &se) && se.Type == "" {
			se.Type = typeName(target)
		}
		return nil, err
	}

	t := &Table[E]{plan: plan, pos: make(map[E]int, len(members))}
	for i, m := range members {
		if _, dup := t.pos[m.ID]; dup {
			return nil, &StructuralError{Type: plan.Type, Member: m.Name, Reason: fmt.Sprintf("identity %v is shared with another member", m.ID)}
		}
		t.pos[m.ID] = i
		t.ids = append(t.ids, m.ID)
	}
	return t, nil
}

// MustNew is like New but panics on error.
func MustNew[E comparable](target any, keys Keys, opts ...Option) *Table[E] {
	t, err := New[E](target, keys, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

func methodSurface(target any) Surface {
	rt := reflect.TypeOf(target)
	return SurfaceFunc(func(op Operation) bool {
		if _, ok := rt.MethodByName(op.GoName); ok {
			return true
		}
		if rt.Kind() != reflect.Pointer {
			_, ok := reflect.PointerTo(rt).MethodByName(op.GoName)
			return ok
		}
		return false
	})
}

// Plan returns the compiled plan backing t.
func (t *Table[E]) Plan() *Plan { return t.plan }

// Members returns the member identities in declaration order.
func (t *Table[E]) Members() []E { return append([]E(nil), t.ids...) }

// Forward returns the forward accessor generated under name (either form,
// "to_color" or "ToColor").
func (t *Table[E]) Forward(name string) (func(E) any, bool) {
	op, ok := t.plan.Operation(name)
	if !ok || op.Kind != Forward {
		return nil, false
	}
	i := op.Index
	return func(m E) any {
		p, ok := t.pos[m]
		if !ok {
			return nil
		}
		return t.plan.Value(p, i)
	}, true
}

// Reverse returns the single-result reverse lookup generated under name. It
// is unavailable when the table was compiled with WithMultipleFrom.
func (t *Table[E]) Reverse(name string) (func(any) (E, bool), bool) {
	op, ok := t.plan.Operation(name)
	if !ok || op.Kind != Reverse || t.plan.Options.MultipleFrom {
		return nil, false
	}
	i := op.Index
	return func(v any) (E, bool) {
		if m := t.plan.Find(i, v); m >= 0 {
			return t.ids[m], true
		}
		var zero E
		return zero, false
	}, true
}

// ReverseAll returns the multi-result reverse lookup generated under name. It
// is only available when the table was compiled with WithMultipleFrom.
func (t *Table[E]) ReverseAll(name string) (func(any) []E, bool) {
	op, ok := t.plan.Operation(name)
	if !ok || op.Kind != Reverse || !t.plan.Options.MultipleFrom {
		return nil, false
	}
	i := op.Index
	return func(v any) []E { return t.pick(t.plan.FindAll(i, v)) }, true
}

// Value returns m's value for key.
func (t *Table[E]) Value(m E, key string) (any, bool) {
	i := t.plan.Keys.Index(key)
	p, ok := t.pos[m]
	if i < 0 || !ok {
		return nil, false
	}
	return t.plan.Value(p, i), true
}

// Find returns the first member whose value for key equals v.
func (t *Table[E]) Find(key string, v any) (E, bool) {
	var zero E
	i := t.plan.Keys.Index(key)
	if i < 0 {
		return zero, false
	}
	if m := t.plan.Find(i, v); m >= 0 {
		return t.ids[m], true
	}
	return zero, false
}

// FindAll returns every member whose value for key equals v.
func (t *Table[E]) FindAll(key string, v any) []E {
	i := t.plan.Keys.Index(key)
	if i < 0 {
		return []E{}
	}
	return t.pick(t.plan.FindAll(i, v))
}

func (t *Table[E]) pick(idx []int) []E {
	out := make([]E, 0, len(idx))
	for _, m := range idx {
		out = append(out, t.ids[m])
	}
	return out
}
