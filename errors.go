package enummap

import (
	"errors"
	"fmt"
)

// Sentinels matched by errors.Is against the typed errors below.
var (
	ErrConfiguration = errors.New("enummap: configuration error")
	ErrStructural    = errors.New("enummap: structural error")
	ErrCollision     = errors.New("enummap: collision error")
)

// ConfigurationError reports a malformed key specification or prefix.
type ConfigurationError struct {
	Token  string // offending token, may be empty
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Token == "" {
		return "invalid configuration: " + e.Reason
	}
	return fmt.Sprintf("invalid configuration %q: %s", e.Token, e.Reason)
}

func (e *ConfigurationError) Is(target error) bool { return target == ErrConfiguration }

// StructuralError reports a target that is not a closed enumeration, or a
// member whose value tuple does not fit the key specification.
type StructuralError struct {
	Type     string
	Member   string // empty when the error concerns the type itself
	Expected int    // expected arity, 0 when not an arity error
	Actual   int
	Reason   string
}

func (e *StructuralError) Error() string {
	switch {
	case e.Member == "":
		return fmt.Sprintf("%s: %s", e.typeName(), e.Reason)
	case e.Expected > 0:
		return fmt.Sprintf("%s.%s: has %d mapped values, expected %d", e.typeName(), e.Member, e.Actual, e.Expected)
	default:
		return fmt.Sprintf("%s.%s: %s", e.typeName(), e.Member, e.Reason)
	}
}

func (e *StructuralError) typeName() string {
	if e.Type == "" {
		return "<enum>"
	}
	return e.Type
}

func (e *StructuralError) Is(target error) bool { return target == ErrStructural }

// CollisionError reports a generated operation name that is already taken.
type CollisionError struct {
	Type      string
	Operation string // Go name of the conflicting operation
	Generated bool   // true when the clash is between two generated operations
}

func (e *CollisionError) Error() string {
	if e.Generated {
		return fmt.Sprintf("%s: operation %s is generated more than once", e.Type, e.Operation)
	}
	return fmt.Sprintf("%s: operation %s is already defined", e.Type, e.Operation)
}

func (e *CollisionError) Is(target error) bool { return target == ErrCollision }
