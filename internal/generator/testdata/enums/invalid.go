package enums

// Broken has a member without values.
type Broken int

const (
	BrokenA Broken = iota // enummap: "a"
	BrokenB
)

// Shape is not an enumeration.
type Shape struct{ Sides int }

// Lonely has no constants.
type Lonely int

// Twin declares two members with the same value.
type Twin int

const (
	TwinA Twin = 1 // enummap: "x"
	TwinB Twin = 1 // enummap: "y"
)

// Weird carries an unknown directive.
//
//enummap:frobnicate
type Weird int

const WeirdA Weird = 0 // enummap: "w"

// Garbled has a malformed value list.
type Garbled int

const GarbledA Garbled = 0 // enummap: "a",, "b"

// Alias is not a defined type.
type Alias = Color

// Named already has a forward accessor for the name key.
type Named int

const (
	NamedOne Named = iota + 1 // enummap: "one"
	NamedTwo                  // enummap: "two"
)

func (n Named) ToName() string { return "custom" }
