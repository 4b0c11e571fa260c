package enums

// Part has a key whose name matches the members array suffix.
type Part int

const (
	Bolt Part = iota // enummap: "bolt"
	Nut              // enummap: "nut"
)

// Pin and PinKey generate the same value array name for keys key_b and b.
type Pin int

const PinA Pin = 0 // enummap: "a"

type PinKey int

const PinKeyA PinKey = 0 // enummap: "a"

// Spool's members array name is already taken.
type Spool int

const SpoolA Spool = 0 // enummap: "s"

var _enummapSpoolMembers = []Spool{SpoolA}

//enummap:keys shade
type (
	// Hue takes its keys from its own doc comment only.
	Hue int

	// Tint has no directives.
	Tint int
)

const (
	HueA  Hue  = 0 // enummap: "a"
	TintA Tint = 0 // enummap: "a"
)
