package enums

import "time"

// Color is a plain enumeration configured on the command line.
type Color int

const (
	Red   Color = iota // enummap: "red", 0xff0000
	Green              // enummap: "green", 0x00ff00
	Blue               // enummap: "blue", 0x0000ff
)

// Level is configured entirely through directives.
//
//enummap:keys name
//enummap:options from_prefix=by_ multiple_from
type Level string

const (
	Low    Level = "l" // enummap: "low"
	Medium Level = "m" // enummap: "mid"
	High   Level = "h" // enummap: "mid"
)

// Delay has values from another package.
type Delay int

const (
	Short Delay = iota // enummap: time.Second
	Long               // enummap: 2 * time.Minute
)

var defaultTimeout = time.Second

// Mixed has values of different types under one key.
type Mixed int

const (
	MixedInt    Mixed = iota // enummap: 1
	MixedString              // enummap: "two"
)

// Item gets a receiver that could clash with generated locals.
type Item int

const (
	ItemA Item = iota // enummap: "a"
	ItemB             // enummap: "b"
)
