// Package enummap compiles bidirectional lookup tables for closed enumerations.
//
// An enumeration is a fixed, ordered set of members where every member carries
// a tuple of values. A key specification names each position of that tuple:
//
//	keys, _ := enummap.ParseKeys("color sound")
//
// For every key the compiler produces a forward accessor (member → value,
// named to_<key> by default) and a reverse lookup (value → member, named
// from_<key>). Compile builds the language-neutral Plan used by the code
// generator in cmd/enummapgen; New wraps a Plan in a Table for use at runtime.
//
// Compilation is all-or-nothing. Any configuration, arity, or name collision
// problem is reported as a typed error and no accessor is produced.
package enummap
