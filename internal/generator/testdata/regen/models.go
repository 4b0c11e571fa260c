package regen

type Fruit int

const (
	Apple Fruit = iota // enummap: "red"
	Pear               // enummap: "green"
)
