package generator

import (
	"go/constant"
	"go/types"
	"log"

	"github.com/calumari/enummap"
)

// This file houses the intermediate representation shared by the generator
// phases (load -> discover -> compile -> render).

// Config holds generation settings.
type Config struct {
	Dir     string     // directory to load ("." relative to where command invoked)
	Output  string     // output filename, relative to Dir
	Enums   []EnumSpec // enumerations to generate accessors for
	Debug   bool       // when true, annotate output with template names and dump plans
	Command string     // canonical invocation, written into the header
	Version string     // enummapgen build version
	Logger  *log.Logger
}

// EnumSpec selects one enumeration type and its mapping settings. Unset
// fields fall back to the type's enummap: directives, then to defaults.
type EnumSpec struct {
	Type          string  `yaml:"type"`
	Keys          KeyList `yaml:"keys,omitempty"`
	ToPrefix      *string `yaml:"to_prefix,omitempty"`
	FromPrefix    *string `yaml:"from_prefix,omitempty"`
	AllowOverride *bool   `yaml:"allow_override,omitempty"`
	MultipleFrom  *bool   `yaml:"multiple_from,omitempty"`
}

// literal is one member value as written in a directive.
type literal struct {
	Expr  string
	Type  types.Type // defaulted type of the expression
	Value constant.Value
}

// fileModel is the root template model for a generated file.
type fileModel struct {
	Package string
	Source  string
	Imports []importModel
	Enums   []enumModel
	Debug   bool
	Command string
	Version string
}

type importModel struct {
	Name string // empty unless the package is imported under another name
	Path string
}

// enumModel is the render plan for one enumeration.
type enumModel struct {
	Type        string
	Receiver    string
	MembersVar  string
	Members     []string
	Keys        []keyModel
	Multiple    bool
	Debug       bool
	plan        *enummap.Plan
	typeName    *types.TypeName
	memberConst []*types.Const
}

// keyModel carries one key's value array and its accessors. The enum fields
// are repeated so the accessor templates only need the key as dot.
type keyModel struct {
	Enum       string
	Receiver   string
	MembersVar string
	Multiple   bool
	Debug      bool
	Key        string
	ValuesVar  string
	ValueType  string
	Values     []string
	Forward    *opModel // nil when a pre-existing method is kept
	Reverse    *opModel
}

type opModel struct {
	Name string // Go identifier of the generated method or function
	Doc  string
}
