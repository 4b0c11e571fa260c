package generator

import (
	"fmt"
	"go/constant"

	"gopkg.in/yaml.v3"

	"github.com/calumari/enummap"
)

// PlanFile is the reviewable YAML form of compiled plans.
type PlanFile struct {
	Version string     `yaml:"version"`
	Enums   []PlanEnum `yaml:"enums"`
}

// PlanEnum describes one compiled enumeration.
type PlanEnum struct {
	Type          string          `yaml:"type"`
	Keys          []string        `yaml:"keys"`
	ToPrefix      string          `yaml:"to_prefix"`
	FromPrefix    string          `yaml:"from_prefix"`
	AllowOverride bool            `yaml:"allow_override"`
	MultipleFrom  bool            `yaml:"multiple_from"`
	Operations    []PlanOperation `yaml:"operations"`
	Members       []PlanMember    `yaml:"members"`
}

// PlanOperation is one accessor, generated or kept.
type PlanOperation struct {
	Name    string `yaml:"name"`
	GoName  string `yaml:"go_name"`
	Kind    string `yaml:"kind"`
	Key     string `yaml:"key"`
	Skipped bool   `yaml:"skipped,omitempty"`
}

// PlanMember lists a member's values keyed by key name, in key order.
type PlanMember struct {
	Name   string    `yaml:"name"`
	Values yaml.Node `yaml:"values"`
}

// ExportPlans converts compiled plans to their YAML form.
func ExportPlans(plans []*enummap.Plan) *PlanFile {
	pf := &PlanFile{Version: "1", Enums: []PlanEnum{}}
	for _, p := range plans {
		pe := PlanEnum{
			Type:          p.Type,
			Keys:          append([]string(nil), p.Keys...),
			ToPrefix:      p.Options.ToPrefix,
			FromPrefix:    p.Options.FromPrefix,
			AllowOverride: p.Options.AllowOverride,
			MultipleFrom:  p.Options.MultipleFrom,
		}
		for _, a := range p.Accessors {
			for _, o := range []enummap.Operation{a.To, a.From} {
				pe.Operations = append(pe.Operations, PlanOperation{
					Name:    o.Name,
					GoName:  o.GoName,
					Kind:    o.Kind.String(),
					Key:     o.Key,
					Skipped: o.Skipped,
				})
			}
		}
		for m, name := range p.Members {
			values := yaml.Node{Kind: yaml.MappingNode}
			for i, k := range p.Keys {
				values.Content = append(values.Content,
					&yaml.Node{Kind: yaml.ScalarNode, Value: k},
					&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: valueString(p.Value(m, i))},
				)
			}
			pe.Members = append(pe.Members, PlanMember{Name: name, Values: values})
		}
		pf.Enums = append(pf.Enums, pe)
	}
	return pf
}

// ExportPlansYAML renders compiled plans as YAML.
func ExportPlansYAML(plans []*enummap.Plan) ([]byte, error) {
	return yaml.Marshal(ExportPlans(plans))
}

func valueString(v any) string {
	lit, ok := v.(literal)
	if !ok {
		return fmt.Sprint(v)
	}
	if lit.Value.Kind() == constant.String {
		return constant.StringVal(lit.Value)
	}
	return lit.Value.ExactString()
}
