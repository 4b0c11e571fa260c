package generator

import (
	"errors"
	"fmt"
	"go/types"
	"io"
	"log"
	"path/filepath"
	"sort"

	"github.com/davecgh/go-spew/spew"
	"golang.org/x/tools/go/packages"

	"github.com/calumari/enummap"
)

// DefaultOutput is the file written when Config.Output is empty.
const DefaultOutput = "enummap_gen.go"

// generator holds transient state for one run.
type generator struct {
	cfg     Config
	pkg     *packages.Package
	imports map[string]importModel // key: import path
	log     *log.Logger
}

// Run generates accessors for every configured enumeration and writes the
// output file. Nothing is written when any enumeration fails.
func Run(cfg Config) error {
	src, err := Generate(cfg)
	if err != nil {
		return err
	}
	return writeOutput(cfg, src)
}

// Generate renders the output file without writing it.
func Generate(cfg Config) ([]byte, error) {
	g, enums, err := compile(cfg)
	if err != nil {
		return nil, err
	}
	return g.render(enums)
}

// Plans compiles every configured enumeration and returns the plans in
// configuration order.
func Plans(cfg Config) ([]*enummap.Plan, error) {
	_, enums, err := compile(cfg)
	if err != nil {
		return nil, err
	}
	plans := make([]*enummap.Plan, 0, len(enums))
	for _, em := range enums {
		plans = append(plans, em.plan)
	}
	return plans, nil
}

func compile(cfg Config) (*generator, []enumModel, error) {
	if len(cfg.Enums) == 0 {
		return nil, nil, errors.New("no enumeration types provided")
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	absDir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return nil, nil, err
	}
	cfg.Dir = absDir
	g := &generator{cfg: cfg, imports: map[string]importModel{}, log: cfg.Logger}
	if g.log == nil {
		g.log = log.New(io.Discard, "", 0)
	}
	if err := g.checkDuplicates(); err != nil {
		return nil, nil, err
	}
	// explicit key specifications are validated before the package is loaded
	for _, es := range cfg.Enums {
		if es.Keys != nil {
			if _, err := enummap.NewKeys(es.Keys...); err != nil {
				return nil, nil, fmt.Errorf("%s: %w", es.Type, err)
			}
		}
	}

	g.pkg, err = loadDir(absDir, cfg.Output)
	if err != nil {
		return nil, nil, err
	}
	g.log.Printf("loaded package %s from %s", g.pkg.Name, absDir)

	enums := make([]enumModel, 0, len(cfg.Enums))
	for _, es := range cfg.Enums {
		em, err := g.compileEnum(es)
		if err != nil {
			return nil, nil, err
		}
		g.log.Printf("%s: %d members, %d operations", em.Type, len(em.Members), len(em.plan.Operations()))
		if cfg.Debug {
			// exported form: the plan holds go/types values
			g.log.Print(spew.Sdump(ExportPlans([]*enummap.Plan{em.plan}).Enums[0]))
		}
		enums = append(enums, *em)
	}
	if err := g.checkIdentifiers(enums); err != nil {
		return nil, nil, err
	}
	return g, enums, nil
}

// checkIdentifiers rejects package-level names the output file would declare
// twice, and generated arrays whose names the package already uses. Reverse
// lookups are checked against the package by the compiler's surface.
func (g *generator) checkIdentifiers(enums []enumModel) error {
	declared := map[string]bool{}
	declare := func(typ, name string, inScope bool) error {
		if declared[name] {
			return &enummap.CollisionError{Type: typ, Operation: name, Generated: true}
		}
		declared[name] = true
		if inScope && g.pkg.Types.Scope().Lookup(name) != nil {
			return &enummap.CollisionError{Type: typ, Operation: name}
		}
		return nil
	}
	for _, em := range enums {
		if err := declare(em.Type, em.MembersVar, true); err != nil {
			return err
		}
		for _, km := range em.Keys {
			if err := declare(em.Type, km.ValuesVar, true); err != nil {
				return err
			}
			if km.Reverse != nil {
				if err := declare(em.Type, km.Reverse.Name, false); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func (g *generator) checkDuplicates() error {
	seen := map[string]bool{}
	for _, es := range g.cfg.Enums {
		if es.Type == "" {
			return errors.New("enumeration type name is empty")
		}
		if seen[es.Type] {
			return fmt.Errorf("enumeration type %s configured more than once", es.Type)
		}
		seen[es.Type] = true
	}
	return nil
}

// compileEnum runs discovery and the mapping compiler for one type.
func (g *generator) compileEnum(es EnumSpec) (*enumModel, error) {
	em, td, err := g.discoverEnum(es.Type)
	if err != nil {
		return nil, err
	}
	keys, opts, err := resolveSettings(es, td)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", es.Type, err)
	}
	members, err := g.memberDefs(em)
	if err != nil {
		return nil, err
	}
	plan, err := enummap.Compile(keys, &enummap.Definition{Type: es.Type, Members: members, Surface: g.surface(em)}, opts)
	if err != nil {
		return nil, err
	}
	em.plan = plan
	em.Receiver = receiverName(es.Type)
	em.MembersVar = "_enummap" + es.Type + "Members"
	em.Multiple = opts.MultipleFrom
	em.Debug = g.cfg.Debug
	for _, a := range plan.Accessors {
		em.Keys = append(em.Keys, g.keyModel(em, a))
	}
	return em, nil
}

// resolveSettings merges the configured settings over the type directives.
func resolveSettings(es EnumSpec, td typeDirectives) (enummap.Keys, enummap.Options, error) {
	opts := enummap.DefaultOptions()
	var (
		keys enummap.Keys
		err  error
	)
	switch {
	case es.Keys != nil:
		keys, err = enummap.NewKeys(es.Keys...)
	default:
		keys, err = enummap.ParseKeys(td.Keys)
	}
	if err != nil {
		return nil, opts, err
	}
	pickString(&opts.ToPrefix, es.ToPrefix, td.ToPrefix)
	pickString(&opts.FromPrefix, es.FromPrefix, td.FromPrefix)
	pickBool(&opts.AllowOverride, es.AllowOverride, td.AllowOverride)
	pickBool(&opts.MultipleFrom, es.MultipleFrom, td.MultipleFrom)
	if err := opts.Validate(); err != nil {
		return nil, opts, err
	}
	return keys, opts, nil
}

// keyModel renders the value array of one key. The element type is the
// common type of the member values, or any when they disagree.
func (g *generator) keyModel(em *enumModel, a enummap.Accessor) keyModel {
	km := keyModel{
		Enum:       em.Type,
		Receiver:   em.Receiver,
		MembersVar: em.MembersVar,
		Multiple:   em.Multiple,
		Debug:      em.Debug,
		Key:        a.Key,
		ValuesVar:  "_enummap" + em.Type + "Key" + enummap.GoName(a.Key),
	}
	var common types.Type
	for m, tuple := range em.plan.Values {
		lit := tuple[a.Index].(literal)
		km.Values = append(km.Values, lit.Expr)
		if m == 0 {
			common = lit.Type
		} else if common != nil && !types.Identical(common, lit.Type) {
			common = nil
		}
	}
	if common == nil {
		km.ValueType = "any"
	} else {
		km.ValueType = types.TypeString(common, g.qualifier)
	}
	if !a.To.Skipped {
		km.Forward = &opModel{Name: a.To.GoName, Doc: fmt.Sprintf("%s returns the %s mapped to %s.", a.To.GoName, a.Key, em.Receiver)}
	}
	if !a.From.Skipped {
		name := em.Type + a.From.GoName
		doc := fmt.Sprintf("%s returns the first %s whose %s is v.", name, em.Type, a.Key)
		if em.plan.Options.MultipleFrom {
			doc = fmt.Sprintf("%s returns every %s whose %s is v, in declaration order.", name, em.Type, a.Key)
		}
		km.Reverse = &opModel{Name: name, Doc: doc}
	}
	return km
}

// qualifier renders package-qualified type names and records their imports.
func (g *generator) qualifier(p *types.Package) string {
	if p == nil || p.Path() == g.pkg.PkgPath {
		return ""
	}
	g.addImport(p, p.Name())
	return p.Name()
}

func (g *generator) addImport(p *types.Package, name string) {
	im := importModel{Path: p.Path()}
	if name != p.Name() {
		im.Name = name
	}
	g.imports[p.Path()] = im
}

func (g *generator) sortedImports() []importModel {
	res := make([]importModel, 0, len(g.imports))
	for _, im := range g.imports {
		res = append(res, im)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Path < res[j].Path })
	return res
}
