package generator

import (
	"fmt"
	"go/ast"
	"go/constant"
	"go/parser"
	"go/token"
	"go/types"
	"path/filepath"
	"sort"

	"golang.org/x/tools/go/packages"

	"github.com/calumari/enummap"
)

// loadDir loads the Go package in dir. The body of a previous output file is
// ignored so re-generation does not see its own accessors.
func loadDir(dir, output string) (*packages.Package, error) {
	outPath := filepath.Join(dir, output)
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedCompiledGoFiles,
		Dir:  dir,
		ParseFile: func(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
			mode := parser.AllErrors | parser.ParseComments
			if filepath.Clean(filename) == outPath {
				mode = parser.PackageClauseOnly
			}
			return parser.ParseFile(fset, filename, src, mode)
		},
	}
	pkgs, err := packages.Load(cfg, "./")
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found in %s", dir)
	}
	p := pkgs[0]
	if len(p.Errors) > 0 {
		return nil, p.Errors[0]
	}
	return p, nil
}

// discoverEnum finds the named type and its member constants in declaration
// order. A type without constants is not a closed enumeration.
func (g *generator) discoverEnum(name string) (*enumModel, typeDirectives, error) {
	obj := g.pkg.Types.Scope().Lookup(name)
	tn, ok := obj.(*types.TypeName)
	if !ok {
		return nil, typeDirectives{}, &enummap.StructuralError{Type: name, Reason: "type not found"}
	}
	named, ok := tn.Type().(*types.Named)
	if !ok || tn.IsAlias() {
		return nil, typeDirectives{}, &enummap.StructuralError{Type: name, Reason: "not a defined type"}
	}
	if _, ok := named.Underlying().(*types.Basic); !ok {
		return nil, typeDirectives{}, &enummap.StructuralError{Type: name, Reason: "not a closed enumeration: underlying type must be basic"}
	}

	var td typeDirectives
	em := &enumModel{Type: name, typeName: tn}
	var tdErr error
	for _, f := range g.sortedFiles() {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, spec := range gd.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					if s.Name.Name == name {
						groups := []*ast.CommentGroup{s.Doc, s.Comment}
						// a grouped declaration's doc belongs to no single type
						if len(gd.Specs) == 1 && !gd.Lparen.IsValid() {
							groups = append(groups, gd.Doc)
						}
						td, tdErr = parseTypeDirectives(groups...)
					}
				case *ast.ValueSpec:
					if gd.Tok != token.CONST {
						continue
					}
					for _, id := range s.Names {
						c, ok := g.pkg.TypesInfo.Defs[id].(*types.Const)
						if !ok || id.Name == "_" || !types.Identical(c.Type(), named) {
							continue
						}
						em.memberConst = append(em.memberConst, c)
					}
				}
			}
		}
	}
	if tdErr != nil {
		return nil, td, fmt.Errorf("%s: %w", name, tdErr)
	}
	if len(em.memberConst) == 0 {
		return nil, td, &enummap.StructuralError{Type: name, Reason: "not a closed enumeration: no constants of this type"}
	}
	for i, c := range em.memberConst {
		for _, prev := range em.memberConst[:i] {
			if constant.Compare(prev.Val(), token.EQL, c.Val()) {
				return nil, td, &enummap.StructuralError{Type: name, Member: c.Name(), Reason: "shares its value with " + prev.Name()}
			}
		}
		em.Members = append(em.Members, c.Name())
	}
	return em, td, nil
}

func (g *generator) sortedFiles() []*ast.File {
	files := append([]*ast.File(nil), g.pkg.Syntax...)
	sort.SliceStable(files, func(i, j int) bool {
		return g.pkg.Fset.Position(files[i].Pos()).Filename < g.pkg.Fset.Position(files[j].Pos()).Filename
	})
	return files
}

// memberDefs evaluates every member's directive into a value tuple.
func (g *generator) memberDefs(em *enumModel) ([]enummap.MemberDef, error) {
	comments := g.valueComments()
	var defs []enummap.MemberDef
	for _, c := range em.memberConst {
		groups := comments[c.Pos()]
		exprs, err := memberValues(em.Type, c.Name(), groups...)
		if err != nil {
			return nil, err
		}
		tuple := make(enummap.Tuple, 0, len(exprs))
		for _, e := range exprs {
			lit, err := g.evalLiteral(c.Pos(), e)
			if err != nil {
				return nil, &enummap.StructuralError{Type: em.Type, Member: c.Name(), Reason: err.Error()}
			}
			tuple = append(tuple, lit)
		}
		var value any = tuple
		if len(tuple) == 1 {
			value = tuple[0]
		}
		defs = append(defs, enummap.MemberDef{Name: c.Name(), Value: value})
	}
	return defs, nil
}

// valueComments indexes the comment groups of every constant name.
func (g *generator) valueComments() map[token.Pos][]*ast.CommentGroup {
	res := map[token.Pos][]*ast.CommentGroup{}
	for _, f := range g.pkg.Syntax {
		for _, decl := range f.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.CONST {
				continue
			}
			for _, spec := range gd.Specs {
				vs := spec.(*ast.ValueSpec)
				groups := []*ast.CommentGroup{vs.Doc, vs.Comment}
				if len(gd.Specs) == 1 && !gd.Lparen.IsValid() {
					groups = append(groups, gd.Doc)
				}
				for _, id := range vs.Names {
					res[id.Pos()] = groups
				}
			}
		}
	}
	return res
}

// evalLiteral type-checks a value expression in the package scope at pos.
func (g *generator) evalLiteral(pos token.Pos, e ast.Expr) (literal, error) {
	if _, ok := e.(*ast.KeyValueExpr); ok {
		return literal{}, fmt.Errorf("keyed value %s", types.ExprString(e))
	}
	src := types.ExprString(e)
	tv, err := types.Eval(g.pkg.Fset, g.pkg.Types, pos, src)
	if err != nil {
		return literal{}, fmt.Errorf("value %s: %v", src, err)
	}
	if tv.Value == nil {
		return literal{}, fmt.Errorf("value %s is not a constant expression", src)
	}
	g.collectImports(pos, e)
	return literal{Expr: src, Type: types.Default(tv.Type), Value: tv.Value}, nil
}

// collectImports records packages referenced by qualified identifiers in e.
func (g *generator) collectImports(pos token.Pos, e ast.Expr) {
	scope := g.pkg.Types.Scope().Innermost(pos)
	if scope == nil {
		scope = g.pkg.Types.Scope()
	}
	ast.Inspect(e, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok {
			return true
		}
		id, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}
		_, obj := scope.LookupParent(id.Name, pos)
		if pn, ok := obj.(*types.PkgName); ok {
			g.addImport(pn.Imported(), pn.Name())
		}
		return false
	})
}

// surface reports pre-existing operations: forward names in the method set
// of the type, reverse names in the package scope.
func (g *generator) surface(em *enumModel) enummap.Surface {
	return enummap.SurfaceFunc(func(op enummap.Operation) bool {
		if op.Kind == enummap.Forward {
			obj, _, _ := types.LookupFieldOrMethod(em.typeName.Type(), true, g.pkg.Types, op.GoName)
			return obj != nil
		}
		return g.pkg.Types.Scope().Lookup(em.Type+op.GoName) != nil
	})
}
