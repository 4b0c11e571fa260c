package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"strings"
)

// render executes the file template over the compiled enumerations and
// formats the result.
func (g *generator) render(enums []enumModel) ([]byte, error) {
	if err := ensureTemplates(); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(enums))
	for _, em := range enums {
		names = append(names, em.Type)
	}
	data := fileModel{
		Package: g.pkg.Name,
		Source:  strings.Join(names, ", "),
		Imports: g.sortedImports(),
		Enums:   enums,
		Debug:   g.cfg.Debug,
		Command: g.cfg.Command,
		Version: g.cfg.Version,
	}
	var out bytes.Buffer
	if err := fileTmpl.ExecuteTemplate(&out, tmplFile, data); err != nil {
		return nil, err
	}
	formatted, err := format.Source(out.Bytes())
	if err != nil {
		g.log.Printf("format generated source: %v", err)
		return out.Bytes(), nil
	}
	return formatted, nil
}

func writeOutput(cfg Config, src []byte) error {
	output := cfg.Output
	if output == "" {
		output = DefaultOutput
	}
	absDir, err := filepath.Abs(cfg.Dir)
	if err != nil {
		return err
	}
	outPath := filepath.Join(absDir, output)
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	if cfg.Logger != nil {
		cfg.Logger.Printf("wrote %s", outPath)
	}
	return nil
}
