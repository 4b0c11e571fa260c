package main

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/calumari/enummap/internal/generator"
)

// Every flag can also be set through the environment, e.g. ENUMMAP_TO_PREFIX.
const envPrefix = "ENUMMAP"

const (
	keyType          = "type"
	keyKeys          = "keys"
	keyToPrefix      = "to-prefix"
	keyFromPrefix    = "from-prefix"
	keyAllowOverride = "allow-override"
	keyMultipleFrom  = "multiple-from"
	keyOutput        = "output"
	keyDir           = "dir"
	keyConfig        = "config"
	keyDebug         = "debug"
	keyVerbose       = "verbose"
)

func newViper(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	return v, nil
}

// buildConfig merges the spec file, flags and environment into a generator
// configuration. Only explicitly set options override type directives.
func buildConfig(cmd *cobra.Command) (generator.Config, error) {
	v, err := newViper(cmd)
	if err != nil {
		return generator.Config{}, err
	}
	cfg := generator.Config{
		Dir:     v.GetString(keyDir),
		Output:  v.GetString(keyOutput),
		Debug:   v.GetBool(keyDebug),
		Version: deriveVersion(),
	}
	if v.GetBool(keyVerbose) || cfg.Debug {
		cfg.Logger = log.New(cmd.ErrOrStderr(), "enummapgen: ", 0)
	}

	cmdParts := []string{"enummapgen"}
	if path := v.GetString(keyConfig); path != "" {
		sf, err := generator.LoadSpecFile(path)
		if err != nil {
			return cfg, err
		}
		cfg.Enums = append(cfg.Enums, sf.Enums...)
		if sf.Output != "" && !v.IsSet(keyOutput) {
			cfg.Output = sf.Output
		}
		cmdParts = append(cmdParts, "--config="+path)
	}

	if typesCSV := v.GetString(keyType); typesCSV != "" {
		var names []string
		for p := range strings.SplitSeq(typesCSV, ",") {
			if p = strings.TrimSpace(p); p != "" {
				names = append(names, p)
			}
		}
		for _, name := range names {
			cfg.Enums = append(cfg.Enums, enumFromFlags(v, name))
		}
		cmdParts = append(cmdParts, "--type="+strings.Join(names, ","))
		if v.IsSet(keyKeys) {
			cmdParts = append(cmdParts, fmt.Sprintf("--keys=%q", v.GetString(keyKeys)))
		}
		for _, k := range []string{keyToPrefix, keyFromPrefix} {
			if v.IsSet(k) {
				cmdParts = append(cmdParts, "--"+k+"="+v.GetString(k))
			}
		}
		for _, k := range []string{keyAllowOverride, keyMultipleFrom} {
			if v.IsSet(k) {
				cmdParts = append(cmdParts, fmt.Sprintf("--%s=%t", k, v.GetBool(k)))
			}
		}
	}
	if len(cfg.Enums) == 0 {
		return cfg, errors.New("--type or --config is required")
	}
	if cfg.Output != generator.DefaultOutput {
		cmdParts = append(cmdParts, "--output="+cfg.Output)
	}
	cfg.Command = strings.Join(cmdParts, " ")
	return cfg, nil
}

func enumFromFlags(v *viper.Viper, name string) generator.EnumSpec {
	es := generator.EnumSpec{Type: name}
	if v.IsSet(keyKeys) {
		es.Keys = generator.SplitKeys(v.GetString(keyKeys))
	}
	if v.IsSet(keyToPrefix) {
		s := v.GetString(keyToPrefix)
		es.ToPrefix = &s
	}
	if v.IsSet(keyFromPrefix) {
		s := v.GetString(keyFromPrefix)
		es.FromPrefix = &s
	}
	if v.IsSet(keyAllowOverride) {
		b := v.GetBool(keyAllowOverride)
		es.AllowOverride = &b
	}
	if v.IsSet(keyMultipleFrom) {
		b := v.GetBool(keyMultipleFrom)
		es.MultipleFrom = &b
	}
	return es
}
