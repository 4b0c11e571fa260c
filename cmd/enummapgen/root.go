package main

import (
	"github.com/spf13/cobra"

	"github.com/calumari/enummap/internal/generator"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "enummapgen",
		Short: "Generate forward accessors and reverse lookups for enumerations",
		Long: `enummapgen reads an enumeration type (a defined basic type plus its
constants) and the values attached to each constant with an enummap:
comment, and generates a ToKey() method and a TypeFromKey() lookup per key.`,
		Example: `  enummapgen --type=Animal --keys="color sound"
  enummapgen --type=Cardinal --keys=direction --to-prefix=as_ --from-prefix=with_
  enummapgen --config=enummap.yaml
  enummapgen plan --type=Terrain --multiple-from`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runGenerate,
	}

	f := root.PersistentFlags()
	f.String(keyType, "", "comma-separated enumeration type names")
	f.String(keyKeys, "", `key specification, e.g. "color sound" (default: the type's enummap:keys directive)`)
	f.String(keyToPrefix, "", `forward accessor prefix (default "to_")`)
	f.String(keyFromPrefix, "", `reverse lookup prefix (default "from_")`)
	f.Bool(keyAllowOverride, false, "keep pre-existing methods and functions instead of failing")
	f.Bool(keyMultipleFrom, false, "reverse lookups return every matching member")
	f.String(keyOutput, generator.DefaultOutput, "output filename, relative to --dir")
	f.String(keyDir, ".", "package directory to scan")
	f.String(keyConfig, "", "YAML spec file listing enumerations")
	f.Bool(keyDebug, false, "annotate output with template names and dump compiled plans")
	f.BoolP(keyVerbose, "v", false, "log progress to stderr")

	root.AddCommand(newPlanCmd(), newVersionCmd())
	return root
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	return generator.Run(cfg)
}

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the compiled mapping plan as YAML without writing code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := buildConfig(cmd)
			if err != nil {
				return err
			}
			plans, err := generator.Plans(cfg)
			if err != nil {
				return err
			}
			out, err := generator.ExportPlansYAML(plans)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the enummapgen version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("enummapgen", deriveVersion())
		},
	}
}
