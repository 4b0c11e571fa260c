// Command enummapgen generates forward accessors and reverse lookups for
// closed enumerations.
//
//	//go:generate go run github.com/calumari/enummap/cmd/enummapgen --type=Animal --keys="color sound"
package main

import (
	"fmt"
	"os"
	"runtime/debug"
)

// deriveVersion inspects build info for module version or vcs revision.
// preference order: module semantic version -> short commit hash -> "devel".
func deriveVersion() string {
	if bi, ok := debug.ReadBuildInfo(); ok {
		if bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			return bi.Main.Version
		}
		var revision string
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				revision = s.Value
				break
			}
		}
		if len(revision) >= 12 { // short hash for readability
			return revision[:12]
		}
		if revision != "" {
			return revision
		}
	}
	return "devel"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "enummapgen: %v\n", err)
		os.Exit(1)
	}
}
