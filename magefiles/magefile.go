//go:build mage

// Package main provides build targets for enummap using Mage.
//
// Usage:
//
//	mage build      Compile enummapgen to bin/
//	mage generate   Regenerate the example packages
//	mage test       Run all tests
//	mage check      Regenerate, then fail if any generated file changed
//	mage lint       Run golangci-lint
//	mage clean      Remove build artifacts
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "enummapgen"
	binaryDir  = "bin"
	cmdDir     = "./cmd/enummapgen"
)

// Build compiles enummapgen to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV("go", "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Generate runs go generate over the examples.
func Generate() error {
	return sh.RunV("go", "generate", "./examples/...")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check regenerates the examples and fails when the checked-in output is stale.
func Check() error {
	mg.Deps(Generate)
	out, err := sh.Output("git", "status", "--porcelain", "--", "examples")
	if err != nil {
		return err
	}
	if strings.TrimSpace(out) != "" {
		return fmt.Errorf("generated files are out of date:\n%s", out)
	}
	return nil
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV("go", "clean")
}
