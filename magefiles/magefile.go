//go:build mage

// Package main provides build targets for the repunit project using Mage.
//
// Usage:
//
//	mage build          Compile repunit binary to bin/
//	mage test           Run all tests
//	mage lint           Run golangci-lint
//	mage gen            Build, then generate sols.txt and sols.json in out/
//	mage clean          Remove build artifacts
//	mage install        Install repunit to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "repunit"
	binaryDir  = "bin"
	cmdDir     = "./cmd/repunit"
	outDir     = "out"
)

// Build compiles the repunit binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV(binGo, "test", "./...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Gen builds the binary and writes the default solution table to out/.
func Gen() error {
	mg.Deps(Build)
	return sh.RunV(filepath.Join(binaryDir, binaryName), "gen", "--output-dir", outDir)
}

// Clean removes build artifacts and generated output.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := os.RemoveAll(outDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
