//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binary = "cattrans"

// Default target to run when none is specified
var Default = Build

// Build compiles the cattrans binary
func Build() error {
	mg.Deps(Tidy)
	fmt.Println("Building", binary)
	return sh.RunV("go", "build", "-o", binary, "./cmd/cattrans")
}

// Install installs cattrans into GOPATH/bin
func Install() error {
	mg.Deps(Test)
	return sh.RunV("go", "install", "./cmd/cattrans")
}

// Test runs all unit tests
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Race runs the tests with the race detector
func Race() error {
	return sh.RunV("go", "test", "-race", "./...")
}

// Integration runs tests that call real translation services
func Integration() error {
	env := map[string]string{"CATTRANS_NETWORK_TESTS": "1"}
	return sh.RunWithV(env, "go", "test", "-run", "Integration", "-v", "./internal/translation/...", "./internal/models/...")
}

// Vet runs go vet
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Tidy tidies go.mod
func Tidy() error {
	return sh.Run("go", "mod", "tidy")
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning")
	return os.RemoveAll(binary)
}
