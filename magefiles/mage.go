//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	ratingBin = "./bin/rating"
)

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the rating command line tool
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", ratingBin, "./cmd/rating")
}

// Example runs the tool on the sample config
func Example() error {
	mg.Deps(Build)
	return sh.RunV(ratingBin, "-config", "configs/rating.toml", "-debug")
}

// Test runs unit tests with the race detector
func Test() error {
	mg.Deps(goModDownload)
	return sh.RunV("go", "test", "-race", "./...")
}
