// Package main is the entry point for paradigm.
package main

import "github.com/mouse-blink/paradigm/cmd"

// version is overridden at release time via -ldflags "-X main.version=vX.Y.Z".
var version = "dev"

func main() {
	cmd.Execute(version)
}
