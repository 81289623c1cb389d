//go:build !cgo

package main

import (
	"flag"
	"fmt"
	"os"
)

// version, commit, date are set at build time with -ldflags "-X main.version=...".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Printf("weatherdash %s (%s) %s\n", version, commit, date)
		return
	}

	fmt.Fprintln(os.Stderr, "weatherdash needs a cgo build for the raylib window (CGO_ENABLED=1).")
	os.Exit(1)
}
