package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-ideaplan/internal/classifier"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [dirs...]\n", filepath.Base(os.Args[0]))
		fmt.Fprintf(flag.CommandLine.Output(), "\nLint archetype catalogue directories. With no arguments the embedded catalogue is checked.\n")
	}
	flag.Parse()

	targets := map[string]fs.FS{}
	if flag.NArg() == 0 {
		targets["(embedded)"] = classifier.EmbeddedFS()
	}
	for _, dir := range flag.Args() {
		targets[dir] = os.DirFS(dir)
	}

	names := make([]string, 0, len(targets))
	for name := range targets {
		names = append(names, name)
	}
	sort.Strings(names)

	failed := false
	for _, name := range names {
		catalog, err := classifier.LoadFS(targets[name])
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", name, err)
			failed = true
			continue
		}
		for _, issue := range catalog.Lint() {
			fmt.Fprintf(os.Stderr, "%s/%s\n", name, issue)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}
