package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/afero"
)

// Version is set via -ldflags at release time.
var Version = "dev"

func main() {
	root := newRootCmd(os.Stdout, os.Stderr, afero.NewOsFs())
	root.SetArgs(normalizeLegacyArgs(os.Args[1:]))
	if err := fang.Execute(
		context.Background(),
		root,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		// fang has already printed the error.
		os.Exit(1)
	}
}
