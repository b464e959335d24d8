package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "brio",
	Short: "Brio interpreter and bytecode compiler",
	Long: `go-brio is a Go implementation of the brio toy language.

Brio is a small imperative language with integers, floats, booleans,
strings with ${...} interpolation, variables, print, if/else and while.
Programs run either through a tree-walking interpreter or through a
bytecode compiler and stack-based virtual machine; both back-ends
produce identical output.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
