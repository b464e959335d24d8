package cmd

import (
	"fmt"

	"github.com/cwbudde/go-brio/internal/bytecode"
	"github.com/cwbudde/go-brio/internal/parser"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a brio file and print the disassembled bytecode",
	Args:  cobra.MaximumNArgs(1),
	RunE:  compileFile,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "compile inline code instead of reading from file")
}

func compileFile(_ *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	program, err := parser.Parse(source)
	if err != nil {
		return err
	}

	compiled, err := bytecode.Compile(program)
	if err != nil {
		return err
	}
	if err := compiled.Validate(); err != nil {
		return err
	}

	fmt.Print(bytecode.Disassemble(compiled))
	return nil
}
