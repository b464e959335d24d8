package cmd

import (
	"fmt"

	"github.com/cwbudde/go-brio/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a brio file and print the AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  parseFile,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseFile(_ *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	program, err := parser.Parse(source)
	if err != nil {
		return err
	}

	fmt.Println(program.String())
	return nil
}
