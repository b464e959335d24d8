package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-brio/internal/lexer"
	"github.com/cwbudde/go-brio/pkg/token"
	"github.com/spf13/cobra"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a brio file and print the token stream",
	Args:  cobra.MaximumNArgs(1),
	RunE:  lexFile,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func lexFile(_ *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	l := lexer.New(source)
	for {
		tok, err := l.NextToken()
		if err != nil {
			return err
		}
		if len(tok.Segments) > 0 {
			fmt.Fprintf(os.Stdout, "%s %v\n", tok.Type, tok.Segments)
		} else if tok.Literal != "" {
			fmt.Fprintf(os.Stdout, "%s %q\n", tok.Type, tok.Literal)
		} else {
			fmt.Fprintln(os.Stdout, tok.Type)
		}
		if tok.Type == token.EOF {
			return nil
		}
	}
}
