package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/cwbudde/go-brio/internal/bytecode"
	"github.com/cwbudde/go-brio/internal/interp"
	"github.com/cwbudde/go-brio/internal/parser"
	"github.com/spf13/cobra"
)

var (
	evalExpr      string
	useInterpret  bool
	useBytecode   bool
	debugBytecode bool
	showTiming    bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a brio file or expression",
	Long: `Execute a brio program from a file or inline expression.

By default the program is compiled to bytecode and run on the VM.

Examples:
  # Run a script file on the bytecode VM
  brio run script.brio

  # Run through the AST interpreter instead
  brio run --interpret script.brio

  # Evaluate inline code
  brio run -e 'print "Hello, World!";'

  # Dump the compiled bytecode before running
  brio run --debug script.brio`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&useInterpret, "interpret", false, "run through the AST interpreter")
	runCmd.Flags().BoolVar(&useBytecode, "bytecode", false, "run through the bytecode VM (default)")
	runCmd.Flags().BoolVar(&debugBytecode, "debug", false, "dump the compiled bytecode before running")
	runCmd.Flags().BoolVar(&showTiming, "timing", false, "report compile and execution times")
}

// readSource resolves the program text from -e or a file argument.
func readSource(args []string) (string, error) {
	if evalExpr != "" {
		return evalExpr, nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), nil
	}
	return "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}

func runScript(_ *cobra.Command, args []string) error {
	source, err := readSource(args)
	if err != nil {
		return err
	}

	if useInterpret && useBytecode {
		return fmt.Errorf("--interpret and --bytecode are mutually exclusive")
	}

	program, err := parser.Parse(source)
	if err != nil {
		return err
	}

	if useInterpret {
		start := time.Now()
		if err := interp.New().Interpret(program); err != nil {
			return err
		}
		if showTiming {
			fmt.Fprintf(os.Stderr, "\nExecution time: %v\n", time.Since(start))
		}
		return nil
	}

	compileStart := time.Now()
	compiled, err := bytecode.Compile(program)
	if err != nil {
		return err
	}
	compileTime := time.Since(compileStart)

	if debugBytecode {
		fmt.Println(bytecode.Disassemble(compiled))
	}

	execStart := time.Now()
	if err := bytecode.NewVM(compiled).Run(); err != nil {
		return err
	}
	execTime := time.Since(execStart)

	if showTiming {
		fmt.Fprintf(os.Stderr, "\nCompile time: %v\n", compileTime)
		fmt.Fprintf(os.Stderr, "Execution time: %v\n", execTime)
		fmt.Fprintf(os.Stderr, "Total time: %v\n", compileTime+execTime)
	}
	return nil
}
