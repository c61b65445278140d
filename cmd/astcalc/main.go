package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/astcalc/astcalc"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "astcalc [flags] [expr ...]",
	Short: "Arithmetic calculator with syntax tree diagrams",
	Long: "astcalc evaluates arithmetic expressions with +, -, *, /, ^, the postfix\n" +
		"factorial !, parentheses, and the functions " + strings.Join(astcalc.Funcs(), ", ") + ".\n" +
		"Expressions given as arguments are evaluated in order; with no arguments,\n" +
		"astcalc reads expressions from stdin until exit, quit, or q.",
	Args: cobra.ArbitraryArgs,
	// SilenceUsage prevents printing usage on every error
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().Bool("ast", false, "print the syntax tree before each result")
	rootCmd.Flags().StringP("view", "v", "hierarchy", "syntax tree style: hierarchy | tree")
	rootCmd.Flags().UintP("prec", "p", 0, "evaluate at this many bits instead of float64")
	rootCmd.Flags().String("fmt", "%g", "result formatting verb")
	rootCmd.Flags().Bool("echo", false, "print the parsed form of each expression")
}

type session struct {
	ast  bool
	view string
	echo bool
	verb string
	// ctx is non-nil when evaluating at explicit precision.
	ctx *astcalc.Context
}

func newSession(cmd *cobra.Command) (*session, error) {
	s := &session{}
	var err error
	if s.ast, err = cmd.Flags().GetBool("ast"); err != nil {
		return nil, err
	}
	if s.view, err = cmd.Flags().GetString("view"); err != nil {
		return nil, err
	}
	if s.view != "hierarchy" && s.view != "tree" {
		return nil, fmt.Errorf("unknown view %q (want hierarchy or tree)", s.view)
	}
	if s.echo, err = cmd.Flags().GetBool("echo"); err != nil {
		return nil, err
	}
	if s.verb, err = cmd.Flags().GetString("fmt"); err != nil {
		return nil, err
	}
	prec, err := cmd.Flags().GetUint("prec")
	if err != nil {
		return nil, err
	}
	if prec > 0 {
		s.ctx = astcalc.NewContext(prec)
	}
	return s, nil
}

func run(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(args) > 0 {
		for _, arg := range args {
			if err := s.evalLine(out, arg); err != nil {
				return err
			}
		}
		return nil
	}
	return s.repl(cmd.InOrStdin(), out)
}

// repl reads one expression per line, printing errors and re-prompting
// rather than exiting.
func (s *session) repl(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Type exit or quit to stop the program!")
	sc := bufio.NewScanner(in)
	fmt.Fprint(out, ">>> ")
	for sc.Scan() {
		switch line := strings.TrimSpace(sc.Text()); line {
		case "":
		case "exit", "quit", "q":
			return nil
		default:
			if err := s.evalLine(out, line); err != nil {
				fmt.Fprintln(out, err)
			}
		}
		fmt.Fprint(out, ">>> ")
	}
	return sc.Err()
}

func (s *session) evalLine(out io.Writer, src string) error {
	n, err := astcalc.ParseString(src)
	if err != nil {
		return err
	}
	if s.echo {
		fmt.Fprintf(out, "%v\n", n)
	}
	if s.ast {
		fmt.Fprintln(out, "Here is the AST for your expression:")
		switch s.view {
		case "tree":
			fmt.Fprint(out, astcalc.Tree(n))
		default:
			fmt.Fprint(out, astcalc.Hierarchy(n))
		}
	}
	if s.ctx != nil {
		r, err := s.ctx.Eval(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, s.verb+"\n", r)
		return nil
	}
	r, err := astcalc.Eval(n)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, s.verb+"\n", r)
	return nil
}
