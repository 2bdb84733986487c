package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zephyrtronium/shunt"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("shunt: ")
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		log.Fatal(err)
	}
}

// newRootCmd creates the command with its own config and I/O streams.
func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	cfg := defaultConfig()
	cmd := &cobra.Command{
		Use:   "shunt [expression...]",
		Short: "Evaluate a one-line arithmetic expression",
		Long: `Shunt reads one line from standard input, or joins its arguments, and
prints the value of the arithmetic expression on it.

Expressions use + - * / ^ (power), root or $ (a root b is the a-th root of b),
brackets, and the constants pi, e, and tau. Everything else is ignored.

A minus sign at the start of the input or directly after a digit is part of
the number that follows, so "5-3" is two numbers. Operands are applied in
reverse order unless --conventional is given: "10/2" is 0.2. Pass
expressions starting with a minus sign after "--".`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.applyEnv(cmd)
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(&cfg, args, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cfg.bindFlags(cmd)
	return cmd
}

// run evaluates one expression and prints the result.
func run(cfg *config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	lg, err := cfg.openLogger(stderr)
	if err != nil {
		return err
	}
	defer lg.Close()

	var line string
	if len(args) > 0 {
		line = strings.Join(args, " ")
		lg.Debug("expression from %d arguments", len(args))
	} else {
		line, err = shunt.ReadLine(stdin)
		if err != nil {
			lg.Error("%v", err)
			return err
		}
	}
	lg.Debug("read %q", line)

	clean := shunt.Sanitize(line)
	if clean != strings.TrimSuffix(line, "\n") {
		lg.Info("ignored characters; evaluating %q", clean)
	}
	toks := shunt.Tokenize(clean)
	lg.Debug("tokens %v", toks)
	post := shunt.ToPostfix(toks)
	lg.Debug("postfix %v", post)

	if cfg.Steps {
		s := newStepPrinter(stdout, cfg.NoColor)
		s.print("Tokens", toks)
		s.print("Postfix", post)
	}

	r, err := shunt.Evaluate(post, cfg.options()...)
	if err != nil {
		lg.Error("evaluating %q: %v", clean, err)
		return fmt.Errorf("evaluating %q: %w", clean, err)
	}
	lg.Debug("result %g", r)
	_, err = fmt.Fprintln(stdout, shunt.Format(r, cfg.Digits))
	return err
}
