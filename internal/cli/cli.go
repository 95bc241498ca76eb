package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/is"
	"github.com/dmitrymomot/is/pkg/card"
	"github.com/dmitrymomot/is/pkg/fn"
	"github.com/dmitrymomot/is/pkg/logger"
	"github.com/dmitrymomot/is/pkg/validator"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitUsage  = 2
)

// exitNoValue accompanies a non-nil error and is never returned by Run.
const exitNoValue = -1

const usage = `usage: is [-o text|json|yaml] <command> [arguments]

commands:
  card <number>...                 validate card numbers and identify issuers
  check [-yaml] <predicate> <value>...
                                   run a named predicate against each value
  list                             print every predicate name

Exit status is 0 when every result is true, 1 when any is false and 2 on
usage errors.
`

// errUsage marks errors that should print usage and exit with ExitUsage.
var errUsage = errors.New("usage error")

type app struct {
	stdout io.Writer
	stderr io.Writer
	format string
	log    *slog.Logger
}

// Run executes the is command with args (without the program name) and
// returns the process exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer, cfg Config) int {
	if err := validator.Apply(
		validator.OneOf("IS_LOG_FORMAT", cfg.LogFormat, logger.FormatText, logger.FormatJSON),
		validator.OneOf("IS_OUTPUT", cfg.Output, "", formatText, formatJSON, formatYAML),
	); err != nil {
		fmt.Fprintf(stderr, "is: invalid configuration: %v\n", err)
		return ExitUsage
	}

	a := &app{
		stdout: stdout,
		stderr: stderr,
		log: logger.New(
			logger.WithEnvironment(cfg.Env, "is"),
			logger.WithLevel(cfg.LogLevel),
			logger.WithFormat(cfg.LogFormat),
			logger.WithOutput(stderr),
		).With(logger.Component("cli")),
	}

	fs := flag.NewFlagSet("is", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&a.format, "o", defaultFormat(cfg.Output, stdout), "output format: text, json or yaml")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			_, _ = io.WriteString(stdout, usage)
			return ExitOK
		}
		return a.usageError(err)
	}
	if err := validator.Apply(validator.OneOf("-o", a.format, formatText, formatJSON, formatYAML)); err != nil {
		return a.usageError(err)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return a.usageError(errors.New("missing command"))
	}

	code, err := a.dispatch(ctx, rest[0], rest[1:])
	if err != nil {
		if errors.Is(err, errUsage) {
			return a.usageError(err)
		}
		fmt.Fprintf(stderr, "is: %v\n", err)
		return ExitUsage
	}
	return code
}

func (a *app) dispatch(ctx context.Context, command string, args []string) (int, error) {
	switch command {
	case "card":
		return a.card(ctx, args)
	case "check":
		return a.check(ctx, args)
	case "list":
		return a.list()
	case "help", "-h", "--help":
		_, _ = io.WriteString(a.stdout, usage)
		return ExitOK, nil
	}
	return exitNoValue, fmt.Errorf("%w: unknown command %q", errUsage, command)
}

func (a *app) card(ctx context.Context, numbers []string) (int, error) {
	if len(numbers) == 0 {
		return exitNoValue, fmt.Errorf("%w: card needs at least one number", errUsage)
	}

	results := fn.Map(numbers, func(number string) CardResult {
		r := CardResult{
			Input:   number,
			Valid:   card.Valid(number),
			Issuers: card.Matches(number),
		}
		r.Issuer, _ = card.Classify(number)
		a.log.DebugContext(ctx, "card checked", logger.Card(number), logger.Issuer(r.Issuer), logger.Result(r.Valid))
		return r
	})

	if err := render(a.stdout, a.format, results, cardText(results)); err != nil {
		return exitNoValue, err
	}
	return exitCode(fn.Map(results, func(r CardResult) bool { return r.Valid })), nil
}

func (a *app) check(ctx context.Context, args []string) (int, error) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	asYAML := fs.Bool("yaml", false, "decode each value as a YAML scalar or document")
	if err := fs.Parse(args); err != nil {
		return exitNoValue, fmt.Errorf("%w: %w", errUsage, err)
	}

	rest := fs.Args()
	if len(rest) < 2 {
		return exitNoValue, fmt.Errorf("%w: check needs a predicate and at least one value", errUsage)
	}
	name, inputs := rest[0], rest[1:]

	p, ok := is.Lookup(name)
	if !ok {
		return exitNoValue, fmt.Errorf("%w: %q (run `is list`)", is.ErrUnknownPredicate, name)
	}

	results := make([]CheckResult, 0, len(inputs))
	for _, input := range inputs {
		var value any = input
		if *asYAML {
			var decoded any
			if err := yaml.Unmarshal([]byte(input), &decoded); err != nil {
				return exitNoValue, fmt.Errorf("decode %q as yaml: %w", input, err)
			}
			value = decoded
		}
		ok := p(value)
		a.log.DebugContext(ctx, "predicate checked", logger.Predicate(name), logger.Result(ok))
		results = append(results, CheckResult{Predicate: name, Input: input, Result: ok})
	}

	if err := render(a.stdout, a.format, results, checkText(results)); err != nil {
		return exitNoValue, err
	}
	return exitCode(fn.Map(results, func(r CheckResult) bool { return r.Result })), nil
}

func (a *app) list() (int, error) {
	names := is.Names()
	if err := render(a.stdout, a.format, names, listText(names)); err != nil {
		return exitNoValue, err
	}
	return ExitOK, nil
}

func (a *app) usageError(err error) int {
	fmt.Fprintf(a.stderr, "is: %v\n\n%s", err, usage)
	return ExitUsage
}

func exitCode(results []bool) int {
	if _, failed := fn.Find(results, fn.Not(func(ok bool) bool { return ok })); failed {
		return ExitFailed
	}
	return ExitOK
}
