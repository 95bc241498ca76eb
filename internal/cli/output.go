package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/is/pkg/card"
	"github.com/dmitrymomot/is/pkg/fn"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// CheckResult is one line of `is check` output.
type CheckResult struct {
	Predicate string `json:"predicate" yaml:"predicate"`
	Input     string `json:"input" yaml:"input"`
	Result    bool   `json:"result" yaml:"result"`
}

// CardResult is one line of `is card` output.
type CardResult struct {
	Input   string        `json:"input" yaml:"input"`
	Valid   bool          `json:"valid" yaml:"valid"`
	Issuer  card.Issuer   `json:"issuer,omitempty" yaml:"issuer,omitempty"`
	Issuers []card.Issuer `json:"issuers" yaml:"issuers"`
}

// defaultFormat picks the -o default: configured value first, then text for
// terminals and json for pipes and files.
func defaultFormat(configured string, w io.Writer) string {
	if configured != "" {
		return configured
	}
	if isTerminal(w) {
		return formatText
	}
	return formatJSON
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// render writes v in the structured formats; text is handled by textFn.
func render(w io.Writer, format string, v any, textFn func(io.Writer) error) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if err := textFn(tw); err != nil {
		return err
	}
	return tw.Flush()
}

func checkText(results []CheckResult) func(io.Writer) error {
	return func(w io.Writer) error {
		for _, r := range results {
			if _, err := fmt.Fprintf(w, "%t\t%s\t%s\n", r.Result, r.Predicate, r.Input); err != nil {
				return err
			}
		}
		return nil
	}
}

func cardText(results []CardResult) func(io.Writer) error {
	return func(w io.Writer) error {
		for _, r := range results {
			status := "invalid"
			if r.Valid {
				status = "valid"
			}
			issuers := "-"
			if len(r.Issuers) > 0 {
				issuers = strings.Join(fn.Map(r.Issuers, card.Issuer.Name), ", ")
			}
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", r.Input, status, issuers); err != nil {
				return err
			}
		}
		return nil
	}
}

func listText(names []string) func(io.Writer) error {
	return func(w io.Writer) error {
		_, err := io.WriteString(w, strings.Join(names, "\n")+"\n")
		return err
	}
}
