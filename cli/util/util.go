package util

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/qsift/qsift/query"
)

// StdoutRedirected returns true if stdout is redirected to a file or pipe.
func StdoutRedirected() bool {
	if fi, err := os.Stdout.Stat(); err == nil {
		return (fi.Mode() & os.ModeCharDevice) == 0
	}
	return false
}

// PrintResult writes a parse result for human consumption: parsing errors in
// red, the compiled tree as an s-expression followed by the full result as
// indented JSON. Colors are suppressed when colorize is false.
func PrintResult(w io.Writer, result query.Result, colorize bool) error {
	if len(result.Filter.Errors) > 0 {
		c := color.New(color.FgRed)
		if !colorize {
			c.DisableColor()
		}
		for _, e := range result.Filter.Errors {
			if e.ParamKey == "" {
				c.Fprintf(w, "error: %s\n", e.Message)
				continue
			}
			c.Fprintf(w, "error: %s (%s)\n", e.Message, e.Detail())
		}
		return nil
	}
	if result.Filter.Results != nil {
		c := color.New(color.FgCyan)
		if !colorize {
			c.DisableColor()
		}
		c.Fprintln(w, result.Filter.Results.String())
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}
