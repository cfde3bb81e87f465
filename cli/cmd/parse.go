package cmd

import (
	"os"

	"github.com/qsift/qsift/cli/util"
	"github.com/qsift/qsift/client"
	"github.com/qsift/qsift/query"
	"github.com/spf13/cobra"
)

// parseCmd represents the parse command
var parseCmd = &cobra.Command{
	Use:   "parse [single-quoted query string]",
	Short: "Compile a query string into a predicate tree",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			bailf("parse requires exactly one single-quoted query string")
		}
		result, err := parse(cmd, args[0])
		checkErr(err)
		checkErr(util.PrintResult(os.Stdout, result, !util.StdoutRedirected()))
		if len(result.Filter.Errors) > 0 {
			os.Exit(1)
		}
	},
}

// parse compiles locally, or remotely when a server URL is set.
func parse(cmd *cobra.Command, rawQuery string) (query.Result, error) {
	if serverURL == "" {
		return query.Parse(rawQuery), nil
	}
	return client.New(serverURL).Parse(cmd.Context(), rawQuery)
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
