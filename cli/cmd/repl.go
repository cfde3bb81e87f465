package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/qsift/qsift/cli/util"
	qutil "github.com/qsift/qsift/util"
	"github.com/spf13/cobra"
)

const prompt = "qsift # "

var help = map[string]string{
	"": `Enter a query string to compile it into a predicate tree.

Examples:
  filter[age][greater-than]=10
  filter[age]=10,20
  filter[name]=bob&filter[city]=null

Commands:
  \h [topic]   help (topics: operators)
  exit         leave the repl`,
	"operators": `Operators are named in the second bracket segment:

  equals, not-equals
  greater-than, greater-or-equal, less-than, less-or-equal
  substring-match
  in-set, not-in-set

When no operator is given, one is chosen from the value: arrays get in-set,
numbers and dates get equals, strings get substring-match, and null gets a
null check.`,
}

// helpTopics lists the named help topics in sorted order. The general text
// lives under the empty key and is not a topic.
func helpTopics() []string {
	topics := []string{}
	for _, topic := range qutil.Okeys(help) {
		if topic != "" {
			topics = append(topics, topic)
		}
	}
	return topics
}

// replCmd represents the repl command
var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Compile query strings interactively",
	Run: func(cmd *cobra.Command, args []string) {
		checkErr(runRepl(cmd))
	},
}

func runRepl(cmd *cobra.Command) error {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     "/tmp/qsift-history.tmp",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		VimMode:         false,
	})
	if err != nil {
		return err
	}
	defer l.Close()
	l.CaptureExitSignal()
	fmt.Println(`Type "help" for help.`)
	fmt.Println()

	for {
		line, err := l.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		line = strings.TrimSpace(line)

		switch {
		case line == "":
			continue
		case line == "exit":
			return nil
		case line == "help", strings.HasPrefix(line, "\\h"):
			_, topic, _ := strings.Cut(line, " ")
			text, ok := help[topic]
			if !ok {
				fmt.Printf("no help for %q (topics: %s)\n", topic, strings.Join(helpTopics(), ", "))
				continue
			}
			fmt.Println(text)
			continue
		case strings.HasPrefix(line, "\\"):
			fmt.Println("unrecognized command: " + line)
			continue
		}

		l.SaveHistory(line)
		result, err := parse(cmd, line)
		if err != nil {
			fmt.Println("ERROR: " + err.Error())
			continue
		}
		if err := util.PrintResult(os.Stdout, result, true); err != nil {
			fmt.Println("ERROR: " + err.Error())
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(replCmd)
}
