package main

import "github.com/qsift/qsift/cli/cmd"

func main() {
	cmd.Execute()
}
