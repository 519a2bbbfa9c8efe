package main

import "josephlewis.net/minishell/cmd"

func main() {
	cmd.Execute()
}
