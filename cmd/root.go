// Package cmd wires the minishell binary's command line.
package cmd

import (
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"josephlewis.net/minishell/core/config"
	"josephlewis.net/minishell/core/interp"
)

var (
	cfgPath     string
	commandLine string
)

// rootCmd runs the interactive shell; positional arguments are
// accepted and ignored.
var rootCmd = &cobra.Command{
	Use:   "minishell",
	Short: "A small interactive POSIX-style shell",
	Long:  `minishell reads command lines from a terminal and runs them as pipelines of processes with redirections, here-documents and a handful of builtins.`,
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(afero.NewOsFs(), cfgPath)
		if err != nil {
			return err
		}

		interactive := commandLine == "" && term.IsTerminal(int(os.Stdin.Fd()))
		sh, err := interp.New(cfg, interactive)
		if err != nil {
			return err
		}

		var status int
		if commandLine != "" {
			status = sh.RunLine(commandLine)
		} else {
			status = sh.Run()
		}
		sh.Close()
		os.Exit(status)
		return nil
	},
	SilenceUsage: true,
}

// Execute runs the root command. It is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", ".", "config path")
	rootCmd.Flags().StringVarP(&commandLine, "command", "c", "", "run a single command line and exit")
}
