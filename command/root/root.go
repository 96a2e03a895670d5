package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pocketevm/pocketevm/command/demo"
	"github.com/pocketevm/pocketevm/command/run"
	"github.com/pocketevm/pocketevm/command/storage"
	"github.com/pocketevm/pocketevm/command/version"
)

type RootCommand struct {
	baseCmd *cobra.Command
}

func NewRootCommand() *RootCommand {
	rootCommand := &RootCommand{
		baseCmd: &cobra.Command{
			Use:   "pocketevm",
			Short: "Pocketevm is a minimal stack machine with Ethereum-style execution semantics",
		},
	}

	rootCommand.registerSubCommands()

	return rootCommand
}

func (rc *RootCommand) registerSubCommands() {
	rc.baseCmd.AddCommand(
		version.GetCommand(),
		run.GetCommand(),
		demo.GetCommand(),
		storage.GetCommand(),
	)
}

func (rc *RootCommand) Execute() {
	if err := rc.baseCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)

		os.Exit(1)
	}
}
