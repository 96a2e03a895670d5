package storage

import (
	"github.com/spf13/cobra"
)

// GetCommand creates the top level command for the persistent store
func GetCommand() *cobra.Command {
	storageCmd := &cobra.Command{
		Use:   "storage",
		Short: "Top level command for the persistent store",
	}

	registerSubcommands(storageCmd)

	return storageCmd
}

func registerSubcommands(baseCmd *cobra.Command) {
	baseCmd.AddCommand(
		setCommand(),
		getCommand(),
	)
}
