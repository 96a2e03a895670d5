package storage

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketevm/pocketevm/command/helper"
)

func getCommand() *cobra.Command {
	getCmd := &cobra.Command{
		Use:   "get <key>",
		Short: "Loads the stored value for a key, 0 when the key was never stored",
		Args:  cobra.ExactArgs(1),
		RunE:  runGet,
	}

	helper.RegisterStorageFlags(getCmd)

	return getCmd
}

func runGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	logger := helper.GetLogger(cmd)

	store, err := helper.OpenStorage(cmd, logger)
	if err != nil {
		return err
	}

	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close the store", "err", err)
		}
	}()

	value, err := store.Get(key)
	if err != nil {
		return err
	}

	cmd.Println(helper.FormatKV([]string{
		fmt.Sprintf("Key|%s", key),
		fmt.Sprintf("Value|%d", value),
	}))

	return nil
}
