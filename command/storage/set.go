package storage

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pocketevm/pocketevm/command/helper"
)

func setCommand() *cobra.Command {
	setCmd := &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Durably stores an integer value under a key",
		Args:  cobra.ExactArgs(2),
		RunE:  runSet,
	}

	helper.RegisterStorageFlags(setCmd)

	return setCmd
}

func runSet(cmd *cobra.Command, args []string) error {
	key := args[0]

	value, err := strconv.ParseInt(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid value %q: %w", args[1], err)
	}

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

	if err := store.Put(key, value); err != nil {
		return err
	}

	cmd.Println(helper.FormatKV([]string{
		fmt.Sprintf("Key|%s", key),
		fmt.Sprintf("Value|%d", value),
	}))

	return nil
}
