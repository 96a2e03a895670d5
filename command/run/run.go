package run

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketevm/pocketevm/command/helper"
	"github.com/pocketevm/pocketevm/helper/hex"
)

var params struct {
	code   string
	report bool
}

func GetCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [tokens]",
		Short: "Executes a bytecode program given as two-character hex tokens",
		RunE:  runCommand,
	}

	helper.RegisterMachineFlags(runCmd)

	runCmd.Flags().StringVar(
		&params.code,
		"code",
		"",
		"the program as one contiguous hex string, instead of token arguments",
	)

	runCmd.Flags().BoolVar(
		&params.report,
		"report",
		false,
		"print a state report after the execution",
	)

	return runCmd
}

func runCommand(cmd *cobra.Command, args []string) error {
	tokens := args

	if params.code != "" {
		var err error

		tokens, err = hex.TokenizeHex(params.code)
		if err != nil {
			return fmt.Errorf("invalid code: %w", err)
		}
	}

	logger := helper.GetLogger(cmd)

	machine, err := helper.OpenVM(cmd, logger)
	if err != nil {
		return err
	}

	defer helper.CloseVM(machine, logger)

	if err := machine.Execute(tokens); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}

	if params.report {
		report, err := machine.Snapshot()
		if err != nil {
			return err
		}

		cmd.Println(helper.FormatReport(report))
	}

	return nil
}
