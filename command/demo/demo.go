package demo

import (
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/pocketevm/pocketevm/command/helper"
	"github.com/pocketevm/pocketevm/vm"
)

// built-in demonstration programs
var (
	// PUSH1 3, PUSH1 1, MSTORE, PUSH1 1, MLOAD
	memoryProgram = []string{"60", "03", "60", "01", "52", "60", "01", "51"}

	arithmeticPrograms = [][]string{
		{"60", "03", "60", "02", "01"}, // PUSH1 3, PUSH1 2, ADD
		{"60", "03", "60", "02", "02"}, // PUSH1 3, PUSH1 2, SUB
		{"60", "03", "60", "02", "03"}, // PUSH1 3, PUSH1 2, MUL
	}
)

func GetCommand() *cobra.Command {
	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "Runs the built-in demonstration scenarios",
		Args:  cobra.NoArgs,
		RunE:  runCommand,
	}

	helper.RegisterMachineFlags(demoCmd)

	return demoCmd
}

func runCommand(cmd *cobra.Command, _ []string) error {
	logger := helper.GetLogger(cmd)

	if err := memoryScenario(cmd, logger); err != nil {
		return err
	}

	if err := reopenScenario(cmd, logger); err != nil {
		return err
	}

	return arithmeticScenario(cmd, logger)
}

// memoryScenario exercises the memory opcodes and the imperative
// persistent store accessors on one machine
func memoryScenario(cmd *cobra.Command, logger hclog.Logger) error {
	machine, err := helper.OpenVM(cmd, logger)
	if err != nil {
		return err
	}

	defer helper.CloseVM(machine, logger)

	if err := machine.Execute(memoryProgram); err != nil {
		return err
	}

	if err := printReport(cmd, machine); err != nil {
		return err
	}

	if err := machine.Store("persist_key", 123); err != nil {
		return err
	}

	value, err := machine.Load("persist_key")
	if err != nil {
		return err
	}

	cmd.Printf("After storing to persistent storage: %d\n", value)

	return printReport(cmd, machine)
}

// reopenScenario opens a fresh machine on the same backing path, it
// must observe the durable write of the previous scenario
func reopenScenario(cmd *cobra.Command, logger hclog.Logger) error {
	machine, err := helper.OpenVM(cmd, logger)
	if err != nil {
		return err
	}

	defer helper.CloseVM(machine, logger)

	value, err := machine.Load("persist_key")
	if err != nil {
		return err
	}

	cmd.Printf("Retrieving from persistent storage in a new instance: %d\n", value)

	return nil
}

// arithmeticScenario composes the three arithmetic programs against one
// machine, continuing past failures and reporting them together
func arithmeticScenario(cmd *cobra.Command, logger hclog.Logger) error {
	machine, err := helper.OpenVM(cmd, logger)
	if err != nil {
		return err
	}

	defer helper.CloseVM(machine, logger)

	var result *multierror.Error

	for _, program := range arithmeticPrograms {
		if err := machine.Execute(program); err != nil {
			result = multierror.Append(result, err)
		}
	}

	if err := printReport(cmd, machine); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func printReport(cmd *cobra.Command, machine *vm.VM) error {
	report, err := machine.Snapshot()
	if err != nil {
		return err
	}

	cmd.Println(helper.FormatReport(report))

	return nil
}
