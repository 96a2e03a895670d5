package version

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pocketevm/pocketevm/command/helper"
	"github.com/pocketevm/pocketevm/versioning"
)

func GetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Returns the current version",
		Args:  cobra.NoArgs,
		Run:   runCommand,
	}
}

func runCommand(cmd *cobra.Command, _ []string) {
	var buffer bytes.Buffer

	buffer.WriteString("\n[VERSION INFO]\n")
	buffer.WriteString(helper.FormatKV([]string{
		fmt.Sprintf("Release version|%s", versioning.Version),
		fmt.Sprintf("Git branch|%s", versioning.Branch),
		fmt.Sprintf("Commit hash|%s", versioning.Commit),
		fmt.Sprintf("Build time|%s", versioning.BuildTime),
	}))

	cmd.Println(buffer.String())
}
