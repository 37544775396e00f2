// File: root.go
// Role: the cobra command tree root.
package main

import (
	"github.com/spf13/cobra"
)

const karpcliVersion = "0.1.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "karpcli",
		Short:         "Find the minimum mean cycle of a directed graph",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print karpcli's version",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(karpcliVersion)

			return nil
		},
	}
}
