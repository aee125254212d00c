package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/averlee/treesig/internal/treesig/commands"
)

// NewBlobCommand creates the 'blob' command, which hashes a single file's
// content as a canonical blob object.
func NewBlobCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "blob <file>",
		Short: "Compute the blob hash of a single file",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := commands.Blob(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
