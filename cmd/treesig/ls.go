package main

import (
	"github.com/spf13/cobra"

	"github.com/averlee/treesig/internal/treesig/commands"
)

// NewLsCommand creates the 'ls' command, which prints the hashed top-level
// entries of a directory in ls-tree format.
func NewLsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls <directory>",
		Short: "List the hashed top-level entries of a directory tree",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := commands.List(cmd.Context(), args[0], commands.Options{
				Jobs:       jobs,
				IgnoreFile: ignoreFile,
			})
			if err != nil {
				return err
			}
			commands.PrintEntries(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().StringVar(&ignoreFile, "ignore-file", "", "Gitignore-syntax file with extra exclusions (changes the hash)")

	return cmd
}
