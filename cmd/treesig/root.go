package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/averlee/treesig/internal/treesig/commands"
)

var (
	jobs       int
	ignoreFile string
	verbose    bool
)

// NewRootCommand creates the top-level command: hash one directory tree and
// print the root digest.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "treesig <directory>",
		Short: "Compute a deterministic, git-compatible fingerprint of a directory tree",
		Long: `treesig hashes every file in a directory tree as a canonical blob object
and every directory as a canonical tree object embedding the hashes of its
children, bottom-up to a single root digest. The result depends only on
file contents, executability, and directory structure; it is bit-for-bit
identical to the hash git itself would compute for the same tree.`,
		Args:          exactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := commands.Hash(cmd.Context(), args[0], commands.Options{
				Jobs:       jobs,
				IgnoreFile: ignoreFile,
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}

	cmd.PersistentFlags().IntVarP(&jobs, "jobs", "j", 0, "Number of parallel hashing workers (default: number of CPUs)")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.Flags().StringVar(&ignoreFile, "ignore-file", "", "Gitignore-syntax file with extra exclusions (changes the hash)")

	return cmd
}

// configureLogging installs a text handler on stderr so stdout stays
// machine-readable. Only warnings surface unless -v is given.
func configureLogging() {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// exactArgs wraps cobra's validator so argument-count mistakes are reported
// with the usage exit status rather than the generic one.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(n)(cmd, args); err != nil {
			return usageError{err}
		}
		return nil
	}
}
