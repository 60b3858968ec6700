package app

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/isofix/verify"
)

// errChecksFailed is the command-level failure carrying exit status 1.
var errChecksFailed = errors.New("verification failed")

// verifyOptions carries the raw flag values of `isofix verify`.
type verifyOptions struct {
	baseDir string
	verbose bool
}

// NewVerify builds the `verify` subcommand.
func NewVerify() *cobra.Command {
	opts := &verifyOptions{}

	cmd := &cobra.Command{
		Use:   "verify <metadata.json> [flags]",
		Short: "verify fixture metadata against its graph files",
		Long: `
Verify loads a metadata.json document, reloads every referenced graph
pair, recomputes counts, canonical signatures, isomorphism sets and
subgraph embeddings, and checks each declared claim. The exit status is
non-zero when any check fails.
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.baseDir, "base-dir", "", "base directory for pattern/target paths (defaults to the metadata's directory)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "print every check result instead of only failures")

	return cmd
}

// run executes verification and maps failed checks onto a non-zero exit.
func (o *verifyOptions) run(cmd *cobra.Command, metadataPath string) error {
	result, err := verify.Verify(metadataPath, verify.Options{BaseDir: o.baseDir})
	if err != nil {
		return err
	}

	result.Print(cmd.OutOrStdout(), cmd.ErrOrStderr(), o.verbose)
	if !result.OK() {
		return errChecksFailed
	}

	return nil
}
