package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/pathstring/pkg/outputs"
	"github.com/macropower/pathstring/pkg/pserrors"
)

const manifestDesc = `Work with build-output manifests.

A manifest lists build artifacts with paths relative to the directory that
holds it. The manifest format follows the file extension: .json or .yaml,
optionally compressed with .gz or .zst.
`

type ManifestArgs struct {
	output *string
	*RootArgs
}

func NewManifestArgs(args *RootArgs) *ManifestArgs {
	return &ManifestArgs{
		output:   new(string),
		RootArgs: args,
	}
}

func (a *ManifestArgs) GetOutput() string {
	return *a.output
}

// NewManifestCmd returns the manifest command.
func NewManifestCmd(arg *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Validate, describe, and move build-output manifests",
		Long:  manifestDesc,
	}

	cmd.AddCommand(NewManifestValidateCmd(arg))
	cmd.AddCommand(NewManifestSchemaCmd())
	cmd.AddCommand(NewManifestRebaseCmd(arg))

	return cmd
}

// NewManifestValidateCmd returns the manifest validate command.
func NewManifestValidateCmd(args *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:     "validate <file>...",
		Short:   "Check that manifests are valid",
		Example: "  pathstring manifest validate build/output.json build/lib/output.yaml.zst",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			var merr *multierror.Error

			for _, s := range pArgs {
				file := args.Parse(s)

				e, err := outputs.LoadFile(file)
				if err != nil {
					merr = multierror.Append(merr, err)

					continue
				}

				slog.Debug("valid manifest", slog.String("file", file.String()), slog.Int("outputs", len(e.Outputs)))

				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s: %d outputs\n", s, len(e.Outputs)); err != nil {
					return fmt.Errorf("%w: %w", pserrors.ErrWrite, err)
				}
			}

			return merr.ErrorOrNil()
		},
	}
}

// NewManifestSchemaCmd returns the manifest schema command.
func NewManifestSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of manifests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := json.MarshalIndent(outputs.Schema(), "", "  ")
			if err != nil {
				return fmt.Errorf("%w: %w", pserrors.ErrJSONMarshal, err)
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), string(data)); err != nil {
				return fmt.Errorf("%w: %w", pserrors.ErrWrite, err)
			}

			return nil
		},
	}
}

// NewManifestRebaseCmd returns the manifest rebase command.
func NewManifestRebaseCmd(arg *RootArgs) *cobra.Command {
	args := NewManifestArgs(arg)

	cmd := &cobra.Command{
		Use:   "rebase <file> <dir>",
		Short: "Rewrite a manifest so that its paths are relative to another directory",
		Long: `Load a manifest, then write it to dir (or to --output) with every path
re-expressed relative to its new location. Artifacts keep pointing at the same
files.`,
		Example: "  pathstring manifest rebase build/output.json dist",
		Args:    cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, pArgs []string) error {
			src := args.Parse(pArgs[0])
			dir := args.Parse(pArgs[1])

			e, err := outputs.LoadFile(src)
			if err != nil {
				return err //nolint:wrapcheck // Already carries the file.
			}

			dst := outputs.ManifestPath(dir)
			if args.GetOutput() != "" {
				dst = args.Parse(args.GetOutput())
			}

			slog.Debug("rebasing manifest",
				slog.String("from", src.String()),
				slog.String("to", dst.String()),
			)

			for i, o := range e.Outputs {
				e.Outputs[i].Path = o.Path.Normalize()
			}

			if err := outputs.SaveFile(dst, e); err != nil {
				return fmt.Errorf("save %s: %w", dst, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(args.output, "output", "o", "", "Write the manifest to this file instead of <dir>/output.json")
	must(cmd.MarkFlagFilename("output"))

	return cmd
}
