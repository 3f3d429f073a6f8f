package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/macropower/pathstring/pkg/pathstring"
)

var ErrNoMatch = errors.New("no path matched")

const (
	formRaw      = "raw"
	formPortable = "portable"
	formNative   = "native"
	formURI      = "uri"
)

type PathArgs struct {
	form      *string
	normalize *bool
	*RootArgs
}

func NewPathArgs(args *RootArgs) *PathArgs {
	return &PathArgs{
		form:      new(string),
		normalize: new(bool),
		RootArgs:  args,
	}
}

func (a *PathArgs) GetForm() string {
	return *a.form
}

func (a *PathArgs) GetNormalize() bool {
	return *a.normalize
}

// Format renders p in the form selected by --form.
func (a *PathArgs) Format(p pathstring.Path) (string, error) {
	if a.GetNormalize() {
		p = p.Normalize()
	}

	switch a.GetForm() {
	case formRaw, "":
		return p.RawPath(), nil
	case formPortable:
		return p.PortablePath(), nil
	case formNative:
		return p.NativePath(), nil
	case formURI:
		return p.String(), nil
	}

	return "", fmt.Errorf("%w: unknown form %q", ErrInvalidArgument, a.GetForm())
}

func addPathFlags(cmd *cobra.Command, args *PathArgs) {
	cmd.Flags().StringVar(args.form, "form", formRaw, "Output form (raw, portable, native, uri)")
	cmd.Flags().BoolVar(args.normalize, "normalize", false, "Normalize results before printing")
}

func printPaths(cmd *cobra.Command, args *PathArgs, paths ...pathstring.Path) error {
	for _, p := range paths {
		s, err := args.Format(p)
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(cmd.OutOrStdout(), s); err != nil {
			return fmt.Errorf("write path: %w", err)
		}
	}

	return nil
}

// NewNormalizeCmd returns the normalize command.
func NewNormalizeCmd(arg *RootArgs) *cobra.Command {
	args := NewPathArgs(arg)

	cmd := &cobra.Command{
		Use:     "normalize <path>...",
		Short:   "Remove redundant . and .. names from paths",
		Example: "  pathstring normalize a/b/../c 'C:\\a\\.\\b'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			paths := make([]pathstring.Path, 0, len(pArgs))
			for _, s := range pArgs {
				paths = append(paths, args.Parse(s).Normalize())
			}

			return printPaths(cmd, args, paths...)
		},
	}

	addPathFlags(cmd, args)

	return cmd
}

// NewResolveCmd returns the resolve command.
func NewResolveCmd(arg *RootArgs) *cobra.Command {
	args := NewPathArgs(arg)

	cmd := &cobra.Command{
		Use:   "resolve <base> <path>...",
		Short: "Resolve paths against a base path, left to right",
		Long: `Resolve each path against the result so far, starting from base.
An absolute path replaces the result, except that a path rooted by a single
separator keeps the drive of a Windows base.`,
		Example: "  pathstring resolve /usr local bin\n  pathstring resolve 'C:\\work' /tmp",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			result := args.Parse(pArgs[0])
			for _, s := range pArgs[1:] {
				result = result.Resolve(args.Parse(s))
			}

			return printPaths(cmd, args, result)
		},
	}

	addPathFlags(cmd, args)

	return cmd
}

// NewRelativizeCmd returns the relativize command.
func NewRelativizeCmd(arg *RootArgs) *cobra.Command {
	args := NewPathArgs(arg)

	cmd := &cobra.Command{
		Use:     "relativize <base> <path>",
		Short:   "Print the path that leads from base to path",
		Example: "  pathstring relativize /a/b /a/c/d",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			return printPaths(cmd, args, args.Parse(pArgs[0]).Relativize(args.Parse(pArgs[1])))
		},
	}

	addPathFlags(cmd, args)

	return cmd
}

// NewMatchCmd returns the match command.
func NewMatchCmd(arg *RootArgs) *cobra.Command {
	args := NewPathArgs(arg)

	cmd := &cobra.Command{
		Use:   "match <pattern> <path>...",
		Short: "Print the paths that match a glob pattern",
		Long: `Print the paths whose portable form matches the pattern. Patterns use '/'
separators and support '**' for any number of names. The command fails when
no path matches.`,
		Example: "  pathstring match 'src/**/*.go' src/main.go 'src\\pkg\\a.go'",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, pArgs []string) error {
			pattern := pArgs[0]
			logger := slog.With(slog.String("pattern", pattern))

			var (
				matched []pathstring.Path
				merr    *multierror.Error
			)

			for _, s := range pArgs[1:] {
				p := args.Parse(s)

				ok, err := p.Match(pattern)
				if err != nil {
					merr = multierror.Append(merr, err)

					continue
				}

				logger.Debug("matched path", slog.String("path", s), slog.Bool("match", ok))

				if ok {
					matched = append(matched, p)
				}
			}

			if err := merr.ErrorOrNil(); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
			}

			if len(matched) == 0 {
				return ErrNoMatch
			}

			return printPaths(cmd, args, matched...)
		},
	}

	addPathFlags(cmd, args)

	return cmd
}
