package commands

import (
	"github.com/spf13/cobra"

	kclcmd "kcl-lang.io/cli/cmd/kcl/commands"

	pathstringplugin "github.com/macropower/pathstring/pkg/kclplugin/pathstring"
)

// NewRunCmd returns the KCL run command, with the pathstring plugin available
// to programs as kcl_plugin.pathstring.
func NewRunCmd() *cobra.Command {
	pathstringplugin.Register()

	return kclcmd.NewRunCmd()
}
