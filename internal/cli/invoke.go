// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package cli

import (
	"github.com/spf13/cobra"
)

var (
	invokeWhere  string
	invokeInputs []string
)

var invokeCmd = &cobra.Command{
	Use:   "invoke <class> <method>",
	Short: "Invoke a WMI method on each selected instance of a class",
	Long: `Invoke a WMI method on every instance of the given class, or on the
instances selected by --where. Input parameters are passed by name with
--in and are parsed as typed literals (booleans, integers, floats, and
strings). The method's return code and out-parameters are printed for
each invocation.

Examples:
  wmiutil invoke Win32_LogicalDisk Chkdsk --where DeviceID=C: --in FixErrors=false
  wmiutil invoke Win32_Process Create --in "CommandLine=notepad.exe"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInvoke(cmd, namespace, args[0], args[1], invokeWhere, invokeInputs)
	},
}

func init() {
	invokeCmd.Flags().StringVarP(&invokeWhere, "where", "w", "", "Property=Value selector limiting the target instances")
	invokeCmd.Flags().StringArrayVarP(&invokeInputs, "in", "i", nil, "Name=Value input parameter (repeatable)")
}
