// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package cli

import (
	"github.com/spf13/cobra"
)

var (
	dumpWhere   string
	dumpMethods bool
)

var dumpCmd = &cobra.Command{
	Use:   "dump <class>",
	Short: "Dump the properties of each instance of a WMI class",
	Long: `Dump every property of every instance of the given WMI class. Null
property values print as NULL and boolean values as true/false.

Examples:
  wmiutil dump Win32_LogicalDisk
  wmiutil dump Win32_LogicalDisk --where DeviceID=C:
  wmiutil dump Win32_Process --methods`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump(cmd, namespace, args[0], dumpWhere, dumpMethods)
	},
}

func init() {
	dumpCmd.Flags().StringVarP(&dumpWhere, "where", "w", "", "Property=Value selector limiting the dumped instances")
	dumpCmd.Flags().BoolVarP(&dumpMethods, "methods", "m", false, "also list the class methods and their parameters")
}
