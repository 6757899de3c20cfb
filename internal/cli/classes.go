// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package cli

import (
	"github.com/spf13/cobra"
)

var (
	classesFilter     string
	classesProperties bool
	classesMethods    bool
)

var classesCmd = &cobra.Command{
	Use:   "classes",
	Short: "List the WMI class names of a namespace",
	Long: `List the WMI class names of a namespace. The filter is matched against
the class name with LIKE semantics and may carry '%' wildcards. With
--properties or --methods, the class definition is dumped for each match.

Examples:
  wmiutil classes
  wmiutil classes --filter "Win32_%"
  wmiutil classes --filter Win32_Process --properties --methods
  wmiutil classes -n ROOT\WMI --filter "MSiSCSI%"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runClasses(cmd, namespace, classesFilter, classesProperties, classesMethods)
	},
}

func init() {
	classesCmd.Flags().StringVarP(&classesFilter, "filter", "f", "", "LIKE filter applied to the class names")
	classesCmd.Flags().BoolVarP(&classesProperties, "properties", "p", false, "also list each class's property names")
	classesCmd.Flags().BoolVarP(&classesMethods, "methods", "m", false, "also list each class's methods and their parameters")
}
