// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

// Package cli provides the command-line interface implementation for
// wmiutil.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hpe-storage/wmi-host-libs/logger"
	"github.com/hpe-storage/wmi-host-libs/wmi"
)

var (
	namespace string
	logLevel  string
	logFile   string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "wmiutil",
	Short: "A CLI tool for browsing WMI classes and invoking WMI methods",
	Long: `wmiutil enumerates the classes of a WMI namespace, dumps the properties
and methods of class instances, and invokes WMI methods with named
parameters.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.InitLogging(logFile, &logger.LogParams{Level: logLevel}, logFile == "")
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Show help and exit 0 if no subcommand is provided
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&namespace, "namespace", "n", wmi.DefaultNamespace, "WMI namespace to connect to")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", logger.DefaultLogLevel, "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log to the given file instead of the console")

	// Add subcommands
	rootCmd.AddCommand(classesCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(invokeCmd)
}
