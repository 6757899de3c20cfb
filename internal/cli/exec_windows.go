// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build windows

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hpe-storage/wmi-host-libs/internal/winutil"
	log "github.com/hpe-storage/wmi-host-libs/logger"
	"github.com/hpe-storage/wmi-host-libs/wmi"
)

// connect validates the process privileges and opens the target namespace
func connect(namespace string) (*wmi.Service, error) {
	if !winutil.IsProcessElevated() {
		return nil, fmt.Errorf("administrator privileges are required to access WMI")
	}
	return wmi.NewLocalService(namespace)
}

// selectInstances returns the class instances the command operates on,
// optionally limited by a "Property=Value" selector.
func selectInstances(service *wmi.Service, className, where string) ([]*wmi.Instance, error) {
	if where == "" {
		return service.Instances(className)
	}

	property, value, err := parseAssignment(where)
	if err != nil {
		return nil, err
	}

	instance, err := service.FindFirstInstance(wmi.InstanceQuery(className, property, value))
	if err != nil {
		return nil, err
	}
	return []*wmi.Instance{instance}, nil
}

func runClasses(cmd *cobra.Command, namespace, filter string, showProperties, showMethods bool) error {
	out := cmd.OutOrStdout()

	service, err := connect(namespace)
	if err != nil {
		return err
	}
	defer service.Close()

	names, err := service.ClassNames(filter)
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Fprintln(out, name)
		if !showProperties && !showMethods {
			continue
		}

		class, err := service.GetObject(name)
		if err != nil {
			return err
		}

		if showProperties {
			properties, err := class.PropertyNames()
			if err != nil {
				class.Close()
				return err
			}
			for _, property := range properties {
				fmt.Fprintf(out, "    %s\n", property)
			}
		}
		class.Close()

		if showMethods {
			if err := dumpMethodTable(cmd, service, name); err != nil {
				return err
			}
		}
	}
	return nil
}

func runDump(cmd *cobra.Command, namespace, className, where string, showMethods bool) error {
	out := cmd.OutOrStdout()

	service, err := connect(namespace)
	if err != nil {
		return err
	}
	defer service.Close()

	instances, err := selectInstances(service, className, where)
	if err != nil {
		return err
	}
	defer closeAll(instances)

	for _, instance := range instances {
		path, err := instance.Path()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s\n", path)

		names, err := instance.PropertyNames()
		if err != nil {
			return err
		}
		for _, name := range names {
			value, err := instance.GetAsString(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "    %s = %s\n", name, value)
		}
	}

	if showMethods {
		return dumpMethodTable(cmd, service, className)
	}
	return nil
}

func dumpMethodTable(cmd *cobra.Command, service *wmi.Service, className string) error {
	out := cmd.OutOrStdout()

	class, err := service.GetObject(className)
	if err != nil {
		return err
	}
	defer class.Close()

	methods, err := class.Methods()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nMethods of %s:\n", className)
	for _, method := range methods {
		fmt.Fprintf(out, "    %s\n", method.Name)
		for _, in := range method.InParams {
			fmt.Fprintf(out, "        [in]  %s\n", in)
		}
		for _, outParam := range method.OutParams {
			fmt.Fprintf(out, "        [out] %s\n", outParam)
		}
	}
	return nil
}

func runInvoke(cmd *cobra.Command, namespace, className, methodName, where string, inputArgs []string) error {
	out := cmd.OutOrStdout()

	inputs, err := parseInputParams(inputArgs)
	if err != nil {
		return err
	}

	service, err := connect(namespace)
	if err != nil {
		return err
	}
	defer service.Close()

	instances, err := selectInstances(service, className, where)
	if err != nil {
		return err
	}
	defer closeAll(instances)

	for _, instance := range instances {
		path, err := instance.Path()
		if err != nil {
			return err
		}

		returnValue, outputs, err := instance.InvokeMethod(methodName, inputs)
		if err != nil {
			log.Errorf("Failed invoking method, path=%v, method=%v, err=%v", path, methodName, err)
			return err
		}

		fmt.Fprintf(out, "%s.%s() = %d\n", path, methodName, returnValue)
		for name, value := range outputs {
			fmt.Fprintf(out, "    [out] %s = %v\n", name, value)
		}
	}
	return nil
}

func closeAll(instances []*wmi.Instance) {
	for _, instance := range instances {
		instance.Close()
	}
}
