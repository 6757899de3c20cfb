// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseAssignment splits a "Name=Value" argument into its parts
func parseAssignment(arg string) (name, value string, err error) {
	idx := strings.Index(arg, "=")
	if idx <= 0 {
		return "", "", fmt.Errorf("invalid assignment %q, expected Name=Value", arg)
	}
	return arg[:idx], arg[idx+1:], nil
}

// parseValueLiteral converts a command line literal into a typed Go value.
// Booleans, integers, and floats convert to their natural types; single or
// double quotes force a string; everything else stays a string.
func parseValueLiteral(literal string) interface{} {
	if len(literal) >= 2 {
		for _, quote := range []byte{'\'', '"'} {
			if literal[0] == quote && literal[len(literal)-1] == quote {
				return literal[1 : len(literal)-1]
			}
		}
	}

	switch literal {
	case "true":
		return true
	case "false":
		return false
	}

	if intValue, err := strconv.ParseInt(literal, 0, 32); err == nil {
		return int32(intValue)
	}
	if intValue, err := strconv.ParseInt(literal, 0, 64); err == nil {
		return intValue
	}
	if uintValue, err := strconv.ParseUint(literal, 0, 64); err == nil {
		return uintValue
	}
	if floatValue, err := strconv.ParseFloat(literal, 64); err == nil {
		return floatValue
	}

	return literal
}

// parseInputParams converts repeated "Name=Value" arguments into the named
// input parameter map a WMI method invocation expects.
func parseInputParams(args []string) (map[string]interface{}, error) {
	inputs := make(map[string]interface{})
	for _, arg := range args {
		name, value, err := parseAssignment(arg)
		if err != nil {
			return nil, err
		}
		inputs[name] = parseValueLiteral(value)
	}
	return inputs, nil
}
