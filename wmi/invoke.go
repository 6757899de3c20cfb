// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build windows
// +build windows

package wmi

import (
	"fmt"

	log "github.com/hpe-storage/wmi-host-libs/logger"
)

// wmiReturnValueKey is the well known out-parameter carrying a method's
// return code
const wmiReturnValueKey = "ReturnValue"

// InvokeMethod executes a WMI method on this instance with the given named
// input parameters. It returns the method's ReturnValue code and a map of
// all remaining out-parameters.
func (i *Instance) InvokeMethod(method string, inputs map[string]interface{}) (int32, map[string]interface{}, error) {
	log.Tracef(">>>>> InvokeMethod, method=%v", method)
	defer log.Trace("<<<<< InvokeMethod")

	executor, err := i.BeginInvoke(method)
	if err != nil {
		return 0, nil, err
	}
	defer executor.End()

	for name, value := range inputs {
		executor.In(name, value)
	}

	executor.Execute()

	outputs := make(map[string]interface{})
	executor.OutAll(outputs)

	returnValue := executor.ReturnValue()
	return returnValue, outputs, executor.Error()
}

// BeginInvoke starts a fluent method invocation on this instance. Callers
// chain In() calls to set named input parameters, Execute() to run the
// method, Out() calls to fetch out-parameters, and End() to release held
// resources. The first error sticks; subsequent calls are no-ops.
func (i *Instance) BeginInvoke(method string) (*MethodExecutor, error) {
	className, err := i.Class()
	if err != nil {
		return nil, err
	}

	objectPath, err := i.RelPath()
	if err != nil {
		return nil, err
	}

	// Method signatures hang off the class definition, not the instance
	classObject, err := i.service.GetObject(className)
	if err != nil {
		return nil, err
	}
	defer classObject.Close()

	signature, err := classObject.GetMethodParameters(method)
	if err != nil {
		return nil, err
	}

	var inParams *Instance
	if signature != nil {
		defer signature.Close()
		if inParams, err = signature.SpawnInstance(); err != nil {
			return nil, err
		}
	}

	return &MethodExecutor{
		method:  method,
		path:    objectPath,
		service: i.service,
		in:      inParams,
	}, nil
}

// MethodExecutor carries the state of an in-flight method invocation
type MethodExecutor struct {
	method  string
	path    string
	service *Service
	in      *Instance
	out     *Instance
	err     error
}

// In sets a named input parameter
func (e *MethodExecutor) In(name string, value interface{}) *MethodExecutor {
	if e.err == nil {
		if e.in == nil {
			e.err = fmt.Errorf("method %s takes no input parameters", e.method)
			return e
		}
		e.err = e.in.Put(name, value)
	}
	return e
}

// Execute invokes the method with the accumulated input parameters
func (e *MethodExecutor) Execute() *MethodExecutor {
	if e.err == nil {
		e.out, e.err = e.service.ExecMethod(e.path, e.method, e.in)
	}
	return e
}

// Out fetches a named out-parameter into the passed pointer. Supported
// destinations are the pointer types matching the parameter's automation
// type, *string, and *int.
func (e *MethodExecutor) Out(name string, value interface{}) *MethodExecutor {
	if e.err != nil {
		return e
	}
	if e.out == nil {
		e.err = fmt.Errorf("method %s was not executed or returned no output", e.method)
		return e
	}

	switch dst := value.(type) {
	case *string:
		*dst, e.err = e.out.GetAsString(name)
	case *int:
		*dst, e.err = e.out.GetAsInt(name)
	default:
		var ret interface{}
		ret, _, _, e.err = e.out.GetAsAny(name)
		if e.err == nil {
			e.err = assignOutParam(name, value, ret)
		}
	}
	return e
}

// OutAll drains every out-parameter except ReturnValue into the given map
func (e *MethodExecutor) OutAll(outputs map[string]interface{}) *MethodExecutor {
	if e.err != nil {
		return e
	}
	if e.out == nil {
		// Methods without out-parameters legitimately return no object
		return e
	}

	var properties map[string]interface{}
	properties, e.err = e.out.GetAllProperties()
	for name, value := range properties {
		if name == wmiReturnValueKey {
			continue
		}
		outputs[name] = value
	}
	return e
}

// ReturnValue obtains the invoked method's return code. A zero value is
// reported when the method declared no ReturnValue.
func (e *MethodExecutor) ReturnValue() int32 {
	if e.err != nil || e.out == nil {
		return 0
	}

	ret, err := e.out.GetAsInt(wmiReturnValueKey)
	if err != nil {
		return 0
	}
	return int32(ret)
}

// Error returns the first error encountered during the invocation
func (e *MethodExecutor) Error() error {
	return e.err
}

// End releases the resources held by the invocation. Always returns the
// first error encountered so callers can chain it.
func (e *MethodExecutor) End() error {
	e.in.Close()
	e.out.Close()
	return e.err
}

func assignOutParam(name string, dst interface{}, src interface{}) error {
	switch d := dst.(type) {
	case *bool:
		if v, ok := src.(bool); ok {
			*d = v
			return nil
		}
	case *int32:
		if v, ok := src.(int32); ok {
			*d = v
			return nil
		}
	case *uint32:
		if v, ok := src.(uint32); ok {
			*d = v
			return nil
		}
	case *int64:
		if v, ok := src.(int64); ok {
			*d = v
			return nil
		}
	case *uint64:
		if v, ok := src.(uint64); ok {
			*d = v
			return nil
		}
	case *interface{}:
		*d = src
		return nil
	}
	return fmt.Errorf("cannot assign out-parameter %s of type %T to destination %T", name, src, dst)
}
