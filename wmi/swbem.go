// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build windows
// +build windows

package wmi

import (
	"fmt"
	"runtime"
	"sync"

	ole "github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
	"github.com/hashicorp/go-multierror"
	log "github.com/hpe-storage/wmi-host-libs/logger"
	"github.com/scjalliance/comshim"
)

// ScriptServices accesses WMI through the WbemScripting.SWbemLocator
// automation interface. The scripting objects accept method parameters
// positionally, which makes this layer convenient for one-shot static
// method calls where building a named in-parameter object is overkill.
// Ref: https://docs.microsoft.com/en-us/windows/desktop/wmisdk/swbemservices
type ScriptServices struct {
	mutex sync.Mutex

	locatorRaw  *ole.IUnknown  // For release
	locator     *ole.IDispatch // For calls
	servicesRaw *ole.VARIANT   // For release
	services    *ole.IDispatch // For calls
}

// NewScriptServices creates a ScriptServices object connected to the given
// namespace on the local system. Callers must Close() the returned object.
func NewScriptServices(namespace string) (s *ScriptServices, err error) {
	log.Tracef(">>>>> NewScriptServices, namespace=%v", namespace)
	defer log.Trace("<<<<< NewScriptServices")

	comshim.Add(1)
	defer func() {
		if err != nil {
			comshim.Done()
		}
	}()

	locatorRaw, err := oleutil.CreateObject("WbemScripting.SWbemLocator")
	if err != nil {
		return nil, fmt.Errorf("failed creating SWbemLocator object: %v", err)
	}

	locator, err := locatorRaw.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		locatorRaw.Release()
		return nil, fmt.Errorf("failed SWbemLocator QueryInterface: %v", err)
	}

	servicesRaw, err := oleutil.CallMethod(locator, "ConnectServer", nil, namespace)
	if err != nil {
		locator.Release()
		locatorRaw.Release()
		return nil, fmt.Errorf("failed SWbemLocator.ConnectServer to %s: %v", namespace, err)
	}

	return &ScriptServices{
		locatorRaw:  locatorRaw,
		locator:     locator,
		servicesRaw: servicesRaw,
		services:    servicesRaw.ToIDispatch(),
	}, nil
}

// Close clears and releases all resources held by this ScriptServices
// object. All release failures are aggregated into the returned error.
func (s *ScriptServices) Close() (err error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.locator == nil {
		return fmt.Errorf("ScriptServices is not initialized")
	}

	if clearErr := s.servicesRaw.Clear(); clearErr != nil {
		err = multierror.Append(err, clearErr)
	}
	s.locator.Release()
	s.locatorRaw.Release()
	s.services = nil
	s.servicesRaw = nil
	s.locator = nil
	s.locatorRaw = nil
	comshim.Done()
	return err
}

// Get obtains an SWbemObject for the given object path. The caller must
// Clear() the returned VARIANT.
func (s *ScriptServices) Get(objectPath string) (*ole.VARIANT, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.services == nil {
		return nil, fmt.Errorf("ScriptServices has been closed")
	}
	return oleutil.CallMethod(s.services, "Get", objectPath)
}

// CallMethod executes a method on the given WMI class with positional
// parameters and returns the method's result VARIANT. The caller must
// Clear() the returned VARIANT.
func (s *ScriptServices) CallMethod(className, methodName string, params ...interface{}) (result *ole.VARIANT, err error) {
	log.Tracef(">>>>> CallMethod, className=%v, methodName=%v", className, methodName)
	defer log.Trace("<<<<< CallMethod")

	classRaw, err := s.Get(className)
	if err != nil {
		return nil, fmt.Errorf("failed getting WMI class %s: %v", className, err)
	}
	defer func() {
		if clearErr := classRaw.Clear(); clearErr != nil {
			err = multierror.Append(err, clearErr)
		}
	}()

	return oleutil.CallMethod(classRaw.ToIDispatch(), methodName, params...)
}

// ExecScriptMethod is a one-shot convenience that connects to the given
// namespace, executes a WMI class method with positional parameters, and
// tears the connection back down. The caller must Clear() the returned
// VARIANT.
func ExecScriptMethod(className, methodName, namespace string, params ...interface{}) (result *ole.VARIANT, err error) {
	log.Tracef(">>>>> ExecScriptMethod, className=%v, methodName=%v, namespace=%v", className, methodName, namespace)
	defer log.Trace("<<<<< ExecScriptMethod")

	// Only support one WMI scripting call at a time
	lock.Lock()
	defer lock.Unlock()

	// A goroutine should call LockOSThread before calling OS services that
	// depend on per-thread state.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	services, err := NewScriptServices(namespace)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := services.Close(); closeErr != nil {
			err = multierror.Append(err, closeErr)
		}
	}()

	return services.CallMethod(className, methodName, params...)
}
