// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build windows
// +build windows

package wmi

import (
	"sync"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	log "github.com/hpe-storage/wmi-host-libs/logger"
	"golang.org/x/sys/windows"
)

// Package variables
var (
	// Serializes the package-level convenience entry points
	lock sync.Mutex

	// Lazy load the ole32.dll and oleaut32.dll APIs
	ole32                    = windows.NewLazySystemDLL("ole32.dll")
	procCoInitializeSecurity = ole32.NewProc("CoInitializeSecurity")
	procCoSetProxyBlanket    = ole32.NewProc("CoSetProxyBlanket")

	modoleaut32               = windows.NewLazySystemDLL("oleaut32.dll")
	procSafeArrayCreateVector = modoleaut32.NewProc("SafeArrayCreateVector")
	procSafeArrayPutElement   = modoleaut32.NewProc("SafeArrayPutElement")
	procSafeArrayGetElement   = modoleaut32.NewProc("SafeArrayGetElement")
	procSafeArrayDestroy      = modoleaut32.NewProc("SafeArrayDestroy")

	// WMI Class and Interface GUIDs
	CLSID_WbemLocator = ole.NewGUID("4590f811-1d3a-11d0-891f-00aa004b2e24")
	IID_IWbemLocator  = ole.NewGUID("dc12a687-737f-11cf-884d-00aa004b2e24")

	comInitialized bool          // Did COM successfully initialize?
	wmiWbemLocator *ole.IUnknown // Enumerated WMI locator object
)

// Initialize the COM library for use by our calling thread (all init
// functions are run on the startup thread). Handle case where the COM
// library is already initialized on this thread.
func init() {
	comInitialized = true
	err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED)
	if err != nil {
		comInitialized = false
		if oleCode, ok := err.(*ole.OleError); ok {
			switch oleCode.Code() {
			case S_OK, S_FALSE:
				comInitialized = true
			}
		}
		if !comInitialized {
			log.Errorf("Unable to initialize COM, err=%v", err)
		}
	}

	// Set general COM security levels
	if comInitialized {
		hres, _, _ := procCoInitializeSecurity.Call(
			uintptr(0),                           // PSECURITY_DESCRIPTOR pSecDesc
			uintptr(0xFFFFFFFF),                  // COM authentication
			uintptr(0),                           // Authentication services
			uintptr(0),                           // Reserved
			uintptr(RPC_C_AUTHN_LEVEL_DEFAULT),   // Default authentication
			uintptr(RPC_C_IMP_LEVEL_IMPERSONATE), // Default impersonation
			uintptr(0),                           // Authentication info
			uintptr(EOAC_NONE),                   // Additional capabilities
			uintptr(0))                           // Reserved
		if FAILED(hres) {
			log.Errorf("Unable to initialize COM security, err=%v", NewWmiError(hres))
		} else {
			// Obtain the initial locator to WMI
			var err error
			wmiWbemLocator, err = ole.CreateInstance(CLSID_WbemLocator, IID_IWbemLocator)
			if err != nil {
				log.Errorf("Unable to obtain the initial locator to WMI, err=%v", err)
				wmiWbemLocator = nil
			}
		}
	}
}

// Cleanup is an optional routine that should only be called when the
// process using the WMI package is exiting.
func Cleanup() {
	lock.Lock()
	defer lock.Unlock()
	if wmiWbemLocator != nil {
		wmiWbemLocator.Release()
		wmiWbemLocator = nil
	}
	if comInitialized {
		ole.CoUninitialize()
		comInitialized = false
	}
}

// coSetProxyBlanket sets the authentication information on a WMI proxy so
// calls impersonate the client.
func coSetProxyBlanket(proxy *ole.IUnknown) error {
	res, _, _ := procCoSetProxyBlanket.Call(
		uintptr(unsafe.Pointer(proxy)),       // IUnknown *pProxy
		uintptr(RPC_C_AUTHN_WINNT),           // DWORD dwAuthnSvc
		uintptr(RPC_C_AUTHZ_NONE),            // DWORD dwAuthzSvc
		uintptr(0),                           // OLECHAR *pServerPrincName
		uintptr(RPC_C_AUTHN_LEVEL_CALL),      // DWORD dwAuthnLevel
		uintptr(RPC_C_IMP_LEVEL_IMPERSONATE), // DWORD dwImpLevel
		uintptr(0),                           // RPC_AUTH_IDENTITY_HANDLE pAuthInfo
		uintptr(EOAC_NONE))                   // DWORD dwCapabilities
	if FAILED(res) {
		return NewWmiError(res)
	}
	return nil
}
