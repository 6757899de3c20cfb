// (c) Copyright 2024 Hewlett Packard Enterprise Development LP

//go:build windows
// +build windows

package wmi

import (
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
	log "github.com/hpe-storage/wmi-host-libs/logger"
)

// IWbemLocatorVtbl is the IWbemLocator COM virtual table
type IWbemLocatorVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	ConnectServer  uintptr
}

// IWbemServicesVtbl is the IWbemServices COM virtual table
type IWbemServicesVtbl struct {
	QueryInterface             uintptr
	AddRef                     uintptr
	Release                    uintptr
	OpenNamespace              uintptr
	CancelAsyncCall            uintptr
	QueryObjectSink            uintptr
	GetObject                  uintptr
	GetObjectAsync             uintptr
	PutClass                   uintptr
	PutClassAsync              uintptr
	DeleteClass                uintptr
	DeleteClassAsync           uintptr
	CreateClassEnum            uintptr
	CreateClassEnumAsync       uintptr
	PutInstance                uintptr
	PutInstanceAsync           uintptr
	DeleteInstance             uintptr
	DeleteInstanceAsync        uintptr
	CreateInstanceEnum         uintptr
	CreateInstanceEnumAsync    uintptr
	ExecQuery                  uintptr
	ExecQueryAsync             uintptr
	ExecNotificationQuery      uintptr
	ExecNotificationQueryAsync uintptr
	ExecMethod                 uintptr
	ExecMethodAsync            uintptr
}

// Service represents a connection to a WMI namespace through IWbemServices
type Service struct {
	service *ole.IUnknown
	vTable  *IWbemServicesVtbl
}

func newService(service *ole.IUnknown) *Service {
	return &Service{
		service: service,
		vTable:  (*IWbemServicesVtbl)(unsafe.Pointer(service.RawVTable)),
	}
}

// NewLocalService connects to the given namespace on the local system
// through the IWbemLocator::ConnectServer method.
func NewLocalService(namespace string) (*Service, error) {
	log.Tracef(">>>>> NewLocalService, namespace=%v", namespace)
	defer log.Trace("<<<<< NewLocalService")

	// If our package init routine was unable to initialize COM, fail the
	// request immediately
	if wmiWbemLocator == nil {
		log.Error("COM initialization was not successful during init(), failing WMI connection")
		return nil, NewWmiError(WBEM_E_CRITICAL_ERROR)
	}

	strResource, err := syscall.UTF16PtrFromString(namespace)
	if err != nil {
		return nil, err
	}

	// Connect with the en_US LCID since key values are matched against
	// their English forms
	strLocale, err := syscall.UTF16PtrFromString("MS_409")
	if err != nil {
		return nil, err
	}

	var service *ole.IUnknown
	myVTable := (*IWbemLocatorVtbl)(unsafe.Pointer(wmiWbemLocator.RawVTable))
	res, _, _ := syscall.SyscallN(
		myVTable.ConnectServer,                  // IWbemLocator::ConnectServer(
		uintptr(unsafe.Pointer(wmiWbemLocator)), // IWbemLocator ptr
		uintptr(unsafe.Pointer(strResource)),    // [in]  const BSTR    strNetworkResource,
		uintptr(0),                              // [in]  const BSTR    strUser,
		uintptr(0),                              // [in]  const BSTR    strPassword,
		uintptr(unsafe.Pointer(strLocale)),      // [in]  const BSTR    strLocale,
		uintptr(WBEM_FLAG_CONNECT_USE_MAX_WAIT), // [in]  long          lSecurityFlags,
		uintptr(0),                              // [in]  const BSTR    strAuthority,
		uintptr(0),                              // [in]  IWbemContext  *pCtx,
		uintptr(unsafe.Pointer(&service)))       // [out] IWbemServices **ppNamespace)
	if FAILED(res) {
		err = NewWmiError(res)
		// A namespace not present on this host is logged as informational
		if res == WBEM_E_INVALID_NAMESPACE {
			log.Tracef("Failed IWbemLocator::ConnectServer method, err=%v", err)
		} else {
			log.Errorf("Failed IWbemLocator::ConnectServer method, err=%v", err)
		}
		return nil, err
	}

	if err := coSetProxyBlanket(service); err != nil {
		service.Release()
		return nil, err
	}

	return newService(service), nil
}

// Close frees all memory associated with this service
func (s *Service) Close() {
	if s != nil && s.service != nil {
		s.service.Release()
		s.service = nil
	}
}

// ExecQuery executes a WQL query and returns an enumeration to iterate the
// result set. Queries are executed in a semi-synchronous fashion.
func (s *Service) ExecQuery(wqlQuery string) (*Enum, error) {
	strQL, err := syscall.UTF16PtrFromString("WQL")
	if err != nil {
		return nil, err
	}

	strQuery, err := syscall.UTF16PtrFromString(wqlQuery)
	if err != nil {
		return nil, err
	}

	var pEnum *ole.IUnknown
	flags := WBEM_FLAG_FORWARD_ONLY | WBEM_FLAG_RETURN_IMMEDIATELY

	res, _, _ := syscall.SyscallN(
		s.vTable.ExecQuery,                 // IWbemServices::ExecQuery(
		uintptr(unsafe.Pointer(s.service)), // IWbemServices ptr
		uintptr(unsafe.Pointer(strQL)),     // [in]  const BSTR           strQueryLanguage,
		uintptr(unsafe.Pointer(strQuery)),  // [in]  const BSTR           strQuery,
		uintptr(flags),                     // [in]  long                 lFlags,
		uintptr(0),                         // [in]  IWbemContext         *pCtx,
		uintptr(unsafe.Pointer(&pEnum)))    // [out] IEnumWbemClassObject **ppEnum)
	if FAILED(res) {
		return nil, NewWmiError(res)
	}

	if err := coSetProxyBlanket(pEnum); err != nil {
		pEnum.Release()
		return nil, err
	}

	return newEnum(pEnum, s), nil
}

// CreateInstanceEnum creates an enumerator that iterates all registered
// object instances of the given class, including subclasses.
func (s *Service) CreateInstanceEnum(className string) (*Enum, error) {
	strFilter, err := syscall.UTF16PtrFromString(className)
	if err != nil {
		return nil, err
	}

	var pEnum *ole.IUnknown
	res, _, _ := syscall.SyscallN(
		s.vTable.CreateInstanceEnum,        // IWbemServices::CreateInstanceEnum(
		uintptr(unsafe.Pointer(s.service)), // IWbemServices ptr
		uintptr(unsafe.Pointer(strFilter)), // [in]  const BSTR           strFilter,
		uintptr(0),                         // [in]  long                 lFlags,
		uintptr(0),                         // [in]  IWbemContext         *pCtx,
		uintptr(unsafe.Pointer(&pEnum)))    // [out] IEnumWbemClassObject **ppEnum)
	if FAILED(res) {
		return nil, NewWmiError(res)
	}

	if err := coSetProxyBlanket(pEnum); err != nil {
		pEnum.Release()
		return nil, err
	}

	return newEnum(pEnum, s), nil
}

// GetObject obtains a single WMI class or instance given its object path
func (s *Service) GetObject(objectPath string) (*Instance, error) {
	strObjectPath, err := syscall.UTF16PtrFromString(objectPath)
	if err != nil {
		return nil, err
	}

	var pObject *ole.IUnknown
	res, _, _ := syscall.SyscallN(
		s.vTable.GetObject,                     // IWbemServices::GetObject(
		uintptr(unsafe.Pointer(s.service)),     // IWbemServices ptr
		uintptr(unsafe.Pointer(strObjectPath)), // [in]  const BSTR       strObjectPath,
		uintptr(WBEM_FLAG_RETURN_WBEM_COMPLETE), // [in]  long            lFlags,
		uintptr(0),                             // [in]  IWbemContext     *pCtx,
		uintptr(unsafe.Pointer(&pObject)),      // [out] IWbemClassObject **ppObject,
		uintptr(0))                             // [out] IWbemCallResult  **ppCallResult)
	if FAILED(res) {
		return nil, NewWmiError(res)
	}

	return newInstance(pObject, s), nil
}

// ExecMethod executes a method of the object at the given path using the
// passed in-parameter payload instance. The payload can be constructed with
// Instance.GetMethodParameters(). Most callers should prefer
// Instance.InvokeMethod() or Instance.BeginInvoke() instead.
func (s *Service) ExecMethod(objectPath, methodName string, inParams *Instance) (*Instance, error) {
	strObjectPath, err := syscall.UTF16PtrFromString(objectPath)
	if err != nil {
		return nil, err
	}

	strMethodName, err := syscall.UTF16PtrFromString(methodName)
	if err != nil {
		return nil, err
	}

	var inParamsObject *ole.IUnknown
	if inParams != nil {
		inParamsObject = inParams.object
	}

	var outParams *ole.IUnknown
	res, _, _ := syscall.SyscallN(
		s.vTable.ExecMethod,                      // IWbemServices::ExecMethod(
		uintptr(unsafe.Pointer(s.service)),       // IWbemServices ptr
		uintptr(unsafe.Pointer(strObjectPath)),   // [in]  const BSTR       strObjectPath,
		uintptr(unsafe.Pointer(strMethodName)),   // [in]  const BSTR       strMethodName,
		uintptr(0),                               // [in]  long             lFlags (synchronous)
		uintptr(0),                               // [in]  IWbemContext     *pCtx,
		uintptr(unsafe.Pointer(inParamsObject)),  // [in]  IWbemClassObject *pInParams,
		uintptr(unsafe.Pointer(&outParams)),      // [out] IWbemClassObject **ppOutParams,
		uintptr(0))                               // [out] IWbemCallResult  **ppCallResult)
	if FAILED(res) {
		return nil, NewWmiError(res)
	}

	if outParams == nil {
		return nil, nil
	}
	return newInstance(outParams, s), nil
}

// ClassNames enumerates the class names of this namespace. An empty filter
// matches every class; otherwise the filter is matched against __CLASS with
// LIKE semantics and may carry '%' wildcards.
func (s *Service) ClassNames(filter string) ([]string, error) {
	log.Tracef(">>>>> ClassNames, filter=%v", filter)
	defer log.Trace("<<<<< ClassNames")

	enum, err := s.ExecQuery(ClassNameQuery(filter))
	if err != nil {
		return nil, err
	}
	defer enum.Close()

	var names []string
	for {
		instance, err := enum.Next()
		if err != nil {
			return nil, err
		}
		if instance == nil {
			break
		}

		name, err := instance.Class()
		instance.Close()
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}

	return names, nil
}

// Instances returns all instances of the given class. The caller must
// Close() every returned instance.
func (s *Service) Instances(className string) ([]*Instance, error) {
	log.Tracef(">>>>> Instances, className=%v", className)
	defer log.Trace("<<<<< Instances")

	enum, err := s.CreateInstanceEnum(className)
	if err != nil {
		return nil, err
	}
	defer enum.Close()

	var instances []*Instance
	for {
		instance, err := enum.Next()
		if err != nil {
			closeInstances(instances)
			return nil, err
		}
		if instance == nil {
			break
		}
		instances = append(instances, instance)
	}

	return instances, nil
}

// FindFirstInstance finds and returns the first WMI instance in the result
// set of a WQL query. ErrNoResults is returned on an empty result set.
func (s *Service) FindFirstInstance(wql string) (*Instance, error) {
	enum, err := s.ExecQuery(wql)
	if err != nil {
		return nil, err
	}
	defer enum.Close()

	instance, err := enum.Next()
	if err != nil {
		return nil, err
	}
	if instance == nil {
		return nil, ErrNoResults
	}

	return instance, nil
}

// GetClassInstance gets the class definition object associated with the
// given object instance. Used for schema and method signature queries.
func (s *Service) GetClassInstance(obj *Instance) (*Instance, error) {
	name, err := obj.Class()
	if err != nil {
		return nil, err
	}
	return s.GetObject(name)
}

func closeInstances(instances []*Instance) {
	for _, instance := range instances {
		instance.Close()
	}
}
