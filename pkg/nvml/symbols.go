/*
 * Copyright (c) 2024, the nvmlkit authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package nvml

// symtab holds the effective entry point for every native operation the
// package calls. Each field is populated during Init according to what the
// loaded library actually exports: required entry points must resolve or
// Init fails, optional ones are left nil and surface as ErrNotSupported at
// call time, and versioned entry points are overridden by the newest
// variant the library carries.
type symtab struct {
	init          func() Return
	initWithFlags func(flags uint32) Return
	shutdown      func() Return

	systemGetDriverVersion     func(version *byte, length uint32) Return
	systemGetNVMLVersion       func(version *byte, length uint32) Return
	systemGetCudaDriverVersion func(version *int32) Return
	systemGetProcessName       func(pid uint32, name *byte, length uint32) Return

	deviceGetCount            func(count *uint32) Return
	deviceGetHandleByIndex    func(index uint32, device *deviceHandle) Return
	deviceGetHandleByUUID     func(uuid string, device *deviceHandle) Return
	deviceGetHandleBySerial   func(serial string, device *deviceHandle) Return
	deviceGetHandleByPciBusID func(busID string, device *deviceHandle) Return

	deviceGetName          func(device deviceHandle, name *byte, length uint32) Return
	deviceGetUUID          func(device deviceHandle, uuid *byte, length uint32) Return
	deviceGetSerial        func(device deviceHandle, serial *byte, length uint32) Return
	deviceGetIndex         func(device deviceHandle, index *uint32) Return
	deviceGetBrand         func(device deviceHandle, brandType *int32) Return
	deviceGetMinorNumber   func(device deviceHandle, minor *uint32) Return
	deviceGetBoardID       func(device deviceHandle, boardID *uint32) Return
	deviceGetMultiGpuBoard func(device deviceHandle, multiGpu *uint32) Return
	deviceGetVbiosVersion  func(device deviceHandle, version *byte, length uint32) Return

	deviceGetTemperature          func(device deviceHandle, sensor int32, temp *uint32) Return
	deviceGetTemperatureThreshold func(device deviceHandle, threshold int32, temp *uint32) Return
	deviceGetFanSpeed             func(device deviceHandle, speed *uint32) Return
	deviceGetFanSpeedForFan       func(device deviceHandle, fan uint32, speed *uint32) Return
	deviceGetPerformanceState     func(device deviceHandle, state *int32) Return

	deviceGetPowerUsage                      func(device deviceHandle, power *uint32) Return
	deviceGetPowerManagementLimit            func(device deviceHandle, limit *uint32) Return
	deviceGetPowerManagementLimitConstraints func(device deviceHandle, minLimit, maxLimit *uint32) Return
	deviceGetPowerManagementDefaultLimit     func(device deviceHandle, limit *uint32) Return
	deviceGetEnforcedPowerLimit              func(device deviceHandle, limit *uint32) Return

	deviceGetUtilizationRates   func(device deviceHandle, util *rawUtilization) Return
	deviceGetEncoderUtilization func(device deviceHandle, util, samplingPeriodUs *uint32) Return
	deviceGetDecoderUtilization func(device deviceHandle, util, samplingPeriodUs *uint32) Return
	deviceGetEncoderStats       func(device deviceHandle, sessionCount, averageFps, averageLatency *uint32) Return

	deviceGetMemoryInfo     func(device deviceHandle, memory *rawMemory) Return
	deviceGetBAR1MemoryInfo func(device deviceHandle, memory *rawBAR1Memory) Return

	deviceGetClockInfo                      func(device deviceHandle, clockType int32, clock *uint32) Return
	deviceGetMaxClockInfo                   func(device deviceHandle, clockType int32, clock *uint32) Return
	deviceGetApplicationsClock              func(device deviceHandle, clockType int32, clockMHz *uint32) Return
	deviceGetCurrentClocksThrottleReasons   func(device deviceHandle, reasons *uint64) Return
	deviceGetSupportedClocksThrottleReasons func(device deviceHandle, reasons *uint64) Return

	deviceGetComputeMode      func(device deviceHandle, mode *int32) Return
	deviceSetComputeMode      func(device deviceHandle, mode int32) Return
	deviceGetPersistenceMode  func(device deviceHandle, mode *int32) Return
	deviceSetPersistenceMode  func(device deviceHandle, mode int32) Return
	deviceGetEccMode          func(device deviceHandle, current, pending *int32) Return
	deviceGetGpuOperationMode func(device deviceHandle, current, pending *int32) Return

	deviceGetAutoBoostedClocksEnabled func(device deviceHandle, isEnabled, defaultIsEnabled *int32) Return
	deviceSetAutoBoostedClocksEnabled func(device deviceHandle, enabled int32) Return
	deviceGetCudaComputeCapability    func(device deviceHandle, major, minor *int32) Return

	deviceGetPciInfo func(device deviceHandle, pci *rawPciInfo) Return

	// The v1 and v2 process queries fill differently sized records, so
	// both slots are kept and the newer one wins when it resolved.
	deviceGetComputeRunningProcessesV1  func(device deviceHandle, count *uint32, infos *rawProcessInfoV1) Return
	deviceGetComputeRunningProcessesV2  func(device deviceHandle, count *uint32, infos *rawProcessInfoV2) Return
	deviceGetGraphicsRunningProcessesV1 func(device deviceHandle, count *uint32, infos *rawProcessInfoV1) Return
	deviceGetGraphicsRunningProcessesV2 func(device deviceHandle, count *uint32, infos *rawProcessInfoV2) Return

	deviceGetRetiredPagesV1 func(device deviceHandle, cause int32, count *uint32, addresses *uint64) Return
	deviceGetRetiredPagesV2 func(device deviceHandle, cause int32, count *uint32, addresses, timestamps *uint64) Return

	deviceGetSupportedEventTypes func(device deviceHandle, eventTypes *uint64) Return
	deviceRegisterEvents         func(device deviceHandle, eventTypes uint64, set eventSetHandle) Return

	deviceGetSupportedVgpus func(device deviceHandle, count *uint32, typeIDs *vgpuTypeID) Return
	deviceGetCreatableVgpus func(device deviceHandle, count *uint32, typeIDs *vgpuTypeID) Return

	vgpuTypeGetClass                func(typeID vgpuTypeID, class *byte, size *uint32) Return
	vgpuTypeGetLicense              func(typeID vgpuTypeID, license *byte, size uint32) Return
	vgpuTypeGetName                 func(typeID vgpuTypeID, name *byte, size *uint32) Return
	vgpuTypeGetCapabilities         func(typeID vgpuTypeID, capability int32, result *uint32) Return
	vgpuTypeGetDeviceID             func(typeID vgpuTypeID, deviceID, subsystemID *uint64) Return
	vgpuTypeGetFrameRateLimit       func(typeID vgpuTypeID, limit *uint32) Return
	vgpuTypeGetFramebufferSize      func(typeID vgpuTypeID, size *uint64) Return
	vgpuTypeGetGpuInstanceProfileID func(typeID vgpuTypeID, profileID *uint32) Return
	vgpuTypeGetMaxInstances         func(device deviceHandle, typeID vgpuTypeID, count *uint32) Return
	vgpuTypeGetMaxInstancesPerVM    func(typeID vgpuTypeID, count *uint32) Return
	vgpuTypeGetNumDisplayHeads      func(typeID vgpuTypeID, heads *uint32) Return
	vgpuTypeGetResolution           func(typeID vgpuTypeID, displayIndex uint32, xdim, ydim *uint32) Return

	unitGetCount         func(count *uint32) Return
	unitGetHandleByIndex func(index uint32, unit *unitHandle) Return
	unitGetUnitInfo      func(unit unitHandle, info *rawUnitInfo) Return
	unitGetLedState      func(unit unitHandle, state *rawLedState) Return
	unitSetLedState      func(unit unitHandle, color int32) Return
	unitGetPsuInfo       func(unit unitHandle, psu *rawPSUInfo) Return
	unitGetTemperature   func(unit unitHandle, sensor uint32, temp *uint32) Return
	unitGetFanSpeedInfo  func(unit unitHandle, speeds *rawUnitFanSpeeds) Return
	unitGetDevices       func(unit unitHandle, count *uint32, devices *deviceHandle) Return

	eventSetCreate func(set *eventSetHandle) Return
	eventSetWait   func(set eventSetHandle, data *rawEventData, timeoutMS uint32) Return
	eventSetFree   func(set eventSetHandle) Return
}

// requiredSymbols are the entry points every supported driver exports.
// Any of these failing to resolve aborts Init with a SymbolError.
var requiredSymbols = []string{
	"nvmlInit",
	"nvmlShutdown",
	"nvmlSystemGetDriverVersion",
	"nvmlSystemGetNVMLVersion",
	"nvmlSystemGetProcessName",
	"nvmlDeviceGetCount",
	"nvmlDeviceGetHandleByIndex",
	"nvmlDeviceGetHandleByUUID",
	"nvmlDeviceGetHandleBySerial",
	"nvmlDeviceGetHandleByPciBusId",
	"nvmlDeviceGetName",
	"nvmlDeviceGetUUID",
	"nvmlDeviceGetSerial",
	"nvmlDeviceGetIndex",
	"nvmlDeviceGetMinorNumber",
	"nvmlDeviceGetBoardId",
	"nvmlDeviceGetMultiGpuBoard",
	"nvmlDeviceGetVbiosVersion",
	"nvmlDeviceGetTemperature",
	"nvmlDeviceGetTemperatureThreshold",
	"nvmlDeviceGetFanSpeed",
	"nvmlDeviceGetPerformanceState",
	"nvmlDeviceGetPowerUsage",
	"nvmlDeviceGetPowerManagementLimit",
	"nvmlDeviceGetUtilizationRates",
	"nvmlDeviceGetMemoryInfo",
	"nvmlDeviceGetClockInfo",
	"nvmlDeviceGetMaxClockInfo",
	"nvmlDeviceGetComputeMode",
	"nvmlDeviceSetComputeMode",
	"nvmlDeviceGetPersistenceMode",
	"nvmlDeviceSetPersistenceMode",
	"nvmlDeviceGetEccMode",
	"nvmlDeviceGetPciInfo",
	"nvmlDeviceGetComputeRunningProcesses",
	"nvmlDeviceGetGraphicsRunningProcesses",
	"nvmlDeviceGetSupportedEventTypes",
	"nvmlDeviceRegisterEvents",
	"nvmlUnitGetCount",
	"nvmlUnitGetHandleByIndex",
	"nvmlUnitGetUnitInfo",
	"nvmlUnitGetLedState",
	"nvmlUnitSetLedState",
	"nvmlUnitGetPsuInfo",
	"nvmlUnitGetTemperature",
	"nvmlUnitGetFanSpeedInfo",
	"nvmlUnitGetDevices",
	"nvmlEventSetCreate",
	"nvmlEventSetWait",
	"nvmlEventSetFree",
}

// baseSymtab wires every slot to its oldest native entry point. resolve
// prunes and upgrades from here based on what the library exports.
func baseSymtab() *symtab {
	return &symtab{
		init:          nvmlInit_v1,
		initWithFlags: nvmlInitWithFlags,
		shutdown:      nvmlShutdown,

		systemGetDriverVersion:     nvmlSystemGetDriverVersion,
		systemGetNVMLVersion:       nvmlSystemGetNVMLVersion,
		systemGetCudaDriverVersion: nvmlSystemGetCudaDriverVersion_v1,
		systemGetProcessName:       nvmlSystemGetProcessName,

		deviceGetCount:            nvmlDeviceGetCount_v1,
		deviceGetHandleByIndex:    nvmlDeviceGetHandleByIndex_v1,
		deviceGetHandleByUUID:     nvmlDeviceGetHandleByUUID,
		deviceGetHandleBySerial:   nvmlDeviceGetHandleBySerial,
		deviceGetHandleByPciBusID: nvmlDeviceGetHandleByPciBusId_v1,

		deviceGetName:          nvmlDeviceGetName,
		deviceGetUUID:          nvmlDeviceGetUUID,
		deviceGetSerial:        nvmlDeviceGetSerial,
		deviceGetIndex:         nvmlDeviceGetIndex,
		deviceGetBrand:         nvmlDeviceGetBrand,
		deviceGetMinorNumber:   nvmlDeviceGetMinorNumber,
		deviceGetBoardID:       nvmlDeviceGetBoardId,
		deviceGetMultiGpuBoard: nvmlDeviceGetMultiGpuBoard,
		deviceGetVbiosVersion:  nvmlDeviceGetVbiosVersion,

		deviceGetTemperature:          nvmlDeviceGetTemperature,
		deviceGetTemperatureThreshold: nvmlDeviceGetTemperatureThreshold,
		deviceGetFanSpeed:             nvmlDeviceGetFanSpeed,
		deviceGetFanSpeedForFan:       nvmlDeviceGetFanSpeed_v2,
		deviceGetPerformanceState:     nvmlDeviceGetPerformanceState,

		deviceGetPowerUsage:                      nvmlDeviceGetPowerUsage,
		deviceGetPowerManagementLimit:            nvmlDeviceGetPowerManagementLimit,
		deviceGetPowerManagementLimitConstraints: nvmlDeviceGetPowerManagementLimitConstraints,
		deviceGetPowerManagementDefaultLimit:     nvmlDeviceGetPowerManagementDefaultLimit,
		deviceGetEnforcedPowerLimit:              nvmlDeviceGetEnforcedPowerLimit,

		deviceGetUtilizationRates:   nvmlDeviceGetUtilizationRates,
		deviceGetEncoderUtilization: nvmlDeviceGetEncoderUtilization,
		deviceGetDecoderUtilization: nvmlDeviceGetDecoderUtilization,
		deviceGetEncoderStats:       nvmlDeviceGetEncoderStats,

		deviceGetMemoryInfo:     nvmlDeviceGetMemoryInfo,
		deviceGetBAR1MemoryInfo: nvmlDeviceGetBAR1MemoryInfo,

		deviceGetClockInfo:                      nvmlDeviceGetClockInfo,
		deviceGetMaxClockInfo:                   nvmlDeviceGetMaxClockInfo,
		deviceGetApplicationsClock:              nvmlDeviceGetApplicationsClock,
		deviceGetCurrentClocksThrottleReasons:   nvmlDeviceGetCurrentClocksThrottleReasons,
		deviceGetSupportedClocksThrottleReasons: nvmlDeviceGetSupportedClocksThrottleReasons,

		deviceGetComputeMode:      nvmlDeviceGetComputeMode,
		deviceSetComputeMode:      nvmlDeviceSetComputeMode,
		deviceGetPersistenceMode:  nvmlDeviceGetPersistenceMode,
		deviceSetPersistenceMode:  nvmlDeviceSetPersistenceMode,
		deviceGetEccMode:          nvmlDeviceGetEccMode,
		deviceGetGpuOperationMode: nvmlDeviceGetGpuOperationMode,

		deviceGetAutoBoostedClocksEnabled: nvmlDeviceGetAutoBoostedClocksEnabled,
		deviceSetAutoBoostedClocksEnabled: nvmlDeviceSetAutoBoostedClocksEnabled,
		deviceGetCudaComputeCapability:    nvmlDeviceGetCudaComputeCapability,

		deviceGetPciInfo: nvmlDeviceGetPciInfo_v1,

		deviceGetComputeRunningProcessesV1:  nvmlDeviceGetComputeRunningProcesses_v1,
		deviceGetComputeRunningProcessesV2:  nvmlDeviceGetComputeRunningProcesses_v2,
		deviceGetGraphicsRunningProcessesV1: nvmlDeviceGetGraphicsRunningProcesses_v1,
		deviceGetGraphicsRunningProcessesV2: nvmlDeviceGetGraphicsRunningProcesses_v2,

		deviceGetRetiredPagesV1: nvmlDeviceGetRetiredPages_v1,
		deviceGetRetiredPagesV2: nvmlDeviceGetRetiredPages_v2,

		deviceGetSupportedEventTypes: nvmlDeviceGetSupportedEventTypes,
		deviceRegisterEvents:         nvmlDeviceRegisterEvents,

		deviceGetSupportedVgpus: nvmlDeviceGetSupportedVgpus,
		deviceGetCreatableVgpus: nvmlDeviceGetCreatableVgpus,

		vgpuTypeGetClass:                nvmlVgpuTypeGetClass,
		vgpuTypeGetLicense:              nvmlVgpuTypeGetLicense,
		vgpuTypeGetName:                 nvmlVgpuTypeGetName,
		vgpuTypeGetCapabilities:         nvmlVgpuTypeGetCapabilities,
		vgpuTypeGetDeviceID:             nvmlVgpuTypeGetDeviceID,
		vgpuTypeGetFrameRateLimit:       nvmlVgpuTypeGetFrameRateLimit,
		vgpuTypeGetFramebufferSize:      nvmlVgpuTypeGetFramebufferSize,
		vgpuTypeGetGpuInstanceProfileID: nvmlVgpuTypeGetGpuInstanceProfileId,
		vgpuTypeGetMaxInstances:         nvmlVgpuTypeGetMaxInstances,
		vgpuTypeGetMaxInstancesPerVM:    nvmlVgpuTypeGetMaxInstancesPerVm,
		vgpuTypeGetNumDisplayHeads:      nvmlVgpuTypeGetNumDisplayHeads,
		vgpuTypeGetResolution:           nvmlVgpuTypeGetResolution,

		unitGetCount:         nvmlUnitGetCount,
		unitGetHandleByIndex: nvmlUnitGetHandleByIndex,
		unitGetUnitInfo:      nvmlUnitGetUnitInfo,
		unitGetLedState:      nvmlUnitGetLedState,
		unitSetLedState:      nvmlUnitSetLedState,
		unitGetPsuInfo:       nvmlUnitGetPsuInfo,
		unitGetTemperature:   nvmlUnitGetTemperature,
		unitGetFanSpeedInfo:  nvmlUnitGetFanSpeedInfo,
		unitGetDevices:       nvmlUnitGetDevices,

		eventSetCreate: nvmlEventSetCreate,
		eventSetWait:   nvmlEventSetWait_v1,
		eventSetFree:   nvmlEventSetFree,
	}
}

// resolveSymtab verifies the required entry points against the loaded
// library, clears the optional ones it does not export, and swaps in the
// newest versioned variants it does. The returned table is complete and
// immutable from the caller's point of view.
func resolveSymtab(lib dynamicLibrary) (*symtab, error) {
	for _, symbol := range requiredSymbols {
		if err := lib.Lookup(symbol); err != nil {
			return nil, &SymbolError{Symbol: symbol}
		}
	}

	t := baseSymtab()

	has := func(symbol string) bool {
		return lib.Lookup(symbol) == nil
	}

	// Optional entry points: absent means the wrapped accessor reports
	// ErrNotSupported instead of crashing through an unresolved symbol.
	if !has("nvmlInitWithFlags") {
		t.initWithFlags = nil
	}
	if !has("nvmlSystemGetCudaDriverVersion") {
		t.systemGetCudaDriverVersion = nil
	}
	if !has("nvmlDeviceGetBrand") {
		t.deviceGetBrand = nil
	}
	if !has("nvmlDeviceGetFanSpeed_v2") {
		t.deviceGetFanSpeedForFan = nil
	}
	if !has("nvmlDeviceGetPowerManagementLimitConstraints") {
		t.deviceGetPowerManagementLimitConstraints = nil
	}
	if !has("nvmlDeviceGetPowerManagementDefaultLimit") {
		t.deviceGetPowerManagementDefaultLimit = nil
	}
	if !has("nvmlDeviceGetEnforcedPowerLimit") {
		t.deviceGetEnforcedPowerLimit = nil
	}
	if !has("nvmlDeviceGetEncoderUtilization") {
		t.deviceGetEncoderUtilization = nil
	}
	if !has("nvmlDeviceGetDecoderUtilization") {
		t.deviceGetDecoderUtilization = nil
	}
	if !has("nvmlDeviceGetEncoderStats") {
		t.deviceGetEncoderStats = nil
	}
	if !has("nvmlDeviceGetBAR1MemoryInfo") {
		t.deviceGetBAR1MemoryInfo = nil
	}
	if !has("nvmlDeviceGetApplicationsClock") {
		t.deviceGetApplicationsClock = nil
	}
	if !has("nvmlDeviceGetCurrentClocksThrottleReasons") {
		t.deviceGetCurrentClocksThrottleReasons = nil
	}
	if !has("nvmlDeviceGetSupportedClocksThrottleReasons") {
		t.deviceGetSupportedClocksThrottleReasons = nil
	}
	if !has("nvmlDeviceGetGpuOperationMode") {
		t.deviceGetGpuOperationMode = nil
	}
	if !has("nvmlDeviceGetAutoBoostedClocksEnabled") {
		t.deviceGetAutoBoostedClocksEnabled = nil
	}
	if !has("nvmlDeviceSetAutoBoostedClocksEnabled") {
		t.deviceSetAutoBoostedClocksEnabled = nil
	}
	if !has("nvmlDeviceGetCudaComputeCapability") {
		t.deviceGetCudaComputeCapability = nil
	}
	if !has("nvmlDeviceGetRetiredPages") {
		t.deviceGetRetiredPagesV1 = nil
	}
	if !has("nvmlDeviceGetRetiredPages_v2") {
		t.deviceGetRetiredPagesV2 = nil
	}
	if !has("nvmlDeviceGetComputeRunningProcesses_v2") {
		t.deviceGetComputeRunningProcessesV2 = nil
	}
	if !has("nvmlDeviceGetGraphicsRunningProcesses_v2") {
		t.deviceGetGraphicsRunningProcessesV2 = nil
	}
	if !has("nvmlDeviceGetSupportedVgpus") {
		t.deviceGetSupportedVgpus = nil
	}
	if !has("nvmlDeviceGetCreatableVgpus") {
		t.deviceGetCreatableVgpus = nil
	}
	if !has("nvmlVgpuTypeGetClass") {
		t.vgpuTypeGetClass = nil
	}
	if !has("nvmlVgpuTypeGetLicense") {
		t.vgpuTypeGetLicense = nil
	}
	if !has("nvmlVgpuTypeGetName") {
		t.vgpuTypeGetName = nil
	}
	if !has("nvmlVgpuTypeGetCapabilities") {
		t.vgpuTypeGetCapabilities = nil
	}
	if !has("nvmlVgpuTypeGetDeviceID") {
		t.vgpuTypeGetDeviceID = nil
	}
	if !has("nvmlVgpuTypeGetFrameRateLimit") {
		t.vgpuTypeGetFrameRateLimit = nil
	}
	if !has("nvmlVgpuTypeGetFramebufferSize") {
		t.vgpuTypeGetFramebufferSize = nil
	}
	if !has("nvmlVgpuTypeGetGpuInstanceProfileId") {
		t.vgpuTypeGetGpuInstanceProfileID = nil
	}
	if !has("nvmlVgpuTypeGetMaxInstances") {
		t.vgpuTypeGetMaxInstances = nil
	}
	if !has("nvmlVgpuTypeGetMaxInstancesPerVm") {
		t.vgpuTypeGetMaxInstancesPerVM = nil
	}
	if !has("nvmlVgpuTypeGetNumDisplayHeads") {
		t.vgpuTypeGetNumDisplayHeads = nil
	}
	if !has("nvmlVgpuTypeGetResolution") {
		t.vgpuTypeGetResolution = nil
	}

	// Versioned entry points: the newest exported variant replaces the
	// base one resolved above.
	if has("nvmlInit_v2") {
		t.init = nvmlInit_v2
	}
	if has("nvmlSystemGetCudaDriverVersion_v2") {
		t.systemGetCudaDriverVersion = nvmlSystemGetCudaDriverVersion_v2
	}
	if has("nvmlDeviceGetCount_v2") {
		t.deviceGetCount = nvmlDeviceGetCount_v2
	}
	if has("nvmlDeviceGetHandleByIndex_v2") {
		t.deviceGetHandleByIndex = nvmlDeviceGetHandleByIndex_v2
	}
	if has("nvmlDeviceGetHandleByPciBusId_v2") {
		t.deviceGetHandleByPciBusID = nvmlDeviceGetHandleByPciBusId_v2
	}
	if has("nvmlDeviceGetPciInfo_v2") {
		t.deviceGetPciInfo = nvmlDeviceGetPciInfo_v2
	}
	if has("nvmlDeviceGetPciInfo_v3") {
		t.deviceGetPciInfo = nvmlDeviceGetPciInfo_v3
	}
	if has("nvmlDeviceGetComputeRunningProcesses_v3") {
		t.deviceGetComputeRunningProcessesV2 = nvmlDeviceGetComputeRunningProcesses_v3
	}
	if has("nvmlDeviceGetGraphicsRunningProcesses_v3") {
		t.deviceGetGraphicsRunningProcessesV2 = nvmlDeviceGetGraphicsRunningProcesses_v3
	}
	if has("nvmlEventSetWait_v2") {
		t.eventSetWait = nvmlEventSetWait_v2
	}

	return t, nil
}
