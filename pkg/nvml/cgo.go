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

import (
	"unsafe"
)

/*
#cgo LDFLAGS: -Wl,--unresolved-symbols=ignore-in-object-files
#include <stdlib.h>

typedef int nvmlReturn_t;
typedef struct nvmlDevice_st* nvmlDevice_t;
typedef struct nvmlUnit_st* nvmlUnit_t;
typedef struct nvmlEventSet_st* nvmlEventSet_t;
typedef unsigned int nvmlVgpuTypeId_t;

typedef struct {
    unsigned long long total;
    unsigned long long free;
    unsigned long long used;
} nvmlMemory_t;

typedef struct {
    unsigned long long bar1Total;
    unsigned long long bar1Free;
    unsigned long long bar1Used;
} nvmlBAR1Memory_t;

typedef struct {
    unsigned int gpu;
    unsigned int memory;
} nvmlUtilization_t;

typedef struct {
    char busIdLegacy[16];
    unsigned int domain;
    unsigned int bus;
    unsigned int device;
    unsigned int pciDeviceId;
    unsigned int pciSubSystemId;
    char busId[32];
} nvmlPciInfo_t;

typedef struct {
    unsigned int pid;
    unsigned long long usedGpuMemory;
} nvmlProcessInfo_v1_t;

typedef struct {
    unsigned int pid;
    unsigned long long usedGpuMemory;
    unsigned int gpuInstanceId;
    unsigned int computeInstanceId;
} nvmlProcessInfo_v2_t;

typedef struct {
    nvmlDevice_t device;
    unsigned long long eventType;
    unsigned long long eventData;
    unsigned int gpuInstanceId;
    unsigned int computeInstanceId;
} nvmlEventData_t;

typedef struct {
    char name[96];
    char id[96];
    char serial[96];
    char firmwareVersion[96];
} nvmlUnitInfo_t;

typedef struct {
    char cause[256];
    int color;
} nvmlLedState_t;

typedef struct {
    char state[256];
    unsigned int current;
    unsigned int voltage;
    unsigned int power;
} nvmlPSUInfo_t;

typedef struct {
    unsigned int speed;
    int state;
} nvmlUnitFanInfo_t;

typedef struct {
    nvmlUnitFanInfo_t fans[24];
    unsigned int count;
} nvmlUnitFanSpeeds_t;

nvmlReturn_t nvmlInit(void);
nvmlReturn_t nvmlInit_v2(void);
nvmlReturn_t nvmlInitWithFlags(unsigned int flags);
nvmlReturn_t nvmlShutdown(void);

nvmlReturn_t nvmlSystemGetDriverVersion(char* version, unsigned int length);
nvmlReturn_t nvmlSystemGetNVMLVersion(char* version, unsigned int length);
nvmlReturn_t nvmlSystemGetCudaDriverVersion(int* cudaDriverVersion);
nvmlReturn_t nvmlSystemGetCudaDriverVersion_v2(int* cudaDriverVersion);
nvmlReturn_t nvmlSystemGetProcessName(unsigned int pid, char* name, unsigned int length);

nvmlReturn_t nvmlDeviceGetCount(unsigned int* deviceCount);
nvmlReturn_t nvmlDeviceGetCount_v2(unsigned int* deviceCount);
nvmlReturn_t nvmlDeviceGetHandleByIndex(unsigned int index, nvmlDevice_t* device);
nvmlReturn_t nvmlDeviceGetHandleByIndex_v2(unsigned int index, nvmlDevice_t* device);
nvmlReturn_t nvmlDeviceGetHandleByUUID(const char* uuid, nvmlDevice_t* device);
nvmlReturn_t nvmlDeviceGetHandleBySerial(const char* serial, nvmlDevice_t* device);
nvmlReturn_t nvmlDeviceGetHandleByPciBusId(const char* pciBusId, nvmlDevice_t* device);
nvmlReturn_t nvmlDeviceGetHandleByPciBusId_v2(const char* pciBusId, nvmlDevice_t* device);
nvmlReturn_t nvmlDeviceGetName(nvmlDevice_t device, char* name, unsigned int length);
nvmlReturn_t nvmlDeviceGetUUID(nvmlDevice_t device, char* uuid, unsigned int length);
nvmlReturn_t nvmlDeviceGetSerial(nvmlDevice_t device, char* serial, unsigned int length);
nvmlReturn_t nvmlDeviceGetIndex(nvmlDevice_t device, unsigned int* index);
nvmlReturn_t nvmlDeviceGetBrand(nvmlDevice_t device, int* type);
nvmlReturn_t nvmlDeviceGetMinorNumber(nvmlDevice_t device, unsigned int* minorNumber);
nvmlReturn_t nvmlDeviceGetBoardId(nvmlDevice_t device, unsigned int* boardId);
nvmlReturn_t nvmlDeviceGetMultiGpuBoard(nvmlDevice_t device, unsigned int* multiGpuBool);
nvmlReturn_t nvmlDeviceGetVbiosVersion(nvmlDevice_t device, char* version, unsigned int length);
nvmlReturn_t nvmlDeviceGetTemperature(nvmlDevice_t device, int sensorType, unsigned int* temp);
nvmlReturn_t nvmlDeviceGetTemperatureThreshold(nvmlDevice_t device, int thresholdType, unsigned int* temp);
nvmlReturn_t nvmlDeviceGetFanSpeed(nvmlDevice_t device, unsigned int* speed);
nvmlReturn_t nvmlDeviceGetFanSpeed_v2(nvmlDevice_t device, unsigned int fan, unsigned int* speed);
nvmlReturn_t nvmlDeviceGetPowerUsage(nvmlDevice_t device, unsigned int* power);
nvmlReturn_t nvmlDeviceGetPowerManagementLimit(nvmlDevice_t device, unsigned int* limit);
nvmlReturn_t nvmlDeviceGetPowerManagementLimitConstraints(nvmlDevice_t device, unsigned int* minLimit, unsigned int* maxLimit);
nvmlReturn_t nvmlDeviceGetPowerManagementDefaultLimit(nvmlDevice_t device, unsigned int* defaultLimit);
nvmlReturn_t nvmlDeviceGetEnforcedPowerLimit(nvmlDevice_t device, unsigned int* limit);
nvmlReturn_t nvmlDeviceGetPerformanceState(nvmlDevice_t device, int* pState);
nvmlReturn_t nvmlDeviceGetUtilizationRates(nvmlDevice_t device, nvmlUtilization_t* utilization);
nvmlReturn_t nvmlDeviceGetEncoderUtilization(nvmlDevice_t device, unsigned int* utilization, unsigned int* samplingPeriodUs);
nvmlReturn_t nvmlDeviceGetDecoderUtilization(nvmlDevice_t device, unsigned int* utilization, unsigned int* samplingPeriodUs);
nvmlReturn_t nvmlDeviceGetEncoderStats(nvmlDevice_t device, unsigned int* sessionCount, unsigned int* averageFps, unsigned int* averageLatency);
nvmlReturn_t nvmlDeviceGetMemoryInfo(nvmlDevice_t device, nvmlMemory_t* memory);
nvmlReturn_t nvmlDeviceGetBAR1MemoryInfo(nvmlDevice_t device, nvmlBAR1Memory_t* bar1Memory);
nvmlReturn_t nvmlDeviceGetClockInfo(nvmlDevice_t device, int type, unsigned int* clock);
nvmlReturn_t nvmlDeviceGetMaxClockInfo(nvmlDevice_t device, int type, unsigned int* clock);
nvmlReturn_t nvmlDeviceGetApplicationsClock(nvmlDevice_t device, int clockType, unsigned int* clockMHz);
nvmlReturn_t nvmlDeviceGetCurrentClocksThrottleReasons(nvmlDevice_t device, unsigned long long* clocksThrottleReasons);
nvmlReturn_t nvmlDeviceGetSupportedClocksThrottleReasons(nvmlDevice_t device, unsigned long long* supportedClocksThrottleReasons);
nvmlReturn_t nvmlDeviceGetComputeMode(nvmlDevice_t device, int* mode);
nvmlReturn_t nvmlDeviceSetComputeMode(nvmlDevice_t device, int mode);
nvmlReturn_t nvmlDeviceGetPersistenceMode(nvmlDevice_t device, int* mode);
nvmlReturn_t nvmlDeviceSetPersistenceMode(nvmlDevice_t device, int mode);
nvmlReturn_t nvmlDeviceGetEccMode(nvmlDevice_t device, int* current, int* pending);
nvmlReturn_t nvmlDeviceGetGpuOperationMode(nvmlDevice_t device, int* current, int* pending);
nvmlReturn_t nvmlDeviceGetAutoBoostedClocksEnabled(nvmlDevice_t device, int* isEnabled, int* defaultIsEnabled);
nvmlReturn_t nvmlDeviceSetAutoBoostedClocksEnabled(nvmlDevice_t device, int enabled);
nvmlReturn_t nvmlDeviceGetCudaComputeCapability(nvmlDevice_t device, int* major, int* minor);
nvmlReturn_t nvmlDeviceGetPciInfo(nvmlDevice_t device, nvmlPciInfo_t* pci);
nvmlReturn_t nvmlDeviceGetPciInfo_v2(nvmlDevice_t device, nvmlPciInfo_t* pci);
nvmlReturn_t nvmlDeviceGetPciInfo_v3(nvmlDevice_t device, nvmlPciInfo_t* pci);
nvmlReturn_t nvmlDeviceGetComputeRunningProcesses(nvmlDevice_t device, unsigned int* infoCount, nvmlProcessInfo_v1_t* infos);
nvmlReturn_t nvmlDeviceGetComputeRunningProcesses_v2(nvmlDevice_t device, unsigned int* infoCount, nvmlProcessInfo_v2_t* infos);
nvmlReturn_t nvmlDeviceGetComputeRunningProcesses_v3(nvmlDevice_t device, unsigned int* infoCount, nvmlProcessInfo_v2_t* infos);
nvmlReturn_t nvmlDeviceGetGraphicsRunningProcesses(nvmlDevice_t device, unsigned int* infoCount, nvmlProcessInfo_v1_t* infos);
nvmlReturn_t nvmlDeviceGetGraphicsRunningProcesses_v2(nvmlDevice_t device, unsigned int* infoCount, nvmlProcessInfo_v2_t* infos);
nvmlReturn_t nvmlDeviceGetGraphicsRunningProcesses_v3(nvmlDevice_t device, unsigned int* infoCount, nvmlProcessInfo_v2_t* infos);
nvmlReturn_t nvmlDeviceGetRetiredPages(nvmlDevice_t device, int cause, unsigned int* pageCount, unsigned long long* addresses);
nvmlReturn_t nvmlDeviceGetRetiredPages_v2(nvmlDevice_t device, int cause, unsigned int* pageCount, unsigned long long* addresses, unsigned long long* timestamps);
nvmlReturn_t nvmlDeviceGetSupportedEventTypes(nvmlDevice_t device, unsigned long long* eventTypes);
nvmlReturn_t nvmlDeviceRegisterEvents(nvmlDevice_t device, unsigned long long eventTypes, nvmlEventSet_t set);
nvmlReturn_t nvmlDeviceGetSupportedVgpus(nvmlDevice_t device, unsigned int* vgpuCount, nvmlVgpuTypeId_t* vgpuTypeIds);
nvmlReturn_t nvmlDeviceGetCreatableVgpus(nvmlDevice_t device, unsigned int* vgpuCount, nvmlVgpuTypeId_t* vgpuTypeIds);

nvmlReturn_t nvmlVgpuTypeGetClass(nvmlVgpuTypeId_t vgpuTypeId, char* vgpuTypeClass, unsigned int* size);
nvmlReturn_t nvmlVgpuTypeGetLicense(nvmlVgpuTypeId_t vgpuTypeId, char* vgpuTypeLicenseString, unsigned int size);
nvmlReturn_t nvmlVgpuTypeGetName(nvmlVgpuTypeId_t vgpuTypeId, char* vgpuTypeName, unsigned int* size);
nvmlReturn_t nvmlVgpuTypeGetCapabilities(nvmlVgpuTypeId_t vgpuTypeId, int capability, unsigned int* capResult);
nvmlReturn_t nvmlVgpuTypeGetDeviceID(nvmlVgpuTypeId_t vgpuTypeId, unsigned long long* deviceID, unsigned long long* subsystemID);
nvmlReturn_t nvmlVgpuTypeGetFrameRateLimit(nvmlVgpuTypeId_t vgpuTypeId, unsigned int* frameRateLimit);
nvmlReturn_t nvmlVgpuTypeGetFramebufferSize(nvmlVgpuTypeId_t vgpuTypeId, unsigned long long* fbSize);
nvmlReturn_t nvmlVgpuTypeGetGpuInstanceProfileId(nvmlVgpuTypeId_t vgpuTypeId, unsigned int* gpuInstanceProfileId);
nvmlReturn_t nvmlVgpuTypeGetMaxInstances(nvmlDevice_t device, nvmlVgpuTypeId_t vgpuTypeId, unsigned int* vgpuInstanceCount);
nvmlReturn_t nvmlVgpuTypeGetMaxInstancesPerVm(nvmlVgpuTypeId_t vgpuTypeId, unsigned int* vgpuInstanceCountPerVm);
nvmlReturn_t nvmlVgpuTypeGetNumDisplayHeads(nvmlVgpuTypeId_t vgpuTypeId, unsigned int* numDisplayHeads);
nvmlReturn_t nvmlVgpuTypeGetResolution(nvmlVgpuTypeId_t vgpuTypeId, unsigned int displayIndex, unsigned int* xdim, unsigned int* ydim);

nvmlReturn_t nvmlUnitGetCount(unsigned int* unitCount);
nvmlReturn_t nvmlUnitGetHandleByIndex(unsigned int index, nvmlUnit_t* unit);
nvmlReturn_t nvmlUnitGetUnitInfo(nvmlUnit_t unit, nvmlUnitInfo_t* info);
nvmlReturn_t nvmlUnitGetLedState(nvmlUnit_t unit, nvmlLedState_t* state);
nvmlReturn_t nvmlUnitSetLedState(nvmlUnit_t unit, int color);
nvmlReturn_t nvmlUnitGetPsuInfo(nvmlUnit_t unit, nvmlPSUInfo_t* psu);
nvmlReturn_t nvmlUnitGetTemperature(nvmlUnit_t unit, unsigned int type, unsigned int* temp);
nvmlReturn_t nvmlUnitGetFanSpeedInfo(nvmlUnit_t unit, nvmlUnitFanSpeeds_t* fanSpeeds);
nvmlReturn_t nvmlUnitGetDevices(nvmlUnit_t unit, unsigned int* deviceCount, nvmlDevice_t* devices);

nvmlReturn_t nvmlEventSetCreate(nvmlEventSet_t* set);
nvmlReturn_t nvmlEventSetWait(nvmlEventSet_t set, nvmlEventData_t* data, unsigned int timeoutms);
nvmlReturn_t nvmlEventSetWait_v2(nvmlEventSet_t set, nvmlEventData_t* data, unsigned int timeoutms);
nvmlReturn_t nvmlEventSetFree(nvmlEventSet_t set);
*/
import "C"

// nvmlInit_v1 function as declared in nvml.h
func nvmlInit_v1() Return {
	return Return(C.nvmlInit())
}

// nvmlInit_v2 function as declared in nvml.h
func nvmlInit_v2() Return {
	return Return(C.nvmlInit_v2())
}

// nvmlInitWithFlags function as declared in nvml.h
func nvmlInitWithFlags(flags uint32) Return {
	return Return(C.nvmlInitWithFlags(C.uint(flags)))
}

// nvmlShutdown function as declared in nvml.h
func nvmlShutdown() Return {
	return Return(C.nvmlShutdown())
}

// nvmlSystemGetDriverVersion function as declared in nvml.h
func nvmlSystemGetDriverVersion(version *byte, length uint32) Return {
	return Return(C.nvmlSystemGetDriverVersion((*C.char)(unsafe.Pointer(version)), C.uint(length)))
}

// nvmlSystemGetNVMLVersion function as declared in nvml.h
func nvmlSystemGetNVMLVersion(version *byte, length uint32) Return {
	return Return(C.nvmlSystemGetNVMLVersion((*C.char)(unsafe.Pointer(version)), C.uint(length)))
}

// nvmlSystemGetCudaDriverVersion_v1 function as declared in nvml.h
func nvmlSystemGetCudaDriverVersion_v1(version *int32) Return {
	return Return(C.nvmlSystemGetCudaDriverVersion((*C.int)(unsafe.Pointer(version))))
}

// nvmlSystemGetCudaDriverVersion_v2 function as declared in nvml.h
func nvmlSystemGetCudaDriverVersion_v2(version *int32) Return {
	return Return(C.nvmlSystemGetCudaDriverVersion_v2((*C.int)(unsafe.Pointer(version))))
}

// nvmlSystemGetProcessName function as declared in nvml.h
func nvmlSystemGetProcessName(pid uint32, name *byte, length uint32) Return {
	return Return(C.nvmlSystemGetProcessName(C.uint(pid), (*C.char)(unsafe.Pointer(name)), C.uint(length)))
}

// nvmlDeviceGetCount_v1 function as declared in nvml.h
func nvmlDeviceGetCount_v1(count *uint32) Return {
	return Return(C.nvmlDeviceGetCount((*C.uint)(unsafe.Pointer(count))))
}

// nvmlDeviceGetCount_v2 function as declared in nvml.h
func nvmlDeviceGetCount_v2(count *uint32) Return {
	return Return(C.nvmlDeviceGetCount_v2((*C.uint)(unsafe.Pointer(count))))
}

// nvmlDeviceGetHandleByIndex_v1 function as declared in nvml.h
func nvmlDeviceGetHandleByIndex_v1(index uint32, device *deviceHandle) Return {
	return Return(C.nvmlDeviceGetHandleByIndex(C.uint(index), (*C.nvmlDevice_t)(unsafe.Pointer(device))))
}

// nvmlDeviceGetHandleByIndex_v2 function as declared in nvml.h
func nvmlDeviceGetHandleByIndex_v2(index uint32, device *deviceHandle) Return {
	return Return(C.nvmlDeviceGetHandleByIndex_v2(C.uint(index), (*C.nvmlDevice_t)(unsafe.Pointer(device))))
}

// nvmlDeviceGetHandleByUUID function as declared in nvml.h
func nvmlDeviceGetHandleByUUID(uuid string, device *deviceHandle) Return {
	cUUID := C.CString(uuid)
	defer C.free(unsafe.Pointer(cUUID))
	return Return(C.nvmlDeviceGetHandleByUUID(cUUID, (*C.nvmlDevice_t)(unsafe.Pointer(device))))
}

// nvmlDeviceGetHandleBySerial function as declared in nvml.h
func nvmlDeviceGetHandleBySerial(serial string, device *deviceHandle) Return {
	cSerial := C.CString(serial)
	defer C.free(unsafe.Pointer(cSerial))
	return Return(C.nvmlDeviceGetHandleBySerial(cSerial, (*C.nvmlDevice_t)(unsafe.Pointer(device))))
}

// nvmlDeviceGetHandleByPciBusId_v1 function as declared in nvml.h
func nvmlDeviceGetHandleByPciBusId_v1(busID string, device *deviceHandle) Return {
	cBusID := C.CString(busID)
	defer C.free(unsafe.Pointer(cBusID))
	return Return(C.nvmlDeviceGetHandleByPciBusId(cBusID, (*C.nvmlDevice_t)(unsafe.Pointer(device))))
}

// nvmlDeviceGetHandleByPciBusId_v2 function as declared in nvml.h
func nvmlDeviceGetHandleByPciBusId_v2(busID string, device *deviceHandle) Return {
	cBusID := C.CString(busID)
	defer C.free(unsafe.Pointer(cBusID))
	return Return(C.nvmlDeviceGetHandleByPciBusId_v2(cBusID, (*C.nvmlDevice_t)(unsafe.Pointer(device))))
}

// nvmlDeviceGetName function as declared in nvml.h
func nvmlDeviceGetName(device deviceHandle, name *byte, length uint32) Return {
	return Return(C.nvmlDeviceGetName(C.nvmlDevice_t(device), (*C.char)(unsafe.Pointer(name)), C.uint(length)))
}

// nvmlDeviceGetUUID function as declared in nvml.h
func nvmlDeviceGetUUID(device deviceHandle, uuid *byte, length uint32) Return {
	return Return(C.nvmlDeviceGetUUID(C.nvmlDevice_t(device), (*C.char)(unsafe.Pointer(uuid)), C.uint(length)))
}

// nvmlDeviceGetSerial function as declared in nvml.h
func nvmlDeviceGetSerial(device deviceHandle, serial *byte, length uint32) Return {
	return Return(C.nvmlDeviceGetSerial(C.nvmlDevice_t(device), (*C.char)(unsafe.Pointer(serial)), C.uint(length)))
}

// nvmlDeviceGetIndex function as declared in nvml.h
func nvmlDeviceGetIndex(device deviceHandle, index *uint32) Return {
	return Return(C.nvmlDeviceGetIndex(C.nvmlDevice_t(device), (*C.uint)(unsafe.Pointer(index))))
}

// nvmlDeviceGetBrand function as declared in nvml.h
func nvmlDeviceGetBrand(device deviceHandle, brandType *int32) Return {
	return Return(C.nvmlDeviceGetBrand(C.nvmlDevice_t(device), (*C.int)(unsafe.Pointer(brandType))))
}

// nvmlDeviceGetMinorNumber function as declared in nvml.h
func nvmlDeviceGetMinorNumber(device deviceHandle, minor *uint32) Return {
	return Return(C.nvmlDeviceGetMinorNumber(C.nvmlDevice_t(device), (*C.uint)(unsafe.Pointer(minor))))
}

// nvmlDeviceGetBoardId function as declared in nvml.h
func nvmlDeviceGetBoardId(device deviceHandle, boardID *uint32) Return {
	return Return(C.nvmlDeviceGetBoardId(C.nvmlDevice_t(device), (*C.uint)(unsafe.Pointer(boardID))))
}

// nvmlDeviceGetMultiGpuBoard function as declared in nvml.h
func nvmlDeviceGetMultiGpuBoard(device deviceHandle, multiGpu *uint32) Return {
	return Return(C.nvmlDeviceGetMultiGpuBoard(C.nvmlDevice_t(device), (*C.uint)(unsafe.Pointer(multiGpu))))
}

// nvmlDeviceGetVbiosVersion function as declared in nvml.h
func nvmlDeviceGetVbiosVersion(device deviceHandle, version *byte, length uint32) Return {
	return Return(C.nvmlDeviceGetVbiosVersion(C.nvmlDevice_t(device), (*C.char)(unsafe.Pointer(version)), C.uint(length)))
}

// nvmlDeviceGetTemperature function as declared in nvml.h
func nvmlDeviceGetTemperature(device deviceHandle, sensor int32, temp *uint32) Return {
	return Return(C.nvmlDeviceGetTemperature(C.nvmlDevice_t(device), C.int(sensor), (*C.uint)(unsafe.Pointer(temp))))
}

// nvmlDeviceGetTemperatureThreshold function as declared in nvml.h
func nvmlDeviceGetTemperatureThreshold(device deviceHandle, threshold int32, temp *uint32) Return {
	return Return(C.nvmlDeviceGetTemperatureThreshold(C.nvmlDevice_t(device), C.int(threshold), (*C.uint)(unsafe.Pointer(temp))))
}

// nvmlDeviceGetFanSpeed function as declared in nvml.h
func nvmlDeviceGetFanSpeed(device deviceHandle, speed *uint32) Return {
	return Return(C.nvmlDeviceGetFanSpeed(C.nvmlDevice_t(device), (*C.uint)(unsafe.Pointer(speed))))
}

// nvmlDeviceGetFanSpeed_v2 function as declared in nvml.h
func nvmlDeviceGetFanSpeed_v2(device deviceHandle, fan uint32, speed *uint32) Return {
	return Return(C.nvmlDeviceGetFanSpeed_v2(C.nvmlDevice_t(device), C.uint(fan), (*C.uint)(unsafe.Pointer(speed))))
}

// nvmlDeviceGetPowerUsage function as declared in nvml.h
func nvmlDeviceGetPowerUsage(device deviceHandle, power *uint32) Return {
	return Return(C.nvmlDeviceGetPowerUsage(C.nvmlDevice_t(device), (*C.uint)(unsafe.Pointer(power))))
}

// nvmlDeviceGetPowerManagementLimit function as declared in nvml.h
func nvmlDeviceGetPowerManagementLimit(device deviceHandle, limit *uint32) Return {
	return Return(C.nvmlDeviceGetPowerManagementLimit(C.nvmlDevice_t(device), (*C.uint)(unsafe.Pointer(limit))))
}

// nvmlDeviceGetPowerManagementLimitConstraints function as declared in nvml.h
func nvmlDeviceGetPowerManagementLimitConstraints(device deviceHandle, minLimit, maxLimit *uint32) Return {
	return Return(C.nvmlDeviceGetPowerManagementLimitConstraints(C.nvmlDevice_t(device),
		(*C.uint)(unsafe.Pointer(minLimit)), (*C.uint)(unsafe.Pointer(maxLimit))))
}

// nvmlDeviceGetPowerManagementDefaultLimit function as declared in nvml.h
func nvmlDeviceGetPowerManagementDefaultLimit(device deviceHandle, limit *uint32) Return {
	return Return(C.nvmlDeviceGetPowerManagementDefaultLimit(C.nvmlDevice_t(device), (*C.uint)(unsafe.Pointer(limit))))
}

// nvmlDeviceGetEnforcedPowerLimit function as declared in nvml.h
func nvmlDeviceGetEnforcedPowerLimit(device deviceHandle, limit *uint32) Return {
	return Return(C.nvmlDeviceGetEnforcedPowerLimit(C.nvmlDevice_t(device), (*C.uint)(unsafe.Pointer(limit))))
}

// nvmlDeviceGetPerformanceState function as declared in nvml.h
func nvmlDeviceGetPerformanceState(device deviceHandle, state *int32) Return {
	return Return(C.nvmlDeviceGetPerformanceState(C.nvmlDevice_t(device), (*C.int)(unsafe.Pointer(state))))
}

// nvmlDeviceGetUtilizationRates function as declared in nvml.h
func nvmlDeviceGetUtilizationRates(device deviceHandle, util *rawUtilization) Return {
	return Return(C.nvmlDeviceGetUtilizationRates(C.nvmlDevice_t(device), (*C.nvmlUtilization_t)(unsafe.Pointer(util))))
}

// nvmlDeviceGetEncoderUtilization function as declared in nvml.h
func nvmlDeviceGetEncoderUtilization(device deviceHandle, util, samplingPeriodUs *uint32) Return {
	return Return(C.nvmlDeviceGetEncoderUtilization(C.nvmlDevice_t(device),
		(*C.uint)(unsafe.Pointer(util)), (*C.uint)(unsafe.Pointer(samplingPeriodUs))))
}

// nvmlDeviceGetDecoderUtilization function as declared in nvml.h
func nvmlDeviceGetDecoderUtilization(device deviceHandle, util, samplingPeriodUs *uint32) Return {
	return Return(C.nvmlDeviceGetDecoderUtilization(C.nvmlDevice_t(device),
		(*C.uint)(unsafe.Pointer(util)), (*C.uint)(unsafe.Pointer(samplingPeriodUs))))
}

// nvmlDeviceGetEncoderStats function as declared in nvml.h
func nvmlDeviceGetEncoderStats(device deviceHandle, sessionCount, averageFps, averageLatency *uint32) Return {
	return Return(C.nvmlDeviceGetEncoderStats(C.nvmlDevice_t(device),
		(*C.uint)(unsafe.Pointer(sessionCount)), (*C.uint)(unsafe.Pointer(averageFps)),
		(*C.uint)(unsafe.Pointer(averageLatency))))
}

// nvmlDeviceGetMemoryInfo function as declared in nvml.h
func nvmlDeviceGetMemoryInfo(device deviceHandle, memory *rawMemory) Return {
	return Return(C.nvmlDeviceGetMemoryInfo(C.nvmlDevice_t(device), (*C.nvmlMemory_t)(unsafe.Pointer(memory))))
}

// nvmlDeviceGetBAR1MemoryInfo function as declared in nvml.h
func nvmlDeviceGetBAR1MemoryInfo(device deviceHandle, memory *rawBAR1Memory) Return {
	return Return(C.nvmlDeviceGetBAR1MemoryInfo(C.nvmlDevice_t(device), (*C.nvmlBAR1Memory_t)(unsafe.Pointer(memory))))
}

// nvmlDeviceGetClockInfo function as declared in nvml.h
func nvmlDeviceGetClockInfo(device deviceHandle, clockType int32, clock *uint32) Return {
	return Return(C.nvmlDeviceGetClockInfo(C.nvmlDevice_t(device), C.int(clockType), (*C.uint)(unsafe.Pointer(clock))))
}

// nvmlDeviceGetMaxClockInfo function as declared in nvml.h
func nvmlDeviceGetMaxClockInfo(device deviceHandle, clockType int32, clock *uint32) Return {
	return Return(C.nvmlDeviceGetMaxClockInfo(C.nvmlDevice_t(device), C.int(clockType), (*C.uint)(unsafe.Pointer(clock))))
}

// nvmlDeviceGetApplicationsClock function as declared in nvml.h
func nvmlDeviceGetApplicationsClock(device deviceHandle, clockType int32, clockMHz *uint32) Return {
	return Return(C.nvmlDeviceGetApplicationsClock(C.nvmlDevice_t(device), C.int(clockType), (*C.uint)(unsafe.Pointer(clockMHz))))
}

// nvmlDeviceGetCurrentClocksThrottleReasons function as declared in nvml.h
func nvmlDeviceGetCurrentClocksThrottleReasons(device deviceHandle, reasons *uint64) Return {
	return Return(C.nvmlDeviceGetCurrentClocksThrottleReasons(C.nvmlDevice_t(device), (*C.ulonglong)(unsafe.Pointer(reasons))))
}

// nvmlDeviceGetSupportedClocksThrottleReasons function as declared in nvml.h
func nvmlDeviceGetSupportedClocksThrottleReasons(device deviceHandle, reasons *uint64) Return {
	return Return(C.nvmlDeviceGetSupportedClocksThrottleReasons(C.nvmlDevice_t(device), (*C.ulonglong)(unsafe.Pointer(reasons))))
}

// nvmlDeviceGetComputeMode function as declared in nvml.h
func nvmlDeviceGetComputeMode(device deviceHandle, mode *int32) Return {
	return Return(C.nvmlDeviceGetComputeMode(C.nvmlDevice_t(device), (*C.int)(unsafe.Pointer(mode))))
}

// nvmlDeviceSetComputeMode function as declared in nvml.h
func nvmlDeviceSetComputeMode(device deviceHandle, mode int32) Return {
	return Return(C.nvmlDeviceSetComputeMode(C.nvmlDevice_t(device), C.int(mode)))
}

// nvmlDeviceGetPersistenceMode function as declared in nvml.h
func nvmlDeviceGetPersistenceMode(device deviceHandle, mode *int32) Return {
	return Return(C.nvmlDeviceGetPersistenceMode(C.nvmlDevice_t(device), (*C.int)(unsafe.Pointer(mode))))
}

// nvmlDeviceSetPersistenceMode function as declared in nvml.h
func nvmlDeviceSetPersistenceMode(device deviceHandle, mode int32) Return {
	return Return(C.nvmlDeviceSetPersistenceMode(C.nvmlDevice_t(device), C.int(mode)))
}

// nvmlDeviceGetEccMode function as declared in nvml.h
func nvmlDeviceGetEccMode(device deviceHandle, current, pending *int32) Return {
	return Return(C.nvmlDeviceGetEccMode(C.nvmlDevice_t(device),
		(*C.int)(unsafe.Pointer(current)), (*C.int)(unsafe.Pointer(pending))))
}

// nvmlDeviceGetGpuOperationMode function as declared in nvml.h
func nvmlDeviceGetGpuOperationMode(device deviceHandle, current, pending *int32) Return {
	return Return(C.nvmlDeviceGetGpuOperationMode(C.nvmlDevice_t(device),
		(*C.int)(unsafe.Pointer(current)), (*C.int)(unsafe.Pointer(pending))))
}

// nvmlDeviceGetAutoBoostedClocksEnabled function as declared in nvml.h
func nvmlDeviceGetAutoBoostedClocksEnabled(device deviceHandle, isEnabled, defaultIsEnabled *int32) Return {
	return Return(C.nvmlDeviceGetAutoBoostedClocksEnabled(C.nvmlDevice_t(device),
		(*C.int)(unsafe.Pointer(isEnabled)), (*C.int)(unsafe.Pointer(defaultIsEnabled))))
}

// nvmlDeviceSetAutoBoostedClocksEnabled function as declared in nvml.h
func nvmlDeviceSetAutoBoostedClocksEnabled(device deviceHandle, enabled int32) Return {
	return Return(C.nvmlDeviceSetAutoBoostedClocksEnabled(C.nvmlDevice_t(device), C.int(enabled)))
}

// nvmlDeviceGetCudaComputeCapability function as declared in nvml.h
func nvmlDeviceGetCudaComputeCapability(device deviceHandle, major, minor *int32) Return {
	return Return(C.nvmlDeviceGetCudaComputeCapability(C.nvmlDevice_t(device),
		(*C.int)(unsafe.Pointer(major)), (*C.int)(unsafe.Pointer(minor))))
}

// nvmlDeviceGetPciInfo_v1 function as declared in nvml.h
func nvmlDeviceGetPciInfo_v1(device deviceHandle, pci *rawPciInfo) Return {
	return Return(C.nvmlDeviceGetPciInfo(C.nvmlDevice_t(device), (*C.nvmlPciInfo_t)(unsafe.Pointer(pci))))
}

// nvmlDeviceGetPciInfo_v2 function as declared in nvml.h
func nvmlDeviceGetPciInfo_v2(device deviceHandle, pci *rawPciInfo) Return {
	return Return(C.nvmlDeviceGetPciInfo_v2(C.nvmlDevice_t(device), (*C.nvmlPciInfo_t)(unsafe.Pointer(pci))))
}

// nvmlDeviceGetPciInfo_v3 function as declared in nvml.h
func nvmlDeviceGetPciInfo_v3(device deviceHandle, pci *rawPciInfo) Return {
	return Return(C.nvmlDeviceGetPciInfo_v3(C.nvmlDevice_t(device), (*C.nvmlPciInfo_t)(unsafe.Pointer(pci))))
}

// nvmlDeviceGetComputeRunningProcesses_v1 function as declared in nvml.h
func nvmlDeviceGetComputeRunningProcesses_v1(device deviceHandle, count *uint32, infos *rawProcessInfoV1) Return {
	return Return(C.nvmlDeviceGetComputeRunningProcesses(C.nvmlDevice_t(device),
		(*C.uint)(unsafe.Pointer(count)), (*C.nvmlProcessInfo_v1_t)(unsafe.Pointer(infos))))
}

// nvmlDeviceGetComputeRunningProcesses_v2 function as declared in nvml.h
func nvmlDeviceGetComputeRunningProcesses_v2(device deviceHandle, count *uint32, infos *rawProcessInfoV2) Return {
	return Return(C.nvmlDeviceGetComputeRunningProcesses_v2(C.nvmlDevice_t(device),
		(*C.uint)(unsafe.Pointer(count)), (*C.nvmlProcessInfo_v2_t)(unsafe.Pointer(infos))))
}

// nvmlDeviceGetComputeRunningProcesses_v3 function as declared in nvml.h
func nvmlDeviceGetComputeRunningProcesses_v3(device deviceHandle, count *uint32, infos *rawProcessInfoV2) Return {
	return Return(C.nvmlDeviceGetComputeRunningProcesses_v3(C.nvmlDevice_t(device),
		(*C.uint)(unsafe.Pointer(count)), (*C.nvmlProcessInfo_v2_t)(unsafe.Pointer(infos))))
}

// nvmlDeviceGetGraphicsRunningProcesses_v1 function as declared in nvml.h
func nvmlDeviceGetGraphicsRunningProcesses_v1(device deviceHandle, count *uint32, infos *rawProcessInfoV1) Return {
	return Return(C.nvmlDeviceGetGraphicsRunningProcesses(C.nvmlDevice_t(device),
		(*C.uint)(unsafe.Pointer(count)), (*C.nvmlProcessInfo_v1_t)(unsafe.Pointer(infos))))
}

// nvmlDeviceGetGraphicsRunningProcesses_v2 function as declared in nvml.h
func nvmlDeviceGetGraphicsRunningProcesses_v2(device deviceHandle, count *uint32, infos *rawProcessInfoV2) Return {
	return Return(C.nvmlDeviceGetGraphicsRunningProcesses_v2(C.nvmlDevice_t(device),
		(*C.uint)(unsafe.Pointer(count)), (*C.nvmlProcessInfo_v2_t)(unsafe.Pointer(infos))))
}

// nvmlDeviceGetGraphicsRunningProcesses_v3 function as declared in nvml.h
func nvmlDeviceGetGraphicsRunningProcesses_v3(device deviceHandle, count *uint32, infos *rawProcessInfoV2) Return {
	return Return(C.nvmlDeviceGetGraphicsRunningProcesses_v3(C.nvmlDevice_t(device),
		(*C.uint)(unsafe.Pointer(count)), (*C.nvmlProcessInfo_v2_t)(unsafe.Pointer(infos))))
}

// nvmlDeviceGetRetiredPages_v1 function as declared in nvml.h
func nvmlDeviceGetRetiredPages_v1(device deviceHandle, cause int32, count *uint32, addresses *uint64) Return {
	return Return(C.nvmlDeviceGetRetiredPages(C.nvmlDevice_t(device), C.int(cause),
		(*C.uint)(unsafe.Pointer(count)), (*C.ulonglong)(unsafe.Pointer(addresses))))
}

// nvmlDeviceGetRetiredPages_v2 function as declared in nvml.h
func nvmlDeviceGetRetiredPages_v2(device deviceHandle, cause int32, count *uint32, addresses, timestamps *uint64) Return {
	return Return(C.nvmlDeviceGetRetiredPages_v2(C.nvmlDevice_t(device), C.int(cause),
		(*C.uint)(unsafe.Pointer(count)), (*C.ulonglong)(unsafe.Pointer(addresses)),
		(*C.ulonglong)(unsafe.Pointer(timestamps))))
}

// nvmlDeviceGetSupportedEventTypes function as declared in nvml.h
func nvmlDeviceGetSupportedEventTypes(device deviceHandle, eventTypes *uint64) Return {
	return Return(C.nvmlDeviceGetSupportedEventTypes(C.nvmlDevice_t(device), (*C.ulonglong)(unsafe.Pointer(eventTypes))))
}

// nvmlDeviceRegisterEvents function as declared in nvml.h
func nvmlDeviceRegisterEvents(device deviceHandle, eventTypes uint64, set eventSetHandle) Return {
	return Return(C.nvmlDeviceRegisterEvents(C.nvmlDevice_t(device), C.ulonglong(eventTypes), C.nvmlEventSet_t(set)))
}

// nvmlDeviceGetSupportedVgpus function as declared in nvml.h
func nvmlDeviceGetSupportedVgpus(device deviceHandle, count *uint32, typeIDs *vgpuTypeID) Return {
	return Return(C.nvmlDeviceGetSupportedVgpus(C.nvmlDevice_t(device),
		(*C.uint)(unsafe.Pointer(count)), (*C.nvmlVgpuTypeId_t)(unsafe.Pointer(typeIDs))))
}

// nvmlDeviceGetCreatableVgpus function as declared in nvml.h
func nvmlDeviceGetCreatableVgpus(device deviceHandle, count *uint32, typeIDs *vgpuTypeID) Return {
	return Return(C.nvmlDeviceGetCreatableVgpus(C.nvmlDevice_t(device),
		(*C.uint)(unsafe.Pointer(count)), (*C.nvmlVgpuTypeId_t)(unsafe.Pointer(typeIDs))))
}

// nvmlVgpuTypeGetClass function as declared in nvml.h
func nvmlVgpuTypeGetClass(typeID vgpuTypeID, class *byte, size *uint32) Return {
	return Return(C.nvmlVgpuTypeGetClass(C.nvmlVgpuTypeId_t(typeID),
		(*C.char)(unsafe.Pointer(class)), (*C.uint)(unsafe.Pointer(size))))
}

// nvmlVgpuTypeGetLicense function as declared in nvml.h
func nvmlVgpuTypeGetLicense(typeID vgpuTypeID, license *byte, size uint32) Return {
	return Return(C.nvmlVgpuTypeGetLicense(C.nvmlVgpuTypeId_t(typeID),
		(*C.char)(unsafe.Pointer(license)), C.uint(size)))
}

// nvmlVgpuTypeGetName function as declared in nvml.h
func nvmlVgpuTypeGetName(typeID vgpuTypeID, name *byte, size *uint32) Return {
	return Return(C.nvmlVgpuTypeGetName(C.nvmlVgpuTypeId_t(typeID),
		(*C.char)(unsafe.Pointer(name)), (*C.uint)(unsafe.Pointer(size))))
}

// nvmlVgpuTypeGetCapabilities function as declared in nvml.h
func nvmlVgpuTypeGetCapabilities(typeID vgpuTypeID, capability int32, result *uint32) Return {
	return Return(C.nvmlVgpuTypeGetCapabilities(C.nvmlVgpuTypeId_t(typeID), C.int(capability),
		(*C.uint)(unsafe.Pointer(result))))
}

// nvmlVgpuTypeGetDeviceID function as declared in nvml.h
func nvmlVgpuTypeGetDeviceID(typeID vgpuTypeID, deviceID, subsystemID *uint64) Return {
	return Return(C.nvmlVgpuTypeGetDeviceID(C.nvmlVgpuTypeId_t(typeID),
		(*C.ulonglong)(unsafe.Pointer(deviceID)), (*C.ulonglong)(unsafe.Pointer(subsystemID))))
}

// nvmlVgpuTypeGetFrameRateLimit function as declared in nvml.h
func nvmlVgpuTypeGetFrameRateLimit(typeID vgpuTypeID, limit *uint32) Return {
	return Return(C.nvmlVgpuTypeGetFrameRateLimit(C.nvmlVgpuTypeId_t(typeID), (*C.uint)(unsafe.Pointer(limit))))
}

// nvmlVgpuTypeGetFramebufferSize function as declared in nvml.h
func nvmlVgpuTypeGetFramebufferSize(typeID vgpuTypeID, size *uint64) Return {
	return Return(C.nvmlVgpuTypeGetFramebufferSize(C.nvmlVgpuTypeId_t(typeID), (*C.ulonglong)(unsafe.Pointer(size))))
}

// nvmlVgpuTypeGetGpuInstanceProfileId function as declared in nvml.h
func nvmlVgpuTypeGetGpuInstanceProfileId(typeID vgpuTypeID, profileID *uint32) Return {
	return Return(C.nvmlVgpuTypeGetGpuInstanceProfileId(C.nvmlVgpuTypeId_t(typeID), (*C.uint)(unsafe.Pointer(profileID))))
}

// nvmlVgpuTypeGetMaxInstances function as declared in nvml.h
func nvmlVgpuTypeGetMaxInstances(device deviceHandle, typeID vgpuTypeID, count *uint32) Return {
	return Return(C.nvmlVgpuTypeGetMaxInstances(C.nvmlDevice_t(device), C.nvmlVgpuTypeId_t(typeID),
		(*C.uint)(unsafe.Pointer(count))))
}

// nvmlVgpuTypeGetMaxInstancesPerVm function as declared in nvml.h
func nvmlVgpuTypeGetMaxInstancesPerVm(typeID vgpuTypeID, count *uint32) Return {
	return Return(C.nvmlVgpuTypeGetMaxInstancesPerVm(C.nvmlVgpuTypeId_t(typeID), (*C.uint)(unsafe.Pointer(count))))
}

// nvmlVgpuTypeGetNumDisplayHeads function as declared in nvml.h
func nvmlVgpuTypeGetNumDisplayHeads(typeID vgpuTypeID, heads *uint32) Return {
	return Return(C.nvmlVgpuTypeGetNumDisplayHeads(C.nvmlVgpuTypeId_t(typeID), (*C.uint)(unsafe.Pointer(heads))))
}

// nvmlVgpuTypeGetResolution function as declared in nvml.h
func nvmlVgpuTypeGetResolution(typeID vgpuTypeID, displayIndex uint32, xdim, ydim *uint32) Return {
	return Return(C.nvmlVgpuTypeGetResolution(C.nvmlVgpuTypeId_t(typeID), C.uint(displayIndex),
		(*C.uint)(unsafe.Pointer(xdim)), (*C.uint)(unsafe.Pointer(ydim))))
}

// nvmlUnitGetCount function as declared in nvml.h
func nvmlUnitGetCount(count *uint32) Return {
	return Return(C.nvmlUnitGetCount((*C.uint)(unsafe.Pointer(count))))
}

// nvmlUnitGetHandleByIndex function as declared in nvml.h
func nvmlUnitGetHandleByIndex(index uint32, unit *unitHandle) Return {
	return Return(C.nvmlUnitGetHandleByIndex(C.uint(index), (*C.nvmlUnit_t)(unsafe.Pointer(unit))))
}

// nvmlUnitGetUnitInfo function as declared in nvml.h
func nvmlUnitGetUnitInfo(unit unitHandle, info *rawUnitInfo) Return {
	return Return(C.nvmlUnitGetUnitInfo(C.nvmlUnit_t(unit), (*C.nvmlUnitInfo_t)(unsafe.Pointer(info))))
}

// nvmlUnitGetLedState function as declared in nvml.h
func nvmlUnitGetLedState(unit unitHandle, state *rawLedState) Return {
	return Return(C.nvmlUnitGetLedState(C.nvmlUnit_t(unit), (*C.nvmlLedState_t)(unsafe.Pointer(state))))
}

// nvmlUnitSetLedState function as declared in nvml.h
func nvmlUnitSetLedState(unit unitHandle, color int32) Return {
	return Return(C.nvmlUnitSetLedState(C.nvmlUnit_t(unit), C.int(color)))
}

// nvmlUnitGetPsuInfo function as declared in nvml.h
func nvmlUnitGetPsuInfo(unit unitHandle, psu *rawPSUInfo) Return {
	return Return(C.nvmlUnitGetPsuInfo(C.nvmlUnit_t(unit), (*C.nvmlPSUInfo_t)(unsafe.Pointer(psu))))
}

// nvmlUnitGetTemperature function as declared in nvml.h
func nvmlUnitGetTemperature(unit unitHandle, sensor uint32, temp *uint32) Return {
	return Return(C.nvmlUnitGetTemperature(C.nvmlUnit_t(unit), C.uint(sensor), (*C.uint)(unsafe.Pointer(temp))))
}

// nvmlUnitGetFanSpeedInfo function as declared in nvml.h
func nvmlUnitGetFanSpeedInfo(unit unitHandle, speeds *rawUnitFanSpeeds) Return {
	return Return(C.nvmlUnitGetFanSpeedInfo(C.nvmlUnit_t(unit), (*C.nvmlUnitFanSpeeds_t)(unsafe.Pointer(speeds))))
}

// nvmlUnitGetDevices function as declared in nvml.h
func nvmlUnitGetDevices(unit unitHandle, count *uint32, devices *deviceHandle) Return {
	return Return(C.nvmlUnitGetDevices(C.nvmlUnit_t(unit),
		(*C.uint)(unsafe.Pointer(count)), (*C.nvmlDevice_t)(unsafe.Pointer(devices))))
}

// nvmlEventSetCreate function as declared in nvml.h
func nvmlEventSetCreate(set *eventSetHandle) Return {
	return Return(C.nvmlEventSetCreate((*C.nvmlEventSet_t)(unsafe.Pointer(set))))
}

// nvmlEventSetWait_v1 function as declared in nvml.h
func nvmlEventSetWait_v1(set eventSetHandle, data *rawEventData, timeoutMS uint32) Return {
	return Return(C.nvmlEventSetWait(C.nvmlEventSet_t(set), (*C.nvmlEventData_t)(unsafe.Pointer(data)), C.uint(timeoutMS)))
}

// nvmlEventSetWait_v2 function as declared in nvml.h
func nvmlEventSetWait_v2(set eventSetHandle, data *rawEventData, timeoutMS uint32) Return {
	return Return(C.nvmlEventSetWait_v2(C.nvmlEventSet_t(set), (*C.nvmlEventData_t)(unsafe.Pointer(data)), C.uint(timeoutMS)))
}

// nvmlEventSetFree function as declared in nvml.h
func nvmlEventSetFree(set eventSetHandle) Return {
	return Return(C.nvmlEventSetFree(C.nvmlEventSet_t(set)))
}
