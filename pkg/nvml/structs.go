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

import "unsafe"

// Raw handle and struct layouts. These mirror nvml.h byte for byte; the cgo
// wrappers cast them to the corresponding C types before each call. They
// never escape the package: the typed layer copies every field out into
// owned values before returning.

type deviceHandle unsafe.Pointer

type unitHandle unsafe.Pointer

type eventSetHandle unsafe.Pointer

type vgpuTypeID uint32

// rawMemory mirrors nvmlMemory_t.
type rawMemory struct {
	Total uint64
	Free  uint64
	Used  uint64
}

// rawBAR1Memory mirrors nvmlBAR1Memory_t.
type rawBAR1Memory struct {
	Total uint64
	Free  uint64
	Used  uint64
}

// rawUtilization mirrors nvmlUtilization_t.
type rawUtilization struct {
	GPU    uint32
	Memory uint32
}

// rawPciInfo mirrors nvmlPciInfo_t (v3 layout; older entry points fill a
// prefix of it).
type rawPciInfo struct {
	BusIDLegacy    [16]byte
	Domain         uint32
	Bus            uint32
	Device         uint32
	PciDeviceID    uint32
	PciSubSystemID uint32
	BusID          [devicePciBusIDBufferSize]byte
}

// rawProcessInfoV1 mirrors nvmlProcessInfo_v1_t.
type rawProcessInfoV1 struct {
	Pid           uint32
	UsedGpuMemory uint64
}

// rawProcessInfoV2 mirrors nvmlProcessInfo_v2_t, shared by the v2 and v3
// running-process entry points.
type rawProcessInfoV2 struct {
	Pid               uint32
	UsedGpuMemory     uint64
	GpuInstanceID     uint32
	ComputeInstanceID uint32
}

// rawEventData mirrors nvmlEventData_t (v2 layout; a v1 wait fills only the
// first three fields).
type rawEventData struct {
	Device            deviceHandle
	EventType         uint64
	EventData         uint64
	GpuInstanceID     uint32
	ComputeInstanceID uint32
}

// rawUnitInfo mirrors nvmlUnitInfo_t.
type rawUnitInfo struct {
	Name            [unitInfoBufferSize]byte
	ID              [unitInfoBufferSize]byte
	Serial          [unitInfoBufferSize]byte
	FirmwareVersion [unitInfoBufferSize]byte
}

// rawLedState mirrors nvmlLedState_t.
type rawLedState struct {
	Cause [unitLedCauseBufferSize]byte
	Color int32
}

// rawPSUInfo mirrors nvmlPSUInfo_t.
type rawPSUInfo struct {
	State   [unitPsuStateBufferSize]byte
	Current uint32
	Voltage uint32
	Power   uint32
}

// rawUnitFanInfo mirrors nvmlUnitFanInfo_t.
type rawUnitFanInfo struct {
	Speed uint32
	State int32
}

// rawUnitFanSpeeds mirrors nvmlUnitFanSpeeds_t.
type rawUnitFanSpeeds struct {
	Fans  [unitFanSpeedsMaxFans]rawUnitFanInfo
	Count uint32
}
