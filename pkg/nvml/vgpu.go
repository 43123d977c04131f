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

// VgpuType describes one vGPU type a device supports. Values are obtained
// from Device.VgpuSupportedTypes or Device.VgpuCreatableTypes and are
// valid until the owning Lib shuts down.
//
// The whole vGPU surface is version-gated: on drivers without vGPU
// support every method fails with a SymbolError.
type VgpuType struct {
	lib    *Lib
	device deviceHandle
	id     vgpuTypeID
}

// ID returns the driver-assigned numeric ID of the type.
func (v *VgpuType) ID() uint32 {
	return uint32(v.id)
}

// ClassName returns the class of the type, for example "NVS" or "Quadro".
func (v *VgpuType) ClassName() (string, error) {
	t, err := v.lib.symbols()
	if err != nil {
		return "", err
	}
	if t.vgpuTypeGetClass == nil {
		return "", &SymbolError{Symbol: "nvmlVgpuTypeGetClass"}
	}
	buf := make([]byte, deviceNameBufferSize)
	size := uint32(len(buf))
	if ret := t.vgpuTypeGetClass(v.id, &buf[0], &size); ret != SUCCESS {
		return "", ret.toError()
	}
	return cstrToString(buf)
}

// License returns the license string required to run the type, for
// example "GRID-Virtual-PC,2.0;GRID-Virtual-WS,2.0".
func (v *VgpuType) License() (string, error) {
	t, err := v.lib.symbols()
	if err != nil {
		return "", err
	}
	if t.vgpuTypeGetLicense == nil {
		return "", &SymbolError{Symbol: "nvmlVgpuTypeGetLicense"}
	}
	buf := make([]byte, gridLicenseBufferSize)
	if ret := t.vgpuTypeGetLicense(v.id, &buf[0], uint32(len(buf))); ret != SUCCESS {
		return "", ret.toError()
	}
	return cstrToString(buf)
}

// Name returns the display name of the type, for example "GRID M60-2Q".
func (v *VgpuType) Name() (string, error) {
	t, err := v.lib.symbols()
	if err != nil {
		return "", err
	}
	if t.vgpuTypeGetName == nil {
		return "", &SymbolError{Symbol: "nvmlVgpuTypeGetName"}
	}
	buf := make([]byte, deviceNameBufferSize)
	size := uint32(len(buf))
	if ret := t.vgpuTypeGetName(v.id, &buf[0], &size); ret != SUCCESS {
		return "", ret.toError()
	}
	return cstrToString(buf)
}

// Capability reports whether the type has the given capability.
func (v *VgpuType) Capability(capability VgpuCapability) (bool, error) {
	t, err := v.lib.symbols()
	if err != nil {
		return false, err
	}
	if t.vgpuTypeGetCapabilities == nil {
		return false, &SymbolError{Symbol: "nvmlVgpuTypeGetCapabilities"}
	}
	var result uint32
	if ret := t.vgpuTypeGetCapabilities(v.id, int32(capability), &result); ret != SUCCESS {
		return false, ret.toError()
	}
	return result != 0, nil
}

// DeviceID returns the PCI device ID and subsystem ID virtual machines see
// for this type.
func (v *VgpuType) DeviceID() (deviceID, subsystemID uint64, err error) {
	t, err := v.lib.symbols()
	if err != nil {
		return 0, 0, err
	}
	if t.vgpuTypeGetDeviceID == nil {
		return 0, 0, &SymbolError{Symbol: "nvmlVgpuTypeGetDeviceID"}
	}
	if ret := t.vgpuTypeGetDeviceID(v.id, &deviceID, &subsystemID); ret != SUCCESS {
		return 0, 0, ret.toError()
	}
	return deviceID, subsystemID, nil
}

// FrameRateLimit returns the frame rate cap of the type in frames per
// second, zero if uncapped.
func (v *VgpuType) FrameRateLimit() (uint32, error) {
	t, err := v.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.vgpuTypeGetFrameRateLimit == nil {
		return 0, &SymbolError{Symbol: "nvmlVgpuTypeGetFrameRateLimit"}
	}
	var limit uint32
	if ret := t.vgpuTypeGetFrameRateLimit(v.id, &limit); ret != SUCCESS {
		return 0, ret.toError()
	}
	return limit, nil
}

// FramebufferSize returns the framebuffer reserved for each instance of
// the type, in bytes.
func (v *VgpuType) FramebufferSize() (uint64, error) {
	t, err := v.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.vgpuTypeGetFramebufferSize == nil {
		return 0, &SymbolError{Symbol: "nvmlVgpuTypeGetFramebufferSize"}
	}
	var size uint64
	if ret := t.vgpuTypeGetFramebufferSize(v.id, &size); ret != SUCCESS {
		return 0, ret.toError()
	}
	return size, nil
}

// InstanceProfileID returns the GPU instance profile backing the type, or
// InvalidInstanceID for non-MIG types.
func (v *VgpuType) InstanceProfileID() (uint32, error) {
	t, err := v.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.vgpuTypeGetGpuInstanceProfileID == nil {
		return 0, &SymbolError{Symbol: "nvmlVgpuTypeGetGpuInstanceProfileId"}
	}
	var profileID uint32
	if ret := t.vgpuTypeGetGpuInstanceProfileID(v.id, &profileID); ret != SUCCESS {
		return 0, ret.toError()
	}
	return profileID, nil
}

// MaxInstances returns how many instances of the type the device can run
// concurrently.
func (v *VgpuType) MaxInstances() (uint32, error) {
	t, err := v.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.vgpuTypeGetMaxInstances == nil {
		return 0, &SymbolError{Symbol: "nvmlVgpuTypeGetMaxInstances"}
	}
	var count uint32
	if ret := t.vgpuTypeGetMaxInstances(v.device, v.id, &count); ret != SUCCESS {
		return 0, ret.toError()
	}
	return count, nil
}

// MaxInstancesPerVM returns how many instances of the type one virtual
// machine may attach.
func (v *VgpuType) MaxInstancesPerVM() (uint32, error) {
	t, err := v.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.vgpuTypeGetMaxInstancesPerVM == nil {
		return 0, &SymbolError{Symbol: "nvmlVgpuTypeGetMaxInstancesPerVm"}
	}
	var count uint32
	if ret := t.vgpuTypeGetMaxInstancesPerVM(v.id, &count); ret != SUCCESS {
		return 0, ret.toError()
	}
	return count, nil
}

// NumDisplayHeads returns how many displays an instance of the type
// drives.
func (v *VgpuType) NumDisplayHeads() (uint32, error) {
	t, err := v.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.vgpuTypeGetNumDisplayHeads == nil {
		return 0, &SymbolError{Symbol: "nvmlVgpuTypeGetNumDisplayHeads"}
	}
	var heads uint32
	if ret := t.vgpuTypeGetNumDisplayHeads(v.id, &heads); ret != SUCCESS {
		return 0, ret.toError()
	}
	return heads, nil
}

// Resolution returns the maximum resolution of the given display head.
func (v *VgpuType) Resolution(displayIndex uint32) (x, y uint32, err error) {
	t, err := v.lib.symbols()
	if err != nil {
		return 0, 0, err
	}
	if t.vgpuTypeGetResolution == nil {
		return 0, 0, &SymbolError{Symbol: "nvmlVgpuTypeGetResolution"}
	}
	if ret := t.vgpuTypeGetResolution(v.id, displayIndex, &x, &y); ret != SUCCESS {
		return 0, 0, ret.toError()
	}
	return x, y, nil
}
