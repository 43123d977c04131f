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
	"bytes"
	"fmt"
	"time"
	"unicode/utf8"
)

// cstrToString copies a NUL-terminated native buffer into an owned Go
// string. The native library documents its strings as ASCII; anything that
// is not valid UTF-8 indicates a corrupt response and fails the call.
func cstrToString(buf []byte) (string, error) {
	n := bytes.IndexByte(buf, 0)
	if n < 0 {
		n = len(buf)
	}
	s := string(buf[:n])
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("decoding native string: %w", ErrInvalidText)
	}
	return s, nil
}

// MemoryInfo is framebuffer memory occupancy in bytes.
type MemoryInfo struct {
	Total uint64 `json:"total"`
	Free  uint64 `json:"free"`
	Used  uint64 `json:"used"`
}

// BAR1MemoryInfo is BAR1 aperture occupancy in bytes.
type BAR1MemoryInfo struct {
	Total uint64 `json:"total"`
	Free  uint64 `json:"free"`
	Used  uint64 `json:"used"`
}

// Utilization is the percentage of time over the last sample period that
// the GPU's compute and memory paths were busy.
type Utilization struct {
	GPU    uint32 `json:"gpu"`
	Memory uint32 `json:"memory"`
}

// UtilizationInfo is a codec (encoder or decoder) utilization sample and
// the period it was measured over.
type UtilizationInfo struct {
	Utilization    uint32        `json:"utilization"`
	SamplingPeriod time.Duration `json:"samplingPeriod"`
}

// EncoderStats is an aggregate over the active encoder sessions of a
// device. AverageLatency is in microseconds.
type EncoderStats struct {
	SessionCount   uint32 `json:"sessionCount"`
	AverageFps     uint32 `json:"averageFps"`
	AverageLatency uint32 `json:"averageLatency"`
}

// EccModeState carries the current ECC mode and the one that takes effect
// at the next reboot.
type EccModeState struct {
	Current EnableState `json:"current"`
	Pending EnableState `json:"pending"`
}

// OperationModeState carries the current GPU operation mode and the one
// that takes effect at the next reboot.
type OperationModeState struct {
	Current OperationMode `json:"current"`
	Pending OperationMode `json:"pending"`
}

// AutoBoostClocksEnabledInfo reports whether auto boosted clocks are
// enabled right now and whether they default to enabled.
type AutoBoostClocksEnabledInfo struct {
	IsEnabled        bool `json:"isEnabled"`
	IsEnabledDefault bool `json:"isEnabledDefault"`
}

// PowerManagementConstraints is the settable power limit range of a
// device, in milliwatts.
type PowerManagementConstraints struct {
	MinLimit uint32 `json:"minLimit"`
	MaxLimit uint32 `json:"maxLimit"`
}

// CudaComputeCapability is the compute capability of a device.
type CudaComputeCapability struct {
	Major int `json:"major"`
	Minor int `json:"minor"`
}

func (c CudaComputeCapability) String() string {
	return fmt.Sprintf("%d.%d", c.Major, c.Minor)
}

// PciInfo describes where a device sits on the PCI bus.
type PciInfo struct {
	BusIDLegacy    string `json:"busIdLegacy"`
	Domain         uint32 `json:"domain"`
	Bus            uint32 `json:"bus"`
	Device         uint32 `json:"device"`
	PciDeviceID    uint32 `json:"pciDeviceId"`
	PciSubSystemID uint32 `json:"pciSubSystemId"`
	BusID          string `json:"busId"`
}

// ProcessInfo describes one process with a context on a device. The
// instance IDs are InvalidInstanceID unless the device is MIG-enabled and
// the driver reports per-instance processes.
type ProcessInfo struct {
	Pid               uint32 `json:"pid"`
	UsedGpuMemory     uint64 `json:"usedGpuMemory"`
	GpuInstanceID     uint32 `json:"gpuInstanceId"`
	ComputeInstanceID uint32 `json:"computeInstanceId"`
}

// RetiredPage is a framebuffer page that was retired. Timestamp is the
// retirement time when the driver exposes it and the zero time otherwise.
type RetiredPage struct {
	Address   uint64    `json:"address"`
	Timestamp time.Time `json:"timestamp,omitempty"`
}

// UnitInfo is the static description of an S-class unit.
type UnitInfo struct {
	Name            string `json:"name"`
	ID              string `json:"id"`
	Serial          string `json:"serial"`
	FirmwareVersion string `json:"firmwareVersion"`
}

// LedState is the color of a unit LED and the reason it is lit.
type LedState struct {
	Color LedColor `json:"color"`
	Cause string   `json:"cause"`
}

// PsuInfo describes the power supply of an S-class unit. Current is in
// amperes, Voltage in volts, Power in watts.
type PsuInfo struct {
	State   string `json:"state"`
	Current uint32 `json:"current"`
	Voltage uint32 `json:"voltage"`
	Power   uint32 `json:"power"`
}

// UnitFanInfo is the speed and health of one unit fan.
type UnitFanInfo struct {
	Speed uint32   `json:"speed"`
	State FanState `json:"state"`
}
