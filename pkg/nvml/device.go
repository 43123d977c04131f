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
	"fmt"
	"time"
)

// Device is a typed handle to one GPU. It is obtained from the Lib that
// loaded the driver and is valid until that Lib is shut down; afterwards
// every method fails with ErrClosed. A Device is safe for concurrent use.
type Device struct {
	lib    *Lib
	handle deviceHandle
}

// Name returns the product name, for example "Tesla V100-SXM2-16GB".
func (d *Device) Name() (string, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return "", err
	}
	buf := make([]byte, deviceNameBufferSize)
	if ret := t.deviceGetName(d.handle, &buf[0], uint32(len(buf))); ret != SUCCESS {
		return "", ret.toError()
	}
	return cstrToString(buf)
}

// UUID returns the globally unique immutable identifier of the device.
func (d *Device) UUID() (string, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return "", err
	}
	buf := make([]byte, deviceUUIDBufferSize)
	if ret := t.deviceGetUUID(d.handle, &buf[0], uint32(len(buf))); ret != SUCCESS {
		return "", ret.toError()
	}
	return cstrToString(buf)
}

// Serial returns the board serial number.
func (d *Device) Serial() (string, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return "", err
	}
	buf := make([]byte, deviceSerialBufferSize)
	if ret := t.deviceGetSerial(d.handle, &buf[0], uint32(len(buf))); ret != SUCCESS {
		return "", ret.toError()
	}
	return cstrToString(buf)
}

// Index returns the zero-based enumeration index of the device.
func (d *Device) Index() (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var index uint32
	if ret := t.deviceGetIndex(d.handle, &index); ret != SUCCESS {
		return 0, ret.toError()
	}
	return index, nil
}

// Brand returns the product line of the device.
func (d *Device) Brand() (BrandType, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.deviceGetBrand == nil {
		return 0, &SymbolError{Symbol: "nvmlDeviceGetBrand"}
	}
	var raw int32
	if ret := t.deviceGetBrand(d.handle, &raw); ret != SUCCESS {
		return 0, ret.toError()
	}
	return BrandTypeFromRaw(raw)
}

// MinorNumber returns N such that the device node is /dev/nvidiaN.
func (d *Device) MinorNumber() (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var minor uint32
	if ret := t.deviceGetMinorNumber(d.handle, &minor); ret != SUCCESS {
		return 0, ret.toError()
	}
	return minor, nil
}

// BoardID returns an ID shared by devices on the same physical board.
func (d *Device) BoardID() (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var boardID uint32
	if ret := t.deviceGetBoardID(d.handle, &boardID); ret != SUCCESS {
		return 0, ret.toError()
	}
	return boardID, nil
}

// IsMultiGpuBoard reports whether the device sits on a multi-GPU board.
func (d *Device) IsMultiGpuBoard() (bool, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return false, err
	}
	var multi uint32
	if ret := t.deviceGetMultiGpuBoard(d.handle, &multi); ret != SUCCESS {
		return false, ret.toError()
	}
	return multi != 0, nil
}

// VbiosVersion returns the VBIOS version of the device.
func (d *Device) VbiosVersion() (string, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return "", err
	}
	buf := make([]byte, deviceVbiosBufferSize)
	if ret := t.deviceGetVbiosVersion(d.handle, &buf[0], uint32(len(buf))); ret != SUCCESS {
		return "", ret.toError()
	}
	return cstrToString(buf)
}

// Temperature returns the reading of the given sensor in degrees Celsius.
func (d *Device) Temperature(sensor TemperatureSensor) (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var temp uint32
	if ret := t.deviceGetTemperature(d.handle, int32(sensor), &temp); ret != SUCCESS {
		return 0, ret.toError()
	}
	return temp, nil
}

// TemperatureThreshold returns the given thermal limit in degrees Celsius.
func (d *Device) TemperatureThreshold(threshold TemperatureThreshold) (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var temp uint32
	if ret := t.deviceGetTemperatureThreshold(d.handle, int32(threshold), &temp); ret != SUCCESS {
		return 0, ret.toError()
	}
	return temp, nil
}

// FanSpeed returns the intended fan speed as a percentage of maximum. The
// reading is the requested speed, not a measurement; a mechanically
// blocked fan still reports its target.
func (d *Device) FanSpeed() (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var speed uint32
	if ret := t.deviceGetFanSpeed(d.handle, &speed); ret != SUCCESS {
		return 0, ret.toError()
	}
	return speed, nil
}

// FanSpeedForFan is FanSpeed for one fan of a device that has several.
func (d *Device) FanSpeedForFan(fan uint32) (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.deviceGetFanSpeedForFan == nil {
		return 0, &SymbolError{Symbol: "nvmlDeviceGetFanSpeed_v2"}
	}
	var speed uint32
	if ret := t.deviceGetFanSpeedForFan(d.handle, fan, &speed); ret != SUCCESS {
		return 0, ret.toError()
	}
	return speed, nil
}

// PowerUsage returns the current board power draw in milliwatts.
func (d *Device) PowerUsage() (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var power uint32
	if ret := t.deviceGetPowerUsage(d.handle, &power); ret != SUCCESS {
		return 0, ret.toError()
	}
	return power, nil
}

// PowerManagementLimit returns the active power cap in milliwatts.
func (d *Device) PowerManagementLimit() (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var limit uint32
	if ret := t.deviceGetPowerManagementLimit(d.handle, &limit); ret != SUCCESS {
		return 0, ret.toError()
	}
	return limit, nil
}

// PowerManagementLimitConstraints returns the range the power cap can be
// set within, in milliwatts.
func (d *Device) PowerManagementLimitConstraints() (PowerManagementConstraints, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return PowerManagementConstraints{}, err
	}
	if t.deviceGetPowerManagementLimitConstraints == nil {
		return PowerManagementConstraints{}, &SymbolError{Symbol: "nvmlDeviceGetPowerManagementLimitConstraints"}
	}
	var minLimit, maxLimit uint32
	if ret := t.deviceGetPowerManagementLimitConstraints(d.handle, &minLimit, &maxLimit); ret != SUCCESS {
		return PowerManagementConstraints{}, ret.toError()
	}
	return PowerManagementConstraints{MinLimit: minLimit, MaxLimit: maxLimit}, nil
}

// PowerManagementDefaultLimit returns the factory power cap in milliwatts.
func (d *Device) PowerManagementDefaultLimit() (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.deviceGetPowerManagementDefaultLimit == nil {
		return 0, &SymbolError{Symbol: "nvmlDeviceGetPowerManagementDefaultLimit"}
	}
	var limit uint32
	if ret := t.deviceGetPowerManagementDefaultLimit(d.handle, &limit); ret != SUCCESS {
		return 0, ret.toError()
	}
	return limit, nil
}

// EnforcedPowerLimit returns the cap actually enforced after all per-board
// constraints are applied, in milliwatts.
func (d *Device) EnforcedPowerLimit() (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.deviceGetEnforcedPowerLimit == nil {
		return 0, &SymbolError{Symbol: "nvmlDeviceGetEnforcedPowerLimit"}
	}
	var limit uint32
	if ret := t.deviceGetEnforcedPowerLimit(d.handle, &limit); ret != SUCCESS {
		return 0, ret.toError()
	}
	return limit, nil
}

// PerformanceState returns the current power/performance level.
func (d *Device) PerformanceState() (PerformanceState, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var raw int32
	if ret := t.deviceGetPerformanceState(d.handle, &raw); ret != SUCCESS {
		return 0, ret.toError()
	}
	return PerformanceStateFromRaw(raw)
}

// UtilizationRates returns compute and memory utilization over the last
// sample period.
func (d *Device) UtilizationRates() (Utilization, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return Utilization{}, err
	}
	var raw rawUtilization
	if ret := t.deviceGetUtilizationRates(d.handle, &raw); ret != SUCCESS {
		return Utilization{}, ret.toError()
	}
	return Utilization{GPU: raw.GPU, Memory: raw.Memory}, nil
}

// EncoderUtilization returns video encoder utilization and the sampling
// period it was measured over.
func (d *Device) EncoderUtilization() (UtilizationInfo, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return UtilizationInfo{}, err
	}
	if t.deviceGetEncoderUtilization == nil {
		return UtilizationInfo{}, &SymbolError{Symbol: "nvmlDeviceGetEncoderUtilization"}
	}
	var util, periodUs uint32
	if ret := t.deviceGetEncoderUtilization(d.handle, &util, &periodUs); ret != SUCCESS {
		return UtilizationInfo{}, ret.toError()
	}
	return UtilizationInfo{
		Utilization:    util,
		SamplingPeriod: time.Duration(periodUs) * time.Microsecond,
	}, nil
}

// DecoderUtilization returns video decoder utilization and the sampling
// period it was measured over.
func (d *Device) DecoderUtilization() (UtilizationInfo, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return UtilizationInfo{}, err
	}
	if t.deviceGetDecoderUtilization == nil {
		return UtilizationInfo{}, &SymbolError{Symbol: "nvmlDeviceGetDecoderUtilization"}
	}
	var util, periodUs uint32
	if ret := t.deviceGetDecoderUtilization(d.handle, &util, &periodUs); ret != SUCCESS {
		return UtilizationInfo{}, ret.toError()
	}
	return UtilizationInfo{
		Utilization:    util,
		SamplingPeriod: time.Duration(periodUs) * time.Microsecond,
	}, nil
}

// EncoderStats returns aggregate statistics over the active encoder
// sessions.
func (d *Device) EncoderStats() (EncoderStats, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return EncoderStats{}, err
	}
	if t.deviceGetEncoderStats == nil {
		return EncoderStats{}, &SymbolError{Symbol: "nvmlDeviceGetEncoderStats"}
	}
	var stats EncoderStats
	if ret := t.deviceGetEncoderStats(d.handle, &stats.SessionCount, &stats.AverageFps, &stats.AverageLatency); ret != SUCCESS {
		return EncoderStats{}, ret.toError()
	}
	return stats, nil
}

// MemoryInfo returns framebuffer occupancy.
func (d *Device) MemoryInfo() (MemoryInfo, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return MemoryInfo{}, err
	}
	var raw rawMemory
	if ret := t.deviceGetMemoryInfo(d.handle, &raw); ret != SUCCESS {
		return MemoryInfo{}, ret.toError()
	}
	return MemoryInfo{Total: raw.Total, Free: raw.Free, Used: raw.Used}, nil
}

// BAR1MemoryInfo returns BAR1 aperture occupancy.
func (d *Device) BAR1MemoryInfo() (BAR1MemoryInfo, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return BAR1MemoryInfo{}, err
	}
	if t.deviceGetBAR1MemoryInfo == nil {
		return BAR1MemoryInfo{}, &SymbolError{Symbol: "nvmlDeviceGetBAR1MemoryInfo"}
	}
	var raw rawBAR1Memory
	if ret := t.deviceGetBAR1MemoryInfo(d.handle, &raw); ret != SUCCESS {
		return BAR1MemoryInfo{}, ret.toError()
	}
	return BAR1MemoryInfo{Total: raw.Total, Free: raw.Free, Used: raw.Used}, nil
}

// ClockInfo returns the current speed of the given clock domain in MHz.
func (d *Device) ClockInfo(clock ClockType) (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var mhz uint32
	if ret := t.deviceGetClockInfo(d.handle, int32(clock), &mhz); ret != SUCCESS {
		return 0, ret.toError()
	}
	return mhz, nil
}

// MaxClockInfo returns the maximum speed of the given clock domain in MHz.
func (d *Device) MaxClockInfo(clock ClockType) (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var mhz uint32
	if ret := t.deviceGetMaxClockInfo(d.handle, int32(clock), &mhz); ret != SUCCESS {
		return 0, ret.toError()
	}
	return mhz, nil
}

// ApplicationsClock returns the clock applications run at in the given
// domain, in MHz.
func (d *Device) ApplicationsClock(clock ClockType) (uint32, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.deviceGetApplicationsClock == nil {
		return 0, &SymbolError{Symbol: "nvmlDeviceGetApplicationsClock"}
	}
	var mhz uint32
	if ret := t.deviceGetApplicationsClock(d.handle, int32(clock), &mhz); ret != SUCCESS {
		return 0, ret.toError()
	}
	return mhz, nil
}

// CurrentThrottleReasons returns why clocks are currently held below their
// maximum. A bitmask the translation does not recognize fails with an
// UnknownFlagsError rather than being truncated.
func (d *Device) CurrentThrottleReasons() (ThrottleReasons, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.deviceGetCurrentClocksThrottleReasons == nil {
		return 0, &SymbolError{Symbol: "nvmlDeviceGetCurrentClocksThrottleReasons"}
	}
	var raw uint64
	if ret := t.deviceGetCurrentClocksThrottleReasons(d.handle, &raw); ret != SUCCESS {
		return 0, ret.toError()
	}
	return ThrottleReasonsFromRaw(raw)
}

// SupportedThrottleReasons returns the throttle reasons this device can
// report.
func (d *Device) SupportedThrottleReasons() (ThrottleReasons, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	if t.deviceGetSupportedClocksThrottleReasons == nil {
		return 0, &SymbolError{Symbol: "nvmlDeviceGetSupportedClocksThrottleReasons"}
	}
	var raw uint64
	if ret := t.deviceGetSupportedClocksThrottleReasons(d.handle, &raw); ret != SUCCESS {
		return 0, ret.toError()
	}
	return ThrottleReasonsFromRaw(raw)
}

// ComputeMode returns the current compute mode.
func (d *Device) ComputeMode() (ComputeMode, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var raw int32
	if ret := t.deviceGetComputeMode(d.handle, &raw); ret != SUCCESS {
		return 0, ret.toError()
	}
	return ComputeModeFromRaw(raw)
}

// SetComputeMode sets the compute mode. Requires root.
func (d *Device) SetComputeMode(mode ComputeMode) error {
	t, err := d.lib.symbols()
	if err != nil {
		return err
	}
	return t.deviceSetComputeMode(d.handle, int32(mode)).toError()
}

// PersistenceMode reports whether the driver stays loaded while no client
// has the device open.
func (d *Device) PersistenceMode() (EnableState, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var raw int32
	if ret := t.deviceGetPersistenceMode(d.handle, &raw); ret != SUCCESS {
		return 0, ret.toError()
	}
	return EnableStateFromRaw(raw)
}

// SetPersistenceMode sets persistence mode. Requires root.
func (d *Device) SetPersistenceMode(state EnableState) error {
	t, err := d.lib.symbols()
	if err != nil {
		return err
	}
	return t.deviceSetPersistenceMode(d.handle, int32(state)).toError()
}

// EccMode returns the current ECC mode and the one pending at the next
// reboot.
func (d *Device) EccMode() (EccModeState, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return EccModeState{}, err
	}
	var rawCurrent, rawPending int32
	if ret := t.deviceGetEccMode(d.handle, &rawCurrent, &rawPending); ret != SUCCESS {
		return EccModeState{}, ret.toError()
	}
	current, err := EnableStateFromRaw(rawCurrent)
	if err != nil {
		return EccModeState{}, err
	}
	pending, err := EnableStateFromRaw(rawPending)
	if err != nil {
		return EccModeState{}, err
	}
	return EccModeState{Current: current, Pending: pending}, nil
}

// GpuOperationMode returns the current operation mode and the one pending
// at the next reboot.
func (d *Device) GpuOperationMode() (OperationModeState, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return OperationModeState{}, err
	}
	if t.deviceGetGpuOperationMode == nil {
		return OperationModeState{}, &SymbolError{Symbol: "nvmlDeviceGetGpuOperationMode"}
	}
	var rawCurrent, rawPending int32
	if ret := t.deviceGetGpuOperationMode(d.handle, &rawCurrent, &rawPending); ret != SUCCESS {
		return OperationModeState{}, ret.toError()
	}
	current, err := OperationModeFromRaw(rawCurrent)
	if err != nil {
		return OperationModeState{}, err
	}
	pending, err := OperationModeFromRaw(rawPending)
	if err != nil {
		return OperationModeState{}, err
	}
	return OperationModeState{Current: current, Pending: pending}, nil
}

// AutoBoostedClocksEnabled reports whether auto boosted clocks are enabled
// now and by default.
func (d *Device) AutoBoostedClocksEnabled() (AutoBoostClocksEnabledInfo, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return AutoBoostClocksEnabledInfo{}, err
	}
	if t.deviceGetAutoBoostedClocksEnabled == nil {
		return AutoBoostClocksEnabledInfo{}, &SymbolError{Symbol: "nvmlDeviceGetAutoBoostedClocksEnabled"}
	}
	var rawEnabled, rawDefault int32
	if ret := t.deviceGetAutoBoostedClocksEnabled(d.handle, &rawEnabled, &rawDefault); ret != SUCCESS {
		return AutoBoostClocksEnabledInfo{}, ret.toError()
	}
	enabled, err := EnableStateFromRaw(rawEnabled)
	if err != nil {
		return AutoBoostClocksEnabledInfo{}, err
	}
	enabledDefault, err := EnableStateFromRaw(rawDefault)
	if err != nil {
		return AutoBoostClocksEnabledInfo{}, err
	}
	return AutoBoostClocksEnabledInfo{
		IsEnabled:        enabled == EnableStateEnabled,
		IsEnabledDefault: enabledDefault == EnableStateEnabled,
	}, nil
}

// SetAutoBoostedClocksEnabled enables or disables auto boosted clocks.
// Requires root on some configurations.
func (d *Device) SetAutoBoostedClocksEnabled(state EnableState) error {
	t, err := d.lib.symbols()
	if err != nil {
		return err
	}
	if t.deviceSetAutoBoostedClocksEnabled == nil {
		return &SymbolError{Symbol: "nvmlDeviceSetAutoBoostedClocksEnabled"}
	}
	return t.deviceSetAutoBoostedClocksEnabled(d.handle, int32(state)).toError()
}

// CudaComputeCapability returns the compute capability of the device.
func (d *Device) CudaComputeCapability() (CudaComputeCapability, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return CudaComputeCapability{}, err
	}
	if t.deviceGetCudaComputeCapability == nil {
		return CudaComputeCapability{}, &SymbolError{Symbol: "nvmlDeviceGetCudaComputeCapability"}
	}
	var major, minor int32
	if ret := t.deviceGetCudaComputeCapability(d.handle, &major, &minor); ret != SUCCESS {
		return CudaComputeCapability{}, ret.toError()
	}
	return CudaComputeCapability{Major: int(major), Minor: int(minor)}, nil
}

// PciInfo returns the PCI attributes of the device.
func (d *Device) PciInfo() (PciInfo, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return PciInfo{}, err
	}
	var raw rawPciInfo
	if ret := t.deviceGetPciInfo(d.handle, &raw); ret != SUCCESS {
		return PciInfo{}, ret.toError()
	}
	legacy, err := cstrToString(raw.BusIDLegacy[:])
	if err != nil {
		return PciInfo{}, err
	}
	busID, err := cstrToString(raw.BusID[:])
	if err != nil {
		return PciInfo{}, err
	}
	return PciInfo{
		BusIDLegacy:    legacy,
		Domain:         raw.Domain,
		Bus:            raw.Bus,
		Device:         raw.Device,
		PciDeviceID:    raw.PciDeviceID,
		PciSubSystemID: raw.PciSubSystemID,
		BusID:          busID,
	}, nil
}

// ComputeRunningProcesses returns the processes with a compute context on
// the device.
func (d *Device) ComputeRunningProcesses() ([]ProcessInfo, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return nil, err
	}
	return runningProcesses(d.handle, t.deviceGetComputeRunningProcessesV1, t.deviceGetComputeRunningProcessesV2)
}

// GraphicsRunningProcesses returns the processes with a graphics context
// on the device.
func (d *Device) GraphicsRunningProcesses() ([]ProcessInfo, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return nil, err
	}
	return runningProcesses(d.handle, t.deviceGetGraphicsRunningProcessesV1, t.deviceGetGraphicsRunningProcessesV2)
}

// runningProcesses drives the count-then-fill protocol of the process
// queries, preferring the v2/v3 entry point when the driver exports it.
// The process list can grow between the two calls, so insufficient-size
// responses retry with the updated count plus headroom.
func runningProcesses(
	handle deviceHandle,
	v1 func(deviceHandle, *uint32, *rawProcessInfoV1) Return,
	v2 func(deviceHandle, *uint32, *rawProcessInfoV2) Return,
) ([]ProcessInfo, error) {
	var count uint32
	var probe Return
	if v2 != nil {
		probe = v2(handle, &count, nil)
	} else {
		probe = v1(handle, &count, nil)
	}
	switch probe {
	case SUCCESS:
		if count == 0 {
			return []ProcessInfo{}, nil
		}
	case ERROR_INSUFFICIENT_SIZE:
	default:
		return nil, probe.toError()
	}

	for {
		size := count + 8
		if v2 != nil {
			buf := make([]rawProcessInfoV2, size)
			n := size
			switch ret := v2(handle, &n, &buf[0]); ret {
			case SUCCESS:
				infos := make([]ProcessInfo, 0, n)
				for _, raw := range buf[:n] {
					infos = append(infos, ProcessInfo{
						Pid:               raw.Pid,
						UsedGpuMemory:     raw.UsedGpuMemory,
						GpuInstanceID:     raw.GpuInstanceID,
						ComputeInstanceID: raw.ComputeInstanceID,
					})
				}
				return infos, nil
			case ERROR_INSUFFICIENT_SIZE:
				count = n
			default:
				return nil, ret.toError()
			}
			continue
		}

		buf := make([]rawProcessInfoV1, size)
		n := size
		switch ret := v1(handle, &n, &buf[0]); ret {
		case SUCCESS:
			infos := make([]ProcessInfo, 0, n)
			for _, raw := range buf[:n] {
				infos = append(infos, ProcessInfo{
					Pid:               raw.Pid,
					UsedGpuMemory:     raw.UsedGpuMemory,
					GpuInstanceID:     InvalidInstanceID,
					ComputeInstanceID: InvalidInstanceID,
				})
			}
			return infos, nil
		case ERROR_INSUFFICIENT_SIZE:
			count = n
		default:
			return nil, ret.toError()
		}
	}
}

// RetiredPages returns the framebuffer pages retired for the given cause.
// Timestamps are populated when the driver exports the v2 entry point.
func (d *Device) RetiredPages(cause PageRetirementCause) ([]RetiredPage, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return nil, err
	}
	if t.deviceGetRetiredPagesV1 == nil && t.deviceGetRetiredPagesV2 == nil {
		return nil, &SymbolError{Symbol: "nvmlDeviceGetRetiredPages"}
	}

	var count uint32
	var probe Return
	if t.deviceGetRetiredPagesV2 != nil {
		probe = t.deviceGetRetiredPagesV2(d.handle, int32(cause), &count, nil, nil)
	} else {
		probe = t.deviceGetRetiredPagesV1(d.handle, int32(cause), &count, nil)
	}
	switch probe {
	case SUCCESS:
		if count == 0 {
			return []RetiredPage{}, nil
		}
	case ERROR_INSUFFICIENT_SIZE:
	default:
		return nil, probe.toError()
	}

	addresses := make([]uint64, count)
	n := count
	if t.deviceGetRetiredPagesV2 != nil {
		timestamps := make([]uint64, count)
		if ret := t.deviceGetRetiredPagesV2(d.handle, int32(cause), &n, &addresses[0], &timestamps[0]); ret != SUCCESS {
			return nil, ret.toError()
		}
		pages := make([]RetiredPage, 0, n)
		for i := uint32(0); i < n; i++ {
			pages = append(pages, RetiredPage{
				Address:   addresses[i],
				Timestamp: time.Unix(int64(timestamps[i]), 0),
			})
		}
		return pages, nil
	}

	if ret := t.deviceGetRetiredPagesV1(d.handle, int32(cause), &n, &addresses[0]); ret != SUCCESS {
		return nil, ret.toError()
	}
	pages := make([]RetiredPage, 0, n)
	for i := uint32(0); i < n; i++ {
		pages = append(pages, RetiredPage{Address: addresses[i]})
	}
	return pages, nil
}

// SupportedEventTypes returns the event kinds this device can deliver.
func (d *Device) SupportedEventTypes() (EventTypes, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return 0, err
	}
	var raw uint64
	if ret := t.deviceGetSupportedEventTypes(d.handle, &raw); ret != SUCCESS {
		return 0, ret.toError()
	}
	return EventTypesFromRaw(raw)
}

// RegisterEvents subscribes the event set to the given kinds of events
// from this device. Registration survives until the owning Lib shuts down.
func (d *Device) RegisterEvents(types EventTypes, set *EventSet) error {
	t, err := d.lib.symbols()
	if err != nil {
		return err
	}
	return t.deviceRegisterEvents(d.handle, uint64(types), set.handle).toError()
}

// VgpuSupportedTypes returns the vGPU types this device supports at all.
func (d *Device) VgpuSupportedTypes() ([]*VgpuType, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return nil, err
	}
	if t.deviceGetSupportedVgpus == nil {
		return nil, &SymbolError{Symbol: "nvmlDeviceGetSupportedVgpus"}
	}
	return d.vgpuTypes(t.deviceGetSupportedVgpus)
}

// VgpuCreatableTypes returns the vGPU types that can be started on the
// device right now, given what is already running on it.
func (d *Device) VgpuCreatableTypes() ([]*VgpuType, error) {
	t, err := d.lib.symbols()
	if err != nil {
		return nil, err
	}
	if t.deviceGetCreatableVgpus == nil {
		return nil, &SymbolError{Symbol: "nvmlDeviceGetCreatableVgpus"}
	}
	return d.vgpuTypes(t.deviceGetCreatableVgpus)
}

func (d *Device) vgpuTypes(query func(deviceHandle, *uint32, *vgpuTypeID) Return) ([]*VgpuType, error) {
	var count uint32
	switch ret := query(d.handle, &count, nil); ret {
	case SUCCESS:
		if count == 0 {
			return []*VgpuType{}, nil
		}
	case ERROR_INSUFFICIENT_SIZE:
	default:
		return nil, ret.toError()
	}

	for {
		buf := make([]vgpuTypeID, count+8)
		n := uint32(len(buf))
		switch ret := query(d.handle, &n, &buf[0]); ret {
		case SUCCESS:
			types := make([]*VgpuType, 0, n)
			for _, id := range buf[:n] {
				types = append(types, &VgpuType{lib: d.lib, device: d.handle, id: id})
			}
			return types, nil
		case ERROR_INSUFFICIENT_SIZE:
			count = n
		default:
			return nil, ret.toError()
		}
	}
}

func (d *Device) String() string {
	return fmt.Sprintf("Device(%p)", d.handle)
}
