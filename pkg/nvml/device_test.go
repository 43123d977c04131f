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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeviceName(t *testing.T) {
	tab := &symtab{
		deviceGetName: func(_ deviceHandle, name *byte, length uint32) Return {
			require.Equal(t, uint32(deviceNameBufferSize), length)
			copy(bufFrom(name, length), "Tesla V100-SXM2-16GB\x00")
			return SUCCESS
		},
	}
	device := &Device{lib: newTestLib(tab)}

	name, err := device.Name()
	require.NoError(t, err)
	require.Equal(t, "Tesla V100-SXM2-16GB", name)
}

func TestDeviceNameInvalidText(t *testing.T) {
	tab := &symtab{
		deviceGetName: func(_ deviceHandle, name *byte, length uint32) Return {
			copy(bufFrom(name, length), []byte{0xff, 0xfe, 0x00})
			return SUCCESS
		},
	}
	device := &Device{lib: newTestLib(tab)}

	_, err := device.Name()
	require.ErrorIs(t, err, ErrInvalidText)
}

func TestDeviceTemperatureError(t *testing.T) {
	tab := &symtab{
		deviceGetTemperature: func(_ deviceHandle, sensor int32, _ *uint32) Return {
			require.Equal(t, int32(TemperatureSensorGPU), sensor)
			return ERROR_NOT_SUPPORTED
		},
	}
	device := &Device{lib: newTestLib(tab)}

	_, err := device.Temperature(TemperatureSensorGPU)
	require.ErrorIs(t, err, ErrNotSupported)

	var typed *Error
	require.ErrorAs(t, err, &typed)
	require.Equal(t, Return(3), typed.Code)
}

func TestDeviceOptionalSymbolMissing(t *testing.T) {
	// A base-API-only table: every gated slot is nil.
	device := &Device{lib: newTestLib(&symtab{})}

	_, err := device.EncoderStats()
	var symErr *SymbolError
	require.ErrorAs(t, err, &symErr)
	require.Equal(t, "nvmlDeviceGetEncoderStats", symErr.Symbol)

	_, err = device.VgpuSupportedTypes()
	require.ErrorAs(t, err, &symErr)
	require.Equal(t, "nvmlDeviceGetSupportedVgpus", symErr.Symbol)

	err = device.SetAutoBoostedClocksEnabled(EnableStateEnabled)
	require.ErrorAs(t, err, &symErr)
	require.Equal(t, "nvmlDeviceSetAutoBoostedClocksEnabled", symErr.Symbol)
}

func TestDeviceMemoryInfo(t *testing.T) {
	tab := &symtab{
		deviceGetMemoryInfo: func(_ deviceHandle, memory *rawMemory) Return {
			*memory = rawMemory{Total: 16 << 30, Free: 12 << 30, Used: 4 << 30}
			return SUCCESS
		},
	}
	device := &Device{lib: newTestLib(tab)}

	info, err := device.MemoryInfo()
	require.NoError(t, err)
	require.Equal(t, MemoryInfo{Total: 16 << 30, Free: 12 << 30, Used: 4 << 30}, info)
}

func TestDeviceEccModeRejectsUnknownState(t *testing.T) {
	tab := &symtab{
		deviceGetEccMode: func(_ deviceHandle, current, pending *int32) Return {
			*current = 1
			*pending = 7
			return SUCCESS
		},
	}
	device := &Device{lib: newTestLib(tab)}

	_, err := device.EccMode()
	var enumErr *UnknownEnumError
	require.ErrorAs(t, err, &enumErr)
	require.Equal(t, int64(7), enumErr.Value)
}

func TestDeviceCurrentThrottleReasons(t *testing.T) {
	raw := uint64(ThrottleReasonSwPowerCap | ThrottleReasonHwThermalSlowdown)
	tab := &symtab{
		deviceGetCurrentClocksThrottleReasons: func(_ deviceHandle, reasons *uint64) Return {
			*reasons = raw
			return SUCCESS
		},
	}
	device := &Device{lib: newTestLib(tab)}

	reasons, err := device.CurrentThrottleReasons()
	require.NoError(t, err)
	require.True(t, reasons.Has(ThrottleReasonSwPowerCap))
	require.True(t, reasons.Has(ThrottleReasonHwThermalSlowdown))
	require.False(t, reasons.Has(ThrottleReasonGpuIdle))
}

func TestDeviceCurrentThrottleReasonsUnknownBits(t *testing.T) {
	tab := &symtab{
		deviceGetCurrentClocksThrottleReasons: func(_ deviceHandle, reasons *uint64) Return {
			*reasons = uint64(ThrottleReasonGpuIdle) | 0x800
			return SUCCESS
		},
	}
	device := &Device{lib: newTestLib(tab)}

	_, err := device.CurrentThrottleReasons()
	var flagsErr *UnknownFlagsError
	require.ErrorAs(t, err, &flagsErr)
	require.Equal(t, uint64(0x800), flagsErr.Bits)
}

func TestComputeRunningProcessesV2(t *testing.T) {
	processes := []rawProcessInfoV2{
		{Pid: 1001, UsedGpuMemory: 1 << 20, GpuInstanceID: InvalidInstanceID, ComputeInstanceID: InvalidInstanceID},
		{Pid: 1002, UsedGpuMemory: 2 << 20, GpuInstanceID: 0, ComputeInstanceID: 1},
	}
	tab := &symtab{
		deviceGetComputeRunningProcessesV2: func(_ deviceHandle, count *uint32, infos *rawProcessInfoV2) Return {
			if infos == nil {
				*count = uint32(len(processes))
				return ERROR_INSUFFICIENT_SIZE
			}
			require.GreaterOrEqual(t, *count, uint32(len(processes)))
			buf := procV2BufFrom(infos, *count)
			copy(buf, processes)
			*count = uint32(len(processes))
			return SUCCESS
		},
	}
	device := &Device{lib: newTestLib(tab)}

	infos, err := device.ComputeRunningProcesses()
	require.NoError(t, err)
	require.Equal(t, []ProcessInfo{
		{Pid: 1001, UsedGpuMemory: 1 << 20, GpuInstanceID: InvalidInstanceID, ComputeInstanceID: InvalidInstanceID},
		{Pid: 1002, UsedGpuMemory: 2 << 20, GpuInstanceID: 0, ComputeInstanceID: 1},
	}, infos)
}

func TestComputeRunningProcessesV1MarksInstancesInvalid(t *testing.T) {
	tab := &symtab{
		deviceGetComputeRunningProcessesV1: func(_ deviceHandle, count *uint32, infos *rawProcessInfoV1) Return {
			if infos == nil {
				*count = 1
				return ERROR_INSUFFICIENT_SIZE
			}
			buf := procV1BufFrom(infos, *count)
			buf[0] = rawProcessInfoV1{Pid: 77, UsedGpuMemory: 512}
			*count = 1
			return SUCCESS
		},
	}
	device := &Device{lib: newTestLib(tab)}

	infos, err := device.ComputeRunningProcesses()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	require.Equal(t, uint32(77), infos[0].Pid)
	require.Equal(t, InvalidInstanceID, infos[0].GpuInstanceID)
	require.Equal(t, InvalidInstanceID, infos[0].ComputeInstanceID)
}

func TestComputeRunningProcessesEmpty(t *testing.T) {
	tab := &symtab{
		deviceGetComputeRunningProcessesV2: func(_ deviceHandle, count *uint32, infos *rawProcessInfoV2) Return {
			*count = 0
			return SUCCESS
		},
	}
	device := &Device{lib: newTestLib(tab)}

	infos, err := device.ComputeRunningProcesses()
	require.NoError(t, err)
	require.Empty(t, infos)
}

func TestSupportedEventTypes(t *testing.T) {
	tab := &symtab{
		deviceGetSupportedEventTypes: func(_ deviceHandle, eventTypes *uint64) Return {
			*eventTypes = uint64(EventTypeXidCriticalError | EventTypeClock)
			return SUCCESS
		},
	}
	device := &Device{lib: newTestLib(tab)}

	types, err := device.SupportedEventTypes()
	require.NoError(t, err)
	require.Equal(t, EventTypeXidCriticalError|EventTypeClock, types)
}
