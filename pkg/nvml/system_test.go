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

func TestDriverVersion(t *testing.T) {
	tab := &symtab{
		systemGetDriverVersion: func(version *byte, length uint32) Return {
			require.Equal(t, uint32(systemDriverVersionBufferSize), length)
			copy(bufFrom(version, length), "535.104.05\x00")
			return SUCCESS
		},
	}
	lib := newTestLib(tab)

	version, err := lib.DriverVersion()
	require.NoError(t, err)
	require.Equal(t, "535.104.05", version)
}

func TestNVMLVersion(t *testing.T) {
	tab := &symtab{
		systemGetNVMLVersion: func(version *byte, length uint32) Return {
			require.Equal(t, uint32(systemNVMLVersionBufferSize), length)
			copy(bufFrom(version, length), "12.535.104.05\x00")
			return SUCCESS
		},
	}
	lib := newTestLib(tab)

	version, err := lib.NVMLVersion()
	require.NoError(t, err)
	require.Equal(t, "12.535.104.05", version)
}

func TestCudaDriverVersion(t *testing.T) {
	tab := &symtab{
		systemGetCudaDriverVersion: func(version *int32) Return {
			*version = 12020
			return SUCCESS
		},
	}
	lib := newTestLib(tab)

	version, err := lib.CudaDriverVersion()
	require.NoError(t, err)
	require.Equal(t, 12, version.Major())
	require.Equal(t, 2, version.Minor())
	require.Equal(t, "12.2", version.String())
}

func TestCudaDriverVersionMissingSymbol(t *testing.T) {
	lib := newTestLib(&symtab{})

	_, err := lib.CudaDriverVersion()
	var symErr *SymbolError
	require.ErrorAs(t, err, &symErr)
	require.Equal(t, "nvmlSystemGetCudaDriverVersion", symErr.Symbol)
}

func TestDeviceCount(t *testing.T) {
	tab := &symtab{
		deviceGetCount: func(count *uint32) Return {
			*count = 4
			return SUCCESS
		},
	}
	lib := newTestLib(tab)

	count, err := lib.DeviceCount()
	require.NoError(t, err)
	require.Equal(t, uint32(4), count)
}

func TestDevices(t *testing.T) {
	tab := &symtab{
		deviceGetCount: func(count *uint32) Return {
			*count = 2
			return SUCCESS
		},
		deviceGetHandleByIndex: func(index uint32, device *deviceHandle) Return {
			if index >= 2 {
				return ERROR_INVALID_ARGUMENT
			}
			return SUCCESS
		},
	}
	lib := newTestLib(tab)

	devices, err := lib.Devices()
	require.NoError(t, err)
	require.Len(t, devices, 2)
	for _, device := range devices {
		require.Same(t, lib, device.lib)
	}
}

func TestDeviceByIndexOutOfRange(t *testing.T) {
	tab := &symtab{
		deviceGetHandleByIndex: func(index uint32, device *deviceHandle) Return {
			return ERROR_INVALID_ARGUMENT
		},
	}
	lib := newTestLib(tab)

	_, err := lib.DeviceByIndex(42)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDeviceByUUIDNotFound(t *testing.T) {
	tab := &symtab{
		deviceGetHandleByUUID: func(uuid string, device *deviceHandle) Return {
			require.Equal(t, "GPU-deadbeef", uuid)
			return ERROR_NOT_FOUND
		},
	}
	lib := newTestLib(tab)

	_, err := lib.DeviceByUUID("GPU-deadbeef")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestProcessName(t *testing.T) {
	tab := &symtab{
		systemGetProcessName: func(pid uint32, name *byte, length uint32) Return {
			require.Equal(t, uint32(1234), pid)
			copy(bufFrom(name, length), "/usr/bin/python3\x00")
			return SUCCESS
		},
	}
	lib := newTestLib(tab)

	name, err := lib.ProcessName(1234)
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/python3", name)
}
