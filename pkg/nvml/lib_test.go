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
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitLibraryNotFound(t *testing.T) {
	openErr := errors.New("libnvidia-ml.so.1: cannot open shared object file")
	restore := newDL
	newDL = func(path string, flags int) dynamicLibrary {
		return &fakeDynamicLibrary{openErr: openErr}
	}
	defer func() { newDL = restore }()

	lib := New()
	err := lib.Init()
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.Equal(t, defaultLibraryName, loadErr.Path)
	require.ErrorIs(t, err, openErr)

	// No partial state: the handle behaves as never initialized.
	_, err = lib.DeviceCount()
	require.ErrorIs(t, err, ErrClosed)
}

func TestInitMissingRequiredSymbol(t *testing.T) {
	symbols := requiredSymbolSet()
	delete(symbols, "nvmlDeviceGetTemperature")

	fake := &fakeDynamicLibrary{symbols: symbols}
	restore := newDL
	newDL = func(path string, flags int) dynamicLibrary {
		return fake
	}
	defer func() { newDL = restore }()

	lib := New()
	err := lib.Init()
	require.Error(t, err)

	var symErr *SymbolError
	require.ErrorAs(t, err, &symErr)
	require.Equal(t, "nvmlDeviceGetTemperature", symErr.Symbol)

	// The failed load is unwound and nothing is observable afterwards.
	require.True(t, fake.closed)
	_, err = lib.DeviceCount()
	require.ErrorIs(t, err, ErrClosed)
}

func TestInitWithFlagsRequiresSymbol(t *testing.T) {
	restore := newDL
	newDL = func(path string, flags int) dynamicLibrary {
		return &fakeDynamicLibrary{symbols: requiredSymbolSet()}
	}
	defer func() { newDL = restore }()

	lib := New()
	err := lib.InitWithFlags(InitFlagNoAttach)
	require.Error(t, err)

	var symErr *SymbolError
	require.ErrorAs(t, err, &symErr)
	require.Equal(t, "nvmlInitWithFlags", symErr.Symbol)
}

func TestResolveSymtabVersionedOverrides(t *testing.T) {
	symbols := requiredSymbolSet()
	symbols["nvmlInit_v2"] = true
	symbols["nvmlDeviceGetCount_v2"] = true
	symbols["nvmlDeviceGetPciInfo_v2"] = true
	symbols["nvmlDeviceGetPciInfo_v3"] = true
	symbols["nvmlEventSetWait_v2"] = true

	tab, err := resolveSymtab(&fakeDynamicLibrary{symbols: symbols})
	require.NoError(t, err)

	fnPointer := func(fn interface{}) uintptr {
		return reflect.ValueOf(fn).Pointer()
	}
	require.Equal(t, fnPointer(nvmlInit_v2), fnPointer(tab.init))
	require.Equal(t, fnPointer(nvmlDeviceGetCount_v2), fnPointer(tab.deviceGetCount))
	require.Equal(t, fnPointer(nvmlDeviceGetPciInfo_v3), fnPointer(tab.deviceGetPciInfo))
	require.Equal(t, fnPointer(nvmlEventSetWait_v2), fnPointer(tab.eventSetWait))
}

func TestResolveSymtabOptionalSymbols(t *testing.T) {
	tab, err := resolveSymtab(&fakeDynamicLibrary{symbols: requiredSymbolSet()})
	require.NoError(t, err)

	// A driver exporting only the base set leaves the gated slots empty.
	require.Nil(t, tab.initWithFlags)
	require.Nil(t, tab.systemGetCudaDriverVersion)
	require.Nil(t, tab.deviceGetBrand)
	require.Nil(t, tab.deviceGetEncoderStats)
	require.Nil(t, tab.deviceGetSupportedVgpus)
	require.Nil(t, tab.vgpuTypeGetName)
	require.Nil(t, tab.deviceGetComputeRunningProcessesV2)

	// The base set itself is fully wired.
	require.NotNil(t, tab.init)
	require.NotNil(t, tab.shutdown)
	require.NotNil(t, tab.deviceGetTemperature)
	require.NotNil(t, tab.deviceGetComputeRunningProcessesV1)
	require.NotNil(t, tab.unitGetFanSpeedInfo)
	require.NotNil(t, tab.eventSetWait)
}

func TestShutdownInvalidatesHandles(t *testing.T) {
	tab := testShutdownTab()
	tab.deviceGetTemperature = func(deviceHandle, int32, *uint32) Return {
		return SUCCESS
	}
	lib := newTestLib(tab)
	device := &Device{lib: lib}

	_, err := device.Temperature(TemperatureSensorGPU)
	require.NoError(t, err)

	require.NoError(t, lib.Shutdown())

	_, err = device.Temperature(TemperatureSensorGPU)
	require.ErrorIs(t, err, ErrClosed)
}

func TestShutdownTwice(t *testing.T) {
	lib := newTestLib(testShutdownTab())
	require.NoError(t, lib.Shutdown())
	require.ErrorIs(t, lib.Shutdown(), ErrClosed)
}

func TestShutdownNeverInitialized(t *testing.T) {
	require.ErrorIs(t, New().Shutdown(), ErrClosed)
}

func TestShutdownPropagatesDriverError(t *testing.T) {
	tab := &symtab{
		shutdown: func() Return { return ERROR_UNINITIALIZED },
	}
	lib := newTestLib(tab)

	err := lib.Shutdown()
	require.ErrorIs(t, err, ErrUninitialized)

	// The handle is closed regardless.
	_, err = lib.DeviceCount()
	require.ErrorIs(t, err, ErrClosed)
}
