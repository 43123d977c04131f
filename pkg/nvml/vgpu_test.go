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

func TestVgpuSupportedTypes(t *testing.T) {
	ids := []vgpuTypeID{11, 12, 13}
	tab := &symtab{
		deviceGetSupportedVgpus: func(_ deviceHandle, count *uint32, typeIDs *vgpuTypeID) Return {
			if typeIDs == nil {
				*count = uint32(len(ids))
				return ERROR_INSUFFICIENT_SIZE
			}
			buf := vgpuIDBufFrom(typeIDs, *count)
			copy(buf, ids)
			*count = uint32(len(ids))
			return SUCCESS
		},
	}
	device := &Device{lib: newTestLib(tab)}

	types, err := device.VgpuSupportedTypes()
	require.NoError(t, err)
	require.Len(t, types, 3)
	require.Equal(t, uint32(11), types[0].ID())
	require.Equal(t, uint32(13), types[2].ID())
}

func TestVgpuTypeName(t *testing.T) {
	tab := &symtab{
		vgpuTypeGetName: func(id vgpuTypeID, name *byte, size *uint32) Return {
			require.Equal(t, vgpuTypeID(11), id)
			copy(bufFrom(name, *size), "GRID M60-2Q\x00")
			return SUCCESS
		},
	}
	vgpuType := &VgpuType{lib: newTestLib(tab), id: 11}

	name, err := vgpuType.Name()
	require.NoError(t, err)
	require.Equal(t, "GRID M60-2Q", name)
}

func TestVgpuTypeMissingSymbols(t *testing.T) {
	vgpuType := &VgpuType{lib: newTestLib(&symtab{}), id: 11}

	var symErr *SymbolError
	_, err := vgpuType.Name()
	require.ErrorAs(t, err, &symErr)
	require.Equal(t, "nvmlVgpuTypeGetName", symErr.Symbol)

	_, err = vgpuType.FramebufferSize()
	require.ErrorAs(t, err, &symErr)
	require.Equal(t, "nvmlVgpuTypeGetFramebufferSize", symErr.Symbol)

	_, _, err = vgpuType.Resolution(0)
	require.ErrorAs(t, err, &symErr)
	require.Equal(t, "nvmlVgpuTypeGetResolution", symErr.Symbol)
}

func TestVgpuTypeCapability(t *testing.T) {
	tab := &symtab{
		vgpuTypeGetCapabilities: func(id vgpuTypeID, capability int32, result *uint32) Return {
			if VgpuCapability(capability) == VgpuCapabilityNvlinkP2P {
				*result = 1
			}
			return SUCCESS
		},
	}
	vgpuType := &VgpuType{lib: newTestLib(tab), id: 11}

	nvlink, err := vgpuType.Capability(VgpuCapabilityNvlinkP2P)
	require.NoError(t, err)
	require.True(t, nvlink)

	gpudirect, err := vgpuType.Capability(VgpuCapabilityGPUDirect)
	require.NoError(t, err)
	require.False(t, gpudirect)
}

func TestVgpuTypeMaxInstances(t *testing.T) {
	tab := &symtab{
		vgpuTypeGetMaxInstances: func(_ deviceHandle, id vgpuTypeID, count *uint32) Return {
			*count = 8
			return SUCCESS
		},
	}
	vgpuType := &VgpuType{lib: newTestLib(tab), id: 11}

	count, err := vgpuType.MaxInstances()
	require.NoError(t, err)
	require.Equal(t, uint32(8), count)
}

func TestVgpuTypeResolution(t *testing.T) {
	tab := &symtab{
		vgpuTypeGetResolution: func(id vgpuTypeID, displayIndex uint32, xdim, ydim *uint32) Return {
			*xdim = 2560
			*ydim = 1600
			return SUCCESS
		},
	}
	vgpuType := &VgpuType{lib: newTestLib(tab), id: 11}

	x, y, err := vgpuType.Resolution(0)
	require.NoError(t, err)
	require.Equal(t, uint32(2560), x)
	require.Equal(t, uint32(1600), y)
}
