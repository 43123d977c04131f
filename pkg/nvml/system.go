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

import "fmt"

// CudaDriverVersion is the CUDA version supported by the installed driver,
// encoded the way the driver reports it: major*1000 + minor*10.
type CudaDriverVersion int32

func (v CudaDriverVersion) Major() int {
	return int(v) / 1000
}

func (v CudaDriverVersion) Minor() int {
	return (int(v) % 1000) / 10
}

func (v CudaDriverVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// DriverVersion returns the installed display driver version.
func (l *Lib) DriverVersion() (string, error) {
	t, err := l.symbols()
	if err != nil {
		return "", err
	}
	buf := make([]byte, systemDriverVersionBufferSize)
	if ret := t.systemGetDriverVersion(&buf[0], uint32(len(buf))); ret != SUCCESS {
		return "", ret.toError()
	}
	return cstrToString(buf)
}

// NVMLVersion returns the version of the loaded management library.
func (l *Lib) NVMLVersion() (string, error) {
	t, err := l.symbols()
	if err != nil {
		return "", err
	}
	buf := make([]byte, systemNVMLVersionBufferSize)
	if ret := t.systemGetNVMLVersion(&buf[0], uint32(len(buf))); ret != SUCCESS {
		return "", ret.toError()
	}
	return cstrToString(buf)
}

// CudaDriverVersion returns the CUDA version the installed driver supports.
func (l *Lib) CudaDriverVersion() (CudaDriverVersion, error) {
	t, err := l.symbols()
	if err != nil {
		return 0, err
	}
	if t.systemGetCudaDriverVersion == nil {
		return 0, &SymbolError{Symbol: "nvmlSystemGetCudaDriverVersion"}
	}
	var version int32
	if ret := t.systemGetCudaDriverVersion(&version); ret != SUCCESS {
		return 0, ret.toError()
	}
	return CudaDriverVersion(version), nil
}

// ProcessName returns the name of the process with the given PID as the
// driver sees it.
func (l *Lib) ProcessName(pid uint32) (string, error) {
	t, err := l.symbols()
	if err != nil {
		return "", err
	}
	buf := make([]byte, systemProcessNameBufferSize)
	if ret := t.systemGetProcessName(pid, &buf[0], uint32(len(buf))); ret != SUCCESS {
		return "", ret.toError()
	}
	return cstrToString(buf)
}

// DeviceCount returns the number of devices the driver manages.
func (l *Lib) DeviceCount() (uint32, error) {
	t, err := l.symbols()
	if err != nil {
		return 0, err
	}
	var count uint32
	if ret := t.deviceGetCount(&count); ret != SUCCESS {
		return 0, ret.toError()
	}
	return count, nil
}

// DeviceByIndex returns the device at the given zero-based enumeration
// index. Indexes are not stable across reboots or hotplug.
func (l *Lib) DeviceByIndex(index uint32) (*Device, error) {
	t, err := l.symbols()
	if err != nil {
		return nil, err
	}
	var handle deviceHandle
	if ret := t.deviceGetHandleByIndex(index, &handle); ret != SUCCESS {
		return nil, ret.toError()
	}
	return &Device{lib: l, handle: handle}, nil
}

// DeviceByUUID returns the device with the given UUID.
func (l *Lib) DeviceByUUID(uuid string) (*Device, error) {
	t, err := l.symbols()
	if err != nil {
		return nil, err
	}
	var handle deviceHandle
	if ret := t.deviceGetHandleByUUID(uuid, &handle); ret != SUCCESS {
		return nil, ret.toError()
	}
	return &Device{lib: l, handle: handle}, nil
}

// DeviceBySerial returns the device with the given board serial number.
func (l *Lib) DeviceBySerial(serial string) (*Device, error) {
	t, err := l.symbols()
	if err != nil {
		return nil, err
	}
	var handle deviceHandle
	if ret := t.deviceGetHandleBySerial(serial, &handle); ret != SUCCESS {
		return nil, ret.toError()
	}
	return &Device{lib: l, handle: handle}, nil
}

// DeviceByPciBusID returns the device at the given PCI bus ID, for example
// "0000:01:00.0".
func (l *Lib) DeviceByPciBusID(busID string) (*Device, error) {
	t, err := l.symbols()
	if err != nil {
		return nil, err
	}
	var handle deviceHandle
	if ret := t.deviceGetHandleByPciBusID(busID, &handle); ret != SUCCESS {
		return nil, ret.toError()
	}
	return &Device{lib: l, handle: handle}, nil
}

// Devices returns every device the driver manages, in enumeration order.
func (l *Lib) Devices() ([]*Device, error) {
	count, err := l.DeviceCount()
	if err != nil {
		return nil, err
	}
	devices := make([]*Device, 0, count)
	for i := uint32(0); i < count; i++ {
		device, err := l.DeviceByIndex(i)
		if err != nil {
			return nil, fmt.Errorf("device %d: %w", i, err)
		}
		devices = append(devices, device)
	}
	return devices, nil
}

// UnitCount returns the number of S-class units attached to the system.
func (l *Lib) UnitCount() (uint32, error) {
	t, err := l.symbols()
	if err != nil {
		return 0, err
	}
	var count uint32
	if ret := t.unitGetCount(&count); ret != SUCCESS {
		return 0, ret.toError()
	}
	return count, nil
}

// UnitByIndex returns the unit at the given zero-based enumeration index.
func (l *Lib) UnitByIndex(index uint32) (*Unit, error) {
	t, err := l.symbols()
	if err != nil {
		return nil, err
	}
	var handle unitHandle
	if ret := t.unitGetHandleByIndex(index, &handle); ret != SUCCESS {
		return nil, ret.toError()
	}
	return &Unit{lib: l, handle: handle}, nil
}
