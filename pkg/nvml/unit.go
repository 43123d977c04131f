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

// Unit is a typed handle to one S-class unit. Like Device it is owned by
// the Lib it came from and fails with ErrClosed after Shutdown.
type Unit struct {
	lib    *Lib
	handle unitHandle
}

// Info returns the static description of the unit.
func (u *Unit) Info() (UnitInfo, error) {
	t, err := u.lib.symbols()
	if err != nil {
		return UnitInfo{}, err
	}
	var raw rawUnitInfo
	if ret := t.unitGetUnitInfo(u.handle, &raw); ret != SUCCESS {
		return UnitInfo{}, ret.toError()
	}
	name, err := cstrToString(raw.Name[:])
	if err != nil {
		return UnitInfo{}, err
	}
	id, err := cstrToString(raw.ID[:])
	if err != nil {
		return UnitInfo{}, err
	}
	serial, err := cstrToString(raw.Serial[:])
	if err != nil {
		return UnitInfo{}, err
	}
	firmware, err := cstrToString(raw.FirmwareVersion[:])
	if err != nil {
		return UnitInfo{}, err
	}
	return UnitInfo{
		Name:            name,
		ID:              id,
		Serial:          serial,
		FirmwareVersion: firmware,
	}, nil
}

// LedState returns the unit LED color and the reason it is lit.
func (u *Unit) LedState() (LedState, error) {
	t, err := u.lib.symbols()
	if err != nil {
		return LedState{}, err
	}
	var raw rawLedState
	if ret := t.unitGetLedState(u.handle, &raw); ret != SUCCESS {
		return LedState{}, ret.toError()
	}
	color, err := LedColorFromRaw(raw.Color)
	if err != nil {
		return LedState{}, err
	}
	cause, err := cstrToString(raw.Cause[:])
	if err != nil {
		return LedState{}, err
	}
	return LedState{Color: color, Cause: cause}, nil
}

// SetLedState sets the unit LED color. Requires root.
func (u *Unit) SetLedState(color LedColor) error {
	t, err := u.lib.symbols()
	if err != nil {
		return err
	}
	return t.unitSetLedState(u.handle, int32(color)).toError()
}

// PsuInfo returns the state of the unit power supply.
func (u *Unit) PsuInfo() (PsuInfo, error) {
	t, err := u.lib.symbols()
	if err != nil {
		return PsuInfo{}, err
	}
	var raw rawPSUInfo
	if ret := t.unitGetPsuInfo(u.handle, &raw); ret != SUCCESS {
		return PsuInfo{}, ret.toError()
	}
	state, err := cstrToString(raw.State[:])
	if err != nil {
		return PsuInfo{}, err
	}
	return PsuInfo{
		State:   state,
		Current: raw.Current,
		Voltage: raw.Voltage,
		Power:   raw.Power,
	}, nil
}

// UnitTemperatureSensor selects which unit sensor a temperature query
// reads.
type UnitTemperatureSensor uint32

const (
	UnitTemperatureIntake  UnitTemperatureSensor = 0
	UnitTemperatureExhaust UnitTemperatureSensor = 1
	UnitTemperatureBoard   UnitTemperatureSensor = 2
)

// Temperature returns the reading of the given unit sensor in degrees
// Celsius.
func (u *Unit) Temperature(sensor UnitTemperatureSensor) (uint32, error) {
	t, err := u.lib.symbols()
	if err != nil {
		return 0, err
	}
	var temp uint32
	if ret := t.unitGetTemperature(u.handle, uint32(sensor), &temp); ret != SUCCESS {
		return 0, ret.toError()
	}
	return temp, nil
}

// FanSpeeds returns the speed and health of every fan in the unit.
func (u *Unit) FanSpeeds() ([]UnitFanInfo, error) {
	t, err := u.lib.symbols()
	if err != nil {
		return nil, err
	}
	var raw rawUnitFanSpeeds
	if ret := t.unitGetFanSpeedInfo(u.handle, &raw); ret != SUCCESS {
		return nil, ret.toError()
	}
	count := raw.Count
	if count > unitFanSpeedsMaxFans {
		count = unitFanSpeedsMaxFans
	}
	fans := make([]UnitFanInfo, 0, count)
	for _, rawFan := range raw.Fans[:count] {
		state, err := FanStateFromRaw(rawFan.State)
		if err != nil {
			return nil, err
		}
		fans = append(fans, UnitFanInfo{Speed: rawFan.Speed, State: state})
	}
	return fans, nil
}

// Devices returns the GPUs attached to the unit.
func (u *Unit) Devices() ([]*Device, error) {
	t, err := u.lib.symbols()
	if err != nil {
		return nil, err
	}
	var count uint32
	switch ret := t.unitGetDevices(u.handle, &count, nil); ret {
	case SUCCESS:
		if count == 0 {
			return []*Device{}, nil
		}
	case ERROR_INSUFFICIENT_SIZE:
	default:
		return nil, ret.toError()
	}

	// The attachment list can change between the two calls, so an
	// insufficient-size response retries with the updated count plus
	// headroom.
	for {
		handles := make([]deviceHandle, count+8)
		n := uint32(len(handles))
		switch ret := t.unitGetDevices(u.handle, &n, &handles[0]); ret {
		case SUCCESS:
			devices := make([]*Device, 0, n)
			for _, handle := range handles[:n] {
				devices = append(devices, &Device{lib: u.lib, handle: handle})
			}
			return devices, nil
		case ERROR_INSUFFICIENT_SIZE:
			count = n
		default:
			return nil, ret.toError()
		}
	}
}

func (u *Unit) String() string {
	return fmt.Sprintf("Unit(%p)", u.handle)
}
