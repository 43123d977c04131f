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

import "time"

// infiniteTimeout is the native sentinel for "block until an event
// arrives".
const infiniteTimeout uint32 = 0xFFFFFFFF

// EventSet collects events from the devices registered on it. Create one
// with Lib.NewEventSet, subscribe devices with Device.RegisterEvents, then
// drain it with Wait. Free it when done; the owning Lib's Shutdown also
// invalidates it.
type EventSet struct {
	lib    *Lib
	handle eventSetHandle
}

// EventData is one delivered event. Data carries the event-specific
// payload: for XID events it is the XID error code, zero for the rest. The
// instance IDs are InvalidInstanceID unless the event came from a MIG
// instance.
type EventData struct {
	Device            *Device
	Types             EventTypes
	Data              uint64
	GpuInstanceID     uint32
	ComputeInstanceID uint32
}

// NewEventSet creates an empty event set.
func (l *Lib) NewEventSet() (*EventSet, error) {
	t, err := l.symbols()
	if err != nil {
		return nil, err
	}
	var handle eventSetHandle
	if ret := t.eventSetCreate(&handle); ret != SUCCESS {
		return nil, ret.toError()
	}
	return &EventSet{lib: l, handle: handle}, nil
}

// Wait blocks until an event registered on the set arrives, then returns
// it. A zero timeout polls without blocking, a negative timeout waits
// indefinitely, and any other duration is honored at millisecond
// granularity. Expiry surfaces as ErrTimeout.
func (s *EventSet) Wait(timeout time.Duration) (EventData, error) {
	t, err := s.lib.symbols()
	if err != nil {
		return EventData{}, err
	}

	var timeoutMS uint32
	if timeout < 0 {
		timeoutMS = infiniteTimeout
	} else if ms := timeout.Milliseconds(); ms >= int64(infiniteTimeout) {
		timeoutMS = infiniteTimeout - 1
	} else {
		timeoutMS = uint32(ms)
	}

	// A v1 wait leaves the instance fields untouched.
	raw := rawEventData{
		GpuInstanceID:     InvalidInstanceID,
		ComputeInstanceID: InvalidInstanceID,
	}
	if ret := t.eventSetWait(s.handle, &raw, timeoutMS); ret != SUCCESS {
		return EventData{}, ret.toError()
	}

	types, err := EventTypesFromRaw(raw.EventType)
	if err != nil {
		return EventData{}, err
	}
	return EventData{
		Device:            &Device{lib: s.lib, handle: raw.Device},
		Types:             types,
		Data:              raw.EventData,
		GpuInstanceID:     raw.GpuInstanceID,
		ComputeInstanceID: raw.ComputeInstanceID,
	}, nil
}

// Free releases the native event set. The set must not be used afterwards.
func (s *EventSet) Free() error {
	t, err := s.lib.symbols()
	if err != nil {
		return err
	}
	return t.eventSetFree(s.handle).toError()
}
