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
	"time"

	"github.com/stretchr/testify/require"
)

func TestEventSetWaitTimeoutMapping(t *testing.T) {
	testCases := []struct {
		description string
		timeout     time.Duration
		expectedMS  uint32
	}{
		{
			description: "zero duration polls without blocking",
			timeout:     0,
			expectedMS:  0,
		},
		{
			description: "negative duration waits indefinitely",
			timeout:     -1,
			expectedMS:  infiniteTimeout,
		},
		{
			description: "positive duration converts to milliseconds",
			timeout:     2 * time.Second,
			expectedMS:  2000,
		},
		{
			description: "sub-millisecond duration truncates to a poll",
			timeout:     200 * time.Microsecond,
			expectedMS:  0,
		},
		{
			description: "huge duration clamps below the infinite sentinel",
			timeout:     100 * 365 * 24 * time.Hour,
			expectedMS:  infiniteTimeout - 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			var gotMS uint32
			tab := &symtab{
				eventSetWait: func(_ eventSetHandle, data *rawEventData, timeoutMS uint32) Return {
					gotMS = timeoutMS
					data.EventType = uint64(EventTypeClock)
					return SUCCESS
				},
			}
			set := &EventSet{lib: newTestLib(tab)}

			_, err := set.Wait(tc.timeout)
			require.NoError(t, err)
			require.Equal(t, tc.expectedMS, gotMS)
		})
	}
}

func TestEventSetWaitTimeoutExpiry(t *testing.T) {
	tab := &symtab{
		eventSetWait: func(_ eventSetHandle, _ *rawEventData, _ uint32) Return {
			return ERROR_TIMEOUT
		},
	}
	set := &EventSet{lib: newTestLib(tab)}

	_, err := set.Wait(0)
	require.ErrorIs(t, err, ErrTimeout)
}

func TestEventSetWaitDeliversEvent(t *testing.T) {
	tab := &symtab{
		eventSetWait: func(_ eventSetHandle, data *rawEventData, _ uint32) Return {
			data.EventType = uint64(EventTypeXidCriticalError)
			data.EventData = 79
			return SUCCESS
		},
	}
	lib := newTestLib(tab)
	set := &EventSet{lib: lib}

	event, err := set.Wait(time.Second)
	require.NoError(t, err)
	require.Equal(t, EventTypeXidCriticalError, event.Types)
	require.Equal(t, uint64(79), event.Data)
	require.NotNil(t, event.Device)
	require.Same(t, lib, event.Device.lib)

	// A v1 wait never fills the MIG fields; they must read as invalid.
	require.Equal(t, InvalidInstanceID, event.GpuInstanceID)
	require.Equal(t, InvalidInstanceID, event.ComputeInstanceID)
}

func TestEventSetWaitRejectsUnknownEventBits(t *testing.T) {
	tab := &symtab{
		eventSetWait: func(_ eventSetHandle, data *rawEventData, _ uint32) Return {
			data.EventType = 0x4000
			return SUCCESS
		},
	}
	set := &EventSet{lib: newTestLib(tab)}

	_, err := set.Wait(0)
	var flagsErr *UnknownFlagsError
	require.ErrorAs(t, err, &flagsErr)
	require.Equal(t, uint64(0x4000), flagsErr.Bits)
}

func TestEventSetAfterShutdown(t *testing.T) {
	lib := newTestLib(testShutdownTab())
	set := &EventSet{lib: lib}

	require.NoError(t, lib.Shutdown())

	_, err := set.Wait(0)
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, set.Free(), ErrClosed)
}

func TestRegisterEvents(t *testing.T) {
	var gotTypes uint64
	tab := &symtab{
		deviceRegisterEvents: func(_ deviceHandle, eventTypes uint64, _ eventSetHandle) Return {
			gotTypes = eventTypes
			return SUCCESS
		},
	}
	lib := newTestLib(tab)
	device := &Device{lib: lib}
	set := &EventSet{lib: lib}

	err := device.RegisterEvents(EventTypeXidCriticalError|EventTypeDoubleBitEccError, set)
	require.NoError(t, err)
	require.Equal(t, uint64(EventTypeXidCriticalError|EventTypeDoubleBitEccError), gotTypes)
}
