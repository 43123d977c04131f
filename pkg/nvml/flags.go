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
	"encoding/json"
	"fmt"
	"strings"
)

// ThrottleReasons is the set of reasons clocks are currently held below
// their maximum. The bit layout matches the native
// nvmlClocksThrottleReason constants exactly, so translation in either
// direction is lossless over the defined bits.
type ThrottleReasons uint64

const (
	ThrottleReasonGpuIdle                   ThrottleReasons = 0x0000000000000001
	ThrottleReasonApplicationsClocksSetting ThrottleReasons = 0x0000000000000002
	ThrottleReasonSwPowerCap                ThrottleReasons = 0x0000000000000004
	ThrottleReasonHwSlowdown                ThrottleReasons = 0x0000000000000008
	ThrottleReasonSyncBoost                 ThrottleReasons = 0x0000000000000010
	ThrottleReasonSwThermalSlowdown         ThrottleReasons = 0x0000000000000020
	ThrottleReasonHwThermalSlowdown         ThrottleReasons = 0x0000000000000040
	ThrottleReasonHwPowerBrakeSlowdown      ThrottleReasons = 0x0000000000000080
	ThrottleReasonDisplayClockSetting       ThrottleReasons = 0x0000000000000100

	// ThrottleReasonsNone is the empty set: clocks run as high as they can.
	ThrottleReasonsNone ThrottleReasons = 0

	// ThrottleReasonsAll is every defined reason.
	ThrottleReasonsAll = ThrottleReasonGpuIdle |
		ThrottleReasonApplicationsClocksSetting |
		ThrottleReasonSwPowerCap |
		ThrottleReasonHwSlowdown |
		ThrottleReasonSyncBoost |
		ThrottleReasonSwThermalSlowdown |
		ThrottleReasonHwThermalSlowdown |
		ThrottleReasonHwPowerBrakeSlowdown |
		ThrottleReasonDisplayClockSetting
)

var throttleReasonNames = []struct {
	bit  ThrottleReasons
	name string
}{
	{ThrottleReasonGpuIdle, "gpu-idle"},
	{ThrottleReasonApplicationsClocksSetting, "applications-clocks-setting"},
	{ThrottleReasonSwPowerCap, "sw-power-cap"},
	{ThrottleReasonHwSlowdown, "hw-slowdown"},
	{ThrottleReasonSyncBoost, "sync-boost"},
	{ThrottleReasonSwThermalSlowdown, "sw-thermal-slowdown"},
	{ThrottleReasonHwThermalSlowdown, "hw-thermal-slowdown"},
	{ThrottleReasonHwPowerBrakeSlowdown, "hw-power-brake-slowdown"},
	{ThrottleReasonDisplayClockSetting, "display-clock-setting"},
}

// ThrottleReasonsFromRaw validates a native bitmask. Bits outside the
// defined set are rejected with an UnknownFlagsError rather than dropped.
func ThrottleReasonsFromRaw(value uint64) (ThrottleReasons, error) {
	if undefined := value &^ uint64(ThrottleReasonsAll); undefined != 0 {
		return 0, &UnknownFlagsError{Kind: "throttle reasons", Bits: undefined}
	}
	return ThrottleReasons(value), nil
}

// Has reports whether every reason in other is set.
func (r ThrottleReasons) Has(other ThrottleReasons) bool {
	return r&other == other
}

// With returns the union of r and other.
func (r ThrottleReasons) With(other ThrottleReasons) ThrottleReasons {
	return r | other
}

// Without returns r with every reason in other cleared.
func (r ThrottleReasons) Without(other ThrottleReasons) ThrottleReasons {
	return r &^ other
}

func (r ThrottleReasons) names() []string {
	var names []string
	for _, entry := range throttleReasonNames {
		if r.Has(entry.bit) {
			names = append(names, entry.name)
		}
	}
	return names
}

func (r ThrottleReasons) String() string {
	if r == ThrottleReasonsNone {
		return "none"
	}
	return strings.Join(r.names(), ",")
}

func (r ThrottleReasons) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.names())
}

func (r *ThrottleReasons) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	set := ThrottleReasonsNone
	for _, name := range names {
		matched := false
		for _, entry := range throttleReasonNames {
			if entry.name == name {
				set = set.With(entry.bit)
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("unknown throttle reason %q", name)
		}
	}
	*r = set
	return nil
}

// EventTypes is the set of event kinds an event set is registered for or a
// delivered event belongs to. The bit layout matches the native
// nvmlEventType constants exactly.
type EventTypes uint64

const (
	EventTypeSingleBitEccError EventTypes = 0x0000000000000001
	EventTypeDoubleBitEccError EventTypes = 0x0000000000000002
	EventTypePState            EventTypes = 0x0000000000000004
	EventTypeXidCriticalError  EventTypes = 0x0000000000000008
	EventTypeClock             EventTypes = 0x0000000000000010
	EventTypePowerSourceChange EventTypes = 0x0000000000000080
	EventTypeMigConfigChange   EventTypes = 0x0000000000000100

	// EventTypesNone is the empty set.
	EventTypesNone EventTypes = 0

	// EventTypesAll is every defined event kind.
	EventTypesAll = EventTypeSingleBitEccError |
		EventTypeDoubleBitEccError |
		EventTypePState |
		EventTypeXidCriticalError |
		EventTypeClock |
		EventTypePowerSourceChange |
		EventTypeMigConfigChange
)

var eventTypeNames = []struct {
	bit  EventTypes
	name string
}{
	{EventTypeSingleBitEccError, "single-bit-ecc-error"},
	{EventTypeDoubleBitEccError, "double-bit-ecc-error"},
	{EventTypePState, "pstate"},
	{EventTypeXidCriticalError, "xid-critical-error"},
	{EventTypeClock, "clock"},
	{EventTypePowerSourceChange, "power-source-change"},
	{EventTypeMigConfigChange, "mig-config-change"},
}

// EventTypesFromRaw validates a native bitmask. Bits outside the defined
// set are rejected with an UnknownFlagsError rather than dropped.
func EventTypesFromRaw(value uint64) (EventTypes, error) {
	if undefined := value &^ uint64(EventTypesAll); undefined != 0 {
		return 0, &UnknownFlagsError{Kind: "event types", Bits: undefined}
	}
	return EventTypes(value), nil
}

// Has reports whether every kind in other is set.
func (t EventTypes) Has(other EventTypes) bool {
	return t&other == other
}

// With returns the union of t and other.
func (t EventTypes) With(other EventTypes) EventTypes {
	return t | other
}

// Without returns t with every kind in other cleared.
func (t EventTypes) Without(other EventTypes) EventTypes {
	return t &^ other
}

func (t EventTypes) names() []string {
	var names []string
	for _, entry := range eventTypeNames {
		if t.Has(entry.bit) {
			names = append(names, entry.name)
		}
	}
	return names
}

func (t EventTypes) String() string {
	if t == EventTypesNone {
		return "none"
	}
	return strings.Join(t.names(), ",")
}

func (t EventTypes) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.names())
}

func (t *EventTypes) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	set := EventTypesNone
	for _, name := range names {
		matched := false
		for _, entry := range eventTypeNames {
			if entry.name == name {
				set = set.With(entry.bit)
				matched = true
				break
			}
		}
		if !matched {
			return fmt.Errorf("unknown event type %q", name)
		}
	}
	*t = set
	return nil
}
