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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestThrottleReasonsRoundTrip(t *testing.T) {
	testCases := []ThrottleReasons{
		ThrottleReasonsNone,
		ThrottleReasonGpuIdle,
		ThrottleReasonSwPowerCap | ThrottleReasonHwSlowdown,
		ThrottleReasonSyncBoost | ThrottleReasonSwThermalSlowdown | ThrottleReasonDisplayClockSetting,
		ThrottleReasonsAll,
	}

	for _, reasons := range testCases {
		decoded, err := ThrottleReasonsFromRaw(uint64(reasons))
		require.NoError(t, err)
		require.Equal(t, reasons, decoded)
	}
}

func TestThrottleReasonsRejectUndefinedBits(t *testing.T) {
	for _, raw := range []uint64{
		0x200,
		uint64(ThrottleReasonsAll) | 0x400,
		1 << 63,
	} {
		_, err := ThrottleReasonsFromRaw(raw)
		require.Error(t, err, "bits %#x", raw)

		var flagsErr *UnknownFlagsError
		require.ErrorAs(t, err, &flagsErr)
		require.Equal(t, "throttle reasons", flagsErr.Kind)
		require.NotZero(t, flagsErr.Bits)
		// Only the undefined bits are reported.
		require.Zero(t, flagsErr.Bits&uint64(ThrottleReasonsAll))
	}
}

func TestThrottleReasonsSetOperations(t *testing.T) {
	set := ThrottleReasonsNone.
		With(ThrottleReasonSwPowerCap).
		With(ThrottleReasonHwSlowdown)

	require.True(t, set.Has(ThrottleReasonSwPowerCap))
	require.True(t, set.Has(ThrottleReasonSwPowerCap|ThrottleReasonHwSlowdown))
	require.False(t, set.Has(ThrottleReasonGpuIdle))

	set = set.Without(ThrottleReasonSwPowerCap)
	require.False(t, set.Has(ThrottleReasonSwPowerCap))
	require.True(t, set.Has(ThrottleReasonHwSlowdown))
}

func TestThrottleReasonsString(t *testing.T) {
	require.Equal(t, "none", ThrottleReasonsNone.String())
	require.Equal(t, "gpu-idle", ThrottleReasonGpuIdle.String())
	require.Equal(t,
		"sw-power-cap,hw-thermal-slowdown",
		(ThrottleReasonSwPowerCap | ThrottleReasonHwThermalSlowdown).String(),
	)
}

func TestThrottleReasonsJSON(t *testing.T) {
	set := ThrottleReasonSwPowerCap | ThrottleReasonHwPowerBrakeSlowdown

	encoded, err := json.Marshal(set)
	require.NoError(t, err)
	require.JSONEq(t, `["sw-power-cap","hw-power-brake-slowdown"]`, string(encoded))

	var decoded ThrottleReasons
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.Equal(t, set, decoded)

	require.Error(t, json.Unmarshal([]byte(`["no-such-reason"]`), &decoded))
}

func TestEventTypesRoundTrip(t *testing.T) {
	testCases := []EventTypes{
		EventTypesNone,
		EventTypeXidCriticalError,
		EventTypeSingleBitEccError | EventTypeDoubleBitEccError,
		EventTypePState | EventTypeClock | EventTypePowerSourceChange,
		EventTypesAll,
	}

	for _, types := range testCases {
		decoded, err := EventTypesFromRaw(uint64(types))
		require.NoError(t, err)
		require.Equal(t, types, decoded)
	}
}

func TestEventTypesRejectUndefinedBits(t *testing.T) {
	// 0x20 and 0x40 sit inside the range but are not defined event kinds.
	for _, raw := range []uint64{0x20, 0x40, 0x200, 1 << 40} {
		_, err := EventTypesFromRaw(raw)
		require.Error(t, err, "bits %#x", raw)

		var flagsErr *UnknownFlagsError
		require.ErrorAs(t, err, &flagsErr)
		require.Equal(t, "event types", flagsErr.Kind)
		require.Equal(t, raw, flagsErr.Bits)
	}
}

func TestEventTypesSetOperations(t *testing.T) {
	set := EventTypesNone.With(EventTypeXidCriticalError).With(EventTypeClock)
	require.True(t, set.Has(EventTypeXidCriticalError))
	require.False(t, set.Has(EventTypePState))
	require.False(t, set.Without(EventTypeClock).Has(EventTypeClock))
}

func TestEventTypesJSON(t *testing.T) {
	encoded, err := json.Marshal(EventTypeXidCriticalError | EventTypeMigConfigChange)
	require.NoError(t, err)
	require.JSONEq(t, `["xid-critical-error","mig-config-change"]`, string(encoded))

	var decoded EventTypes
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.Equal(t, EventTypeXidCriticalError|EventTypeMigConfigChange, decoded)
}
