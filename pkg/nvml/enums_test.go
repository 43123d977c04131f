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

func TestComputeModeBijection(t *testing.T) {
	for value, name := range computeModeNames {
		decoded, err := ComputeModeFromRaw(int32(value))
		require.NoError(t, err)
		require.Equal(t, value, decoded)
		require.Equal(t, name, decoded.String())
	}
}

func TestComputeModeUnknownValue(t *testing.T) {
	_, err := ComputeModeFromRaw(4)
	require.Error(t, err)

	var enumErr *UnknownEnumError
	require.ErrorAs(t, err, &enumErr)
	require.Equal(t, "compute mode", enumErr.Kind)
	require.Equal(t, int64(4), enumErr.Value)
}

func TestPerformanceStateBijection(t *testing.T) {
	for raw := int32(0); raw <= 15; raw++ {
		state, err := PerformanceStateFromRaw(raw)
		require.NoError(t, err)
		require.Equal(t, PerformanceState(raw), state)
	}

	unknown, err := PerformanceStateFromRaw(32)
	require.NoError(t, err)
	require.Equal(t, PerformanceStateUnknown, unknown)

	// The gap between P15 and the unknown sentinel is not defined.
	for _, raw := range []int32{16, 31, 33, -1} {
		_, err := PerformanceStateFromRaw(raw)
		require.Error(t, err, "value %d", raw)
	}
}

func TestEnumDecodeRejectsOutOfRange(t *testing.T) {
	testCases := []struct {
		description string
		decode      func(int32) error
		outOfRange  int32
	}{
		{
			description: "temperature sensor",
			decode: func(v int32) error {
				_, err := TemperatureSensorFromRaw(v)
				return err
			},
			outOfRange: 1,
		},
		{
			description: "temperature threshold",
			decode: func(v int32) error {
				_, err := TemperatureThresholdFromRaw(v)
				return err
			},
			outOfRange: 7,
		},
		{
			description: "clock type",
			decode: func(v int32) error {
				_, err := ClockTypeFromRaw(v)
				return err
			},
			outOfRange: 4,
		},
		{
			description: "enable state",
			decode: func(v int32) error {
				_, err := EnableStateFromRaw(v)
				return err
			},
			outOfRange: 2,
		},
		{
			description: "brand type",
			decode: func(v int32) error {
				_, err := BrandTypeFromRaw(v)
				return err
			},
			outOfRange: 17,
		},
		{
			description: "led color",
			decode: func(v int32) error {
				_, err := LedColorFromRaw(v)
				return err
			},
			outOfRange: 2,
		},
		{
			description: "fan state",
			decode: func(v int32) error {
				_, err := FanStateFromRaw(v)
				return err
			},
			outOfRange: 2,
		},
		{
			description: "operation mode",
			decode: func(v int32) error {
				_, err := OperationModeFromRaw(v)
				return err
			},
			outOfRange: 3,
		},
		{
			description: "page retirement cause",
			decode: func(v int32) error {
				_, err := PageRetirementCauseFromRaw(v)
				return err
			},
			outOfRange: 2,
		},
		{
			description: "vgpu capability",
			decode: func(v int32) error {
				_, err := VgpuCapabilityFromRaw(v)
				return err
			},
			outOfRange: 5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := tc.decode(tc.outOfRange)
			require.Error(t, err)

			var enumErr *UnknownEnumError
			require.ErrorAs(t, err, &enumErr)
			require.Equal(t, tc.description, enumErr.Kind)
			require.Equal(t, int64(tc.outOfRange), enumErr.Value)

			// Negative values are rejected the same way.
			require.Error(t, tc.decode(-1))
		})
	}
}

func TestEnumJSONRoundTrip(t *testing.T) {
	encoded, err := json.Marshal(ComputeModeExclusiveProcess)
	require.NoError(t, err)
	require.JSONEq(t, `"exclusive-process"`, string(encoded))

	var decoded ComputeMode
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	require.Equal(t, ComputeModeExclusiveProcess, decoded)

	require.Error(t, json.Unmarshal([]byte(`"no-such-mode"`), &decoded))
}

func TestEnumStringUnknownValue(t *testing.T) {
	require.Equal(t, "BrandType(42)", BrandType(42).String())
	require.Equal(t, "P3", PerformanceState3.String())
}
