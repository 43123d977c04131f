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

package main

import (
	"fmt"
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"

	"github.com/nvmlkit/nvmlkit/pkg/nvml"
)

func TestValidateFlags(t *testing.T) {
	testCases := []struct {
		description string
		output      string
		expectError bool
	}{
		{
			description: "json output is accepted",
			output:      "json",
		},
		{
			description: "yaml output is accepted",
			output:      "yaml",
		},
		{
			description: "unknown output is rejected",
			output:      "table",
			expectError: true,
		},
		{
			description: "empty output is rejected",
			output:      "",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			err := validateFlags(&Flags{Output: tc.output})
			if tc.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestUnsupported(t *testing.T) {
	testCases := []struct {
		description string
		err         error
		expected    bool
	}{
		{
			description: "nil error",
			err:         nil,
			expected:    false,
		},
		{
			description: "not supported",
			err:         nvml.ErrNotSupported,
			expected:    true,
		},
		{
			description: "missing symbol",
			err:         &nvml.SymbolError{Symbol: "nvmlDeviceGetEncoderStats"},
			expected:    true,
		},
		{
			description: "wrapped not supported",
			err:         fmt.Errorf("querying power: %w", nvml.ErrNotSupported),
			expected:    true,
		},
		{
			description: "driver error",
			err:         nvml.ErrUnknown,
			expected:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expected, unsupported(tc.err))
		})
	}
}

func TestIsDeviceNodeCreate(t *testing.T) {
	testCases := []struct {
		description string
		event       fsnotify.Event
		expected    bool
	}{
		{
			description: "nvidia0 created",
			event:       fsnotify.Event{Name: "/dev/nvidia0", Op: fsnotify.Create},
			expected:    true,
		},
		{
			description: "nvidia12 created",
			event:       fsnotify.Event{Name: "/dev/nvidia12", Op: fsnotify.Create},
			expected:    true,
		},
		{
			description: "control node ignored",
			event:       fsnotify.Event{Name: "/dev/nvidiactl", Op: fsnotify.Create},
			expected:    false,
		},
		{
			description: "uvm node ignored",
			event:       fsnotify.Event{Name: "/dev/nvidia-uvm", Op: fsnotify.Create},
			expected:    false,
		},
		{
			description: "bare prefix ignored",
			event:       fsnotify.Event{Name: "/dev/nvidia", Op: fsnotify.Create},
			expected:    false,
		},
		{
			description: "unrelated node ignored",
			event:       fsnotify.Event{Name: "/dev/tty0", Op: fsnotify.Create},
			expected:    false,
		},
		{
			description: "removal ignored",
			event:       fsnotify.Event{Name: "/dev/nvidia0", Op: fsnotify.Remove},
			expected:    false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			require.Equal(t, tc.expected, isDeviceNodeCreate(tc.event))
		})
	}
}
