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
	"testing"

	"github.com/stretchr/testify/require"
)

var allReturnCodes = []Return{
	SUCCESS,
	ERROR_UNINITIALIZED,
	ERROR_INVALID_ARGUMENT,
	ERROR_NOT_SUPPORTED,
	ERROR_NO_PERMISSION,
	ERROR_ALREADY_INITIALIZED,
	ERROR_NOT_FOUND,
	ERROR_INSUFFICIENT_SIZE,
	ERROR_INSUFFICIENT_POWER,
	ERROR_DRIVER_NOT_LOADED,
	ERROR_TIMEOUT,
	ERROR_IRQ_ISSUE,
	ERROR_LIBRARY_NOT_FOUND,
	ERROR_FUNCTION_NOT_FOUND,
	ERROR_CORRUPTED_INFOROM,
	ERROR_GPU_IS_LOST,
	ERROR_RESET_REQUIRED,
	ERROR_OPERATING_SYSTEM,
	ERROR_LIB_RM_VERSION_MISMATCH,
	ERROR_IN_USE,
	ERROR_MEMORY,
	ERROR_NO_DATA,
	ERROR_VGPU_ECC_NOT_SUPPORTED,
	ERROR_INSUFFICIENT_RESOURCES,
	ERROR_FREQ_NOT_SUPPORTED,
	ERROR_ARGUMENT_VERSION_MISMATCH,
	ERROR_DEPRECATED,
	ERROR_NOT_READY,
	ERROR_UNKNOWN,
}

func TestReturnErrorRoundTrip(t *testing.T) {
	for _, code := range allReturnCodes {
		err := code.toError()
		if code == SUCCESS {
			require.NoError(t, err)
			continue
		}

		var typed *Error
		require.ErrorAs(t, err, &typed, "code %d", int32(code))
		require.Equal(t, code, typed.Code)
		require.NotEmpty(t, err.Error())
	}
}

func TestReturnNotSupported(t *testing.T) {
	err := ERROR_NOT_SUPPORTED.toError()
	require.ErrorIs(t, err, ErrNotSupported)

	var typed *Error
	require.ErrorAs(t, err, &typed)
	require.Equal(t, Return(3), typed.Code)
}

func TestReturnUnrecognizedCode(t *testing.T) {
	// A code a newer driver might return: translation keeps the raw value
	// instead of failing or folding it into a known case.
	code := Return(500)
	require.False(t, code.known())

	err := code.toError()
	require.Error(t, err)

	var typed *Error
	require.ErrorAs(t, err, &typed)
	require.Equal(t, code, typed.Code)

	for _, sentinel := range []error{ErrNotSupported, ErrTimeout, ErrUnknown} {
		require.False(t, errors.Is(err, sentinel))
	}
}

func TestReturnStrings(t *testing.T) {
	require.Equal(t, "SUCCESS", SUCCESS.String())
	require.Equal(t, "ERROR_NOT_SUPPORTED", ERROR_NOT_SUPPORTED.String())
	require.Equal(t, "ERROR_UNKNOWN", ERROR_UNKNOWN.String())
	require.Contains(t, Return(500).String(), "500")
}
