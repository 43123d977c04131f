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
	"fmt"
)

// ErrClosed is returned by every operation performed through a handle whose
// owning Lib has been shut down. Calls through such handles never reach the
// native library.
var ErrClosed = errors.New("nvml: library handle closed")

// ErrInvalidText is returned when a C string produced by the native library
// is not valid UTF-8.
var ErrInvalidText = errors.New("nvml: native string is not valid UTF-8")

// Error is the typed failure for a native call. It always carries the
// original nvmlReturn_t value for diagnostics.
type Error struct {
	Code Return
}

func (e *Error) Error() string {
	if e.Code.known() {
		return fmt.Sprintf("nvml: %s (%s)", e.Code.message(), e.Code)
	}
	return fmt.Sprintf("nvml: unrecognized return code %d", int32(e.Code))
}

// Is allows errors.Is comparisons against another *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Sentinel errors for the common call-time failure categories. Compare with
// errors.Is; use errors.As with *Error to read the raw code.
var (
	ErrUninitialized      = &Error{Code: ERROR_UNINITIALIZED}
	ErrInvalidArgument    = &Error{Code: ERROR_INVALID_ARGUMENT}
	ErrNotSupported       = &Error{Code: ERROR_NOT_SUPPORTED}
	ErrNoPermission       = &Error{Code: ERROR_NO_PERMISSION}
	ErrAlreadyInitialized = &Error{Code: ERROR_ALREADY_INITIALIZED}
	ErrNotFound           = &Error{Code: ERROR_NOT_FOUND}
	ErrInsufficientSize   = &Error{Code: ERROR_INSUFFICIENT_SIZE}
	ErrDriverNotLoaded    = &Error{Code: ERROR_DRIVER_NOT_LOADED}
	ErrTimeout            = &Error{Code: ERROR_TIMEOUT}
	ErrGpuIsLost          = &Error{Code: ERROR_GPU_IS_LOST}
	ErrInUse              = &Error{Code: ERROR_IN_USE}
	ErrUnknown            = &Error{Code: ERROR_UNKNOWN}
)

// LoadError reports a failure to locate or open the NVML shared library.
// It is distinct from SymbolError so callers can tell "no driver installed"
// apart from "driver too old".
type LoadError struct {
	Path  string
	Cause error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("nvml: cannot load %s: %v", e.Path, e.Cause)
}

func (e *LoadError) Unwrap() error { return e.Cause }

// SymbolError reports a native entry point that is absent from the loaded
// library, either at load time (required symbol) or at call time
// (version-gated symbol not present in the installed driver).
type SymbolError struct {
	Symbol string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("nvml: symbol %s not found in loaded library", e.Symbol)
}

// UnknownEnumError reports a raw integer outside the defined variant set of
// a typed enumeration.
type UnknownEnumError struct {
	Kind  string
	Value int64
}

func (e *UnknownEnumError) Error() string {
	return fmt.Sprintf("nvml: unrecognized %s value %d", e.Kind, e.Value)
}

// UnknownFlagsError reports raw bits outside the defined set of a flag type.
type UnknownFlagsError struct {
	Kind string
	Bits uint64
}

func (e *UnknownFlagsError) Error() string {
	return fmt.Sprintf("nvml: unrecognized %s bits %#x", e.Kind, e.Bits)
}
