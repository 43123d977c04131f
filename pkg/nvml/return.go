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

var returnStrings = map[Return]string{
	SUCCESS:                         "SUCCESS",
	ERROR_UNINITIALIZED:             "ERROR_UNINITIALIZED",
	ERROR_INVALID_ARGUMENT:          "ERROR_INVALID_ARGUMENT",
	ERROR_NOT_SUPPORTED:             "ERROR_NOT_SUPPORTED",
	ERROR_NO_PERMISSION:             "ERROR_NO_PERMISSION",
	ERROR_ALREADY_INITIALIZED:       "ERROR_ALREADY_INITIALIZED",
	ERROR_NOT_FOUND:                 "ERROR_NOT_FOUND",
	ERROR_INSUFFICIENT_SIZE:         "ERROR_INSUFFICIENT_SIZE",
	ERROR_INSUFFICIENT_POWER:        "ERROR_INSUFFICIENT_POWER",
	ERROR_DRIVER_NOT_LOADED:         "ERROR_DRIVER_NOT_LOADED",
	ERROR_TIMEOUT:                   "ERROR_TIMEOUT",
	ERROR_IRQ_ISSUE:                 "ERROR_IRQ_ISSUE",
	ERROR_LIBRARY_NOT_FOUND:         "ERROR_LIBRARY_NOT_FOUND",
	ERROR_FUNCTION_NOT_FOUND:        "ERROR_FUNCTION_NOT_FOUND",
	ERROR_CORRUPTED_INFOROM:         "ERROR_CORRUPTED_INFOROM",
	ERROR_GPU_IS_LOST:               "ERROR_GPU_IS_LOST",
	ERROR_RESET_REQUIRED:            "ERROR_RESET_REQUIRED",
	ERROR_OPERATING_SYSTEM:          "ERROR_OPERATING_SYSTEM",
	ERROR_LIB_RM_VERSION_MISMATCH:   "ERROR_LIB_RM_VERSION_MISMATCH",
	ERROR_IN_USE:                    "ERROR_IN_USE",
	ERROR_MEMORY:                    "ERROR_MEMORY",
	ERROR_NO_DATA:                   "ERROR_NO_DATA",
	ERROR_VGPU_ECC_NOT_SUPPORTED:    "ERROR_VGPU_ECC_NOT_SUPPORTED",
	ERROR_INSUFFICIENT_RESOURCES:    "ERROR_INSUFFICIENT_RESOURCES",
	ERROR_FREQ_NOT_SUPPORTED:        "ERROR_FREQ_NOT_SUPPORTED",
	ERROR_ARGUMENT_VERSION_MISMATCH: "ERROR_ARGUMENT_VERSION_MISMATCH",
	ERROR_DEPRECATED:                "ERROR_DEPRECATED",
	ERROR_NOT_READY:                 "ERROR_NOT_READY",
	ERROR_UNKNOWN:                   "ERROR_UNKNOWN",
}

// String returns the nvml.h name for the status code, or a formatted
// placeholder for codes outside the documented range.
func (r Return) String() string {
	if s, ok := returnStrings[r]; ok {
		return s
	}
	return fmt.Sprintf("unrecognized return code %d", int32(r))
}

// message returns the human-readable description matching nvmlErrorString.
func (r Return) message() string {
	switch r {
	case SUCCESS:
		return "the operation was successful"
	case ERROR_UNINITIALIZED:
		return "the library has not been successfully initialized"
	case ERROR_INVALID_ARGUMENT:
		return "a supplied argument is invalid"
	case ERROR_NOT_SUPPORTED:
		return "the requested operation is not available on the target device"
	case ERROR_NO_PERMISSION:
		return "the current user does not have permission to perform this operation"
	case ERROR_ALREADY_INITIALIZED:
		return "the library has already been initialized"
	case ERROR_NOT_FOUND:
		return "a query to find an object was unsuccessful"
	case ERROR_INSUFFICIENT_SIZE:
		return "an input argument is not large enough"
	case ERROR_INSUFFICIENT_POWER:
		return "the device has insufficient external power connected"
	case ERROR_DRIVER_NOT_LOADED:
		return "the NVIDIA driver is not loaded"
	case ERROR_TIMEOUT:
		return "a user-provided timeout passed"
	case ERROR_IRQ_ISSUE:
		return "an NVIDIA kernel-detected interrupt issue occurred"
	case ERROR_LIBRARY_NOT_FOUND:
		return "the NVML shared library could not be found or loaded"
	case ERROR_FUNCTION_NOT_FOUND:
		return "a local version of NVML does not implement this function"
	case ERROR_CORRUPTED_INFOROM:
		return "the infoROM is corrupted"
	case ERROR_GPU_IS_LOST:
		return "the GPU has fallen off the bus or has otherwise become inaccessible"
	case ERROR_RESET_REQUIRED:
		return "the GPU requires a reset before it can be used again"
	case ERROR_OPERATING_SYSTEM:
		return "the GPU control device has been blocked by the operating system"
	case ERROR_LIB_RM_VERSION_MISMATCH:
		return "the RM version does not match the NVML version"
	case ERROR_IN_USE:
		return "the GPU is in use or some other operation is running on it"
	case ERROR_MEMORY:
		return "insufficient memory"
	case ERROR_NO_DATA:
		return "no data"
	case ERROR_VGPU_ECC_NOT_SUPPORTED:
		return "the requested vGPU operation is not available because ECC is enabled"
	case ERROR_INSUFFICIENT_RESOURCES:
		return "there are insufficient resources for the requested operation"
	case ERROR_FREQ_NOT_SUPPORTED:
		return "the requested frequency is not supported"
	case ERROR_ARGUMENT_VERSION_MISMATCH:
		return "the provided version is invalid or unsupported"
	case ERROR_DEPRECATED:
		return "the requested functionality has been deprecated"
	case ERROR_NOT_READY:
		return "the system is not ready for the request"
	default:
		return "an internal driver error occurred"
	}
}

// known reports whether the code is part of the documented range.
func (r Return) known() bool {
	_, ok := returnStrings[r]
	return ok
}

// toError maps a status code to its typed error. SUCCESS maps to nil.
// Codes outside the documented range are preserved in an *Error marked
// unrecognized rather than collapsed into a generic failure.
func (r Return) toError() error {
	if r == SUCCESS {
		return nil
	}
	return &Error{Code: r}
}
