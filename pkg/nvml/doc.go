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

// Package nvml is a safe wrapper around the NVIDIA Management Library.
//
// The shared object is loaded at runtime, so binaries build and start on
// machines without a driver; loading is deferred until Lib.Init:
//
//	lib := nvml.New()
//	if err := lib.Init(); err != nil {
//		// driver or library not available
//	}
//	defer lib.Shutdown()
//
//	device, err := lib.DeviceByIndex(0)
//	...
//
// Every native status code, enum value and bitmask crossing into Go is
// checked: unknown codes keep their raw value, unknown enum values and
// flag bits are rejected rather than truncated, and native strings must be
// valid UTF-8. Methods never panic on driver responses.
package nvml
