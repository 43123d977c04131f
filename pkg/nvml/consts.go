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

// Return represents the nvmlReturn_t status code of a native call.
type Return int32

const (
	SUCCESS                         Return = 0
	ERROR_UNINITIALIZED             Return = 1
	ERROR_INVALID_ARGUMENT          Return = 2
	ERROR_NOT_SUPPORTED             Return = 3
	ERROR_NO_PERMISSION             Return = 4
	ERROR_ALREADY_INITIALIZED       Return = 5
	ERROR_NOT_FOUND                 Return = 6
	ERROR_INSUFFICIENT_SIZE         Return = 7
	ERROR_INSUFFICIENT_POWER        Return = 8
	ERROR_DRIVER_NOT_LOADED         Return = 9
	ERROR_TIMEOUT                   Return = 10
	ERROR_IRQ_ISSUE                 Return = 11
	ERROR_LIBRARY_NOT_FOUND         Return = 12
	ERROR_FUNCTION_NOT_FOUND        Return = 13
	ERROR_CORRUPTED_INFOROM         Return = 14
	ERROR_GPU_IS_LOST               Return = 15
	ERROR_RESET_REQUIRED            Return = 16
	ERROR_OPERATING_SYSTEM          Return = 17
	ERROR_LIB_RM_VERSION_MISMATCH   Return = 18
	ERROR_IN_USE                    Return = 19
	ERROR_MEMORY                    Return = 20
	ERROR_NO_DATA                   Return = 21
	ERROR_VGPU_ECC_NOT_SUPPORTED    Return = 22
	ERROR_INSUFFICIENT_RESOURCES    Return = 23
	ERROR_FREQ_NOT_SUPPORTED        Return = 24
	ERROR_ARGUMENT_VERSION_MISMATCH Return = 25
	ERROR_DEPRECATED                Return = 26
	ERROR_NOT_READY                 Return = 27
	ERROR_UNKNOWN                   Return = 999
)

// Fixed buffer sizes for string-returning calls, as defined in nvml.h.
const (
	systemDriverVersionBufferSize = 80
	systemNVMLVersionBufferSize   = 80
	systemProcessNameBufferSize   = 256

	deviceNameBufferSize     = 96
	deviceUUIDBufferSize     = 96
	deviceSerialBufferSize   = 30
	deviceVbiosBufferSize    = 32
	devicePciBusIDBufferSize = 32

	unitInfoBufferSize     = 96
	unitLedCauseBufferSize = 256
	unitPsuStateBufferSize = 256

	gridLicenseBufferSize = 128
)

// InvalidInstanceID is reported for the GPU/compute instance fields of
// events and process info when the device is not MIG-partitioned or the
// information came from a v1 native call that predates those fields.
const InvalidInstanceID uint32 = 0xFFFFFFFF

// unitFanSpeedsMaxFans mirrors the fixed fan array of nvmlUnitFanSpeeds_t.
const unitFanSpeedsMaxFans = 24

// Init flags accepted by InitWithFlags.
const (
	InitFlagNoGPUs   uint32 = 1 // succeed even when no devices are present
	InitFlagNoAttach uint32 = 2 // do not attach GPUs during initialization
)
