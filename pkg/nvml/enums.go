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
)

// Enum translation never truncates or defaults: a raw value outside the
// defined variant set is rejected with an UnknownEnumError so that a newer
// driver cannot silently masquerade as something this package understands.

func enumFromRaw[E ~int32](names map[E]string, kind string, value int32) (E, error) {
	if _, ok := names[E(value)]; !ok {
		return 0, &UnknownEnumError{Kind: kind, Value: int64(value)}
	}
	return E(value), nil
}

func enumString[E ~int32](names map[E]string, kind string, value E) string {
	if s, ok := names[value]; ok {
		return s
	}
	return fmt.Sprintf("%s(%d)", kind, int32(value))
}

func enumUnmarshalJSON[E ~int32](data []byte, names map[E]string, kind string, out *E) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	for value, name := range names {
		if name == s {
			*out = value
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", kind, s)
}

// TemperatureSensor identifies a thermal sensor on a device.
type TemperatureSensor int32

const (
	TemperatureSensorGPU TemperatureSensor = 0
)

var temperatureSensorNames = map[TemperatureSensor]string{
	TemperatureSensorGPU: "gpu",
}

func TemperatureSensorFromRaw(value int32) (TemperatureSensor, error) {
	return enumFromRaw(temperatureSensorNames, "temperature sensor", value)
}

func (s TemperatureSensor) String() string {
	return enumString(temperatureSensorNames, "TemperatureSensor", s)
}

func (s TemperatureSensor) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TemperatureSensor) UnmarshalJSON(data []byte) error {
	return enumUnmarshalJSON(data, temperatureSensorNames, "temperature sensor", s)
}

// TemperatureThreshold identifies a thermal limit of a device.
type TemperatureThreshold int32

const (
	TemperatureThresholdShutdown        TemperatureThreshold = 0
	TemperatureThresholdSlowdown        TemperatureThreshold = 1
	TemperatureThresholdMemMax          TemperatureThreshold = 2
	TemperatureThresholdGpuMax          TemperatureThreshold = 3
	TemperatureThresholdAcousticMin     TemperatureThreshold = 4
	TemperatureThresholdAcousticCurrent TemperatureThreshold = 5
	TemperatureThresholdAcousticMax     TemperatureThreshold = 6
)

var temperatureThresholdNames = map[TemperatureThreshold]string{
	TemperatureThresholdShutdown:        "shutdown",
	TemperatureThresholdSlowdown:        "slowdown",
	TemperatureThresholdMemMax:          "mem-max",
	TemperatureThresholdGpuMax:          "gpu-max",
	TemperatureThresholdAcousticMin:     "acoustic-min",
	TemperatureThresholdAcousticCurrent: "acoustic-current",
	TemperatureThresholdAcousticMax:     "acoustic-max",
}

func TemperatureThresholdFromRaw(value int32) (TemperatureThreshold, error) {
	return enumFromRaw(temperatureThresholdNames, "temperature threshold", value)
}

func (t TemperatureThreshold) String() string {
	return enumString(temperatureThresholdNames, "TemperatureThreshold", t)
}

func (t TemperatureThreshold) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TemperatureThreshold) UnmarshalJSON(data []byte) error {
	return enumUnmarshalJSON(data, temperatureThresholdNames, "temperature threshold", t)
}

// ClockType identifies which clock domain a clock query refers to.
type ClockType int32

const (
	ClockTypeGraphics ClockType = 0
	ClockTypeSM       ClockType = 1
	ClockTypeMemory   ClockType = 2
	ClockTypeVideo    ClockType = 3
)

var clockTypeNames = map[ClockType]string{
	ClockTypeGraphics: "graphics",
	ClockTypeSM:       "sm",
	ClockTypeMemory:   "memory",
	ClockTypeVideo:    "video",
}

func ClockTypeFromRaw(value int32) (ClockType, error) {
	return enumFromRaw(clockTypeNames, "clock type", value)
}

func (c ClockType) String() string {
	return enumString(clockTypeNames, "ClockType", c)
}

func (c ClockType) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockType) UnmarshalJSON(data []byte) error {
	return enumUnmarshalJSON(data, clockTypeNames, "clock type", c)
}

// ComputeMode governs which contexts may run compute work on a device.
type ComputeMode int32

const (
	ComputeModeDefault          ComputeMode = 0
	ComputeModeExclusiveThread  ComputeMode = 1
	ComputeModeProhibited       ComputeMode = 2
	ComputeModeExclusiveProcess ComputeMode = 3
)

var computeModeNames = map[ComputeMode]string{
	ComputeModeDefault:          "default",
	ComputeModeExclusiveThread:  "exclusive-thread",
	ComputeModeProhibited:       "prohibited",
	ComputeModeExclusiveProcess: "exclusive-process",
}

func ComputeModeFromRaw(value int32) (ComputeMode, error) {
	return enumFromRaw(computeModeNames, "compute mode", value)
}

func (m ComputeMode) String() string {
	return enumString(computeModeNames, "ComputeMode", m)
}

func (m ComputeMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *ComputeMode) UnmarshalJSON(data []byte) error {
	return enumUnmarshalJSON(data, computeModeNames, "compute mode", m)
}

// EnableState is the generic on/off state the native library uses for
// toggleable features.
type EnableState int32

const (
	EnableStateDisabled EnableState = 0
	EnableStateEnabled  EnableState = 1
)

var enableStateNames = map[EnableState]string{
	EnableStateDisabled: "disabled",
	EnableStateEnabled:  "enabled",
}

func EnableStateFromRaw(value int32) (EnableState, error) {
	return enumFromRaw(enableStateNames, "enable state", value)
}

func (s EnableState) String() string {
	return enumString(enableStateNames, "EnableState", s)
}

func (s EnableState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *EnableState) UnmarshalJSON(data []byte) error {
	return enumUnmarshalJSON(data, enableStateNames, "enable state", s)
}

// BrandType is the product line a device belongs to.
type BrandType int32

const (
	BrandTypeUnknown           BrandType = 0
	BrandTypeQuadro            BrandType = 1
	BrandTypeTesla             BrandType = 2
	BrandTypeNVS               BrandType = 3
	BrandTypeGRID              BrandType = 4
	BrandTypeGeForce           BrandType = 5
	BrandTypeTitan             BrandType = 6
	BrandTypeNvidiaVApps       BrandType = 7
	BrandTypeNvidiaVPC         BrandType = 8
	BrandTypeNvidiaVCS         BrandType = 9
	BrandTypeNvidiaVWS         BrandType = 10
	BrandTypeNvidiaCloudGaming BrandType = 11
	BrandTypeQuadroRTX         BrandType = 12
	BrandTypeNvidiaRTX         BrandType = 13
	BrandTypeNvidia            BrandType = 14
	BrandTypeGeForceRTX        BrandType = 15
	BrandTypeTitanRTX          BrandType = 16
)

var brandTypeNames = map[BrandType]string{
	BrandTypeUnknown:           "unknown",
	BrandTypeQuadro:            "quadro",
	BrandTypeTesla:             "tesla",
	BrandTypeNVS:               "nvs",
	BrandTypeGRID:              "grid",
	BrandTypeGeForce:           "geforce",
	BrandTypeTitan:             "titan",
	BrandTypeNvidiaVApps:       "nvidia-vapps",
	BrandTypeNvidiaVPC:         "nvidia-vpc",
	BrandTypeNvidiaVCS:         "nvidia-vcs",
	BrandTypeNvidiaVWS:         "nvidia-vws",
	BrandTypeNvidiaCloudGaming: "nvidia-cloud-gaming",
	BrandTypeQuadroRTX:         "quadro-rtx",
	BrandTypeNvidiaRTX:         "nvidia-rtx",
	BrandTypeNvidia:            "nvidia",
	BrandTypeGeForceRTX:        "geforce-rtx",
	BrandTypeTitanRTX:          "titan-rtx",
}

func BrandTypeFromRaw(value int32) (BrandType, error) {
	return enumFromRaw(brandTypeNames, "brand type", value)
}

func (b BrandType) String() string {
	return enumString(brandTypeNames, "BrandType", b)
}

func (b BrandType) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.String())
}

func (b *BrandType) UnmarshalJSON(data []byte) error {
	return enumUnmarshalJSON(data, brandTypeNames, "brand type", b)
}

// PerformanceState is a device power/performance level, P0 (maximum
// performance) through P15 (minimum performance).
type PerformanceState int32

const (
	PerformanceState0  PerformanceState = 0
	PerformanceState1  PerformanceState = 1
	PerformanceState2  PerformanceState = 2
	PerformanceState3  PerformanceState = 3
	PerformanceState4  PerformanceState = 4
	PerformanceState5  PerformanceState = 5
	PerformanceState6  PerformanceState = 6
	PerformanceState7  PerformanceState = 7
	PerformanceState8  PerformanceState = 8
	PerformanceState9  PerformanceState = 9
	PerformanceState10 PerformanceState = 10
	PerformanceState11 PerformanceState = 11
	PerformanceState12 PerformanceState = 12
	PerformanceState13 PerformanceState = 13
	PerformanceState14 PerformanceState = 14
	PerformanceState15 PerformanceState = 15

	// PerformanceStateUnknown is reported when the device cannot determine
	// its current level.
	PerformanceStateUnknown PerformanceState = 32
)

var performanceStateNames = map[PerformanceState]string{
	PerformanceState0:       "P0",
	PerformanceState1:       "P1",
	PerformanceState2:       "P2",
	PerformanceState3:       "P3",
	PerformanceState4:       "P4",
	PerformanceState5:       "P5",
	PerformanceState6:       "P6",
	PerformanceState7:       "P7",
	PerformanceState8:       "P8",
	PerformanceState9:       "P9",
	PerformanceState10:      "P10",
	PerformanceState11:      "P11",
	PerformanceState12:      "P12",
	PerformanceState13:      "P13",
	PerformanceState14:      "P14",
	PerformanceState15:      "P15",
	PerformanceStateUnknown: "unknown",
}

func PerformanceStateFromRaw(value int32) (PerformanceState, error) {
	return enumFromRaw(performanceStateNames, "performance state", value)
}

func (p PerformanceState) String() string {
	return enumString(performanceStateNames, "PerformanceState", p)
}

func (p PerformanceState) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PerformanceState) UnmarshalJSON(data []byte) error {
	return enumUnmarshalJSON(data, performanceStateNames, "performance state", p)
}

// LedColor is the color of an S-class unit LED.
type LedColor int32

const (
	LedColorGreen LedColor = 0
	LedColorAmber LedColor = 1
)

var ledColorNames = map[LedColor]string{
	LedColorGreen: "green",
	LedColorAmber: "amber",
}

func LedColorFromRaw(value int32) (LedColor, error) {
	return enumFromRaw(ledColorNames, "led color", value)
}

func (c LedColor) String() string {
	return enumString(ledColorNames, "LedColor", c)
}

func (c LedColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *LedColor) UnmarshalJSON(data []byte) error {
	return enumUnmarshalJSON(data, ledColorNames, "led color", c)
}

// FanState is the health of a unit fan.
type FanState int32

const (
	FanStateNormal FanState = 0
	FanStateFailed FanState = 1
)

var fanStateNames = map[FanState]string{
	FanStateNormal: "normal",
	FanStateFailed: "failed",
}

func FanStateFromRaw(value int32) (FanState, error) {
	return enumFromRaw(fanStateNames, "fan state", value)
}

func (s FanState) String() string {
	return enumString(fanStateNames, "FanState", s)
}

func (s FanState) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *FanState) UnmarshalJSON(data []byte) error {
	return enumUnmarshalJSON(data, fanStateNames, "fan state", s)
}

// OperationMode restricts a GPU to all-on, compute-only, or low
// double-precision operation.
type OperationMode int32

const (
	OperationModeAllOn   OperationMode = 0
	OperationModeCompute OperationMode = 1
	OperationModeLowDP   OperationMode = 2
)

var operationModeNames = map[OperationMode]string{
	OperationModeAllOn:   "all-on",
	OperationModeCompute: "compute",
	OperationModeLowDP:   "low-dp",
}

func OperationModeFromRaw(value int32) (OperationMode, error) {
	return enumFromRaw(operationModeNames, "operation mode", value)
}

func (m OperationMode) String() string {
	return enumString(operationModeNames, "OperationMode", m)
}

func (m OperationMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *OperationMode) UnmarshalJSON(data []byte) error {
	return enumUnmarshalJSON(data, operationModeNames, "operation mode", m)
}

// PageRetirementCause is why a framebuffer page was retired.
type PageRetirementCause int32

const (
	PageRetirementCauseMultipleSingleBitEccErrors PageRetirementCause = 0
	PageRetirementCauseDoubleBitEccError          PageRetirementCause = 1
)

var pageRetirementCauseNames = map[PageRetirementCause]string{
	PageRetirementCauseMultipleSingleBitEccErrors: "multiple-single-bit-ecc-errors",
	PageRetirementCauseDoubleBitEccError:          "double-bit-ecc-error",
}

func PageRetirementCauseFromRaw(value int32) (PageRetirementCause, error) {
	return enumFromRaw(pageRetirementCauseNames, "page retirement cause", value)
}

func (c PageRetirementCause) String() string {
	return enumString(pageRetirementCauseNames, "PageRetirementCause", c)
}

func (c PageRetirementCause) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *PageRetirementCause) UnmarshalJSON(data []byte) error {
	return enumUnmarshalJSON(data, pageRetirementCauseNames, "page retirement cause", c)
}

// VgpuCapability is a queryable capability of a vGPU type.
type VgpuCapability int32

const (
	VgpuCapabilityNvlinkP2P      VgpuCapability = 0
	VgpuCapabilityGPUDirect      VgpuCapability = 1
	VgpuCapabilityMultiVgpuPerVM VgpuCapability = 2
	VgpuCapabilityExclusiveType  VgpuCapability = 3
	VgpuCapabilityExclusiveSize  VgpuCapability = 4
)

var vgpuCapabilityNames = map[VgpuCapability]string{
	VgpuCapabilityNvlinkP2P:      "nvlink-p2p",
	VgpuCapabilityGPUDirect:      "gpudirect",
	VgpuCapabilityMultiVgpuPerVM: "multi-vgpu-per-vm",
	VgpuCapabilityExclusiveType:  "exclusive-type",
	VgpuCapabilityExclusiveSize:  "exclusive-size",
}

func VgpuCapabilityFromRaw(value int32) (VgpuCapability, error) {
	return enumFromRaw(vgpuCapabilityNames, "vgpu capability", value)
}

func (c VgpuCapability) String() string {
	return enumString(vgpuCapabilityNames, "VgpuCapability", c)
}

func (c VgpuCapability) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *VgpuCapability) UnmarshalJSON(data []byte) error {
	return enumUnmarshalJSON(data, vgpuCapabilityNames, "vgpu capability", c)
}
