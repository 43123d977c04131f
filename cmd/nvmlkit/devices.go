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

	log "github.com/sirupsen/logrus"

	"github.com/nvmlkit/nvmlkit/internal/proc"
	"github.com/nvmlkit/nvmlkit/pkg/nvml"
)

// deviceReport is the per-device entry rendered by the devices command.
// Fields backed by capabilities the device does not expose are omitted.
type deviceReport struct {
	Index           uint32                `json:"index"`
	Name            string                `json:"name"`
	UUID            string                `json:"uuid"`
	PciBusID        string                `json:"pciBusId,omitempty"`
	Temperature     *uint32               `json:"temperature,omitempty"`
	PowerUsage      *uint32               `json:"powerUsage,omitempty"`
	Performance     string                `json:"performanceState,omitempty"`
	Memory          *nvml.MemoryInfo      `json:"memory,omitempty"`
	Utilization     *nvml.Utilization     `json:"utilization,omitempty"`
	ThrottleReasons *nvml.ThrottleReasons `json:"throttleReasons,omitempty"`
	Processes       []processReport       `json:"processes,omitempty"`
}

type processReport struct {
	Pid           uint32 `json:"pid"`
	UsedGpuMemory uint64 `json:"usedGpuMemory"`
	Command       string `json:"command,omitempty"`
}

func runDevices(flags *Flags) error {
	lib, err := newLib(flags)
	if err != nil {
		return err
	}
	defer shutdown(lib)

	var resolver *proc.Resolver
	if flags.Processes {
		resolver, err = proc.NewResolver(flags.ProcMountPoint)
		if err != nil {
			return fmt.Errorf("failed to open procfs: %w", err)
		}
	}

	devices, err := lib.Devices()
	if err != nil {
		return fmt.Errorf("failed to enumerate devices: %w", err)
	}

	reports := make([]deviceReport, 0, len(devices))
	for i, device := range devices {
		report, err := buildDeviceReport(device, resolver)
		if err != nil {
			return fmt.Errorf("failed to query device %d: %w", i, err)
		}
		reports = append(reports, report)
	}

	return render(flags.Output, reports)
}

func buildDeviceReport(device *nvml.Device, resolver *proc.Resolver) (deviceReport, error) {
	var report deviceReport
	var err error

	report.Index, err = device.Index()
	if err != nil {
		return report, err
	}
	report.Name, err = device.Name()
	if err != nil {
		return report, err
	}
	report.UUID, err = device.UUID()
	if err != nil {
		return report, err
	}

	if pci, err := device.PciInfo(); err == nil {
		report.PciBusID = pci.BusID
	} else if !unsupported(err) {
		return report, err
	}

	if temp, err := device.Temperature(nvml.TemperatureSensorGPU); err == nil {
		report.Temperature = &temp
	} else if !unsupported(err) {
		return report, err
	}

	if power, err := device.PowerUsage(); err == nil {
		report.PowerUsage = &power
	} else if !unsupported(err) {
		return report, err
	}

	if pstate, err := device.PerformanceState(); err == nil {
		report.Performance = pstate.String()
	} else if !unsupported(err) {
		return report, err
	}

	if memory, err := device.MemoryInfo(); err == nil {
		report.Memory = &memory
	} else if !unsupported(err) {
		return report, err
	}

	if utilization, err := device.UtilizationRates(); err == nil {
		report.Utilization = &utilization
	} else if !unsupported(err) {
		return report, err
	}

	if reasons, err := device.CurrentThrottleReasons(); err == nil {
		report.ThrottleReasons = &reasons
	} else if !unsupported(err) {
		return report, err
	}

	if resolver != nil {
		processes, err := device.ComputeRunningProcesses()
		if err != nil && !unsupported(err) {
			return report, err
		}
		for _, p := range processes {
			entry := processReport{Pid: p.Pid, UsedGpuMemory: p.UsedGpuMemory}
			command, err := resolver.CommandLine(p.Pid)
			if err != nil {
				// The process may have exited between the device query
				// and the procfs read.
				log.Debugf("could not resolve command line of pid %d: %v", p.Pid, err)
			} else {
				entry.Command = command
			}
			report.Processes = append(report.Processes, entry)
		}
	}

	return report, nil
}
