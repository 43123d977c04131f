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
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	"github.com/nvmlkit/nvmlkit/pkg/nvml"
)

// systemInfo is the report rendered by the info command.
type systemInfo struct {
	DriverVersion     string `json:"driverVersion"`
	NVMLVersion       string `json:"nvmlVersion"`
	CudaDriverVersion string `json:"cudaDriverVersion,omitempty"`
	DeviceCount       uint32 `json:"deviceCount"`
}

func runInfo(flags *Flags) error {
	lib, err := newLib(flags)
	if err != nil {
		return err
	}
	defer shutdown(lib)

	var info systemInfo

	info.DriverVersion, err = lib.DriverVersion()
	if err != nil {
		return fmt.Errorf("failed to get driver version: %w", err)
	}
	info.NVMLVersion, err = lib.NVMLVersion()
	if err != nil {
		return fmt.Errorf("failed to get NVML version: %w", err)
	}

	cuda, err := lib.CudaDriverVersion()
	if err != nil && !unsupported(err) {
		return fmt.Errorf("failed to get CUDA driver version: %w", err)
	}
	if err == nil {
		info.CudaDriverVersion = cuda.String()
	}

	info.DeviceCount, err = lib.DeviceCount()
	if err != nil {
		return fmt.Errorf("failed to get device count: %w", err)
	}

	return render(flags.Output, info)
}

// unsupported reports whether err only means the queried capability is not
// available on this device, driver or library version.
func unsupported(err error) bool {
	var symErr *nvml.SymbolError
	return errors.Is(err, nvml.ErrNotSupported) || errors.As(err, &symErr)
}

// render writes the report to stdout in the requested format.
func render(output string, report interface{}) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %v", err)
	}
	if output == outputYAML {
		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return fmt.Errorf("failed to convert report to YAML: %v", err)
		}
	} else {
		data = append(data, '\n')
	}
	_, err = os.Stdout.Write(data)
	return err
}
