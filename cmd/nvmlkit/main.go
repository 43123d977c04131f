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
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	altsrc "github.com/urfave/cli/v2/altsrc"

	"github.com/nvmlkit/nvmlkit/pkg/nvml"
)

var version string // This should be set at build time to indicate the actual version

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

// Flags holds the options shared by all subcommands. Per-command options
// live on the commands themselves.
type Flags struct {
	LibraryPath    string
	Output         string
	Processes      bool
	ProcMountPoint string
	Timeout        time.Duration
	DeviceDir      string
}

func main() {
	var flags Flags
	var configFile string

	c := cli.NewApp()
	c.Name = "nvmlkit"
	c.Usage = "query and monitor NVIDIA GPUs through the management library"
	c.Version = version

	c.Flags = []cli.Flag{
		altsrc.NewStringFlag(
			&cli.StringFlag{
				Name:        "library-path",
				Usage:       "path of the management library to load (defaults to 'libnvidia-ml.so.1' on the system search path)",
				Destination: &flags.LibraryPath,
				EnvVars:     []string{"NVMLKIT_LIBRARY_PATH"},
			},
		),
		altsrc.NewStringFlag(
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Value:       outputJSON,
				Usage:       "report format:\n\t\t[json | yaml]",
				Destination: &flags.Output,
				EnvVars:     []string{"NVMLKIT_OUTPUT"},
			},
		),
		&cli.StringFlag{
			Name:        "config",
			Usage:       "the path to a YAML config file as an alternative to command line options or environment variables",
			Destination: &configFile,
			EnvVars:     []string{"NVMLKIT_CONFIG"},
		},
	}

	c.Before = func(ctx *cli.Context) error {
		if configFile != "" {
			source, err := altsrc.NewYamlSourceFromFile(configFile)
			if err != nil {
				return fmt.Errorf("unable to load config file: %v", err)
			}
			if err := altsrc.ApplyInputSourceValues(ctx, source, c.Flags); err != nil {
				return fmt.Errorf("unable to apply config file: %v", err)
			}
		}
		return validateFlags(&flags)
	}

	c.Commands = []*cli.Command{
		{
			Name:  "info",
			Usage: "print driver, library and CUDA versions and the device count",
			Action: func(ctx *cli.Context) error {
				return runInfo(&flags)
			},
		},
		{
			Name:  "devices",
			Usage: "print a per-device report",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:        "processes",
					Usage:       "include compute processes with resolved command lines",
					Destination: &flags.Processes,
					EnvVars:     []string{"NVMLKIT_PROCESSES"},
				},
				&cli.StringFlag{
					Name:        "proc-mount-point",
					Value:       "/proc",
					Usage:       "the mount point of procfs used to resolve process command lines",
					Destination: &flags.ProcMountPoint,
					EnvVars:     []string{"NVMLKIT_PROC_MOUNT_POINT"},
				},
			},
			Action: func(ctx *cli.Context) error {
				return runDevices(&flags)
			},
		},
		{
			Name:  "watch",
			Usage: "stream XID, clock and power events from all devices",
			Flags: []cli.Flag{
				&cli.DurationFlag{
					Name:        "timeout",
					Value:       10 * time.Second,
					Usage:       "how long a single event wait blocks; negative waits forever",
					Destination: &flags.Timeout,
					EnvVars:     []string{"NVMLKIT_TIMEOUT"},
				},
				&cli.StringFlag{
					Name:        "device-dir",
					Value:       "/dev",
					Usage:       "the directory watched for hotplugged device nodes",
					Destination: &flags.DeviceDir,
					EnvVars:     []string{"NVMLKIT_DEVICE_DIR"},
				},
			},
			Action: func(ctx *cli.Context) error {
				return runWatch(&flags)
			},
		},
	}

	err := c.Run(os.Args)
	if err != nil {
		log.Errorf("Error: %v", err)
		os.Exit(1)
	}
}

func validateFlags(flags *Flags) error {
	if flags.Output != outputJSON && flags.Output != outputYAML {
		return fmt.Errorf("invalid --output option: %v", flags.Output)
	}
	return nil
}

// newLib builds and initializes a library handle from the flags.
func newLib(flags *Flags) (*nvml.Lib, error) {
	var opts []nvml.LibOption
	if flags.LibraryPath != "" {
		opts = append(opts, nvml.WithLibraryPath(flags.LibraryPath))
	}
	lib := nvml.New(opts...)

	log.Info("Loading NVML")
	if err := lib.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize NVML: %w", err)
	}
	return lib, nil
}

func shutdown(lib *nvml.Lib) {
	if err := lib.Shutdown(); err != nil {
		log.Errorf("Shutdown of NVML returned: %v", err)
	}
}
