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

// Package proc resolves PIDs reported by the driver to process command
// lines through the proc filesystem.
package proc

import (
	"fmt"
	"strings"

	"github.com/prometheus/procfs"
)

// Resolver looks up process details for PIDs. The driver reports PIDs in
// the host PID namespace, so the mount must be the host's /proc when
// running in a container.
type Resolver struct {
	fs procfs.FS
}

// NewResolver returns a Resolver reading from the given proc mount point.
// An empty mountPoint uses /proc.
func NewResolver(mountPoint string) (*Resolver, error) {
	if mountPoint == "" {
		mountPoint = procfs.DefaultMountPoint
	}
	fs, err := procfs.NewFS(mountPoint)
	if err != nil {
		return nil, fmt.Errorf("opening proc filesystem at %s: %w", mountPoint, err)
	}
	return &Resolver{fs: fs}, nil
}

// CommandLine returns the full command line of the process, or its comm
// value for kernel threads and zombies whose cmdline is empty.
func (r *Resolver) CommandLine(pid uint32) (string, error) {
	p, err := r.fs.Proc(int(pid))
	if err != nil {
		return "", fmt.Errorf("looking up pid %d: %w", pid, err)
	}
	args, err := p.CmdLine()
	if err != nil {
		return "", fmt.Errorf("reading cmdline of pid %d: %w", pid, err)
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	comm, err := p.Comm()
	if err != nil {
		return "", fmt.Errorf("reading comm of pid %d: %w", pid, err)
	}
	return fmt.Sprintf("[%s]", comm), nil
}
