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

package proc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeProcFile(t *testing.T, root string, pid, name string, content []byte) {
	t.Helper()
	dir := filepath.Join(root, pid)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), content, 0o644))
}

func TestCommandLine(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "1234", "cmdline", []byte("/usr/bin/python3\x00train.py\x00--epochs\x0010\x00"))

	resolver, err := NewResolver(root)
	require.NoError(t, err)

	cmdline, err := resolver.CommandLine(1234)
	require.NoError(t, err)
	require.Equal(t, "/usr/bin/python3 train.py --epochs 10", cmdline)
}

func TestCommandLineFallsBackToComm(t *testing.T) {
	root := t.TempDir()
	writeProcFile(t, root, "42", "cmdline", nil)
	writeProcFile(t, root, "42", "comm", []byte("kworker/0:1\n"))

	resolver, err := NewResolver(root)
	require.NoError(t, err)

	cmdline, err := resolver.CommandLine(42)
	require.NoError(t, err)
	require.Equal(t, "[kworker/0:1]", cmdline)
}

func TestCommandLineUnknownPid(t *testing.T) {
	resolver, err := NewResolver(t.TempDir())
	require.NoError(t, err)

	_, err = resolver.CommandLine(99999)
	require.Error(t, err)
}

func TestNewResolverBadMount(t *testing.T) {
	_, err := NewResolver(filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}
