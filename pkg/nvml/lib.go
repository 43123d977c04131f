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
	"sync"
	"sync/atomic"

	"github.com/NVIDIA/go-nvml/pkg/dl"
)

const (
	defaultLibraryName = "libnvidia-ml.so.1"
	defaultLoadFlags   = dl.RTLD_LAZY | dl.RTLD_GLOBAL
)

// dynamicLibrary is the subset of dl.DynamicLibrary the loader needs.
// Tests substitute a fake through newDL.
type dynamicLibrary interface {
	Open() error
	Close() error
	Lookup(string) error
}

var newDL = func(path string, flags int) dynamicLibrary {
	return dl.New(path, flags)
}

// Lib is an owned handle to the management library. Each Lib loads the
// shared object and initializes the driver independently; the driver
// reference-counts both operations, so multiple live Lib values are fine.
//
// A Lib is safe for concurrent use. Calls made after Shutdown fail with
// ErrClosed.
type Lib struct {
	path  string
	flags int

	mu   sync.Mutex
	dl   dynamicLibrary
	syms atomic.Pointer[symtab]
}

// LibOption configures a Lib before it is initialized.
type LibOption func(*Lib)

// WithLibraryPath overrides the shared object loaded at Init. The default
// is libnvidia-ml.so.1 resolved through the regular dynamic loader search.
func WithLibraryPath(path string) LibOption {
	return func(l *Lib) {
		l.path = path
	}
}

// WithLoadFlags overrides the dlopen flags. The default is
// RTLD_LAZY | RTLD_GLOBAL.
func WithLoadFlags(flags int) LibOption {
	return func(l *Lib) {
		l.flags = flags
	}
}

// New returns an uninitialized handle. Nothing is loaded until Init or
// InitWithFlags is called.
func New(opts ...LibOption) *Lib {
	l := &Lib{
		path:  defaultLibraryName,
		flags: defaultLoadFlags,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Init loads the shared object, resolves its entry points and initializes
// the driver. On any failure no state is retained: the handle can be
// re-initialized after the underlying problem is fixed. Calling Init on an
// already initialized handle is a no-op.
func (l *Lib) Init() error {
	return l.initialize(func(t *symtab) error {
		return t.init().toError()
	})
}

// InitWithFlags is Init with driver init flags such as InitFlagNoGPUs or
// InitFlagNoAttach. Drivers that predate flagged initialization fail with
// a SymbolError.
func (l *Lib) InitWithFlags(flags uint32) error {
	return l.initialize(func(t *symtab) error {
		if t.initWithFlags == nil {
			return &SymbolError{Symbol: "nvmlInitWithFlags"}
		}
		return t.initWithFlags(flags).toError()
	})
}

func (l *Lib) initialize(initFn func(*symtab) error) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.syms.Load() != nil {
		return nil
	}

	lib := newDL(l.path, l.flags)
	if err := lib.Open(); err != nil {
		return &LoadError{Path: l.path, Cause: err}
	}

	t, err := resolveSymtab(lib)
	if err != nil {
		_ = lib.Close()
		return err
	}

	if err := initFn(t); err != nil {
		_ = lib.Close()
		return fmt.Errorf("initializing %s: %w", l.path, err)
	}

	l.dl = lib
	l.syms.Store(t)
	return nil
}

// Shutdown releases the driver and unloads the shared object. Wrapped
// objects obtained from this handle are invalid afterwards and report
// ErrClosed. Shutdown on a handle that was never initialized, or was
// already shut down, returns ErrClosed.
func (l *Lib) Shutdown() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	t := l.syms.Load()
	if t == nil {
		return ErrClosed
	}

	var errs []error
	if ret := t.shutdown(); ret != SUCCESS {
		errs = append(errs, fmt.Errorf("shutting down driver: %w", ret.toError()))
	}
	if err := l.dl.Close(); err != nil {
		errs = append(errs, fmt.Errorf("unloading %s: %w", l.path, err))
	}

	l.syms.Store(nil)
	l.dl = nil
	return errors.Join(errs...)
}

// symbols returns the resolved entry points, or ErrClosed once the handle
// has been shut down. Readers never take the init/shutdown lock.
func (l *Lib) symbols() (*symtab, error) {
	t := l.syms.Load()
	if t == nil {
		return nil, ErrClosed
	}
	return t, nil
}
