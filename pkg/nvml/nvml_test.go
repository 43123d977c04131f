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
	"fmt"
	"unsafe"
)

// fakeDynamicLibrary satisfies dynamicLibrary without dlopen. Lookups
// succeed for the names in symbols.
type fakeDynamicLibrary struct {
	openErr error
	symbols map[string]bool
	closed  bool
}

func (f *fakeDynamicLibrary) Open() error {
	return f.openErr
}

func (f *fakeDynamicLibrary) Close() error {
	f.closed = true
	return nil
}

func (f *fakeDynamicLibrary) Lookup(symbol string) error {
	if f.symbols[symbol] {
		return nil
	}
	return fmt.Errorf("symbol %q not found", symbol)
}

func symbolSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func requiredSymbolSet() map[string]bool {
	return symbolSet(requiredSymbols...)
}

// newTestLib returns an initialized Lib backed by the given symbol table
// and a fake loader, without touching the native library.
func newTestLib(tab *symtab) *Lib {
	l := New()
	l.dl = &fakeDynamicLibrary{symbols: requiredSymbolSet()}
	l.syms.Store(tab)
	return l
}

// testShutdownTab is a minimal table whose lifecycle entry points succeed.
func testShutdownTab() *symtab {
	return &symtab{
		shutdown: func() Return { return SUCCESS },
	}
}

// The fakes below reconstruct the output buffers the wrappers hand to the
// native library as pointer+length pairs.

func bufFrom(p *byte, n uint32) []byte {
	return unsafe.Slice(p, n)
}

func procV1BufFrom(p *rawProcessInfoV1, n uint32) []rawProcessInfoV1 {
	return unsafe.Slice(p, n)
}

func procV2BufFrom(p *rawProcessInfoV2, n uint32) []rawProcessInfoV2 {
	return unsafe.Slice(p, n)
}

func vgpuIDBufFrom(p *vgpuTypeID, n uint32) []vgpuTypeID {
	return unsafe.Slice(p, n)
}
