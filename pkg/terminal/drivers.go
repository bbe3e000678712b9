/*
 * Copyright 2026 Clockops Inc.
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

package terminal

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownDriver reports a driver name nothing has registered.
var ErrUnknownDriver = errors.New("unknown terminal driver")

var (
	driversMu sync.RWMutex
	drivers   = make(map[string]Dialer)
)

// Register makes a protocol dialer available under the given name,
// typically from the driver package's init. Registering the same name
// twice or a nil dialer panics.
func Register(name string, dialer Dialer) {
	driversMu.Lock()
	defer driversMu.Unlock()

	if dialer == nil {
		panic("terminal: Register dialer is nil")
	}

	if _, dup := drivers[name]; dup {
		panic(fmt.Sprintf("terminal: Register called twice for driver %q", name))
	}

	drivers[name] = dialer
}

// Driver returns the dialer registered under name.
func Driver(name string) (Dialer, error) {
	driversMu.RLock()
	defer driversMu.RUnlock()

	dialer, ok := drivers[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (registered: %v)", ErrUnknownDriver, name, driverNamesLocked())
	}

	return dialer, nil
}

// Drivers lists the registered driver names, sorted.
func Drivers() []string {
	driversMu.RLock()
	defer driversMu.RUnlock()

	return driverNamesLocked()
}

func driverNamesLocked() []string {
	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
