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

package fleet

import "errors"

var (
	// ErrUnsupportedTransport marks devices whose configured communication
	// mode has no network transport (serial links).
	ErrUnsupportedTransport = errors.New("device transport is not network reachable")

	// ErrDeviceTaskPanic marks a device task that died in the worker pool;
	// the panic is contained so the rest of the fleet keeps processing.
	ErrDeviceTaskPanic = errors.New("device task panicked")
)
