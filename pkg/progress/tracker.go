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

// Package progress tracks completion counters shared across device tasks.
package progress

import "sync"

// Tracker holds the total and processed device counters for one fleet
// operation. Every mutation and read goes through its lock; many device
// tasks increment it concurrently.
type Tracker struct {
	mu        sync.Mutex
	total     int
	processed int
}

// NewTracker returns a tracker with zeroed counters.
func NewTracker() *Tracker {
	return &Tracker{}
}

// SetTotal records the device count for the operation. Call it once before
// tasks are dispatched.
func (t *Tracker) SetTotal(total int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.total = total
}

// Total returns the device count set for the operation.
func (t *Tracker) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.total
}

// IncrementProcessed bumps the processed counter and returns the new count.
// Called exactly once per completed device task regardless of outcome.
func (t *Tracker) IncrementProcessed() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.processed++

	return t.processed
}

// Processed returns the number of completed device tasks.
func (t *Tracker) Processed() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.processed
}

// Progress returns floor(processed/total*100), or 0 when total is 0.
func (t *Tracker) Progress() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.total > 0 {
		return t.processed * 100 / t.total
	}

	return 0
}

// Reset clears the processed counter for reuse across successive
// operations. The total is reset separately via SetTotal.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.processed = 0
}
