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

package models

// DeviceResult is the per-device outcome of a fleet operation.
type DeviceResult struct {
	Point           string `json:"point"`
	DistrictName    string `json:"district_name"`
	ID              int    `json:"id"`
	AttendanceCount int    `json:"attendance_count"`
	// Err carries the terminal failure marker when the device could not be
	// processed; empty on success.
	Err string `json:"error,omitempty"`
}

// Failed reports whether the device task ended with a terminal error.
func (r *DeviceResult) Failed() bool {
	return r.Err != ""
}

// FleetResult maps device IP to its operation outcome. It is built
// incrementally by the scheduler and must be treated as immutable once
// returned to the caller.
type FleetResult map[string]*DeviceResult
