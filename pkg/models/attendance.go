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

import (
	"fmt"
	"time"
)

// PunchTimeFormat is the display format punches are stored with.
const PunchTimeFormat = "02/01/2006 15:04"

// userIDWidth is the zero-padded width user identifiers are rendered to.
const userIDWidth = 9

// anomalyWindowMonths bounds how old a punch may be before it is flagged.
const anomalyWindowMonths = 3

// Punch is a single clock-in/out event retrieved from a terminal.
type Punch struct {
	UserID     string    `json:"user_id"`
	Timestamp  time.Time `json:"timestamp"`
	SequenceID int       `json:"sequence_id"`
	Status     string    `json:"status"`
	Anomalous  bool      `json:"anomalous,omitempty"`
}

// FormatUserID renders a raw numeric user identifier zero-padded to 9 digits.
func FormatUserID(raw uint64) string {
	return fmt.Sprintf("%0*d", userIDWidth, raw)
}

// IsThreeMonthsOld reports whether the punch is at least three months older
// than now. The boundary is inclusive, matching the stored-record audit rule.
func (p *Punch) IsThreeMonthsOld(now time.Time) bool {
	if p.Timestamp.IsZero() {
		return false
	}

	threeMonthsAgo := now.AddDate(0, -anomalyWindowMonths, 0)

	return !p.Timestamp.After(threeMonthsAgo)
}

// IsInTheFuture reports whether the punch is timestamped strictly after now.
func (p *Punch) IsInTheFuture(now time.Time) bool {
	if p.Timestamp.IsZero() {
		return false
	}

	return p.Timestamp.After(now)
}

// Line renders the punch in the storage line format:
// userID - timestamp - sequenceID - status.
func (p *Punch) Line() string {
	return fmt.Sprintf("%s - %s - %d - %s", p.UserID, p.Timestamp.Format(PunchTimeFormat), p.SequenceID, p.Status)
}

func (p *Punch) String() string {
	return "Attendance: " + p.Line()
}
