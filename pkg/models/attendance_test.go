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
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatUserID(t *testing.T) {
	assert.Equal(t, "000000042", FormatUserID(42))
	assert.Equal(t, "123456789", FormatUserID(123456789))
	assert.Equal(t, "1234567890", FormatUserID(1234567890))
}

func TestPunch_IsThreeMonthsOld(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want bool
	}{
		{name: "four months ago", ts: now.AddDate(0, -4, 0), want: true},
		{name: "exactly three months ago", ts: now.AddDate(0, -3, 0), want: true},
		{name: "two months ago", ts: now.AddDate(0, -2, 0), want: false},
		{name: "yesterday", ts: now.AddDate(0, 0, -1), want: false},
		{name: "zero timestamp", ts: time.Time{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Punch{Timestamp: tt.ts}
			assert.Equal(t, tt.want, p.IsThreeMonthsOld(now))
		})
	}
}

func TestPunch_IsInTheFuture(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ts   time.Time
		want bool
	}{
		{name: "one minute ahead", ts: now.Add(time.Minute), want: true},
		{name: "exactly now", ts: now, want: false},
		{name: "one minute ago", ts: now.Add(-time.Minute), want: false},
		{name: "zero timestamp", ts: time.Time{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Punch{Timestamp: tt.ts}
			assert.Equal(t, tt.want, p.IsInTheFuture(now))
		})
	}
}

func TestPunch_Line(t *testing.T) {
	p := &Punch{
		UserID:     FormatUserID(42),
		Timestamp:  time.Date(2026, 1, 9, 8, 30, 0, 0, time.UTC),
		SequenceID: 3,
		Status:     "fingerprint",
	}

	assert.Equal(t, "000000042 - 09/01/2026 08:30 - 3 - fingerprint", p.Line())
}
