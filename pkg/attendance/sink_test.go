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

package attendance

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockops/fleetsync/pkg/logger"
	"github.com/clockops/fleetsync/pkg/models"
)

func testDevice() *models.Device {
	return &models.Device{
		DistrictName:  "North District",
		ModelName:     "MultiBio700/ID",
		Point:         "Main Gate",
		IP:            "10.0.0.5",
		ID:            3,
		Communication: models.CommTCP,
		Active:        true,
	}
}

func testPunches(now time.Time) []models.Punch {
	return []models.Punch{
		{UserID: "000000042", Timestamp: now.Add(-time.Hour), SequenceID: 3, Status: "fingerprint"},
		{UserID: "000000007", Timestamp: now.Add(-2 * time.Hour), SequenceID: 3, Status: "face"},
	}
}

func TestSinkSaveDeviceLayout(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	sink := NewSink(base, "", logger.NewTestLogger())

	require.NoError(t, sink.SaveDevice(testPunches(now), testDevice(), now))

	path := filepath.Join(base, "devices", "north-district", "multibio700-id-main-gate",
		"10.0.0.5_2026-06-15_file.cro")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "000000042 - 15/06/2026 11:00 - 3 - fingerprint", lines[0])
	assert.Equal(t, "000000007 - 15/06/2026 10:00 - 3 - face", lines[1])
}

func TestSinkSaveDeviceAppends(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	sink := NewSink(base, "", logger.NewTestLogger())

	require.NoError(t, sink.SaveDevice(testPunches(now), testDevice(), now))
	require.NoError(t, sink.SaveDevice(testPunches(now), testDevice(), now))

	path := filepath.Join(base, "devices", "north-district", "multibio700-id-main-gate",
		"10.0.0.5_2026-06-15_file.cro")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(string(data), "\n"), "\n"), 4)
}

func TestSinkSaveDeviceMirrorsToBackup(t *testing.T) {
	base := t.TempDir()
	backup := t.TempDir()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	sink := NewSink(base, backup, logger.NewTestLogger())

	require.NoError(t, sink.SaveDevice(testPunches(now), testDevice(), now))

	rel := filepath.Join("devices", "north-district", "multibio700-id-main-gate",
		"10.0.0.5_2026-06-15_file.cro")

	primary, err := os.ReadFile(filepath.Join(base, rel))
	require.NoError(t, err)

	mirror, err := os.ReadFile(filepath.Join(backup, rel))
	require.NoError(t, err)

	assert.Equal(t, primary, mirror)
}

func TestSinkSaveDeviceBackupFailureIsNotFatal(t *testing.T) {
	base := t.TempDir()
	backup := filepath.Join(t.TempDir(), "blocked")
	// A regular file where the backup tree should go makes MkdirAll fail.
	require.NoError(t, os.WriteFile(backup, []byte("x"), 0o644))

	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	sink := NewSink(base, backup, logger.NewTestLogger())

	require.NoError(t, sink.SaveDevice(testPunches(now), testDevice(), now))
}

func TestSinkSaveGlobalConcurrentAppends(t *testing.T) {
	base := t.TempDir()
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.Local)
	sink := NewSink(base, "", logger.NewTestLogger())

	const writers = 20

	var wg sync.WaitGroup

	wg.Add(writers)

	for i := 0; i < writers; i++ {
		go func() {
			defer wg.Done()

			assert.NoError(t, sink.SaveGlobal(testPunches(now), "attendances"))
		}()
	}

	wg.Wait()

	data, err := os.ReadFile(filepath.Join(base, "attendances.txt"))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, writers*2)

	for _, line := range lines {
		assert.Contains(t, line, " - 3 - ")
	}
}

func TestSanitizeFolderName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercases", input: "North", expected: "north"},
		{name: "spaces to hyphens", input: "Main Gate", expected: "main-gate"},
		{name: "squeezes runs", input: "a  /  b", expected: "a-b"},
		{name: "trims edges", input: " edge ", expected: "edge"},
		{name: "keeps underscores", input: "site_01", expected: "site_01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeFolderName(tt.input))
		})
	}
}
