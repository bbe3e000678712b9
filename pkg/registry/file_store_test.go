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

package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockops/fleetsync/pkg/logger"
	"github.com/clockops/fleetsync/pkg/models"
)

func newTestFileStore(t *testing.T, lines ...string) *FileStore {
	t.Helper()

	path := filepath.Join(t.TempDir(), "info_devices.txt")
	content := strings.Join(lines, "\n") + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return NewFileStore(path, logger.NewTestLogger())
}

func TestFileStore_Devices(t *testing.T) {
	store := newTestFileStore(t,
		"north - K40 - gate - 10.0.0.5 - 7 - TCP - False - True",
		"south - MB700 - dock - 10.0.0.6 - 8 - UDP - True - False",
	)

	devices, err := store.Devices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 2)

	assert.Equal(t, "10.0.0.5", devices[0].IP)
	assert.True(t, devices[0].Active)
	assert.Equal(t, models.CommUDP, devices[1].Communication)
	assert.True(t, devices[1].BatteryFailing)
}

func TestFileStore_Devices_SkipsBadLines(t *testing.T) {
	store := newTestFileStore(t,
		"north - K40 - gate - 10.0.0.5 - 7 - TCP - False - True",
		"garbage line",
		"",
	)

	devices, err := store.Devices(context.Background())
	require.NoError(t, err)
	assert.Len(t, devices, 1)
}

func TestFileStore_UpdateBatteryFailing(t *testing.T) {
	store := newTestFileStore(t,
		"north - K40 - gate - 10.0.0.5 - 7 - TCP - False - True",
		"south - MB700 - dock - 10.0.0.6 - 8 - UDP - False - True",
	)

	require.NoError(t, store.UpdateBatteryFailing(context.Background(), "10.0.0.6", true))

	devices, err := store.Devices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 2)

	assert.False(t, devices[0].BatteryFailing)
	assert.True(t, devices[1].BatteryFailing)
}

func TestFileStore_UpdateDeviceName(t *testing.T) {
	store := newTestFileStore(t,
		"north - K40 - gate - 10.0.0.5 - 7 - TCP - False - True",
	)

	require.NoError(t, store.UpdateDeviceName(context.Background(), "10.0.0.5", "MultiBio700/ID"))

	devices, err := store.Devices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "MultiBio700/ID", devices[0].ModelName)
}

func TestFileStore_UpdateUnknownIP(t *testing.T) {
	store := newTestFileStore(t,
		"north - K40 - gate - 10.0.0.5 - 7 - TCP - False - True",
	)

	err := store.UpdateBatteryFailing(context.Background(), "10.9.9.9", true)
	require.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestFileStore_PreservesUnparseableLines(t *testing.T) {
	store := newTestFileStore(t,
		"# fleet inventory",
		"north - K40 - gate - 10.0.0.5 - 7 - TCP - False - True",
	)

	require.NoError(t, store.UpdateBatteryFailing(context.Background(), "10.0.0.5", true))

	data, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# fleet inventory")
}

// Two tasks updating the same record concurrently must not interleave or
// corrupt line content.
func TestFileStore_ConcurrentNameUpdates(t *testing.T) {
	store := newTestFileStore(t,
		"north - K40 - gate - 10.0.0.5 - 7 - TCP - False - True",
		"south - MB700 - dock - 10.0.0.6 - 8 - UDP - False - True",
	)

	const writers = 20

	var wg sync.WaitGroup

	for i := 0; i < writers; i++ {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			ip := "10.0.0.5"
			if i%2 == 0 {
				ip = "10.0.0.6"
			}

			err := store.UpdateDeviceName(context.Background(), ip, fmt.Sprintf("Name%d", i))
			assert.NoError(t, err)
		}(i)
	}

	wg.Wait()

	devices, err := store.Devices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 2)

	// Every line must still parse as a full 8-field record.
	for _, d := range devices {
		assert.Regexp(t, `^Name\d+$`, d.ModelName)
	}
}
