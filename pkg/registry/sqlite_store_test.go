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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockops/fleetsync/pkg/logger"
	"github.com/clockops/fleetsync/pkg/models"
)

func newTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "devices.db"), logger.NewTestLogger())
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	return store
}

func mustDevice(t *testing.T, ip string, id int) *models.Device {
	t.Helper()

	d, err := models.NewDevice("north", "K40", "gate", ip, id, "TCP", false, true)
	require.NoError(t, err)

	return d
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	require.NoError(t, store.Insert(ctx, mustDevice(t, "10.0.0.5", 7)))
	require.NoError(t, store.Insert(ctx, mustDevice(t, "10.0.0.6", 8)))

	devices, err := store.Devices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 2)

	assert.Equal(t, "10.0.0.5", devices[0].IP)
	assert.Equal(t, models.CommTCP, devices[0].Communication)
}

func TestSQLiteStore_Updates(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	require.NoError(t, store.Insert(ctx, mustDevice(t, "10.0.0.5", 7)))

	require.NoError(t, store.UpdateBatteryFailing(ctx, "10.0.0.5", true))
	require.NoError(t, store.UpdateDeviceName(ctx, "10.0.0.5", "MultiBio700/ID"))

	devices, err := store.Devices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)

	assert.True(t, devices[0].BatteryFailing)
	assert.Equal(t, "MultiBio700/ID", devices[0].ModelName)
}

func TestSQLiteStore_UpdateUnknownIP(t *testing.T) {
	ctx := context.Background()
	store := newTestSQLiteStore(t)

	err := store.UpdateBatteryFailing(ctx, "10.9.9.9", true)
	require.ErrorIs(t, err, ErrDeviceNotFound)
}
