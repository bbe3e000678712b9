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

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fleetsync.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad_DefaultsApplied(t *testing.T) {
	path := writeConfigFile(t, `{"registry_path": "info_devices.txt"}`)

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Network.TimeoutSeconds)
	assert.Equal(t, 3, cfg.Network.RetryAttempts)
	assert.Equal(t, 10, cfg.Workers)
	assert.Equal(t, 4370, cfg.Port)
	assert.Equal(t, "fingerprint", cfg.AttendanceStatus.Fingerprint)
	assert.Equal(t, 15*time.Second, cfg.Network.Timeout())
}

func TestLoad_MissingRegistry(t *testing.T) {
	path := writeConfigFile(t, `{}`)

	_, err := Load(context.Background(), path)
	require.ErrorIs(t, err, ErrMissingRegistry)
}

func TestLoad_BadJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	_, err := Load(context.Background(), path)
	require.Error(t, err)
}

func TestLoad_FileMissing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfigFile(t, `{"registry_path": "info_devices.txt", "workers": 4}`)

	t.Setenv("FLEETSYNC_WORKERS", "2")
	t.Setenv("FLEETSYNC_NETWORK_TIMEOUT_SECONDS", "30")
	t.Setenv("FLEETSYNC_CLEAR_ATTENDANCE", "true")

	cfg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 30, cfg.Network.TimeoutSeconds)
	assert.True(t, cfg.ClearAttendance)
}

func TestLoad_EnvOverrideInvalid(t *testing.T) {
	path := writeConfigFile(t, `{"registry_path": "info_devices.txt"}`)

	t.Setenv("FLEETSYNC_WORKERS", "many")

	_, err := Load(context.Background(), path)
	require.Error(t, err)
}

func TestValidate_Negatives(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.Network.TimeoutSeconds = -1 },
			wantErr: ErrNegativeTimeout,
		},
		{
			name:    "negative retries",
			mutate:  func(c *Config) { c.Network.RetryAttempts = -1 },
			wantErr: ErrNegativeRetries,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Workers = -1 },
			wantErr: ErrNegativeWorkers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			cfg.RegistryPath = "info_devices.txt"
			tt.mutate(cfg)

			require.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestStatusConfig_Table(t *testing.T) {
	table := (&StatusConfig{Fingerprint: "huella", Face: "rostro", Card: "tarjeta"}).Table()

	assert.Equal(t, "huella", table[1])
	assert.Equal(t, "rostro", table[15])
	assert.Equal(t, "tarjeta", table[0])
	assert.Equal(t, "tarjeta", table[2])
	assert.Equal(t, "tarjeta", table[4])

	_, ok := table[7]
	assert.False(t, ok)
}
