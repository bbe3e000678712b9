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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDevice_InvalidCommunication(t *testing.T) {
	_, err := NewDevice("north", "K40", "gate", "10.0.0.5", 7, "IPX", false, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCommunication)
}

func TestNewDevice_ValidModes(t *testing.T) {
	for _, mode := range []string{"TCP", "UDP", "RS232", "RS485"} {
		d, err := NewDevice("north", "K40", "gate", "10.0.0.5", 7, mode, false, true)
		require.NoError(t, err, mode)
		assert.Equal(t, CommMode(mode), d.Communication)
	}
}

func TestCommMode_NetworkReachable(t *testing.T) {
	assert.True(t, CommTCP.NetworkReachable())
	assert.True(t, CommUDP.NetworkReachable())
	assert.False(t, CommRS232.NetworkReachable())
	assert.False(t, CommRS485.NetworkReachable())
}

func TestParseDeviceLine_RoundTrip(t *testing.T) {
	line := "north - K40 - gate - 10.0.0.5 - 7 - TCP - False - True"

	d, err := ParseDeviceLine(line)
	require.NoError(t, err)

	assert.Equal(t, "north", d.DistrictName)
	assert.Equal(t, "K40", d.ModelName)
	assert.Equal(t, "gate", d.Point)
	assert.Equal(t, "10.0.0.5", d.IP)
	assert.Equal(t, 7, d.ID)
	assert.Equal(t, CommTCP, d.Communication)
	assert.False(t, d.BatteryFailing)
	assert.True(t, d.Active)

	assert.Equal(t, line, d.Line())
}

func TestParseDeviceLine_Invalid(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "too few fields", line: "north - K40 - gate"},
		{name: "bad id", line: "north - K40 - gate - 10.0.0.5 - x - TCP - False - True"},
		{name: "bad communication", line: "north - K40 - gate - 10.0.0.5 - 7 - IPX - False - True"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeviceLine(tt.line)
			require.Error(t, err)
		})
	}
}

func TestParseFlag_SpanishSpellings(t *testing.T) {
	for _, s := range []string{"true", "1", "yes", "Verdadero", "SI"} {
		assert.True(t, ParseFlag(s), s)
	}

	for _, s := range []string{"false", "0", "no", "falso", ""} {
		assert.False(t, ParseFlag(s), s)
	}
}
