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

package terminal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clockops/fleetsync/pkg/models"
)

func testDialer(_ *models.Device, _ int, _ time.Duration) (Client, error) {
	return nil, nil
}

func TestDriverRegistration(t *testing.T) {
	Register("testproto", testDialer)

	dialer, err := Driver("testproto")
	require.NoError(t, err)
	assert.NotNil(t, dialer)

	assert.Contains(t, Drivers(), "testproto")
}

func TestDriverUnknownName(t *testing.T) {
	dialer, err := Driver("no-such-driver")
	require.ErrorIs(t, err, ErrUnknownDriver)
	assert.Nil(t, dialer)
	assert.Contains(t, err.Error(), "no-such-driver")
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-proto", testDialer)

	assert.Panics(t, func() {
		Register("dup-proto", testDialer)
	})
}

func TestRegisterNilDialerPanics(t *testing.T) {
	assert.Panics(t, func() {
		Register("nil-proto", nil)
	})
}
