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

//go:generate mockgen -destination=mock_terminal.go -package=terminal github.com/clockops/fleetsync/pkg/terminal Client

// Package terminal declares the binary-protocol client consumed by the
// connection manager. The wire codec itself lives outside this module; the
// fleet engine only drives the operations below and classifies their errors.
package terminal

import (
	"context"
	"time"

	"github.com/clockops/fleetsync/pkg/models"
)

// RawPunch is one attendance event as decoded off the wire, before
// formatting and status mapping.
type RawPunch struct {
	UserID    uint64
	Timestamp time.Time
	Status    int
}

// Client is a per-device protocol session. Operations block until the
// device answers or the context expires; errors surface the transport's own
// message text, which the connection manager pattern-matches to classify.
// A Client is owned by exactly one device task and never shared.
type Client interface {
	Connect(ctx context.Context) error
	Disconnect() error

	GetTime(ctx context.Context) (time.Time, error)
	SetTime(ctx context.Context, t time.Time) error

	// GetAttendance retrieves every stored punch. Records reflects the
	// device's self-reported record count for the last GetAttendance call.
	GetAttendance(ctx context.Context) ([]RawPunch, error)
	Records() int

	GetSerialNumber(ctx context.Context) (string, error)
	GetDeviceName(ctx context.Context) (string, error)
	GetPlatform(ctx context.Context) (string, error)
	GetFirmwareVersion(ctx context.Context) (string, error)

	Restart(ctx context.Context) error
	ClearAttendance(ctx context.Context) error
}

// Dialer produces a fresh Client for one device. The force-UDP decision
// follows the device's configured communication mode.
type Dialer func(device *models.Device, port int, timeout time.Duration) (Client, error)
