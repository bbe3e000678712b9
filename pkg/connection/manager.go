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

// Package connection drives a single terminal reliably: bounded retries
// with exponential backoff, per-call deadlines and structured error
// classification. One Manager owns one transport client and is never
// shared across device tasks.
package connection

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/clockops/fleetsync/pkg/logger"
	"github.com/clockops/fleetsync/pkg/models"
	"github.com/clockops/fleetsync/pkg/registry"
	"github.com/clockops/fleetsync/pkg/terminal"
)

const (
	// deadlineSlack extends the transport timeout for the per-call deadline,
	// covering protocol handshake overhead beyond the socket timeout.
	deadlineSlack = 5 * time.Second

	maxBackoff        = 30 * time.Second
	jitterSpanSeconds = 3

	defaultMaxAttempts = 3
	defaultTimeout     = 15 * time.Second

	// minuteDriftLimit is the minute delta at which a device clock is
	// considered outdated during time validation.
	minuteDriftLimit = 5

	nameFallback = "NoName"
)

// serialNameOverrides maps serial numbers of units whose firmware reports a
// blank device name to their known model name.
var serialNameOverrides = map[string]string{
	"5235702520030": "MultiBio700/ID",
}

// Options tunes one Manager. Zero values fall back to defaults.
type Options struct {
	// Timeout is the transport timeout; each call gets Timeout plus slack
	// as its hard deadline.
	Timeout time.Duration

	// MaxAttempts bounds both the transport retry loop and the attendance
	// verification retry loop.
	MaxAttempts int

	// ClearAttendance wipes on-device punch storage after a verified
	// retrieval. Interactive and unattended runs configure this differently.
	ClearAttendance bool

	// PingPacketSize is the ICMP payload size for the out-of-band liveness
	// probe on retry exhaustion. Zero or negative disables the probe.
	PingPacketSize int
}

// Manager executes operations against one device with retries and
// error classification.
type Manager struct {
	device    *models.Device
	client    terminal.Client
	opts      Options
	connected bool
	clock     Clock
	logger    logger.Logger
}

// NewManager wraps a transport client for one device.
func NewManager(device *models.Device, client terminal.Client, opts Options, clock Clock, log logger.Logger) *Manager {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}

	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	if clock == nil {
		clock = realClock{}
	}

	return &Manager{
		device: device,
		client: client,
		opts:   opts,
		clock:  clock,
		logger: log,
	}
}

// IsConnected reports whether the session is believed live.
func (m *Manager) IsConnected() bool {
	return m.connected
}

// Connect establishes the transport session. A single attempt: transport
// failures are classified and wrapped in ErrConnectionRefused.
func (m *Manager) Connect(ctx context.Context) error {
	m.logger.Info().Str("ip", m.device.IP).Msg("Connecting to device")

	if err := m.execute(ctx, "connect", m.client.Connect); err != nil {
		return err
	}

	m.connected = true

	m.logger.Info().Str("ip", m.device.IP).Msg("Connected to device")
	m.logDeviceInfo(ctx)

	return nil
}

// logDeviceInfo records platform and firmware details when the firmware
// answers. Failures here never affect the session.
func (m *Manager) logDeviceInfo(ctx context.Context) {
	infoCtx, cancel := context.WithTimeout(ctx, m.opts.Timeout)
	defer cancel()

	if platform, err := m.client.GetPlatform(infoCtx); err == nil {
		m.logger.Info().Str("ip", m.device.IP).Str("platform", platform).Msg("Device platform")
	}

	if name, err := m.client.GetDeviceName(infoCtx); err == nil {
		m.logger.Info().Str("ip", m.device.IP).Str("device_name", name).Msg("Device name")
	}

	if fw, err := m.client.GetFirmwareVersion(infoCtx); err == nil {
		m.logger.Info().Str("ip", m.device.IP).Str("firmware", fw).Msg("Firmware version")
	}
}

// ConnectWithRetry calls Connect up to MaxAttempts times with exponential
// backoff. Exhaustion is terminal for the device.
func (m *Manager) ConnectWithRetry(ctx context.Context) error {
	for attempt := 0; attempt < m.opts.MaxAttempts; attempt++ {
		err := m.Connect(ctx)
		if err == nil {
			return nil
		}

		if attempt+1 == m.opts.MaxAttempts {
			if m.opts.PingPacketSize > 0 {
				// Out-of-band liveness distinguishes a dead host from a
				// hung protocol stack in the failure log.
				alive, perr := m.Ping(ctx)

				m.logger.Error().
					Err(err).
					Str("ip", m.device.IP).
					Bool("host_alive", alive && perr == nil).
					Msg("Device unreachable, giving up")
			}

			return fmt.Errorf("%w: device %s unreachable after %d attempts: %w",
				ErrNetworkUnreachable, m.device.IP, m.opts.MaxAttempts, err)
		}

		if serr := m.backoff(ctx, attempt); serr != nil {
			return serr
		}
	}

	return ErrUnreachableCode
}

// Disconnect tears down the session. Idempotent; failures are logged only.
func (m *Manager) Disconnect() {
	if !m.connected {
		return
	}

	m.logger.Info().Str("ip", m.device.IP).Msg("Disconnecting device")

	if err := m.client.Disconnect(); err != nil {
		m.logger.Warn().Err(err).Str("ip", m.device.IP).Msg("Disconnect failed")
	}

	m.connected = false
}

// execute wraps a single transport call with the per-call deadline. The op
// runs in its own goroutine so a transport stuck past its own timeout still
// hits the deadline; the classified error is distinct per failure mode.
func (m *Manager) execute(ctx context.Context, name string, op func(context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, m.opts.Timeout+deadlineSlack)
	defer cancel()

	done := make(chan error, 1)

	go func() {
		done <- op(callCtx)
	}()

	select {
	case err := <-done:
		if err != nil {
			return classifyTransportError(err)
		}

		return nil
	case <-callCtx.Done():
		return fmt.Errorf("%w: %w: operation %s on device %s exceeded deadline",
			ErrConnectionRefused, ErrTimeout, name, m.device.IP)
	}
}

// withRetry is the general-purpose retry envelope: it ensures the session
// is live before each attempt and retries connection-refused failures with
// backoff. Errors outside the refused class pass through untouched.
func (m *Manager) withRetry(ctx context.Context, name string, op func(context.Context) error) error {
	for attempt := 0; attempt < m.opts.MaxAttempts; attempt++ {
		err := m.attempt(ctx, op)
		if err == nil {
			return nil
		}

		if !errors.Is(err, ErrConnectionRefused) {
			return err
		}

		m.connected = false

		m.logger.Warn().
			Err(err).
			Str("ip", m.device.IP).
			Str("operation", name).
			Int("attempt", attempt+1).
			Int("max_attempts", m.opts.MaxAttempts).
			Msg("Device operation attempt failed")

		if attempt+1 == m.opts.MaxAttempts {
			return fmt.Errorf("%w: operation %s on device %s failed after %d attempts: %w",
				ErrNetworkUnreachable, name, m.device.IP, m.opts.MaxAttempts, err)
		}

		if serr := m.backoff(ctx, attempt); serr != nil {
			return serr
		}
	}

	return ErrUnreachableCode
}

func (m *Manager) attempt(ctx context.Context, op func(context.Context) error) error {
	if !m.connected {
		if err := m.Connect(ctx); err != nil {
			return err
		}
	}

	return op(ctx)
}

// backoff waits min(2^attempt + uniform(0,3), 30) seconds, honoring
// cancellation through the clock.
func (m *Manager) backoff(ctx context.Context, attempt int) error {
	delay := time.Duration(1<<uint(attempt))*time.Second +
		time.Duration(rand.Float64()*jitterSpanSeconds*float64(time.Second))
	if delay > maxBackoff {
		delay = maxBackoff
	}

	m.logger.Debug().
		Str("ip", m.device.IP).
		Dur("delay", delay).
		Int("attempt", attempt+1).
		Msg("Backing off before retry")

	return m.clock.Sleep(ctx, delay)
}

// GetAttendances retrieves the device's punch set with double-read
// verification. Count mismatches are retried in their own loop, distinct
// from the transport retry, because they reflect data instability rather
// than connectivity.
func (m *Manager) GetAttendances(ctx context.Context) ([]terminal.RawPunch, error) {
	var lastErr error

	for attempt := 0; attempt < m.opts.MaxAttempts; attempt++ {
		var punches []terminal.RawPunch

		err := m.withRetry(ctx, "get_attendances", func(opCtx context.Context) error {
			var opErr error
			punches, opErr = m.readAttendancesVerified(opCtx)

			return opErr
		})
		if err == nil {
			return punches, nil
		}

		if !errors.Is(err, ErrAttendanceMismatch) {
			return nil, err
		}

		lastErr = err

		m.logger.Warn().
			Err(err).
			Str("ip", m.device.IP).
			Int("attempt", attempt+1).
			Msg("Attendance verification failed")

		if attempt+1 == m.opts.MaxAttempts {
			break
		}

		if serr := m.backoff(ctx, attempt); serr != nil {
			return nil, serr
		}
	}

	return nil, fmt.Errorf("%w: device %s: %w", ErrObtainAttendances, m.device.IP, lastErr)
}

// readAttendancesVerified performs one full verification round: read, check
// against the reported record count, read again, check count stability,
// then optionally clear on-device storage.
func (m *Manager) readAttendancesVerified(ctx context.Context) ([]terminal.RawPunch, error) {
	var punches []terminal.RawPunch

	err := m.execute(ctx, "get_attendance", func(opCtx context.Context) error {
		var opErr error
		punches, opErr = m.client.GetAttendance(opCtx)

		return opErr
	})
	if err != nil {
		return nil, err
	}

	records := m.client.Records()

	m.logger.Debug().
		Str("ip", m.device.IP).
		Int("device_records", records).
		Int("retrieved", len(punches)).
		Msg("First attendance read")

	if records != len(punches) {
		return nil, fmt.Errorf("%w: device reported %d, retrieved %d",
			ErrAttendanceMismatch, records, len(punches))
	}

	err = m.execute(ctx, "get_attendance", func(opCtx context.Context) error {
		_, opErr := m.client.GetAttendance(opCtx)

		return opErr
	})
	if err != nil {
		return nil, err
	}

	newRecords := m.client.Records()

	m.logger.Debug().
		Str("ip", m.device.IP).
		Int("first_read", records).
		Int("second_read", newRecords).
		Msg("Second attendance read")

	if newRecords != records {
		return nil, fmt.Errorf("%w: consecutive reads returned %d then %d",
			ErrAttendanceMismatch, records, newRecords)
	}

	if m.opts.ClearAttendance {
		m.logger.Debug().Str("ip", m.device.IP).Msg("Clearing device attendance storage")

		if err := m.execute(ctx, "clear_attendance", m.client.ClearAttendance); err != nil {
			m.logger.Error().Err(err).Str("ip", m.device.IP).Msg("Could not clear attendances")
			return nil, err
		}
	}

	return punches, nil
}

// UpdateTime writes the local time to the device and validates the
// pre-update device clock against local time. The validation is a coarse
// liveness signal for the device's clock battery, not proof the write took.
func (m *Manager) UpdateTime(ctx context.Context) error {
	return m.withRetry(ctx, "update_time", func(opCtx context.Context) error {
		var deviceTime time.Time

		err := m.execute(opCtx, "get_time", func(callCtx context.Context) error {
			var opErr error
			deviceTime, opErr = m.client.GetTime(callCtx)

			return opErr
		})
		if err != nil {
			return err
		}

		now := m.clock.Now()

		m.logger.Debug().
			Str("ip", m.device.IP).
			Time("device_time", deviceTime).
			Time("local_time", now).
			Msg("Updating device time")

		err = m.execute(opCtx, "set_time", func(callCtx context.Context) error {
			return m.client.SetTime(callCtx, now)
		})
		if err != nil {
			return err
		}

		if err := validateTime(deviceTime, m.clock.Now()); err != nil {
			return fmt.Errorf("device %s: %w", m.device.IP, err)
		}

		return nil
	})
}

// validateTime fails when the device clock drifted from local time: any
// hour difference, minute drift of five or more, or a different date.
func validateTime(deviceTime, now time.Time) error {
	if deviceTime.Hour() != now.Hour() ||
		absInt(deviceTime.Minute()-now.Minute()) >= minuteDriftLimit ||
		deviceTime.Day() != now.Day() ||
		deviceTime.Month() != now.Month() ||
		deviceTime.Year() != now.Year() {
		return ErrOutdatedTime
	}

	return nil
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// RestartDevice reboots the terminal through the retry envelope.
func (m *Manager) RestartDevice(ctx context.Context) error {
	m.logger.Info().Str("ip", m.device.IP).Msg("Restarting device")

	return m.withRetry(ctx, "restart", func(opCtx context.Context) error {
		return m.execute(opCtx, "restart", m.client.Restart)
	})
}

// ClearAttendances wipes on-device punch storage through the retry envelope.
func (m *Manager) ClearAttendances(ctx context.Context) error {
	return m.withRetry(ctx, "clear_attendance", func(opCtx context.Context) error {
		return m.execute(opCtx, "clear_attendance", m.client.ClearAttendance)
	})
}

// UpdateDeviceName reads the device's reported name, sanitizes it, falls
// back to the serial number when blank, and rewrites the registry record.
// The returned name is what was stored.
func (m *Manager) UpdateDeviceName(ctx context.Context, store registry.Store) (string, error) {
	var name string

	err := m.withRetry(ctx, "update_device_name", func(opCtx context.Context) error {
		err := m.execute(opCtx, "get_device_name", func(callCtx context.Context) error {
			var opErr error
			name, opErr = m.client.GetDeviceName(callCtx)

			return opErr
		})
		if err != nil {
			return err
		}

		name = strings.ReplaceAll(name, " ", "")

		if name == "" {
			name = m.nameFromSerial(opCtx)
		}

		return store.UpdateDeviceName(opCtx, m.device.IP, name)
	})
	if err != nil {
		return "", err
	}

	return name, nil
}

// nameFromSerial resolves a blank device name from the serial number.
// Serial lookup failures fall back to a placeholder; this path only logs.
func (m *Manager) nameFromSerial(ctx context.Context) string {
	var serial string

	err := m.execute(ctx, "get_serial_number", func(callCtx context.Context) error {
		var opErr error
		serial, opErr = m.client.GetSerialNumber(callCtx)

		return opErr
	})
	if err != nil {
		m.logger.Error().Err(err).Str("ip", m.device.IP).Msg("Could not resolve device name from serial")
		return nameFallback
	}

	if override, ok := serialNameOverrides[serial]; ok {
		return override
	}

	return serial
}
