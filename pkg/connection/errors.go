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

package connection

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrConnectionRefused marks a transient transport failure. The retry
	// wrapper backs off and retries anything wrapping it.
	ErrConnectionRefused = errors.New("connection refused")

	// Transport error classes carried inside ErrConnectionRefused.
	ErrInvalidPacket = errors.New("invalid packet")
	ErrTimeout       = errors.New("timed out")
	ErrMessageSize   = errors.New("message size")
	ErrNotConnected  = errors.New("socket not connected")

	// ErrNetworkUnreachable is the terminal per-device failure after the
	// retry budget is exhausted.
	ErrNetworkUnreachable = errors.New("network unreachable")

	// ErrAttendanceMismatch reports disagreement between the device's record
	// count and the retrieved punch count, or between two consecutive reads.
	ErrAttendanceMismatch = errors.New("attendance records do not match retrieved punch count")

	// ErrObtainAttendances is the terminal form of a mismatch that survived
	// every verification retry.
	ErrObtainAttendances = errors.New("could not obtain attendances")

	// ErrOutdatedTime reports a device clock that was already wrong before
	// the sync write. Terminal for the time operation; the caller infers a
	// failing battery from it.
	ErrOutdatedTime = errors.New("outdated device time")

	// ErrUnreachableCode is a defensive sentinel for violated retry-loop
	// invariants. It should never surface in practice.
	ErrUnreachableCode = errors.New("unreachable retry state")
)

// classifyTransportError normalizes a raw transport failure into a
// connection-refused error carrying one of the transport classes. The
// transport library reports conditions through its message text, so the
// classes are matched by substring, mirroring the device firmware's known
// failure strings (the 10040/10057 codes are Winsock artifacts of the
// vendor stack).
func classifyTransportError(err error) error {
	class := classOf(err)
	if class == nil {
		return fmt.Errorf("%w: %w", ErrConnectionRefused, err)
	}

	return fmt.Errorf("%w: %w: %w", ErrConnectionRefused, class, err)
}

func classOf(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}

	msg := err.Error()

	switch {
	case strings.Contains(msg, "TCP packet invalid"):
		return ErrInvalidPacket
	case strings.Contains(msg, "timed out"):
		return ErrTimeout
	case strings.Contains(msg, "10040"):
		return ErrMessageSize
	case strings.Contains(msg, "10057"):
		return ErrNotConnected
	default:
		return nil
	}
}
