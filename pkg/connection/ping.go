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
	"net"
	"os"
	"time"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

const (
	protocolICMP   = 1
	pingReadBuffer = 1500
)

var errNoEchoReply = errors.New("no ICMP echo reply")

// Ping runs an out-of-band ICMP echo against the device, independent of the
// transport session. A raw socket is preferred; when raw sockets are denied
// it falls back to an unprivileged datagram ICMP socket.
func (m *Manager) Ping(ctx context.Context) (bool, error) {
	size := m.opts.PingPacketSize
	if size <= 0 {
		size = 64
	}

	ok, err := pingHost(ctx, m.device.IP, size, m.opts.Timeout)
	if err != nil {
		return false, fmt.Errorf("%w: ping device %s: %w", ErrConnectionRefused, m.device.IP, err)
	}

	return ok, nil
}

func pingHost(ctx context.Context, host string, size int, timeout time.Duration) (bool, error) {
	dst := net.ParseIP(host)
	if dst == nil {
		return false, fmt.Errorf("invalid device address %q", host)
	}

	var (
		conn *icmp.PacketConn
		addr net.Addr
		err  error
	)

	conn, err = icmp.ListenPacket("ip4:icmp", "0.0.0.0")
	if err == nil {
		addr = &net.IPAddr{IP: dst}
	} else {
		// Unprivileged fallback; replies arrive on the datagram socket.
		conn, err = icmp.ListenPacket("udp4", "0.0.0.0")
		if err != nil {
			return false, fmt.Errorf("failed to open ICMP socket: %w", err)
		}

		addr = &net.UDPAddr{IP: dst}
	}

	defer func() { _ = conn.Close() }()

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	if err := conn.SetDeadline(deadline); err != nil {
		return false, fmt.Errorf("failed to set ping deadline: %w", err)
	}

	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   os.Getpid() & 0xffff,
			Seq:  1,
			Data: make([]byte, size),
		},
	}

	wb, err := msg.Marshal(nil)
	if err != nil {
		return false, fmt.Errorf("failed to marshal echo request: %w", err)
	}

	if _, err := conn.WriteTo(wb, addr); err != nil {
		return false, fmt.Errorf("failed to send echo request: %w", err)
	}

	rb := make([]byte, pingReadBuffer)

	for {
		n, _, err := conn.ReadFrom(rb)
		if err != nil {
			return false, fmt.Errorf("%w: %w", errNoEchoReply, err)
		}

		reply, err := icmp.ParseMessage(protocolICMP, rb[:n])
		if err != nil {
			continue
		}

		if reply.Type == ipv4.ICMPTypeEchoReply {
			return true, nil
		}
	}
}
