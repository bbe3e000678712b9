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

// Package config loads and validates the fleet sync configuration. The
// configuration is an explicit struct constructed once at process start and
// handed to the scheduler, connection managers and reconciler; there is no
// ambient global.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/clockops/fleetsync/pkg/logger"
)

const (
	defaultTimeoutSeconds = 15
	defaultRetryAttempts  = 3
	defaultWorkers        = 10
	defaultPort           = 4370
	defaultPingSize       = 64
	defaultFileName       = "attendances"
)

var (
	ErrNegativeTimeout  = errors.New("network timeout must be positive")
	ErrNegativeRetries  = errors.New("retry attempts must be positive")
	ErrNegativeWorkers  = errors.New("worker pool size must be positive")
	ErrMissingRegistry  = errors.New("registry path is required")
	ErrBlankStatusLabel = errors.New("attendance status labels must not be blank")
)

// NetworkConfig holds the per-device transport settings.
type NetworkConfig struct {
	TimeoutSeconds int `json:"timeout_seconds"`
	RetryAttempts  int `json:"retry_attempts"`
	PingPacketSize int `json:"ping_packet_size"`
}

// Timeout returns the configured per-call transport timeout.
func (n *NetworkConfig) Timeout() time.Duration {
	return time.Duration(n.TimeoutSeconds) * time.Second
}

// StatusConfig maps raw terminal status codes to punch labels.
type StatusConfig struct {
	Fingerprint string `json:"fingerprint"`
	Face        string `json:"face"`
	Card        string `json:"card"`
}

// Table expands the label config into the raw-code mapping used by the
// reconciler. Codes 0, 2 and 4 are all card reads on the supported firmware.
func (s *StatusConfig) Table() map[int]string {
	return map[int]string{
		1:  s.Fingerprint,
		15: s.Face,
		0:  s.Card,
		2:  s.Card,
		4:  s.Card,
	}
}

// Config is the process-wide fleet sync configuration.
type Config struct {
	RegistryPath       string        `json:"registry_path"`
	OutputDir          string        `json:"output_dir"`
	BackupDir          string        `json:"backup_dir,omitempty"`
	AttendanceFileName string        `json:"attendance_file_name"`
	Port               int           `json:"port"`
	Workers            int           `json:"workers"`
	Network            NetworkConfig `json:"network"`
	AttendanceStatus   StatusConfig  `json:"attendance_status"`
	// ClearAttendance clears on-device storage after a verified retrieval in
	// interactive runs; ClearAttendanceService is the unattended-mode flag.
	ClearAttendance        bool           `json:"clear_attendance"`
	ClearAttendanceService bool           `json:"clear_attendance_service"`
	Logging                *logger.Config `json:"logging,omitempty"`
}

// Default returns a configuration with every tunable at its default.
func Default() *Config {
	return &Config{
		AttendanceFileName: defaultFileName,
		Port:               defaultPort,
		Workers:            defaultWorkers,
		Network: NetworkConfig{
			TimeoutSeconds: defaultTimeoutSeconds,
			RetryAttempts:  defaultRetryAttempts,
			PingPacketSize: defaultPingSize,
		},
		AttendanceStatus: StatusConfig{
			Fingerprint: "fingerprint",
			Face:        "face",
			Card:        "card",
		},
		Logging: logger.DefaultConfig(),
	}
}

// ApplyDefaults fills zero-valued tunables in place.
func (c *Config) ApplyDefaults() {
	def := Default()

	if c.AttendanceFileName == "" {
		c.AttendanceFileName = def.AttendanceFileName
	}

	if c.Port == 0 {
		c.Port = def.Port
	}

	if c.Workers == 0 {
		c.Workers = def.Workers
	}

	if c.Network.TimeoutSeconds == 0 {
		c.Network.TimeoutSeconds = def.Network.TimeoutSeconds
	}

	if c.Network.RetryAttempts == 0 {
		c.Network.RetryAttempts = def.Network.RetryAttempts
	}

	if c.Network.PingPacketSize == 0 {
		c.Network.PingPacketSize = def.Network.PingPacketSize
	}

	if c.AttendanceStatus.Fingerprint == "" {
		c.AttendanceStatus.Fingerprint = def.AttendanceStatus.Fingerprint
	}

	if c.AttendanceStatus.Face == "" {
		c.AttendanceStatus.Face = def.AttendanceStatus.Face
	}

	if c.AttendanceStatus.Card == "" {
		c.AttendanceStatus.Card = def.AttendanceStatus.Card
	}

	if c.Logging == nil {
		c.Logging = def.Logging
	}
}

// Validate rejects configurations no device task could run under.
func (c *Config) Validate() error {
	if c.RegistryPath == "" {
		return ErrMissingRegistry
	}

	if c.Network.TimeoutSeconds < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeTimeout, c.Network.TimeoutSeconds)
	}

	if c.Network.RetryAttempts < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeRetries, c.Network.RetryAttempts)
	}

	if c.Workers < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeWorkers, c.Workers)
	}

	if c.AttendanceStatus.Fingerprint == "" || c.AttendanceStatus.Face == "" || c.AttendanceStatus.Card == "" {
		return ErrBlankStatusLabel
	}

	return nil
}
