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

// Package models defines the shared data types for the fleet sync engine.
package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// CommMode is the communication mode configured for a terminal.
type CommMode string

const (
	CommTCP   CommMode = "TCP"
	CommUDP   CommMode = "UDP"
	CommRS232 CommMode = "RS232"
	CommRS485 CommMode = "RS485"
)

// deviceLineFields is the number of fields in a serialized registry record.
const deviceLineFields = 8

// deviceLineSep separates fields in a serialized registry record.
const deviceLineSep = " - "

var (
	ErrInvalidCommunication = errors.New("invalid communication mode")
	ErrInvalidDeviceLine    = errors.New("invalid device record line")
)

// NetworkReachable reports whether the mode is usable over the network.
// RS232/RS485 records are configuration-only.
func (m CommMode) NetworkReachable() bool {
	return m == CommTCP || m == CommUDP
}

func parseCommMode(s string) (CommMode, error) {
	switch CommMode(s) {
	case CommTCP, CommUDP, CommRS232, CommRS485:
		return CommMode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidCommunication, s)
	}
}

// Device describes one physical terminal as recorded in the registry.
type Device struct {
	DistrictName   string   `json:"district_name"`
	ModelName      string   `json:"model_name"`
	Point          string   `json:"point"`
	IP             string   `json:"ip"`
	ID             int      `json:"id"`
	Communication  CommMode `json:"communication"`
	BatteryFailing bool     `json:"battery_failing"`
	Active         bool     `json:"active"`
}

// NewDevice validates the communication mode and builds a Device.
func NewDevice(district, model, point, ip string, id int, communication string, batteryFailing, active bool) (*Device, error) {
	mode, err := parseCommMode(communication)
	if err != nil {
		return nil, fmt.Errorf("device %s: %w", ip, err)
	}

	return &Device{
		DistrictName:   district,
		ModelName:      model,
		Point:          point,
		IP:             ip,
		ID:             id,
		Communication:  mode,
		BatteryFailing: batteryFailing,
		Active:         active,
	}, nil
}

// ParseDeviceLine parses the 8-field delimited registry line format:
// district - model - point - ip - id - communication - battery - active.
func ParseDeviceLine(line string) (*Device, error) {
	parts := strings.Split(strings.TrimSpace(line), deviceLineSep)
	if len(parts) != deviceLineFields {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidDeviceLine, deviceLineFields, len(parts))
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[4]))
	if err != nil {
		return nil, fmt.Errorf("%w: bad id %q", ErrInvalidDeviceLine, parts[4])
	}

	return NewDevice(
		parts[0], parts[1], parts[2], parts[3],
		id, parts[5],
		ParseFlag(parts[6]), ParseFlag(parts[7]),
	)
}

// Line serializes the device back to its registry record form.
func (d *Device) Line() string {
	return strings.Join([]string{
		d.DistrictName,
		d.ModelName,
		d.Point,
		d.IP,
		strconv.Itoa(d.ID),
		string(d.Communication),
		formatFlag(d.BatteryFailing),
		formatFlag(d.Active),
	}, deviceLineSep)
}

func (d *Device) String() string {
	return "Device: " + d.Line()
}

// ParseFlag interprets the registry's loose boolean encoding. The flat files
// in the field carry both English and Spanish spellings.
func ParseFlag(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "yes", "verdadero", "si":
		return true
	default:
		return false
	}
}

func formatFlag(b bool) string {
	if b {
		return "True"
	}

	return "False"
}
