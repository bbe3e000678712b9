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

//go:generate mockgen -destination=mock_registry.go -package=registry github.com/clockops/fleetsync/pkg/registry Store

// Package registry persists the device fleet records. The store is shared
// mutable state: multiple device tasks may rewrite fields of the same record
// concurrently, so every read-modify-write runs under the store's own lock.
package registry

import (
	"context"
	"errors"

	"github.com/clockops/fleetsync/pkg/models"
)

// ErrDeviceNotFound is returned when a targeted update names an unknown IP.
var ErrDeviceNotFound = errors.New("device not found in registry")

// Store is the keyed device store consumed by the fleet scheduler.
type Store interface {
	// Devices returns the full device set. Loaded fresh at the start of each
	// fleet operation, never cached across operations.
	Devices(ctx context.Context) ([]*models.Device, error)

	// UpdateBatteryFailing rewrites the battery flag of one record.
	UpdateBatteryFailing(ctx context.Context, ip string, failing bool) error

	// UpdateDeviceName rewrites the stored name of one record. The reported
	// device name lives in the model field of the registry line.
	UpdateDeviceName(ctx context.Context, ip, name string) error
}
