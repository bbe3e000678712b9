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

package registry

import (
	"context"
	"database/sql"
	"fmt"

	// SQLite driver registration.
	_ "github.com/mattn/go-sqlite3"

	"github.com/clockops/fleetsync/pkg/logger"
	"github.com/clockops/fleetsync/pkg/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS devices (
	ip              TEXT PRIMARY KEY,
	district        TEXT NOT NULL,
	model           TEXT NOT NULL,
	point           TEXT NOT NULL,
	id              INTEGER NOT NULL,
	communication   TEXT NOT NULL,
	battery_failing INTEGER NOT NULL DEFAULT 0,
	active          INTEGER NOT NULL DEFAULT 0
);`

// SQLiteStore keeps the fleet in an embedded SQLite database. Same contract
// as FileStore; single-record updates are atomic at the statement level so
// no extra locking is needed beyond the driver's.
type SQLiteStore struct {
	db     *sql.DB
	logger logger.Logger
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLiteStore opens (and if needed initializes) the database at path.
func NewSQLiteStore(path string, log logger.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry database '%s': %w", path, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize registry schema: %w", err)
	}

	return &SQLiteStore{db: db, logger: log}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Devices(ctx context.Context) ([]*models.Device, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT district, model, point, ip, id, communication, battery_failing, active FROM devices ORDER BY ip`)
	if err != nil {
		return nil, fmt.Errorf("failed to query devices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var devices []*models.Device

	for rows.Next() {
		var (
			district, model, point, ip, communication string
			id                                        int
			batteryFailing, active                    bool
		)

		if err := rows.Scan(&district, &model, &point, &ip, &id, &communication, &batteryFailing, &active); err != nil {
			return nil, fmt.Errorf("failed to scan device row: %w", err)
		}

		device, err := models.NewDevice(district, model, point, ip, id, communication, batteryFailing, active)
		if err != nil {
			s.logger.Warn().Err(err).Str("ip", ip).Msg("Skipping device row with invalid communication mode")
			continue
		}

		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate device rows: %w", err)
	}

	return devices, nil
}

func (s *SQLiteStore) UpdateBatteryFailing(ctx context.Context, ip string, failing bool) error {
	return s.updateField(ctx, ip, `UPDATE devices SET battery_failing = ? WHERE ip = ?`, failing)
}

func (s *SQLiteStore) UpdateDeviceName(ctx context.Context, ip, name string) error {
	return s.updateField(ctx, ip, `UPDATE devices SET model = ? WHERE ip = ?`, name)
}

func (s *SQLiteStore) updateField(ctx context.Context, ip, query string, value interface{}) error {
	res, err := s.db.ExecContext(ctx, query, value, ip)
	if err != nil {
		return fmt.Errorf("failed to update device %s: %w", ip, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update of device %s: %w", ip, err)
	}

	if n == 0 {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, ip)
	}

	return nil
}

// Insert adds or replaces one device record. Used by the importer and tests.
func (s *SQLiteStore) Insert(ctx context.Context, d *models.Device) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO devices (ip, district, model, point, id, communication, battery_failing, active)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		d.IP, d.DistrictName, d.ModelName, d.Point, d.ID, string(d.Communication), d.BatteryFailing, d.Active)
	if err != nil {
		return fmt.Errorf("failed to insert device %s: %w", d.IP, err)
	}

	return nil
}
