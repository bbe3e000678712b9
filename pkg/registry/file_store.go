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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/clockops/fleetsync/pkg/logger"
	"github.com/clockops/fleetsync/pkg/models"
)

// FileStore keeps the fleet in a line-oriented flat file, one 8-field
// record per line. Single-record rewrites are atomic: the whole file is
// rewritten to a temp file and renamed into place under the store mutex.
type FileStore struct {
	path   string
	mu     sync.Mutex
	logger logger.Logger
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a store backed by the registry file at path.
func NewFileStore(path string, log logger.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: log,
	}
}

func (s *FileStore) Devices(_ context.Context) ([]*models.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.readLines()
	if err != nil {
		return nil, err
	}

	devices := make([]*models.Device, 0, len(lines))

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		device, err := models.ParseDeviceLine(line)
		if err != nil {
			s.logger.Warn().Err(err).Str("line", line).Msg("Skipping unparseable registry line")
			continue
		}

		devices = append(devices, device)
	}

	return devices, nil
}

func (s *FileStore) UpdateBatteryFailing(ctx context.Context, ip string, failing bool) error {
	return s.rewriteRecord(ctx, ip, func(d *models.Device) {
		d.BatteryFailing = failing
	})
}

func (s *FileStore) UpdateDeviceName(ctx context.Context, ip, name string) error {
	return s.rewriteRecord(ctx, ip, func(d *models.Device) {
		if d.ModelName != name {
			s.logger.Debug().
				Str("ip", ip).
				Str("old_name", d.ModelName).
				Str("new_name", name).
				Msg("Replacing device name")

			d.ModelName = name
		}
	})
}

// rewriteRecord applies mutate to the record with the given IP and rewrites
// the file. Lines that do not parse are preserved verbatim.
func (s *FileStore) rewriteRecord(_ context.Context, ip string, mutate func(*models.Device)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, err := s.readLines()
	if err != nil {
		return err
	}

	found := false
	out := make([]string, 0, len(lines))

	for _, line := range lines {
		device, err := models.ParseDeviceLine(line)
		if err != nil || device.IP != ip {
			out = append(out, line)
			continue
		}

		mutate(device)
		out = append(out, device.Line())

		found = true
	}

	if !found {
		return fmt.Errorf("%w: %s", ErrDeviceNotFound, ip)
	}

	return s.writeLines(out)
}

func (s *FileStore) readLines() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry '%s': %w", s.path, err)
	}

	raw := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")

	lines := make([]string, 0, len(raw))

	for _, line := range raw {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines = append(lines, strings.TrimSpace(line))
	}

	return lines, nil
}

func (s *FileStore) writeLines(lines []string) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".registry-*")
	if err != nil {
		return fmt.Errorf("failed to create temp registry file: %w", err)
	}

	tmpName := tmp.Name()

	_, err = tmp.WriteString(strings.Join(lines, "\n") + "\n")
	if err == nil {
		err = tmp.Close()
	} else {
		_ = tmp.Close()
	}

	if err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp registry file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace registry file: %w", err)
	}

	return nil
}
