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

package attendance

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/clockops/fleetsync/pkg/logger"
	"github.com/clockops/fleetsync/pkg/models"
)

var (
	invalidFolderChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
	repeatedHyphens    = regexp.MustCompile(`-+`)
)

// Sink appends formatted punches to the per-device and global log files.
// The global file is shared by every device task, so appends to it are
// serialized by the sink's lock.
type Sink struct {
	baseDir   string
	backupDir string
	mu        sync.Mutex
	logger    logger.Logger
}

// NewSink writes under baseDir; backupDir, when not empty, receives a
// mirror of every per-device file.
func NewSink(baseDir, backupDir string, log logger.Logger) *Sink {
	return &Sink{
		baseDir:   baseDir,
		backupDir: backupDir,
		logger:    log,
	}
}

// SaveDevice appends the punches to the device's daily file:
// <base>/devices/<district>/<model>-<point>/<ip>_<date>_file.cro.
// A backup mirror failure is logged, not propagated; the primary write is.
func (s *Sink) SaveDevice(punches []models.Punch, device *models.Device, now time.Time) error {
	relDir := filepath.Join("devices",
		sanitizeFolderName(device.DistrictName),
		sanitizeFolderName(device.ModelName+"-"+device.Point))
	fileName := fmt.Sprintf("%s_%s_file.cro", device.IP, now.Format("2006-01-02"))

	if err := appendPunches(filepath.Join(s.baseDir, relDir), fileName, punches); err != nil {
		return fmt.Errorf("failed to save attendances for device %s: %w", device.IP, err)
	}

	if s.backupDir != "" {
		if err := appendPunches(filepath.Join(s.backupDir, relDir), fileName, punches); err != nil {
			s.logger.Error().Err(err).Str("ip", device.IP).Msg("Backup attendance write failed")
		}
	}

	return nil
}

// SaveGlobal appends the punches to the fleet-wide log <base>/<name>.txt.
func (s *Sink) SaveGlobal(punches []models.Punch, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := appendPunches(s.baseDir, name+".txt", punches); err != nil {
		return fmt.Errorf("failed to save global attendances: %w", err)
	}

	return nil
}

func appendPunches(dir, fileName string, punches []models.Punch) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %s: %w", dir, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, fileName), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", fileName, err)
	}

	var b strings.Builder

	for i := range punches {
		b.WriteString(punches[i].Line())
		b.WriteByte('\n')
	}

	_, werr := f.WriteString(b.String())
	cerr := f.Close()

	if werr != nil {
		return fmt.Errorf("failed to write %s: %w", fileName, werr)
	}

	if cerr != nil {
		return fmt.Errorf("failed to close %s: %w", fileName, cerr)
	}

	return nil
}

// sanitizeFolderName lowers the name and replaces anything outside
// [a-zA-Z0-9_-] with a hyphen, squeezing repeats and trimming the ends.
func sanitizeFolderName(name string) string {
	sanitized := invalidFolderChars.ReplaceAllString(strings.ToLower(name), "-")
	sanitized = repeatedHyphens.ReplaceAllString(sanitized, "-")

	return strings.Trim(sanitized, "-")
}
