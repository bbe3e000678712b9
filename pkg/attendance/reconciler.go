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

// Package attendance validates and transforms raw punches into storage
// records and persists them to the per-device and global logs.
package attendance

import (
	"errors"
	"fmt"
	"time"

	"github.com/clockops/fleetsync/pkg/logger"
	"github.com/clockops/fleetsync/pkg/models"
	"github.com/clockops/fleetsync/pkg/terminal"
)

// ErrUnknownStatusCode reports a raw status code missing from the
// configured mapping. A hard error: no silent default label.
var ErrUnknownStatusCode = errors.New("unspecified attendance status code")

// Reconciler turns raw punches into validated storage records.
type Reconciler struct {
	statusTable map[int]string
	logger      logger.Logger
}

// NewReconciler builds a reconciler over the configured status-code table.
func NewReconciler(statusTable map[int]string, log logger.Logger) *Reconciler {
	return &Reconciler{
		statusTable: statusTable,
		logger:      log,
	}
}

// Format transforms raw punches for one device: user ids zero-padded,
// status codes mapped to labels, timestamps checked against the anomaly
// predicates relative to now. Anomalous punches are logged and kept so
// downstream auditing can spot clock-skew or stale-battery artifacts.
// An unmapped status code aborts the whole batch.
func (r *Reconciler) Format(raw []terminal.RawPunch, deviceID int, now time.Time) ([]models.Punch, error) {
	punches := make([]models.Punch, 0, len(raw))

	for _, rp := range raw {
		label, ok := r.statusTable[rp.Status]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrUnknownStatusCode, rp.Status)
		}

		punch := models.Punch{
			UserID:     models.FormatUserID(rp.UserID),
			Timestamp:  rp.Timestamp,
			SequenceID: deviceID,
			Status:     label,
		}

		if punch.IsThreeMonthsOld(now) || punch.IsInTheFuture(now) {
			punch.Anomalous = true

			r.logger.Warn().
				Str("punch", punch.Line()).
				Time("retrieved_at", now).
				Msg("Anomalous punch timestamp")
		}

		punches = append(punches, punch)
	}

	return punches, nil
}
