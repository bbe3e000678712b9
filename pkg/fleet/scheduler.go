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

// Package fleet fans a device operation out over the registry with a
// bounded worker pool and collects per-device outcomes. One slow or dead
// terminal never blocks the rest of the fleet; every selected device ends
// the run with exactly one result entry.
package fleet

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/clockops/fleetsync/pkg/attendance"
	"github.com/clockops/fleetsync/pkg/config"
	"github.com/clockops/fleetsync/pkg/connection"
	"github.com/clockops/fleetsync/pkg/logger"
	"github.com/clockops/fleetsync/pkg/models"
	"github.com/clockops/fleetsync/pkg/progress"
	"github.com/clockops/fleetsync/pkg/registry"
	"github.com/clockops/fleetsync/pkg/terminal"
)

// ProgressFunc receives completion updates as device tasks finish. It is
// called from worker goroutines and must be safe for concurrent use.
type ProgressFunc func(percent int, ip string, processed, total int)

// deviceTask runs one operation against a connected device. The returned
// count feeds DeviceResult.AttendanceCount; zero for non-attendance ops.
type deviceTask func(ctx context.Context, mgr *connection.Manager, device *models.Device) (int, error)

// Scheduler executes fleet-wide operations over the device registry.
type Scheduler struct {
	store      registry.Store
	dialer     terminal.Dialer
	cfg        *config.Config
	clock      connection.Clock
	tracker    *progress.Tracker
	reconciler *attendance.Reconciler
	sink       *attendance.Sink
	onProgress ProgressFunc
	logger     logger.Logger
}

// NewScheduler wires the scheduler over a registry store and a transport
// dialer. A nil clock selects the wall clock.
func NewScheduler(store registry.Store, dialer terminal.Dialer, cfg *config.Config, clock connection.Clock, log logger.Logger) *Scheduler {
	if clock == nil {
		clock = connection.NewClock()
	}

	return &Scheduler{
		store:      store,
		dialer:     dialer,
		cfg:        cfg,
		clock:      clock,
		tracker:    progress.NewTracker(),
		reconciler: attendance.NewReconciler(cfg.AttendanceStatus.Table(), log),
		sink:       attendance.NewSink(cfg.OutputDir, cfg.BackupDir, log),
		logger:     log,
	}
}

// Tracker exposes the run's progress counters.
func (s *Scheduler) Tracker() *progress.Tracker {
	return s.tracker
}

// OnProgress registers the completion callback. Set it before starting a
// run; it is not safe to swap mid-run.
func (s *Scheduler) OnProgress(fn ProgressFunc) {
	s.onProgress = fn
}

// run loads the registry, filters the selection and fans the task out over
// a bounded worker pool. An empty ips selection means the whole fleet.
func (s *Scheduler) run(ctx context.Context, name string, ips []string, unattended bool, task deviceTask) (models.FleetResult, error) {
	devices, err := s.store.Devices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load device registry: %w", err)
	}

	selected := filterDevices(devices, ips, unattended)

	s.tracker.Reset()
	s.tracker.SetTotal(len(selected))

	runID := uuid.New().String()
	log := s.logger.With().Str("run_id", runID).Str("operation", name).Logger()

	log.Info().
		Int("selected", len(selected)).
		Int("registry_size", len(devices)).
		Bool("unattended", unattended).
		Msg("Starting fleet run")

	results := make(models.FleetResult, len(selected))

	if len(selected) == 0 {
		return results, nil
	}

	// A pool of at least one worker regardless of config: every selected
	// device must end the run with a result entry.
	workers := s.cfg.Workers
	if workers < 1 {
		workers = 1
	}

	if workers > len(selected) {
		workers = len(selected)
	}

	work := make(chan *models.Device, len(selected))

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)

	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()

			for device := range work {
				result := s.runDevice(ctx, device, unattended, task)

				mu.Lock()
				results[device.IP] = result
				mu.Unlock()

				processed := s.tracker.IncrementProcessed()

				log.Info().
					Str("ip", device.IP).
					Int("processed", processed).
					Int("total", s.tracker.Total()).
					Int("percent", s.tracker.Progress()).
					Bool("failed", result.Failed()).
					Msg("Device task finished")

				if s.onProgress != nil {
					s.onProgress(s.tracker.Progress(), device.IP, processed, s.tracker.Total())
				}
			}
		}()
	}

	for _, device := range selected {
		work <- device
	}

	close(work)
	wg.Wait()

	log.Info().
		Int("devices", len(results)).
		Int("failures", countFailures(results)).
		Msg("Fleet run finished")

	return results, nil
}

// runDevice executes the task for one device, containing panics so a bad
// device entry cannot take down the worker.
func (s *Scheduler) runDevice(ctx context.Context, device *models.Device, unattended bool, task deviceTask) (result *models.DeviceResult) {
	result = &models.DeviceResult{
		Point:        device.Point,
		DistrictName: device.DistrictName,
		ID:           device.ID,
	}

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%w: device %s: %v", ErrDeviceTaskPanic, device.IP, r)
			result.Err = err.Error()

			s.logger.Error().
				Err(err).
				Str("ip", device.IP).
				Msg("Device task panicked")
		}
	}()

	if !device.Communication.NetworkReachable() {
		err := fmt.Errorf("%w: device %s uses %s", ErrUnsupportedTransport, device.IP, device.Communication)
		result.Err = err.Error()

		s.logger.Warn().
			Str("ip", device.IP).
			Str("communication", string(device.Communication)).
			Msg("Skipping device without network transport")

		return result
	}

	client, err := s.dialer(device, s.cfg.Port, s.cfg.Network.Timeout())
	if err != nil {
		result.Err = fmt.Errorf("failed to create transport for device %s: %w", device.IP, err).Error()
		return result
	}

	mgr := connection.NewManager(device, client, connection.Options{
		Timeout:         s.cfg.Network.Timeout(),
		MaxAttempts:     s.cfg.Network.RetryAttempts,
		ClearAttendance: s.clearFlag(unattended),
		PingPacketSize:  s.cfg.Network.PingPacketSize,
	}, s.clock, s.logger)

	if err := mgr.ConnectWithRetry(ctx); err != nil {
		result.Err = err.Error()
		return result
	}

	defer mgr.Disconnect()

	count, err := task(ctx, mgr, device)
	if err != nil {
		result.Err = err.Error()
		return result
	}

	result.AttendanceCount = count

	return result
}

func (s *Scheduler) clearFlag(unattended bool) bool {
	if unattended {
		return s.cfg.ClearAttendanceService
	}

	return s.cfg.ClearAttendance
}

// filterDevices applies the ip selection and the active flag. Inactive
// devices are still processed in unattended runs so overnight sweeps cover
// units operators disabled during the day.
func filterDevices(devices []*models.Device, ips []string, unattended bool) []*models.Device {
	var ipSet map[string]struct{}

	if len(ips) > 0 {
		ipSet = make(map[string]struct{}, len(ips))
		for _, ip := range ips {
			ipSet[ip] = struct{}{}
		}
	}

	selected := make([]*models.Device, 0, len(devices))

	for _, device := range devices {
		if ipSet != nil {
			if _, ok := ipSet[device.IP]; !ok {
				continue
			}
		}

		if !device.Active && !unattended {
			continue
		}

		selected = append(selected, device)
	}

	return selected
}

func countFailures(results models.FleetResult) int {
	failures := 0

	for _, r := range results {
		if r.Failed() {
			failures++
		}
	}

	return failures
}
