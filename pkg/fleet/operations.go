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

package fleet

import (
	"context"
	"errors"

	"github.com/clockops/fleetsync/pkg/connection"
	"github.com/clockops/fleetsync/pkg/models"
)

// SyncAttendances pulls, verifies and stores the punch logs of the selected
// devices. An empty ips selection covers the whole fleet; unattended runs
// include inactive devices and follow the service-mode clear flag.
func (s *Scheduler) SyncAttendances(ctx context.Context, ips []string, unattended bool) (models.FleetResult, error) {
	return s.run(ctx, "sync_attendances", ips, unattended, s.syncDeviceAttendances)
}

func (s *Scheduler) syncDeviceAttendances(ctx context.Context, mgr *connection.Manager, device *models.Device) (int, error) {
	raw, err := mgr.GetAttendances(ctx)
	if err != nil {
		return 0, err
	}

	punches, err := s.reconciler.Format(raw, device.ID, s.clock.Now())
	if err != nil {
		return 0, err
	}

	if err := s.sink.SaveDevice(punches, device, s.clock.Now()); err != nil {
		return 0, err
	}

	if err := s.sink.SaveGlobal(punches, s.cfg.AttendanceFileName); err != nil {
		return 0, err
	}

	// Registry name refresh is best effort: the punches are already on disk
	// and a stale display name must not fail the device.
	if _, err := mgr.UpdateDeviceName(ctx, s.store); err != nil {
		s.logger.Warn().
			Err(err).
			Str("ip", device.IP).
			Msg("Device name refresh failed")
	}

	return len(punches), nil
}

// SyncTime pushes the host clock to the selected devices and verifies the
// write took. Devices whose clock stays outdated get their battery-failing
// flag raised in the registry for the maintenance round.
func (s *Scheduler) SyncTime(ctx context.Context, ips []string, unattended bool) (models.FleetResult, error) {
	return s.run(ctx, "sync_time", ips, unattended, s.syncDeviceTime)
}

func (s *Scheduler) syncDeviceTime(ctx context.Context, mgr *connection.Manager, device *models.Device) (int, error) {
	err := mgr.UpdateTime(ctx)
	if err == nil {
		return 0, nil
	}

	if errors.Is(err, connection.ErrOutdatedTime) {
		if serr := s.store.UpdateBatteryFailing(ctx, device.IP, true); serr != nil {
			s.logger.Error().
				Err(serr).
				Str("ip", device.IP).
				Msg("Failed to record failing battery")
		} else {
			s.logger.Warn().
				Str("ip", device.IP).
				Msg("Device clock stayed outdated; battery flagged")
		}
	}

	return 0, err
}

// RestartDevices reboots the selected devices.
func (s *Scheduler) RestartDevices(ctx context.Context, ips []string, unattended bool) (models.FleetResult, error) {
	return s.run(ctx, "restart_devices", ips, unattended,
		func(ctx context.Context, mgr *connection.Manager, _ *models.Device) (int, error) {
			return 0, mgr.RestartDevice(ctx)
		})
}

// ClearAttendances wipes on-device punch storage for the selected devices
// without retrieving it first. Deliberately a separate operation from the
// post-retrieval clear the sync flags control.
func (s *Scheduler) ClearAttendances(ctx context.Context, ips []string, unattended bool) (models.FleetResult, error) {
	return s.run(ctx, "clear_attendances", ips, unattended,
		func(ctx context.Context, mgr *connection.Manager, _ *models.Device) (int, error) {
			return 0, mgr.ClearAttendances(ctx)
		})
}
