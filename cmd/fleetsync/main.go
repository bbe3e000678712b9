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

package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/clockops/fleetsync/pkg/config"
	"github.com/clockops/fleetsync/pkg/fleet"
	"github.com/clockops/fleetsync/pkg/logger"
	"github.com/clockops/fleetsync/pkg/models"
	"github.com/clockops/fleetsync/pkg/registry"
	"github.com/clockops/fleetsync/pkg/terminal"
)

var (
	errFailedToLoadConfig = fmt.Errorf("failed to load config")
	errUnknownOperation   = fmt.Errorf("unknown operation")
	errDevicesFailed      = fmt.Errorf("one or more devices failed")
	errNoDriversLinked    = fmt.Errorf("no terminal drivers linked into this binary")
	errNoDriverSelected   = fmt.Errorf("no terminal driver selected")
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	configPath := pflag.String("config", "/etc/fleetsync/fleetsync.json", "Path to fleetsync config file")
	op := pflag.String("op", "attendance", "Operation to run: attendance, time, restart, clear")
	ips := pflag.StringSlice("ips", nil, "Restrict the run to these device IPs (default: whole fleet)")
	unattended := pflag.Bool("unattended", false, "Service mode: include inactive devices, use the service clear flag")
	driver := pflag.String("driver", "", "Terminal protocol driver (required; see linked drivers in the error output)")
	pflag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx, *configPath)
	if err != nil {
		return fmt.Errorf("%w: %w", errFailedToLoadConfig, err)
	}

	mainLogger, err := logger.NewComponent("fleetsync", cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	dialer, err := newDialer(*driver)
	if err != nil {
		return err
	}

	store, err := newStore(cfg.RegistryPath, mainLogger)
	if err != nil {
		return err
	}

	scheduler := fleet.NewScheduler(store, dialer, cfg, nil, mainLogger)
	scheduler.OnProgress(func(percent int, ip string, processed, total int) {
		fmt.Printf("[%3d%%] %d/%d %s\n", percent, processed, total, ip)
	})

	results, err := dispatch(ctx, scheduler, *op, *ips, *unattended)
	if err != nil {
		return err
	}

	printSummary(os.Stdout, results, *op)

	if failures := failedDevices(results); len(failures) > 0 {
		return fmt.Errorf("%w: %s", errDevicesFailed, strings.Join(failures, ", "))
	}

	return nil
}

func dispatch(ctx context.Context, s *fleet.Scheduler, op string, ips []string, unattended bool) (models.FleetResult, error) {
	switch op {
	case "attendance":
		return s.SyncAttendances(ctx, ips, unattended)
	case "time":
		return s.SyncTime(ctx, ips, unattended)
	case "restart":
		return s.RestartDevices(ctx, ips, unattended)
	case "clear":
		return s.ClearAttendances(ctx, ips, unattended)
	default:
		return nil, fmt.Errorf("%w: %q (want attendance, time, restart or clear)", errUnknownOperation, op)
	}
}

// newDialer resolves the protocol driver. The wire codec links in from
// outside this module, so a bare binary has none registered; the error
// says so instead of naming a driver that was never there.
func newDialer(name string) (terminal.Dialer, error) {
	linked := terminal.Drivers()

	if name == "" {
		if len(linked) == 0 {
			return nil, errNoDriversLinked
		}

		return nil, fmt.Errorf("%w (linked: %s)", errNoDriverSelected, strings.Join(linked, ", "))
	}

	if len(linked) == 0 {
		return nil, fmt.Errorf("%w (wanted %q)", errNoDriversLinked, name)
	}

	return terminal.Driver(name)
}

// newStore picks the registry backend from the path extension: SQLite for
// .db/.sqlite files, the line-oriented text store for everything else.
func newStore(path string, log logger.Logger) (registry.Store, error) {
	switch filepath.Ext(path) {
	case ".db", ".sqlite", ".sqlite3":
		return registry.NewSQLiteStore(path, log)
	default:
		return registry.NewFileStore(path, log), nil
	}
}

// printSummary writes one sorted line per device. The punch count only
// means something for the attendance operation.
func printSummary(w io.Writer, results models.FleetResult, op string) {
	ips := make([]string, 0, len(results))
	for ip := range results {
		ips = append(ips, ip)
	}

	sort.Strings(ips)

	for _, ip := range ips {
		r := results[ip]

		switch {
		case r.Failed():
			fmt.Fprintf(w, "%-15s  %-20s  FAILED: %s\n", ip, r.Point, r.Err)
		case op == "attendance":
			fmt.Fprintf(w, "%-15s  %-20s  OK (%d punches)\n", ip, r.Point, r.AttendanceCount)
		default:
			fmt.Fprintf(w, "%-15s  %-20s  OK\n", ip, r.Point)
		}
	}
}

func failedDevices(results models.FleetResult) []string {
	failures := make([]string, 0, len(results))

	for ip, r := range results {
		if r.Failed() {
			failures = append(failures, ip)
		}
	}

	sort.Strings(failures)

	return failures
}
