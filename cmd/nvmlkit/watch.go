/*
 * Copyright (c) 2024, the nvmlkit authors.
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
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/nvmlkit/nvmlkit/pkg/nvml"
)

// watchedEventTypes is the set of event kinds the watch command registers
// on every device that supports them.
const watchedEventTypes = nvml.EventTypeXidCriticalError |
	nvml.EventTypeClock |
	nvml.EventTypePowerSourceChange

func runWatch(flags *Flags) error {
	logger := log.WithField("run", uuid.NewString())

	lib, err := newLib(flags)
	if err != nil {
		return err
	}
	defer shutdown(lib)

	set, err := lib.NewEventSet()
	if err != nil {
		return fmt.Errorf("failed to create event set: %w", err)
	}
	defer func() {
		if err := set.Free(); err != nil && !errors.Is(err, nvml.ErrClosed) {
			logger.Errorf("failed to free event set: %v", err)
		}
	}()

	registered, err := registerDevices(lib, set, logger)
	if err != nil {
		return err
	}
	if registered == 0 {
		return fmt.Errorf("no device supports any of the watched events")
	}

	logger.Info("Starting FS watcher.")
	watcher, err := newFSWatcher(flags.DeviceDir)
	if err != nil {
		return fmt.Errorf("failed to create FS watcher: %w", err)
	}
	defer watcher.Close()

	logger.Info("Starting OS watcher.")
	sigs := newOSWatcher(syscall.SIGINT, syscall.SIGTERM)

	eventCh := make(chan nvml.EventData)
	errCh := make(chan error, 1)
	stop := make(chan struct{})
	done := make(chan struct{})
	go waitForEvents(flags.Timeout, set.Wait, eventCh, errCh, stop, done)
	// The waiter may be parked inside a native wait when the loop below
	// exits. Join it before the deferred Free and Shutdown run; freeing
	// the set or unloading the library under an in-flight wait is
	// undefined.
	defer func() {
		close(stop)
		<-done
	}()

	for {
		select {
		case data := <-eventCh:
			logEvent(logger, data)

		case err := <-errCh:
			return err

		case event := <-watcher.Events:
			if isDeviceNodeCreate(event) {
				logger.Infof("inotify: device node %s created", event.Name)
			}

		case err := <-watcher.Errors:
			logger.Errorf("inotify: %v", err)

		case s := <-sigs:
			logger.Infof("Received signal %q, shutting down.", s)
			return nil
		}
	}
}

// registerDevices subscribes every device to the watched event kinds it
// supports and returns how many devices were registered.
func registerDevices(lib *nvml.Lib, set *nvml.EventSet, logger *log.Entry) (int, error) {
	devices, err := lib.Devices()
	if err != nil {
		return 0, fmt.Errorf("failed to enumerate devices: %w", err)
	}

	registered := 0
	for i, device := range devices {
		supported, err := device.SupportedEventTypes()
		if err != nil {
			if unsupported(err) {
				logger.Infof("device %d does not report supported events, skipping", i)
				continue
			}
			return 0, fmt.Errorf("failed to query supported events of device %d: %w", i, err)
		}

		types := supported & watchedEventTypes
		if types == nvml.EventTypesNone {
			logger.Infof("device %d supports none of the watched events, skipping", i)
			continue
		}

		if err := device.RegisterEvents(types, set); err != nil {
			return 0, fmt.Errorf("failed to register events on device %d: %w", i, err)
		}
		logger.Infof("watching device %d for %v", i, types)
		registered++
	}
	return registered, nil
}

// waitForEvents blocks on the event set and forwards delivered events.
// Timeouts are quiet; any other error terminates the loop. Closing stop
// makes the loop exit once the in-flight wait returns; done is closed on
// exit so the caller can join before tearing the event set down.
func waitForEvents(
	timeout time.Duration,
	wait func(time.Duration) (nvml.EventData, error),
	eventCh chan<- nvml.EventData,
	errCh chan<- error,
	stop <-chan struct{},
	done chan<- struct{},
) {
	defer close(done)
	for {
		data, err := wait(timeout)
		select {
		case <-stop:
			return
		default:
		}
		if errors.Is(err, nvml.ErrTimeout) {
			continue
		}
		if errors.Is(err, nvml.ErrClosed) {
			return
		}
		if err != nil {
			errCh <- fmt.Errorf("failed to wait for events: %w", err)
			return
		}
		select {
		case eventCh <- data:
		case <-stop:
			return
		}
	}
}

func logEvent(logger *log.Entry, data nvml.EventData) {
	fields := log.Fields{
		"types": data.Types.String(),
		"data":  data.Data,
	}
	if id, err := data.Device.UUID(); err == nil {
		fields["uuid"] = id
	}
	if data.GpuInstanceID != nvml.InvalidInstanceID {
		fields["gpuInstance"] = data.GpuInstanceID
	}
	if data.ComputeInstanceID != nvml.InvalidInstanceID {
		fields["computeInstance"] = data.ComputeInstanceID
	}
	logger.WithFields(fields).Info("event")
}

// isDeviceNodeCreate reports whether an fsnotify event is the creation of
// an nvidiaN device node.
func isDeviceNodeCreate(event fsnotify.Event) bool {
	if event.Op&fsnotify.Create != fsnotify.Create {
		return false
	}
	base := filepath.Base(event.Name)
	if !strings.HasPrefix(base, "nvidia") {
		return false
	}
	suffix := strings.TrimPrefix(base, "nvidia")
	if suffix == "" {
		return false
	}
	for _, r := range suffix {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func newFSWatcher(dirs ...string) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, d := range dirs {
		if err := watcher.Add(d); err != nil {
			watcher.Close()
			return nil, err
		}
	}
	return watcher, nil
}

func newOSWatcher(sigs ...os.Signal) chan os.Signal {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, sigs...)
	return sigChan
}
