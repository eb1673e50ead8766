// SPDX-License-Identifier: Apache-2.0

// Package sysd manages systemd services over the system D-Bus.
package sysd

import (
	"context"
	"strings"

	"github.com/coreos/go-systemd/v22/dbus"
)

// newConnection is indirected for tests.
var newConnection = func(ctx context.Context) (*dbus.Conn, error) {
	return dbus.NewSystemConnectionContext(ctx)
}

func ensureServiceSuffix(service string) string {
	if !strings.HasSuffix(service, ".service") {
		return service + ".service"
	}
	return service
}

// DaemonReload asks systemd to re-read its unit files. Must be called after
// a unit file is written or removed.
func DaemonReload(ctx context.Context) error {
	conn, err := newConnection(ctx)
	if err != nil {
		return ErrSystemdConnection.Wrap(err, "failed to connect to systemd")
	}
	defer conn.Close()

	if err := conn.ReloadContext(ctx); err != nil {
		return ErrSystemdOperation.Wrap(err, "failed to reload systemd daemon")
	}
	return nil
}

// EnableService enables a service to start at boot.
func EnableService(ctx context.Context, service string) error {
	service = ensureServiceSuffix(service)

	conn, err := newConnection(ctx)
	if err != nil {
		return ErrSystemdConnection.Wrap(err, "failed to connect to systemd").
			WithProperty(ServiceProperty, service)
	}
	defer conn.Close()

	if _, _, err := conn.EnableUnitFilesContext(ctx, []string{service}, false, true); err != nil {
		return ErrSystemdOperation.Wrap(err, "failed to enable service %s", service).
			WithProperty(ServiceProperty, service)
	}
	return nil
}

// DisableService disables a service from starting at boot.
func DisableService(ctx context.Context, service string) error {
	service = ensureServiceSuffix(service)

	conn, err := newConnection(ctx)
	if err != nil {
		return ErrSystemdConnection.Wrap(err, "failed to connect to systemd").
			WithProperty(ServiceProperty, service)
	}
	defer conn.Close()

	if _, err := conn.DisableUnitFilesContext(ctx, []string{service}, false); err != nil {
		return ErrSystemdOperation.Wrap(err, "failed to disable service %s", service).
			WithProperty(ServiceProperty, service)
	}
	return nil
}

// StartService starts a service and waits for the job to finish.
func StartService(ctx context.Context, service string) error {
	service = ensureServiceSuffix(service)

	conn, err := newConnection(ctx)
	if err != nil {
		return ErrSystemdConnection.Wrap(err, "failed to connect to systemd").
			WithProperty(ServiceProperty, service)
	}
	defer conn.Close()

	jobChan := make(chan string, 1)
	if _, err := conn.StartUnitContext(ctx, service, "replace", jobChan); err != nil {
		return ErrSystemdOperation.Wrap(err, "failed to start service %s", service).
			WithProperty(ServiceProperty, service)
	}

	if result := <-jobChan; result != "done" {
		return ErrSystemdOperation.New("start job for service %s finished with result %q", service, result).
			WithProperty(ServiceProperty, service)
	}
	return nil
}

// StopService stops a service and waits for the job to finish.
func StopService(ctx context.Context, service string) error {
	service = ensureServiceSuffix(service)

	conn, err := newConnection(ctx)
	if err != nil {
		return ErrSystemdConnection.Wrap(err, "failed to connect to systemd").
			WithProperty(ServiceProperty, service)
	}
	defer conn.Close()

	jobChan := make(chan string, 1)
	if _, err := conn.StopUnitContext(ctx, service, "replace", jobChan); err != nil {
		return ErrSystemdOperation.Wrap(err, "failed to stop service %s", service).
			WithProperty(ServiceProperty, service)
	}

	if result := <-jobChan; result != "done" {
		return ErrSystemdOperation.New("stop job for service %s finished with result %q", service, result).
			WithProperty(ServiceProperty, service)
	}
	return nil
}

// IsServiceRunning reports whether the service unit is in the active state.
func IsServiceRunning(ctx context.Context, service string) (bool, error) {
	service = ensureServiceSuffix(service)

	conn, err := newConnection(ctx)
	if err != nil {
		return false, ErrSystemdConnection.Wrap(err, "failed to connect to systemd").
			WithProperty(ServiceProperty, service)
	}
	defer conn.Close()

	units, err := conn.ListUnitsByNamesContext(ctx, []string{service})
	if err != nil {
		return false, ErrSystemdOperation.Wrap(err, "failed to query service %s", service).
			WithProperty(ServiceProperty, service)
	}

	for _, unit := range units {
		if unit.Name == service {
			return unit.ActiveState == "active", nil
		}
	}
	return false, nil
}
