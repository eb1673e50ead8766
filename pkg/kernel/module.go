// SPDX-License-Identifier: Apache-2.0

// Package kernel manages loading and boot persistence of kernel modules.
// A module loaded with parameters is never reloaded in place: parameter
// changes require an unload first, so Load skips a module that is
// already resident.
package kernel

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/joomcode/errorx"
	"pault.ag/go/modprobe"

	"github.com/nawocci/omen-fan/pkg/fsx"
)

const (
	modulesLoadDir = "/etc/modules-load.d"
	modprobeDir    = "/etc/modprobe.d"
	procModules    = "/proc/modules"
)

var (
	ErrNamespace = errorx.NewNamespace("kernel")

	ErrModuleOperation = ErrNamespace.NewType("module_operation")

	ModuleProperty = errorx.RegisterProperty("module")
)

type defaultModule struct {
	name   string
	params string
	ops    moduleOperations
}

// NewModule returns a Module for the named kernel module. Optional
// parameters (e.g. "write_support=1") are applied on load and recorded
// in the module options file when the module is persisted.
func NewModule(name string, params ...string) (Module, error) {
	if name == "" {
		return nil, errorx.IllegalArgument.New("module name cannot be empty")
	}

	paramStr := strings.Join(params, " ")
	return &defaultModule{
		name:   name,
		params: paramStr,
		ops: &sysOperations{
			params:         paramStr,
			modulesLoadDir: modulesLoadDir,
			modprobeDir:    modprobeDir,
			procModules:    procModules,
		},
	}, nil
}

func (m *defaultModule) Name() string {
	return m.name
}

func (m *defaultModule) Load(persist bool) error {
	loaded, err := m.ops.isLoaded(m.name)
	if err != nil {
		return err
	}

	if !loaded {
		if err := m.ops.load(m.name); err != nil {
			return err
		}
	}

	if persist {
		return m.ops.persist(m.name)
	}
	return nil
}

func (m *defaultModule) Unload(unpersist bool) error {
	if unpersist {
		if err := m.ops.unpersist(m.name); err != nil {
			return err
		}
	}

	loaded, err := m.ops.isLoaded(m.name)
	if err != nil {
		return err
	}
	if !loaded {
		return nil
	}

	return m.ops.unload(m.name)
}

func (m *defaultModule) Unpersist() error {
	return m.ops.unpersist(m.name)
}

func (m *defaultModule) IsLoaded() (bool, bool, error) {
	loaded, err := m.ops.isLoaded(m.name)
	if err != nil {
		return false, false, err
	}

	persisted, err := m.ops.isPersisted(m.name)
	if err != nil {
		return loaded, false, err
	}

	return loaded, persisted, nil
}

// sysOperations implements moduleOperations against the running system:
// modprobe for load/unload, /proc/modules for residency, and the
// modules-load.d / modprobe.d drop-in files for boot persistence.
type sysOperations struct {
	params         string
	modulesLoadDir string
	modprobeDir    string
	procModules    string
}

func (o *sysOperations) autoloadFile(name string) string {
	return filepath.Join(o.modulesLoadDir, name+".conf")
}

func (o *sysOperations) optionsFile(name string) string {
	return filepath.Join(o.modprobeDir, name+".conf")
}

func (o *sysOperations) load(name string) error {
	if err := modprobe.Load(name, o.params); err != nil {
		return ErrModuleOperation.Wrap(err, "failed to load module %s", name).
			WithProperty(ModuleProperty, name)
	}
	return nil
}

func (o *sysOperations) unload(name string) error {
	if err := modprobe.Remove(name); err != nil {
		return ErrModuleOperation.Wrap(err, "failed to unload module %s", name).
			WithProperty(ModuleProperty, name)
	}
	return nil
}

func (o *sysOperations) isLoaded(name string) (bool, error) {
	f, err := os.Open(o.procModules)
	if err != nil {
		return false, ErrModuleOperation.Wrap(err, "failed to read %s", o.procModules)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 && fields[0] == name {
			return true, nil
		}
	}
	if err := scanner.Err(); err != nil {
		return false, ErrModuleOperation.Wrap(err, "failed to scan %s", o.procModules)
	}
	return false, nil
}

func (o *sysOperations) persist(name string) error {
	for _, dir := range []string{o.modulesLoadDir, o.modprobeDir} {
		if err := fsx.CreateDirectory(dir, 0o755); err != nil {
			return ErrModuleOperation.Wrap(err, "failed to create %s", dir).
				WithProperty(ModuleProperty, name)
		}
	}

	if _, err := fsx.EnsureLineInFile(o.autoloadFile(name), name, 0o644); err != nil {
		return ErrModuleOperation.Wrap(err, "failed to persist autoload entry for %s", name).
			WithProperty(ModuleProperty, name)
	}

	if o.params == "" {
		return nil
	}

	line := "options " + name + " " + o.params
	if _, err := fsx.EnsureLineInFile(o.optionsFile(name), line, 0o644); err != nil {
		return ErrModuleOperation.Wrap(err, "failed to persist options entry for %s", name).
			WithProperty(ModuleProperty, name)
	}
	return nil
}

func (o *sysOperations) unpersist(name string) error {
	if err := fsx.RemoveIfExists(o.autoloadFile(name)); err != nil {
		return ErrModuleOperation.Wrap(err, "failed to remove autoload entry for %s", name).
			WithProperty(ModuleProperty, name)
	}
	if err := fsx.RemoveIfExists(o.optionsFile(name)); err != nil {
		return ErrModuleOperation.Wrap(err, "failed to remove options entry for %s", name).
			WithProperty(ModuleProperty, name)
	}
	return nil
}

func (o *sysOperations) isPersisted(name string) (bool, error) {
	autoloaded, err := fsx.ContainsLine(o.autoloadFile(name), name)
	if err != nil {
		return false, err
	}
	if !autoloaded {
		return false, nil
	}

	if o.params == "" {
		return true, nil
	}

	return fsx.ContainsLine(o.optionsFile(name), "options "+name+" "+o.params)
}
