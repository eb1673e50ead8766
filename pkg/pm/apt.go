// SPDX-License-Identifier: Apache-2.0

package pm

import (
	"context"

	"github.com/bluet/syspkg"
	"github.com/bluet/syspkg/manager"
)

// aptManager drives Debian/Ubuntu hosts through syspkg rather than
// shelling out, so install status reporting matches the dpkg database.
type aptManager struct{}

// newSyspkgManager is indirected for tests.
var newSyspkgManager = func() (syspkg.PackageManager, error) {
	sys, err := syspkg.New(syspkg.IncludeOptions{AllAvailable: true})
	if err != nil {
		return nil, err
	}
	return sys.GetPackageManager("apt")
}

func (m *aptManager) Kind() Kind {
	return KindApt
}

func (m *aptManager) Detect() bool {
	_, err := lookPath("apt-get")
	return err == nil
}

func (m *aptManager) RuntimePackages() []string {
	return []string{"python3", "python3-pip", "python3-click", "logrotate"}
}

func (m *aptManager) Install(ctx context.Context, packages []string) error {
	pkgManager, err := newSyspkgManager()
	if err != nil {
		return ErrInstallFailed.Wrap(err, "failed to initialize apt package manager").
			WithProperty(ManagerProperty, string(KindApt))
	}

	opts := &manager.Options{AssumeYes: true, Interactive: false}
	if err := pkgManager.Refresh(opts); err != nil {
		return ErrInstallFailed.Wrap(err, "failed to refresh apt package index").
			WithProperty(ManagerProperty, string(KindApt))
	}

	if _, err := pkgManager.Install(packages, opts); err != nil {
		return ErrInstallFailed.Wrap(err, "failed to install packages %v", packages).
			WithProperty(ManagerProperty, string(KindApt))
	}
	return nil
}
