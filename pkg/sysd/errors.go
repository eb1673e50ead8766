// SPDX-License-Identifier: Apache-2.0

package sysd

import "github.com/joomcode/errorx"

var (
	ErrNamespace = errorx.NewNamespace("sysd")

	ErrSystemdConnection = ErrNamespace.NewType("systemd_connection")
	ErrSystemdOperation  = ErrNamespace.NewType("systemd_operation")

	ServiceProperty = errorx.RegisterProperty("service")
)
