// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package qemu

import "golang.org/x/sys/unix"

// KVMAvailable checks if KVM hardware acceleration can be used by the
// current process.
func KVMAvailable() bool {
	return unix.Access("/dev/kvm", unix.W_OK) == nil
}
