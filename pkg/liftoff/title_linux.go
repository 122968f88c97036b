//go:build linux

package liftoff

import (
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// the kernel keeps 15 bytes of the name plus the terminating NUL.
const maxCommLen = 15

// procComm names the thread-group leader, whichever thread writes it.
const procComm = "/proc/self/comm"

// setProcessTitle renames the process as shown by ps and /proc/<pid>/comm.
// PR_SET_NAME only renames the calling thread, so it is a fallback for
// systems without a writable procfs.
func setProcessTitle(title string) error {
	if len(title) > maxCommLen {
		title = title[:maxCommLen]
	}

	if err := os.WriteFile(procComm, []byte(title), 0); err == nil {
		return nil
	}

	p, err := unix.BytePtrFromString(title)
	if err != nil {
		return err
	}

	return unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(p)), 0, 0, 0)
}
