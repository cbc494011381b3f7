//go:build linux

package window

import (
	"os"

	"golang.org/x/sys/unix"
)

// resetTermios forces cooked mode back through /dev/tty. Crash recovery
// only: the saved terminal state is unreachable from a panic handler.
func resetTermios() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL
	unix.IoctlSetTermios(fd, unix.TCSETS, termios)
}
