//go:build unix

package diskspace

import (
	"io/fs"
	"syscall"
)

// fileBlocks returns the allocated 512-byte blocks of info and, for files with
// several hard links, an identity used to count them once.
func fileBlocks(info fs.FileInfo) (int64, inode, bool) {
	sys, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return roundBlocks(info.Size()), inode{}, false
	}

	multi := !info.IsDir() && sys.Nlink > 1

	//nolint:unconvert // Field widths differ between platforms
	return int64(sys.Blocks), inode{dev: uint64(sys.Dev), ino: uint64(sys.Ino)}, multi
}
