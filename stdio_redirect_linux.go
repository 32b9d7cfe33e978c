//go:build linux

package main

import "golang.org/x/sys/unix"

// Dup3 rather than Dup2: the latter is missing on linux/arm64.
func dupOnto(oldfd, newfd int) error {
	return unix.Dup3(oldfd, newfd, 0)
}
