//go:build unix

package main

import "os"

// redirectStdIO points the stdout and stderr descriptors at path so progress
// lines and any panic trace land in the file.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()

	for _, std := range []*os.File{os.Stdout, os.Stderr} {
		if err := dupOnto(int(f.Fd()), int(std.Fd())); err != nil {
			return err
		}
	}
	return nil
}
