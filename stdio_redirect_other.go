//go:build !unix

package main

import "os"

// Fallback for non-Unix platforms. Output written by the runtime itself,
// such as panic traces, still goes to the original stderr.
func redirectStdIO(path string) error {
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	os.Stdout = f
	os.Stderr = f
	return nil
}
