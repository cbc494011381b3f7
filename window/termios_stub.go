//go:build !linux

package window

func resetTermios() {}
