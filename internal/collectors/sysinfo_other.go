//go:build !linux
// +build !linux

package collectors

func sysinfoTotal() (uint64, bool) { return 0, false }

func sysinfoFree() (uint64, bool) { return 0, false }
