//go:build !linux && !darwin

package cli

func isTerminal(int) bool { return false }
