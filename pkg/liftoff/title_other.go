//go:build !linux

package liftoff

func setProcessTitle(string) error {
	return nil
}
