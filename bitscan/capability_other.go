//go:build !amd64

package bitscan

func init() {
	initCapabilities()
}
