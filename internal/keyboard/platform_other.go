//go:build !linux && !darwin

package keyboard

func newPlatform(backend string) (Platform, error) {
	return nil, ErrUnsupportedPlatform
}
