//go:build !unix

package window

func newInlineBackend(height int) (backend, error) {
	return nil, ErrInlineUnsupported
}
