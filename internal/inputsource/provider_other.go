//go:build !darwin

package inputsource

// nullProvider reports no sources; toggling is a no-op off macOS.
type nullProvider struct{}

func newProvider() Provider {
	return nullProvider{}
}

func (nullProvider) Enabled() ([]Source, error) { return nil, nil }
func (nullProvider) Current() (string, error)   { return "", nil }
func (nullProvider) Select(string) error        { return ErrActivationRejected }
