package probe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noopProbe(_ context.Context) ([]Fact, error) {
	return nil, nil
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register("alpha", noopProbe))
	require.NoError(t, r.Register("beta", noopProbe))

	err := r.Register("alpha", noopProbe)
	require.ErrorIs(t, err, ErrDuplicateSection)

	fn, err := r.Lookup("alpha")
	require.NoError(t, err)
	require.NotNil(t, fn)

	_, err = r.Lookup("gamma")
	require.ErrorIs(t, err, ErrUnknownSection)

	assert.Equal(t, []string{"alpha", "beta"}, r.Names())
}

func TestDefaultRegistryOrder(t *testing.T) {
	assert.Equal(t, []string{SectionSync, SectionMemory, SectionHost}, DefaultRegistry().Names())
}
