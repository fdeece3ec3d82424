//go:build linux || darwin

package single

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireRefusesSecondInstance(t *testing.T) {
	g, err := Acquire()
	require.NoError(t, err)
	defer g.Release()

	// flock различает независимые открытия файла даже внутри одного
	// процесса, так что второй Acquire ведёт себя как второй экземпляр.
	_, err = Acquire()
	assert.ErrorIs(t, err, ErrAlreadyRunning)
}

func TestReleaseAllowsReacquire(t *testing.T) {
	g, err := Acquire()
	require.NoError(t, err)

	g.Release()
	g.Release() // повторный Release безопасен

	g2, err := Acquire()
	require.NoError(t, err)
	g2.Release()
}
