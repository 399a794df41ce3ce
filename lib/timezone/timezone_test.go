package timezone

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNowIsMoscowLocal(t *testing.T) {
	require.Equal(t, "Europe/Moscow", Location.String())

	now := Now()
	require.Equal(t, Location, now.Location())

	// Moscow has no DST, the offset is fixed at UTC+3
	_, offset := now.Zone()
	require.Equal(t, 3*60*60, offset)
}
