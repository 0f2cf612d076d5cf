package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundMoney(t *testing.T) {
	require.Equal(t, 43.5, RoundMoney(43.499999999999996))
	require.Equal(t, 0.01, RoundMoney(0.005))
	require.Equal(t, -0.01, RoundMoney(-0.005))
	require.Equal(t, 1360.0, RoundMoney(6800*0.2))
}

func TestMinorUnits(t *testing.T) {
	require.Equal(t, int64(1), MinorUnits(0.01))
	require.Equal(t, int64(110), MinorUnits(1.1))
	require.Equal(t, int64(9999997), MinorUnits(99999.97))

	// The split identity must hold in cents even when the float sum drifts.
	total, admin, nanny := 1.10, 0.11, 0.99
	require.Equal(t, MinorUnits(total), MinorUnits(admin)+MinorUnits(nanny))
}
