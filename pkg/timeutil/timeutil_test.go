package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func TestParse_SinZonaEsHoraLocal(t *testing.T) {
	loc := saoPaulo(t)

	got := Parse("2026-10-16T01:00:00", loc)
	assert.Equal(t, time.Date(2026, 10, 16, 1, 0, 0, 0, loc), got)

	got = Parse("2026-10-16 23:30:00.123", loc)
	assert.Equal(t, time.Date(2026, 10, 16, 23, 30, 0, 123000000, loc), got)

	got = Parse("2026-10-16", loc)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, loc), got)
}

func TestParse_ConZonaConservaElInstante(t *testing.T) {
	loc := saoPaulo(t)

	got := Parse("2026-10-16T01:00:00Z", loc)
	assert.True(t, got.Equal(time.Date(2026, 10, 16, 1, 0, 0, 0, time.UTC)))

	got = Parse("2026-10-16 01:00:00+00", loc)
	assert.True(t, got.Equal(time.Date(2026, 10, 16, 1, 0, 0, 0, time.UTC)))

	got = Parse("2026-10-16 01:00:00.5+05:30", loc)
	assert.True(t, got.Equal(time.Date(2026, 10, 15, 19, 30, 0, 500000000, time.UTC)))
}

func TestParse_IlegibleOVacio(t *testing.T) {
	assert.True(t, Parse("no-es-fecha", time.UTC).IsZero())
	assert.True(t, Parse("  ", time.UTC).IsZero())
}
