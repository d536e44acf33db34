package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectors(t *testing.T) {
	t.Run("valid severities", func(t *testing.T) {
		for _, v := range []string{"all", "significant", "4.5", "2.5", "1.0"} {
			sev, err := ParseSeverity(v)
			require.NoError(t, err)
			assert.Equal(t, Severity(v), sev)
		}
	})

	t.Run("valid windows", func(t *testing.T) {
		for _, v := range []string{"month", "week", "day"} {
			w, err := ParseWindow(v)
			require.NoError(t, err)
			assert.Equal(t, Window(v), w)
		}
	})

	t.Run("valid zones", func(t *testing.T) {
		for _, v := range []string{"puerto-rico", "world"} {
			z, err := ParseZone(v)
			require.NoError(t, err)
			assert.Equal(t, Zone(v), z)
		}
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		_, err := ParseSeverity("5.0")
		assert.Error(t, err)
		_, err = ParseWindow("year")
		assert.Error(t, err)
		_, err = ParseZone("caribbean")
		assert.Error(t, err)
	})
}

func TestDefaultSelectors(t *testing.T) {
	sel := DefaultSelectors()

	assert.Equal(t, SeverityAll, sel.Severity)
	assert.Equal(t, WindowMonth, sel.Window)
	assert.Equal(t, ZonePuertoRico, sel.Zone)
	assert.True(t, sel.ShowMap)
	assert.False(t, sel.ShowTable)
	assert.Equal(t, TableRowsMin, sel.TableRows)
	assert.True(t, sel.IsReferenceConfig())
}

func TestIsReferenceConfig(t *testing.T) {
	sel := DefaultSelectors()
	sel.Window = WindowDay
	assert.False(t, sel.IsReferenceConfig())

	sel = DefaultSelectors()
	sel.Zone = ZoneWorld
	assert.False(t, sel.IsReferenceConfig())

	sel = DefaultSelectors()
	sel.Severity = Severity25
	assert.False(t, sel.IsReferenceConfig())
}

func TestClampTableRows(t *testing.T) {
	assert.Equal(t, 5, ClampTableRows(0))
	assert.Equal(t, 5, ClampTableRows(5))
	assert.Equal(t, 12, ClampTableRows(12))
	assert.Equal(t, 20, ClampTableRows(20))
	assert.Equal(t, 20, ClampTableRows(50))
}
