package output

import (
	"strings"
	"testing"

	"github.com/katalvlaran/syncalign/syncmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildMap(t *testing.T) *syncmap.Map {
	t.Helper()
	sm := syncmap.New()
	sm.Put("ch1.xhtml", "f1", syncmap.Interval{AudioFile: "ch1.mp3", Begin: 0, End: 1.2})
	sm.Put("ch1.xhtml", "f2", syncmap.Interval{AudioFile: "ch1.mp3", Begin: 1.2, End: 1.2})
	sm.Put("ch1.xhtml", "f3", syncmap.Interval{AudioFile: "ch1.mp3", Begin: 1.2, End: 2.5})

	return sm
}

func TestWriteSMIL_ElidesEqualBeginEnd(t *testing.T) {
	sm := buildMap(t)

	var buf strings.Builder
	require.NoError(t, WriteSMIL(&buf, sm, "ch1.xhtml", TimeFormatClock))

	out := buf.String()
	assert.Contains(t, out, `id="par1"`)
	assert.NotContains(t, out, "f2")
	assert.Contains(t, out, `id="par3"`)
	assert.Contains(t, out, `clipBegin="0:00:00.000"`)
	assert.Contains(t, out, `clipEnd="0:00:01.200"`)
}

func TestWriteSMIL_Empty(t *testing.T) {
	sm := syncmap.New()

	var buf strings.Builder
	require.NoError(t, WriteSMIL(&buf, sm, "ch1.xhtml", TimeFormatClock))
	assert.NotContains(t, buf.String(), "<par")
}

func TestParIDWidth_MatchesFragmentCount(t *testing.T) {
	sm := buildMap(t)
	assert.Equal(t, 1, parIDWidth(len(sm.Fragments("ch1.xhtml"))))
}
