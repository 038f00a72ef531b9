package browse_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/browse"
)

// ---- queries and candidate lists -------------------------------------------

func TestReduce_SetTagQuery_OpensListOnlyWhenNonEmpty(t *testing.T) {
	v := browse.NewView(sampleBooths())

	s := v.Reduce(browse.NewState(), browse.SetTagQuery{Text: "NA"})
	assert.Equal(t, "na", s.TagQuery)
	assert.True(t, s.TagListOpen)
	assert.False(t, s.ZoneListOpen)

	s = v.Reduce(s, browse.SetTagQuery{Text: ""})
	assert.Equal(t, "", s.TagQuery)
	assert.False(t, s.TagListOpen)
}

func TestReduce_SetZoneQuery(t *testing.T) {
	v := browse.NewView(sampleBooths())

	s := v.Reduce(browse.NewState(), browse.SetZoneQuery{Text: "Hall"})

	assert.Equal(t, "hall", s.ZoneQuery)
	assert.True(t, s.ZoneListOpen)
}

func TestReduce_OpenAndCloseLists(t *testing.T) {
	v := browse.NewView(sampleBooths())

	s := v.Reduce(browse.NewState(), browse.OpenTagList{})
	s = v.Reduce(s, browse.OpenZoneList{})
	assert.True(t, s.TagListOpen)
	assert.True(t, s.ZoneListOpen)

	s = v.Reduce(s, browse.CloseLists{})
	assert.False(t, s.TagListOpen)
	assert.False(t, s.ZoneListOpen)
}

// ---- selection -------------------------------------------------------------

func TestReduce_ToggleTag_ClosesList(t *testing.T) {
	v := browse.NewView(sampleBooths())
	s := v.Reduce(browse.NewState(), browse.SetTagQuery{Text: "na"})
	require.True(t, s.TagListOpen)

	s = v.Reduce(s, browse.ToggleTag{Value: "naruto"})

	assert.Equal(t, []string{"naruto"}, s.SelectedTags)
	assert.False(t, s.TagListOpen)
	assert.Equal(t, "na", s.TagQuery, "query text survives a selection")
}

func TestReduce_ToggleTagTwice_RoundTrips(t *testing.T) {
	v := browse.NewView(sampleBooths())
	prior := v.Reduce(browse.NewState(), browse.ToggleTag{Value: "bleach"})

	s := v.Reduce(prior, browse.ToggleTag{Value: "naruto"})
	s = v.Reduce(s, browse.ToggleTag{Value: "naruto"})

	assert.Equal(t, prior.SelectedTags, s.SelectedTags)
}

func TestReduce_ToggleSelectedTagTwice_SameSet(t *testing.T) {
	v := browse.NewView(sampleBooths())
	prior := v.Reduce(browse.NewState(), browse.ToggleTag{Value: "bleach"})
	prior = v.Reduce(prior, browse.ToggleTag{Value: "naruto"})

	s := v.Reduce(prior, browse.ToggleTag{Value: "bleach"})
	assert.Equal(t, []string{"naruto"}, s.SelectedTags)
	s = v.Reduce(s, browse.ToggleTag{Value: "bleach"})

	assert.ElementsMatch(t, prior.SelectedTags, s.SelectedTags)
}

func TestReduce_ToggleZone(t *testing.T) {
	v := browse.NewView(sampleBooths())
	s := v.Reduce(browse.NewState(), browse.OpenZoneList{})

	s = v.Reduce(s, browse.ToggleZone{Value: "Hall B"})

	assert.Equal(t, []string{"hall b"}, s.SelectedZones)
	assert.True(t, s.HasZone("HALL B"))
	assert.False(t, s.ZoneListOpen)
}

func TestReduce_RemoveChips(t *testing.T) {
	v := browse.NewView(sampleBooths())
	s := v.Reduce(browse.NewState(), browse.ToggleTag{Value: "naruto"})
	s = v.Reduce(s, browse.ToggleTag{Value: "bleach"})
	s = v.Reduce(s, browse.ToggleZone{Value: "hall a"})

	s = v.Reduce(s, browse.RemoveTag{Value: "naruto"})
	s = v.Reduce(s, browse.RemoveZone{Value: "hall a"})
	s = v.Reduce(s, browse.RemoveZone{Value: "not selected"})

	assert.Equal(t, []string{"bleach"}, s.SelectedTags)
	assert.Empty(t, s.SelectedZones)
	assert.True(t, s.HasTag("Bleach"))
}

func TestReduce_DoesNotMutateInput(t *testing.T) {
	v := browse.NewView(sampleBooths())
	base := v.Reduce(browse.NewState(), browse.ToggleTag{Value: "naruto"})
	base = v.Reduce(base, browse.ToggleTag{Value: "bleach"})
	snapshot := append([]string(nil), base.SelectedTags...)

	_ = v.Reduce(base, browse.ToggleTag{Value: "naruto"})
	_ = v.Reduce(base, browse.ToggleTag{Value: "one piece"})
	_ = v.Reduce(base, browse.ClearFilters{})

	assert.Equal(t, snapshot, base.SelectedTags)
}

func TestReduce_ZeroValueState(t *testing.T) {
	v := browse.NewView(sampleBooths())

	s := v.Reduce(browse.State{}, browse.ToggleTag{Value: "naruto"})

	assert.Equal(t, []string{"naruto"}, s.SelectedTags)
	assert.NotNil(t, s.SelectedZones)
}

// ---- clear -----------------------------------------------------------------

func TestReduce_ClearFilters(t *testing.T) {
	v := browse.NewView(numberedBooths(25))
	s := browse.NewState()
	for _, tag := range []string{"naruto", "bleach", "one piece"} {
		s = v.Reduce(s, browse.ToggleTag{Value: tag})
	}
	for _, zone := range []string{"hall a", "hall b"} {
		s = v.Reduce(s, browse.ToggleZone{Value: zone})
	}
	s = v.Reduce(s, browse.SetTagQuery{Text: "na"})
	s = v.Reduce(s, browse.SetZoneQuery{Text: "ha"})
	s.Page = 2
	require.Len(t, s.SelectedTags, 3)
	require.Len(t, s.SelectedZones, 2)

	s = v.Reduce(s, browse.ClearFilters{})

	assert.Empty(t, s.SelectedTags)
	assert.Empty(t, s.SelectedZones)
	assert.Equal(t, "", s.TagQuery)
	assert.Equal(t, "", s.ZoneQuery)
	assert.Equal(t, 2, s.Page, "clear does not reset the page")
}

// ---- paging ----------------------------------------------------------------

func TestReduce_PagingStopsAtBoundaries(t *testing.T) {
	v := browse.NewView(numberedBooths(25))
	s := browse.NewState()

	s = v.Reduce(s, browse.PrevPage{})
	assert.Equal(t, 1, s.Page)

	s = v.Reduce(s, browse.NextPage{})
	s = v.Reduce(s, browse.NextPage{})
	assert.Equal(t, 3, s.Page)

	s = v.Reduce(s, browse.NextPage{})
	assert.Equal(t, 3, s.Page)

	page := v.Visible(s)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 3, page.TotalPages)
}

func TestReduce_GoToPage(t *testing.T) {
	v := browse.NewView(numberedBooths(25))

	s := v.Reduce(browse.NewState(), browse.GoToPage{Page: 3})
	assert.Equal(t, 3, s.Page)

	s = v.Reduce(s, browse.GoToPage{Page: 4})
	assert.Equal(t, 3, s.Page)

	s = v.Reduce(s, browse.GoToPage{Page: 0})
	assert.Equal(t, 3, s.Page)
}

func TestReduce_FilterChangeKeepsOutOfRangePage(t *testing.T) {
	booths := numberedBooths(25)
	booths[0].Zone = "hall a"
	v := browse.NewView(booths)
	s := v.Reduce(browse.NewState(), browse.GoToPage{Page: 3})

	s = v.Reduce(s, browse.ToggleZone{Value: "hall a"})

	page := v.Visible(s)
	assert.Equal(t, 3, s.Page)
	assert.Equal(t, 1, page.Total)
	assert.Empty(t, page.Items, "out-of-range page renders empty")

	s = v.Reduce(s, browse.NextPage{})
	assert.Equal(t, 3, s.Page)
	s = v.Reduce(s, browse.GoToPage{Page: 1})
	assert.Len(t, v.Visible(s).Items, 1)
}
