package browse

import (
	"slices"
	"strings"
)

// State is the per-session filter state. The zero value is not usable;
// start from NewState.
//
// Selections hold lowercase values with set semantics, kept in the order
// they were chosen.
type State struct {
	SelectedTags  []string
	SelectedZones []string
	TagQuery      string
	ZoneQuery     string
	TagListOpen   bool
	ZoneListOpen  bool
	Page          int
}

// NewState returns the empty state a session starts with.
func NewState() State {
	return State{SelectedTags: []string{}, SelectedZones: []string{}, Page: 1}
}

// HasTag reports whether tag (any casing) is selected.
func (s State) HasTag(tag string) bool {
	return slices.Contains(s.SelectedTags, strings.ToLower(tag))
}

// HasZone reports whether zone (any casing) is selected.
func (s State) HasZone(zone string) bool {
	return slices.Contains(s.SelectedZones, strings.ToLower(zone))
}

// Action is a single user interaction fed to View.Reduce.
type Action interface {
	isAction()
}

type (
	// SetTagQuery replaces the fandom search text. The candidate list is
	// shown only while the text is non-empty.
	SetTagQuery struct{ Text string }
	// SetZoneQuery replaces the zone search text.
	SetZoneQuery struct{ Text string }
	// OpenTagList shows the fandom candidates regardless of the query.
	OpenTagList struct{}
	// OpenZoneList shows the zone candidates regardless of the query.
	OpenZoneList struct{}
	// CloseLists hides both candidate lists.
	CloseLists struct{}
	// ToggleTag selects or deselects a fandom and closes the fandom list.
	ToggleTag struct{ Value string }
	// ToggleZone selects or deselects a zone and closes the zone list.
	ToggleZone struct{ Value string }
	// RemoveTag deselects a fandom chip.
	RemoveTag struct{ Value string }
	// RemoveZone deselects a zone chip.
	RemoveZone struct{ Value string }
	// ClearFilters empties both selections and both queries. Page is kept.
	ClearFilters struct{}
	// NextPage advances one page unless already on the last one.
	NextPage struct{}
	// PrevPage goes back one page unless already on the first one.
	PrevPage struct{}
	// GoToPage jumps to Page when it lies within 1..TotalPages.
	GoToPage struct{ Page int }
)

func (SetTagQuery) isAction()  {}
func (SetZoneQuery) isAction() {}
func (OpenTagList) isAction()  {}
func (OpenZoneList) isAction() {}
func (CloseLists) isAction()   {}
func (ToggleTag) isAction()    {}
func (ToggleZone) isAction()   {}
func (RemoveTag) isAction()    {}
func (RemoveZone) isAction()   {}
func (ClearFilters) isAction() {}
func (NextPage) isAction()     {}
func (PrevPage) isAction()     {}
func (GoToPage) isAction()     {}

// Reduce returns the state that follows s after a. Neither s nor its
// slices are modified. Unknown actions return s unchanged.
//
// Filter changes never touch Page, so a narrowed result can leave Page
// past the last page. Such a page renders empty until the user steps back.
func (v *View) Reduce(s State, a Action) State {
	next := s.clone()
	switch a := a.(type) {
	case SetTagQuery:
		next.TagQuery = strings.ToLower(a.Text)
		next.TagListOpen = next.TagQuery != ""
	case SetZoneQuery:
		next.ZoneQuery = strings.ToLower(a.Text)
		next.ZoneListOpen = next.ZoneQuery != ""
	case OpenTagList:
		next.TagListOpen = true
	case OpenZoneList:
		next.ZoneListOpen = true
	case CloseLists:
		next.TagListOpen = false
		next.ZoneListOpen = false
	case ToggleTag:
		next.SelectedTags = toggle(next.SelectedTags, a.Value)
		next.TagListOpen = false
	case ToggleZone:
		next.SelectedZones = toggle(next.SelectedZones, a.Value)
		next.ZoneListOpen = false
	case RemoveTag:
		next.SelectedTags = remove(next.SelectedTags, a.Value)
	case RemoveZone:
		next.SelectedZones = remove(next.SelectedZones, a.Value)
	case ClearFilters:
		next.SelectedTags = []string{}
		next.SelectedZones = []string{}
		next.TagQuery = ""
		next.ZoneQuery = ""
	case NextPage:
		if next.Page < TotalPages(len(v.Filter(s))) {
			next.Page++
		}
	case PrevPage:
		if next.Page > 1 {
			next.Page--
		}
	case GoToPage:
		if a.Page >= 1 && a.Page <= TotalPages(len(v.Filter(s))) {
			next.Page = a.Page
		}
	}
	return next
}

func (s State) clone() State {
	s.SelectedTags = slices.Clone(s.SelectedTags)
	s.SelectedZones = slices.Clone(s.SelectedZones)
	if s.SelectedTags == nil {
		s.SelectedTags = []string{}
	}
	if s.SelectedZones == nil {
		s.SelectedZones = []string{}
	}
	return s
}

// toggle adds value to set if absent and removes it if present.
func toggle(set []string, value string) []string {
	v := strings.ToLower(value)
	if slices.Contains(set, v) {
		return remove(set, v)
	}
	return append(set, v)
}

func remove(set []string, value string) []string {
	v := strings.ToLower(value)
	return slices.DeleteFunc(set, func(s string) bool { return s == v })
}
