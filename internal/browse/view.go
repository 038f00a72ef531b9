// Package browse implements the filter and paginate logic behind the booth
// browser. A View holds the immutable booth list fetched at session start
// together with the tag and zone vocabularies derived from it. User input
// is applied through View.Reduce, which maps a State and an Action to the
// next State without mutating either.
package browse

import (
	"slices"
	"strings"

	"github.com/NuttharikaTht/comic-square-8-circle-search/internal/domain"
)

// View is the read-only session context for filtering.
type View struct {
	booths []domain.Booth
	tags   []string
	zones  []string
}

// NewView builds a View over booths. Vocabularies are computed once here and
// stay fixed for the session.
func NewView(booths []domain.Booth) *View {
	tags := []string{}
	zones := []string{}
	seenTag := map[string]bool{}
	seenZone := map[string]bool{}
	for _, b := range booths {
		for _, f := range b.Fandoms {
			k := strings.ToLower(f)
			if !seenTag[k] {
				seenTag[k] = true
				tags = append(tags, k)
			}
		}
		z := strings.ToLower(b.Zone)
		if !seenZone[z] {
			seenZone[z] = true
			zones = append(zones, z)
		}
	}
	return &View{booths: slices.Clone(booths), tags: tags, zones: zones}
}

// Booths returns the full booth list in source order.
func (v *View) Booths() []domain.Booth { return slices.Clone(v.booths) }

// Tags returns the distinct lowercased fandoms in first-seen order.
func (v *View) Tags() []string { return slices.Clone(v.tags) }

// Zones returns the distinct lowercased zones in first-seen order.
func (v *View) Zones() []string { return slices.Clone(v.zones) }

// TagCandidates returns the fandoms containing query as a substring.
func (v *View) TagCandidates(query string) []string { return Narrow(v.tags, query) }

// ZoneCandidates returns the zones containing query as a substring.
func (v *View) ZoneCandidates(query string) []string { return Narrow(v.zones, query) }

// Narrow returns the entries of vocab that contain the lowercased query.
// The empty query matches every entry.
func Narrow(vocab []string, query string) []string {
	q := strings.ToLower(query)
	out := []string{}
	for _, s := range vocab {
		if strings.Contains(s, q) {
			out = append(out, s)
		}
	}
	return out
}

// Filter returns the booths matching s, in source order.
// A booth matches when it has any selected tag (or none are selected) and
// its zone is selected (or none are selected).
func (v *View) Filter(s State) []domain.Booth {
	out := make([]domain.Booth, 0, len(v.booths))
	for _, b := range v.booths {
		if matchesTags(b, s.SelectedTags) && matchesZone(b, s.SelectedZones) {
			out = append(out, b)
		}
	}
	return out
}

// Visible returns the page of filtered booths shown for s.
func (v *View) Visible(s State) Page {
	return Paginate(v.Filter(s), s.Page)
}

func matchesTags(b domain.Booth, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, f := range b.Fandoms {
		if slices.Contains(selected, strings.ToLower(f)) {
			return true
		}
	}
	return false
}

func matchesZone(b domain.Booth, selected []string) bool {
	return len(selected) == 0 || slices.Contains(selected, strings.ToLower(b.Zone))
}
