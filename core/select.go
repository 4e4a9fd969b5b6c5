package core

import (
	"cmp"
	"slices"
	"strings"

	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/schema"
)

// Markers for the Korea rule. The feed lists the South several times and has
// unreliable figures for the North.
const (
	koreaMarker = "korea"
	northMarker = "north"
)

// Selector decides which summary entries become rows of a run.
// It is stateful: list mode consumes requests as they match, and the
// duplicate and Korea rules look at what was admitted before.
type Selector struct {
	mode      schema.SelectionMode
	threshold int64
	requested []string            // list mode, original spelling
	checklist map[string]struct{} // lower-cased requests not yet matched
	available []string            // every valid identifier seen
	admitted  []schema.Admission
	lastName  string // feed-derived name of the last admission
}

// NewSelector builds a selector for the selection mode in cfg.
func NewSelector(cfg *contract.Config) *Selector {
	s := &Selector{
		mode:      cfg.Selection,
		threshold: cfg.Threshold,
		checklist: make(map[string]struct{}),
	}
	if s.mode == schema.ListSelection {
		s.requested = slices.Clone(cfg.Countries)
		for _, name := range s.requested {
			s.checklist[strings.ToLower(name)] = struct{}{}
		}
	}
	return s
}

// DisplayName shortens a feed country name at its first comma and its
// first parenthesised qualifier, e.g. "Korea, South" becomes "Korea".
func DisplayName(feedName string) string {
	name, _, _ := strings.Cut(feedName, ",")
	name, _, _ = strings.Cut(name, " (")
	return name
}

// Admit runs one summary entry through the filter. Entries must be offered in
// final row order because duplicate suppression compares neighbours.
func (s *Selector) Admit(rec schema.CountryRecord) (schema.Admission, bool) {
	if rec.Identifier == "" || strings.HasPrefix(rec.Identifier, schema.SentinelPrefix) {
		return schema.Admission{}, false
	}
	s.available = append(s.available, rec.Identifier)

	name := DisplayName(rec.Name)
	display := name

	switch s.mode {
	case schema.ThresholdSelection:
		if rec.TotalConfirmed < s.threshold {
			return schema.Admission{}, false
		}
	case schema.ListSelection:
		match, ok := s.matchRequest(rec.Identifier, name)
		if !ok {
			return schema.Admission{}, false
		}
		delete(s.checklist, strings.ToLower(match))
		display = match
	}

	if len(s.admitted) > 0 && name == s.lastName {
		return schema.Admission{}, false
	}
	if lower := strings.ToLower(rec.Name); strings.Contains(lower, koreaMarker) {
		if s.koreaListed() {
			return schema.Admission{}, false
		}
		// Without an explicit request the North never stands in for Korea.
		if s.mode != schema.ListSelection && strings.Contains(lower, northMarker) {
			return schema.Admission{}, false
		}
	}

	admission := schema.Admission{
		Key:        strings.ToLower(rec.Identifier),
		Identifier: rec.Identifier,
		Display:    display,
	}
	s.admitted = append(s.admitted, admission)
	s.lastName = name
	return admission, true
}

// matchRequest finds the requested spelling matching an identifier or name.
func (s *Selector) matchRequest(identifier, name string) (string, bool) {
	for _, req := range s.requested {
		if strings.EqualFold(req, identifier) || strings.EqualFold(req, name) {
			return req, true
		}
	}
	return "", false
}

// koreaListed reports whether the key list has a bare "Korea" entry. In list
// mode the key list is the request list; otherwise it is the admitted names.
// Specific requests such as "south-korea" do not count.
func (s *Selector) koreaListed() bool {
	if s.mode == schema.ListSelection {
		return slices.ContainsFunc(s.requested, func(r string) bool {
			return strings.EqualFold(strings.TrimSpace(r), koreaMarker)
		})
	}
	return slices.ContainsFunc(s.admitted, func(a schema.Admission) bool {
		return strings.EqualFold(a.Display, koreaMarker)
	})
}

// Validate fails when list mode still has unmatched requests.
func (s *Selector) Validate() error {
	if s.mode != schema.ListSelection || len(s.checklist) == 0 {
		return nil
	}
	missing := make([]string, 0, len(s.checklist))
	for _, req := range s.requested {
		if _, ok := s.checklist[strings.ToLower(req)]; ok {
			missing = append(missing, req)
		}
	}
	return &schema.UnresolvedSelectionError{
		Missing:   missing,
		Available: slices.Clone(s.available),
	}
}

// Admitted returns the admissions so far, in row order.
func (s *Selector) Admitted() []schema.Admission {
	return slices.Clone(s.admitted)
}

// Mode returns the selection mode.
func (s *Selector) Mode() schema.SelectionMode {
	return s.mode
}

// SelectCountries orders the feed by lower-cased identifier, offers every
// entry to the selector and validates the outcome. No history is fetched here,
// so a misspelt request fails before any per-country request is made.
func SelectCountries(records []schema.CountryRecord, selector *Selector) ([]schema.Admission, error) {
	ordered := slices.Clone(records)
	slices.SortStableFunc(ordered, func(a, b schema.CountryRecord) int {
		return cmp.Compare(strings.ToLower(a.Identifier), strings.ToLower(b.Identifier))
	})
	for _, rec := range ordered {
		selector.Admit(rec)
	}
	if err := selector.Validate(); err != nil {
		return nil, err
	}
	return selector.Admitted(), nil
}

// ValidCountries returns the non-sentinel entries sorted by identifier.
func ValidCountries(records []schema.CountryRecord) []schema.CountryRecord {
	valid := make([]schema.CountryRecord, 0, len(records))
	for _, rec := range records {
		if rec.Identifier == "" || strings.HasPrefix(rec.Identifier, schema.SentinelPrefix) {
			continue
		}
		valid = append(valid, rec)
	}
	slices.SortStableFunc(valid, func(a, b schema.CountryRecord) int {
		return cmp.Compare(strings.ToLower(a.Identifier), strings.ToLower(b.Identifier))
	})
	return valid
}
