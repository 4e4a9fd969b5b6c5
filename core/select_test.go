package core

import (
	"errors"
	"testing"

	"github.com/huangsam/trajectory/internal/contract"
	"github.com/huangsam/trajectory/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feed() []schema.CountryRecord {
	return []schema.CountryRecord{
		{Identifier: "-bogus", Name: "Bogus", TotalConfirmed: 1_000_000},
		{Identifier: "us", Name: "United States of America", TotalConfirmed: 85000},
		{Identifier: "germany", Name: "Germany", TotalConfirmed: 43000},
		{Identifier: "france", Name: "France", TotalConfirmed: 29000},
		{Identifier: "", Name: "Nowhere", TotalConfirmed: 5},
		{Identifier: "iran", Name: "Iran, Islamic Republic of", TotalConfirmed: 29000},
		{Identifier: "korea-south", Name: "Korea (South)", TotalConfirmed: 9000},
		{Identifier: "korea-north", Name: "Korea, North", TotalConfirmed: 0},
		{Identifier: "south-korea", Name: "Korea, South", TotalConfirmed: 9000},
	}
}

func keys(admissions []schema.Admission) []string {
	out := make([]string, len(admissions))
	for i, a := range admissions {
		out[i] = a.Key
	}
	return out
}

func displays(admissions []schema.Admission) []string {
	out := make([]string, len(admissions))
	for i, a := range admissions {
		out[i] = a.Display
	}
	return out
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Korea", DisplayName("Korea, South"))
	assert.Equal(t, "Korea", DisplayName("Korea (South)"))
	assert.Equal(t, "Iran", DisplayName("Iran, Islamic Republic of"))
	assert.Equal(t, "Venezuela", DisplayName("Venezuela (Bolivarian Republic)"))
	assert.Equal(t, "Italy", DisplayName("Italy"))
}

func TestSelectCountriesListMode(t *testing.T) {
	cfg := &contract.Config{Selection: schema.ListSelection, Countries: []string{"US", "Germany"}}

	admissions, err := SelectCountries(feed(), NewSelector(cfg))
	require.NoError(t, err)
	assert.Equal(t, []string{"germany", "us"}, keys(admissions))
	assert.Equal(t, []string{"Germany", "US"}, displays(admissions))
	assert.NotContains(t, keys(admissions), "france")
}

func TestSelectCountriesListModeMatchesDisplayName(t *testing.T) {
	cfg := &contract.Config{Selection: schema.ListSelection, Countries: []string{"iran"}}

	admissions, err := SelectCountries(feed(), NewSelector(cfg))
	require.NoError(t, err)
	require.Len(t, admissions, 1)
	assert.Equal(t, "iran", admissions[0].Identifier)
	assert.Equal(t, "iran", admissions[0].Display)
}

func TestSelectCountriesUnresolved(t *testing.T) {
	cfg := &contract.Config{Selection: schema.ListSelection, Countries: []string{"Germany", "Atlantis"}}

	_, err := SelectCountries(feed(), NewSelector(cfg))
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrUnresolvedSelection)

	var unresolved *schema.UnresolvedSelectionError
	require.True(t, errors.As(err, &unresolved))
	assert.Equal(t, []string{"Atlantis"}, unresolved.Missing)
	assert.ElementsMatch(t, []string{"us", "germany", "france", "iran", "korea-south", "korea-north", "south-korea"}, unresolved.Available)
	assert.Contains(t, err.Error(), "Atlantis")
	assert.Contains(t, err.Error(), "germany")
	assert.NotContains(t, err.Error(), "-bogus")
}

func TestSelectCountriesKoreaSuppression(t *testing.T) {
	cfg := &contract.Config{Selection: schema.ListSelection, Countries: []string{"Korea", "France"}}

	admissions, err := SelectCountries(feed(), NewSelector(cfg))
	require.NoError(t, err)
	assert.Equal(t, []string{"france"}, keys(admissions))
}

func TestSelectCountriesSpecificKoreaIsAdmitted(t *testing.T) {
	cfg := &contract.Config{Selection: schema.ListSelection, Countries: []string{"south-korea", "France"}}

	admissions, err := SelectCountries(feed(), NewSelector(cfg))
	require.NoError(t, err)
	assert.Equal(t, []string{"france", "south-korea"}, keys(admissions))
	assert.Equal(t, []string{"France", "south-korea"}, displays(admissions))
}

func TestSelectCountriesExplicitNorthKorea(t *testing.T) {
	cfg := &contract.Config{Selection: schema.ListSelection, Countries: []string{"korea-north"}}

	admissions, err := SelectCountries(feed(), NewSelector(cfg))
	require.NoError(t, err)
	assert.Equal(t, []string{"korea-north"}, keys(admissions))
}

func TestSelectorKoreaListedNeedsBareEntry(t *testing.T) {
	tests := []struct {
		name      string
		countries []string
		expected  bool
	}{
		{"bare", []string{"Korea"}, true},
		{"bare lower case", []string{"france", "korea"}, true},
		{"identifier", []string{"korea-south"}, false},
		{"reversed identifier", []string{"south-korea"}, false},
		{"feed name", []string{"Korea (South)"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(&contract.Config{Selection: schema.ListSelection, Countries: tt.countries})
			assert.Equal(t, tt.expected, s.koreaListed())
		})
	}
}

func TestSelectCountriesThresholdMode(t *testing.T) {
	cfg := &contract.Config{Selection: schema.ThresholdSelection, Threshold: 29000}

	admissions, err := SelectCountries(feed(), NewSelector(cfg))
	require.NoError(t, err)
	assert.Equal(t, []string{"france", "germany", "iran", "us"}, keys(admissions))
	assert.Equal(t, []string{"France", "Germany", "Iran", "United States of America"}, displays(admissions))
}

func TestSelectCountriesNoneMode(t *testing.T) {
	cfg := &contract.Config{Selection: schema.NoSelection}

	admissions, err := SelectCountries(feed(), NewSelector(cfg))
	require.NoError(t, err)
	// The North is skipped, the South is admitted once and its second entry
	// is a consecutive duplicate.
	assert.Equal(t, []string{"france", "germany", "iran", "korea-south", "us"}, keys(admissions))
}

func TestSelectorConsecutiveDuplicates(t *testing.T) {
	s := NewSelector(&contract.Config{Selection: schema.NoSelection})

	_, ok := s.Admit(schema.CountryRecord{Identifier: "congo-brazzaville", Name: "Congo (Brazzaville)"})
	assert.True(t, ok)
	_, ok = s.Admit(schema.CountryRecord{Identifier: "congo-kinshasa", Name: "Congo (Kinshasa)"})
	assert.False(t, ok, "same display name as the previous admission")
	_, ok = s.Admit(schema.CountryRecord{Identifier: "cuba", Name: "Cuba"})
	assert.True(t, ok)
	_, ok = s.Admit(schema.CountryRecord{Identifier: "congo", Name: "Congo"})
	assert.True(t, ok, "only consecutive duplicates are suppressed")
}

func TestSelectorSkipsSentinels(t *testing.T) {
	s := NewSelector(&contract.Config{Selection: schema.NoSelection})

	_, ok := s.Admit(schema.CountryRecord{Identifier: "-", Name: "Global"})
	assert.False(t, ok)
	_, ok = s.Admit(schema.CountryRecord{Identifier: "", Name: "Empty"})
	assert.False(t, ok)
	assert.Empty(t, s.Admitted())
	assert.NoError(t, s.Validate())
}

func TestValidCountries(t *testing.T) {
	valid := ValidCountries(feed())
	ids := make([]string, len(valid))
	for i, v := range valid {
		ids[i] = v.Identifier
	}
	assert.Equal(t, []string{"france", "germany", "iran", "korea-north", "korea-south", "south-korea", "us"}, ids)
}
