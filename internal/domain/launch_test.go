package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []LaunchRecord {
	return []LaunchRecord{
		{Site: "CCAFS LC-40", Outcome: OutcomeSuccess, PayloadMass: 500, BoosterCategory: "v1.0"},
		{Site: "CCAFS LC-40", Outcome: OutcomeFailure, PayloadMass: 3000, BoosterCategory: "v1.1"},
		{Site: "KSC LC-39A", Outcome: OutcomeSuccess, PayloadMass: 5300, BoosterCategory: "FT"},
		{Site: "KSC LC-39A", Outcome: OutcomeSuccess, PayloadMass: 9600, BoosterCategory: "B4"},
	}
}

func TestNewTable_CopiesInput(t *testing.T) {
	records := sampleRecords()
	table := NewTable(records)

	records[0].Site = "mutated"
	assert.Equal(t, "CCAFS LC-40", table.Records()[0].Site)
}

func TestFilter_DoesNotMutateReceiver(t *testing.T) {
	table := NewTable(sampleRecords())

	successes := table.Filter(func(r LaunchRecord) bool { return r.Outcome == OutcomeSuccess })
	assert.Equal(t, 3, successes.Len())
	assert.Equal(t, 4, table.Len(), "filter must not mutate the source table")
}

func TestCountBy_Site(t *testing.T) {
	table := NewTable(sampleRecords())

	counts := table.CountBy(func(r LaunchRecord) string { return r.Site })
	assert.Equal(t, map[string]int{"CCAFS LC-40": 2, "KSC LC-39A": 2}, counts)
}

func TestSites_SortedDistinct(t *testing.T) {
	table := NewTable(sampleRecords())
	assert.Equal(t, []string{"CCAFS LC-40", "KSC LC-39A"}, table.Sites())
}

func TestPayloadBounds(t *testing.T) {
	table := NewTable(sampleRecords())

	lo, hi, ok := table.PayloadBounds()
	require.True(t, ok)
	assert.Equal(t, 500.0, lo)
	assert.Equal(t, 9600.0, hi)

	_, _, ok = Table{}.PayloadBounds()
	assert.False(t, ok)
}

func TestPayloadRange_Clamp(t *testing.T) {
	bounds := PayloadRange{Lo: 500, Hi: 9600}

	assert.Equal(t, PayloadRange{Lo: 500, Hi: 9600}, PayloadRange{Lo: 0, Hi: 20000}.Clamp(bounds))
	assert.Equal(t, PayloadRange{Lo: 1000, Hi: 2000}, PayloadRange{Lo: 2000, Hi: 1000}.Clamp(bounds))
	assert.Equal(t, PayloadRange{Lo: 700, Hi: 800}, PayloadRange{Lo: 700, Hi: 800}.Clamp(bounds))
}

func TestOutcomeLabel(t *testing.T) {
	assert.Equal(t, "Success", OutcomeLabel(OutcomeSuccess))
	assert.Equal(t, "Failure", OutcomeLabel(OutcomeFailure))
}
