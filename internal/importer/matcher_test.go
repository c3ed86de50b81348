package importer_test

import (
	"testing"

	"github.com/kardex/offerfunnel-api/internal/importer"
	"github.com/stretchr/testify/assert"
)

func TestContainmentMatcher(t *testing.T) {
	keys := []string{"acme industries", "globex corporation", "initech"}
	m := importer.ContainmentMatcher{}

	matched, ok := m.Match("acme industries pvt ltd", keys)
	assert.True(t, ok)
	assert.Equal(t, "acme industries", matched)

	// reverse containment: input shorter than the key
	matched, ok = m.Match("globex", keys)
	assert.True(t, ok)
	assert.Equal(t, "globex corporation", matched)

	_, ok = m.Match("umbrella corp", keys)
	assert.False(t, ok)
}

func TestContainmentMatcherPrefersCacheOrder(t *testing.T) {
	keys := []string{"alpha metals", "alpha metals india"}
	m := importer.ContainmentMatcher{}

	matched, ok := m.Match("alpha metals india pvt", keys)
	assert.True(t, ok)
	assert.Equal(t, "alpha metals", matched)
}

func TestFuzzyMatcher(t *testing.T) {
	keys := []string{"ramesh kumar", "suresh patel"}
	m := importer.FuzzyMatcher{}

	matched, ok := m.Match("ramesh", keys)
	assert.True(t, ok)
	assert.Equal(t, "ramesh kumar", matched)

	_, ok = m.Match("xyz", keys)
	assert.False(t, ok)
}
