package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImportanceOrdering(t *testing.T) {
	assert.True(t, ImportanceLow < ImportanceMiddle)
	assert.True(t, ImportanceMiddle < ImportanceHigh)
	assert.True(t, ImportanceHigh < ImportanceCritical)
}

func TestImportanceHighPlus(t *testing.T) {
	assert.False(t, ImportanceLow.HighPlus())
	assert.False(t, ImportanceMiddle.HighPlus())
	assert.True(t, ImportanceHigh.HighPlus())
	assert.True(t, ImportanceCritical.HighPlus())

	assert.False(t, ImportanceLow.MiddlePlus())
	assert.True(t, ImportanceMiddle.MiddlePlus())
}

func TestParseImportance(t *testing.T) {
	parsed, err := ParseImportance("CRITICAL")
	assert.NoError(t, err)
	assert.Equal(t, ImportanceCritical, parsed)

	_, err = ParseImportance("urgent")
	assert.Error(t, err)
}
