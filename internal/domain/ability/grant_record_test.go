package ability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tidegate/charcore/internal/domain/ability"
)

func TestGrantRecord(t *testing.T) {
	record := ability.NewGrantRecord()
	assert.Zero(t, record.Size())
	assert.False(t, record.Has("fireball"))

	record.Add(ability.Handle{ID: "h1", ClassKey: "fireball", InputID: ability.InputAbility1})
	record.Add(ability.Handle{ID: "h2", ClassKey: "blink", InputID: ability.InputAbility2})

	assert.Equal(t, 2, record.Size())
	assert.True(t, record.Has("fireball"))

	h, ok := record.Handle("blink")
	require.True(t, ok)
	assert.Equal(t, "h2", h.ID)

	_, ok = record.Handle("rage")
	assert.False(t, ok)

	handles := record.Handles()
	require.Len(t, handles, 2)
	assert.Equal(t, "fireball", handles[0].ClassKey)
	assert.Equal(t, "blink", handles[1].ClassKey)

	// Returned slice is a copy; mutating it leaves the record intact
	handles[0].ClassKey = "tampered"
	fresh := record.Handles()
	assert.Equal(t, "fireball", fresh[0].ClassKey)
}

func TestClassIsValid(t *testing.T) {
	var missing *ability.Class
	assert.False(t, missing.IsValid())
	assert.False(t, (&ability.Class{}).IsValid())
	assert.True(t, (&ability.Class{Key: "rage"}).IsValid())
}
