package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalog(t *testing.T) {
	c := NewCatalog(nil)
	assert.Equal(t, len(DefaultFamilies), c.Len())
	assert.Equal(t, "Arial", c.Families()[0])

	name, ok := c.Lookup("times new roman")
	assert.True(t, ok)
	assert.Equal(t, "Times New Roman", name)

	_, ok = c.Lookup("Wingdings")
	assert.False(t, ok)
}

func TestCatalogDedup(t *testing.T) {
	c := NewCatalog([]string{"Lato", " lato ", "", "Roboto"})
	assert.Equal(t, []string{"Lato", "Roboto"}, c.Families())

	blank := NewCatalog([]string{"", " "})
	assert.Equal(t, len(DefaultFamilies), blank.Len())
}

func TestStepWraps(t *testing.T) {
	c := NewCatalog([]string{"A", "B", "C"})

	tests := []struct {
		current string
		delta   int
		want    string
	}{
		{"A", 1, "B"},
		{"C", 1, "A"},
		{"A", -1, "C"},
		{"b", 4, "C"},
		{"unknown", 1, "A"},
		{"unknown", -1, "C"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, c.Step(tt.current, tt.delta), "%s%+d", tt.current, tt.delta)
	}
}
