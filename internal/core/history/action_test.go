package history

import (
	"errors"
	"testing"

	"github.com/bethropolis/overlay/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPropertyChange(t *testing.T) {
	a, err := NewPropertyChange(1, types.FontFamily, types.StringValue("Arial"), types.StringValue("Lato"))
	require.NoError(t, err)
	assert.Equal(t, PropertyChangeAction, a.Type)
	assert.Equal(t, "Lato", a.After.Str())
	assert.Equal(t, `Set fontFamily of #1 to "Lato"`, a.Description())
}

func TestNewPropertyChangeRejectsWrongKind(t *testing.T) {
	tests := []struct {
		name   string
		prop   types.Property
		before types.Value
		after  types.Value
	}{
		{"size as string", types.FontSize, types.StringValue("20"), types.NumberValue(30)},
		{"underline as string", types.Underline, types.BoolValue(false), types.StringValue("")},
		{"zero value", types.Left, types.Value{}, types.NumberValue(1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPropertyChange(1, tt.prop, tt.before, tt.after)
			assert.True(t, errors.Is(err, ErrValueKind))
		})
	}

	_, err := NewPropertyChange(1, types.Property(42), types.NumberValue(1), types.NumberValue(2))
	assert.Error(t, err)
}

func TestActionEqual(t *testing.T) {
	a, _ := NewPropertyChange(1, types.Top, types.NumberValue(1), types.NumberValue(2))
	b, _ := NewPropertyChange(1, types.Top, types.NumberValue(1), types.NumberValue(2))
	c, _ := NewPropertyChange(1, types.Top, types.NumberValue(1), types.NumberValue(3))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, NewCreate(3).Equal(NewCreate(3)))
	assert.False(t, NewCreate(3).Equal(NewCreate(4)))
	assert.False(t, NewCreate(1).Equal(a))
	assert.Equal(t, "Create(3)", NewCreate(3).String())
}
