package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyKinds(t *testing.T) {
	tests := []struct {
		prop Property
		name string
		kind ValueKind
	}{
		{FontFamily, "fontFamily", KindString},
		{FontSize, "fontSize", KindNumber},
		{FontWeight, "fontWeight", KindString},
		{FontStyle, "fontStyle", KindString},
		{Underline, "underline", KindBool},
		{Left, "left", KindNumber},
		{Top, "top", KindNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.prop.String())
			assert.Equal(t, tt.kind, tt.prop.Kind())

			parsed, err := ParseProperty(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.prop, parsed)
		})
	}
	assert.Len(t, Properties(), len(tests))
}

func TestParsePropertyUnknown(t *testing.T) {
	_, err := ParseProperty("fill")
	assert.Error(t, err)
	assert.False(t, Property(99).Valid())
	assert.Equal(t, KindInvalid, Property(99).Kind())
}

func TestValueEqualAndFits(t *testing.T) {
	assert.True(t, NumberValue(20).Equal(NumberValue(20)))
	assert.False(t, NumberValue(20).Equal(NumberValue(30)))
	assert.False(t, StringValue("1").Equal(NumberValue(1)))
	assert.True(t, BoolValue(true).Equal(BoolValue(true)))
	assert.True(t, Value{}.Equal(Value{}))

	assert.True(t, StringValue("Arial").Fits(FontFamily))
	assert.False(t, StringValue("20").Fits(FontSize))
	assert.True(t, BoolValue(false).Fits(Underline))
	assert.False(t, Value{}.Fits(Left))

	assert.Equal(t, `"bold"`, StringValue("bold").String())
	assert.Equal(t, "20", NumberValue(20).String())
	assert.Equal(t, "<invalid>", Value{}.String())
}

func TestPositionClamp(t *testing.T) {
	p := Position{Left: -5, Top: 500}.Clamp(400, 400)
	assert.Equal(t, Position{Left: 0, Top: 399}, p)
	assert.Equal(t, Position{Left: 12, Top: 8}, Position{Left: 10, Top: 10}.Offset(2, -2))
}
