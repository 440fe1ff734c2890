package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoney(t *testing.T) {
	tests := []struct {
		input string
		cents int64
	}{
		{"1000", 100000},
		{"0", 0},
		{"19.99", 1999},
		{"19.9", 1990},
		{"0.01", 1},
		{".50", 50},
		{"-5.25", -525},
		{"+3", 300},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			m, err := ParseMoney(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.cents, m.Cents())
		})
	}
}

func TestParseMoney_Invalid(t *testing.T) {
	// The signed-fraction cases guard against a stray sign after the
	// decimal point parsing as a valid amount.
	invalid := []string{"", "abc", "1.999", "1.", "1e3", "10,50", "1.-5", "1.+5", "--1", "-+1"}

	for _, input := range invalid {
		_, err := ParseMoney(input)
		assert.Error(t, err, "expected error for %q", input)
	}
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "1000", NewMoneyFromCents(100000).String())
	assert.Equal(t, "19.99", NewMoneyFromCents(1999).String())
	assert.Equal(t, "19.90", NewMoneyFromCents(1990).String())
	assert.Equal(t, "0.05", NewMoneyFromCents(5).String())
	assert.Equal(t, "0", NewMoneyFromCents(0).String())
	assert.Equal(t, "-5.25", NewMoneyFromCents(-525).String())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	// A price of 1000 must survive marshal/unmarshal with no drift.
	original := NewMoneyFromCents(100000)

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, "1000", string(data))

	var decoded Money
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestMoney_UnmarshalJSONNumber(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`19.99`), &m))
	assert.Equal(t, int64(1999), m.Cents())

	// Quoted decimal strings are tolerated.
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &m))
	assert.Equal(t, int64(4200), m.Cents())

	// Three fractional digits would lose precision.
	assert.Error(t, json.Unmarshal([]byte(`19.999`), &m))
}

func TestMoney_Arithmetic(t *testing.T) {
	price := NewMoneyFromCents(100000) // 1000
	total := price.Mul(2)
	assert.Equal(t, int64(200000), total.Cents())
	assert.Equal(t, "2000", total.String())

	sum := price.Add(NewMoneyFromCents(50))
	assert.Equal(t, "1000.50", sum.String())
}

func TestCart_IsEmpty(t *testing.T) {
	assert.True(t, EmptyCart("USER-1").IsEmpty())
	assert.True(t, (*Cart)(nil).IsEmpty())

	cart := &Cart{UserID: "USER-1", Items: []CartItem{{ProductID: "PROD-1", Quantity: 1}}}
	assert.False(t, cart.IsEmpty())
}
