package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in      rune
		want    rune
		wantErr bool
	}{
		{'a', 'a', false},
		{'z', 'z', false},
		{'0', '0', false},
		{'9', '9', false},
		{'Q', 'q', false},
		{'-', 0, true},
		{' ', 0, true},
		{'ß', 0, true},
		{0, 0, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.in), func(t *testing.T) {
			got, err := NormalizeSymbol(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidSymbol)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsSymbol(got))
		})
	}
}
