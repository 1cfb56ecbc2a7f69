package parse

import "testing"

func TestParseRandom(t *testing.T) {
	tests := []struct {
		in   string
		want Random
		ok   bool
	}{
		{"5", Random{Base: 5}, true},
		{"-3", Random{Base: -3}, true},
		{"2d8", Random{Dice: 2, Sides: 8}, true},
		{"d4", Random{Dice: 1, Sides: 4}, true},
		{"3+1d6", Random{Base: 3, Dice: 1, Sides: 6}, true},
		{"1d4M6", Random{Dice: 1, Sides: 4, MBonus: 6}, true},
		{"10+d10", Random{Base: 10, Dice: 1, Sides: 10}, true},
		{"1d10M10", Random{Dice: 1, Sides: 10, MBonus: 10}, true},
		{"", Random{}, false},
		{"xdy", Random{}, false},
		{"1d", Random{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseRandom(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseRandom(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && got != tt.want {
			t.Errorf("ParseRandom(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
