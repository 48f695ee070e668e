package question

import "testing"

func TestIncreaseDecrease(t *testing.T) {
	tests := []struct {
		name     string
		level    Creativity
		wantUp   Creativity
		wantDown Creativity
	}{
		{name: "low", level: Low, wantUp: Medium, wantDown: Low},
		{name: "medium", level: Medium, wantUp: High, wantDown: Low},
		{name: "high", level: High, wantUp: Maximum, wantDown: Medium},
		{name: "maximum", level: Maximum, wantUp: Maximum, wantDown: High},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Increase(tt.level); got != tt.wantUp {
				t.Errorf("Increase(%s) = %s, want %s", tt.level, got, tt.wantUp)
			}
			if got := Decrease(tt.level); got != tt.wantDown {
				t.Errorf("Decrease(%s) = %s, want %s", tt.level, got, tt.wantDown)
			}
		})
	}
}

func TestDecreaseUndoesIncrease(t *testing.T) {
	for _, level := range creativityScale {
		want := level
		if level == Maximum {
			// clamped going up, so coming back down lands one below
			want = High
		}
		if got := Decrease(Increase(level)); got != want {
			t.Errorf("Decrease(Increase(%s)) = %s, want %s", level, got, want)
		}
	}
}

func TestBoundariesAreIdempotent(t *testing.T) {
	if got := Increase(Increase(Maximum)); got != Maximum {
		t.Errorf("Increase twice from maximum = %s", got)
	}
	if got := Decrease(Decrease(Low)); got != Low {
		t.Errorf("Decrease twice from low = %s", got)
	}
}

func TestUnknownLevelIsLeftAlone(t *testing.T) {
	bogus := Creativity(42)
	if Increase(bogus) != bogus || Decrease(bogus) != bogus {
		t.Error("stepping an unknown level should return it unchanged")
	}
	if bogus.Valid() {
		t.Error("Valid() = true for unknown level")
	}
}

func TestParseCreativity(t *testing.T) {
	tests := []struct {
		in      string
		want    Creativity
		wantErr bool
	}{
		{in: "low", want: Low},
		{in: "Medium", want: Medium},
		{in: " HIGH ", want: High},
		{in: "maximum", want: Maximum},
		{in: "none", want: DefaultCreativity, wantErr: true},
		{in: "", want: DefaultCreativity, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCreativity(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCreativity(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseCreativity(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestTemperatureRisesWithCreativity(t *testing.T) {
	prev := -1.0
	for _, level := range creativityScale {
		temp := level.Temperature()
		if temp <= prev {
			t.Errorf("%s temperature %.2f not above %.2f", level, temp, prev)
		}
		prev = temp
	}
}
