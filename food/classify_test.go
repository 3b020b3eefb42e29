package food

import "testing"

func TestDairyOverrideIgnoresAmounts(t *testing.T) {
	tests := []struct {
		dairy Dairy
		want  Color
	}{
		{NonFatDairy, Green},
		{LowFatDairy, Yellow},
		{WholeFatDairy, Red},
	}

	for _, tt := range tests {
		// Amounts that would otherwise classify very differently.
		for _, amounts := range [][2]int{{0, 0}, {1, 1000}, {900, 100}, {-5, -5}} {
			got := Classify(tt.dairy, Solid, amounts[0], amounts[1])
			if got != tt.want {
				t.Errorf("Classify(%v, Solid, %d, %d) = %v, want %v",
					tt.dairy, amounts[0], amounts[1], got, tt.want)
			}
		}
	}
}

func TestClassifySolid(t *testing.T) {
	tests := []struct {
		name     string
		calories int
		grams    int
		want     Color
	}{
		{"well under green cutoff", 50, 100, Green},
		{"just under green cutoff", 99, 100, Green},
		{"exactly at green cutoff goes yellow", 100, 100, Yellow},
		{"mid yellow band", 200, 100, Yellow},
		{"just under yellow cutoff", 239, 100, Yellow},
		{"exactly at yellow cutoff goes red", 240, 100, Red},
		{"dense solid", 500, 100, Red},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(NotDairy, Solid, tt.calories, tt.grams)
			if got != tt.want {
				t.Errorf("Classify(NotDairy, Solid, %d, %d) = %v, want %v",
					tt.calories, tt.grams, got, tt.want)
			}
		})
	}
}

func TestClassifyWholeGrainHasNoRed(t *testing.T) {
	tests := []struct {
		calories int
		grams    int
		want     Color
	}{
		{100, 100, Green}, // 1.0, green for whole grain, yellow for plain solid
		{239, 100, Green},
		{240, 100, Yellow}, // exactly 2.4
		{900, 100, Yellow}, // whole grain caps at yellow
	}

	for _, tt := range tests {
		got := Classify(NotDairy, SolidWholeGrain, tt.calories, tt.grams)
		if got != tt.want {
			t.Errorf("Classify(NotDairy, SolidWholeGrain, %d, %d) = %v, want %v",
				tt.calories, tt.grams, got, tt.want)
		}
	}
}

func TestClassifyLiquidRegular(t *testing.T) {
	tests := []struct {
		calories int
		grams    int
		want     Color
	}{
		{39, 100, Green},
		{40, 100, Yellow}, // exactly 0.4
		{49, 100, Yellow},
		{50, 100, Red}, // exactly 0.5
		{200, 100, Red},
	}

	for _, tt := range tests {
		got := Classify(NotDairy, LiquidRegular, tt.calories, tt.grams)
		if got != tt.want {
			t.Errorf("Classify(NotDairy, LiquidRegular, %d, %d) = %v, want %v",
				tt.calories, tt.grams, got, tt.want)
		}
	}
}

func TestNonRegularLiquidsNeverGreen(t *testing.T) {
	for _, style := range []Style{LiquidSoda, LiquidAlcohol, LiquidSweetener} {
		tests := []struct {
			calories int
			grams    int
			want     Color
		}{
			{1, 100, Yellow},  // near-zero density still only yellow
			{30, 100, Yellow}, // 0.3
			{39, 100, Yellow},
			{40, 100, Red}, // exactly 0.4
			{100, 100, Red},
		}

		for _, tt := range tests {
			got := Classify(NotDairy, style, tt.calories, tt.grams)
			if got != tt.want {
				t.Errorf("Classify(NotDairy, %v, %d, %d) = %v, want %v",
					style, tt.calories, tt.grams, got, tt.want)
			}
			if got == Green {
				t.Errorf("%v reached Green at %d/%d", style, tt.calories, tt.grams)
			}
		}
	}
}

func TestClassifySoup(t *testing.T) {
	tests := []struct {
		calories int
		grams    int
		want     Color
	}{
		{49, 100, Green},
		{50, 100, Yellow}, // exactly 0.5
		{99, 100, Yellow},
		{100, 100, Red}, // exactly 1.0
		{300, 100, Red},
	}

	for _, tt := range tests {
		got := Classify(NotDairy, Soup, tt.calories, tt.grams)
		if got != tt.want {
			t.Errorf("Classify(NotDairy, Soup, %d, %d) = %v, want %v",
				tt.calories, tt.grams, got, tt.want)
		}
	}
}

func TestClassifyUnvalidatedAmountsAreUnknown(t *testing.T) {
	for _, amounts := range [][2]int{{0, 100}, {100, 0}, {-1, 100}, {100, -1}, {0, 0}} {
		got := Classify(NotDairy, Solid, amounts[0], amounts[1])
		if got != Unknown {
			t.Errorf("Classify(NotDairy, Solid, %d, %d) = %v, want Unknown",
				amounts[0], amounts[1], got)
		}
	}
}
