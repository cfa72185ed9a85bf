package models

import "testing"

func TestParsePeriodicity(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Periodicity
		wantErr bool
	}{
		{name: "daily", input: "daily", want: PeriodicityDaily},
		{name: "weekly", input: "weekly", want: PeriodicityWeekly},
		{name: "mixed case with spaces", input: "  Weekly ", want: PeriodicityWeekly},
		{name: "monthly", input: "monthly", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeriodicity(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePeriodicity(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParsePeriodicity(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPeriodicityValid(t *testing.T) {
	for _, p := range Periodicities {
		if !p.Valid() {
			t.Errorf("%q should be valid", p)
		}
	}
	if Periodicity("Daily").Valid() {
		t.Error("Valid() must be case-sensitive; use ParsePeriodicity for user input")
	}
}
