package validation

import (
	"reflect"
	"testing"
)

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		name    string
		days    []string
		want    []string
		wantErr bool
	}{
		{
			name: "full names pass through",
			days: []string{"monday", "wednesday"},
			want: []string{"monday", "wednesday"},
		},
		{
			name: "abbreviations and case normalize",
			days: []string{"Mon", "WEDNESDAY", "fri"},
			want: []string{"monday", "wednesday", "friday"},
		},
		{
			name: "duplicates collapse",
			days: []string{"tue", "tuesday", "Tue"},
			want: []string{"tuesday"},
		},
		{
			name: "canonical week order starts sunday",
			days: []string{"saturday", "monday", "sunday"},
			want: []string{"sunday", "monday", "saturday"},
		},
		{
			name: "blank entries are skipped",
			days: []string{"", " mon ", ""},
			want: []string{"monday"},
		},
		{
			name:    "unknown day rejected",
			days:    []string{"monday", "someday"},
			wantErr: true,
		},
		{
			name: "empty input yields nil",
			days: nil,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFrequency(tt.days)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFrequency(%v) succeeded, want error", tt.days)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFrequency(%v): %v", tt.days, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseFrequency(%v) = %v, want %v", tt.days, got, tt.want)
			}
		})
	}
}

func TestParseFrequencyList(t *testing.T) {
	got, err := ParseFrequencyList("mon, Wed,FRIDAY")
	if err != nil {
		t.Fatalf("ParseFrequencyList: %v", err)
	}
	want := []string{"monday", "wednesday", "friday"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParseFrequencyList = %v, want %v", got, want)
	}

	if _, err := ParseFrequencyList("mon,funday"); err == nil {
		t.Error("expected error for unknown day in list")
	}
}

func TestValidateName(t *testing.T) {
	if err := ValidateName("Read"); err != nil {
		t.Errorf("ValidateName(Read): %v", err)
	}
	if err := ValidateName("   "); err == nil {
		t.Error("whitespace-only name should be rejected")
	}
}

func TestValidateCounts(t *testing.T) {
	if err := ValidateDailyTarget(0); err != nil {
		t.Errorf("zero daily target should be allowed: %v", err)
	}
	if err := ValidateDailyTarget(-1); err == nil {
		t.Error("negative daily target should be rejected")
	}
	if err := ValidateGoal(0); err != nil {
		t.Errorf("zero goal should be allowed: %v", err)
	}
	if err := ValidateGoal(-3); err == nil {
		t.Error("negative goal should be rejected")
	}
}

func TestValidateReminderTime(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"08:00", false},
		{"23:59", false},
		{"8am", true},
		{"25:00", true},
	}

	for _, tt := range tests {
		err := ValidateReminderTime(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateReminderTime(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}
