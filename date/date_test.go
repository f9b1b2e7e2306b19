package date

import "testing"

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		name      string
		in        string
		want      Date
		expectErr bool
	}{
		{"canonical", "2025-07-01", New(2025, 7, 1), false},
		{"permissive", "2025-7-1", New(2025, 7, 1), false},
		{"not a date", "yesterday", Date{}, true},
		{"empty", "", Date{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			hasErr := err != nil
			if hasErr != tc.expectErr {
				t.Fatalf("Parse(%q) returned error: %v, want error: %v", tc.in, err, tc.expectErr)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %v want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalization(t *testing.T) {
	// New normalizes out-of-range days the way time.Date does.
	if got, want := New(2025, 7, 32), New(2025, 8, 1); got != want {
		t.Errorf("New(2025, 7, 32) = %v want %v", got, want)
	}
}
