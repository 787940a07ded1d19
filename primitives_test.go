package altiumsch

import "testing"

func TestParseInt(t *testing.T) {
	tests := []struct {
		in      string
		want    int32
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"-7", -7, false},
		{"notanumber", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parseInt[int32]([]byte(tt.in))
		if (err != nil) != tt.wantErr {
			t.Errorf("parseInt(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("parseInt(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseUint(t *testing.T) {
	got, err := parseUint[uint8]([]byte("255"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 255 {
		t.Errorf("got %d, want 255", got)
	}

	if _, err := parseUint[uint8]([]byte("-1")); err == nil {
		t.Error("expected error parsing negative value as uint8")
	}
}

func TestParseBool(t *testing.T) {
	if b, err := parseBool([]byte("T")); err != nil || !b {
		t.Errorf("parseBool(T) = %v, %v", b, err)
	}
	if b, err := parseBool([]byte("F")); err != nil || b {
		t.Errorf("parseBool(F) = %v, %v", b, err)
	}
	if _, err := parseBool([]byte("true")); err == nil {
		t.Error("expected error parsing 'true' as bool")
	}
}

func TestParseFloat32(t *testing.T) {
	got, err := parseFloat32([]byte("3.5"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3.5 {
		t.Errorf("got %v, want 3.5", got)
	}
}
