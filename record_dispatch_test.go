package altiumsch

import "testing"

func TestDecodeASCIIRecordLabel(t *testing.T) {
	buf := []byte("|RECORD=4|OwnerIndex=2|Location.X=100|Location.Y=200|Text=Hello|")
	rec, err := decodeASCIIRecord(buf, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Kind != RecordLabel {
		t.Fatalf("got kind %v, want RecordLabel", rec.Kind)
	}
	if rec.Base.OwnerIndex != 2 {
		t.Errorf("got OwnerIndex %d, want 2", rec.Base.OwnerIndex)
	}
	label, ok := rec.Value.(*Label)
	if !ok {
		t.Fatalf("got value type %T, want *Label", rec.Value)
	}
	if label.Text != "Hello" {
		t.Errorf("got Text %q, want Hello", label.Text)
	}
	wantX, _ := milsToNm(100)
	if label.LocationX != wantX {
		t.Errorf("got LocationX %d, want %d", label.LocationX, wantX)
	}
}

func TestDecodeASCIIRecordUndefined(t *testing.T) {
	buf := []byte("|RECORD=9999|OwnerIndex=0|")
	rec, err := decodeASCIIRecord(buf, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Kind != RecordUndefined {
		t.Errorf("got kind %v, want RecordUndefined", rec.Kind)
	}
	if rec.Value != nil {
		t.Errorf("expected nil Value for an undefined record kind, got %#v", rec.Value)
	}
}

func TestDecodeASCIIRecordMissingRecordKey(t *testing.T) {
	buf := []byte("|OwnerIndex=0|")
	if _, err := decodeASCIIRecord(buf, nil, false); err == nil {
		t.Error("expected error for missing RECORD key")
	}
}

func TestDecodeRecordsMixedFrames(t *testing.T) {
	var buf []byte
	buf = append(buf, frameBytes(tagASCII, "|RECORD=1|OwnerIndex=0|")...)
	buf = append(buf, frameBytes(tagPin, string(buildPinBytes(0, 10, 0, 0)))...)

	records, pins, err := decodeRecords(buf, nil, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want 1", len(records))
	}
	if len(pins) != 1 {
		t.Errorf("got %d pins, want 1", len(pins))
	}
}

func TestDecodeASCIIRecordStrictUnknown(t *testing.T) {
	buf := []byte("|RECORD=9999|OwnerIndex=0|")
	if _, err := decodeASCIIRecord(buf, nil, true); err == nil {
		t.Error("expected error for unrecognized RECORD id under strict mode")
	}
}

func TestUnsupportedKeyCounting(t *testing.T) {
	before := UnsupportedKeyCount()

	buf := []byte("|RECORD=4|OwnerIndex=0|Text=Hello|SomeFutureKey=1|")
	if _, err := decodeASCIIRecord(buf, nil, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := UnsupportedKeyCount(); got != before+1 {
		t.Errorf("got counter %d, want %d after one unsupported key", got, before+1)
	}

	before = UnsupportedKeyCount()
	buf = []byte("|RECORD=9999|OwnerIndex=0|")
	if _, err := decodeASCIIRecord(buf, nil, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := UnsupportedKeyCount(); got != before+1 {
		t.Errorf("got counter %d, want %d after one unrecognized RECORD id", got, before+1)
	}
}

func TestWireNameForSubstitutions(t *testing.T) {
	tests := map[string]string{
		"LocationX":     "Location.X",
		"CornerX":       "Corner.X",
		"CornerXRadius": "CornerXRadius",
		"UniqueId":      "UniqueID",
		"FontId":        "FontID",
		"Accessible":    "Accesible",
		"OwnerIndex":    "OwnerIndex",
	}
	for in, want := range tests {
		if got := wireNameFor(in); got != want {
			t.Errorf("wireNameFor(%q) = %q, want %q", in, got, want)
		}
	}
}
