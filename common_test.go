package altiumsch

import "testing"

func TestMilsToNm(t *testing.T) {
	got, err := milsToNm(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 254000 {
		t.Errorf("milsToNm(10) = %d, want 254000", got)
	}
}

func TestMilsToNmOverflow(t *testing.T) {
	if _, err := milsToNm(int32max); err == nil {
		t.Error("expected overflow error converting int32max mils to nm")
	}
}

func TestSplitAltiumMap(t *testing.T) {
	pairs, err := splitAltiumMap([]byte("|RECORD=1|OwnerIndex=2|Name=Foo|"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := [][2]string{{"RECORD", "1"}, {"OwnerIndex", "2"}, {"Name", "Foo"}}
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for i, p := range pairs {
		if string(p[0]) != want[i][0] || string(p[1]) != want[i][1] {
			t.Errorf("pair %d = (%s, %s), want (%s, %s)", i, p[0], p[1], want[i][0], want[i][1])
		}
	}
}

func TestSplitAltiumMapMissingEquals(t *testing.T) {
	if _, err := splitAltiumMap([]byte("|RECORD=1|Garbage|")); err == nil {
		t.Error("expected error for segment missing '='")
	}
}

func TestRgbFromUTF8(t *testing.T) {
	// 0x00BBGGRR packed little-endian in decimal ASCII: B=0x12, G=0x34, R=0x56.
	rgb, err := rgbFromUTF8([]byte("1193046"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rgb.R != 0x56 || rgb.G != 0x34 || rgb.B != 0x12 {
		t.Errorf("got %+v", rgb)
	}
	if got := rgb.ToHex(); got != "#563412" {
		t.Errorf("ToHex() = %s, want #563412", got)
	}
}

func TestUniqueIDFromUTF8Simple(t *testing.T) {
	id, err := uniqueIDFromUTF8([]byte("ABCDEFGH"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() != "ABCDEFGH" {
		t.Errorf("got %s, want ABCDEFGH", id.String())
	}
}

func TestUniqueIDFromUTF8UUID(t *testing.T) {
	id, err := uniqueIDFromUTF8([]byte("550E8400-E29B-41D4-A716-446655440000"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id.String() == "" {
		t.Error("expected non-empty UUID string")
	}
}

func TestDefaultUniqueId(t *testing.T) {
	if got := DefaultUniqueId().String(); got != "00000000" {
		t.Errorf("got %s, want 00000000", got)
	}
}

func TestSheetStyleFromUTF8(t *testing.T) {
	if _, err := sheetStyleFromUTF8([]byte("99")); err == nil {
		t.Error("expected error for out-of-range sheet style ordinal")
	}
	got, err := sheetStyleFromUTF8([]byte("0"))
	if err != nil || got != SheetStyleA4 {
		t.Errorf("got %v, %v, want SheetStyleA4", got, err)
	}
}
