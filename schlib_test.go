package altiumsch

import "testing"

func buildFileHeaderStream(body string) []byte {
	raw := append([]byte{0, 0, 0, 0, 0}, []byte(body)...)
	return append(raw, 0)
}

func TestLoadSchLib(t *testing.T) {
	body := "|" + fileHeaderLiteral +
		"|Weight=1|MinorVersion=2|CompCount=1|LibRef0=MyPart|CompDescr0=A test part|PartCount0=1|"

	src := newMapSource()
	src.streams[fileHeaderStreamName] = buildFileHeaderStream(body)
	src.streams["MyPart/Data"] = frameBytes(tagASCII, "|RECORD=4|OwnerIndex=0|Text=Hi|")

	lib, err := LoadSchLib(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lib.Header.Weight != 1 || lib.Header.MinorVersion != 2 {
		t.Errorf("got header %+v", lib.Header)
	}
	if len(lib.Components) != 1 || lib.Components[0].Libref != "MyPart" {
		t.Fatalf("got components %+v", lib.Components)
	}
	if lib.Components[0].SectionKey != "MyPart" {
		t.Errorf("got section key %q, want MyPart (fallback)", lib.Components[0].SectionKey)
	}

	comp, err := lib.Component("MyPart")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if comp.Name != "MyPart" {
		t.Errorf("got Name %q, want MyPart", comp.Name)
	}
	if comp.Fonts != lib.Fonts {
		t.Error("expected Component.Fonts to be the library's shared FontCollection")
	}
	if comp.Storage != lib.storage {
		t.Error("expected Component.Storage to be the library's shared Storage")
	}
	if len(comp.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(comp.Records))
	}
	label, ok := comp.Records[0].Value.(*Label)
	if !ok || label.Text != "Hi" {
		t.Errorf("got record %+v", comp.Records[0])
	}
}

func TestLoadSchLibMissingComponent(t *testing.T) {
	body := "|" + fileHeaderLiteral + "|CompCount=0|"
	src := newMapSource()
	src.streams[fileHeaderStreamName] = buildFileHeaderStream(body)

	lib, err := LoadSchLib(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := lib.Component("DoesNotExist"); err == nil {
		t.Error("expected error for unknown libref")
	}
}

func TestLoadSchLibBadHeaderLiteral(t *testing.T) {
	src := newMapSource()
	src.streams[fileHeaderStreamName] = buildFileHeaderStream("|HEADER=Something Else|")
	if _, err := LoadSchLib(src, Options{}); err == nil {
		t.Error("expected error for wrong FileHeader literal")
	}
}

func TestLoadSchLibWithSlashInLibref(t *testing.T) {
	body := "|" + fileHeaderLiteral + "|CompCount=1|LibRef0=A/B|CompDescr0=|PartCount0=1|"
	src := newMapSource()
	src.streams[fileHeaderStreamName] = buildFileHeaderStream(body)
	src.streams["A_B/Data"] = frameBytes(tagASCII, "|RECORD=1|OwnerIndex=0|")

	lib, err := LoadSchLib(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lib.Components[0].SectionKey != "A_B" {
		t.Errorf("got section key %q, want A_B", lib.Components[0].SectionKey)
	}
	if _, err := lib.Component("A/B"); err != nil {
		t.Fatalf("unexpected error loading component with slash-safety fixup: %v", err)
	}
}
