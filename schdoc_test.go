package altiumsch

import "testing"

func TestLoadSchDoc(t *testing.T) {
	header := u32Prefixed(t, []byte("|HEADER="+schDocHeaderLiteral+"|UniqueID=ABCDEFGH|"), true)

	var records []byte
	records = append(records, frameBytes(tagASCII,
		"|RECORD=31|OwnerIndex=0|SheetStyle=0|FontIdCount=1|FontName1=Times New Roman|Size1=10|")...)
	records = append(records, frameBytes(tagASCII, "|RECORD=4|OwnerIndex=1|Text=Hello|")...)

	src := newMapSource()
	src.streams[fileHeaderDocStreamName] = append(header, records...)

	doc, err := LoadSchDoc(src, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.UniqueID.String() != "ABCDEFGH" {
		t.Errorf("got UniqueID %s, want ABCDEFGH", doc.UniqueID.String())
	}
	if doc.Sheet == nil {
		t.Fatal("expected a decoded Sheet")
	}
	if doc.Fonts.Len() != 1 || doc.Fonts.At(1).Name != "Times New Roman" || doc.Fonts.At(1).Size != 10 {
		t.Errorf("got fonts %+v", doc.Fonts)
	}
	if len(doc.Records) != 1 {
		t.Fatalf("got %d non-Sheet records, want 1", len(doc.Records))
	}
	label, ok := doc.Records[0].Value.(*Label)
	if !ok || label.Text != "Hello" {
		t.Errorf("got record %+v", doc.Records[0])
	}
}

func TestLoadSchDocMissingSheet(t *testing.T) {
	header := u32Prefixed(t, []byte("|HEADER="+schDocHeaderLiteral+"|UniqueID=ABCDEFGH|"), true)
	records := frameBytes(tagASCII, "|RECORD=4|OwnerIndex=0|Text=NoSheetHere|")

	src := newMapSource()
	src.streams[fileHeaderDocStreamName] = append(header, records...)

	if _, err := LoadSchDoc(src, Options{}); err == nil {
		t.Error("expected error for a document with no Sheet record")
	}
}

func TestLoadSchDocBadHeaderLiteral(t *testing.T) {
	header := u32Prefixed(t, []byte("|HEADER=Not A SchDoc|"), true)
	src := newMapSource()
	src.streams[fileHeaderDocStreamName] = header

	if _, err := LoadSchDoc(src, Options{}); err == nil {
		t.Error("expected error for wrong SchDoc header literal")
	}
}
