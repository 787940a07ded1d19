package altiumsch

import (
	"encoding/binary"
	"testing"
)

func frameBytes(tag byte, payload string) []byte {
	body := append([]byte(payload), 0)
	header := make([]byte, 4)
	binary.LittleEndian.PutUint32(header, uint32(tag)<<24|uint32(len(body)))
	return append(header, body...)
}

func TestParseAllRecordsSingleFrame(t *testing.T) {
	buf := frameBytes(tagASCII, "|RECORD=1|OwnerIndex=0|")
	records, err := parseAllRecords(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Tag != tagASCII {
		t.Errorf("got tag %d, want %d", records[0].Tag, tagASCII)
	}
	if string(records[0].Data) != "|RECORD=1|OwnerIndex=0|" {
		t.Errorf("got payload %q", records[0].Data)
	}
}

func TestParseAllRecordsMultipleFrames(t *testing.T) {
	var buf []byte
	buf = append(buf, frameBytes(tagASCII, "|RECORD=1|OwnerIndex=0|")...)
	buf = append(buf, frameBytes(tagASCII, "|RECORD=4|OwnerIndex=0|Text=Hi|")...)
	records, err := parseAllRecords(buf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
}

func TestParseAllRecordsTruncated(t *testing.T) {
	buf := frameBytes(tagASCII, "|RECORD=1|")
	buf = buf[:len(buf)-2] // cut the payload short
	if _, err := parseAllRecords(buf); err == nil {
		t.Error("expected error for truncated record payload")
	}
}

func TestParseAllRecordsMissingNul(t *testing.T) {
	header := make([]byte, 4)
	binary.LittleEndian.PutUint32(header, 3) // length 3, no NUL at end
	buf := append(header, []byte("abc")...)
	if _, err := parseAllRecords(buf); err == nil {
		t.Error("expected error for missing NUL terminator")
	}
}

func TestExtractU32LenBuf(t *testing.T) {
	body := append([]byte("|HEADER=X|"), 0)
	header := make([]byte, 4)
	binary.LittleEndian.PutUint32(header, uint32(len(body)))
	buf := append(header, body...)
	buf = append(buf, []byte("trailing")...)

	content, rest, err := extractU32LenBuf(buf, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != "|HEADER=X|" {
		t.Errorf("got %q", content)
	}
	if string(rest) != "trailing" {
		t.Errorf("got rest %q", rest)
	}
}

func TestExtractU8LenBuf(t *testing.T) {
	buf := append([]byte{5}, []byte("hello")...)
	buf = append(buf, []byte("more")...)

	content, rest, err := extractU8LenBuf(buf, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(content) != "hello" {
		t.Errorf("got %q", content)
	}
	if string(rest) != "more" {
		t.Errorf("got rest %q", rest)
	}
}
