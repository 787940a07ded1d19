package altiumsch

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"testing"
)

func zlibCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		t.Fatalf("compressing test fixture: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("closing zlib writer: %v", err)
	}
	return buf.Bytes()
}

func u32Prefixed(t *testing.T, body []byte, nulTerminate bool) []byte {
	t.Helper()
	if nulTerminate {
		body = append(append([]byte{}, body...), 0)
	}
	header := make([]byte, 4)
	binary.LittleEndian.PutUint32(header, uint32(len(body)))
	return append(header, body...)
}

func buildStorageEntry(t *testing.T, path string, compressed []byte) []byte {
	t.Helper()
	var buf []byte
	buf = append(buf, 0, 0, 0, 0x01, 0xD0)
	buf = append(buf, byte(len(path)))
	buf = append(buf, []byte(path)...)
	blobHeader := make([]byte, 4)
	binary.LittleEndian.PutUint32(blobHeader, uint32(len(compressed)))
	buf = append(buf, blobHeader...)
	buf = append(buf, compressed...)
	return buf
}

func TestParseStorageStreamAndGet(t *testing.T) {
	plain := []byte("not an image, just bytes")
	compressed := zlibCompress(t, plain)

	header := u32Prefixed(t, []byte("|HEADER=Icon storage|Weight=1|"), true)
	entry := buildStorageEntry(t, "Icon1", compressed)
	stream := append(header, entry...)

	storage, err := parseStorageStream(stream, DefaultImageCodec{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	blob, err := storage.Get("Icon1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(blob.Data) != string(plain) {
		t.Errorf("got %q, want %q", blob.Data, plain)
	}

	// Second access must return the exact same shared handle.
	blob2, err := storage.Get("Icon1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blob != blob2 {
		t.Error("expected the same *Blob handle on repeated Get")
	}
}

func TestParseStorageStreamEmpty(t *testing.T) {
	header := u32Prefixed(t, []byte("|HEADER=Icon storage|"), true)
	storage, err := parseStorageStream(header, DefaultImageCodec{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(storage.Paths()) != 0 {
		t.Errorf("expected no entries, got %v", storage.Paths())
	}
}

func TestParseStorageStreamBadHeader(t *testing.T) {
	header := u32Prefixed(t, []byte("|HEADER=Something Else|Weight=1|"), true)
	if _, err := parseStorageStream(header, DefaultImageCodec{}); err == nil {
		t.Error("expected error for wrong header literal")
	}
}

func TestStorageGetMissingPath(t *testing.T) {
	header := u32Prefixed(t, []byte("|HEADER=Icon storage|"), true)
	storage, err := parseStorageStream(header, DefaultImageCodec{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	blob, err := storage.Get("nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if blob != nil {
		t.Errorf("expected nil blob for missing path, got %+v", blob)
	}
}
