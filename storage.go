package altiumsch

import (
	"bytes"
	"compress/zlib"
	"image"
	"image/color"
	_ "image/jpeg"
	"image/png"
	"io"
	"sync"

	"github.com/gabriel-vasile/mimetype"
)

// storageHeaderLiteral is the mandatory first key-value pair of the Storage
// stream's header frame.
const storageHeaderLiteral = "Icon storage"

// Blob is a shared, immutable handle to a decompressed (and possibly
// image-reencoded) storage entry. Repeated lookups of the same path return
// the same *Blob, satisfying the "decompress at most once, share the
// result" invariant (spec.md §4.10, §8).
type Blob struct {
	Data []byte
}

// storageCell is one entry of the Storage stream: compressed bytes until
// first access, then a shared expanded Blob. The compressed→expanded
// transition happens at most once, guarded by mu.
type storageCell struct {
	mu         sync.Mutex
	compressed []byte
	expanded   *Blob
}

// Storage is the mapping from a path-like string to a storage cell, shared
// by reference across every record that was decoded alongside it.
type Storage struct {
	codec ImageCodec
	cells map[string]*storageCell
}

// newStorage builds an empty storage table using the given image codec for
// lazy decompression post-processing (nil uses DefaultImageCodec).
func newStorage(codec ImageCodec) *Storage {
	if codec == nil {
		codec = DefaultImageCodec{}
	}
	return &Storage{codec: codec, cells: make(map[string]*storageCell)}
}

// Paths returns the set of paths known to this storage table.
func (s *Storage) Paths() []string {
	if s == nil {
		return nil
	}
	out := make([]string, 0, len(s.cells))
	for p := range s.cells {
		out = append(out, p)
	}
	return out
}

// Get returns the decompressed (and image-post-processed) contents at path,
// decompressing on first access and sharing the resulting handle on every
// subsequent call.
func (s *Storage) Get(path string) (*Blob, error) {
	if s == nil {
		return nil, nil
	}
	cell, ok := s.cells[path]
	if !ok {
		return nil, nil
	}

	cell.mu.Lock()
	defer cell.mu.Unlock()

	if cell.expanded != nil {
		return cell.expanded, nil
	}

	raw, err := inflateZlib(cell.compressed)
	if err != nil {
		return nil, wrapContext(err, "expanding storage entry %q", path)
	}

	encoded, err := postProcessImage(s.codec, raw)
	if err != nil {
		// Not every storage blob is an image; fall back to the raw
		// inflated bytes rather than failing the whole lookup.
		encoded = raw
	}

	cell.expanded = &Blob{Data: encoded}
	return cell.expanded, nil
}

func inflateZlib(compressed []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, NewError(KindInvalidStorageData, "zlib: %w", err)
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, NewError(KindInvalidStorageData, "zlib: %w", err)
	}
	return out, nil
}

// postProcessImage mirrors the teacher's ParseIconToPng pipeline: sniff the
// blob's type, and if it is image data, decode + re-encode as PNG,
// substituting white pixels with transparency (a common need for icon-style
// monochrome-background glyphs embedded in schematic libraries).
func postProcessImage(codec ImageCodec, raw []byte) ([]byte, error) {
	mt := mimetype.Detect(raw)
	if !bytesHasImagePrefix(mt.String()) {
		return raw, NewError(KindImage, "not image data (detected %s)", mt.String())
	}

	img, err := codec.Decode(raw)
	if err != nil {
		return nil, NewError(KindImage, "decoding storage image: %w", err)
	}

	whitenedToTransparent := whiteToTransparent(img)
	return codec.Encode(whitenedToTransparent)
}

func bytesHasImagePrefix(mime string) bool {
	return len(mime) >= 6 && mime[:6] == "image/"
}

// whiteToTransparent substitutes pure-white pixels with a transparent alpha
// channel, matching Altium's convention of flattening icon transparency to
// white in some storage formats.
func whiteToTransparent(img image.Image) image.Image {
	bounds := img.Bounds()
	out := image.NewNRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			r8, g8, b8, a8 := uint8(r>>8), uint8(g>>8), uint8(b>>8), uint8(a>>8)
			if r8 == 0xff && g8 == 0xff && b8 == 0xff {
				a8 = 0
			}
			out.SetNRGBA(x, y, color.NRGBA{R: r8, G: g8, B: b8, A: a8})
		}
	}
	return out
}

// parseStorageStream decodes the Storage stream (C7, spec.md §4.10). A
// missing stream is handled by the caller (schdoc.go) as an empty Storage;
// here buf is always the full stream contents.
func parseStorageStream(buf []byte, codec ImageCodec) (*Storage, error) {
	storage := newStorage(codec)

	hdr, rest, err := extractU32LenBuf(buf, true)
	if err != nil {
		return nil, wrapContext(err, "reading Storage header frame")
	}

	pairs, err := splitAltiumMap(hdr)
	if err != nil {
		return nil, wrapContext(err, "parsing Storage header")
	}

	if len(pairs) == 0 {
		return nil, NewError(KindInvalidHeader, "Storage header: no key-value pairs, want HEADER=%q", storageHeaderLiteral)
	}

	sawWeight := false
	for i, pair := range pairs {
		key, val := string(pair[0]), pair[1]
		switch {
		case i == 0:
			if key != "HEADER" || string(val) != storageHeaderLiteral {
				return nil, NewError(KindInvalidHeader, "Storage header: got %s=%q want HEADER=%q", key, val, storageHeaderLiteral)
			}
		case key == "Weight":
			sawWeight = true
		}
	}

	if !sawWeight {
		if len(rest) != 0 {
			return nil, NewError(KindInvalidStream, "Storage stream has trailing bytes with no Weight key")
		}
		return storage, nil
	}

	for len(rest) > 0 {
		var path string
		var blob []byte
		path, blob, rest, err = parseStorageEntry(rest)
		if err != nil {
			return nil, wrapContext(err, "parsing Storage entry")
		}
		storage.cells[path] = &storageCell{compressed: blob}
	}

	return storage, nil
}

// storageEntryMarkerTail holds the last two bytes of the 5-byte marker
// preceding every Storage entry; the first three bytes are a discardable
// length copy per spec.md §4.10 and are not checked.
var storageEntryMarkerTail = [2]byte{0x01, 0xD0}

func parseStorageEntry(buf []byte) (path string, blob []byte, rest []byte, err error) {
	if len(buf) < 5 {
		return "", nil, nil, NewError(KindBufferTooShort, "storage entry marker: need 5, have %d", len(buf))
	}
	if buf[3] != storageEntryMarkerTail[0] || buf[4] != storageEntryMarkerTail[1] {
		return "", nil, nil, NewError(KindInvalidStorageData, "storage entry marker mismatch: %s", NewTruncBuf(buf))
	}
	buf = buf[5:]

	pathBytes, buf, err := extractU8LenBuf(buf, false)
	if err != nil {
		return "", nil, nil, wrapContext(err, "reading storage entry path")
	}

	blobBytes, buf, err := extractU32LenBuf(buf, false)
	if err != nil {
		return "", nil, nil, wrapContext(err, "reading storage entry blob")
	}

	return string(pathBytes), blobBytes, buf, nil
}

// ImageCodec decodes raw image bytes to a pixel buffer, and re-encodes a
// pixel buffer to bytes (the out-of-core image collaborator, spec.md §6).
type ImageCodec interface {
	Decode(raw []byte) (image.Image, error)
	Encode(img image.Image) ([]byte, error)
}

// DefaultImageCodec is the stdlib-backed ImageCodec used unless an Options
// overrides it, mirroring the teacher's icon.go pipeline (image.Decode +
// png.Encode, with jpeg registered for side-effect decoding support).
type DefaultImageCodec struct{}

func (DefaultImageCodec) Decode(raw []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	return img, err
}

func (DefaultImageCodec) Encode(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
