package altiumsch

import (
	"strings"

	"github.com/google/uuid"
)

// nanometers-per-mil conversion factor used throughout the decoder: all
// distances are carried end-to-end as signed 32-bit nanometers.
const milsToNmFactor = 25400

// milsToNm converts a value in Altium's native mils to nanometers, the
// library's canonical distance unit. Overflow is reported rather than
// wrapped, since silently wrapping a corrupt-looking coordinate would be
// worse than failing the stream.
func milsToNm(mils int32) (int32, error) {
	nm := int64(mils) * milsToNmFactor
	if nm > int64(int32max) || nm < int64(int32min) {
		return 0, NewError(KindOverflow, "mils->nm overflow converting %d", mils)
	}
	return int32(nm), nil
}

func milsToNmU(mils uint32) (uint32, error) {
	nm := uint64(mils) * milsToNmFactor
	if nm > uint64(uint32max) {
		return 0, NewError(KindOverflow, "mils->nm overflow converting %d", mils)
	}
	return uint32(nm), nil
}

const (
	int32max  = 1<<31 - 1
	int32min  = -1 << 31
	uint32max = 1<<32 - 1
)

// Location is a 2D point in nanometers.
type Location struct {
	X int32
	Y int32
}

// LocationFract additionally carries fractional X/Y nanofraction components,
// for records that need sub-nanometer precision (Altium stores these as a
// separate `_Frac` wire field rather than a fixed-point Location).
type LocationFract struct {
	X     int32
	XFrac int32
	Y     int32
	YFrac int32
}

// Visibility is a hidden/visible flag, defaulting to Visible.
type Visibility int

const (
	Visible Visibility = iota
	Hidden
)

// Rotation90 is a quarter-turn rotation, stored on the wire as 0..=3.
type Rotation90 int

const (
	Rotation0 Rotation90 = iota
	Rotation90deg
	Rotation180
	Rotation270
)

func (r Rotation90) fromOrdinal(v uint8) (Rotation90, error) {
	if v > 3 {
		return 0, NewError(KindExpectedInt, "invalid Rotation90 ordinal %d", v)
	}
	return Rotation90(v), nil
}

// Rgb is a 24-bit color, packed on the wire little-endian as 0x00BBGGRR.
type Rgb struct {
	R uint8
	G uint8
	B uint8
}

func rgbFromUTF8(buf []byte) (Rgb, error) {
	n, err := parseUint[uint32](buf)
	if err != nil {
		return Rgb{}, err
	}
	return Rgb{
		R: uint8(n & 0x0000ff),
		G: uint8((n & 0x00ff00) >> 8),
		B: uint8((n & 0xff0000) >> 16),
	}, nil
}

// ToHex renders the color as a `#rrggbb` string, same helper shape as the
// teacher's color-to-string helpers.
func (c Rgb) ToHex() string {
	const hex = "0123456789abcdef"
	b := make([]byte, 7)
	b[0] = '#'
	b[1], b[2] = hex[c.R>>4], hex[c.R&0xf]
	b[3], b[4] = hex[c.G>>4], hex[c.G&0xf]
	b[5], b[6] = hex[c.B>>4], hex[c.B&0xf]
	return string(b)
}

// UniqueId is either an 8-byte ASCII legacy token or a UUID parsed from
// hyphen-less ASCII.
type UniqueId struct {
	simple [8]byte
	uuid   uuid.UUID
	isUUID bool
}

// DefaultUniqueId is eight ASCII zeros, the wire default.
func DefaultUniqueId() UniqueId {
	var u UniqueId
	copy(u.simple[:], "00000000")
	return u
}

func uniqueIDFromUTF8(buf []byte) (UniqueId, error) {
	if len(buf) == 8 {
		var u UniqueId
		copy(u.simple[:], buf)
		return u, nil
	}
	if id, err := uuid.ParseBytes(dehyphenate(buf)); err == nil {
		return UniqueId{uuid: id, isUUID: true}, nil
	}
	return UniqueId{}, NewError(KindInvalidUniqueID, "invalid unique id %s", NewTruncBuf(buf))
}

func dehyphenate(buf []byte) []byte {
	if !bytesContain(buf, '-') {
		return buf
	}
	out := make([]byte, 0, len(buf))
	for _, b := range buf {
		if b != '-' {
			out = append(out, b)
		}
	}
	return out
}

func bytesContain(buf []byte, c byte) bool {
	for _, b := range buf {
		if b == c {
			return true
		}
	}
	return false
}

func (u UniqueId) String() string {
	if u.isUUID {
		return u.uuid.String()
	}
	return string(u.simple[:])
}

// SheetStyle enumerates the 18 known paper sizes, ordinal-encoded on the wire.
type SheetStyle uint8

const (
	SheetStyleA4 SheetStyle = iota
	SheetStyleA3
	SheetStyleA2
	SheetStyleA1
	SheetStyleA0
	SheetStyleA
	SheetStyleB
	SheetStyleC
	SheetStyleD
	SheetStyleE
	SheetStyleLetter
	SheetStyleLegal
	SheetStyleTabloid
	SheetStyleOrCadA
	SheetStyleOrCadB
	SheetStyleOrCadC
	SheetStyleOrCadD
	SheetStyleOrCadE
)

func sheetStyleFromUTF8(buf []byte) (SheetStyle, error) {
	n, err := parseUint[uint8](buf)
	if err != nil {
		return 0, err
	}
	if n > uint8(SheetStyleOrCadE) {
		return 0, NewError(KindSheetStyle, "invalid sheet style ordinal %d", n)
	}
	return SheetStyle(n), nil
}

// Justification is a 9-way text anchor (vertical x horizontal).
type Justification uint8

const (
	JustBottomLeft Justification = iota
	JustBottomCenter
	JustBottomRight
	JustCenterLeft
	JustCenterCenter
	JustCenterRight
	JustTopLeft
	JustTopCenter
	JustTopRight
)

func justificationFromUTF8(buf []byte) (Justification, error) {
	n, err := parseUint[uint8](buf)
	if err != nil {
		return 0, err
	}
	if n > uint8(JustTopRight) {
		return 0, NewError(KindJustification, "invalid justification ordinal %d", n)
	}
	return Justification(n), nil
}

// ElectricalType enumerates pin electrical semantics.
type ElectricalType uint8

const (
	ElectricalInput ElectricalType = iota
	ElectricalIO
	ElectricalOutput
	ElectricalOpenCollector
	ElectricalPassive
	ElectricalHiZ
	ElectricalOpenEmitter
	ElectricalPower
)

func electricalTypeFromUTF8(buf []byte) (ElectricalType, error) {
	n, err := parseUint[uint8](buf)
	if err != nil {
		return 0, err
	}
	if n > uint8(ElectricalPower) {
		return 0, NewError(KindElectricalType, "invalid electrical type ordinal %d", n)
	}
	return ElectricalType(n), nil
}

// ReadOnlyState mirrors the project-file read-only flag used by peripheral
// (.PrjPcb-adjacent) key-value parsing; kept here since it shares the same
// ordinal-enum decode shape as the other enums in this file.
type ReadOnlyState uint8

const (
	ReadWrite ReadOnlyState = iota
	ReadOnly
)

func readOnlyStateFromUTF8(buf []byte) (ReadOnlyState, error) {
	n, err := parseUint[uint8](buf)
	if err != nil {
		return 0, err
	}
	if n > uint8(ReadOnly) {
		return 0, NewError(KindReadOnlyState, "invalid read-only state ordinal %d", n)
	}
	return ReadOnlyState(n), nil
}

// splitAltiumMap is the map-splitter (C2): splits `|K=V|K=V|` into ordered
// (key, value) byte-slice pairs, skipping empty segments (the wire format
// allows leading/trailing/doubled separators) and erroring on any segment
// missing its `=`.
func splitAltiumMap(buf []byte) ([][2][]byte, error) {
	var pairs [][2][]byte
	for _, seg := range splitBytes(buf, '|') {
		if len(seg) == 0 {
			continue
		}
		idx := indexByte(seg, '=')
		if idx < 0 {
			return nil, NewError(KindRequiredSplit, "expected key=value but got %q", seg)
		}
		pairs = append(pairs, [2][]byte{seg[:idx], seg[idx+1:]})
	}
	return pairs, nil
}

func splitBytes(buf []byte, sep byte) [][]byte {
	var out [][]byte
	start := 0
	for i, b := range buf {
		if b == sep {
			out = append(out, buf[start:i])
			start = i + 1
		}
	}
	out = append(out, buf[start:])
	return out
}

func indexByte(buf []byte, c byte) int {
	for i, b := range buf {
		if b == c {
			return i
		}
	}
	return -1
}

// hasPrefixBytes reports whether buf starts with prefix.
func hasPrefixBytes(buf, prefix []byte) bool {
	return len(buf) >= len(prefix) && string(buf[:len(prefix)]) == string(prefix)
}

// trimLeadingMinus strips an optional leading '-' from s and reports
// whether one was present (as in array-field keys like `-X12`).
func trimLeadingMinus(s string) (string, bool) {
	if strings.HasPrefix(s, "-") {
		return s[1:], true
	}
	return s, false
}
