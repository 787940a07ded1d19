package altiumsch

import "encoding/binary"

// Pin bit masks within the rot_hide byte of the binary pin layout.
const (
	pinRotMask    = 0b011
	pinVisDesMask = 0b01000
	pinVisName    = 0b10000
)

// pinFormalType is the only formal-type value a binary pin record is ever
// allowed to carry; anything else means we've misaligned the frame.
const pinFormalType = 1

// Pin is the decoded form of a binary pin record (C6, spec.md §4.6). Unlike
// every other record kind, a Pin is never a `|Key=Value|...` blob: it is a
// fixed-offset binary layout, tag 1 in the framed-record stream.
type Pin struct {
	Description       string
	Name              string
	Designator        string
	Location          Location
	LengthNm          int32
	Rotation          Rotation90
	DesignatorVisible bool
	NameVisible       bool
}

// parsePinBinary decodes a tag-1 frame payload into a Pin. A trailer that
// matches neither sanity form is logged through logger (if non-nil) and
// otherwise ignored, rather than failing the pin.
func parsePinBinary(buf []byte, logger Logger) (*Pin, error) {
	orig := buf

	if len(buf) < 12 {
		return nil, NewError(KindBufferTooShort, "pin reserved header: need 12, have %d", len(buf))
	}
	buf = buf[12:] // 6 + 6 reserved bytes, meaning unknown/unused on this wire version

	description, buf, err := extractU8LenBuf(buf, false)
	if err != nil {
		return nil, wrapContext(err, "pin description")
	}

	if len(buf) < 2 {
		return nil, NewError(KindBufferTooShort, "pin formal_type/ty_info: need 2, have %d", len(buf))
	}
	formalType, tyInfo := buf[0], buf[1]
	_ = tyInfo // reserved; carried for layout compatibility only
	if formalType != pinFormalType {
		return nil, NewError(KindPin, "pin formal_type: got %d want %d", formalType, pinFormalType)
	}
	buf = buf[2:]

	if len(buf) < 1 {
		return nil, NewError(KindBufferTooShort, "pin rot_hide byte missing")
	}
	rotHide := buf[0]
	buf = buf[1:]

	rotation, err := Rotation0.fromOrdinal(rotHide & pinRotMask)
	if err != nil {
		return nil, wrapContext(err, "pin rotation")
	}
	designatorVisible := rotHide&pinVisDesMask == 0
	nameVisible := rotHide&pinVisName == 0

	if len(buf) < 6 {
		return nil, NewError(KindBufferTooShort, "pin length/x/y: need 6, have %d", len(buf))
	}
	lengthMils := int16(binary.LittleEndian.Uint16(buf[0:2]))
	x := int16(binary.LittleEndian.Uint16(buf[2:4]))
	y := int16(binary.LittleEndian.Uint16(buf[4:6]))
	buf = buf[6:]

	if len(buf) < 4 {
		return nil, NewError(KindBufferTooShort, "pin trailing reserved: need 4, have %d", len(buf))
	}
	buf = buf[4:]

	name, buf, err := extractU8LenBuf(buf, false)
	if err != nil {
		return nil, wrapContext(err, "pin name")
	}
	designator, buf, err := extractU8LenBuf(buf, false)
	if err != nil {
		return nil, wrapContext(err, "pin designator")
	}

	if !validPinTrailer(buf) && logger != nil {
		logger.Warnf("pin trailer mismatch (trailer at payload offset %d): %s", len(orig)-len(buf), NewTruncBuf(buf))
	}

	locX, err := milsToNm(int32(x))
	if err != nil {
		return nil, err
	}
	locY, err := milsToNm(int32(y))
	if err != nil {
		return nil, err
	}
	lenNm, err := milsToNm(int32(lengthMils))
	if err != nil {
		return nil, err
	}

	return &Pin{
		Description:       string(description),
		Name:              string(name),
		Designator:        string(designator),
		Location:          Location{X: locX, Y: locY},
		LengthNm:          lenNm,
		Rotation:          rotation,
		DesignatorVisible: designatorVisible,
		NameVisible:       nameVisible,
	}, nil
}

// validPinTrailer reports whether the bytes following a binary pin record
// match one of the two accepted sanity trailers: an arbitrary byte followed
// by the literal `0x03 | & |`, or the short all-zero form `[0x00, 0x00]`.
// Neither form is load-bearing for the decoded Pin, so a mismatch is a
// warning, not a decode failure (spec.md §4.7 point 9, §7).
func validPinTrailer(buf []byte) bool {
	if len(buf) == 2 {
		return buf[0] == 0x00 && buf[1] == 0x00
	}
	if len(buf) != 5 {
		return false
	}
	want := [4]byte{0x03, '|', '&', '|'}
	for i, w := range want {
		if buf[i+1] != w {
			return false
		}
	}
	return true
}

// ConnectingEnd returns the pin's electrical connection point: the end
// opposite the drawn pin stub, offset from Location by LengthNm in the
// direction Rotation points.
func (p *Pin) ConnectingEnd() Location {
	switch p.Rotation {
	case Rotation0:
		return Location{X: p.Location.X + p.LengthNm, Y: p.Location.Y}
	case Rotation90deg:
		return Location{X: p.Location.X, Y: p.Location.Y + p.LengthNm}
	case Rotation180:
		return Location{X: p.Location.X - p.LengthNm, Y: p.Location.Y}
	default: // Rotation270
		return Location{X: p.Location.X, Y: p.Location.Y - p.LengthNm}
	}
}
