package altiumsch

import "encoding/binary"

// Frame tags distinguish ASCII key-value records from binary pin records in
// a framed-record stream (C3, spec.md §4.3).
const (
	tagASCII byte = 0
	tagPin   byte = 1
)

const (
	frameTyMask  uint32 = 0xff000000
	frameLenMask uint32 = 0x00ffffff
)

// rawRecord is one decoded frame: its tag and the payload bytes, with any
// mandatory NUL terminator already stripped.
type rawRecord struct {
	Tag  byte
	Data []byte
}

// parseAllRecords walks a framed-record stream to completion, returning
// every frame in order. Each frame is `[4-byte LE header][payload]`, where
// the header packs an 8-bit tag in its top byte and a 24-bit length
// (payload length including a mandatory trailing NUL) in the low 3 bytes.
func parseAllRecords(buf []byte) ([]rawRecord, error) {
	var records []rawRecord
	for len(buf) > 0 {
		rec, rest, err := parseOneRecord(buf)
		if err != nil {
			return nil, wrapContext(err, "parsing record %d", len(records))
		}
		records = append(records, rec)
		buf = rest
	}
	return records, nil
}

func parseOneRecord(buf []byte) (rawRecord, []byte, error) {
	if len(buf) < 4 {
		return rawRecord{}, nil, NewError(KindBufferTooShort, "record header: need 4, have %d", len(buf))
	}
	header := binary.LittleEndian.Uint32(buf[:4])
	tag := byte((header & frameTyMask) >> 24)
	length := int(header & frameLenMask)

	rest := buf[4:]
	if len(rest) < length {
		return rawRecord{}, nil, NewError(KindBufferTooShort, "record payload: need %d, have %d", length, len(rest))
	}
	if length == 0 {
		return rawRecord{}, nil, NewError(KindInvalidStream, "record length is zero (missing NUL terminator)")
	}

	payload := rest[:length]
	if payload[length-1] != 0 {
		return rawRecord{}, nil, NewError(KindExpectedNul, "record payload not NUL-terminated: %s", NewTruncBufEnd(payload))
	}

	return rawRecord{Tag: tag, Data: payload[:length-1]}, rest[length:], nil
}

// extractU32LenBuf reads a 4-byte little-endian length prefix followed by
// that many bytes of content. If nulTerminated, the length counts a
// mandatory trailing NUL that is validated and stripped from the returned
// content. Used for whole-stream header frames (FileHeader, SchDoc HEADER,
// Storage header).
func extractU32LenBuf(buf []byte, nulTerminated bool) (content []byte, rest []byte, err error) {
	if len(buf) < 4 {
		return nil, nil, NewError(KindBufferTooShort, "u32 length prefix: need 4, have %d", len(buf))
	}
	length := int(binary.LittleEndian.Uint32(buf[:4]))
	buf = buf[4:]
	if len(buf) < length {
		return nil, nil, NewError(KindBufferTooShort, "u32-prefixed buffer: need %d, have %d", length, len(buf))
	}
	body := buf[:length]
	if nulTerminated {
		if length == 0 || body[length-1] != 0 {
			return nil, nil, NewError(KindExpectedNul, "u32-prefixed buffer not NUL-terminated: %s", NewTruncBufEnd(body))
		}
		body = body[:length-1]
	}
	return body, buf[length:], nil
}

// extractU8LenBuf is extractU32LenBuf's 1-byte-length-prefix sibling, used
// for the short path strings inside Storage entries.
func extractU8LenBuf(buf []byte, nulTerminated bool) (content []byte, rest []byte, err error) {
	if len(buf) < 1 {
		return nil, nil, NewError(KindBufferTooShort, "u8 length prefix: need 1, have 0")
	}
	length := int(buf[0])
	buf = buf[1:]
	if len(buf) < length {
		return nil, nil, NewError(KindBufferTooShort, "u8-prefixed buffer: need %d, have %d", length, len(buf))
	}
	body := buf[:length]
	if nulTerminated {
		if length == 0 || body[length-1] != 0 {
			return nil, nil, NewError(KindExpectedNul, "u8-prefixed buffer not NUL-terminated: %s", NewTruncBufEnd(body))
		}
		body = body[:length-1]
	}
	return body, buf[length:], nil
}
