package altiumsch

import "strings"

// sectionKeysStreamName is the optional indirection stream mapping a
// component's libref to the storage section (sub-stream group name) that
// actually holds it, used when a libref contains characters unsafe for a
// CFB stream path.
const sectionKeysStreamName = "SectionKeys"

// resolveSectionKeys builds the libref -> section-key map for a library.
// When no SectionKeys stream is present, every libref maps to itself with
// '/' replaced by '_' (the same path-safety fixup the indirection stream
// would otherwise encode).
func resolveSectionKeys(src Source, librefs []string) (map[string]string, error) {
	keys := make(map[string]string, len(librefs))
	for _, ref := range librefs {
		keys[ref] = sectionKeyFallback(ref)
	}

	if !src.HasStream(sectionKeysStreamName) {
		return keys, nil
	}

	raw, err := src.OpenStream(sectionKeysStreamName)
	if err != nil {
		return nil, wrapContext(err, "opening %s", sectionKeysStreamName)
	}

	body, err := stripFileHeaderFraming(raw)
	if err != nil {
		return nil, wrapContext(err, "parsing %s framing", sectionKeysStreamName)
	}

	pairs, err := splitAltiumMap(body)
	if err != nil {
		return nil, wrapContext(err, "parsing %s body", sectionKeysStreamName)
	}
	kv := resolveUtf8Pairs(pairs)

	countBuf, ok := kv["KeyCount"]
	if !ok {
		return keys, nil
	}
	count, err := parseUsize(countBuf)
	if err != nil {
		return nil, wrapContext(err, "parsing KeyCount")
	}

	librefIndex := make(map[string]bool, len(librefs))
	for _, ref := range librefs {
		librefIndex[ref] = true
	}

	for i := 0; i < count; i++ {
		libBuf, ok := kv[indexedKey("LibRef", i)]
		if !ok {
			continue
		}
		keyBuf, ok := kv[indexedKey("SectionKey", i)]
		if !ok {
			continue
		}
		lib := string(libBuf)
		if !librefIndex[lib] {
			// The indirection table may reference librefs trimmed from
			// this view of the library; only bind the ones we actually
			// have components for.
			continue
		}
		keys[lib] = string(keyBuf)
	}

	return keys, nil
}

func sectionKeyFallback(libref string) string {
	return strings.ReplaceAll(libref, "/", "_")
}

func indexedKey(base string, i int) string {
	return base + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	if neg {
		pos--
		buf[pos] = '-'
	}
	return string(buf[pos:])
}

// stripFileHeaderFraming removes the 5-byte prefix and NUL-terminator
// suffix Altium wraps every whole-stream key-value blob in, leaving the
// `|Key=Value|...` body.
func stripFileHeaderFraming(raw []byte) ([]byte, error) {
	const prefixLen = 5
	if len(raw) < prefixLen+1 {
		return nil, NewError(KindBufferTooShort, "stream framing: need at least %d bytes, have %d", prefixLen+1, len(raw))
	}
	body := raw[prefixLen:]
	if body[len(body)-1] != 0 {
		return nil, NewError(KindExpectedNul, "stream body missing NUL terminator")
	}
	return body[:len(body)-1], nil
}
