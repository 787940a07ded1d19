package altiumsch

const (
	fileHeaderDocStreamName = "FileHeader"
	schDocHeaderLiteral     = "Protel for Windows - Schematic Capture Binary File Version 5.0"
)

// SchDoc is a loaded Altium schematic document: one Sheet plus every other
// drawing/annotation record and pin in the document, and the document's
// own font table and Storage.
type SchDoc struct {
	UniqueID UniqueId
	Fonts    *FontCollection
	Storage  *Storage
	Sheet    *Sheet
	Records  []*Record
	Pins     []*Pin
}

// LoadSchDoc parses a SchDoc's FileHeader stream: a single whole-stream
// 4-byte-length-prefixed frame wrapping the HEADER literal and UniqueID,
// followed immediately (in the same stream) by the framed-record stream
// for every other record in the document. The lone Sheet record is lifted
// out of the record list into the Sheet field.
func LoadSchDoc(src Source, opts Options) (*SchDoc, error) {
	raw, err := src.OpenStream(fileHeaderDocStreamName)
	if err != nil {
		return nil, wrapContext(err, "opening %s", fileHeaderDocStreamName)
	}

	header, rest, err := extractU32LenBuf(raw, true)
	if err != nil {
		return nil, wrapContext(err, "reading SchDoc header frame")
	}

	pairs, err := splitAltiumMap(header)
	if err != nil {
		return nil, wrapContext(err, "parsing SchDoc header")
	}
	kv := resolveUtf8Pairs(pairs)

	if lit, ok := kv["HEADER"]; !ok || string(lit) != schDocHeaderLiteral {
		return nil, NewError(KindInvalidHeader, "unexpected SchDoc header literal")
	}

	doc := &SchDoc{}
	if uid, ok := kv["UniqueID"]; ok {
		id, err := uniqueIDFromUTF8(uid)
		if err != nil {
			return nil, wrapContext(err, "parsing SchDoc UniqueID")
		}
		doc.UniqueID = id
	} else {
		doc.UniqueID = DefaultUniqueId()
	}

	records, pins, err := decodeRecords(rest, opts.logger(), opts.StrictUnknownRecords)
	if err != nil {
		return nil, wrapContext(err, "decoding SchDoc records")
	}
	doc.Pins = pins

	var remaining []*Record
	var sheetRaw [][2][]byte
	for _, rec := range records {
		if rec.Kind == RecordSheet && doc.Sheet == nil {
			sheet, ok := rec.Value.(*Sheet)
			if !ok {
				return nil, NewError(KindInvalidStream, "Sheet record had no bound value")
			}
			doc.Sheet = sheet
			sheetRaw = rec.Raw
			continue
		}
		remaining = append(remaining, rec)
	}
	doc.Records = remaining

	if doc.Sheet == nil {
		return nil, NewError(KindMissingSection, "SchDoc has no Sheet record")
	}

	sheetKV := resolveUtf8Pairs(sheetRaw)
	if v, ok := sheetKV["FontIdCount"]; ok {
		n, err := parseUsize(v)
		if err != nil {
			return nil, wrapContext(err, "parsing Sheet FontIdCount")
		}
		doc.Sheet.FontIDCount = n
	}
	if v, ok := sheetKV["Display_Unit"]; ok {
		n, err := parseUint[uint16](v)
		if err != nil {
			return nil, wrapContext(err, "parsing Sheet Display_Unit")
		}
		doc.Sheet.DisplayUnit = n
	}

	fontCount := doc.Sheet.FontIDCount
	doc.Fonts = newFontCollection(fontCount)
	for i := 1; i <= fontCount; i++ {
		name := ""
		if v, ok := sheetKV[indexedKey("FontName", i)]; ok {
			name = string(v)
		}
		var size uint16
		if v, ok := sheetKV[indexedKey("Size", i)]; ok {
			n, err := parseUint[uint16](v)
			if err != nil {
				return nil, wrapContext(err, "parsing Sheet font %d Size", i)
			}
			size = n
		}
		doc.Fonts.set(i, Font{Name: name, Size: size})
	}
	doc.Sheet.Fonts = doc.Fonts

	if src.HasStream(storageStreamName) {
		storageRaw, err := src.OpenStream(storageStreamName)
		if err != nil {
			return nil, wrapContext(err, "opening %s", storageStreamName)
		}
		storage, err := parseStorageStream(storageRaw, opts.imageCodec())
		if err != nil {
			return nil, wrapContext(err, "parsing %s", storageStreamName)
		}
		doc.Storage = storage
	} else {
		doc.Storage = newStorage(opts.imageCodec())
	}

	return doc, nil
}
