package altiumsch

const (
	fileHeaderStreamName  = "FileHeader"
	fileHeaderLiteral     = "HEADER=Protel for Windows - Schematic Library Editor Binary File Version 5.0"
	storageStreamName     = "Storage"
	componentDataSuffix   = "Data"
)

// LibraryHeader is the decoded FileHeader stream of a SchLib (C9,
// spec.md §4.9): document-level settings shared by every component.
type LibraryHeader struct {
	Weight               int32
	MinorVersion         int32
	UniqueID             UniqueId
	FontIDCount          int
	UseMBCS              bool
	IsBOC                bool
	SheetStyle           SheetStyle
	BorderOn             bool
	SheetNumberSpaceSize int32
	AreaColor            Rgb
	SnapGridOn           bool
	SnapGridSize         int32
	VisibleGridOn        bool
	VisibleGridSize      int32
	CustomX              int32
	CustomY              int32
	UseCustomSheet       bool
	ReferenceZonesOn     bool
	DisplayUnit          uint16
	CompCount            int
}

// ComponentMeta is one entry of a SchLib's component directory: enough to
// locate and describe a component without decoding its Data stream.
type ComponentMeta struct {
	Libref      string
	SectionKey  string
	Description string
	PartCount   int
}

// SchLib is a loaded Altium schematic library: its header, font table,
// component directory, and section-key indirection, plus the live Source
// and Storage needed to lazily materialize individual components.
type SchLib struct {
	src         Source
	opts        Options
	Header      LibraryHeader
	Fonts       *FontCollection
	Components  []ComponentMeta
	sectionKeys map[string]string
	storage     *Storage
}

// LoadSchLib parses a SchLib's FileHeader, font table, component
// directory, Storage stream, and SectionKeys indirection from src.
func LoadSchLib(src Source, opts Options) (*SchLib, error) {
	raw, err := src.OpenStream(fileHeaderStreamName)
	if err != nil {
		return nil, wrapContext(err, "opening %s", fileHeaderStreamName)
	}
	body, err := stripFileHeaderFraming(raw)
	if err != nil {
		return nil, wrapContext(err, "parsing %s framing", fileHeaderStreamName)
	}
	pairs, err := splitAltiumMap(body)
	if err != nil {
		return nil, wrapContext(err, "parsing %s body", fileHeaderStreamName)
	}
	kv := resolveUtf8Pairs(pairs)

	if headerLit, ok := kv["HEADER"]; !ok || "HEADER="+string(headerLit) != fileHeaderLiteral {
		return nil, NewError(KindInvalidHeader, "unexpected FileHeader literal")
	}

	lib := &SchLib{src: src, opts: opts}

	hdr := &lib.Header
	if err := assignOpt(kv, "Weight", &hdr.Weight); err != nil {
		return nil, wrapContext(err, "parsing header Weight")
	}
	if err := assignOpt(kv, "MinorVersion", &hdr.MinorVersion); err != nil {
		return nil, wrapContext(err, "parsing header MinorVersion")
	}
	if uid, ok := kv["UniqueID"]; ok {
		id, err := uniqueIDFromUTF8(uid)
		if err != nil {
			return nil, wrapContext(err, "parsing header UniqueID")
		}
		hdr.UniqueID = id
	} else {
		hdr.UniqueID = DefaultUniqueId()
	}
	if err := assignOptInt(kv, "FontIdCount", &hdr.FontIDCount); err != nil {
		return nil, wrapContext(err, "parsing header FontIdCount")
	}
	if err := assignOptBool(kv, "UseMBCS", &hdr.UseMBCS); err != nil {
		return nil, wrapContext(err, "parsing header UseMBCS")
	}
	if err := assignOptBool(kv, "IsBOC", &hdr.IsBOC); err != nil {
		return nil, wrapContext(err, "parsing header IsBOC")
	}
	if v, ok := kv["SheetStyle"]; ok {
		s, err := sheetStyleFromUTF8(v)
		if err != nil {
			return nil, err
		}
		hdr.SheetStyle = s
	}
	if err := assignOptBool(kv, "BorderOn", &hdr.BorderOn); err != nil {
		return nil, wrapContext(err, "parsing header BorderOn")
	}
	if err := assignOpt(kv, "SheetNumberSpaceSize", &hdr.SheetNumberSpaceSize); err != nil {
		return nil, wrapContext(err, "parsing header SheetNumberSpaceSize")
	}
	if v, ok := kv["AreaColor"]; ok {
		c, err := rgbFromUTF8(v)
		if err != nil {
			return nil, err
		}
		hdr.AreaColor = c
	}
	if err := assignOptBool(kv, "SnapGridOn", &hdr.SnapGridOn); err != nil {
		return nil, wrapContext(err, "parsing header SnapGridOn")
	}
	if err := assignOpt(kv, "SnapGridSize", &hdr.SnapGridSize); err != nil {
		return nil, wrapContext(err, "parsing header SnapGridSize")
	}
	if err := assignOptBool(kv, "VisibleGridOn", &hdr.VisibleGridOn); err != nil {
		return nil, wrapContext(err, "parsing header VisibleGridOn")
	}
	if err := assignOpt(kv, "VisibleGridSize", &hdr.VisibleGridSize); err != nil {
		return nil, wrapContext(err, "parsing header VisibleGridSize")
	}
	if err := assignOpt(kv, "CustomX", &hdr.CustomX); err != nil {
		return nil, wrapContext(err, "parsing header CustomX")
	}
	if err := assignOpt(kv, "CustomY", &hdr.CustomY); err != nil {
		return nil, wrapContext(err, "parsing header CustomY")
	}
	if err := assignOptBool(kv, "UseCustomSheet", &hdr.UseCustomSheet); err != nil {
		return nil, wrapContext(err, "parsing header UseCustomSheet")
	}
	if err := assignOptBool(kv, "ReferenceZonesOn", &hdr.ReferenceZonesOn); err != nil {
		return nil, wrapContext(err, "parsing header ReferenceZonesOn")
	}
	if v, ok := kv["Display_Unit"]; ok {
		n, err := parseUint[uint16](v)
		if err != nil {
			return nil, err
		}
		hdr.DisplayUnit = n
	}
	if err := assignOptInt(kv, "CompCount", &hdr.CompCount); err != nil {
		return nil, wrapContext(err, "parsing header CompCount")
	}

	lib.Fonts = newFontCollection(hdr.FontIDCount)
	for i := 1; i <= hdr.FontIDCount; i++ {
		name := ""
		if v, ok := kv[indexedKey("FontName", i)]; ok {
			name = string(v)
		}
		var size uint16
		if v, ok := kv[indexedKey("Size", i)]; ok {
			n, err := parseUint[uint16](v)
			if err != nil {
				return nil, wrapContext(err, "parsing header font %d Size", i)
			}
			size = n
		}
		lib.Fonts.set(i, Font{Name: name, Size: size})
	}

	librefs := make([]string, 0, hdr.CompCount)
	metas := make([]ComponentMeta, 0, hdr.CompCount)
	for i := 0; i < hdr.CompCount; i++ {
		var meta ComponentMeta
		if v, ok := kv[indexedKey("LibRef", i)]; ok {
			meta.Libref = string(v)
		}
		if v, ok := kv[indexedKey("CompDescr", i)]; ok {
			meta.Description = string(v)
		}
		if v, ok := kv[indexedKey("PartCount", i)]; ok {
			n, err := parseUsize(v)
			if err != nil {
				return nil, err
			}
			meta.PartCount = n
		}
		librefs = append(librefs, meta.Libref)
		metas = append(metas, meta)
	}

	keys, err := resolveSectionKeys(src, librefs)
	if err != nil {
		return nil, err
	}
	lib.sectionKeys = keys
	for i := range metas {
		metas[i].SectionKey = keys[metas[i].Libref]
	}
	lib.Components = metas

	if src.HasStream(storageStreamName) {
		raw, err := src.OpenStream(storageStreamName)
		if err != nil {
			return nil, wrapContext(err, "opening %s", storageStreamName)
		}
		storage, err := parseStorageStream(raw, opts.imageCodec())
		if err != nil {
			return nil, wrapContext(err, "parsing %s", storageStreamName)
		}
		lib.storage = storage
	} else {
		lib.storage = newStorage(opts.imageCodec())
	}

	return lib, nil
}

// Storage returns the library-wide Storage table (shared by reference
// across every component built from this SchLib).
func (l *SchLib) Storage() *Storage { return l.storage }

// Component decodes and returns the named component's records and pins. A
// libref with no matching ComponentMeta is reported as KindMissingSection.
func (l *SchLib) Component(libref string) (*Component, error) {
	var meta *ComponentMeta
	for i := range l.Components {
		if l.Components[i].Libref == libref {
			meta = &l.Components[i]
			break
		}
	}
	if meta == nil {
		return nil, NewError(KindMissingSection, "no component named %q", libref)
	}

	path := meta.SectionKey + "/" + componentDataSuffix
	if !l.src.HasStream(path) {
		return nil, NewError(KindMissingSection, "component %q: missing stream %q", libref, path)
	}
	raw, err := l.src.OpenStream(path)
	if err != nil {
		return nil, wrapContext(err, "opening component %q stream %q", libref, path)
	}

	return parseComponent(libref, raw, l.Fonts, l.storage, l.opts.logger(), l.opts.StrictUnknownRecords)
}

// assignOpt, assignOptInt, and assignOptBool leave dst untouched when key is
// absent, but propagate a parse failure as an error rather than swallowing
// it: a present-but-malformed field aborts the load (spec.md §7).

func assignOpt(kv map[string][]byte, key string, dst *int32) error {
	v, ok := kv[key]
	if !ok {
		return nil
	}
	n, err := parseInt[int32](v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func assignOptInt(kv map[string][]byte, key string, dst *int) error {
	v, ok := kv[key]
	if !ok {
		return nil
	}
	n, err := parseUsize(v)
	if err != nil {
		return err
	}
	*dst = n
	return nil
}

func assignOptBool(kv map[string][]byte, key string, dst *bool) error {
	v, ok := kv[key]
	if !ok {
		return nil
	}
	b, err := parseBool(v)
	if err != nil {
		return err
	}
	*dst = b
	return nil
}
