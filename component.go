package altiumsch

// Component is a decoded SchLib component: its libref, its drawing/
// annotation records and pins in file order, and the font table and
// Storage it shares with every other component in the same library
// (spec.md §3).
type Component struct {
	Name    string
	Fonts   *FontCollection
	Storage *Storage
	Records []*Record
	Pins    []*Pin
}

// parseComponent decodes a component's "<key>/Data" stream contents: a
// plain framed-record stream with no outer header frame of its own. fonts
// and storage are the library's shared collections, threaded through so a
// caller can resolve a record's FontID or look up a Storage entry without
// going back to the SchLib.
func parseComponent(name string, raw []byte, fonts *FontCollection, storage *Storage, logger Logger, strict bool) (*Component, error) {
	records, pins, err := decodeRecords(raw, logger, strict)
	if err != nil {
		return nil, wrapContext(err, "decoding component records")
	}
	return &Component{
		Name:    name,
		Fonts:   fonts,
		Storage: storage,
		Records: records,
		Pins:    pins,
	}, nil
}
