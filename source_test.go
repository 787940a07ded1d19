package altiumsch

// mapSource is an in-memory Source backed by a plain map, used by tests
// that need a SchLib/SchDoc container without a real CFB file.
type mapSource struct {
	streams map[string][]byte
}

func newMapSource() *mapSource {
	return &mapSource{streams: make(map[string][]byte)}
}

func (s *mapSource) HasStream(path string) bool {
	_, ok := s.streams[path]
	return ok
}

func (s *mapSource) OpenStream(path string) ([]byte, error) {
	buf, ok := s.streams[path]
	if !ok {
		return nil, NewError(KindIO, "no such stream %q", path)
	}
	return buf, nil
}

func (s *mapSource) Streams() []string {
	out := make([]string, 0, len(s.streams))
	for p := range s.streams {
		out = append(out, p)
	}
	return out
}
