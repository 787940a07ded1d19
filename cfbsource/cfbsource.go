// Package cfbsource adapts a real OLE2/CFB compound file (the container
// Altium SchLib/SchDoc files are stored in) to altiumsch.Source. It is
// kept outside altiumsch's own import graph deliberately: the core
// library only ever consumes the Source interface, never the container
// format itself.
package cfbsource

import (
	"fmt"
	"io"
	"os"
	"strings"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/richardlehane/mscfb"
)

// Source is a fully-materialized view of a CFB container's named streams,
// built once at Open time and held in memory for the lifetime of the file.
type Source struct {
	data    mmap.MMap
	f       *os.File
	streams map[string][]byte
}

// Open memory-maps the file at name and indexes every stream it contains.
func Open(name string) (*Source, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("cfbsource: opening %s: %w", name, err)
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("cfbsource: mapping %s: %w", name, err)
	}

	src := &Source{data: data, f: f}
	if err := src.index(); err != nil {
		src.Close()
		return nil, err
	}
	return src, nil
}

func (s *Source) index() error {
	doc, err := mscfb.New(readerAt{s.data})
	if err != nil {
		return fmt.Errorf("cfbsource: not a compound file: %w", err)
	}

	s.streams = make(map[string][]byte)
	for entry, err := doc.Next(); err == nil; entry, err = doc.Next() {
		if entry.FileInfo().IsDir() {
			continue
		}
		path := joinPath(entry.Path, entry.Name)
		buf := make([]byte, entry.Size)
		if _, err := io.ReadFull(doc, buf); err != nil && err != io.EOF {
			return fmt.Errorf("cfbsource: reading stream %q: %w", path, err)
		}
		s.streams[path] = buf
	}
	return nil
}

func joinPath(storagePath []string, name string) string {
	if len(storagePath) == 0 {
		return name
	}
	return strings.Join(append(append([]string{}, storagePath...), name), "/")
}

// HasStream implements altiumsch.Source.
func (s *Source) HasStream(path string) bool {
	_, ok := s.streams[path]
	return ok
}

// OpenStream implements altiumsch.Source.
func (s *Source) OpenStream(path string) ([]byte, error) {
	buf, ok := s.streams[path]
	if !ok {
		return nil, fmt.Errorf("cfbsource: no such stream %q", path)
	}
	return buf, nil
}

// Streams implements altiumsch.Source.
func (s *Source) Streams() []string {
	out := make([]string, 0, len(s.streams))
	for p := range s.streams {
		out = append(out, p)
	}
	return out
}

// Close releases the underlying memory mapping.
func (s *Source) Close() error {
	if s.data != nil {
		_ = s.data.Unmap()
	}
	if s.f != nil {
		return s.f.Close()
	}
	return nil
}

// readerAt adapts an mmap.MMap ([]byte) to io.ReaderAt for mscfb.New.
type readerAt struct {
	data []byte
}

func (r readerAt) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(p, r.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
