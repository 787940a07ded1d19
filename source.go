package altiumsch

// Source is the compound-file collaborator: a read-only view over an
// OLE2/CFB container's named streams. This library never parses the CFB
// container format itself (see cfbsource for a real adapter); it only
// consumes streams through this interface.
type Source interface {
	// HasStream reports whether a stream exists at path (CFB storage
	// components separated by '/').
	HasStream(path string) bool
	// OpenStream returns the full contents of the stream at path.
	OpenStream(path string) ([]byte, error)
	// Streams lists every stream path under the container, for iterating
	// component sub-streams with unknown names.
	Streams() []string
}

// Options configures a SchLib/SchDoc load: the ambient collaborators
// (logging, image post-processing) plus strictness knobs.
type Options struct {
	// Logger receives best-effort-recovery diagnostics. Defaults to a
	// logrus-backed Logger if nil.
	Logger Logger
	// ImageCodec decodes/re-encodes Storage image blobs. Defaults to
	// DefaultImageCodec if nil.
	ImageCodec ImageCodec
	// StrictUnknownRecords turns an unrecognized RECORD id into a hard
	// decode error instead of a logged RecordUndefined.
	StrictUnknownRecords bool
}

func (o Options) logger() Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return NewLogrusLogger(nil)
}

func (o Options) imageCodec() ImageCodec {
	if o.ImageCodec != nil {
		return o.ImageCodec
	}
	return DefaultImageCodec{}
}
