package altiumsch

import (
	"reflect"
	"sync/atomic"
)

// recordIDKey is the mandatory first key of every ASCII record, naming its
// RecordKind as a decimal ordinal.
const recordIDKey = "RECORD"

// unsupportedKeyCount is the process-wide count of record keys (and
// unrecognized RECORD ids) this library has no binding for (spec.md §4.5,
// §5). It is a package-level atomic rather than per-load state since the
// spec treats it as a process-wide diagnostic counter, not a per-document
// result.
var unsupportedKeyCount int64

// UnsupportedKeyCount returns the current value of the process-wide
// unsupported-key counter.
func UnsupportedKeyCount() int64 {
	return atomic.LoadInt64(&unsupportedKeyCount)
}

// reportUnsupported increments the counter and, if logger is non-nil,
// reports the (record, key, value) triple through it (spec.md §6).
func reportUnsupported(logger Logger, record, key string, value []byte) {
	atomic.AddInt64(&unsupportedKeyCount, 1)
	if logger != nil {
		logger.Unsupported(record, key, value)
	}
}

// decodeRecords walks a framed-record stream (C3) and dispatches every
// frame to either the ASCII record decoder (C4/C5) or the binary pin
// decoder (C6), in order. strict turns an unrecognized RECORD id into a
// hard decode error instead of a logged, counted RecordUndefined.
func decodeRecords(buf []byte, logger Logger, strict bool) ([]*Record, []*Pin, error) {
	frames, err := parseAllRecords(buf)
	if err != nil {
		return nil, nil, err
	}

	var records []*Record
	var pins []*Pin

	for i, frame := range frames {
		switch frame.Tag {
		case tagPin:
			pin, err := parsePinBinary(frame.Data, logger)
			if err != nil {
				return nil, nil, wrapContext(err, "decoding pin frame %d", i)
			}
			pins = append(pins, pin)
		case tagASCII:
			rec, err := decodeASCIIRecord(frame.Data, logger, strict)
			if err != nil {
				return nil, nil, wrapContext(err, "decoding ASCII frame %d", i)
			}
			records = append(records, rec)
		default:
			return nil, nil, NewError(KindInvalidStream, "frame %d has unknown tag %d", i, frame.Tag)
		}
	}

	return records, pins, nil
}

// decodeASCIIRecord splits an ASCII frame payload into key/value pairs,
// reads its RECORD id, and binds the scalar fields of the matching struct.
// Any raw key that matches neither RecordBase nor the concrete struct's
// fields is reported through reportUnsupported, as is an unrecognized
// RECORD id itself (unless strict, which makes the latter a hard error).
func decodeASCIIRecord(buf []byte, logger Logger, strict bool) (*Record, error) {
	pairs, err := splitAltiumMap(buf)
	if err != nil {
		return nil, err
	}
	if len(pairs) == 0 || string(pairs[0][0]) != recordIDKey {
		return nil, NewError(KindInvalidStream, "ASCII record missing leading RECORD key")
	}

	id, err := parseInt[int32](pairs[0][1])
	if err != nil {
		return nil, wrapContext(err, "parsing RECORD id")
	}
	kind := RecordKind(id)

	rec := &Record{Kind: kind, Raw: pairs}
	if err := bindRecord(&rec.Base, pairs); err != nil {
		return nil, wrapContext(err, "binding %s base fields", kind)
	}

	value, err := newRecordValue(kind)
	if err != nil {
		return nil, err
	}
	if value == nil {
		if strict {
			return nil, NewError(KindInvalidStream, "unrecognized RECORD id %d", id)
		}
		reportUnsupported(logger, kind.String(), recordIDKey, pairs[0][1])
		rec.Kind = RecordUndefined
		return rec, nil
	}
	if err := bindRecord(value, pairs); err != nil {
		return nil, wrapContext(err, "binding %s fields", kind)
	}
	rec.Value = value

	known := wireNames(reflect.TypeOf(RecordBase{}))
	for k := range wireNames(reflect.TypeOf(value).Elem()) {
		known[k] = true
	}
	known[recordIDKey] = true
	for k, v := range resolveUtf8Pairs(pairs) {
		if known[k] {
			continue
		}
		reportUnsupported(logger, kind.String(), k, v)
	}

	return rec, nil
}

// newRecordValue allocates the concrete struct for a known RecordKind, or
// returns (nil, nil) for RecordUndefined / any kind this library doesn't
// model beyond its RecordBase.
func newRecordValue(kind RecordKind) (any, error) {
	switch kind {
	case RecordMetaData:
		return &MetaData{}, nil
	case RecordIeeeSymbol:
		return &IeeeSymbol{}, nil
	case RecordLabel:
		return &Label{}, nil
	case RecordBezier:
		return &Bezier{}, nil
	case RecordPolyLine:
		return &PolyLine{}, nil
	case RecordPolygon:
		return &Polygon{}, nil
	case RecordEllipse:
		return &Ellipse{}, nil
	case RecordPiechart:
		return &Piechart{}, nil
	case RecordRectangleRounded:
		return &RectangleRounded{}, nil
	case RecordElipticalArc:
		return &ElipticalArc{}, nil
	case RecordArc:
		return &Arc{}, nil
	case RecordLine:
		return &Line{}, nil
	case RecordRectangle:
		return &Rectangle{}, nil
	case RecordSheetSymbol:
		return &SheetSymbol{}, nil
	case RecordSheetEntry:
		return &SheetEntry{}, nil
	case RecordPowerPort:
		return &PowerPort{}, nil
	case RecordPort:
		return &Port{}, nil
	case RecordNoErc:
		return &NoErc{}, nil
	case RecordNetLabel:
		return &NetLabel{}, nil
	case RecordBus:
		return &Bus{}, nil
	case RecordWire:
		return &Wire{}, nil
	case RecordTextFrame:
		return &TextFrame{}, nil
	case RecordJunction:
		return &Junction{}, nil
	case RecordImage:
		return &Image{}, nil
	case RecordSheet:
		return &Sheet{}, nil
	case RecordSheetName:
		return &SheetName{}, nil
	case RecordFileName:
		return &FileName{}, nil
	case RecordDesignator:
		return &Designator{}, nil
	case RecordBusEntry:
		return &BusEntry{}, nil
	case RecordTemplate:
		return &Template{}, nil
	case RecordParameter:
		return &Parameter{}, nil
	case RecordImplementationList:
		return &ImplementationList{}, nil
	case RecordImplementation:
		return &Implementation{}, nil
	case RecordImplChild1:
		return &ImplementationChild1{}, nil
	case RecordImplChild2:
		return &ImplementationChild2{}, nil
	default:
		return nil, nil
	}
}
