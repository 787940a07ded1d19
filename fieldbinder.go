package altiumsch

import (
	"reflect"
	"strings"
)

// wireNameSubstitutions is the fixed exception table consulted when
// deriving a record's wire key from its Go struct field name. Every field
// not listed here uses its name verbatim (the common case: "OwnerIndex",
// "Description", "Name" already match the wire key exactly).
var wireNameSubstitutions = map[string]string{
	"LocationX":    "Location.X",
	"LocationY":    "Location.Y",
	"CornerX":      "Corner.X",
	"CornerY":      "Corner.Y",
	"UniqueId":     "UniqueID",
	"FontId":       "FontID",
	"PartIdLocked": "PartIDLocked",
	"Accessible":   "Accesible", // sic: the wire format itself misspells this
}

// wireNameFor derives the wire key a struct field is bound to.
// CornerXRadius/CornerYRadius are explicitly exempted from the Corner
// substitution above, since "Radius" is not a further composite component.
func wireNameFor(fieldName string) string {
	if fieldName == "CornerXRadius" || fieldName == "CornerYRadius" {
		return fieldName
	}
	if sub, ok := wireNameSubstitutions[fieldName]; ok {
		return sub
	}
	if strings.HasSuffix(fieldName, "Frac") && fieldName != "Frac" {
		return wireNameFor(strings.TrimSuffix(fieldName, "Frac")) + "_Frac"
	}
	return fieldName
}

// bindOpts are parsed from a field's `altium:"..."` struct tag.
type bindOpts struct {
	optional bool
	mils     bool // ASCII value is in mils; converted to nm on assignment
}

func parseBindTag(tag string) bindOpts {
	var o bindOpts
	for _, opt := range strings.Split(tag, ",") {
		switch strings.TrimSpace(opt) {
		case "optional":
			o.optional = true
		case "mils":
			o.mils = true
		}
	}
	return o
}

// resolveUtf8Pairs applies the dual-encoding convention: for any key K that
// also appears as "%UTF8%K", the %UTF8% variant's value wins and the
// %UTF8% prefix is dropped from the effective key set.
func resolveUtf8Pairs(pairs [][2][]byte) map[string][]byte {
	out := make(map[string][]byte, len(pairs))
	for _, p := range pairs {
		out[string(p[0])] = p[1]
	}
	for k, v := range out {
		const prefix = "%UTF8%"
		if strings.HasPrefix(k, prefix) {
			out[strings.TrimPrefix(k, prefix)] = v
			delete(out, k)
		}
	}
	return out
}

// wireNames returns the wire key every bindable (non "-") exported field of
// t resolves to, for detecting which of a record's raw keys matched nothing.
func wireNames(t reflect.Type) map[string]bool {
	names := make(map[string]bool, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		if sf.Tag.Get("altium") == "-" {
			continue
		}
		names[wireNameFor(sf.Name)] = true
	}
	return names
}

// bindRecord populates the exported fields of dst (a pointer to struct)
// from the record's key/value pairs, using each field's derived wire name
// (or its `altium:"..."` tag to adjust binding behavior). Fields tagged
// `altium:"-"` (arrays such as Locations, Rotation, Image.StoragePath, the
// Sheet's font table) are left untouched here. Of those, only the Sheet's
// FontIDCount, DisplayUnit and Fonts are filled in afterward (by
// LoadSchDoc); the others keep their zero value, and the pairs they would
// come from stay available in Record.Raw.
func bindRecord(dst any, pairs [][2][]byte) error {
	v := reflect.ValueOf(dst).Elem()
	t := v.Type()
	kv := resolveUtf8Pairs(pairs)

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		tag := sf.Tag.Get("altium")
		if tag == "-" {
			continue
		}
		opts := parseBindTag(tag)

		wireName := wireNameFor(sf.Name)
		raw, ok := kv[wireName]
		if !ok {
			if opts.optional {
				continue
			}
			continue // missing non-optional fields default to the zero value
		}

		if err := bindScalarField(v.Field(i), raw, opts); err != nil {
			return wrapContext(err, "binding field %s (wire key %q)", sf.Name, wireName)
		}
	}
	return nil
}

func bindScalarField(fv reflect.Value, raw []byte, opts bindOpts) error {
	switch fv.Interface().(type) {
	case string:
		fv.SetString(string(raw))
		return nil
	case bool:
		b, err := parseBool(raw)
		if err != nil {
			return err
		}
		fv.SetBool(b)
		return nil
	case Rgb:
		rgb, err := rgbFromUTF8(raw)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(rgb))
		return nil
	case UniqueId:
		id, err := uniqueIDFromUTF8(raw)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(id))
		return nil
	case Visibility:
		b, err := parseBool(raw)
		if err != nil {
			return err
		}
		if b {
			fv.Set(reflect.ValueOf(Visible))
		} else {
			fv.Set(reflect.ValueOf(Hidden))
		}
		return nil
	case SheetStyle:
		s, err := sheetStyleFromUTF8(raw)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(s))
		return nil
	case Justification:
		j, err := justificationFromUTF8(raw)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(j))
		return nil
	case ElectricalType:
		e, err := electricalTypeFromUTF8(raw)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(e))
		return nil
	case ReadOnlyState:
		r, err := readOnlyStateFromUTF8(raw)
		if err != nil {
			return err
		}
		fv.Set(reflect.ValueOf(r))
		return nil
	}

	switch fv.Kind() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int, reflect.Int64:
		n, err := parseInt[int64](raw)
		if err != nil {
			return err
		}
		if opts.mils {
			converted, err := milsToNm(int32(n))
			if err != nil {
				return err
			}
			n = int64(converted)
		}
		fv.SetInt(n)
		return nil
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint, reflect.Uint64:
		n, err := parseUint[uint64](raw)
		if err != nil {
			return err
		}
		if opts.mils {
			converted, err := milsToNmU(uint32(n))
			if err != nil {
				return err
			}
			n = uint64(converted)
		}
		fv.SetUint(n)
		return nil
	case reflect.Float32, reflect.Float64:
		f, err := parseFloat32(raw)
		if err != nil {
			return err
		}
		fv.SetFloat(float64(f))
		return nil
	}

	return NewError(KindUnknown, "no binder for field of type %s", fv.Type())
}
