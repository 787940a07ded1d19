package altiumsch

// RecordKind identifies the variant of an ASCII (`RECORD=<n>`) record. The
// numeric values match Altium's own on-disk record IDs, so a file produced
// by any version of the tool decodes against the same table.
type RecordKind int32

const (
	RecordUndefined          RecordKind = 0
	RecordMetaData           RecordKind = 1
	RecordPin                RecordKind = 2
	RecordIeeeSymbol         RecordKind = 3
	RecordLabel              RecordKind = 4
	RecordBezier             RecordKind = 5
	RecordPolyLine           RecordKind = 6
	RecordPolygon            RecordKind = 7
	RecordEllipse            RecordKind = 8
	RecordPiechart           RecordKind = 9
	RecordRectangleRounded   RecordKind = 10
	RecordElipticalArc       RecordKind = 11
	RecordArc                RecordKind = 12
	RecordLine               RecordKind = 13
	RecordRectangle          RecordKind = 14
	RecordSheetSymbol        RecordKind = 15
	RecordSheetEntry         RecordKind = 16
	RecordPowerPort          RecordKind = 17
	RecordPort               RecordKind = 18
	RecordNoErc              RecordKind = 22
	RecordNetLabel           RecordKind = 25
	RecordBus                RecordKind = 26
	RecordWire               RecordKind = 27
	RecordTextFrame          RecordKind = 28
	RecordJunction           RecordKind = 29
	RecordImage              RecordKind = 30
	RecordSheet              RecordKind = 31
	RecordSheetName          RecordKind = 32
	RecordFileName           RecordKind = 33
	RecordDesignator         RecordKind = 34
	RecordBusEntry           RecordKind = 37
	RecordTemplate           RecordKind = 39
	RecordParameter          RecordKind = 41
	RecordImplementationList RecordKind = 44
	RecordImplementation     RecordKind = 45
	RecordImplChild1         RecordKind = 46
	RecordImplChild2         RecordKind = 48
)

func (k RecordKind) String() string {
	switch k {
	case RecordMetaData:
		return "MetaData"
	case RecordPin:
		return "Pin"
	case RecordIeeeSymbol:
		return "IeeeSymbol"
	case RecordLabel:
		return "Label"
	case RecordBezier:
		return "Bezier"
	case RecordPolyLine:
		return "PolyLine"
	case RecordPolygon:
		return "Polygon"
	case RecordEllipse:
		return "Ellipse"
	case RecordPiechart:
		return "Piechart"
	case RecordRectangleRounded:
		return "RectangleRounded"
	case RecordElipticalArc:
		return "ElipticalArc"
	case RecordArc:
		return "Arc"
	case RecordLine:
		return "Line"
	case RecordRectangle:
		return "Rectangle"
	case RecordSheetSymbol:
		return "SheetSymbol"
	case RecordSheetEntry:
		return "SheetEntry"
	case RecordPowerPort:
		return "PowerPort"
	case RecordPort:
		return "Port"
	case RecordNoErc:
		return "NoErc"
	case RecordNetLabel:
		return "NetLabel"
	case RecordBus:
		return "Bus"
	case RecordWire:
		return "Wire"
	case RecordTextFrame:
		return "TextFrame"
	case RecordJunction:
		return "Junction"
	case RecordImage:
		return "Image"
	case RecordSheet:
		return "Sheet"
	case RecordSheetName:
		return "SheetName"
	case RecordFileName:
		return "FileName"
	case RecordDesignator:
		return "Designator"
	case RecordBusEntry:
		return "BusEntry"
	case RecordTemplate:
		return "Template"
	case RecordParameter:
		return "Parameter"
	case RecordImplementationList:
		return "ImplementationList"
	case RecordImplementation:
		return "Implementation"
	case RecordImplChild1:
		return "ImplementationChild1"
	case RecordImplChild2:
		return "ImplementationChild2"
	default:
		return "Undefined"
	}
}

// RecordBase carries the fields common to nearly every ASCII record: which
// part/owner it belongs to within a multi-part component.
type RecordBase struct {
	OwnerIndex  int32 `altium:""`
	OwnerPartID int32 `altium:"optional"`
	IsNotAccesible bool `altium:"optional"`
}

// Record is any decoded ASCII record, tagged with its Kind and, for kinds
// this library doesn't model field-by-field, the raw key/value pairs.
type Record struct {
	Kind  RecordKind
	Base  RecordBase
	Value any // one of the *<Kind> structs below, or nil for RecordUndefined
	Raw   [][2][]byte
}

// The following structs model the well-known schematic record kinds.
// Composite Location/Corner fields are bound as separate *_X/*_Y mils
// fields here (matching the wire's flat representation) and combined into
// a Location via the Loc() helper, rather than requiring the generic
// binder to understand nested composites.

type MetaData struct {
	RecordBase
	HeaderFileVersion string `altium:"optional"`
}

type IeeeSymbol struct {
	RecordBase
	LocationX int32 `altium:"mils"`
	LocationY int32 `altium:"mils"`
	Symbol    uint8 `altium:"optional"`
}

func (r *IeeeSymbol) Loc() Location { return Location{r.LocationX, r.LocationY} }

type Label struct {
	RecordBase
	LocationX     int32          `altium:"mils"`
	LocationY     int32          `altium:"mils"`
	Text          string         `altium:"optional"`
	FontID        uint16         `altium:"optional"`
	Color         Rgb            `altium:"optional"`
	Justification Justification  `altium:"optional"`
	Rotation      Rotation90     `altium:"-"`
}

func (r *Label) Loc() Location { return Location{r.LocationX, r.LocationY} }

type Bezier struct {
	RecordBase
	LineWidth int32 `altium:"mils,optional"`
	Color     Rgb   `altium:"optional"`
	Locations []Location `altium:"-"`
}

type PolyLine struct {
	RecordBase
	LineWidth int32      `altium:"mils,optional"`
	Color     Rgb        `altium:"optional"`
	Locations []Location `altium:"-"`
}

type Polygon struct {
	RecordBase
	LineWidth int32      `altium:"mils,optional"`
	Color     Rgb        `altium:"optional"`
	AreaColor Rgb        `altium:"optional"`
	IsSolid   bool       `altium:"optional"`
	Locations []Location `altium:"-"`
}

type Ellipse struct {
	RecordBase
	LocationX     int32 `altium:"mils"`
	LocationY     int32 `altium:"mils"`
	Radius        int32 `altium:"mils"`
	SecondaryRadius int32 `altium:"mils,optional"`
	Color         Rgb   `altium:"optional"`
	AreaColor     Rgb   `altium:"optional"`
	IsSolid       bool  `altium:"optional"`
}

func (r *Ellipse) Loc() Location { return Location{r.LocationX, r.LocationY} }

type Piechart struct {
	RecordBase
	LocationX int32 `altium:"mils"`
	LocationY int32 `altium:"mils"`
	Radius    int32 `altium:"mils"`
	Color     Rgb   `altium:"optional"`
}

func (r *Piechart) Loc() Location { return Location{r.LocationX, r.LocationY} }

type RectangleRounded struct {
	RecordBase
	LocationX     int32 `altium:"mils"`
	LocationY     int32 `altium:"mils"`
	CornerX       int32 `altium:"mils"`
	CornerY       int32 `altium:"mils"`
	CornerXRadius int32 `altium:"mils,optional"`
	CornerYRadius int32 `altium:"mils,optional"`
	Color         Rgb   `altium:"optional"`
	AreaColor     Rgb   `altium:"optional"`
	IsSolid       bool  `altium:"optional"`
}

func (r *RectangleRounded) Loc() Location    { return Location{r.LocationX, r.LocationY} }
func (r *RectangleRounded) Corner() Location { return Location{r.CornerX, r.CornerY} }

type ElipticalArc struct {
	RecordBase
	LocationX       int32   `altium:"mils"`
	LocationY       int32   `altium:"mils"`
	Radius          int32   `altium:"mils"`
	SecondaryRadius int32   `altium:"mils,optional"`
	StartAngle      float32 `altium:"optional"`
	EndAngle        float32 `altium:"optional"`
	Color           Rgb     `altium:"optional"`
}

func (r *ElipticalArc) Loc() Location { return Location{r.LocationX, r.LocationY} }

type Arc struct {
	RecordBase
	LocationX  int32   `altium:"mils"`
	LocationY  int32   `altium:"mils"`
	Radius     int32   `altium:"mils"`
	StartAngle float32 `altium:"optional"`
	EndAngle   float32 `altium:"optional"`
	Color      Rgb     `altium:"optional"`
}

func (r *Arc) Loc() Location { return Location{r.LocationX, r.LocationY} }

type Line struct {
	RecordBase
	LocationX int32 `altium:"mils"`
	LocationY int32 `altium:"mils"`
	CornerX   int32 `altium:"mils"`
	CornerY   int32 `altium:"mils"`
	LineWidth int32 `altium:"mils,optional"`
	Color     Rgb   `altium:"optional"`
}

func (r *Line) Loc() Location    { return Location{r.LocationX, r.LocationY} }
func (r *Line) Corner() Location { return Location{r.CornerX, r.CornerY} }

type Rectangle struct {
	RecordBase
	LocationX int32 `altium:"mils"`
	LocationY int32 `altium:"mils"`
	CornerX   int32 `altium:"mils"`
	CornerY   int32 `altium:"mils"`
	Color     Rgb   `altium:"optional"`
	AreaColor Rgb   `altium:"optional"`
	IsSolid   bool  `altium:"optional"`
}

func (r *Rectangle) Loc() Location    { return Location{r.LocationX, r.LocationY} }
func (r *Rectangle) Corner() Location { return Location{r.CornerX, r.CornerY} }

type SheetSymbol struct {
	RecordBase
	LocationX int32  `altium:"mils"`
	LocationY int32  `altium:"mils"`
	XSize     int32  `altium:"mils,optional"`
	YSize     int32  `altium:"mils,optional"`
	Color     Rgb    `altium:"optional"`
	AreaColor Rgb    `altium:"optional"`
	UniqueID  UniqueId `altium:"optional"`
}

func (r *SheetSymbol) Loc() Location { return Location{r.LocationX, r.LocationY} }

type SheetEntry struct {
	RecordBase
	Name           string         `altium:"optional"`
	ElectricalType ElectricalType `altium:"optional"`
	Side           uint8          `altium:"optional"`
	DistanceFromTop int32         `altium:"mils,optional"`
}

type PowerPort struct {
	RecordBase
	LocationX int32  `altium:"mils"`
	LocationY int32  `altium:"mils"`
	Text      string `altium:"optional"`
	Style     uint8  `altium:"optional"`
	Rotation  Rotation90 `altium:"-"`
}

func (r *PowerPort) Loc() Location { return Location{r.LocationX, r.LocationY} }

type Port struct {
	RecordBase
	LocationX      int32          `altium:"mils"`
	LocationY      int32          `altium:"mils"`
	Width          int32          `altium:"mils,optional"`
	Name           string         `altium:"optional"`
	ElectricalType ElectricalType `altium:"optional"`
}

func (r *Port) Loc() Location { return Location{r.LocationX, r.LocationY} }

type NoErc struct {
	RecordBase
	LocationX int32 `altium:"mils"`
	LocationY int32 `altium:"mils"`
}

func (r *NoErc) Loc() Location { return Location{r.LocationX, r.LocationY} }

type NetLabel struct {
	RecordBase
	LocationX int32  `altium:"mils"`
	LocationY int32  `altium:"mils"`
	Text      string `altium:"optional"`
	FontID    uint16 `altium:"optional"`
}

func (r *NetLabel) Loc() Location { return Location{r.LocationX, r.LocationY} }

type Bus struct {
	RecordBase
	LineWidth int32      `altium:"mils,optional"`
	Color     Rgb        `altium:"optional"`
	Locations []Location `altium:"-"`
}

type Wire struct {
	RecordBase
	LineWidth int32      `altium:"mils,optional"`
	Color     Rgb        `altium:"optional"`
	Locations []Location `altium:"-"`
}

type TextFrame struct {
	RecordBase
	LocationX int32  `altium:"mils"`
	LocationY int32  `altium:"mils"`
	CornerX   int32  `altium:"mils"`
	CornerY   int32  `altium:"mils"`
	Text      string `altium:"optional"`
	FontID    uint16 `altium:"optional"`
	Color     Rgb    `altium:"optional"`
	AreaColor Rgb    `altium:"optional"`
}

func (r *TextFrame) Loc() Location    { return Location{r.LocationX, r.LocationY} }
func (r *TextFrame) Corner() Location { return Location{r.CornerX, r.CornerY} }

type Junction struct {
	RecordBase
	LocationX int32 `altium:"mils"`
	LocationY int32 `altium:"mils"`
	Color     Rgb   `altium:"optional"`
}

func (r *Junction) Loc() Location { return Location{r.LocationX, r.LocationY} }

type Image struct {
	RecordBase
	LocationX  int32  `altium:"mils"`
	LocationY  int32  `altium:"mils"`
	CornerX    int32  `altium:"mils"`
	CornerY    int32  `altium:"mils"`
	Filename   string `altium:"optional"`
	Embedded   bool   `altium:"optional"`
	StoragePath string `altium:"-"`
}

func (r *Image) Loc() Location    { return Location{r.LocationX, r.LocationY} }
func (r *Image) Corner() Location { return Location{r.CornerX, r.CornerY} }

type Sheet struct {
	RecordBase
	SheetStyle          SheetStyle `altium:"optional"`
	SheetNumberSpaceSize int32     `altium:"optional"`
	AreaColor           Rgb        `altium:"optional"`
	SnapGridOn          bool       `altium:"optional"`
	SnapGridSize        int32      `altium:"optional"`
	VisibleGridOn       bool       `altium:"optional"`
	VisibleGridSize     int32      `altium:"optional"`
	CustomX             int32      `altium:"optional"`
	CustomY             int32      `altium:"optional"`
	UseCustomSheet      bool       `altium:"optional"`
	ReferenceZonesOn    bool       `altium:"optional"`
	DisplayUnit         uint16     `altium:"-"` // carried opaque; semantics not load-bearing for decode
	FontIDCount         int        `altium:"-"`
	Fonts               *FontCollection `altium:"-"`
}

type SheetName struct {
	RecordBase
	LocationX int32  `altium:"mils"`
	LocationY int32  `altium:"mils"`
	Text      string `altium:"optional"`
}

func (r *SheetName) Loc() Location { return Location{r.LocationX, r.LocationY} }

type FileName struct {
	RecordBase
	LocationX int32  `altium:"mils"`
	LocationY int32  `altium:"mils"`
	Text      string `altium:"optional"`
}

func (r *FileName) Loc() Location { return Location{r.LocationX, r.LocationY} }

type Designator struct {
	RecordBase
	LocationX int32  `altium:"mils"`
	LocationY int32  `altium:"mils"`
	Text      string `altium:"optional"`
	Name      string `altium:"optional"`
	ReadOnlyState ReadOnlyState `altium:"optional"`
}

func (r *Designator) Loc() Location { return Location{r.LocationX, r.LocationY} }

type BusEntry struct {
	RecordBase
	LocationX int32 `altium:"mils"`
	LocationY int32 `altium:"mils"`
	CornerX   int32 `altium:"mils"`
	CornerY   int32 `altium:"mils"`
	Color     Rgb   `altium:"optional"`
}

func (r *BusEntry) Loc() Location    { return Location{r.LocationX, r.LocationY} }
func (r *BusEntry) Corner() Location { return Location{r.CornerX, r.CornerY} }

type Template struct {
	RecordBase
	FileName string `altium:"optional"`
}

type Parameter struct {
	RecordBase
	LocationX int32  `altium:"mils,optional"`
	LocationY int32  `altium:"mils,optional"`
	Name      string `altium:"optional"`
	Text      string `altium:"optional"`
	IsHidden  bool   `altium:"optional"`
	ReadOnlyState ReadOnlyState `altium:"optional"`
}

func (r *Parameter) Loc() Location { return Location{r.LocationX, r.LocationY} }

type ImplementationList struct {
	RecordBase
}

type Implementation struct {
	RecordBase
	ModelName string `altium:"optional"`
	ModelType string `altium:"optional"`
	IsCurrent bool   `altium:"optional"`
}

type ImplementationChild1 struct {
	RecordBase
}

type ImplementationChild2 struct {
	RecordBase
}
