// Package wine defines the domain model shared by the analysis packages:
// the color label, the fixed UCI wine-quality attribute schema, and parsing
// of raw records into typed samples.
//
// The schema is closed. Both source files (red and white) carry exactly the
// same eleven physicochemical attributes plus an integer quality score, and
// the loader rejects anything else, so every Sample in the program is
// guaranteed to share one attribute layout.
package wine

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color is the binary class label, derived from the file a sample came from.
type Color string

const (
	Red   Color = "red"
	White Color = "white"
)

// Valid reports whether c is one of the two known labels.
func (c Color) Valid() bool { return c == Red || c == White }

// Binary encodes the label for the classification framing: red=1, white=0.
func (c Color) Binary() int {
	if c == Red {
		return 1
	}
	return 0
}

// Attribute indexes the physicochemical columns of the UCI wine-quality schema.
type Attribute int

const (
	FixedAcidity Attribute = iota
	VolatileAcidity
	CitricAcid
	ResidualSugar
	Chlorides
	FreeSulfurDioxide
	TotalSulfurDioxide
	Density
	PH
	Sulphates
	Alcohol

	// NumAttributes is the number of chemistry columns (quality excluded).
	NumAttributes = int(Alcohol) + 1
)

var attributeNames = [NumAttributes]string{
	"fixed acidity",
	"volatile acidity",
	"citric acid",
	"residual sugar",
	"chlorides",
	"free sulfur dioxide",
	"total sulfur dioxide",
	"density",
	"pH",
	"sulphates",
	"alcohol",
}

// String returns the canonical UCI column name, e.g. "volatile acidity".
func (a Attribute) String() string {
	if a < 0 || int(a) >= NumAttributes {
		return fmt.Sprintf("attribute(%d)", int(a))
	}
	return attributeNames[a]
}

// Attributes lists all chemistry attributes in schema order.
func Attributes() []Attribute {
	out := make([]Attribute, NumAttributes)
	for i := range out {
		out[i] = Attribute(i)
	}
	return out
}

// QualityColumn is the name of the score column that follows the attributes.
const QualityColumn = "quality"

// Header returns the canonical column names in file order: the eleven
// attributes followed by quality.
func Header() []string {
	h := make([]string, 0, NumAttributes+1)
	for _, a := range Attributes() {
		h = append(h, a.String())
	}
	return append(h, QualityColumn)
}

// Sample is one measured wine record: the chemistry attributes, the sensory
// quality score, and the color label implied by the source file.
type Sample struct {
	Features [NumAttributes]float64
	Quality  int
	Color    Color
}

// MinQuality and MaxQuality bound the sensory score in the UCI data.
const (
	MinQuality = 0
	MaxQuality = 10
)

// ParseRecord converts one CSV record (eleven attribute fields plus quality)
// into a Sample labeled with color. Any unparseable or out-of-range field is
// an error; records are never silently repaired.
func ParseRecord(rec []string, color Color) (Sample, error) {
	var s Sample
	if !color.Valid() {
		return s, fmt.Errorf("unknown color label %q", string(color))
	}
	if len(rec) != NumAttributes+1 {
		return s, fmt.Errorf("expected %d fields, got %d", NumAttributes+1, len(rec))
	}
	for i := 0; i < NumAttributes; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
		if err != nil {
			return s, fmt.Errorf("column %q: %w", Attribute(i).String(), err)
		}
		// ParseFloat accepts "NaN" and "Inf"; neither is a measurement.
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return s, fmt.Errorf("column %q: missing or non-finite value %q", Attribute(i).String(), rec[i])
		}
		s.Features[i] = v
	}
	q, err := strconv.Atoi(strings.TrimSpace(rec[NumAttributes]))
	if err != nil {
		return s, fmt.Errorf("column %q: %w", QualityColumn, err)
	}
	if q < MinQuality || q > MaxQuality {
		return s, fmt.Errorf("column %q: score %d outside [%d, %d]", QualityColumn, q, MinQuality, MaxQuality)
	}
	s.Quality = q
	s.Color = color
	return s, nil
}
