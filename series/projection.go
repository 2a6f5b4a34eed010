package series

import (
	"github.com/tastedash/tastedash/table"
	"github.com/tastedash/tastedash/utils"
)

type (
	// ProjectionSpec names the columns of a scatter-style projection.
	// X and Y are required; Color, Size, and Hover are optional and may
	// name columns the table does not have.
	ProjectionSpec struct {
		X     string
		Y     string
		Color string
		Size  string
		Hover string
	}

	Point struct {
		X     float64  `json:"x"`
		Y     float64  `json:"y"`
		Color *string  `json:"color,omitempty"`
		Size  *float64 `json:"size,omitempty"`
		Hover *string  `json:"hover,omitempty"`
	}
)

// PairedProjection projects rows onto the named columns for scatter-style
// presentation. Rows with a missing or non-numeric X or Y are dropped;
// missing color/size/hover values stay null. Returns nil when X or Y is
// absent from the table.
func PairedProjection(t *table.Table, spec ProjectionSpec) []Point {
	xIdx, ok := t.ColumnIndex(spec.X)
	if !ok {
		return nil
	}
	yIdx, ok := t.ColumnIndex(spec.Y)
	if !ok {
		return nil
	}

	colorIdx, hasColor := optionalColumn(t, spec.Color)
	sizeIdx, hasSize := optionalColumn(t, spec.Size)
	hoverIdx, hasHover := optionalColumn(t, spec.Hover)

	points := make([]Point, 0, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		x := t.Value(i, xIdx)
		y := t.Value(i, yIdx)
		if x.Kind != table.KindNumber || y.Kind != table.KindNumber {
			continue
		}

		p := Point{X: x.Num, Y: y.Num}

		if hasColor {
			if v := t.Value(i, colorIdx); !v.IsMissing() {
				p.Color = utils.Ptr(v.Display())
			}
		}
		if hasSize {
			if v := t.Value(i, sizeIdx); v.Kind == table.KindNumber {
				p.Size = utils.Ptr(v.Num)
			}
		}
		if hasHover {
			if v := t.Value(i, hoverIdx); !v.IsMissing() {
				p.Hover = utils.Ptr(v.Display())
			}
		}

		points = append(points, p)
	}
	return points
}

func optionalColumn(t *table.Table, name string) (int, bool) {
	if name == "" {
		return 0, false
	}
	return t.ColumnIndex(name)
}
