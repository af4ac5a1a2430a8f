package table

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/billiards/geom"
	"github.com/pkg/errors"
)

// Read the first <polygon> element of an SVG document as a convex polygon
// table. This is not a full SVG reader: transforms are ignored and only the
// "x,y x,y ..." form of the points attribute is understood. SVG's y axis points
// down, so y is negated.
func LoadPolygonSVG(r io.Reader) (*Polygon, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse svg")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return nil, invalidf("no polygons found in svg")
	}

	pointString := polygons[0].Attributes["points"]
	var points []geom.Point
	for _, pointString := range strings.Fields(pointString) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			return nil, invalidf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			return nil, invalidf("invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			return nil, invalidf("invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, geom.Point{X: x, Y: -y})
	}
	return NewPolygon(points)
}
