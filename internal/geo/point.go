package geo

import (
	"github.com/shenikar/flood_risk_system/internal/models"
	"github.com/twpayne/go-geom"
)

// RepresentativePoint возвращает точку, по которой оценивается объект:
// точка - сама точка; линия - вершина с индексом len/2;
// мультилиния - то же для первой линии; полигон - первая вершина внешнего кольца;
// мультиполигон - то же для первого полигона.
func RepresentativePoint(g geom.T) (models.Location, bool) {
	switch v := g.(type) {
	case *geom.Point:
		if v.Empty() {
			return models.Location{}, false
		}
		return toLocation(v.Coords())
	case *geom.LineString:
		return lineMidpoint(v)
	case *geom.MultiLineString:
		if v.NumLineStrings() == 0 {
			return models.Location{}, false
		}
		return lineMidpoint(v.LineString(0))
	case *geom.Polygon:
		return polygonFirstVertex(v)
	case *geom.MultiPolygon:
		if v.NumPolygons() == 0 {
			return models.Location{}, false
		}
		return polygonFirstVertex(v.Polygon(0))
	default:
		return models.Location{}, false
	}
}

func lineMidpoint(ls *geom.LineString) (models.Location, bool) {
	n := ls.NumCoords()
	if n == 0 {
		return models.Location{}, false
	}
	return toLocation(ls.Coord(n / 2))
}

func polygonFirstVertex(p *geom.Polygon) (models.Location, bool) {
	if p.NumLinearRings() == 0 {
		return models.Location{}, false
	}
	ring := p.LinearRing(0)
	if ring.NumCoords() == 0 {
		return models.Location{}, false
	}
	return toLocation(ring.Coord(0))
}

func toLocation(c geom.Coord) (models.Location, bool) {
	if len(c) < 2 {
		return models.Location{}, false
	}
	return models.Location{Lat: c.Y(), Lng: c.X()}, true
}
