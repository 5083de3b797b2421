// Package geo contains great-circle distance helpers for venue coordinates.
package geo

import "math"

// EarthRadiusKm радиус Земли в километрах
const EarthRadiusKm = 6371.0

// Point координаты точки на поверхности Земли
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Distance возвращает расстояние между точками в километрах (формула гаверсинусов)
// Если хотя бы одна из точек отсутствует, возвращает +Inf: такие объекты
// считаются бесконечно далекими и отсеиваются любым фильтром по расстоянию
func Distance(p1, p2 *Point) float64 {
	if p1 == nil || p2 == nil {
		return math.Inf(1)
	}

	dLat := (p2.Lat - p1.Lat) * math.Pi / 180
	dLng := (p2.Lng - p1.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(p1.Lat*math.Pi/180)*math.Cos(p2.Lat*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}
