package normalizer

import (
	"math"
	"strconv"
	"strings"

	"github.com/chandhuDev/JobLens/internal/models"
)

// ResolveLatLon reads a [lat, lon] pair from the record, falling back to
// the city table. It returns nil rather than (0, 0) when neither source
// yields a position.
func ResolveLatLon(v models.Value, city string) *models.Coordinates {
	if c, ok := parseLatLon(v); ok {
		return &c
	}
	if c, ok := CityCoordinates(city); ok {
		return &c
	}
	return nil
}

func parseLatLon(v models.Value) (models.Coordinates, bool) {
	switch v.Kind {
	case models.KindList:
		if len(v.List) != 2 {
			return models.Coordinates{}, false
		}
		lat, okLat := toFloat(v.List[0])
		lon, okLon := toFloat(v.List[1])
		return valid(lat, lon, okLat && okLon)
	case models.KindString:
		clean := strings.TrimSpace(strings.NewReplacer("[", "", "]", "").Replace(v.Str))
		parts := strings.Split(clean, ",")
		if clean == "" || len(parts) != 2 {
			return models.Coordinates{}, false
		}
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		lon, errLon := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		return valid(lat, lon, errLat == nil && errLon == nil)
	}
	return models.Coordinates{}, false
}

func toFloat(v models.Value) (float64, bool) {
	switch v.Kind {
	case models.KindNumber:
		return v.Num, true
	case models.KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		return f, err == nil
	}
	return 0, false
}

func valid(lat, lon float64, ok bool) (models.Coordinates, bool) {
	if !ok || math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return models.Coordinates{}, false
	}
	return models.Coordinates{Lat: lat, Lon: lon}, true
}
