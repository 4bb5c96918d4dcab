package geo

import (
	"math"
	"testing"
)

func TestHaversineSamePointIsZero(t *testing.T) {
	if got := Haversine(8.5, 47.3, 8.5, 47.3); got != 0 {
		t.Fatalf("expected 0 for identical points, got %v", got)
	}
}

func TestHaversineKnownDistances(t *testing.T) {
	tests := []struct {
		name                string
		srcLon, srcLat      float64
		dstLon, dstLat      float64
		wantKm, toleranceKm float64
	}{
		{"one degree of latitude", 0, 0, 0, 1, 111.195, 0.01},
		{"one degree of longitude at equator", 0, 0, 1, 0, 111.195, 0.01},
		{"zurich to bern", 8.5417, 47.3769, 7.4474, 46.9480, 95.4, 1.0},
		{"antipodal", 0, 0, 180, 0, math.Pi * EarthRadiusKm, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Haversine(tt.srcLon, tt.srcLat, tt.dstLon, tt.dstLat)
			if math.Abs(got-tt.wantKm) > tt.toleranceKm {
				t.Fatalf("Haversine() = %.4f km, want %.4f ± %.4f", got, tt.wantKm, tt.toleranceKm)
			}
		})
	}
}

func TestHaversineSymmetricAndNonNegative(t *testing.T) {
	ab := Haversine(8.0, 47.0, 8.001, 47.001)
	ba := Haversine(8.001, 47.001, 8.0, 47.0)
	if ab <= 0 {
		t.Fatalf("expected positive distance, got %v", ab)
	}
	if math.Abs(ab-ba) > 1e-12 {
		t.Fatalf("expected symmetric distance, got %v and %v", ab, ba)
	}
}
