package device

import "strings"

// Screen describes the physical display of a phone
type Screen struct {
	// Logical size in points, the unit lock screen layouts are designed in
	WidthPoints  float64
	HeightPoints float64

	Scale float64 // Pixels per point
}

// Profile represents a complete phone profile
type Profile struct {
	Name         string
	Manufacturer string
	Model        string
	Screen       Screen
}

// Bucket returns the coarse height class used for margin correction.
// Profiles without a known screen height fall into BucketUnknown.
func (p Profile) Bucket() Bucket {
	return BucketForHeight(p.Screen.HeightPoints)
}

// PixelSize returns the native resolution of the screen, or zeros when the
// profile carries no screen information.
func (p Profile) PixelSize() (width, height int) {
	if p.Screen.Scale <= 0 {
		return 0, 0
	}
	return int(p.Screen.WidthPoints * p.Screen.Scale), int(p.Screen.HeightPoints * p.Screen.Scale)
}

// Description returns "<manufacturer> <model>", falling back to Name.
func (p Profile) Description() string {
	parts := make([]string, 0, 2)
	for _, s := range []string{p.Manufacturer, p.Model} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return p.Name
	}
	return strings.Join(parts, " ")
}
