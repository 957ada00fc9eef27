package device

import (
	"fmt"
	"sort"
	"strings"
)

// Available phone profiles
var profiles = map[string]Profile{
	"iphone-se": {
		Name:         "iPhone SE",
		Manufacturer: "Apple",
		Model:        "SE (3rd generation)",
		Screen: Screen{
			WidthPoints:  375,
			HeightPoints: 667,
			Scale:        2,
		},
	},
	"iphone-mini": {
		Name:         "iPhone 13 mini",
		Manufacturer: "Apple",
		Model:        "13 mini",
		Screen: Screen{
			WidthPoints:  375,
			HeightPoints: 812,
			Scale:        3,
		},
	},
	"iphone": {
		Name:         "iPhone 15",
		Manufacturer: "Apple",
		Model:        "15",
		Screen: Screen{
			WidthPoints:  393,
			HeightPoints: 852,
			Scale:        3,
		},
	},
	"iphone-14": {
		Name:         "iPhone 14",
		Manufacturer: "Apple",
		Model:        "14",
		Screen: Screen{
			WidthPoints:  390,
			HeightPoints: 844,
			Scale:        3,
		},
	},
	"iphone-pro-max": {
		Name:         "iPhone 15 Pro Max",
		Manufacturer: "Apple",
		Model:        "15 Pro Max",
		Screen: Screen{
			WidthPoints:  430,
			HeightPoints: 932,
			Scale:        3,
		},
	},
	"iphone-plus": {
		Name:         "iPhone 14 Plus",
		Manufacturer: "Apple",
		Model:        "14 Plus",
		Screen: Screen{
			WidthPoints:  428,
			HeightPoints: 926,
			Scale:        3,
		},
	},
	"generic": {
		Name:         "Generic Phone",
		Manufacturer: "Generic",
		Model:        "Unknown",
		// No screen information: margins stay uncorrected
	},
}

// GetProfile returns a phone profile by name
func GetProfile(name string) (Profile, error) {
	normalizedName := strings.ToLower(strings.TrimSpace(name))

	if profile, exists := profiles[normalizedName]; exists {
		return profile, nil
	}

	return Profile{}, fmt.Errorf("unknown device profile '%s'. Available profiles: %v", name, Names())
}

// ListProfiles returns all available phone profiles
func ListProfiles() map[string]Profile {
	out := make(map[string]Profile, len(profiles))
	for key, profile := range profiles {
		out[key] = profile
	}
	return out
}

// Names returns the profile keys in sorted order
func Names() []string {
	names := make([]string, 0, len(profiles))
	for key := range profiles {
		names = append(names, key)
	}
	sort.Strings(names)
	return names
}
