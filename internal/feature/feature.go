// Package feature gates operations by subscription tier.
package feature

import "github.com/buildfy/backend/internal/shared/types"

// Tier is a subscription level. Anything unrecognized is treated as
// TierFree.
type Tier string

const (
	TierFree     Tier = "free"
	TierStandard Tier = "standard"
	TierPro      Tier = "pro"
)

// Feature names a gated capability.
type Feature string

const (
	ExportCode         Feature = "export_code"
	AdvancedWidgets    Feature = "advanced_widgets"
	RemoveWatermark    Feature = "remove_watermark"
	UnlimitedCanvas    Feature = "unlimited_canvas"
	PrioritySupport    Feature = "priority_support"
	CustomIntegrations Feature = "custom_integrations"
	CreateProjects     Feature = "create_projects"
)

// FreeMaxProjects caps how many projects a free-tier user may keep.
const FreeMaxProjects = 3

var tierFeatures = map[Tier][]Feature{
	TierFree: {
		UnlimitedCanvas,
	},
	TierStandard: {
		UnlimitedCanvas,
		ExportCode,
		AdvancedWidgets,
		RemoveWatermark,
		CreateProjects,
	},
	TierPro: {
		UnlimitedCanvas,
		ExportCode,
		AdvancedWidgets,
		RemoveWatermark,
		PrioritySupport,
		CustomIntegrations,
		CreateProjects,
	},
}

// advancedWidgets require a paid tier to place on the canvas.
var advancedWidgets = map[types.WidgetType]bool{
	types.TypeDatePicker:  true,
	types.TypeSlider:      true,
	types.TypeProgressBar: true,
}

// Normalize maps an arbitrary tier string onto a known Tier.
func Normalize(tier string) Tier {
	switch Tier(tier) {
	case TierStandard:
		return TierStandard
	case TierPro:
		return TierPro
	}
	return TierFree
}

// Has reports whether the tier includes the feature.
func Has(tier Tier, f Feature) bool {
	for _, have := range tierFeatures[Normalize(string(tier))] {
		if have == f {
			return true
		}
	}
	return false
}

// Features lists the capabilities of a tier.
func Features(tier Tier) []Feature {
	fs := tierFeatures[Normalize(string(tier))]
	out := make([]Feature, len(fs))
	copy(out, fs)
	return out
}

// WidgetAvailable reports whether the tier may use the widget type.
// Basic widgets are open to everyone; advanced ones need a paid tier.
func WidgetAvailable(tier Tier, t types.WidgetType) bool {
	if !advancedWidgets[t] {
		return true
	}
	n := Normalize(string(tier))
	return n == TierStandard || n == TierPro
}

// CanCreateProject reports whether the tier allows one more project on
// top of the current count.
func CanCreateProject(tier Tier, currentCount int) bool {
	if Normalize(string(tier)) == TierFree {
		return currentCount < FreeMaxProjects
	}
	return true
}

// MaxProjects returns the project cap for a tier, or -1 for unlimited.
func MaxProjects(tier Tier) int {
	if Normalize(string(tier)) == TierFree {
		return FreeMaxProjects
	}
	return -1
}
