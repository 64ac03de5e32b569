package domain

import "strings"

type Category string

const (
	WaterSupplyDrainage     Category = "WATER_SUPPLY_DRAINAGE"
	RoadTraffic             Category = "ROAD_TRAFFIC"
	MunicipalUtilities      Category = "MUNICIPAL_UTILITIES"
	EnvironmentalSanitation Category = "ENVIRONMENTAL_SANITATION"
	LandscapeGreening       Category = "LANDSCAPE_GREENING"
	PublicFacilities        Category = "PUBLIC_FACILITIES"
	WaterConservancy        Category = "WATER_CONSERVANCY"
)

// CategoryInfo is the display metadata of a category tag.
type CategoryInfo struct {
	Value    Category `json:"value"`
	Label    string   `json:"label"`
	IconType string   `json:"iconType"`
	Color    string   `json:"color"`
}

var categories = []CategoryInfo{
	{WaterSupplyDrainage, "给排水工程", "water", "#2196F3"},
	{RoadTraffic, "道路交通工程", "road", "#FF9800"},
	{MunicipalUtilities, "市政公用工程", "utilities", "#4CAF50"},
	{EnvironmentalSanitation, "环境卫生工程", "environment", "#8BC34A"},
	{LandscapeGreening, "园林绿化工程", "landscape", "#4CAF50"},
	{PublicFacilities, "公共设施工程", "public", "#9C27B0"},
	{WaterConservancy, "水利工程", "water_conservancy", "#00BCD4"},
}

// Categories returns every category in declaration order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory upper-cases token and matches it against the tag names.
func ParseCategory(token string) (Category, bool) {
	upper := strings.ToUpper(token)
	for _, info := range categories {
		if string(info.Value) == upper {
			return info.Value, true
		}
	}
	return "", false
}
