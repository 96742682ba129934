package report

import (
	"sort"
	"strings"

	"github.com/yacobolo/tenox"
)

// Category groups related CSS properties in explain output.
type Category string

// Property categories, in display order.
const (
	CategoryVisual     Category = "Visual"
	CategoryLayout     Category = "Layout"
	CategoryTypography Category = "Typography"
	CategoryEffects    Category = "Effects"
	CategoryCustom     Category = "Custom Properties"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategoryLayout,
	CategoryVisual,
	CategoryTypography,
	CategoryEffects,
	CategoryCustom,
}

var propertyCategories = map[string]Category{
	"background":       CategoryVisual,
	"background-color": CategoryVisual,
	"background-size":  CategoryVisual,
	"color":            CategoryVisual,
	"border":           CategoryVisual,
	"border-color":     CategoryVisual,
	"border-radius":    CategoryVisual,
	"border-width":     CategoryVisual,
	"border-style":     CategoryVisual,
	"box-shadow":       CategoryVisual,
	"opacity":          CategoryVisual,
	"cursor":           CategoryVisual,

	"display":               CategoryLayout,
	"flex":                  CategoryLayout,
	"gap":                   CategoryLayout,
	"grid-template-columns": CategoryLayout,
	"grid-template-rows":    CategoryLayout,
	"position":              CategoryLayout,
	"top":                   CategoryLayout,
	"right":                 CategoryLayout,
	"bottom":                CategoryLayout,
	"left":                  CategoryLayout,
	"width":                 CategoryLayout,
	"height":                CategoryLayout,
	"overflow":              CategoryLayout,
	"z-index":               CategoryLayout,
	"aspect-ratio":          CategoryLayout,

	"font-family":     CategoryTypography,
	"font-size":       CategoryTypography,
	"font-weight":     CategoryTypography,
	"line-height":     CategoryTypography,
	"letter-spacing":  CategoryTypography,
	"text-align":      CategoryTypography,
	"text-decoration": CategoryTypography,
	"text-transform":  CategoryTypography,
	"white-space":     CategoryTypography,

	"transition":          CategoryEffects,
	"transition-duration": CategoryEffects,
	"transform":           CategoryEffects,
	"filter":              CategoryEffects,
	"backdrop-filter":     CategoryEffects,
}

// CategorizeProperty determines the category of a CSS property.
func CategorizeProperty(name string) Category {
	if cat, ok := propertyCategories[name]; ok {
		return cat
	}
	switch {
	case strings.HasPrefix(name, "--"):
		return CategoryCustom
	case strings.HasPrefix(name, "border-"), strings.HasPrefix(name, "background-"):
		return CategoryVisual
	case strings.HasPrefix(name, "font-"), strings.HasPrefix(name, "text-"):
		return CategoryTypography
	case strings.HasPrefix(name, "transition-"), strings.HasPrefix(name, "animation-"):
		return CategoryEffects
	}
	// flex-*, grid-*, padding-*, margin-*, min-/max- sizes and anything unknown.
	return CategoryLayout
}

// CategorizedWrite is a write tagged with its category.
type CategorizedWrite struct {
	tenox.Write
	Category Category
	IsVar    bool // Value references a custom property
}

// CategorizeWrites groups writes by category, sorted by property within each
// group.
func CategorizeWrites(writes []tenox.Write) map[Category][]CategorizedWrite {
	result := make(map[Category][]CategorizedWrite)

	for _, w := range writes {
		cat := CategorizeProperty(w.Property)
		result[cat] = append(result[cat], CategorizedWrite{
			Write:    w,
			Category: cat,
			IsVar:    strings.Contains(w.Value, "var(--"),
		})
	}

	for cat := range result {
		sort.SliceStable(result[cat], func(i, j int) bool {
			return result[cat][i].Property < result[cat][j].Property
		})
	}
	return result
}
