package lint

import (
	"fmt"
	"regexp"
	"strings"
)

// defaultObjectNames are the names the host assigns to freshly added
// objects. Shipping one of these (or a "Cube.001"-style numbered copy)
// usually means nobody bothered to name the object.
var defaultObjectNames = []string{
	"BezierCircle",
	"BezierCurve",
	"Circle",
	"Cone",
	"Cube",
	"CurvePath",
	"Cylinder",
	"Grid",
	"Icosphere",
	"Mball",
	"Monkey",
	"NurbsCircle",
	"NurbsCurve",
	"NurbsPath",
	"Plane",
	"Sphere",
	"Surface",
	"SurfCircle",
	"SurfCurve",
	"SurfCylinder",
	"SurfPatch",
	"SurfSphere",
	"SurfTorus",
	"Text",
	"Torus",
}

var defaultNamePattern = regexp.MustCompile(
	`^(` + strings.Join(defaultObjectNames, "|") + `)\.?\d*$`)

// IsBadName reports whether name is a default object name, with or without
// a numeric suffix ("Cube", "Cube.001", "Sphere.123").
func IsBadName(name string) bool {
	return defaultNamePattern.MatchString(name)
}

// HasUnappliedScale reports whether any scale component is not exactly 1.0.
func HasUnappliedScale(scale [3]float64) bool {
	for _, c := range scale {
		if c != 1.0 {
			return true
		}
	}
	return false
}

// ObjectStatus is what the criticism builder needs to know about one
// examined object.
type ObjectStatus struct {
	Name  string
	Scale [3]float64
}

// BuildObjectCriticisms renders the name and scale nudges reported
// alongside an examination. The conjunction tracks whether a complaint has
// already been made: "but" follows a clean run, "and also" piles on.
func BuildObjectCriticisms(objects []ObjectStatus, totalProblems int) []string {
	alreadyComplained := totalProblems > 0
	var criticisms []string
	addCrit := func(name, crit string) {
		conjunction := "but"
		if alreadyComplained {
			conjunction = "and also"
		}
		criticisms = append(criticisms, fmt.Sprintf("...%s %q %s.", conjunction, name, crit))
		alreadyComplained = true
	}
	for _, obj := range objects {
		if HasUnappliedScale(obj.Scale) {
			addCrit(obj.Name, "has an unapplied scale")
		}
		if IsBadName(obj.Name) {
			addCrit(obj.Name, "is not a great name")
		}
	}
	return criticisms
}
