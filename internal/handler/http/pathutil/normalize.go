// Package pathutil maps request paths to route templates so that metric
// labels and span names stay low-cardinality.
package pathutil

import (
	"regexp"
	"strings"
)

// Unmatched is the label for paths that match no known route.
const Unmatched = "/:unmatched"

// PathPattern is a dynamic route and its template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns are the dynamic routes, most specific first.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/pages/organizations/[^/]+$`), Template: "/pages/organizations/:slug"},
	{Pattern: regexp.MustCompile(`^/pages/articles/[^/]+$`), Template: "/pages/articles/:slug"},
}

// staticRoutes are served as-is.
var staticRoutes = map[string]struct{}{
	"/":                    {},
	"/pages/home":          {},
	"/pages/organizations": {},
	"/pages/articles":      {},
	"/pages/histories":     {},
	"/pages/population":    {},
	"/site":                {},
	"/feed.xml":            {},
	"/health":              {},
	"/ready":               {},
	"/live":                {},
	"/metrics":             {},
}

// NormalizePath returns the route template for path.
//
//	NormalizePath("/pages/organizations/jane-doe") // "/pages/organizations/:slug"
//	NormalizePath("/pages/articles?page=2")        // "/pages/articles"
//	NormalizePath("/pages/home/")                  // "/pages/home"
//	NormalizePath("/wp-login.php")                 // "/:unmatched"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticRoutes[path]; ok {
		return path
	}
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return Unmatched
}

// GetExpectedCardinality returns the number of distinct values
// NormalizePath can produce.
func GetExpectedCardinality() int {
	return len(staticRoutes) + len(pathPatterns) + 1
}
