// Package search builds storefront navigation targets from the search bar.
package search

import (
	"net/url"
	"strings"
)

// Param is the query parameter the storefront listing reads.
const Param = "searchTerm"

// TargetURL returns "/" for an empty term, otherwise "/" with the term as the
// single query parameter. The term is not trimmed or validated; spaces are
// written as %20.
func TargetURL(term string) string {
	if term == "" {
		return "/"
	}
	return "/?" + Param + "=" + strings.ReplaceAll(url.QueryEscape(term), "+", "%20")
}
