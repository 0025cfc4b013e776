// Package buildinfo reports how the running binary was built and what
// it is running on.
package buildinfo

import (
	"sort"
	"strings"
)

// Tags contains the build tags detected in this package, eg "cgo".
var Tags []string

// GetLinkingAndTags tells how the executable was linked and returns
// the other build tags space separated or the string "none".
//
// The C library is always built with cgo so reports "dynamic".
func GetLinkingAndTags() (linking, tagString string) {
	linking = "static"
	tagList := []string{}
	for _, tag := range Tags {
		if tag == "cgo" {
			linking = "dynamic"
		} else {
			tagList = append(tagList, tag)
		}
	}
	if len(tagList) == 0 {
		return linking, "none"
	}
	sort.Strings(tagList)
	return linking, strings.Join(tagList, " ")
}
