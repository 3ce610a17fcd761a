// Copyright 2023 Tao Wang <wangtaoking1@qq.com>. All rights reserved.
// Use of this source code is governed by a MIT style
// license that can be found in the LICENSE file.

package parser

import (
	"strings"

	"github.com/agext/levenshtein"
)

// maxSuggestDistance is the largest edit distance still worth suggesting.
const maxSuggestDistance = 3

func suggestVerb(unknown string, v *Verb) string {
	names := make([]string, 0, len(v.children))
	for _, child := range v.children {
		names = append(names, child.name)
	}
	return closest(unknown, names)
}

// suggestOption only suggests long spellings; any single character is one
// edit away from any other.
func suggestOption(unknown string, v *Verb) string {
	if !strings.HasPrefix(unknown, LongPrefix) {
		return ""
	}
	names := make([]string, 0, len(v.options))
	for _, o := range v.options {
		names = append(names, longName(o.fullName))
	}
	return closest(unknown, names)
}

func closest(unknown string, candidates []string) string {
	best := ""
	bestDistance := maxSuggestDistance + 1
	for _, c := range candidates {
		if d := levenshtein.Distance(unknown, c, nil); d < bestDistance {
			best, bestDistance = c, d
		}
	}

	return best
}
