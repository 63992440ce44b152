// seehuhn.de/go/pathnorm - normalize vector paths to a target size
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package testcases

// All contains all test cases, grouped by category.
var All = map[string][]TestCase{
	"line":       lineCases,
	"curve":      curveCases,
	"subpath":    subpathCases,
	"degenerate": degenerateCases,
}

// Find returns the test case with the given name, searching all
// categories.  Names may be given as "name" or "category_name".
func Find(name string) (TestCase, bool) {
	for category, cases := range All {
		for _, tc := range cases {
			if tc.Name == name || category+"_"+tc.Name == name {
				return tc, true
			}
		}
	}
	return TestCase{}, false
}
