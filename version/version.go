// This file is part of Gopher8.
//
// Gopher8 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the version number and vcs revision of the current
// build of the application.
package version

import (
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Gopher8"

// number is the version number assigned by the makefile on release. if it is
// empty the project was probably not built using the makefile
var number string

// revision contains the vcs revision. if the source has been modified but has
// not been committed then the string is suffixed with "+dirty"
var revision string

// version contains the version number of the project being run
//
// if the version string is "unreleased" then it means that the project has
// been built manually (ie. not with the makefile)
//
// if the version string is "local" then it means there is no version number
// and no vcs information. this can happen when compiling/running with
// "go run ."
var version string

// Version returns the version string, the revision string and whether this is
// a numbered "release" version. If release is true then the revision
// information should be used sparingly.
func Version() (string, string, bool) {
	return version, revision, version == number && number != ""
}

func init() {
	var vcsRevision string
	var vcsModified bool

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no vcs information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = revision + "+dirty"
		}
	}

	if number != "" {
		version = number
	} else if vcsRevision == "" {
		version = "local"
	} else {
		version = "unreleased"
	}
}
