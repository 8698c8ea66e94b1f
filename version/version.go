// This file is part of HDMIWing.
//
// HDMIWing is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// HDMIWing is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with HDMIWing.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the version of the project as a whole and the
// revision of the emulated register core.
package version

// Version of the current release. The value "development" indicates that the
// project has been built from an undistributed copy of the repository.
const Version = "development"

// CoreRevision is the value returned by the read-only VIDEO_VERSION register.
// It tracks revisions of the register map, not of this repository.
const CoreRevision = 0x21
