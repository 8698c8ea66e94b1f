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

package performance_test

import (
	"testing"

	"github.com/hqvga/hdmiwing/performance"
	"github.com/hqvga/hdmiwing/test"
)

func TestCalcFPS(t *testing.T) {
	fps, accuracy := performance.CalcFPS(60, 1.0)
	test.Equate(t, fps, 60.0)
	test.Equate(t, accuracy, 100.0)

	fps, accuracy = performance.CalcFPS(30, 1.0)
	test.Equate(t, fps, 30.0)
	test.Equate(t, accuracy, 50.0)

	fps, _ = performance.CalcFPS(120, 2.0)
	test.Equate(t, fps, 60.0)
}
