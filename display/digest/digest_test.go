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

package digest_test

import (
	"testing"

	"github.com/hqvga/hdmiwing/display"
	"github.com/hqvga/hdmiwing/display/digest"
	"github.com/hqvga/hdmiwing/hardware"
	"github.com/hqvga/hdmiwing/hardware/bus"
	"github.com/hqvga/hdmiwing/hardware/registers"
	"github.com/hqvga/hdmiwing/test"
)

func runFrames(t *testing.T, w *hardware.Wing, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.ExpectedSuccess(t, w.RunFrame())
	}
}

func TestDigestIsDeterministic(t *testing.T) {
	a := digest.NewVideo()
	wa, err := hardware.NewWing(a)
	test.ExpectedSuccess(t, err)

	b := digest.NewVideo()
	wb, err := hardware.NewWing(b)
	test.ExpectedSuccess(t, err)

	runFrames(t, wa, 3)
	runFrames(t, wb, 3)
	test.ExpectedSuccess(t, a.EndRendering())
	test.ExpectedSuccess(t, b.EndRendering())

	// identical register activity gives identical fingerprints
	test.Equate(t, a.Hash(), b.Hash())
}

func TestDigestSensitivity(t *testing.T) {
	a := digest.NewVideo()
	wa, err := hardware.NewWing(a)
	test.ExpectedSuccess(t, err)

	b := digest.NewVideo()
	wb, err := hardware.NewWing(b)
	test.ExpectedSuccess(t, err)

	// the second machine shows a different pattern
	rep := wb.Route(bus.Transaction{
		Address: registers.VideoPattern,
		Data:    0x01,
		IsWrite: true,
	})
	test.ExpectedSuccess(t, rep.Accepted)

	runFrames(t, wa, 2)
	runFrames(t, wb, 2)
	test.ExpectedSuccess(t, a.EndRendering())
	test.ExpectedSuccess(t, b.EndRendering())

	if a.Hash() == b.Hash() {
		t.Fatalf("different video output produced the same fingerprint")
	}
}

func TestDigestChaining(t *testing.T) {
	dig := digest.NewVideo()
	w, err := hardware.NewWing(dig)
	test.ExpectedSuccess(t, err)

	runFrames(t, w, 1)
	test.ExpectedSuccess(t, dig.EndRendering())
	one := dig.Hash()

	// the same frame again but chained onto the first: the fingerprint
	// must move even though the pixels have not
	runFrames(t, w, 1)
	test.ExpectedSuccess(t, dig.EndRendering())
	if dig.Hash() == one {
		t.Fatalf("fingerprint chain did not advance across identical frames")
	}
}

// the digest sink must satisfy the display.Sink interface.
var _ display.Sink = (*digest.Video)(nil)
