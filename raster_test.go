// seehuhn.de/go/svgraster - render SVG drawings into RGBA images
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

package svgraster

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"maps"
	"math"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"testing"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgraster/testcases"
)

// TestAgainstReference compares the combined stroke and fill coverage of
// every test case with the reference images made by testcases/genpdf.
// Test cases without a reference image are skipped.
func TestAgainstReference(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				refPath := filepath.Join("testdata", "reference", name+".png")
				ref, err := loadGray(refPath)
				if errors.Is(err, fs.ErrNotExist) {
					t.Skip("no reference image")
				} else if err != nil {
					t.Fatalf("loading reference: %v", err)
				}

				img, err := Render(tc.SVG, tc.Width, tc.Height, nil)
				if err != nil {
					t.Fatal(err)
				}
				actual := make([]byte, tc.Width*tc.Height)
				for i := range actual {
					actual[i] = img.Pix[4*i+3]
				}

				if err := compareImages(name, ref, actual, tc.Width, tc.Height); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

func loadGray(path string) (gray []byte, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	img, err := png.Decode(f)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	gray = make([]byte, w*h)

	for y := range h {
		for x := range w {
			c := color.GrayModel.Convert(img.At(x+bounds.Min.X, y+bounds.Min.Y)).(color.Gray)
			gray[y*w+x] = c.Y
		}
	}
	return gray, nil
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h

	diffs := make([]int, total)
	for i := range total {
		diff := int(expected[i]) - int(actual[i])
		if diff < 0 {
			diff = -diff
		}
		diffs[i] = diff
	}
	sort.Ints(diffs)

	p90 := diffs[int(math.Round(0.90*float64(total-1)))]
	p98 := diffs[int(math.Round(0.98*float64(total-1)))]

	// Strokes snap to whole pixels while the reference is anti-aliased,
	// so only the bulk of the image is required to match.
	var failures []string
	if p90 >= 64 {
		failures = append(failures, fmt.Sprintf("90th percentile diff is %d (want <64)", p90))
	}
	if p98 >= 192 {
		failures = append(failures, fmt.Sprintf("98th percentile diff is %d (want <192)", p98))
	}

	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	// 3 panels: actual (left), diff (middle), reference (right)
	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x

			a := actual[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})

			// green = under, red = over, black = match
			diff := int(expected[i]) - int(actual[i])
			diffColor := color.RGBA{A: 255}
			if diff > 0 {
				diffColor.G = uint8(diff)
			} else if diff < 0 {
				diffColor.R = uint8(-diff)
			}
			img.Set(x+w, y, diffColor)

			e := expected[i]
			img.Set(x+w*2, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	var r coverageRasterizer
	r.reset(rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 1})
	r.addPolygon([]vec.Vec2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 1}})

	coverage := make([]float32, 10)
	r.fillNonZero(func(y, xMin int, cov []float32) {
		if y == 0 {
			copy(coverage[xMin:], cov)
		}
	})

	const epsilon = 1e-6
	for x := range 10 {
		expected := float32(2*x+1) / 20.0
		actual := coverage[x]
		if math.Abs(float64(actual-expected)) > epsilon {
			t.Errorf("pixel %d: expected coverage %.4f, got %.4f", x, expected, actual)
		}
	}
}

func square(x0, y0, x1, y1 float64) []vec.Vec2 {
	return []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// TestCoverageUnion checks that overlapping polygons of the same
// orientation give coverage 1, not 2.
func TestCoverageUnion(t *testing.T) {
	var r coverageRasterizer
	r.reset(rect.Rect{URx: 10, URy: 10})
	r.addPolygon(square(1, 1, 6, 6))
	r.addPolygon(square(4, 4, 9, 9))

	got := make(map[image.Point]float32)
	r.fillNonZero(func(y, xMin int, cov []float32) {
		for i, c := range cov {
			got[image.Pt(xMin+i, y)] = c
		}
	})

	for _, p := range []image.Point{{1, 1}, {5, 5}, {4, 4}, {8, 8}} {
		if got[p] != 1 {
			t.Errorf("pixel %v: coverage %g, want 1", p, got[p])
		}
	}
	for _, p := range []image.Point{{0, 0}, {7, 2}, {2, 7}, {9, 9}} {
		if got[p] != 0 {
			t.Errorf("pixel %v: coverage %g, want 0", p, got[p])
		}
	}
}

func TestCoverageClip(t *testing.T) {
	var r coverageRasterizer
	clip := rect.Rect{LLx: 2, LLy: 2, URx: 8, URy: 8}
	r.reset(clip)
	r.addPolygon(square(-100, -100, 100, 100))

	rows := 0
	r.fillNonZero(func(y, xMin int, cov []float32) {
		rows++
		if y < 2 || y >= 8 {
			t.Errorf("row %d outside the clip rectangle", y)
		}
		if xMin != 2 || len(cov) != 6 {
			t.Errorf("row %d covers %d..%d, want 2..8", y, xMin, xMin+len(cov))
		}
		for i, c := range cov {
			if c != 1 {
				t.Errorf("pixel (%d,%d): coverage %g", xMin+i, y, c)
			}
		}
	})
	if rows != 6 {
		t.Errorf("%d rows, want 6", rows)
	}
}

func TestCoverageReuse(t *testing.T) {
	var r coverageRasterizer
	r.reset(rect.Rect{URx: 10, URy: 10})
	r.addPolygon(square(0, 0, 10, 10))
	r.fillNonZero(func(int, int, []float32) {})

	r.reset(rect.Rect{URx: 10, URy: 10})
	r.addPolygon(square(2, 2, 3, 3))
	count := 0
	r.fillNonZero(func(y, xMin int, cov []float32) {
		count += len(cov)
	})
	if count != 1 {
		t.Errorf("%d pixels after reset, want 1", count)
	}
}
