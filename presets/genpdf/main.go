// seehuhn.de/go/fingerprint - animated fingerprint ridge patterns
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

// Command genpdf writes proof images for all presets.
// For every preset it creates a PDF with the completed pattern as vector
// dots, and a PNG rendered with the in-tree rasteriser.  If Ghostscript is
// available, the PDF is also rendered to a second PNG for comparison.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"

	"seehuhn.de/go/fingerprint/pattern"
	"seehuhn.de/go/fingerprint/presets"
	"seehuhn.de/go/fingerprint/surface"
)

func main() {
	outDir := flag.String("d", "testdata/presets", "output directory")
	scale := flag.Float64("scale", 2, "resolution of the PNG images, relative to the preset size")
	useGS := flag.Bool("gs", false, "also render the PDF files using Ghostscript")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(presets.All)) {
		for _, p := range presets.All[category] {
			name := presets.FullName(category, p)
			pdfPath := filepath.Join(*outDir, name+".pdf")
			pngPath := filepath.Join(*outDir, name+".png")

			pat := p.Pattern()
			if err := generatePDF(pat, pdfPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if err := generatePNG(pat, *scale, pngPath); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
			if *useGS {
				gsPath := filepath.Join(*outDir, name+"_gs.png")
				if err := renderPNG(pdfPath, gsPath, *scale); err != nil {
					panic(fmt.Errorf("%s: %w", name, err))
				}
			}
		}
	}
}

// revealAll returns reveal counters which show every point of pat.
func revealAll(pat *pattern.Pattern) []int {
	revealed := make([]int, len(pat.Paths))
	for r, path := range pat.Paths {
		revealed[r] = len(path)
	}
	return revealed
}

func generatePDF(pat *pattern.Pattern, pdfPath string) error {
	s := surface.NewPDF(pat.Width, pat.Height)
	pat.Draw(s, revealAll(pat), pattern.DrawOptions{})
	return s.WriteFile(pdfPath)
}

func generatePNG(pat *pattern.Pattern, scale float64, pngPath string) error {
	s := surface.NewScaledImage(pat.Width, pat.Height, scale)
	s.Background = surface.White
	s.Clear()
	pat.Draw(s, revealAll(pat), pattern.DrawOptions{})

	f, err := os.Create(pngPath)
	if err != nil {
		return err
	}
	err = png.Encode(f, s.RGBA())
	if err2 := f.Close(); err == nil {
		err = err2
	}
	return err
}

func renderPNG(pdfPath, pngPath string, scale float64) error {
	// -r: 72 DPI is one point per pixel
	// -dGraphicsAlphaBits=4: 4x supersampling for anti-aliasing
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=png16m",
		fmt.Sprintf("-r%g", 72*scale),
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
