/*
 * histogram.go, part of gomol.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package chemplot draws simple plots of sets of molecules, using gonum/plot.
package chemplot

import (
	"errors"
	"fmt"

	chem "github.com/rmera/gomol"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//MaxBins is the largest number of bins SizeHistogram will choose by itself.
const MaxBins = 50

//ErrNoData is returned when there is nothing to plot.
var ErrNoData = errors.New("chemplot: no data to plot")

//Sizes returns the number of atoms of each molecule in mols. Nil molecules
//are skipped.
func Sizes(mols []*chem.Molecule) []int {
	ret := make([]int, 0, len(mols))
	for _, m := range mols {
		if m == nil {
			continue
		}
		ret = append(ret, m.NumAtoms())
	}
	return ret
}

//bins returns one bin per possible size, up to MaxBins.
func bins(lo, hi int) int {
	n := hi - lo + 1
	if n > MaxBins {
		return MaxBins
	}
	return n
}

func basicPlot(title, xlabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = xlabel
	p.Y.Label.Text = "Molecules"
	p.Add(plotter.NewGrid())
	return p
}

//SizeHistogram plots a histogram of sizes and saves it to filename. The image format
//is taken from the extension of filename (png, svg, pdf, eps, jpg, tif). If n is not
//positive, one bin is used for each size between the smallest and the largest, with
//at most MaxBins bins.
func SizeHistogram(sizes []int, n int, title, filename string) error {
	if len(sizes) == 0 {
		return ErrNoData
	}
	vals := make(plotter.Values, len(sizes))
	lo, hi := sizes[0], sizes[0]
	for i, s := range sizes {
		vals[i] = float64(s)
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	if n <= 0 {
		n = bins(lo, hi)
	}
	h, err := plotter.NewHist(vals, n)
	if err != nil {
		return fmt.Errorf("chemplot: SizeHistogram: %w", err)
	}
	p := basicPlot(title, "Atoms")
	p.Add(h)
	if err := p.Save(5*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("chemplot: SizeHistogram: %w", err)
	}
	return nil
}
