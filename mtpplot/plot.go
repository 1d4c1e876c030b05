/*
 * plot.go, part of goMTP.
 *
 * Copyright 2024 Raul Mera <rauldotmeraatusachdotcl>
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

//Package mtpplot draws plots to check training sets at a glance.
package mtpplot

import (
	"fmt"
	"image/color"

	mtp "github.com/rmera/gomtp"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Side of the (square) plots.
const Size = 4 * vg.Inch

func basicPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = 3 * vg.Millimeter
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

//EnergyHistogram plots a histogram of the energies per atom in the summary, with
//the given number of bins, and saves it to filename. The format is taken from the
//extension of filename (png, svg, pdf, eps...). Returns an error if there are no energies.
func EnergyHistogram(s *mtp.Summary, bins int, filename string) error {
	if s == nil || len(s.EnergyPerAtom) == 0 {
		return fmt.Errorf("goMTP/mtpplot: no energies to plot")
	}
	if bins < 1 {
		bins = 1
	}
	p := basicPlot(fmt.Sprintf("%d structures", s.Structures), "Energy per atom", "Structures")
	h, err := plotter.NewHist(plotter.Values(s.EnergyPerAtom), bins)
	if err != nil {
		return err
	}
	h.FillColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
	p.Add(h)
	//the mean, as a vertical line
	ymax := 0.0
	for _, b := range h.Bins {
		if b.Weight > ymax {
			ymax = b.Weight
		}
	}
	mean, err := plotter.NewLine(plotter.XYs{{X: s.Mean, Y: 0}, {X: s.Mean, Y: ymax}})
	if err != nil {
		return err
	}
	mean.Color = color.RGBA{R: 255, A: 255}
	mean.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(mean)
	p.Legend.Add("mean", mean)
	return p.Save(Size, Size, filename)
}
