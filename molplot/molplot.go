/*
 * molplot.go, part of gomolara.
 *
 * Copyright 2024 The gomolara authors
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

//Package molplot draws extracted isolines to image files. It projects the
//3D contour points onto two coordinate axes, so it is meant for planes
//aligned with the coordinate system; an arbitrarily oriented plane gets
//flattened along whatever axes are requested.
package molplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Molara-Lab/gomolara/march"
)

func basicContourPlot(title, xlabel, ylabel string) *plot.Plot {
	p := plot.New()
	p.Title.Padding = vg.Millimeters(3)
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	p.Add(plotter.NewGrid())
	return p
}

var axisNames = [3]string{"x", "y", "z"}

//addSegments draws each consecutive pair of points as one line segment.
func addSegments(p *plot.Plot, points [][3]float64, axes [2]int, col color.Color) error {
	for i := 0; i+1 < len(points); i += 2 {
		xy := plotter.XYs{
			{X: points[i][axes[0]], Y: points[i][axes[1]]},
			{X: points[i+1][axes[0]], Y: points[i+1][axes[1]]},
		}
		l, err := plotter.NewLine(xy)
		if err != nil {
			return err
		}
		l.LineStyle.Color = col
		p.Add(l)
	}
	return nil
}

//Isolines plots both phases of set, the positive one in blue, the
//negative one in red, projected on the given pair of coordinate axes
//(0, 1 or 2 for x, y or z). The plot is saved as plotname.png.
func Isolines(set *march.IsoLineSet, axes [2]int, title, plotname string) error {
	if set == nil {
		return fmt.Errorf("molplot: nil line set")
	}
	for _, a := range axes {
		if a < 0 || a > 2 {
			return fmt.Errorf("molplot: axis index %d out of range", a)
		}
	}
	p := basicContourPlot(title, axisNames[axes[0]], axisNames[axes[1]])
	if err := addSegments(p, set.Positive, axes, color.RGBA{B: 255, A: 255}); err != nil {
		return err
	}
	if err := addSegments(p, set.Negative, axes, color.RGBA{R: 255, A: 255}); err != nil {
		return err
	}
	filename := fmt.Sprintf("%s.png", plotname)
	return p.Save(5*vg.Inch, 5*vg.Inch, filename)
}
