/*
 * gridio.go, part of gomolara.
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

//Package gridio persists sampled voxel grids to disk in a simple,
//ASCII-only, line-oriented format, compressed according to the file name.
//The last letter of the name selects the compressor: 'z' means gzip,
//'r' flate, and anything else (the recommended extension is .gvx)
//z-standard. A file holds an optional key=value header, a "**" line with
//the grid geometry, and one field value per line in the same row-major
//order the voxel package uses.
package gridio

import (
	"bufio"
	"compress/flate"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/Molara-Lab/gomolara/voxel"
)

//zstd's Decoder has a Close without an error return, so it doesn't
//satisfy io.ReadCloser on its own.
type zstdql struct {
	closeql func()
	*zstd.Decoder
}

func (z zstdql) Close() error {
	z.closeql()
	return nil
}

func newCompressor(name string, f io.Writer) (io.WriteCloser, error) {
	switch strings.ToLower(name)[len(name)-1] {
	case 'z':
		return gzip.NewWriterLevel(f, gzip.BestCompression)
	case 'r':
		return flate.NewWriter(f, flate.BestCompression)
	default:
		return zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	}
}

func newDecompressor(name string, f io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(name)[len(name)-1] {
	case 'z':
		return gzip.NewReader(f)
	case 'r':
		return flate.NewReader(f), nil
	default:
		r, err := zstd.NewReader(f)
		if err != nil {
			return nil, err
		}
		return zstdql{r.Close, r}, nil
	}
}

//Write saves g to the named file, with an optional metadata header.
//Values are written with enough digits to round-trip exactly.
func Write(name string, g *voxel.Grid, header map[string]string) error {
	if g == nil {
		return Error{"nil grid", name, nil, true}
	}
	f, err := os.Create(name)
	if err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	defer f.Close()
	h, err := newCompressor(name, f)
	if err != nil {
		return Error{"can't set up compressor: " + err.Error(), name, []string{"Write"}, true}
	}
	w := bufio.NewWriter(h)
	for k, v := range header {
		fmt.Fprintf(w, "%s=%v\n", k, v)
	}
	fmt.Fprintf(w, "** %d %d %d\n", g.N[0], g.N[1], g.N[2])
	fmt.Fprintf(w, "* %.17g %.17g %.17g %.17g %.17g %.17g\n",
		g.Origin[0], g.Origin[1], g.Origin[2], g.Step[0], g.Step[1], g.Step[2])
	for _, v := range g.Data {
		fmt.Fprintf(w, "%.17g\n", v)
	}
	if err := w.Flush(); err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	if err := h.Close(); err != nil {
		return Error{err.Error(), name, []string{"Write"}, true}
	}
	return nil
}

//Read loads a grid written by Write, returning the grid and its metadata
//header (nil if the file has none).
func Read(name string) (*voxel.Grid, map[string]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, nil, Error{err.Error(), name, []string{"Read"}, true}
	}
	defer f.Close()
	d, err := newDecompressor(name, bufio.NewReader(f))
	if err != nil {
		return nil, nil, Error{"can't set up decompressor: " + err.Error(), name, []string{"Read"}, true}
	}
	defer d.Close()
	h := bufio.NewReader(d)
	var m map[string]string
	var n [3]int
	for {
		str, err := h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{"can't read header: " + err.Error(), name, []string{"Read"}, true}
		}
		str = strings.TrimSuffix(str, "\n")
		if strings.HasPrefix(str, "**") {
			fields := strings.Fields(str)
			if len(fields) != 4 {
				return nil, nil, Error{"malformed geometry line: " + str, name, []string{"Read"}, true}
			}
			for i, v := range fields[1:] {
				n[i], err = strconv.Atoi(v)
				if err != nil {
					return nil, nil, Error{"can't read point count: " + err.Error(), name, []string{"Read"}, true}
				}
			}
			break
		}
		kv := strings.SplitN(str, "=", 2)
		if len(kv) != 2 {
			return nil, nil, Error{"malformed header line: " + str, name, []string{"Read"}, true}
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[kv[0]] = kv[1]
	}
	str, err := h.ReadString('\n')
	if err != nil {
		return nil, nil, Error{"can't read geometry: " + err.Error(), name, []string{"Read"}, true}
	}
	fields := strings.Fields(strings.TrimSpace(str))
	if len(fields) != 7 || fields[0] != "*" {
		return nil, nil, Error{"malformed origin/step line: " + str, name, []string{"Read"}, true}
	}
	var geo [6]float64
	for i, v := range fields[1:] {
		geo[i], err = strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, nil, Error{"can't parse origin/step: " + err.Error(), name, []string{"Read"}, true}
		}
	}
	g, err := voxel.NewGrid([3]float64{geo[0], geo[1], geo[2]}, [3]float64{geo[3], geo[4], geo[5]}, n)
	if err != nil {
		return nil, nil, Error{"bad grid geometry: " + err.Error(), name, []string{"Read"}, true}
	}
	for i := range g.Data {
		str, err := h.ReadString('\n')
		if err != nil {
			return nil, nil, Error{fmt.Sprintf("grid truncated at value %d: %v", i, err), name, []string{"Read"}, true}
		}
		g.Data[i], err = strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err != nil {
			return nil, nil, Error{fmt.Sprintf("can't parse value %d: %v", i, err), name, []string{"Read"}, true}
		}
	}
	return g, m, nil
}
