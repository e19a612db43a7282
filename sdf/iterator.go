/*
 * iterator.go, part of gomol.
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

//Package sdf splits SD files into molfile records, and reads many records
//at the same time with the mdl package.
package sdf

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/rmera/gomol/mdl"
)

//maximum length of a line in an SD file.
const maxLine = 16 * 1024 * 1024

//Iterator returns, one by one, the records of an SD file.
//Records are separated by lines starting with "$$$$". Records made only
//of blank lines are skipped, and a last record without delimiter is returned
//as any other.
//
//	it, err := sdf.Open("file.sdf.gz")
//	//check err
//	defer it.Close()
//	for it.Next() {
//		lines := it.Record()
//		...
//	}
//	if err := it.Err(); err != nil {
//		...
//	}
type Iterator struct {
	sc     *bufio.Scanner
	closer io.Closer
	rec    []string
	index  int
	err    error
	done   bool
}

//NewIterator returns an iterator over the records in r.
func NewIterator(r io.Reader) *Iterator {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &Iterator{sc: sc, index: -1}
}

//Open opens the SD file name for iteration. Files ending in .gz are
//read as gzip-compressed, files ending in .zst or .zstd as zstd-compressed.
func Open(name string) (*Iterator, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	var r io.ReadCloser = f
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz":
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("sdf: can't open gzip file %s: %w", name, err)
		}
		r = closers{gz, []io.Closer{gz, f}}
	case ".zst", ".zstd":
		zs, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("sdf: can't open zstd file %s: %w", name, err)
		}
		r = closers{zs, []io.Closer{zstdCloser{zs}, f}}
	}
	it := NewIterator(r)
	it.closer = r
	return it, nil
}

//closers reads from a decompressor and closes it along with the file under it.
type closers struct {
	io.Reader
	c []io.Closer
}

func (c closers) Close() error {
	var first error
	for _, v := range c.c {
		if err := v.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

//*zstd.Decoder doesn't implement io.Closer.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

//Next advances to the next record. It returns false when there are no more
//records, or on error.
func (I *Iterator) Next() bool {
	if I.done {
		return false
	}
	var rec []string
	for I.sc.Scan() {
		line := strings.TrimRight(I.sc.Text(), "\r")
		if strings.HasPrefix(line, mdl.RecordDelimiter) {
			if blank(rec) {
				rec = rec[:0]
				continue
			}
			I.set(rec)
			return true
		}
		rec = append(rec, line)
	}
	I.done = true
	if I.err = I.sc.Err(); I.err != nil || blank(rec) {
		I.rec = nil
		return false
	}
	I.set(rec)
	return true
}

func (I *Iterator) set(rec []string) {
	I.rec = rec
	I.index++
}

//Record returns the lines of the current record, without the delimiter. The slice
//belongs to the caller.
func (I *Iterator) Record() []string {
	return I.rec
}

//Index returns the 0-based position of the current record in the file.
func (I *Iterator) Index() int {
	return I.index
}

//Err returns the error that stopped the iteration, if any.
func (I *Iterator) Err() error {
	return I.err
}

//Close releases the file opened by Open. For iterators created with NewIterator it
//does nothing.
func (I *Iterator) Close() error {
	if I.closer == nil {
		return nil
	}
	return I.closer.Close()
}

func blank(lines []string) bool {
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			return false
		}
	}
	return true
}
