/*
 * main.go, part of gomol.
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

//sdfstat reads SD files (plain, .gz or .zst) and prints a line for each record,
//with the name and the number of atoms, bonds, rings and fragments.
//Records that can't be read are logged and skipped.
//
//Usage:
//
//	sdfstat [-workers n] [-skip-tags] [-rings] [-db file] [-metrics-out file] [-plot file.png] file.sdf...
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	chem "github.com/rmera/gomol"
	"github.com/rmera/gomol/chemgraph"
	"github.com/rmera/gomol/chemplot"
	"github.com/rmera/gomol/mdl"
	"github.com/rmera/gomol/molstore"
	"github.com/rmera/gomol/sdf"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args, os.Stdout, os.Stderr))
}

type config struct {
	workers    int
	skipTags   bool
	rings      bool
	db         string
	metricsOut string
	plot       string
	files      []string
}

func parseFlags(args []string, stderr io.Writer) (*config, error) {
	c := new(config)
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&c.workers, "workers", runtime.NumCPU(), "number of records read at the same time")
	fs.BoolVar(&c.skipTags, "skip-tags", false, "don't read the data items")
	fs.BoolVar(&c.rings, "rings", false, "find and count the rings of each molecule")
	fs.StringVar(&c.db, "db", "", "save every molecule read to this SQLite database")
	fs.StringVar(&c.metricsOut, "metrics-out", "", "write Prometheus metrics to this file at the end")
	fs.StringVar(&c.plot, "plot", "", "plot a histogram of the molecule sizes to this file (png, svg, pdf)")
	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	c.files = fs.Args()
	if len(c.files) == 0 {
		fs.Usage()
		return nil, fmt.Errorf("no input files")
	}
	return c, nil
}

//run returns the exit code: 0 on success, 1 if a file, the database or the plot failed,
//2 for bad arguments.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "sdfstat: ", 0)
	c, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}
	reg := prometheus.NewRegistry()
	o := sdf.DefaultOptions()
	o.Workers(c.workers)
	o.SkipTags(c.skipTags)
	o.Logger(logger)
	o.Metrics(sdf.NewMetrics(reg))

	var store *molstore.Store
	if c.db != "" {
		if store, err = molstore.Open(c.db); err != nil {
			logger.Printf("%v", err)
			return 1
		}
		defer store.Close()
	}
	reader := mdl.NewV2000Reader(nil)
	code := 0
	var mols []*chem.Molecule
	for _, name := range c.files {
		read, err := stat(ctx, name, reader, o, store, c.rings, stdout, logger)
		mols = append(mols, read...)
		if err != nil {
			logger.Printf("%s: %v", name, err)
			code = 1
			if ctx.Err() != nil {
				break
			}
		}
	}
	if c.plot != "" {
		if err := chemplot.SizeHistogram(chemplot.Sizes(mols), 0, "Molecule sizes", c.plot); err != nil {
			logger.Printf("%v", err)
			code = 1
		}
	}
	if c.metricsOut != "" {
		if err := prometheus.WriteToTextfile(c.metricsOut, reg); err != nil {
			logger.Printf("%v", err)
			code = 1
		}
	}
	return code
}

//stat prints a line for each molecule in the file name, and returns the molecules read.
func stat(ctx context.Context, name string, reader *mdl.V2000Reader, o *sdf.Options, store *molstore.Store, rings bool, stdout io.Writer, logger *log.Logger) ([]*chem.Molecule, error) {
	it, err := sdf.Open(name)
	if err != nil {
		return nil, err
	}
	defer it.Close()
	res, err := sdf.Load(ctx, it, reader, o)
	if err != nil {
		return nil, err
	}
	mols := make([]*chem.Molecule, 0, len(res))
	for _, r := range res {
		if r.Err != nil {
			continue //already logged by Load
		}
		m := r.Molecule
		mols = append(mols, m)
		if rings {
			if _, err := chemgraph.PerceiveRings(m); err != nil {
				logger.Printf("%s: record %d: %v", name, r.Index, err)
			}
		}
		fmt.Fprintf(stdout, "%s\t%d\t%s\tatoms=%d bonds=%d double=%d triple=%d rings=%d fragments=%d\n",
			name, r.Index, m.VendorID, m.NumAtoms(), m.NumBonds(), m.NumDoubleBonds(), m.NumTripleBonds(),
			m.NumRings(), len(chemgraph.Fragments(m)))
		if store != nil {
			if _, err := store.Save(ctx, m); err != nil {
				return mols, err
			}
		}
	}
	return mols, nil
}
