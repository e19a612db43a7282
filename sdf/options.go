/*
 * options.go, part of gomol.
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

package sdf

import (
	"log"
	"runtime"
)

//Options contains the options for the Load function.
type Options struct {
	workers   int
	skipCtab  bool
	skipProps bool
	skipTags  bool
	logger    *log.Logger
	metrics   *Metrics //nil means no metrics
}

//DefaultOptions returns options that read every section of every record,
//with one goroutine per logical CPU, logging to the standard logger.
func DefaultOptions() *Options {
	r := new(Options)
	r.workers = runtime.NumCPU()
	r.logger = log.Default()
	return r
}

//Returns the number of gorutines to be used,
//and sets it to a new value, if given.
func (O *Options) Workers(n ...int) int {
	if len(n) > 0 && n[0] > 0 {
		O.workers = n[0]
	}
	return O.workers
}

//Returns whether the CTAB of each record is skipped,
//and sets it to a new value, if given. The CTAB is read anyway
//if the properties are not skipped.
func (O *Options) SkipCtab(skip ...bool) bool {
	if len(skip) > 0 {
		O.skipCtab = skip[0]
	}
	return O.skipCtab
}

//Returns whether the properties block is skipped,
//and sets it to a new value, if given.
func (O *Options) SkipProps(skip ...bool) bool {
	if len(skip) > 0 {
		O.skipProps = skip[0]
	}
	return O.skipProps
}

//Returns whether the data items are skipped,
//and sets it to a new value, if given.
func (O *Options) SkipTags(skip ...bool) bool {
	if len(skip) > 0 {
		O.skipTags = skip[0]
	}
	return O.skipTags
}

//Returns the logger for failed records,
//and sets it to a new value, if a non-nil one is given.
func (O *Options) Logger(l ...*log.Logger) *log.Logger {
	if len(l) > 0 && l[0] != nil {
		O.logger = l[0]
	}
	return O.logger
}

//Returns the metrics collector, which can be nil,
//and sets it to a new value, if given.
func (O *Options) Metrics(m ...*Metrics) *Metrics {
	if len(m) > 0 {
		O.metrics = m[0]
	}
	return O.metrics
}
