// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package robocopy

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/hashicorp/go-multierror"
)

const maxThreads = 128

// ErrInvalidOptions is returned by Validate, joined with every problem found.
var ErrInvalidOptions = errors.New("invalid robocopy options")

var runTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):?[0-5]\d$`)

// Validate checks the options for problems that robocopy would reject or
// misread. All problems are reported together.
func (o *Options) Validate() error {
	if o == nil {
		return errors.Join(ErrInvalidOptions, ErrNilOptions)
	}

	var result *multierror.Error

	job := o.Job
	if job == nil {
		job = &JobOptions{}
	}

	if o.Source == "" && !job.NoSourceDir {
		result = multierror.Append(result, errors.New("source is required unless job.no_source_dir is set"))
	}

	if len(o.Destinations) == 0 && !job.NoDestinationDir {
		result = multierror.Append(result, errors.New("at least one destination is required unless job.no_destination_dir is set"))
	}

	for i, d := range o.Destinations {
		if d == "" {
			result = multierror.Append(result, fmt.Errorf("destination %d is empty", i))
		}
	}

	if c := o.Copy; c != nil {
		result = appendNegative(result, "copy.levels", int64(c.Levels))
		result = appendNegative(result, "copy.monitor_count_trigger", int64(c.MonitorCountTrigger))
		result = appendNegative(result, "copy.monitor_time_trigger", int64(c.MonitorTimeTrigger))
		result = appendNegative(result, "copy.inter_packet_gap", int64(c.InterPacketGap))

		if c.Threads < 0 || c.Threads > maxThreads {
			result = multierror.Append(result, fmt.Errorf("copy.threads must be between 0 and %d (0 = not set), got %d", maxThreads, c.Threads))
		}

		if rt := c.RunTimes; rt != nil {
			if !runTimePattern.MatchString(rt.Start) {
				result = multierror.Append(result, fmt.Errorf("copy.run_times.start must be HH:MM, got %q", rt.Start))
			}

			if !runTimePattern.MatchString(rt.End) {
				result = multierror.Append(result, fmt.Errorf("copy.run_times.end must be HH:MM, got %q", rt.End))
			}
		}
	}

	if f := o.File; f != nil {
		result = appendNegative(result, "file.maximum_size", f.MaximumSize)
		result = appendNegative(result, "file.minimum_size", f.MinimumSize)
	}

	if r := o.Retry; r != nil {
		result = appendNegative(result, "retry.count", int64(r.Count))
		result = appendNegative(result, "retry.wait", int64(r.Wait))
	}

	if l := o.Logging; l != nil && l.Output != nil && l.Output.File == "" {
		result = multierror.Append(result, errors.New("logging.output.file is required"))
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(ErrInvalidOptions, err)
	}

	return nil
}

func appendNegative(result *multierror.Error, name string, v int64) *multierror.Error {
	if v < 0 {
		return multierror.Append(result, fmt.Errorf("%s must not be negative, got %d", name, v))
	}

	return result
}
