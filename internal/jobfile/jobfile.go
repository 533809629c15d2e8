// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package jobfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/matt-FFFFFF/gorobocopy/internal/robocopy"
	"github.com/spf13/afero"
	"github.com/zclconf/go-cty/cty"
)

var (
	// ErrReadJobFile is returned when the job file cannot be read.
	ErrReadJobFile = errors.New("failed to read job file")
	// ErrParseJobFile is returned when the job file cannot be decoded.
	ErrParseJobFile = errors.New("failed to parse job file")
	// ErrUnsupportedJobFile is returned for an extension that is not .yaml, .yml, .hcl or .json.
	ErrUnsupportedJobFile = errors.New("unsupported job file, expected .yaml, .yml, .hcl or .json")
)

// Load reads and decodes the job file at path using the filesystem from FsFactory.
func Load(path string) (*robocopy.Options, error) {
	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadJobFile, err)
	}

	return Parse(path, data)
}

// Parse decodes data. The extension of name selects the format.
func Parse(name string, data []byte) (*robocopy.Options, error) {
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".yaml", ".yml":
		return parseYAML(data)
	case ".hcl", ".json":
		return parseHCL(name, data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedJobFile, name)
	}
}

func parseYAML(data []byte) (*robocopy.Options, error) {
	opts := &robocopy.Options{}
	if err := yaml.UnmarshalWithOptions(data, opts, yaml.DisallowUnknownField()); err != nil {
		return nil, errors.Join(ErrParseJobFile, err)
	}

	return opts, nil
}

func parseHCL(name string, data []byte) (*robocopy.Options, error) {
	opts := &robocopy.Options{}
	if err := hclsimple.Decode(name, data, evalContext(), opts); err != nil {
		return nil, errors.Join(ErrParseJobFile, diagnosticsError(err))
	}

	return opts, nil
}

// diagnosticsError lists each HCL diagnostic as a separate error.
func diagnosticsError(err error) error {
	var diags hcl.Diagnostics
	if !errors.As(err, &diags) {
		return err
	}

	var result *multierror.Error
	for _, d := range diags {
		result = multierror.Append(result, d)
	}

	return result.ErrorOrNil()
}

// evalContext exposes the process environment as the env object.
func evalContext() *hcl.EvalContext {
	env := make(map[string]cty.Value)

	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}

		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(env),
		},
	}
}
