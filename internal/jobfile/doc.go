// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package jobfile loads robocopy job options from YAML, HCL or JSON files.
//
// The format is chosen by file extension. HCL and JSON files may reference
// environment variables through the env object, e.g. "${env.USERPROFILE}\\Documents".
// Get fetches job files from any location go-getter understands before decoding them.
package jobfile
