// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package robocopy

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// ErrDestinationFormat is returned when a destination is neither a string nor a list of strings.
var ErrDestinationFormat = errors.New("destination must be a string or a list of strings")

// Options describes one robocopy job: a source, one or more destinations and the robocopy switches to use.
// Zero values mean "not set" and produce no switch.
type Options struct {
	Source       string          `yaml:"source" hcl:"source,optional" docdesc:"Path to the source directory"`
	Destinations Destinations    `yaml:"destination" hcl:"destination,optional" docdesc:"Destination directory, or a list of them. One robocopy process runs per destination"`
	Files        []string        `yaml:"files,omitempty" hcl:"files,optional" docdesc:"Files to copy, wildcards allowed. Defaults to *.*"`
	Serial       bool            `yaml:"serial,omitempty" hcl:"serial,optional" docdesc:"Copy to the destinations one at a time instead of in parallel"`
	Executable   string          `yaml:"executable,omitempty" hcl:"executable,optional" docdesc:"Path to the robocopy executable, defaults to robocopy"`
	Copy         *CopyOptions    `yaml:"copy,omitempty" hcl:"copy,block" docdesc:"Copy options"`
	File         *FileOptions    `yaml:"file,omitempty" hcl:"file,block" docdesc:"File selection options"`
	Retry        *RetryOptions   `yaml:"retry,omitempty" hcl:"retry,block" docdesc:"Retry options"`
	Logging      *LoggingOptions `yaml:"logging,omitempty" hcl:"logging,block" docdesc:"Logging options"`
	Job          *JobOptions     `yaml:"job,omitempty" hcl:"job,block" docdesc:"Job options"`
}

// Destinations is a list of destination paths.
// In YAML it may also be written as a single string.
type Destinations []string

// UnmarshalYAML accepts either a scalar or a sequence.
func (d *Destinations) UnmarshalYAML(b []byte) error {
	var list []string
	if err := yaml.Unmarshal(b, &list); err == nil {
		*d = list

		return nil
	}

	var single string
	if err := yaml.Unmarshal(b, &single); err != nil {
		return fmt.Errorf("%w: %w", ErrDestinationFormat, err)
	}

	*d = Destinations{single}

	return nil
}

// CopyOptions controls how files are copied.
type CopyOptions struct {
	Subdirs                 bool      `yaml:"subdirs,omitempty" hcl:"subdirs,optional" docdesc:"Copy subdirectories, excluding empty ones [/s]"`
	EmptySubdirs            bool      `yaml:"empty_subdirs,omitempty" hcl:"empty_subdirs,optional" docdesc:"Copy subdirectories, including empty ones [/e]"`
	Levels                  int       `yaml:"levels,omitempty" hcl:"levels,optional" docdesc:"Copy only the top N levels of the source tree [/lev:N]"`
	RestartMode             bool      `yaml:"restart_mode,omitempty" hcl:"restart_mode,optional" docdesc:"Copy files in restartable mode [/z]"`
	BackupMode              bool      `yaml:"backup_mode,omitempty" hcl:"backup_mode,optional" docdesc:"Copy files in backup mode [/b]"`
	RestartThenBackupMode   bool      `yaml:"restart_then_backup_mode,omitempty" hcl:"restart_then_backup_mode,optional" docdesc:"Use restartable mode, fall back to backup mode if access is denied [/zb]"`
	EFSRawMode              bool      `yaml:"efs_raw_mode,omitempty" hcl:"efs_raw_mode,optional" docdesc:"Copy encrypted files in EFS RAW mode [/efsraw]"`
	Info                    string    `yaml:"info,omitempty" hcl:"info,optional" docdesc:"File properties to copy, e.g. DAT [/copy:flags]"`
	DirTimestamps           bool      `yaml:"dir_timestamps,omitempty" hcl:"dir_timestamps,optional" docdesc:"Copy directory time stamps [/dcopy:T]"`
	SecurityInfo            bool      `yaml:"security_info,omitempty" hcl:"security_info,optional" docdesc:"Copy files with security, same as info DATS [/sec]"`
	AllInfo                 bool      `yaml:"all_info,omitempty" hcl:"all_info,optional" docdesc:"Copy all file information, same as info DATSOU [/copyall]"`
	NoInfo                  bool      `yaml:"no_info,omitempty" hcl:"no_info,optional" docdesc:"Copy no file information [/nocopy]"`
	FixSecurity             bool      `yaml:"fix_security,omitempty" hcl:"fix_security,optional" docdesc:"Fix file security on all files, even skipped ones [/secfix]"`
	FixTimes                bool      `yaml:"fix_times,omitempty" hcl:"fix_times,optional" docdesc:"Fix file times on all files, even skipped ones [/timfix]"`
	Purge                   bool      `yaml:"purge,omitempty" hcl:"purge,optional" docdesc:"Delete destination files that no longer exist in the source [/purge]"`
	Mirror                  bool      `yaml:"mirror,omitempty" hcl:"mirror,optional" docdesc:"Mirror a directory tree [/mir]"`
	MoveFiles               bool      `yaml:"move_files,omitempty" hcl:"move_files,optional" docdesc:"Move files, deleting them from the source [/mov]"`
	MoveFilesAndDirs        bool      `yaml:"move_files_and_dirs,omitempty" hcl:"move_files_and_dirs,optional" docdesc:"Move files and directories [/move]"`
	AddAttributes           string    `yaml:"add_attributes,omitempty" hcl:"add_attributes,optional" docdesc:"Add these attributes to copied files [/a+:RASHCNET]"`
	RemoveAttributes        string    `yaml:"remove_attributes,omitempty" hcl:"remove_attributes,optional" docdesc:"Remove these attributes from copied files [/a-:RASHCNET]"`
	CreateDirsAndEmptyFiles bool      `yaml:"create_dirs_and_empty_files,omitempty" hcl:"create_dirs_and_empty_files,optional" docdesc:"Create a directory tree and zero-length files only [/create]"`
	FATFilenames            bool      `yaml:"fat_filenames,omitempty" hcl:"fat_filenames,optional" docdesc:"Create destination files using 8.3 FAT names only [/fat]"`
	DisableLongPaths        bool      `yaml:"disable_long_paths,omitempty" hcl:"disable_long_paths,optional" docdesc:"Turn off support for paths longer than 256 characters [/256]"`
	MonitorCountTrigger     int       `yaml:"monitor_count_trigger,omitempty" hcl:"monitor_count_trigger,optional" docdesc:"Monitor the source and run again after N changes [/mon:N]"`
	MonitorTimeTrigger      int       `yaml:"monitor_time_trigger,omitempty" hcl:"monitor_time_trigger,optional" docdesc:"Monitor the source and run again in M minutes if changed [/mot:M]"`
	MultiThreaded           bool      `yaml:"multi_threaded,omitempty" hcl:"multi_threaded,optional" docdesc:"Copy with multiple threads using the robocopy default [/MT]"`
	Threads                 int       `yaml:"threads,omitempty" hcl:"threads,optional" docdesc:"Copy with N threads, 1 to 128 [/MT:N]"`
	RunTimes                *RunTimes `yaml:"run_times,omitempty" hcl:"run_times,block" docdesc:"Time window in which new copies may start [/rh:hhmm-hhmm]"`
	InterPacketGap          int       `yaml:"inter_packet_gap,omitempty" hcl:"inter_packet_gap,optional" docdesc:"Inter-packet gap in milliseconds, frees bandwidth on slow lines [/ipg:N]"`
	SymbolicLink            bool      `yaml:"symbolic_link,omitempty" hcl:"symbolic_link,optional" docdesc:"Copy symbolic links instead of their targets [/sl]"`
}

// RunTimes is the window in which robocopy may start new copies.
type RunTimes struct {
	Start        string `yaml:"start" hcl:"start" docdesc:"Window start, HH:MM"`
	End          string `yaml:"end" hcl:"end" docdesc:"Window end, HH:MM"`
	CheckPerFile bool   `yaml:"check_per_file,omitempty" hcl:"check_per_file,optional" docdesc:"Check the window per file instead of per pass [/pf]"`
}

// FileOptions selects which files are copied.
type FileOptions struct {
	CopyArchived              bool     `yaml:"copy_archived,omitempty" hcl:"copy_archived,optional" docdesc:"Copy only files with the Archive attribute [/a]"`
	CopyArchivedAndReset      bool     `yaml:"copy_archived_and_reset,omitempty" hcl:"copy_archived_and_reset,optional" docdesc:"Copy only files with the Archive attribute and reset it [/m]"`
	IncludeAttributes         string   `yaml:"include_attributes,omitempty" hcl:"include_attributes,optional" docdesc:"Include only files with any of these attributes [/ia:RASHCNETO]"`
	ExcludeAttributes         string   `yaml:"exclude_attributes,omitempty" hcl:"exclude_attributes,optional" docdesc:"Exclude files with any of these attributes [/xa:RASHCNETO]"`
	ExcludeFiles              []string `yaml:"exclude_files,omitempty" hcl:"exclude_files,optional" docdesc:"Exclude files matching these names or paths [/xf]"`
	ExcludeDirs               []string `yaml:"exclude_dirs,omitempty" hcl:"exclude_dirs,optional" docdesc:"Exclude directories matching these names or paths [/xd]"`
	ExcludeDirsRelative       bool     `yaml:"exclude_dirs_relative,omitempty" hcl:"exclude_dirs_relative,optional" docdesc:"Pass excluded directories as given instead of resolving them against source and destination"`
	ExcludeChangedFiles       bool     `yaml:"exclude_changed_files,omitempty" hcl:"exclude_changed_files,optional" docdesc:"Exclude changed files [/xct]"`
	ExcludeNewerFiles         bool     `yaml:"exclude_newer_files,omitempty" hcl:"exclude_newer_files,optional" docdesc:"Exclude newer files [/xn]"`
	ExcludeOlderFiles         bool     `yaml:"exclude_older_files,omitempty" hcl:"exclude_older_files,optional" docdesc:"Exclude older files [/xo]"`
	ExcludeExtraFilesAndDirs  bool     `yaml:"exclude_extra_files_and_dirs,omitempty" hcl:"exclude_extra_files_and_dirs,optional" docdesc:"Exclude extra files and directories [/xx]"`
	ExcludeLonelyFilesAndDirs bool     `yaml:"exclude_lonely_files_and_dirs,omitempty" hcl:"exclude_lonely_files_and_dirs,optional" docdesc:"Exclude lonely files and directories [/xl]"`
	IncludeSameFiles          bool     `yaml:"include_same_files,omitempty" hcl:"include_same_files,optional" docdesc:"Include the same files [/is]"`
	IncludeTweakedFiles       bool     `yaml:"include_tweaked_files,omitempty" hcl:"include_tweaked_files,optional" docdesc:"Include tweaked files [/it]"`
	MaximumSize               int64    `yaml:"maximum_size,omitempty" hcl:"maximum_size,optional" docdesc:"Exclude files bigger than N bytes [/max:N]"`
	MinimumSize               int64    `yaml:"minimum_size,omitempty" hcl:"minimum_size,optional" docdesc:"Exclude files smaller than N bytes [/min:N]"`
	MaximumAge                string   `yaml:"maximum_age,omitempty" hcl:"maximum_age,optional" docdesc:"Exclude files older than N days or YYYYMMDD [/maxage:N]"`
	MinimumAge                string   `yaml:"minimum_age,omitempty" hcl:"minimum_age,optional" docdesc:"Exclude files newer than N days or YYYYMMDD [/minage:N]"`
	MaximumLastAccess         string   `yaml:"maximum_last_access,omitempty" hcl:"maximum_last_access,optional" docdesc:"Exclude files unused since N days or YYYYMMDD [/maxlad:N]"`
	MinimumLastAccess         string   `yaml:"minimum_last_access,omitempty" hcl:"minimum_last_access,optional" docdesc:"Exclude files used since N days or YYYYMMDD [/minlad:N]"`
	FATFileTimes              bool     `yaml:"fat_file_times,omitempty" hcl:"fat_file_times,optional" docdesc:"Assume FAT file times with two-second precision [/fft]"`
	CompensateForDST          bool     `yaml:"compensate_for_dst,omitempty" hcl:"compensate_for_dst,optional" docdesc:"Compensate for one-hour DST differences [/dst]"`
	ExcludeJunctions          bool     `yaml:"exclude_junctions,omitempty" hcl:"exclude_junctions,optional" docdesc:"Exclude junction points [/xj]"`
	ExcludeDirectoryJunctions bool     `yaml:"exclude_directory_junctions,omitempty" hcl:"exclude_directory_junctions,optional" docdesc:"Exclude directory junction points [/xjd]"`
	ExcludeFileJunctions      bool     `yaml:"exclude_file_junctions,omitempty" hcl:"exclude_file_junctions,optional" docdesc:"Exclude file junction points [/xjf]"`
}

// RetryOptions controls how failed copies are retried by robocopy itself.
type RetryOptions struct {
	Count             int  `yaml:"count,omitempty" hcl:"count,optional" docdesc:"Number of retries on failed copies [/r:N]"`
	Wait              int  `yaml:"wait,omitempty" hcl:"wait,optional" docdesc:"Seconds to wait between retries [/w:N]"`
	SaveAsDefault     bool `yaml:"save_as_default,omitempty" hcl:"save_as_default,optional" docdesc:"Save count and wait as registry defaults [/reg]"`
	WaitForShareNames bool `yaml:"wait_for_share_names,omitempty" hcl:"wait_for_share_names,optional" docdesc:"Wait for share names to be defined [/tbd]"`
}

// LoggingOptions controls what robocopy prints and where.
type LoggingOptions struct {
	ListOnly                bool       `yaml:"list_only,omitempty" hcl:"list_only,optional" docdesc:"List files only, do not copy [/l]"`
	IncludeExtraFiles       bool       `yaml:"include_extra_files,omitempty" hcl:"include_extra_files,optional" docdesc:"Report all extra files [/x]"`
	Verbose                 bool       `yaml:"verbose,omitempty" hcl:"verbose,optional" docdesc:"Verbose output, show skipped files [/v]"`
	IncludeSourceTimestamps bool       `yaml:"include_source_timestamps,omitempty" hcl:"include_source_timestamps,optional" docdesc:"Include source time stamps [/ts]"`
	IncludeFullPaths        bool       `yaml:"include_full_paths,omitempty" hcl:"include_full_paths,optional" docdesc:"Include full path names [/fp]"`
	SizesAsBytes            bool       `yaml:"sizes_as_bytes,omitempty" hcl:"sizes_as_bytes,optional" docdesc:"Print sizes as bytes [/bytes]"`
	ExcludeFileSizes        bool       `yaml:"exclude_file_sizes,omitempty" hcl:"exclude_file_sizes,optional" docdesc:"Do not log file sizes [/ns]"`
	ExcludeFileClasses      bool       `yaml:"exclude_file_classes,omitempty" hcl:"exclude_file_classes,optional" docdesc:"Do not log file classes [/nc]"`
	ExcludeFilenames        bool       `yaml:"exclude_filenames,omitempty" hcl:"exclude_filenames,optional" docdesc:"Do not log file names [/nfl]"`
	ExcludeDirectoryNames   bool       `yaml:"exclude_directory_names,omitempty" hcl:"exclude_directory_names,optional" docdesc:"Do not log directory names [/ndl]"`
	HideProgress            bool       `yaml:"hide_progress,omitempty" hcl:"hide_progress,optional" docdesc:"Do not display percentage copied [/np]"`
	ShowETA                 bool       `yaml:"show_eta,omitempty" hcl:"show_eta,optional" docdesc:"Show estimated time of arrival of copied files [/eta]"`
	Output                  *LogOutput `yaml:"output,omitempty" hcl:"output,block" docdesc:"Write status output to a log file [/log:file]"`
	ShowUnicode             bool       `yaml:"show_unicode,omitempty" hcl:"show_unicode,optional" docdesc:"Display status output as Unicode [/unicode]"`
	ShowAndLog              bool       `yaml:"show_and_log,omitempty" hcl:"show_and_log,optional" docdesc:"Write to the console as well as the log file [/tee]"`
	NoJobHeader             bool       `yaml:"no_job_header,omitempty" hcl:"no_job_header,optional" docdesc:"No job header [/njh]"`
	NoJobSummary            bool       `yaml:"no_job_summary,omitempty" hcl:"no_job_summary,optional" docdesc:"No job summary [/njs]"`
}

// LogOutput names the robocopy log file.
type LogOutput struct {
	File      string `yaml:"file" hcl:"file" docdesc:"Log file path"`
	Overwrite bool   `yaml:"overwrite,omitempty" hcl:"overwrite,optional" docdesc:"Overwrite the log file instead of appending"`
	Unicode   bool   `yaml:"unicode,omitempty" hcl:"unicode,optional" docdesc:"Write the log as Unicode"`
}

// JobOptions reads or writes robocopy job files.
type JobOptions struct {
	DeriveParameters    string `yaml:"derive_parameters,omitempty" hcl:"derive_parameters,optional" docdesc:"Take parameters from the named job file [/job:name]"`
	SaveParameters      string `yaml:"save_parameters,omitempty" hcl:"save_parameters,optional" docdesc:"Save parameters to the named job file [/save:name]"`
	QuitAfterProcessing bool   `yaml:"quit_after_processing,omitempty" hcl:"quit_after_processing,optional" docdesc:"Quit after processing the command line [/quit]"`
	NoSourceDir         bool   `yaml:"no_source_dir,omitempty" hcl:"no_source_dir,optional" docdesc:"No source directory is specified [/nosd]"`
	NoDestinationDir    bool   `yaml:"no_destination_dir,omitempty" hcl:"no_destination_dir,optional" docdesc:"No destination directory is specified [/nodd]"`
	IncludesFiles       bool   `yaml:"includes_files,omitempty" hcl:"includes_files,optional" docdesc:"Include the given files [/if]"`
}
