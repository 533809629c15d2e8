// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package robocopy

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultExecutable is run when Options.Executable is empty.
const DefaultExecutable = "robocopy"

var (
	// ErrNilOptions is returned when no options are given.
	ErrNilOptions = errors.New("options must not be nil")
	// ErrResolvePath is returned when a relative path cannot be made absolute.
	ErrResolvePath = errors.New("could not resolve path")
)

// Command is one robocopy invocation.
type Command struct {
	Path        string   // Executable to run
	Args        []string // Arguments, already quoted where robocopy needs it
	Destination string   // Destination this command copies to, in Windows form without quotes
}

// String renders the command line as it is passed to the operating system.
func (c Command) String() string {
	return strings.Join(append([]string{c.Path}, c.Args...), " ")
}

// BuildCommands returns one Command per destination, in destination order.
// With no destinations a single command without a destination is returned.
func BuildCommands(opts *Options) ([]Command, error) {
	if opts == nil {
		return nil, ErrNilOptions
	}

	destinations := opts.Destinations
	if len(destinations) == 0 {
		destinations = Destinations{""}
	}

	commands := make([]Command, 0, len(destinations))

	for _, dest := range destinations {
		cmd, err := buildCommand(opts, dest)
		if err != nil {
			return nil, err
		}

		commands = append(commands, cmd)
	}

	return commands, nil
}

func buildCommand(opts *Options, destination string) (Command, error) {
	var (
		source, dest string
		err          error
	)

	if opts.Source != "" {
		if source, err = toAbsolutePath(opts.Source); err != nil {
			return Command{}, err
		}
	}

	if destination != "" {
		if dest, err = toAbsolutePath(destination); err != nil {
			return Command{}, err
		}
	}

	b := &argBuilder{}

	if source != "" {
		b.add(qualify(toWindowsPath(source)))
	}

	if dest != "" {
		b.add(qualify(toWindowsPath(dest)))
	}

	for _, f := range opts.Files {
		b.add(qualify(toWindowsPath(f)))
	}

	b.copyArgs(opts.Copy)
	b.fileArgs(opts.File, source, dest)
	b.retryArgs(opts.Retry)
	b.loggingArgs(opts.Logging)
	b.jobArgs(opts.Job)

	path := opts.Executable
	if path == "" {
		path = DefaultExecutable
	}

	return Command{
		Path:        path,
		Args:        b.args,
		Destination: toWindowsPath(dest),
	}, nil
}

type argBuilder struct {
	args []string
}

func (b *argBuilder) add(args ...string) {
	b.args = append(b.args, args...)
}

func (b *argBuilder) flag(set bool, arg string) {
	if set {
		b.args = append(b.args, arg)
	}
}

func (b *argBuilder) number(n int64, prefix string) {
	if n != 0 {
		b.args = append(b.args, prefix+strconv.FormatInt(n, 10))
	}
}

func (b *argBuilder) value(v, prefix string) {
	if v != "" {
		b.args = append(b.args, prefix+v)
	}
}

func (b *argBuilder) copyArgs(c *CopyOptions) {
	if c == nil {
		return
	}

	b.flag(c.Subdirs, "/s")
	b.flag(c.EmptySubdirs, "/e")
	b.number(int64(c.Levels), "/lev:")
	b.flag(c.RestartMode, "/z")
	b.flag(c.BackupMode, "/b")
	b.flag(c.RestartThenBackupMode, "/zb")
	b.flag(c.EFSRawMode, "/efsraw")
	b.value(c.Info, "/copy:")
	b.flag(c.DirTimestamps, "/dcopy:T")
	b.flag(c.SecurityInfo, "/sec")
	b.flag(c.AllInfo, "/copyall")
	b.flag(c.NoInfo, "/nocopy")
	b.flag(c.FixSecurity, "/secfix")
	b.flag(c.FixTimes, "/timfix")
	b.flag(c.Purge, "/purge")
	b.flag(c.Mirror, "/mir")
	b.flag(c.MoveFiles, "/mov")
	b.flag(c.MoveFilesAndDirs, "/move")
	b.value(c.AddAttributes, "/a+:")
	b.value(c.RemoveAttributes, "/a-:")
	b.flag(c.CreateDirsAndEmptyFiles, "/create")
	b.flag(c.FATFilenames, "/fat")
	b.flag(c.DisableLongPaths, "/256")
	b.number(int64(c.MonitorCountTrigger), "/mon:")
	b.number(int64(c.MonitorTimeTrigger), "/mot:")

	switch {
	case c.Threads > 0:
		b.add("/MT:" + strconv.Itoa(c.Threads))
	case c.MultiThreaded:
		b.add("/MT")
	}

	if rt := c.RunTimes; rt != nil {
		b.add("/rh:" + strings.ReplaceAll(rt.Start, ":", "") + "-" + strings.ReplaceAll(rt.End, ":", ""))
		b.flag(rt.CheckPerFile, "/pf")
	}

	b.number(int64(c.InterPacketGap), "/ipg:")
	b.flag(c.SymbolicLink, "/sl")
}

func (b *argBuilder) fileArgs(f *FileOptions, source, destination string) {
	if f == nil {
		return
	}

	b.flag(f.CopyArchived, "/a")
	b.flag(f.CopyArchivedAndReset, "/m")
	b.value(f.IncludeAttributes, "/ia:")
	b.value(f.ExcludeAttributes, "/xa:")

	if len(f.ExcludeFiles) > 0 {
		b.add("/xf")

		for _, x := range f.ExcludeFiles {
			b.add(qualify(toWindowsPath(x)))
		}
	}

	if len(f.ExcludeDirs) > 0 {
		b.add("/xd")
		b.add(excludeDirArgs(f.ExcludeDirs, source, destination, f.ExcludeDirsRelative)...)
	}

	b.flag(f.ExcludeChangedFiles, "/xct")
	b.flag(f.ExcludeNewerFiles, "/xn")
	b.flag(f.ExcludeOlderFiles, "/xo")
	b.flag(f.ExcludeExtraFilesAndDirs, "/xx")
	b.flag(f.ExcludeLonelyFilesAndDirs, "/xl")
	b.flag(f.IncludeSameFiles, "/is")
	b.flag(f.IncludeTweakedFiles, "/it")
	b.number(f.MaximumSize, "/max:")
	b.number(f.MinimumSize, "/min:")
	b.value(f.MaximumAge, "/maxage:")
	b.value(f.MinimumAge, "/minage:")
	b.value(f.MaximumLastAccess, "/maxlad:")
	b.value(f.MinimumLastAccess, "/minlad:")
	b.flag(f.FATFileTimes, "/fft")
	b.flag(f.CompensateForDST, "/dst")
	b.flag(f.ExcludeJunctions, "/xj")
	b.flag(f.ExcludeDirectoryJunctions, "/xjd")
	b.flag(f.ExcludeFileJunctions, "/xjf")
}

func (b *argBuilder) retryArgs(r *RetryOptions) {
	if r == nil {
		return
	}

	b.number(int64(r.Count), "/r:")
	b.number(int64(r.Wait), "/w:")
	b.flag(r.SaveAsDefault, "/reg")
	b.flag(r.WaitForShareNames, "/tbd")
}

func (b *argBuilder) loggingArgs(l *LoggingOptions) {
	if l == nil {
		return
	}

	b.flag(l.ListOnly, "/l")
	b.flag(l.IncludeExtraFiles, "/x")
	b.flag(l.Verbose, "/v")
	b.flag(l.IncludeSourceTimestamps, "/ts")
	b.flag(l.IncludeFullPaths, "/fp")
	b.flag(l.SizesAsBytes, "/bytes")
	b.flag(l.ExcludeFileSizes, "/ns")
	b.flag(l.ExcludeFileClasses, "/nc")
	b.flag(l.ExcludeFilenames, "/nfl")
	b.flag(l.ExcludeDirectoryNames, "/ndl")
	b.flag(l.HideProgress, "/np")
	b.flag(l.ShowETA, "/eta")

	if o := l.Output; o != nil {
		arg := "/"
		if o.Unicode {
			arg += "uni"
		}

		arg += "log"
		if !o.Overwrite {
			arg += "+"
		}

		b.add(arg + ":" + qualify(toWindowsPath(o.File)))
	}

	b.flag(l.ShowUnicode, "/unicode")
	b.flag(l.ShowAndLog, "/tee")
	b.flag(l.NoJobHeader, "/njh")
	b.flag(l.NoJobSummary, "/njs")
}

func (b *argBuilder) jobArgs(j *JobOptions) {
	if j == nil {
		return
	}

	if j.DeriveParameters != "" {
		b.add("/job:" + qualify(j.DeriveParameters))
	}

	if j.SaveParameters != "" {
		b.add("/save:" + qualify(j.SaveParameters))
	}

	b.flag(j.QuitAfterProcessing, "/quit")
	b.flag(j.NoSourceDir, "/nosd")
	b.flag(j.NoDestinationDir, "/nodd")
	b.flag(j.IncludesFiles, "/if")
}
