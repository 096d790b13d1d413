package domain

import "time"

type EntryType string

const (
	EntryFile      EntryType = "file"
	EntryDirectory EntryType = "directory"
)

type DirEntry struct {
	Name string
	Type EntryType
	Size int64
}

type CommandResult struct {
	Command         string
	ExitCode        int
	Stdout          string
	Stderr          string
	StdoutTruncated bool
	StderrTruncated bool
	Duration        time.Duration
}

type DiffOp string

const (
	DiffContext DiffOp = " "
	DiffAdded   DiffOp = "+"
	DiffRemoved DiffOp = "-"
)

type DiffLine struct {
	Op   DiffOp
	Text string
}

// FileEdit describes a completed UpdateFile.
type FileEdit struct {
	Path    string
	Matches int
	Diff    []DiffLine
}

type ScaffoldResult struct {
	Template string
	Dir      string
	Folders  []string
	Files    []string
}

type Template struct {
	Type        string
	Description string
}
