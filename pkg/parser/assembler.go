package parser

import (
	"strings"
	"time"
)

// Unit is one logical transcript unit: a timestamp plus everything that
// followed it, with continuation lines joined by "\n".
type Unit struct {
	Timestamp time.Time
	Rest      string
}

// lineClass tags the outcome of matching one physical line.
type lineClass int

const (
	lineNewUnit lineClass = iota
	lineContinuation
)

// AssembleStats describes what the assembler saw.
type AssembleStats struct {
	// Lines is the number of physical lines examined (trailing empty
	// lines excluded).
	Lines int

	// Continuations is the number of lines merged into a preceding unit.
	Continuations int

	// DroppedLeading counts lines appearing before the first timestamped
	// line. They have no unit to attach to and are dropped.
	DroppedLeading int
}

// Assembler groups physical lines into logical units using the supported
// line formats. It runs a two-state machine: "no unit open" until the first
// timestamped line, "unit open" afterward.
type Assembler struct {
	formats []*LineFormat
}

// NewAssembler creates an assembler over the given formats. A nil or empty
// formats slice means DefaultFormats.
func NewAssembler(formats []*LineFormat) *Assembler {
	if len(formats) == 0 {
		formats = DefaultFormats()
	}
	return &Assembler{formats: formats}
}

// Assemble splits text into physical lines and groups them into units.
func (a *Assembler) Assemble(text string) ([]Unit, AssembleStats) {
	lines := splitLines(text)

	var (
		units []Unit
		stats AssembleStats
		open  bool // state: is a unit open
	)

	stats.Lines = len(lines)

	for _, line := range lines {
		ts, rest, class := a.classify(line)

		switch class {
		case lineNewUnit:
			units = append(units, Unit{Timestamp: ts, Rest: rest})
			open = true

		case lineContinuation:
			if !open {
				stats.DroppedLeading++
				continue
			}
			stats.Continuations++
			units[len(units)-1].Rest += "\n" + line
		}
	}

	return units, stats
}

func (a *Assembler) classify(line string) (time.Time, string, lineClass) {
	for _, f := range a.formats {
		if ts, rest, ok := f.Match(line); ok {
			return ts, rest, lineNewUnit
		}
	}
	return time.Time{}, "", lineContinuation
}

// splitLines splits on newlines, tolerating CRLF, and discards trailing
// empty lines. Interior empty lines are kept: they are continuations of the
// open unit's body.
func splitLines(text string) []string {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
