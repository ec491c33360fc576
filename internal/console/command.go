package console

import (
	"image"
	"strconv"
	"strings"

	"github.com/park285/Cheese-MiniChess/internal/minichess"
	"github.com/park285/Cheese-MiniChess/pkg/minidto"
)

type commandKind int

const (
	cmdNone commandKind = iota
	cmdClick
	cmdTap
	cmdCancel
	cmdRoll
	cmdBoard
	cmdState
	cmdNew
	cmdHelp
	cmdQuit
)

type command struct {
	kind  commandKind
	cell  minichess.Cell
	point image.Point
}

const (
	codeUsageClick = "usage_click"
	codeUsageTap   = "usage_tap"
	codeUnknown    = "unknown"
)

// parseCommand reads one input line. The prefix, when set, is optional on the first word.
func parseCommand(line, prefix string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{kind: cmdNone}, nil
	}
	name := strings.ToLower(fields[0])
	if prefix != "" {
		name = strings.TrimPrefix(name, strings.ToLower(prefix))
	}
	args := fields[1:]

	switch name {
	case "click", "c":
		r, c, ok := parsePair(args)
		if !ok {
			return command{}, minidto.CommandError{Code: codeUsageClick}
		}
		return command{kind: cmdClick, cell: minichess.Cell{Row: r, Col: c}}, nil
	case "tap", "t":
		x, y, ok := parsePair(args)
		if !ok {
			return command{}, minidto.CommandError{Code: codeUsageTap}
		}
		return command{kind: cmdTap, point: image.Pt(x, y)}, nil
	case "cancel", "x":
		return command{kind: cmdCancel}, nil
	case "roll", "dice":
		return command{kind: cmdRoll}, nil
	case "board", "b":
		return command{kind: cmdBoard}, nil
	case "state":
		return command{kind: cmdState}, nil
	case "new", "reset":
		return command{kind: cmdNew}, nil
	case "help", "h", "?":
		return command{kind: cmdHelp}, nil
	case "quit", "exit", "q":
		return command{kind: cmdQuit}, nil
	}

	// bare "<row> <col>"
	if r, c, ok := parsePair(append([]string{name}, args...)); ok {
		return command{kind: cmdClick, cell: minichess.Cell{Row: r, Col: c}}, nil
	}
	return command{}, minidto.CommandError{Code: codeUnknown, Message: fields[0]}
}

func parsePair(args []string) (int, int, bool) {
	if len(args) != 2 {
		return 0, 0, false
	}
	a, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, false
	}
	b, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, false
	}
	return a, b, true
}
