package console

import (
	"fmt"
	"strconv"
	"strings"
)

// Command 菜单命令
type Command int

const (
	CommandShowParents Command = iota + 1
	CommandShowGrandchildren
	CommandShowImmediateFamily
	CommandShowExtendedFamily
	CommandShowSiblings
	CommandShowCousins
	CommandShowCalendar
	CommandAverageAgeAtDeath
	CommandAverageChildren
)

// Commands 按菜单顺序排列的所有命令
var Commands = []Command{
	CommandShowParents,
	CommandShowGrandchildren,
	CommandShowImmediateFamily,
	CommandShowExtendedFamily,
	CommandShowSiblings,
	CommandShowCousins,
	CommandShowCalendar,
	CommandAverageAgeAtDeath,
	CommandAverageChildren,
}

func (c Command) String() string {
	switch c {
	case CommandShowParents:
		return "Show parents"
	case CommandShowGrandchildren:
		return "Show grandchildren"
	case CommandShowImmediateFamily:
		return "Show immediate family"
	case CommandShowExtendedFamily:
		return "Show extended family"
	case CommandShowSiblings:
		return "Show siblings"
	case CommandShowCousins:
		return "Show cousins"
	case CommandShowCalendar:
		return "View calendar of everyone's birthday"
	case CommandAverageAgeAtDeath:
		return "Calculate the average age at which someone dies from deceased person"
	case CommandAverageChildren:
		return "Calculate the average number of children per person"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// ParseCommand 解析菜单编号
func ParseCommand(s string) (Command, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid input: %q", s)
	}
	if n < int(CommandShowParents) || n > int(CommandAverageChildren) {
		return 0, fmt.Errorf("out of range: %d", n)
	}
	return Command(n), nil
}
