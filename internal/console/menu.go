package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"familytree/internal/model"
	"familytree/internal/service"
)

const dividerWidth = 60

// Menu 交互式控制台菜单
type Menu struct {
	tree  *service.FamilyTree
	in    *bufio.Scanner
	out   io.Writer
	title lipgloss.Style
}

// NewMenu 创建控制台菜单
func NewMenu(tree *service.FamilyTree, in io.Reader, out io.Writer) *Menu {
	renderer := lipgloss.NewRenderer(out)
	return &Menu{
		tree:  tree,
		in:    bufio.NewScanner(in),
		out:   out,
		title: renderer.NewStyle().Bold(true),
	}
}

// Run 进入菜单循环，用户选择退出或输入结束时返回 nil
func (m *Menu) Run(ctx context.Context) error {
	m.println(m.title.Render("Family Tree Console Menu"))
	m.println("To start, select the number corresponding to the family member you wish to view")
	m.divider()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		p, err := m.selectPerson()
		if err != nil {
			return endOfInput(err)
		}

		cmd, err := m.selectCommand(p)
		if err != nil {
			return endOfInput(err)
		}
		m.Execute(cmd, p)

		quit, err := m.promptContinuation()
		if err != nil {
			return endOfInput(err)
		}
		if quit {
			m.println("Exited program.")
			return nil
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (m *Menu) readLine(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(m.in.Text()), nil
}

// selectPerson 按1开始的编号选择成员，输入无效时重新提示
func (m *Menu) selectPerson() (*model.Person, error) {
	for {
		m.println("Please select a family member to view:")
		m.divider()
		for i, p := range m.tree.People() {
			m.printf("%d: %s\n", i+1, p)
		}
		m.divider()

		line, err := m.readLine("Person: ")
		if err != nil {
			return nil, err
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			m.printf("Invalid input: %q\n", line)
			continue
		}

		p, err := m.tree.PersonAt(n - 1)
		if err != nil {
			m.println("Out of range!")
			continue
		}
		return p, nil
	}
}

func (m *Menu) selectCommand(p *model.Person) (Command, error) {
	m.printf("%s has been selected.\n", p)
	m.divider()
	m.println("Please select an option:")
	for _, cmd := range Commands {
		m.printf("%d: %s\n", int(cmd), cmd)
	}

	for {
		line, err := m.readLine("Option: ")
		if err != nil {
			return 0, err
		}
		cmd, err := ParseCommand(line)
		if err != nil {
			m.println(capitalize(err.Error()))
			continue
		}
		return cmd, nil
	}
}

func (m *Menu) promptContinuation() (bool, error) {
	m.println("Do you wish to continue or quit?")
	m.println("Please type Y to quit or N to continue.")
	line, err := m.readLine("Quit: ")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// Execute 执行命令并输出结果
func (m *Menu) Execute(cmd Command, p *model.Person) {
	m.divider()
	defer m.divider()

	switch cmd {
	case CommandShowParents:
		m.showParents(p)
	case CommandShowGrandchildren:
		m.showList(m.tree.Grandchildren(p), "They have the following grandchildren: ", "No grandchildren found.")
	case CommandShowImmediateFamily:
		m.showFamily(m.tree.ImmediateFamily(p))
	case CommandShowExtendedFamily:
		m.showFamily(m.tree.ExtendedFamily(p))
	case CommandShowSiblings:
		m.showList(m.tree.Siblings(p, false).Full, fmt.Sprintf("%s has the following siblings: ", p), "No siblings found.")
	case CommandShowCousins:
		m.showList(m.tree.Cousins(p), fmt.Sprintf("%s has the following cousins: ", p), "No cousins found.")
	case CommandShowCalendar:
		m.showCalendar()
	case CommandAverageAgeAtDeath:
		m.showAverageAgeAtDeath()
	case CommandAverageChildren:
		m.showAverageChildren()
	default:
		m.println("Invalid option.")
	}
}

func (m *Menu) showParents(p *model.Person) {
	parents := m.tree.Parents(p)
	m.printf("Their mother is %s and their father is %s.\n", orUnknown(parents.Mother), orUnknown(parents.Father))
}

func (m *Menu) showList(people []*model.Person, prefix, empty string) {
	if len(people) == 0 {
		m.println(empty)
		return
	}
	m.println(prefix + joinNames(people) + ".")
}

func (m *Menu) showFamily(family service.Family) {
	m.println(m.title.Render(fmt.Sprintf("%s immediate family:", family.Person)))
	m.printf("Their spouse is %s.\n", orUnknown(family.Spouse))
	m.printf("Mother is %s and father is %s.\n", orUnknown(family.Parents.Mother), orUnknown(family.Parents.Father))
	m.printf("Children are %s.\n", listOrUnknown(family.Children))
	m.printf("Full siblings are %s.\n", listOrUnknown(family.Siblings.Full))
	m.printf("Half siblings are %s.\n", listOrUnknown(family.Siblings.Half))

	if !family.Extended {
		return
	}
	m.println(m.title.Render("Extended family:"))
	m.printf("Aunts and uncles are %s.\n", listOrUnknown(family.AuntsAndUncles))
	m.printf("Cousins are %s.\n", listOrUnknown(family.Cousins))
}

func (m *Menu) showCalendar() {
	m.println(m.title.Render("Calendar of birthdays:"))
	for _, day := range service.BirthdayCalendar(m.tree.Birthdays()) {
		m.printf("%d/%d: %s.\n", day.Month, day.Day, joinNames(day.People))
	}
}

func (m *Menu) showAverageAgeAtDeath() {
	avg, count := m.tree.AverageAgeAtDeath()
	if count == 0 {
		m.println("No deceased people found.")
		return
	}
	m.printf("Of all %d deceased people, the average age at which someone dies is %.0f years.\n", count, avg)
}

func (m *Menu) showAverageChildren() {
	m.println("Number of children:")
	for _, c := range m.tree.ChildCounts() {
		noun := "children"
		if c.Children == 1 {
			noun = "child"
		}
		m.printf("%s has %d %s.\n", c.Person, c.Children, noun)
	}
	m.divider()
	m.printf("The average number of children is %.4f.\n", m.tree.AverageChildren())
}

func (m *Menu) divider() {
	m.println(strings.Repeat("-", dividerWidth))
}

func (m *Menu) println(s string) {
	fmt.Fprintln(m.out, s)
}

func (m *Menu) printf(format string, args ...interface{}) {
	fmt.Fprintf(m.out, format, args...)
}

func orUnknown(p *model.Person) string {
	if p == nil {
		return "unknown"
	}
	return p.FullName()
}

func listOrUnknown(people []*model.Person) string {
	if len(people) == 0 {
		return "unknown"
	}
	return joinNames(people)
}

func joinNames(people []*model.Person) string {
	names := make([]string, 0, len(people))
	for _, p := range people {
		names = append(names, p.FullName())
	}
	return strings.Join(names, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
