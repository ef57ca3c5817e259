package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"familytree/internal/loader"
	"familytree/internal/model"
	"familytree/internal/service"
)

func sampleTree(t *testing.T) *service.FamilyTree {
	t.Helper()
	tree := service.NewFamilyTree(nil, nil)
	loader.PopulateSample(tree)
	return tree
}

func personAt(t *testing.T, tree *service.FamilyTree, i int) *model.Person {
	t.Helper()
	p, err := tree.PersonAt(i)
	require.NoError(t, err)
	return p
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in      string
		want    Command
		wantErr string
	}{
		{"1", CommandShowParents, ""},
		{" 9 ", CommandAverageChildren, ""},
		{"0", 0, "out of range"},
		{"10", 0, "out of range"},
		{"two", 0, "invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseCommand(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCommand_String(t *testing.T) {
	for _, cmd := range Commands {
		assert.NotContains(t, cmd.String(), "Command(")
	}
	assert.Equal(t, "Command(42)", Command(42).String())
}

func TestMenu_Run(t *testing.T) {
	tree := sampleTree(t)
	var out bytes.Buffer

	menu := NewMenu(tree, strings.NewReader("10\n1\ny\n"), &out)
	require.NoError(t, menu.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, "Family Tree Console Menu")
	assert.Contains(t, s, "10: Bexton Elderson-Copper")
	assert.Contains(t, s, "Bexton Elderson-Copper has been selected.")
	assert.Contains(t, s, "Their mother is Amber Copper and their father is Lester Elderson-Copper.")
	assert.Contains(t, s, "Exited program.")
}

func TestMenu_RunRepromptsAndStopsAtEOF(t *testing.T) {
	tree := sampleTree(t)
	var out bytes.Buffer

	input := "abc\n0\n26\n21\nten\n10\n5\nn\n"
	menu := NewMenu(tree, strings.NewReader(input), &out)
	require.NoError(t, menu.Run(context.Background()))

	s := out.String()
	assert.Contains(t, s, `Invalid input: "abc"`)
	assert.Equal(t, 2, strings.Count(s, "Out of range!"))
	assert.Contains(t, s, `Invalid input: "ten"`)
	assert.Contains(t, s, "Out of range: 10")
	assert.Contains(t, s, "Dylan Boulder has the following siblings: Angie Eyre.")
	assert.NotContains(t, s, "Exited program.")
}

func TestMenu_RunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	menu := NewMenu(sampleTree(t), strings.NewReader("1\n"), &bytes.Buffer{})
	assert.ErrorIs(t, menu.Run(ctx), context.Canceled)
}

func TestMenu_Execute(t *testing.T) {
	tree := sampleTree(t)

	tests := []struct {
		name   string
		cmd    Command
		person int
		want   []string
	}{
		{
			name: "parents unknown", cmd: CommandShowParents, person: 0,
			want: []string{"Their mother is unknown and their father is unknown."},
		},
		{
			name: "grandchildren", cmd: CommandShowGrandchildren, person: 8,
			want: []string{"They have the following grandchildren: Cornelia Emmersohn, Ethan Eyre."},
		},
		{
			name: "no grandchildren", cmd: CommandShowGrandchildren, person: 0,
			want: []string{"No grandchildren found."},
		},
		{
			name: "immediate family", cmd: CommandShowImmediateFamily, person: 19,
			want: []string{
				"Angie Eyre immediate family:",
				"Their spouse is James Eyre.",
				"Mother is Carol Boulder and father is Greg Boulder.",
				"Children are Cornelia Emmersohn.",
				"Full siblings are Dylan Boulder.",
				"Half siblings are Lee Elderson-Copper.",
			},
		},
		{
			name: "extended family", cmd: CommandShowExtendedFamily, person: 24,
			want: []string{
				"Their spouse is unknown.",
				"Extended family:",
				"Aunts and uncles are Angie Eyre, Lee Elderson-Copper.",
				"Cousins are Cornelia Emmersohn.",
			},
		},
		{
			name: "no cousins", cmd: CommandShowCousins, person: 20,
			want: []string{"No cousins found."},
		},
		{
			name: "calendar", cmd: CommandShowCalendar, person: 0,
			want: []string{"Calendar of birthdays:", "3/23: Adam Elderson-Copper, Amber Copper", "11/12: Angie Eyre."},
		},
		{
			name: "average age at death", cmd: CommandAverageAgeAtDeath, person: 0,
			want: []string{"Of all 3 deceased people, the average age at which someone dies is 52 years."},
		},
		{
			name: "average children", cmd: CommandAverageChildren, person: 0,
			want: []string{
				"Carol Boulder has 3 children.",
				"Bexton Elderson-Copper has 1 child.",
				"The average number of children is 0.9200.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			menu := NewMenu(tree, strings.NewReader(""), &out)
			menu.Execute(tt.cmd, personAt(t, tree, tt.person))

			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}

func TestMenu_ExecuteNoDeceased(t *testing.T) {
	tree := service.NewFamilyTree(nil, nil)
	p := tree.AddPerson(model.NewPerson("Solo", "Person", model.SexMale, model.Date(2000, 1, 1), nil, nil))

	var out bytes.Buffer
	NewMenu(tree, strings.NewReader(""), &out).Execute(CommandAverageAgeAtDeath, p)
	assert.Contains(t, out.String(), "No deceased people found.")
}
