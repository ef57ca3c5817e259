package loader

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"familytree/internal/model"
	"familytree/internal/service"
)

func names(people []*model.Person) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		out = append(out, p.FirstName())
	}
	return out
}

func TestPopulateSample(t *testing.T) {
	tree := service.NewFamilyTree(nil, nil)
	PopulateSample(tree)

	require.Equal(t, 25, tree.Len())

	first, err := tree.PersonAt(0)
	require.NoError(t, err)
	assert.Equal(t, "Adam", first.FirstName())

	last, err := tree.PersonAt(24)
	require.NoError(t, err)
	assert.Equal(t, "Ethan", last.FirstName())
	assert.Nil(t, last.Mother())
	assert.Equal(t, "Dylan", last.Father().FirstName())

	assert.Equal(t, []string{"Ginny", "John", "Jeanette"}, names(tree.Deceased()))
}

func TestLoadFile(t *testing.T) {
	tree := service.NewFamilyTree(nil, nil)
	require.NoError(t, LoadFile("testdata/tree.yaml", tree))
	require.Equal(t, 6, tree.Len())

	greg, _ := tree.PersonAt(0)
	carol, _ := tree.PersonAt(1)
	bexton, _ := tree.PersonAt(2)
	dylan, _ := tree.PersonAt(3)

	assert.Same(t, carol, greg.Spouse())
	assert.Same(t, greg, carol.Spouse())
	assert.Same(t, carol, dylan.Mother())
	assert.Same(t, greg, dylan.Father())
	assert.Equal(t, model.SexFemale, carol.Sex())
	assert.Equal(t, model.Date(1957, time.May, 12), carol.DateOfBirth())

	died, ok := bexton.DateOfDeath()
	require.True(t, ok)
	assert.Equal(t, model.Date(2020, time.January, 4), died)

	siblings := tree.Siblings(dylan, true)
	assert.Equal(t, []string{"Angie"}, names(siblings.Full))
	assert.Equal(t, []string{"Lee"}, names(siblings.Half))
}

func TestLoadFile_Missing(t *testing.T) {
	tree := service.NewFamilyTree(nil, nil)
	err := LoadFile("testdata/does-not-exist.yaml", tree)
	require.Error(t, err)
	assert.Equal(t, service.ErrConfig, service.CodeOf(err))
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		code service.ErrorCode
	}{
		{
			name: "malformed yaml",
			doc:  "people: [",
			code: service.ErrInvalidInput,
		},
		{
			name: "unknown sex",
			doc: `people:
  - {key: a, first_name: A, sex: other, born: 1950-01-01}`,
			code: service.ErrValidation,
		},
		{
			name: "bad date",
			doc: `people:
  - {key: a, first_name: A, sex: male, born: 01/01/1950}`,
			code: service.ErrValidation,
		},
		{
			name: "parent listed after child",
			doc: `people:
  - {key: child, first_name: C, sex: male, born: 1980-01-01, mother: mum}
  - {key: mum, first_name: M, sex: female, born: 1950-01-01}`,
			code: service.ErrValidation,
		},
		{
			name: "unknown partner",
			doc: `people:
  - {key: a, first_name: A, sex: male, born: 1950-01-01, partner: nobody}`,
			code: service.ErrValidation,
		},
		{
			name: "duplicate key",
			doc: `people:
  - {key: a, first_name: A, sex: male, born: 1950-01-01}
  - {key: a, first_name: B, sex: male, born: 1950-01-01}`,
			code: service.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := service.NewFamilyTree(nil, nil)
			err := Load(strings.NewReader(tt.doc), tree)
			require.Error(t, err)
			assert.Equal(t, tt.code, service.CodeOf(err))
			assert.Zero(t, tree.Len(), "tree must be left untouched")
		})
	}
}
