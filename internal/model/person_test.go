package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSex(t *testing.T) {
	tests := []struct {
		in      string
		want    Sex
		wantErr bool
	}{
		{"male", SexMale, false},
		{"female", SexFemale, false},
		{"Male", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSex(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPerson(t *testing.T) {
	mother := NewPerson("Amber", "Copper", SexFemale, Date(1933, time.March, 23), nil, nil)
	father := NewPerson("Lester", "Elderson-Copper", SexMale, Date(1935, time.May, 12), nil, nil)
	child := NewPerson("Bexton", "Elderson-Copper", SexMale, Date(1955, time.March, 23), mother, father)

	assert.Same(t, mother, child.Mother())
	assert.Same(t, father, child.Father())
	assert.Nil(t, child.Spouse())
	assert.Equal(t, "Bexton Elderson-Copper", child.String())
	assert.NotEqual(t, mother.ID(), child.ID())
	assert.False(t, child.IsDeceased())
}

func TestPerson_Pair(t *testing.T) {
	a := NewPerson("Greg", "Boulder", SexMale, Date(1955, time.March, 23), nil, nil)
	b := NewPerson("Carol", "Boulder", SexFemale, Date(1957, time.May, 12), nil, nil)
	c := NewPerson("Bexton", "Elderson-Copper", SexMale, Date(1955, time.March, 23), nil, nil)

	t.Run("pairing is symmetric", func(t *testing.T) {
		a.Pair(b)
		assert.Same(t, b, a.Spouse())
		assert.Same(t, a, b.Spouse())
	})

	t.Run("re-pairing leaves the old partner's link in place", func(t *testing.T) {
		b.Pair(c)
		assert.Same(t, c, b.Spouse())
		assert.Same(t, b, c.Spouse())
		assert.Same(t, b, a.Spouse())
	})
}

func TestPerson_MarkDeceased(t *testing.T) {
	p := NewPerson("John", "Colder", SexMale, Date(1920, time.May, 2), nil, nil)

	_, ok := p.AgeAtDeath()
	assert.False(t, ok)

	p.MarkDeceased(Date(1980, time.January, 1))
	p.MarkDeceased(Date(1990, time.March, 23))

	date, ok := p.DateOfDeath()
	require.True(t, ok)
	assert.Equal(t, Date(1990, time.March, 23), date)

	age, ok := p.AgeAtDeath()
	require.True(t, ok)
	assert.Equal(t, 70, age)
}

func TestPeople_SameNameDistinctIdentity(t *testing.T) {
	born := Date(1980, time.March, 23)
	a := NewPerson("Sam", "Smith", SexMale, born, nil, nil)
	b := NewPerson("Sam", "Smith", SexMale, born, nil, nil)

	assert.Equal(t, a.FullName(), b.FullName())
	assert.NotSame(t, a, b)
}
