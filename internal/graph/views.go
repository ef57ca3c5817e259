package graph

import (
	"familytree/internal/model"
	"familytree/internal/service"
)

const dateLayout = "2006-01-02"

// PersonRef 成员引用
type PersonRef struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

// PersonView 成员详情
type PersonView struct {
	Index     int        `json:"index"`
	ID        string     `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Sex       model.Sex  `json:"sex"`
	BirthDate string     `json:"birth_date"`
	DeathDate *string    `json:"death_date,omitempty"`
	Spouse    *PersonRef `json:"spouse,omitempty"`
}

// ParentsView 父母
type ParentsView struct {
	Mother *PersonRef `json:"mother"`
	Father *PersonRef `json:"father"`
}

// GrandparentsView 祖父母
type GrandparentsView struct {
	Maternal ParentsView `json:"maternal"`
	Paternal ParentsView `json:"paternal"`
}

// SiblingsView 兄弟姐妹
type SiblingsView struct {
	Full []PersonRef `json:"full"`
	Half []PersonRef `json:"half"`
}

// FamilyView 家庭成员
type FamilyView struct {
	Person         PersonRef    `json:"person"`
	Spouse         *PersonRef   `json:"spouse"`
	Parents        ParentsView  `json:"parents"`
	Children       []PersonRef  `json:"children"`
	Siblings       SiblingsView `json:"siblings"`
	AuntsAndUncles []PersonRef  `json:"aunts_and_uncles,omitempty"`
	Cousins        []PersonRef  `json:"cousins,omitempty"`
}

// CalendarDayView 同一天的生日
type CalendarDayView struct {
	Month  int         `json:"month"`
	Day    int         `json:"day"`
	People []PersonRef `json:"people"`
}

// ChildCountView 子女数量
type ChildCountView struct {
	Person   PersonRef `json:"person"`
	Children int       `json:"children"`
}

// StatsView 统计信息
type StatsView struct {
	People            int              `json:"people"`
	Deceased          int              `json:"deceased"`
	AverageAgeAtDeath float64          `json:"average_age_at_death"`
	AverageChildren   float64          `json:"average_children"`
	ChildCounts       []ChildCountView `json:"child_counts"`
}

// indexOf 未登记的成员返回 -1
func (r *Resolver) indexOf(p *model.Person) int {
	i, err := r.tree.IndexOf(p)
	if err != nil {
		return -1
	}
	return i
}

func (r *Resolver) ref(p *model.Person) PersonRef {
	return PersonRef{Index: r.indexOf(p), Name: p.FullName()}
}

func (r *Resolver) optionalRef(p *model.Person) *PersonRef {
	if p == nil {
		return nil
	}
	ref := r.ref(p)
	return &ref
}

func (r *Resolver) refs(people []*model.Person) []PersonRef {
	out := make([]PersonRef, 0, len(people))
	for _, p := range people {
		out = append(out, r.ref(p))
	}
	return out
}

func (r *Resolver) personView(p *model.Person) PersonView {
	view := PersonView{
		Index:     r.indexOf(p),
		ID:        p.ID().String(),
		FirstName: p.FirstName(),
		LastName:  p.LastName(),
		Sex:       p.Sex(),
		BirthDate: p.DateOfBirth().Format(dateLayout),
		Spouse:    r.optionalRef(p.Spouse()),
	}
	if died, ok := p.DateOfDeath(); ok {
		s := died.Format(dateLayout)
		view.DeathDate = &s
	}
	return view
}

func (r *Resolver) personViews(people []*model.Person) []PersonView {
	out := make([]PersonView, 0, len(people))
	for _, p := range people {
		out = append(out, r.personView(p))
	}
	return out
}

func (r *Resolver) parentsView(parents service.Parents) ParentsView {
	return ParentsView{
		Mother: r.optionalRef(parents.Mother),
		Father: r.optionalRef(parents.Father),
	}
}

func (r *Resolver) siblingsView(siblings service.Siblings) SiblingsView {
	return SiblingsView{
		Full: r.refs(siblings.Full),
		Half: r.refs(siblings.Half),
	}
}

func (r *Resolver) familyView(family service.Family) FamilyView {
	view := FamilyView{
		Person:   r.ref(family.Person),
		Spouse:   r.optionalRef(family.Spouse),
		Parents:  r.parentsView(family.Parents),
		Children: r.refs(family.Children),
		Siblings: r.siblingsView(family.Siblings),
	}
	if family.Extended {
		view.AuntsAndUncles = r.refs(family.AuntsAndUncles)
		view.Cousins = r.refs(family.Cousins)
	}
	return view
}
