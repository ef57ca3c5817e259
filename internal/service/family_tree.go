package service

import (
	"time"

	"familytree/internal/model"
	"familytree/internal/repository"
)

// Parents 父母，任一方可能为 nil
type Parents struct {
	Mother *model.Person
	Father *model.Person
}

// Grandparents 祖父母：母亲的父母和父亲的父母
type Grandparents struct {
	Maternal Parents
	Paternal Parents
}

// Siblings 全血亲兄弟姐妹与半血亲兄弟姐妹
type Siblings struct {
	Full []*model.Person
	Half []*model.Person
}

// Birthday 某人的生日
type Birthday struct {
	Person *model.Person
	Month  time.Month
	Day    int
}

// FamilyTree 关系查询引擎
//
// 查询只读取父母和配偶链接，不缓存结果也不修改数据。传入 nil 的成员
// 得到空结果而不是错误。
type FamilyTree struct {
	people *repository.People
	logger *Logger
}

// NewFamilyTree 创建关系查询引擎
func NewFamilyTree(people *repository.People, logger *Logger) *FamilyTree {
	if people == nil {
		people = repository.NewPeople()
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &FamilyTree{
		people: people,
		logger: logger,
	}
}

// AddPerson 登记成员，返回同一个引用
func (t *FamilyTree) AddPerson(p *model.Person) *model.Person {
	t.logger.Debug("adding person %s", p)
	return t.people.Add(p)
}

// SetPartner 设置配偶
func (t *FamilyTree) SetPartner(a, b *model.Person) {
	t.people.Pair(a, b)
}

// MarkDeceased 设置去世日期
func (t *FamilyTree) MarkDeceased(p *model.Person, date time.Time) {
	t.people.MarkDeceased(p, date)
}

// People 按插入顺序返回所有成员
func (t *FamilyTree) People() []*model.Person {
	return t.people.All()
}

// Len 成员数量
func (t *FamilyTree) Len() int {
	return t.people.Len()
}

// PersonAt 按位置（从0开始）获取成员
func (t *FamilyTree) PersonAt(i int) (*model.Person, error) {
	p, ok := t.people.At(i)
	if !ok {
		return nil, NotFound("no person at index %d", i).WithContext("index", i)
	}
	return p, nil
}

// IndexOf 获取成员位置
func (t *FamilyTree) IndexOf(p *model.Person) (int, error) {
	i, ok := t.people.IndexOf(p)
	if !ok {
		return -1, NotFound("person %v is not in the family tree", p)
	}
	return i, nil
}

// Parents 获取父母
func (t *FamilyTree) Parents(p *model.Person) Parents {
	if p == nil {
		return Parents{}
	}
	return Parents{Mother: p.Mother(), Father: p.Father()}
}

// Grandparents 获取祖父母
func (t *FamilyTree) Grandparents(p *model.Person) Grandparents {
	parents := t.Parents(p)
	return Grandparents{
		Maternal: t.Parents(parents.Mother),
		Paternal: t.Parents(parents.Father),
	}
}

// Children 获取子女，按插入顺序
func (t *FamilyTree) Children(p *model.Person) []*model.Person {
	children := make([]*model.Person, 0)
	if p == nil {
		return children
	}

	for _, candidate := range t.people.All() {
		if candidate.Mother() == p || candidate.Father() == p {
			children = append(children, candidate)
		}
	}
	return children
}

// Grandchildren 获取孙辈，去重并保留首次出现的顺序
func (t *FamilyTree) Grandchildren(p *model.Person) []*model.Person {
	var grandchildren []*model.Person
	for _, child := range t.Children(p) {
		grandchildren = append(grandchildren, t.Children(child)...)
	}
	return uniquePeople(grandchildren)
}

// Siblings 获取兄弟姐妹
//
// 候选人是母亲的子女加父亲的子女（去重，排除本人）。父母双方都相同且非空
// 的为全血亲；includeHalf 为 true 时，恰好一方相同的为半血亲，否则 Half
// 为空。
func (t *FamilyTree) Siblings(p *model.Person, includeHalf bool) Siblings {
	siblings := Siblings{
		Full: make([]*model.Person, 0),
		Half: make([]*model.Person, 0),
	}
	if p == nil {
		return siblings
	}

	mother, father := p.Mother(), p.Father()
	candidates := append(t.Children(mother), t.Children(father)...)

	for _, candidate := range uniquePeople(candidates) {
		if candidate == p {
			continue
		}

		sameMother := mother != nil && candidate.Mother() == mother
		sameFather := father != nil && candidate.Father() == father

		switch {
		case sameMother && sameFather:
			siblings.Full = append(siblings.Full, candidate)
		case includeHalf && (sameMother || sameFather):
			siblings.Half = append(siblings.Half, candidate)
		}
	}
	return siblings
}

// AuntsAndUncles 获取叔伯姑姨
//
// 母亲一方只取全血亲兄弟姐妹，父亲一方取全血亲和半血亲，两边直接拼接，
// 不做跨边去重。
func (t *FamilyTree) AuntsAndUncles(p *model.Person) []*model.Person {
	auntsAndUncles := make([]*model.Person, 0)
	parents := t.Parents(p)

	if parents.Mother != nil {
		auntsAndUncles = append(auntsAndUncles, t.Siblings(parents.Mother, true).Full...)
	}
	if parents.Father != nil {
		siblings := t.Siblings(parents.Father, true)
		auntsAndUncles = append(auntsAndUncles, siblings.Full...)
		auntsAndUncles = append(auntsAndUncles, siblings.Half...)
	}
	return auntsAndUncles
}

// Cousins 获取堂表兄弟姐妹，按叔伯姑姨的顺序拼接，不去重
func (t *FamilyTree) Cousins(p *model.Person) []*model.Person {
	cousins := make([]*model.Person, 0)
	for _, auntOrUncle := range t.AuntsAndUncles(p) {
		cousins = append(cousins, t.Children(auntOrUncle)...)
	}
	return cousins
}

// Birthdays 获取所有人的生日，不排序
func (t *FamilyTree) Birthdays() []Birthday {
	people := t.people.All()
	birthdays := make([]Birthday, 0, len(people))
	for _, p := range people {
		born := p.DateOfBirth()
		birthdays = append(birthdays, Birthday{
			Person: p,
			Month:  born.Month(),
			Day:    born.Day(),
		})
	}
	return birthdays
}

// Deceased 获取已去世的成员，按插入顺序
func (t *FamilyTree) Deceased() []*model.Person {
	deceased := make([]*model.Person, 0)
	for _, p := range t.people.All() {
		if p.IsDeceased() {
			deceased = append(deceased, p)
		}
	}
	return deceased
}

// uniquePeople 按身份去重，保留首次出现的顺序
func uniquePeople(people []*model.Person) []*model.Person {
	seen := make(map[*model.Person]struct{}, len(people))
	unique := make([]*model.Person, 0, len(people))
	for _, p := range people {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}
