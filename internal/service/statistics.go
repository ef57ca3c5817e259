package service

import "familytree/internal/model"

// ChildCount 某人的子女数量
type ChildCount struct {
	Person   *model.Person
	Children int
}

// AverageAgeAtDeath 已去世成员的平均去世年龄（按年份差），以及去世人数
//
// 没有去世成员时返回 0, 0。
func (t *FamilyTree) AverageAgeAtDeath() (float64, int) {
	deceased := t.Deceased()
	if len(deceased) == 0 {
		return 0, 0
	}

	total := 0
	for _, p := range deceased {
		age, _ := p.AgeAtDeath()
		total += age
	}
	return float64(total) / float64(len(deceased)), len(deceased)
}

// ChildCounts 每个成员的子女数量，按插入顺序
func (t *FamilyTree) ChildCounts() []ChildCount {
	people := t.people.All()
	counts := make([]ChildCount, 0, len(people))
	for _, p := range people {
		counts = append(counts, ChildCount{Person: p, Children: len(t.Children(p))})
	}
	return counts
}

// AverageChildren 所有成员的平均子女数量，空家谱返回 0
func (t *FamilyTree) AverageChildren() float64 {
	counts := t.ChildCounts()
	if len(counts) == 0 {
		return 0
	}

	total := 0
	for _, c := range counts {
		total += c.Children
	}
	return float64(total) / float64(len(counts))
}
