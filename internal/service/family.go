package service

import (
	"sort"

	"familytree/internal/model"
)

// Family 直系亲属，Extended 为 true 时包含旁系亲属
type Family struct {
	Person         *model.Person
	Spouse         *model.Person
	Parents        Parents
	Children       []*model.Person
	Siblings       Siblings
	Extended       bool
	AuntsAndUncles []*model.Person
	Cousins        []*model.Person
}

// ImmediateFamily 获取配偶、父母、子女和兄弟姐妹（含半血亲）
func (t *FamilyTree) ImmediateFamily(p *model.Person) Family {
	family := Family{
		Person:   p,
		Parents:  t.Parents(p),
		Children: t.Children(p),
		Siblings: t.Siblings(p, true),
	}
	if p != nil {
		family.Spouse = p.Spouse()
	}
	return family
}

// ExtendedFamily 在直系亲属之外加上叔伯姑姨和在世的堂表兄弟姐妹
func (t *FamilyTree) ExtendedFamily(p *model.Person) Family {
	family := t.ImmediateFamily(p)
	family.Extended = true
	family.AuntsAndUncles = t.AuntsAndUncles(p)

	family.Cousins = make([]*model.Person, 0)
	for _, cousin := range t.Cousins(p) {
		if !cousin.IsDeceased() {
			family.Cousins = append(family.Cousins, cousin)
		}
	}
	return family
}

// CalendarDay 同一天出生的人
type CalendarDay struct {
	Month  int             `json:"month"`
	Day    int             `json:"day"`
	People []*model.Person `json:"-"`
}

// BirthdayCalendar 按月、日排序并合并同一天的生日，同一天内保持原顺序
func BirthdayCalendar(birthdays []Birthday) []CalendarDay {
	sorted := make([]Birthday, len(birthdays))
	copy(sorted, birthdays)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Month != sorted[j].Month {
			return sorted[i].Month < sorted[j].Month
		}
		return sorted[i].Day < sorted[j].Day
	})

	calendar := make([]CalendarDay, 0)
	for _, b := range sorted {
		n := len(calendar)
		if n > 0 && calendar[n-1].Month == int(b.Month) && calendar[n-1].Day == b.Day {
			calendar[n-1].People = append(calendar[n-1].People, b.Person)
			continue
		}
		calendar = append(calendar, CalendarDay{
			Month:  int(b.Month),
			Day:    b.Day,
			People: []*model.Person{b.Person},
		})
	}
	return calendar
}
