package loader

import (
	"time"

	"familytree/internal/model"
	"familytree/internal/service"
)

// PopulateSample 向家谱中添加内置的四代示例数据（25人）
func PopulateSample(tree *service.FamilyTree) {
	add := func(first, last string, sex model.Sex, born time.Time, mother, father *model.Person) *model.Person {
		return tree.AddPerson(model.NewPerson(first, last, sex, born, mother, father))
	}
	date := model.Date

	// 第一代
	adam := add("Adam", "Elderson-Copper", model.SexMale, date(1933, time.March, 23), nil, nil)
	lester := add("Lester", "Elderson-Copper", model.SexMale, date(1935, time.May, 12), nil, nil)
	tree.SetPartner(adam, lester)

	amber := add("Amber", "Copper", model.SexFemale, date(1933, time.March, 23), nil, nil)

	thomas := add("Thomas", "Emmersohn", model.SexMale, date(1933, time.March, 23), nil, nil)
	ginny := add("Ginny", "Emmersohn", model.SexFemale, date(1934, time.July, 8), nil, nil)
	tree.SetPartner(thomas, ginny)

	john := add("John", "Colder", model.SexMale, date(1920, time.May, 2), nil, nil)
	jeanette := add("Jeanette", "Colder", model.SexFemale, date(1929, time.June, 12), nil, nil)
	tree.SetPartner(john, jeanette)

	tree.MarkDeceased(john, date(1990, time.March, 23))
	tree.MarkDeceased(jeanette, date(1990, time.March, 23))
	tree.MarkDeceased(ginny, date(1960, time.July, 2))

	// 第二代
	greg := add("Greg", "Boulder", model.SexMale, date(1955, time.March, 23), nil, nil)
	carol := add("Carol", "Boulder", model.SexFemale, date(1957, time.May, 12), nil, nil)
	tree.SetPartner(greg, carol)

	bexton := add("Bexton", "Elderson-Copper", model.SexMale, date(1955, time.March, 23), amber, lester)

	david := add("David", "Eyre", model.SexMale, date(1953, time.April, 1), nil, nil)
	sandra := add("Sandra", "Eyre", model.SexFemale, date(1954, time.August, 12), nil, nil)
	tree.SetPartner(david, sandra)

	jamie := add("Jamie", "Emmersohn", model.SexMale, date(1955, time.March, 23), ginny, thomas)
	dorothy := add("Dorothy", "Emmersohn", model.SexFemale, date(1957, time.May, 12), jeanette, john)
	tree.SetPartner(jamie, dorothy)

	frank := add("Frank", "Anderson", model.SexMale, date(1956, time.August, 8), nil, nil)
	jane := add("Jane", "Anderson", model.SexFemale, date(1956, time.August, 8), nil, nil)
	tree.SetPartner(frank, jane)

	// 第三代
	clyde := add("Clyde", "Emmersohn", model.SexMale, date(1980, time.March, 23), dorothy, jamie)
	bethany := add("Bethany", "Anderson", model.SexFemale, date(1980, time.March, 23), jane, frank)
	tree.SetPartner(clyde, bethany)

	james := add("James", "Eyre", model.SexMale, date(1980, time.March, 23), sandra, david)
	angie := add("Angie", "Eyre", model.SexFemale, date(1982, time.November, 12), carol, greg)
	tree.SetPartner(james, angie)

	dylan := add("Dylan", "Boulder", model.SexMale, date(1980, time.March, 23), carol, greg)
	add("Lee", "Elderson-Copper", model.SexMale, date(1980, time.March, 23), carol, bexton)

	// 第四代
	cornelia := add("Cornelia", "Emmersohn", model.SexFemale, date(2005, time.March, 23), angie, james)
	otto := add("Otto", "Emmersohn", model.SexMale, date(2000, time.March, 23), bethany, clyde)
	tree.SetPartner(cornelia, otto)

	add("Ethan", "Eyre", model.SexMale, date(2003, time.August, 17), nil, dylan)
}
