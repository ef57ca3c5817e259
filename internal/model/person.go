package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sex 简化的生理性别
//
// 这是一个刻意简化的二元枚举，仅用于记录，不是性别认同模型。
type Sex string

const (
	SexMale   Sex = "male"   // 男
	SexFemale Sex = "female" // 女
)

// ParseSex 解析性别字符串
func ParseSex(s string) (Sex, error) {
	switch Sex(s) {
	case SexMale, SexFemale:
		return Sex(s), nil
	default:
		return "", fmt.Errorf("unknown sex %q", s)
	}
}

// Person 家族成员
//
// 父母关系在创建时确定且不可修改；配偶关系通过 Pair 建立，始终双向。
// 所有关系比较都基于指针身份，而不是姓名。
type Person struct {
	id          uuid.UUID
	firstName   string
	lastName    string
	sex         Sex
	dateOfBirth time.Time
	dateOfDeath *time.Time

	// 关系字段
	mother *Person
	father *Person
	spouse *Person
}

// NewPerson 创建家族成员，mother 和 father 可以为 nil
func NewPerson(firstName, lastName string, sex Sex, dateOfBirth time.Time, mother, father *Person) *Person {
	return &Person{
		id:          uuid.New(),
		firstName:   firstName,
		lastName:    lastName,
		sex:         sex,
		dateOfBirth: dateOfBirth,
		mother:      mother,
		father:      father,
	}
}

// Date 构造不带时区的日期
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func (p *Person) ID() uuid.UUID { return p.id }
func (p *Person) FirstName() string { return p.firstName }
func (p *Person) LastName() string { return p.lastName }
func (p *Person) Sex() Sex { return p.sex }
func (p *Person) DateOfBirth() time.Time { return p.dateOfBirth }
func (p *Person) Mother() *Person { return p.mother }
func (p *Person) Father() *Person { return p.father }
func (p *Person) Spouse() *Person { return p.spouse }

// FullName 返回名和姓
func (p *Person) FullName() string {
	return p.firstName + " " + p.lastName
}

func (p *Person) String() string {
	return p.FullName()
}

// DateOfDeath 返回去世日期，未去世时 ok 为 false
func (p *Person) DateOfDeath() (date time.Time, ok bool) {
	if p.dateOfDeath == nil {
		return time.Time{}, false
	}
	return *p.dateOfDeath, true
}

// IsDeceased 是否已去世
func (p *Person) IsDeceased() bool {
	return p.dateOfDeath != nil
}

// MarkDeceased 设置去世日期，重复调用会覆盖之前的值
func (p *Person) MarkDeceased(date time.Time) {
	p.dateOfDeath = &date
}

// Pair 将两人设为配偶
//
// 重新配对不会清除原配偶指向本人的引用。
func (p *Person) Pair(other *Person) {
	p.spouse = other
	other.spouse = p
}

// AgeAtDeath 去世时的年龄，按年份差计算
func (p *Person) AgeAtDeath() (int, bool) {
	if p.dateOfDeath == nil {
		return 0, false
	}
	return p.dateOfDeath.Year() - p.dateOfBirth.Year(), true
}
