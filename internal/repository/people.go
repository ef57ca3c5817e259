package repository

import (
	"sync"
	"time"

	"familytree/internal/model"
)

// People 家族成员集合
//
// 按插入顺序保存成员，只增不减。查询持有读锁，Pair 和 MarkDeceased
// 这两个修改操作持有写锁。
type People struct {
	mu     sync.RWMutex
	people []*model.Person
}

// NewPeople 创建空集合
func NewPeople() *People {
	return &People{
		people: make([]*model.Person, 0),
	}
}

// Add 添加成员，返回同一个引用以便链式调用
func (r *People) Add(p *model.Person) *model.Person {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.people = append(r.people, p)
	return p
}

// At 按位置获取成员
func (r *People) At(i int) (*model.Person, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if i < 0 || i >= len(r.people) {
		return nil, false
	}
	return r.people[i], true
}

// IndexOf 按身份查找成员位置
func (r *People) IndexOf(p *model.Person) (int, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, candidate := range r.people {
		if candidate == p {
			return i, true
		}
	}
	return -1, false
}

// All 返回成员快照
func (r *People) All() []*model.Person {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*model.Person, len(r.people))
	copy(snapshot, r.people)
	return snapshot
}

// Len 成员数量
func (r *People) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.people)
}

// Pair 在写锁下建立配偶关系
func (r *People) Pair(a, b *model.Person) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a.Pair(b)
}

// MarkDeceased 在写锁下设置去世日期
func (r *People) MarkDeceased(p *model.Person, date time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.MarkDeceased(date)
}
