package graph

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"familytree/internal/model"
	"familytree/internal/service"
)

type queryFunc func(c *gin.Context) (interface{}, error)

type personQueryFunc func(c *gin.Context, p *model.Person) (interface{}, error)

// handle 执行查询、记录指标并输出JSON
func (r *Resolver) handle(relation string, fn queryFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		body, err := fn(c)
		r.metrics.Observe(relation, start, err)
		if err != nil {
			c.JSON(r.errors.Handle(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, body)
	}
}

// handlePerson 解析路径中的 :index 后执行查询
func (r *Resolver) handlePerson(relation string, fn personQueryFunc) gin.HandlerFunc {
	return r.handle(relation, func(c *gin.Context) (interface{}, error) {
		p, err := r.person(c)
		if err != nil {
			return nil, err
		}
		return fn(c, p)
	})
}

func (r *Resolver) person(c *gin.Context) (*model.Person, error) {
	raw := c.Param("index")
	index, err := strconv.Atoi(raw)
	if err != nil {
		return nil, service.NewError(service.ErrInvalidInput, "index must be an integer", err).
			WithContext("index", raw)
	}
	return r.tree.PersonAt(index)
}

func boolQuery(c *gin.Context, name string) (bool, error) {
	raw := c.Query(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, service.NewError(service.ErrInvalidInput, name+" must be a boolean", err).
			WithContext(name, raw)
	}
	return v, nil
}

// Health 健康检查
func (r *Resolver) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "people": r.tree.Len()})
}

// People 获取所有成员
func (r *Resolver) People(c *gin.Context) (interface{}, error) {
	return r.personViews(r.tree.People()), nil
}

// Person 获取单个成员
func (r *Resolver) Person(c *gin.Context, p *model.Person) (interface{}, error) {
	return r.personView(p), nil
}

// Parents 获取父母
func (r *Resolver) Parents(c *gin.Context, p *model.Person) (interface{}, error) {
	return r.parentsView(r.tree.Parents(p)), nil
}

// Grandparents 获取祖父母
func (r *Resolver) Grandparents(c *gin.Context, p *model.Person) (interface{}, error) {
	gp := r.tree.Grandparents(p)
	return GrandparentsView{
		Maternal: r.parentsView(gp.Maternal),
		Paternal: r.parentsView(gp.Paternal),
	}, nil
}

// Children 获取子女
func (r *Resolver) Children(c *gin.Context, p *model.Person) (interface{}, error) {
	return r.refs(r.tree.Children(p)), nil
}

// Grandchildren 获取孙辈
func (r *Resolver) Grandchildren(c *gin.Context, p *model.Person) (interface{}, error) {
	return r.refs(r.tree.Grandchildren(p)), nil
}

// Siblings 获取兄弟姐妹，?half=true 时包含半血亲
func (r *Resolver) Siblings(c *gin.Context, p *model.Person) (interface{}, error) {
	half, err := boolQuery(c, "half")
	if err != nil {
		return nil, err
	}
	return r.siblingsView(r.tree.Siblings(p, half)), nil
}

// AuntsAndUncles 获取叔伯姑姨
func (r *Resolver) AuntsAndUncles(c *gin.Context, p *model.Person) (interface{}, error) {
	return r.refs(r.tree.AuntsAndUncles(p)), nil
}

// Cousins 获取堂表兄弟姐妹
func (r *Resolver) Cousins(c *gin.Context, p *model.Person) (interface{}, error) {
	return r.refs(r.tree.Cousins(p)), nil
}

// Family 获取家庭成员，?extended=true 时包含旁系亲属
func (r *Resolver) Family(c *gin.Context, p *model.Person) (interface{}, error) {
	extended, err := boolQuery(c, "extended")
	if err != nil {
		return nil, err
	}
	if extended {
		return r.familyView(r.tree.ExtendedFamily(p)), nil
	}
	return r.familyView(r.tree.ImmediateFamily(p)), nil
}

// Birthdays 获取按日期排序的生日日历
func (r *Resolver) Birthdays(c *gin.Context) (interface{}, error) {
	calendar := service.BirthdayCalendar(r.tree.Birthdays())
	out := make([]CalendarDayView, 0, len(calendar))
	for _, day := range calendar {
		out = append(out, CalendarDayView{
			Month:  day.Month,
			Day:    day.Day,
			People: r.refs(day.People),
		})
	}
	return out, nil
}

// Deceased 获取已去世的成员
func (r *Resolver) Deceased(c *gin.Context) (interface{}, error) {
	return r.personViews(r.tree.Deceased()), nil
}

// Stats 获取统计信息
func (r *Resolver) Stats(c *gin.Context) (interface{}, error) {
	avgAge, deceased := r.tree.AverageAgeAtDeath()
	counts := r.tree.ChildCounts()

	view := StatsView{
		People:            r.tree.Len(),
		Deceased:          deceased,
		AverageAgeAtDeath: avgAge,
		AverageChildren:   r.tree.AverageChildren(),
		ChildCounts:       make([]ChildCountView, 0, len(counts)),
	}
	for _, count := range counts {
		view.ChildCounts = append(view.ChildCounts, ChildCountView{
			Person:   r.ref(count.Person),
			Children: count.Children,
		})
	}
	return view, nil
}
