package graph

import "github.com/gin-gonic/gin"

// RegisterRoutes 注册家谱查询路由
func RegisterRoutes(router gin.IRouter, r *Resolver) {
	router.GET("/healthz", r.Health)

	router.GET("/people", r.handle("people", r.People))
	router.GET("/birthdays", r.handle("birthdays", r.Birthdays))
	router.GET("/deceased", r.handle("deceased", r.Deceased))
	router.GET("/stats", r.handle("stats", r.Stats))

	person := router.Group("/people/:index")
	person.GET("", r.handlePerson("person", r.Person))
	person.GET("/parents", r.handlePerson("parents", r.Parents))
	person.GET("/grandparents", r.handlePerson("grandparents", r.Grandparents))
	person.GET("/children", r.handlePerson("children", r.Children))
	person.GET("/grandchildren", r.handlePerson("grandchildren", r.Grandchildren))
	person.GET("/siblings", r.handlePerson("siblings", r.Siblings))
	person.GET("/aunts-uncles", r.handlePerson("aunts_uncles", r.AuntsAndUncles))
	person.GET("/cousins", r.handlePerson("cousins", r.Cousins))
	person.GET("/family", r.handlePerson("family", r.Family))
}
