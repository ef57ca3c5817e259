package graph

import (
	"familytree/internal/service"
)

// Resolver 家谱查询的HTTP解析器
//
// 依赖通过构造函数注入，不使用全局实例。
type Resolver struct {
	tree    *service.FamilyTree
	metrics *service.Metrics
	errors  *service.ErrorHandler
	logger  *service.Logger
}

// NewResolver 创建解析器，metrics 可以为 nil
func NewResolver(tree *service.FamilyTree, metrics *service.Metrics, logger *service.Logger) *Resolver {
	if logger == nil {
		logger = service.NopLogger()
	}
	return &Resolver{
		tree:    tree,
		metrics: metrics,
		errors:  service.NewErrorHandler(logger),
		logger:  logger,
	}
}
