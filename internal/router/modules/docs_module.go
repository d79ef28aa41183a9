package modules

import (
	"github.com/gin-gonic/gin"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DocsModule struct{}

func NewDocsModule() *DocsModule { return &DocsModule{} }

// Register serves the swagger UI; the OpenAPI document comes from the docs
// package registered with swag at init.
func (m *DocsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))
}
