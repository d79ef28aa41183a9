package router

import "github.com/gin-gonic/gin"

// Module describes a feature module that can register its routes on a RouterGroup.
// Registry.Add hands it the /api group, Registry.AddRoot the bare engine.
type Module interface {
	Register(rg *gin.RouterGroup)
}
