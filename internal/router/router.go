// Package router registers the HTTP routes of the administrative API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/SAFE-Rescue/api-administrador/internal/handler"
)

// BasePath is the URL prefix shared by every resource of this API.
const BasePath = "/api-administrador/v1"

// RegisterRoutes wires the bombero, credencial and rol endpoints under the
// base path, plus the health check. The optional middlewares (e.g. the
// Redis response cache) are applied to the whole API group.
func RegisterRoutes(e *echo.Echo, b *handler.BomberoHandler, cr *handler.CredencialHandler, r *handler.RolHandler, mw ...echo.MiddlewareFunc) {
	e.GET("/healthz", handler.Health)

	g := e.Group(BasePath, mw...)

	g.GET("/bomberos", b.Listar)
	g.GET("/bomberos/:id", b.Buscar)
	g.POST("/bomberos", b.Agregar)
	g.PUT("/bomberos/:id", b.Actualizar)
	g.DELETE("/bomberos/:id", b.Eliminar)
	g.POST("/bomberos/:bomberoId/asignar-credencial/:credencialId", b.AsignarCredencial)

	g.GET("/credenciales", cr.Listar)
	g.GET("/credenciales/:id", cr.Buscar)
	g.POST("/credenciales", cr.Agregar)
	g.PUT("/credenciales/:id", cr.Actualizar)
	g.DELETE("/credenciales/:id", cr.Eliminar)
	g.POST("/credenciales/login", cr.Login)
	g.POST("/credenciales/:credencialId/asignar-rol/:rolId", cr.AsignarRol)

	g.GET("/roles", r.Listar)
	g.GET("/roles/:id", r.Buscar)
	g.POST("/roles", r.Agregar)
	g.PUT("/roles/:id", r.Actualizar)
	g.DELETE("/roles/:id", r.Eliminar)
}
