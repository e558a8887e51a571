package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SAFE-Rescue/api-administrador/internal/model"
	"github.com/SAFE-Rescue/api-administrador/internal/service"
)

// RolHandler exposes the CRUD endpoints under /roles.
type RolHandler struct {
	Roles *service.RolService
}

func NewRolHandler(roles *service.RolService) *RolHandler {
	return &RolHandler{Roles: roles}
}

// Listar returns every rol, or 204 when none are registered.
func (h *RolHandler) Listar(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	roles, err := h.Roles.FindAll(ctx)
	if err != nil {
		return plainError(c, err)
	}
	if len(roles) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, roles)
}

// Buscar returns one rol by id.
func (h *RolHandler) Buscar(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	rol, err := h.Roles.FindByID(ctx, id)
	if err != nil {
		if service.KindOf(err) == service.KindNotFound {
			return c.String(http.StatusNotFound, "Rol no encontrado")
		}
		return plainError(c, err)
	}
	return c.JSON(http.StatusOK, rol)
}

// Agregar creates a new rol.
func (h *RolHandler) Agregar(c echo.Context) error {
	var rol model.Rol
	if err := c.Bind(&rol); err != nil {
		return c.String(http.StatusBadRequest, "Solicitud inválida")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Roles.Save(ctx, &rol); err != nil {
		return plainError(c, err)
	}
	return c.String(http.StatusCreated, "Rol creado con éxito.")
}

// Actualizar overwrites the nombre of an existing rol.
func (h *RolHandler) Actualizar(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	var in model.RolUpdate
	if err := c.Bind(&in); err != nil {
		return c.String(http.StatusBadRequest, "Solicitud inválida")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Roles.Update(ctx, &in, id); err != nil {
		return plainError(c, err)
	}
	return c.String(http.StatusOK, "Actualizado con éxito")
}

// Eliminar removes a rol.
func (h *RolHandler) Eliminar(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Roles.Delete(ctx, id); err != nil {
		return plainError(c, err)
	}
	return c.String(http.StatusOK, "Rol eliminada con éxito.")
}
