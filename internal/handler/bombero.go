package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SAFE-Rescue/api-administrador/internal/model"
	"github.com/SAFE-Rescue/api-administrador/internal/service"
)

// BomberoHandler exposes the CRUD and credencial-assignment endpoints
// under /bomberos.
type BomberoHandler struct {
	Bomberos *service.BomberoService
}

func NewBomberoHandler(bomberos *service.BomberoService) *BomberoHandler {
	return &BomberoHandler{Bomberos: bomberos}
}

// Listar returns every bombero, or 204 when none are registered.
func (h *BomberoHandler) Listar(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	bomberos, err := h.Bomberos.FindAll(ctx)
	if err != nil {
		return plainError(c, err)
	}
	if len(bomberos) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, bomberos)
}

// Buscar returns one bombero by id.
func (h *BomberoHandler) Buscar(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	b, err := h.Bomberos.FindByID(ctx, id)
	if err != nil {
		if service.KindOf(err) == service.KindNotFound {
			return c.String(http.StatusNotFound, "Bombero no encontrado")
		}
		return plainError(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

// Agregar creates a new bombero, cascading its embedded credencial and rol.
func (h *BomberoHandler) Agregar(c echo.Context) error {
	var b model.Bombero
	if err := c.Bind(&b); err != nil {
		return c.String(http.StatusBadRequest, "Solicitud inválida")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Bomberos.Save(ctx, &b); err != nil {
		return plainError(c, err)
	}
	return c.String(http.StatusCreated, "Bombero creado con éxito.")
}

// Actualizar applies a partial update to an existing bombero.
func (h *BomberoHandler) Actualizar(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	var in model.BomberoUpdate
	if err := c.Bind(&in); err != nil {
		return c.String(http.StatusBadRequest, "Solicitud inválida")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Bomberos.Update(ctx, &in, id); err != nil {
		return plainError(c, err)
	}
	return c.String(http.StatusOK, "Actualizado con éxito")
}

// Eliminar removes a bombero.
func (h *BomberoHandler) Eliminar(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Bomberos.Delete(ctx, id); err != nil {
		return plainError(c, err)
	}
	return c.String(http.StatusOK, "Bombero eliminado con éxito.")
}

// AsignarCredencial attaches an existing credencial to an existing bombero.
func (h *BomberoHandler) AsignarCredencial(c echo.Context) error {
	bomberoID, err := idParam(c, "bomberoId")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}
	credencialID, err := idParam(c, "credencialId")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Bomberos.AsignarCredencial(ctx, bomberoID, credencialID); err != nil {
		return plainError(c, err)
	}
	return c.String(http.StatusOK, "Credencial asignada al bombero exitosamente")
}
