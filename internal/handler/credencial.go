package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/SAFE-Rescue/api-administrador/internal/model"
	"github.com/SAFE-Rescue/api-administrador/internal/service"
)

// CredencialHandler exposes the CRUD, login and rol-assignment endpoints
// under /credenciales.
type CredencialHandler struct {
	Credenciales *service.CredencialService
}

func NewCredencialHandler(credenciales *service.CredencialService) *CredencialHandler {
	return &CredencialHandler{Credenciales: credenciales}
}

// Listar returns every credencial, or 204 when none are registered.
func (h *CredencialHandler) Listar(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	credenciales, err := h.Credenciales.FindAll(ctx)
	if err != nil {
		return plainError(c, err)
	}
	if len(credenciales) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, credenciales)
}

// Buscar returns one credencial by id.
func (h *CredencialHandler) Buscar(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	cred, err := h.Credenciales.FindByID(ctx, id)
	if err != nil {
		if service.KindOf(err) == service.KindNotFound {
			return c.String(http.StatusNotFound, "Credencial no encontrada")
		}
		return plainError(c, err)
	}
	return c.JSON(http.StatusOK, cred)
}

// Agregar creates a new credencial, cascading its embedded rol.
func (h *CredencialHandler) Agregar(c echo.Context) error {
	var cred model.Credencial
	if err := c.Bind(&cred); err != nil {
		return c.String(http.StatusBadRequest, "Solicitud inválida")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Credenciales.Save(ctx, &cred); err != nil {
		return plainError(c, err)
	}
	return c.String(http.StatusCreated, "Credencial creada con éxito.")
}

// Actualizar applies a partial update to an existing credencial.
func (h *CredencialHandler) Actualizar(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	var in model.CredencialUpdate
	if err := c.Bind(&in); err != nil {
		return c.String(http.StatusBadRequest, "Solicitud inválida")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Credenciales.Update(ctx, &in, id); err != nil {
		return plainError(c, err)
	}
	return c.String(http.StatusOK, "Actualizado con éxito")
}

// Eliminar removes a credencial.
func (h *CredencialHandler) Eliminar(c echo.Context) error {
	id, err := idParam(c, "id")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Credenciales.Delete(ctx, id); err != nil {
		return plainError(c, err)
	}
	return c.String(http.StatusOK, "Credencial eliminada con éxito.")
}

// Login verifies a correo/contrasenia pair. A mismatch or an unknown
// correo yields 401; the failed-attempt counter is handled by the service.
func (h *CredencialHandler) Login(c echo.Context) error {
	var login model.Login
	if err := c.Bind(&login); err != nil {
		return c.String(http.StatusBadRequest, "Solicitud inválida")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	ok, err := h.Credenciales.VerificarCredenciales(ctx, login.Correo, login.Contrasenia)
	if err != nil {
		return plainError(c, err)
	}
	if !ok {
		return c.String(http.StatusUnauthorized, "Credenciales incorrectas")
	}
	return c.String(http.StatusOK, "Login exitoso")
}

// AsignarRol attaches an existing rol to an existing credencial.
func (h *CredencialHandler) AsignarRol(c echo.Context) error {
	credencialID, err := idParam(c, "credencialId")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}
	rolID, err := idParam(c, "rolId")
	if err != nil {
		return c.String(http.StatusBadRequest, "ID inválido")
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Credenciales.AsignarRol(ctx, credencialID, rolID); err != nil {
		return plainError(c, err)
	}
	return c.String(http.StatusOK, "Rol asignado a la credencial exitosamente")
}
