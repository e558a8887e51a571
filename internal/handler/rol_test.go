package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAFE-Rescue/api-administrador/internal/repository"
	"github.com/SAFE-Rescue/api-administrador/internal/service"
)

func newRolHandler(t *testing.T) (*RolHandler, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	svc := service.NewRolService(repository.NewRolRepo(db))
	return NewRolHandler(svc), mock
}

func doJSON(t *testing.T, h echo.HandlerFunc, method, path, body string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	require.NoError(t, h(c))
	return rec
}

func TestRolListarEmptyReturns204(t *testing.T) {
	h, mock := newRolHandler(t)
	mock.ExpectQuery("SELECT id, nombre FROM rol").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}))

	rec := doJSON(t, h.Listar, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestRolListarReturnsJSON(t *testing.T) {
	h, mock := newRolHandler(t)
	mock.ExpectQuery("SELECT id, nombre FROM rol").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}).AddRow(1, "Capitán"))

	rec := doJSON(t, h.Listar, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nombre":"Capitán"`)
}

func TestRolBuscarNotFound(t *testing.T) {
	h, mock := newRolHandler(t)
	mock.ExpectQuery("SELECT id, nombre FROM rol WHERE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}))

	rec := doJSON(t, h.Buscar, http.MethodGet, "/", "", "id", "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Rol no encontrado", rec.Body.String())
}

func TestRolAgregar(t *testing.T) {
	h, mock := newRolHandler(t)
	mock.ExpectExec("INSERT INTO rol").
		WithArgs("Capitán").
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := doJSON(t, h.Agregar, http.MethodPost, "/", `{"nombre":"Capitán"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Rol creado con éxito.", rec.Body.String())
}

func TestRolAgregarInvalidNombre(t *testing.T) {
	h, _ := newRolHandler(t)

	rec := doJSON(t, h.Agregar, http.MethodPost, "/", `{"nombre":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "El nombre del rol es requerido", rec.Body.String())
}

func TestRolActualizarNotFound(t *testing.T) {
	h, mock := newRolHandler(t)
	mock.ExpectQuery("SELECT id, nombre FROM rol WHERE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nombre"}))

	rec := doJSON(t, h.Actualizar, http.MethodPut, "/", `{"nombre":"X"}`, "id", "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Rol no encontrada", rec.Body.String())
}

func TestRolEliminarNotFound(t *testing.T) {
	h, mock := newRolHandler(t)
	mock.ExpectQuery("SELECT EXISTS").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	rec := doJSON(t, h.Eliminar, http.MethodDelete, "/", "", "id", "99")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Rol no encontrada", rec.Body.String())
}

func TestRolBuscarBadID(t *testing.T) {
	h, _ := newRolHandler(t)

	rec := doJSON(t, h.Buscar, http.MethodGet, "/", "", "id", "abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
