// Package repository contains the data access layer, separated from HTTP
// handlers and domain services. One repository per entity, each exposing
// list, lookup, existence, save (insert or update by primary key) and
// delete operations over a *sql.DB. This file defines the sentinel errors
// shared by all repositories so that higher layers can distinguish failure
// scenarios without inspecting driver-specific error values.
package repository

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when a lookup by id (or correo) matches no row.
var ErrNotFound = errors.New("registro no encontrado")

// ErrDuplicate is returned when an insert or update violates a unique key
// (correo, run or telefono). Services translate it into a conflict.
var ErrDuplicate = errors.New("clave duplicada")

// isDuplicate reports whether err is a MySQL duplicate-entry error.
// MySQL signals unique-key violations with error code 1062.
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "1062")
}
