package database

import (
	"context"
	"database/sql"
)

// Column lengths mirror the validation bounds enforced by the services:
// nombre 50, correo 80, contrasenia 16, dv 1. Correo, run and telefono
// carry unique keys so concurrent writers race at the store, not in Go.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS rol (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nombre VARCHAR(50) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS credencial (
		id INT AUTO_INCREMENT PRIMARY KEY,
		correo VARCHAR(80) NOT NULL,
		contrasenia VARCHAR(16) NOT NULL,
		intentos_fallidos INT NOT NULL DEFAULT 0,
		activo BOOLEAN NOT NULL DEFAULT TRUE,
		rol_id INT NULL,
		UNIQUE KEY uq_credencial_correo (correo),
		CONSTRAINT fk_credencial_rol FOREIGN KEY (rol_id) REFERENCES rol (id)
	)`,
	`CREATE TABLE IF NOT EXISTS bombero (
		id INT AUTO_INCREMENT PRIMARY KEY,
		run INT NOT NULL,
		dv VARCHAR(1) NOT NULL,
		nombre VARCHAR(50) NOT NULL,
		a_paterno VARCHAR(50) NOT NULL,
		a_materno VARCHAR(50) NOT NULL,
		fecha_registro DATETIME NOT NULL,
		telefono INT NOT NULL,
		credenciales_id INT NULL,
		UNIQUE KEY uq_bombero_run (run),
		UNIQUE KEY uq_bombero_telefono (telefono),
		CONSTRAINT fk_bombero_credencial FOREIGN KEY (credenciales_id) REFERENCES credencial (id)
	)`,
}

// Migrate creates the three tables when they do not exist yet. Statements
// are ordered so foreign keys always reference an existing table.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
