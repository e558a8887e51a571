package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SAFE-Rescue/api-administrador/internal/model"
)

// RolRepository is the persistence contract for roles. The MySQL
// implementation below satisfies it; tests may substitute an in-memory
// fake.
type RolRepository interface {
	FindAll(ctx context.Context) ([]model.Rol, error)
	FindByID(ctx context.Context, id int64) (*model.Rol, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Save(ctx context.Context, rol *model.Rol) error
	DeleteByID(ctx context.Context, id int64) error
}

// RolRepo encapsulates all database queries related to roles.
type RolRepo struct {
	db *sql.DB
}

// NewRolRepo constructs a RolRepo with the provided DB handle.
func NewRolRepo(db *sql.DB) *RolRepo { return &RolRepo{db: db} }

// FindAll returns every rol ordered by id. Callers must not depend on the
// ordering.
func (r *RolRepo) FindAll(ctx context.Context) ([]model.Rol, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, nombre FROM rol ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Rol
	for rows.Next() {
		var rol model.Rol
		if err := rows.Scan(&rol.ID, &rol.Nombre); err != nil {
			return nil, err
		}
		out = append(out, rol)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a rol by id. Returns ErrNotFound when no row matches.
func (r *RolRepo) FindByID(ctx context.Context, id int64) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.QueryRowContext(ctx,
		"SELECT id, nombre FROM rol WHERE id = ?", id).Scan(&rol.ID, &rol.Nombre)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &rol, nil
}

// ExistsByID reports whether a rol with the given id exists.
func (r *RolRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM rol WHERE id = ?)", id).Scan(&exists)
	return exists, err
}

// Save inserts the rol when its ID is zero and fills in the generated key;
// otherwise it updates the existing row.
func (r *RolRepo) Save(ctx context.Context, rol *model.Rol) error {
	if rol.ID == 0 {
		res, err := r.db.ExecContext(ctx,
			"INSERT INTO rol (nombre) VALUES (?)", rol.Nombre)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		rol.ID = id
		return nil
	}
	_, err := r.db.ExecContext(ctx,
		"UPDATE rol SET nombre = ? WHERE id = ?", rol.Nombre, rol.ID)
	return err
}

// DeleteByID removes the rol row. Returns ErrNotFound when nothing was
// deleted.
func (r *RolRepo) DeleteByID(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM rol WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
