package model

// Rol represents a row in the `rol` table. A rol is a named group
// membership attached to a credencial (e.g. "Capitán", "Operador").
//
// Fields:
//  ID     – primary key, assigned by the database on insert.
//  Nombre – role name, required, at most 50 characters.
type Rol struct {
	ID     int64  `json:"id"`     // rol.id
	Nombre string `json:"nombre"` // rol.nombre
}

// RolUpdate carries the fields accepted by PUT /roles/{id}. The name is
// mandatory on update; there is nothing else to change on a rol.
type RolUpdate struct {
	Nombre string `json:"nombre"`
}
