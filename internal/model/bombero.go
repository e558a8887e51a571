package model

import "time"

// Bombero represents a row in the `bombero` table, the primary record of
// the service. Run is the numeric body of the Chilean RUT and Dv its
// verifier digit; together with the telefono they are unique across the
// table. Every bombero references exactly one credencial.
//
// Fields:
//  ID            – primary key, assigned by the database on insert.
//  Run           – RUT body, positive, at most 8 decimal digits, unique.
//  Dv            – verifier digit, exactly one character, "0".."9" or "K".
//  Nombre        – first name, required, at most 50 characters.
//  APaterno      – paternal last name, required, at most 50 characters.
//  AMaterno      – maternal last name, required, at most 50 characters.
//  FechaRegistro – registration timestamp, never zero.
//  Telefono      – phone number, positive, at most 9 decimal digits, unique.
//  Credencial    – the credencial attached to this bombero (bombero.credenciales_id).
type Bombero struct {
	ID            int64       `json:"id"`             // bombero.id
	Run           int         `json:"run"`            // bombero.run
	Dv            string      `json:"dv"`             // bombero.dv
	Nombre        string      `json:"nombre"`         // bombero.nombre
	APaterno      string      `json:"a_paterno"`      // bombero.a_paterno
	AMaterno      string      `json:"a_materno"`      // bombero.a_materno
	FechaRegistro time.Time   `json:"fecha_registro"` // bombero.fecha_registro
	Telefono      int         `json:"telefono"`       // bombero.telefono
	Credencial    *Credencial `json:"credencial"`     // joined via bombero.credenciales_id
}

// BomberoUpdate carries the fields accepted by PUT /bomberos/{id}. Every
// field is optional; nil pointers leave the stored value untouched.
type BomberoUpdate struct {
	Run           *int       `json:"run"`
	Dv            *string    `json:"dv"`
	Nombre        *string    `json:"nombre"`
	APaterno      *string    `json:"a_paterno"`
	AMaterno      *string    `json:"a_materno"`
	FechaRegistro *time.Time `json:"fecha_registro"`
	Telefono      *int       `json:"telefono"`
}
