package entity

// Item representa un modelo de reloj del catálogo con su stock actual.
// Code es la clave primaria; Quantity nunca es negativa (las operaciones
// que la dejarían bajo cero se rechazan, no se recortan).
type Item struct {
	Code     string
	Quantity int
}
