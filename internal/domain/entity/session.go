package entity

import "time"

// Session es la vista que la consola tiene del token emitido por la API remota.
// La consola no emite tokens; solo los inspecciona y los reenvía.
type Session struct {
	Subject   string
	Email     string
	Role      string
	Issuer    string
	ExpiresAt time.Time
	Verified  bool // true si la firma se validó con JWT_SECRET
}
