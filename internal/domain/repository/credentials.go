package repository

// Credentials es la credencial explícita del usuario que origina la llamada.
// Se pasa a cada adaptador que habla con la API remota; ningún adaptador la lee
// de estado global.
type Credentials struct {
	Token string // Bearer token emitido por la API remota
}

// Anonymous indica que no hay token (rutas públicas como login o registro).
func (c Credentials) Anonymous() bool { return c.Token == "" }
