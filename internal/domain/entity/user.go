package entity

// User es el usuario que devuelve la API remota al autenticar.
type User struct {
	ID    string
	Email string
	Name  string
	Role  string
}
