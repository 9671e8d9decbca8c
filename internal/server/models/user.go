// Package models defines the records held by the resource store. JSON field
// names follow the public REST API.
package models

import "fmt"

// User is a registered account. Users have no identifier and are never
// updated or removed. IsAdmin is stored and echoed but not enforced anywhere.
type User struct {
	Name     string `json:"nombre"`
	Surname  string `json:"apellido"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"admin"`
}

// Summary renders the public one-line projection "<name> <surname> - <email>".
func (u User) Summary() string {
	return fmt.Sprintf("%s %s - %s", u.Name, u.Surname, u.Email)
}
