// Package models defines client-side data models of the storefront app.
package models

import "unicode"

// User is the profile record returned by the upstream service and cached
// in the local store. JSON tags follow the upstream wire format.
type User struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Name     Name    `json:"name"`
	Phone    string  `json:"phone,omitempty"`
	Address  Address `json:"address"`
}

type Name struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

type Address struct {
	City        string      `json:"city"`
	Street      string      `json:"street"`
	Number      int         `json:"number,omitempty"`
	Zipcode     string      `json:"zipcode"`
	Geolocation Geolocation `json:"geolocation"`
}

// Geolocation coordinates are strings upstream.
type Geolocation struct {
	Lat  string `json:"lat"`
	Long string `json:"long"`
}

// FullName joins first and last name with a single space, skipping empty parts.
func (u *User) FullName() string {
	switch {
	case u.Name.Firstname == "":
		return u.Name.Lastname
	case u.Name.Lastname == "":
		return u.Name.Firstname
	default:
		return u.Name.Firstname + " " + u.Name.Lastname
	}
}

// Initial is the upper-cased first letter of the first name, falling back
// to the username. Empty when neither is set.
func (u *User) Initial() string {
	for _, s := range []string{u.Name.Firstname, u.Username} {
		for _, r := range s {
			return string(unicode.ToUpper(r))
		}
	}
	return ""
}

// Clone returns a deep copy; nil stays nil.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
