package fakestore

import (
	"crypto/subtle"
	"sort"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// account is a user profile together with its password.
type account struct {
	user     models.User
	password string
}

// Catalog is the set of accounts the stand-in knows.
type Catalog struct {
	mu     sync.RWMutex
	byID   map[int]account
	byName map[string]int
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byID: map[int]account{}, byName: map[string]int{}}
}

// SeedCatalog returns a catalog holding the demo upstream's first accounts.
func SeedCatalog() *Catalog {
	c := NewCatalog()
	for _, a := range seedAccounts {
		c.Add(a.user, a.password)
	}
	return c
}

// Add registers or replaces an account.
func (c *Catalog) Add(u models.User, password string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID[u.ID] = account{user: u, password: password}
	c.byName[u.Username] = u.ID
}

// Authenticate returns the user whose credentials match.
func (c *Catalog) Authenticate(username, password string) (*models.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	id, ok := c.byName[username]
	if !ok {
		return nil, common.ErrorNotFound
	}
	a := c.byID[id]
	if subtle.ConstantTimeCompare([]byte(a.password), []byte(password)) != 1 {
		return nil, common.ErrorNotFound
	}
	u := a.user
	return &u, nil
}

// User returns the profile with the given id.
func (c *Catalog) User(id int) (*models.User, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	a, ok := c.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := a.user
	return &u, nil
}

// Users returns every profile ordered by id.
func (c *Catalog) Users() []models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]models.User, 0, len(c.byID))
	for _, a := range c.byID {
		out = append(out, a.user)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var seedAccounts = []account{
	{
		password: "m38rmF$",
		user: models.User{
			ID:       1,
			Username: "johnd",
			Email:    "john@gmail.com",
			Name:     models.Name{Firstname: "john", Lastname: "doe"},
			Phone:    "1-570-236-7033",
			Address: models.Address{
				City: "kilcoole", Street: "new road", Number: 7682, Zipcode: "12926-3874",
				Geolocation: models.Geolocation{Lat: "-37.3159", Long: "81.1496"},
			},
		},
	},
	{
		password: "83r5^_",
		user: models.User{
			ID:       2,
			Username: "mor_2314",
			Email:    "morrison@gmail.com",
			Name:     models.Name{Firstname: "david", Lastname: "morrison"},
			Phone:    "1-570-236-7033",
			Address: models.Address{
				City: "kilcoole", Street: "Lovers Ln", Number: 7267, Zipcode: "12926-3874",
				Geolocation: models.Geolocation{Lat: "-37.3159", Long: "81.1496"},
			},
		},
	},
	{
		password: "kev02937@",
		user: models.User{
			ID:       3,
			Username: "kevinryan",
			Email:    "kevin@gmail.com",
			Name:     models.Name{Firstname: "kevin", Lastname: "ryan"},
			Phone:    "1-567-094-1345",
			Address: models.Address{
				City: "Cullman", Street: "Frances Ct", Number: 86, Zipcode: "29567-1452",
				Geolocation: models.Geolocation{Lat: "40.3467", Long: "-30.1310"},
			},
		},
	},
}
