package model

import "time"

// Member represents a row in the `members` table. Names are unique;
// deleting a member also removes that member's weekly and monthly stat
// rows (done explicitly in the repository, inside one transaction).
type Member struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"-"`
}
