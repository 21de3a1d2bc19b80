package repositories

import (
	"github.com/yigit/campusregistry/internal/app/models"
)

// ClubRepository holds the clubs table
type ClubRepository struct {
	table[models.Club]
}

// NewClubRepository creates an empty club table
func NewClubRepository() *ClubRepository {
	return &ClubRepository{table: newTable[models.Club]()}
}

// Save stores club under its ID and returns the row it replaced, if any
func (r *ClubRepository) Save(club *models.Club) *models.Club {
	return r.put(club.ID, club)
}

// FindByID returns the stored club. The pointer is live registry state.
func (r *ClubRepository) FindByID(id int64) (*models.Club, bool) {
	return r.get(id)
}

// Delete removes the club and returns it, or nil if it was not stored
func (r *ClubRepository) Delete(id int64) *models.Club {
	return r.remove(id)
}

// Exists reports whether a club with id is stored
func (r *ClubRepository) Exists(id int64) bool {
	_, ok := r.get(id)
	return ok
}

// Count returns the number of stored clubs
func (r *ClubRepository) Count() int {
	return r.count()
}

// FindAll returns every stored club ordered by ID
func (r *ClubRepository) FindAll() []*models.Club {
	return r.all()
}
