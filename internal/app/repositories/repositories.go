package repositories

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	ClassRepository   *ClassRepository
	CourseRepository  *CourseRepository
	ClubRepository    *ClubRepository
}

// NewRepositories initializes all repositories
func NewRepositories() *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(),
		ClassRepository:   NewClassRepository(),
		CourseRepository:  NewCourseRepository(),
		ClubRepository:    NewClubRepository(),
	}
}
