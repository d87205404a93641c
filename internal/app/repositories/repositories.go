package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances, one per collection.
type Repositories struct {
	UserRepository      *UserRepository
	CollegeRepository   *CollegeRepository
	SubjectRepository   *SubjectRepository
	ResearchRepository  *ResearchRepository
	AdmissionRepository *AdmissionRepository
}

// NewRepositories initializes all repositories over the shared pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db),
		CollegeRepository:   NewCollegeRepository(db),
		SubjectRepository:   NewSubjectRepository(db),
		ResearchRepository:  NewResearchRepository(db),
		AdmissionRepository: NewAdmissionRepository(db),
	}
}
