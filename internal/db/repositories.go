package db

import "gorm.io/gorm"

type Repositories struct {
	Users    *UserRepository
	Cycles   *CycleRepository
	Activity *ActivityRepository
	BMI      *BMIRepository
	Blog     *BlogRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Cycles:   NewCycleRepository(database),
		Activity: NewActivityRepository(database),
		BMI:      NewBMIRepository(database),
		Blog:     NewBlogRepository(database),
	}
}
