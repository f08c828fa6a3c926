package gym

type Instructor struct {
	ID        int     `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Email     string  `db:"email" json:"email"`
	Specialty *string `db:"specialty" json:"specialty,omitempty"`
}

type Location struct {
	ID       int     `db:"id" json:"id"`
	GymName  string  `db:"gym_name" json:"gym_name"`
	Address  *string `db:"address" json:"address,omitempty"`
	Capacity *int    `db:"capacity" json:"capacity,omitempty"`
}

type CreateInstructorRequest struct {
	Name      string  `json:"name" binding:"required,max=100"`
	Email     string  `json:"email" binding:"required,email,max=100"`
	Specialty *string `json:"specialty" binding:"omitempty,max=100"`
}

type CreateLocationRequest struct {
	GymName  string  `json:"gym_name" binding:"required,max=100"`
	Address  *string `json:"address" binding:"omitempty,max=200"`
	Capacity *int    `json:"capacity" binding:"omitempty,min=0"`
}
