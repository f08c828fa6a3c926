package class

import "fitclass/internal/gym"

type Class struct {
	ID            int    `db:"id" json:"id"`
	ClassName     string `db:"class_name" json:"class_name"`
	Description   string `db:"description" json:"description"`
	ScheduledDate string `db:"scheduled_date" json:"scheduled_date"`
	StartTime     string `db:"start_time" json:"start_time"`
	Duration      int    `db:"duration" json:"duration"`
	InstructorID  int    `db:"instructor_id" json:"instructor_id"`
	LocationID    int    `db:"location_id" json:"location_id"`
}

// ClassDetails is a class joined with its instructor and location.
type ClassDetails struct {
	Class
	Instructor gym.Instructor `db:"instructor" json:"instructor"`
	Location   gym.Location   `db:"location" json:"location"`
}

// ClassRequest is the body of create and update calls. Form field names for
// the foreign keys are "instructor" and "location".
type ClassRequest struct {
	ClassName     string `json:"class_name" form:"class_name" binding:"required,max=100"`
	Description   string `json:"description" form:"description" binding:"max=300"`
	ScheduledDate string `json:"scheduled_date" form:"scheduled_date" binding:"required,datetime=2006-01-02"`
	StartTime     string `json:"start_time" form:"start_time" binding:"required,datetime=15:04,len=5"`
	Duration      int    `json:"duration" form:"duration" binding:"required,min=1"`
	InstructorID  int    `json:"instructor_id" form:"instructor" binding:"required,min=1"`
	LocationID    int    `json:"location_id" form:"location" binding:"required,min=1"`
}

type DeleteClassResponse struct {
	Message string `json:"message" example:"Class deleted successfully"`
}
