package report

// Row is one class in a date-range report.
type Row struct {
	ClassName      string `db:"class_name" json:"class_name"`
	ScheduledDate  string `db:"scheduled_date" json:"scheduled_date"`
	InstructorName string `db:"instructor_name" json:"instructor_name"`
	GymName        string `db:"gym_name" json:"gym_name"`
}

// Request bounds are inclusive YYYY-MM-DD dates.
type Request struct {
	FromDate string `json:"from_date" form:"from_date" binding:"required,datetime=2006-01-02"`
	ToDate   string `json:"to_date" form:"to_date" binding:"required,datetime=2006-01-02"`
}

type Response struct {
	FromDate string `json:"from_date" example:"2024-06-01"`
	ToDate   string `json:"to_date" example:"2024-06-30"`
	Count    int    `json:"count" example:"1"`
	Rows     []Row  `json:"rows"`
	Message  string `json:"message,omitempty" example:"No classes found in the selected date range."`
}

const EmptyMessage = "No classes found in the selected date range."
