package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateUserMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type JobAssignedMailData struct {
	FullName string `json:"fullName"`
	Role     string `json:"role"`
	Date     string `json:"date"`
	JobType  string `json:"jobType"`
	Brand    string `json:"brand"`
	Location string `json:"location"`
}
