package domain

import "time"

type Role string

const (
	RoleGuest Role = "guest"
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

type StaffMember struct {
	ID       int64
	UserID   int64
	Name     string
	Email    string
	Position string
	Salary   float64
	HireDate time.Time
}
