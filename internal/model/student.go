package model

import "time"

// Student represents a student account.
type Student struct {
	ID           int       `json:"id"`
	NetID        string    `json:"net_id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// StudentLoginRequest is the payload for student authentication.
type StudentLoginRequest struct {
	NetID    string `json:"net_id" binding:"required,min=3,max=30"`
	Password string `json:"password" binding:"required,min=4,max=128"`
}

// StudentLoginResponse is returned after successful student login.
type StudentLoginResponse struct {
	Token   string  `json:"token"`
	Student Student `json:"student"`
}

// RegisterStudentRequest is the payload for creating a new student account.
type RegisterStudentRequest struct {
	NetID    string `json:"net_id" binding:"required,min=3,max=30"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}
