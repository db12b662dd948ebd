package model

import "time"

// Usuario stores registered accounts. Correo is the login credential.
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Correo       string `gorm:"type:varchar(254);uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	RolID        uint   `gorm:"not null;index"`
	Rol          Rol    `gorm:"foreignKey:RolID;constraint:OnDelete:RESTRICT"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Usuario) TableName() string { return "usuarios" }
