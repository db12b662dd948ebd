package model

import "time"

// NivelEducativo is the root of the curriculum hierarchy (e.g. "Básica Primaria").
type NivelEducativo struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"type:varchar(100);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NivelEducativo) TableName() string { return "niveles_educativos" }

// Grado belongs to a NivelEducativo.
type Grado struct {
	ID        uint           `gorm:"primaryKey"`
	Nombre    string         `gorm:"type:varchar(100);not null"`
	NivelID   uint           `gorm:"not null;index"`
	Nivel     NivelEducativo `gorm:"foreignKey:NivelID;constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Grado) TableName() string { return "grados" }

// Area groups subjects; Obligatoria marks the areas required by law.
type Area struct {
	ID          uint   `gorm:"primaryKey"`
	Nombre      string `gorm:"type:varchar(100);not null"`
	Obligatoria bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Area) TableName() string { return "areas" }

// Asignatura is taught in one Grado and classified under one Area.
type Asignatura struct {
	ID        uint   `gorm:"primaryKey"`
	Nombre    string `gorm:"type:varchar(100);not null"`
	GradoID   uint   `gorm:"not null;index"`
	Grado     Grado  `gorm:"foreignKey:GradoID;constraint:OnDelete:RESTRICT"`
	AreaID    uint   `gorm:"not null;index"`
	Area      Area   `gorm:"foreignKey:AreaID;constraint:OnDelete:RESTRICT"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Asignatura) TableName() string { return "asignaturas" }

type Tema struct {
	ID           uint       `gorm:"primaryKey"`
	Nombre       string     `gorm:"type:varchar(150);not null"`
	AsignaturaID uint       `gorm:"not null;index"`
	Asignatura   Asignatura `gorm:"foreignKey:AsignaturaID;constraint:OnDelete:RESTRICT"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Tema) TableName() string { return "temas" }

// Logro is an expected learning achievement of an Asignatura.
type Logro struct {
	ID           uint       `gorm:"primaryKey"`
	Descripcion  string     `gorm:"type:text;not null"`
	AsignaturaID uint       `gorm:"not null;index"`
	Asignatura   Asignatura `gorm:"foreignKey:AsignaturaID;constraint:OnDelete:RESTRICT"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Logro) TableName() string { return "logros" }

// Todos lists every model in migration order (parents first).
func Todos() []any {
	return []any{
		&Rol{}, &Usuario{},
		&NivelEducativo{}, &Grado{}, &Area{}, &Asignatura{}, &Tema{}, &Logro{},
	}
}
