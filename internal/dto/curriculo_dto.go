package dto

// Parent references are bound as uint; an empty <select> binds as 0 and
// fails the required rule.

type NivelForm struct {
	Nombre string `form:"nombre" validate:"required,max=100"`
}

type GradoForm struct {
	NivelID uint   `form:"nivel"  validate:"required"`
	Nombre  string `form:"nombre" validate:"required,max=100"`
}

type AreaForm struct {
	Nombre      string `form:"nombre"      validate:"required,max=100"`
	Obligatoria bool   `form:"obligatoria"`
}

type AsignaturaForm struct {
	Nombre  string `form:"nombre" validate:"required,max=100"`
	GradoID uint   `form:"grado"  validate:"required"`
	AreaID  uint   `form:"area"   validate:"required"`
}

type TemaForm struct {
	Nombre       string `form:"nombre"     validate:"required,max=150"`
	AsignaturaID uint   `form:"asignatura" validate:"required"`
}

type LogroForm struct {
	Descripcion  string `form:"descripcion" validate:"required,max=1000"`
	AsignaturaID uint   `form:"asignatura"  validate:"required"`
}

// ─── Plan de estudios (PDF export) ───────────────────────────────────────────

type PlanEstudios struct {
	Niveles []PlanNivel
}

type PlanNivel struct {
	Nombre string
	Grados []PlanGrado
}

type PlanGrado struct {
	Nombre      string
	Asignaturas []PlanAsignatura
}

type PlanAsignatura struct {
	Nombre      string
	Area        string
	Obligatoria bool
	Temas       []string
	Logros      []string
}
