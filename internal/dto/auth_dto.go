package dto

// ─── Form DTOs ───────────────────────────────────────────────────────────────

type RegistroForm struct {
	Correo            string `form:"correo"             validate:"required,email,max=254"`
	RolID             uint   `form:"rol"                validate:"required"`
	Password          string `form:"password"           validate:"required,pwdminlen,pwdmayus,pwdminus,pwddigito,pwdsimbolo"`
	ConfirmarPassword string `form:"confirmar_password" validate:"required,eqfield=Password"`
}

type LoginForm struct {
	Correo   string `form:"correo"   validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// ─── Results ─────────────────────────────────────────────────────────────────

// LoginResult is returned by a successful login: the signed session token to
// set as cookie and the panel path the user's role lands on.
type LoginResult struct {
	Token   string
	Destino string
	Correo  string
}
