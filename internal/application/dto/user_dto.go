package dto

// LoginRequest entrada de login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// UserResponse saída de um usuário (sem hash de senha).
type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

// LoginResponse token JWT + usuário autenticado.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserIDResponse resposta do endpoint de resolução de id por email,
// usado pelo cliente para o usuário operador padrão.
type UserIDResponse struct {
	ID string `json:"id"`
}
