package model

// LoginSuccessMessage is the exact message AdminLoginAPI.php returns for a valid login
const LoginSuccessMessage = "Login successful"

// Admin is the authenticated console operator
type Admin struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// LoginForm is bound from the login screen
type LoginForm struct {
	Email    string `form:"email" label:"Email" binding:"required,email"`
	Password string `form:"password" label:"Password" binding:"required"`
}

// AdminLoginRequest is the body expected by AdminLoginAPI.php/login
type AdminLoginRequest struct {
	Email    string `json:"email_admin"`
	Password string `json:"password_admin"`
}

// AdminLoginResponse is the backend's login reply
type AdminLoginResponse struct {
	Message string `json:"message"`
}
