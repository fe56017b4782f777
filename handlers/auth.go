// handlers/auth.go
package handlers

import (
	"errors"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"p9e.in/treeflow/middleware"
	"p9e.in/treeflow/models"
	"p9e.in/treeflow/pkg/apperr"
	"p9e.in/treeflow/pkg/form"
)

var registerRules = form.Rules{
	"firstName": "required,max=100",
	"lastName":  "required,max=100",
	"cuit":      "required,max=20",
	"email":     "required,email,max=150",
	"password":  "required",
	"role":      "required,max=50",
}

var loginRules = form.Rules{
	"email":    "required",
	"password": "required",
}

type loginResp struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Role    string `json:"role"`
}

type currentUserResp struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Register creates an unapproved account.
// @Summary      Register a user
// @Description  The account cannot log in until an administrator approves it.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      201  {object}  Response
// @Failure      400  {object}  apperr.Body
// @Failure      409  {object}  apperr.Body
// @Router       /api/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	v, err := parseForm(r, registerRules)
	if err != nil {
		respondError(w, r, err)
		return
	}
	db := h.db.WithContext(r.Context())
	email := strings.ToLower(strings.TrimSpace(v["email"]))

	var taken int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&taken).Error; err != nil {
		respondError(w, r, apperr.Database("Error al registrar el usuario", err))
		return
	}
	if taken > 0 {
		respondError(w, r, apperr.Conflict("El correo ya está registrado."))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(v["password"]), bcrypt.DefaultCost)
	if err != nil {
		respondError(w, r, apperr.Database("Error al registrar el usuario", err))
		return
	}
	u := models.User{
		FirstName: strings.TrimSpace(v["firstName"]),
		LastName:  strings.TrimSpace(v["lastName"]),
		Cuit:      strings.TrimSpace(v["cuit"]),
		Email:     email,
		Password:  string(hash),
		Role:      strings.ToLower(strings.TrimSpace(v["role"])),
	}
	if err := db.Create(&u).Error; err != nil {
		respondError(w, r, apperr.FromDB("Error al registrar el usuario", err))
		return
	}
	writeJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Usuario registrado correctamente. Espera la aprobación del administrador.",
	})
}

// Login exchanges approved credentials for a bearer token.
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Success      200  {object}  loginResp
// @Failure      401  {object}  apperr.Body
// @Router       /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	v, err := parseForm(r, loginRules)
	if err != nil {
		respondError(w, r, err)
		return
	}

	var u models.User
	err = h.db.WithContext(r.Context()).
		Where("email = ? AND aprobado = ?", strings.ToLower(strings.TrimSpace(v["email"])), true).
		First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		respondError(w, r, apperr.Unauthorized("Usuario no encontrado o no aprobado."))
		return
	}
	if err != nil {
		respondError(w, r, apperr.Database("Error al iniciar sesión", err))
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(v["password"])); err != nil {
		respondError(w, r, apperr.Unauthorized("Credenciales incorrectas."))
		return
	}

	token, err := h.auth.GenerateToken(u.ID, u.Role)
	if err != nil {
		respondError(w, r, apperr.Database("Error al iniciar sesión", err))
		return
	}
	writeJSON(w, http.StatusOK, loginResp{Message: "Login exitoso", Token: token, Role: u.Role})
}

// RequestReset acknowledges a password reset for a known address. Sending
// the link is handled outside this service.
func (h *Handler) RequestReset(w http.ResponseWriter, r *http.Request) {
	v, err := parseForm(r, form.Rules{"email": "required"})
	if err != nil {
		respondError(w, r, err)
		return
	}

	var n int64
	err = h.db.WithContext(r.Context()).Model(&models.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(v["email"]))).
		Count(&n).Error
	if err != nil {
		respondError(w, r, apperr.Database("Error al solicitar la recuperación de contraseña", err))
		return
	}
	if n == 0 {
		respondError(w, r, apperr.NotFound("Correo no encontrado."))
		return
	}
	respondOK(w, "Se ha enviado un enlace de recuperación a tu correo.")
}

// CurrentUser returns the account behind the bearer token.
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  currentUserResp
// @Failure      401  {object}  apperr.Body
// @Failure      404  {object}  apperr.Body
// @Router       /api/auth/user [get]
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := h.db.WithContext(r.Context()).First(&u, middleware.GetUserID(r)).Error; err != nil {
		respondError(w, r, findError("Usuario no encontrado", err))
		return
	}
	writeJSON(w, http.StatusOK, currentUserResp{ID: u.ID, Name: u.FullName(), Role: u.Role})
}
