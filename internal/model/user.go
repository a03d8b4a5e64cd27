package model

import (
	"encoding/json"
	"strings"
)

const (
	RoleAdmin = "admin"

	// UserLevelRegular is the level the backend expects for accounts created from the console
	UserLevelRegular = 2
)

// User represents an end-user account as returned by UserAPI.php
type User struct {
	ID       FlexInt `json:"id"`
	Name     string  `json:"nama_user"`
	Email    string  `json:"email"`
	Password string  `json:"-"` // Never rendered back to the browser
	Address  string  `json:"alamat"`
	Phone    string  `json:"nomor_telp"`
	Level    FlexInt `json:"level"`
	No       int     `json:"-"`
}

// UnmarshalJSON accepts both "id" and "id_user", the backend is not consistent about it.
func (u *User) UnmarshalJSON(data []byte) error {
	type alias User
	aux := struct {
		*alias
		IDUser FlexInt `json:"id_user"`
	}{alias: (*alias)(u)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if u.ID == 0 {
		u.ID = aux.IDUser
	}
	return nil
}

// UserPayload is the JSON body sent to UserAPI.php
type UserPayload struct {
	ID       *int64 `json:"id_user,omitempty"` // Only set on update
	Name     string `json:"nama_user"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Address  string `json:"alamat"`
	Phone    string `json:"nomor_telp"`
	Level    int    `json:"level"`
	Register bool   `json:"register,omitempty"` // Only set on create
}

// DeleteUserRequest is the body of DELETE UserAPI.php
type DeleteUserRequest struct {
	ID int64 `json:"id_user"`
}

// UserForm is bound from the tambah/edit user forms
type UserForm struct {
	Name     string `form:"nama_user" label:"Nama User" binding:"required"`
	Email    string `form:"email" label:"Email" binding:"required,email"`
	Password string `form:"password" label:"Password" binding:"required,min=8"`
	Address  string `form:"alamat" label:"Alamat" binding:"required"`
	Phone    string `form:"nomor_telp" label:"Nomor Telepon" binding:"required"`
}

// UserFormFrom prefills the edit screen. The password stays blank.
func UserFormFrom(u *User) UserForm {
	return UserForm{
		Name:    u.Name,
		Email:   u.Email,
		Address: u.Address,
		Phone:   u.Phone,
	}
}

func (f UserForm) Payload() *UserPayload {
	return &UserPayload{
		Name:     strings.TrimSpace(f.Name),
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
		Address:  strings.TrimSpace(f.Address),
		Phone:    strings.TrimSpace(f.Phone),
		Level:    UserLevelRegular,
	}
}
