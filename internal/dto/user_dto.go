package dto

import "github.com/drilledtools/backend/internal/models"

// UpsertUserRequest carries the profile fields a caller may set on login or
// signup. Role is deliberately absent.
type UpsertUserRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// UpsertUserResponse mirrors the original upsert contract: the stored record
// plus a freshly minted credential.
type UpsertUserResponse struct {
	Result *models.User `json:"result"`
	Token  string       `json:"token"`
}

type AdminProbeResponse struct {
	Admin bool `json:"admin"`
}
