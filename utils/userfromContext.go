package utils

import (
	"net/http"

	"mobitrack/globals"
)

func GetUserIDFromRequest(r *http.Request) string {
	ctx := r.Context()
	requestingUserID, ok := ctx.Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}

func GetRoleFromRequest(r *http.Request) string {
	role, ok := r.Context().Value(globals.RoleKey).(string)
	if !ok {
		return ""
	}
	return role
}

func GetUsernameFromRequest(r *http.Request) string {
	username, ok := r.Context().Value(globals.UsernameKey).(string)
	if !ok {
		return ""
	}
	return username
}

func IsAdmin(r *http.Request) bool {
	return GetRoleFromRequest(r) == "admin"
}
