package supabase

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error is a failure reported by the PostgREST endpoint.
type Error struct {
	StatusCode int    `json:"-"`
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details"`
	Hint       string `json:"hint"`
}

func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("supabase: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("supabase: %d: %s", e.StatusCode, e.Message)
}

func decodeError(status int, body []byte) error {
	e := &Error{StatusCode: status}
	if err := json.Unmarshal(body, e); err != nil || e.Message == "" {
		// Gateway errors come back as {"error": "..."} or plain text.
		var alt struct {
			Error string `json:"error"`
			Msg   string `json:"msg"`
		}
		if json.Unmarshal(body, &alt) == nil && (alt.Error != "" || alt.Msg != "") {
			e.Message = alt.Error
			if e.Message == "" {
				e.Message = alt.Msg
			}
		} else {
			e.Message = http.StatusText(status)
		}
	}
	e.StatusCode = status
	return e
}
