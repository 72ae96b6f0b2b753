package request

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

type LoginRequest struct {
	Phone    string `validate:"required" json:"phone"`
	Password string `validate:"required" json:"password"`
}

func (l LoginRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("phone", l.Phone).Str("password", "***")
}

func (l LoginRequest) MarshalJSON() ([]byte, error) {
	l.Password = "***"
	type L LoginRequest
	return json.Marshal(L(l))
}

type SignupRequest struct {
	Name     string `validate:"required" json:"name"`
	Phone    string `validate:"required" json:"phone"`
	Password string `validate:"required,min=8" json:"password"`
}

func (s SignupRequest) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", s.Name).Str("phone", s.Phone).Str("password", "***")
}

func (s SignupRequest) MarshalJSON() ([]byte, error) {
	s.Password = "***"
	type S SignupRequest
	return json.Marshal(S(s))
}
