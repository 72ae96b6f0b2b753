package request

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginRequestMasksPassword(t *testing.T) {
	expectedMap := map[string]string{"phone": "09121234567", "password": "***"}
	expected, _ := json.Marshal(expectedMap)
	loginReq := LoginRequest{Phone: "09121234567", Password: "hunter2hunter2"}

	actual, _ := json.Marshal(loginReq)

	assert.JSONEq(t, string(expected), string(actual))
	assert.EqualValues(t, "hunter2hunter2", loginReq.Password)
}

func TestSignupRequestMasksPassword(t *testing.T) {
	expectedMap := map[string]string{"name": "Sara", "phone": "09121234567", "password": "***"}
	expected, _ := json.Marshal(expectedMap)
	signupReq := SignupRequest{Name: "Sara", Phone: "09121234567", Password: "hunter2hunter2"}

	actual, _ := json.Marshal(signupReq)

	assert.JSONEq(t, string(expected), string(actual))
	assert.EqualValues(t, "hunter2hunter2", signupReq.Password)
}
