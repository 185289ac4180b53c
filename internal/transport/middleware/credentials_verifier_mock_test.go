package middleware

import (
	"sync"
)

var _ credentialsVerifier = &credentialsVerifierMock{}

type credentialsVerifierMock struct {
	VerifyFunc func(user string, password string) bool

	calls struct {
		Verify []struct {
			User     string
			Password string
		}
	}
	lockVerify sync.RWMutex
}

func (mock *credentialsVerifierMock) Verify(user string, password string) bool {
	if mock.VerifyFunc == nil {
		panic("credentialsVerifierMock.VerifyFunc: method is nil but credentialsVerifier.Verify was just called")
	}
	callInfo := struct {
		User     string
		Password string
	}{User: user, Password: password}
	mock.lockVerify.Lock()
	mock.calls.Verify = append(mock.calls.Verify, callInfo)
	mock.lockVerify.Unlock()
	return mock.VerifyFunc(user, password)
}

func (mock *credentialsVerifierMock) VerifyCalls() []struct {
	User     string
	Password string
} {
	mock.lockVerify.RLock()
	calls := mock.calls.Verify
	mock.lockVerify.RUnlock()
	return calls
}
