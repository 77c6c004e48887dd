package net_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	perr "namejar/internal/platform/errors"
	pnet "namejar/internal/platform/net"
)

func TestOK_Envelope(t *testing.T) {
	status, w := pnet.OK([]string{"田中 太郎"}, "rid-1")

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, pnet.Wire{
		StatusCode: http.StatusOK,
		Status:     "OK",
		RequestID:  "rid-1",
		Data:       []string{"田中 太郎"},
	}, w)
}

func TestError_Envelope(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   perr.ErrorCode
		field  string
	}{
		{"nil is ok", nil, http.StatusOK, 0, ""},
		{"plain error is 500", errors.New("boom"), http.StatusInternalServerError, perr.ErrorCodeUnknown, ""},
		{"rate limited", perr.New(perr.ErrorCodeTooManyRequests, "slow down"), http.StatusTooManyRequests, perr.ErrorCodeTooManyRequests, ""},
		{"field carried", perr.WithField(perr.InvalidArgf("bad count"), "count"), http.StatusUnprocessableEntity, perr.ErrorCodeInvalidArgument, "count"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, w := pnet.Error(tc.err, "rid")
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.status, w.StatusCode)
			assert.Equal(t, http.StatusText(tc.status), w.Status)
			assert.Equal(t, tc.code, w.Code)
			assert.Equal(t, tc.field, w.Field)
			assert.Equal(t, "rid", w.RequestID)
			assert.Nil(t, w.Data)
		})
	}
}
