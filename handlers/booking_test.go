package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"barberbook/models"
	"barberbook/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWizard struct {
	booking.WizardService
	session *booking.WizardSession
}

func (s *stubWizard) JumpTo(ctx context.Context, sessionID string, step int) (*booking.WizardSession, error) {
	booking.JumpTo(&s.session.Form, step)
	return s.session, nil
}

func TestJumpWizardHandlerLandsOutOfRangeStepsOnStepOne(t *testing.T) {
	gin.SetMode(gin.TestMode)
	wiz := &stubWizard{session: &booking.WizardSession{SessionID: "s1", Form: models.NewBookingForm()}}
	hb := &HandlerBundle{Wizard: wiz}

	r := gin.New()
	r.POST("/session/:sessionID/jump", hb.JumpWizardHandler)

	cases := []struct {
		body string
		want int
	}{
		{`{"step":0}`, 1},
		{`{"step":-1}`, 1},
		{`{"step":9}`, 1},
		{`{"step":3}`, 3},
	}
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/session/s1/jump", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code, tc.body)

		var got booking.WizardSession
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, tc.want, got.Form.Step, tc.body)
	}
}
