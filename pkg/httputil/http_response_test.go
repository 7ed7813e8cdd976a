package httputil_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/ecosaver/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusBadGateway, "extraction failed", errors.New("upstream down"))
	assert.Equal(t, http.StatusBadGateway, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, httputil.ErrorResponse{
		Code:    http.StatusBadGateway,
		Message: "extraction failed",
		Details: []string{"upstream down"},
	}, resp)
}

func TestWriteErrorResponseJoined(t *testing.T) {
	rr := httptest.NewRecorder()
	err := errors.Join(errors.New("invalid usage record"), errors.New("field WaterLiters failed on gte"))
	httputil.WriteErrorResponse(rr, http.StatusBadRequest, "invalid usage values", err)
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, []string{"invalid usage record", "field WaterLiters failed on gte"}, resp.Details)

	rr = httptest.NewRecorder()
	httputil.WriteErrorResponse(rr, http.StatusNotFound, "no usage records yet", nil)
	assert.NotContains(t, rr.Body.String(), "details")
}

func TestWriteJSONResponse(t *testing.T) {
	rr := httptest.NewRecorder()
	httputil.WriteJSONResponse(rr, http.StatusOK, map[string]any{"score": 60})
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"score": 60}`, rr.Body.String())

	rr = httptest.NewRecorder()
	httputil.WriteJSONResponse(rr, http.StatusNoContent, nil)
	assert.Empty(t, rr.Body.String())
}
