package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestQueryDocument(t *testing.T) {
	html := `<ul><li class="item">a</li><li class="item hot">b</li></ul><a href="http://x.com">link</a>`

	testCases := []struct {
		name          string
		body          any
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "MissingSelector",
			body: gin.H{"html": html},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)

				res, err := extractErrorFromBuffer(recorder.Body)
				require.NoError(t, err)
				require.Equal(t, ErrInvalidParams.Error(), res.Error)
				require.Len(t, res.Fields, 1)
				require.Equal(t, "selector", res.Fields[0].FieldName)
			},
		},
		{
			name: "InputTooLarge",
			body: gin.H{"html": strings.Repeat("a", testConfig.MaxInputBytes+1), "selector": "p"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
			},
		},
		{
			name: "OK",
			body: gin.H{"html": html, "selector": "ul > .item"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var res QueryResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

				require.Equal(t, 2, res.Count)
				require.Equal(t, "a", res.Matches[0].Text)
				require.Equal(t, `<li class="item">a</li>`, res.Matches[0].HTML)
				require.Equal(t, "b", res.Matches[1].Text)
			},
		},
		{
			name: "AttributeSelector",
			body: gin.H{"html": html, "selector": "[href^=http]"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var res QueryResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))

				require.Equal(t, 1, res.Count)
				require.Equal(t, "link", res.Matches[0].Text)
			},
		},
		{
			name: "NoMatches",
			body: gin.H{"html": html, "selector": "#missing"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var res QueryResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
				require.Equal(t, 0, res.Count)
			},
		},
		{
			// a selector that fails to parse degrades to an empty result,
			// same as one that matches nothing
			name: "MalformedSelector",
			body: gin.H{"html": html, "selector": "[broken"},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var res QueryResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &res))
				require.Equal(t, 0, res.Count)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service := newTestService(t)
			recorder := postJSON(t, service, QueryURL, tc.body)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestPing(t *testing.T) {
	service := newTestService(t)

	request, err := http.NewRequest(http.MethodGet, "/ping", nil)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	service.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.Equal(t, "pong", recorder.Body.String())
}

func TestCORSPreflight(t *testing.T) {
	service := newTestService(t)

	request, err := http.NewRequest(http.MethodOptions, ParseURL, nil)
	require.NoError(t, err)
	request.Header.Set("Origin", "http://localhost:3000")

	recorder := httptest.NewRecorder()
	service.router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNoContent, recorder.Code)
	require.Equal(t, "*", recorder.Header().Get("Access-Control-Allow-Origin"))
}
