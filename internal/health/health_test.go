package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/routerlogin/routerlogin/internal/health/mock_health"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_handler(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	testCases := map[string]struct {
		method     string
		target     string
		routersErr error
		callRouter bool
		status     int
		body       string
		warn       string
	}{
		"healthy": {
			method:     http.MethodGet,
			target:     "/",
			callRouter: true,
			status:     http.StatusOK,
		},
		"routers_failing": {
			method:     http.MethodGet,
			target:     "/",
			routersErr: errTest,
			callRouter: true,
			status:     http.StatusInternalServerError,
			body:       "loading routers: test error\n",
			warn:       "unhealthy: loading routers: test error",
		},
		"bad_method": {
			method: http.MethodPost,
			target: "/",
			status: http.StatusNotFound,
			body:   "Not Found\n",
		},
		"bad_path": {
			method: http.MethodGet,
			target: "/other",
			status: http.StatusNotFound,
			body:   "Not Found\n",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			loader := mock_health.NewMockLoader(ctrl)
			if testCase.callRouter {
				loader.EXPECT().Routers(gomock.Any()).Return(nil, testCase.routersErr)
				if testCase.routersErr == nil {
					loader.EXPECT().Articles(gomock.Any()).Return(nil, nil)
				}
			}
			logger := mock_health.NewMockLogger(ctrl)
			if testCase.warn != "" {
				logger.EXPECT().Warn(testCase.warn)
			}

			handler := newHandler(MakeIsHealthy(loader, logger))
			request := httptest.NewRequest(testCase.method, testCase.target, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, request)

			assert.Equal(t, testCase.status, w.Code)
			assert.Equal(t, testCase.body, w.Body.String())
		})
	}
}

func Test_Client_Query(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		status     int
		body       string
		errWrapped error
		errMessage string
	}{
		"healthy": {
			status: http.StatusOK,
		},
		"unhealthy": {
			status:     http.StatusInternalServerError,
			body:       "loading articles: decoding collection\n",
			errWrapped: ErrUnhealthy,
			errMessage: "program is unhealthy: loading articles: decoding collection",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(testCase.status)
				_, _ = w.Write([]byte(testCase.body))
			}))
			t.Cleanup(server.Close)

			client := NewClient()
			address := strings.TrimPrefix(server.URL, "http://")

			err := client.Query(context.Background(), address)

			assert.ErrorIs(t, err, testCase.errWrapped)
			if testCase.errMessage != "" {
				assert.EqualError(t, err, testCase.errMessage)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func Test_CheckHTTP(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(server.Close)

	err := CheckHTTP(context.Background(), server.Client(), server.URL+"/")
	require.NoError(t, err)

	err = CheckHTTP(context.Background(), server.Client(), server.URL+"/missing")
	assert.ErrorIs(t, err, ErrHTTPStatusCodeNotOK)
	assert.EqualError(t, err, "status code is not OK: 404")
}
