package httplog

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/routerlogin/routerlogin/internal/httplog/mock_httplog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NewClient(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		requestMethod      string
		requestPath        string
		requestHeaders     http.Header
		requestBodyNil     bool
		requestBodyString  string
		requestLineRegex   string
		responseStatusCode int
		responseBodyString string
		responseLineRegex  string
	}{
		"POST with headers and body": {
			requestMethod: http.MethodPost,
			requestHeaders: http.Header{
				"Key1": []string{"value 1", "value 2"},
			},
			requestBodyString:  "request\nbody",
			requestLineRegex:   `^POST http://127\.0\.0\.1:[0-9]{1,5} \| headers: Key1: value 1,value 2 \| body: requestbody$`,
			responseStatusCode: http.StatusAccepted,
			responseBodyString: "response body",
			responseLineRegex:  `^202 Accepted \| headers: .+ \| body: response body$`,
		},
		"simple GET": {
			requestMethod:      http.MethodGet,
			requestPath:        "/static/data/routers.json",
			requestBodyNil:     true,
			requestLineRegex:   `^GET http://127\.0\.0\.1:[0-9]{1,5}/static/data/routers\.json$`,
			responseStatusCode: http.StatusOK,
			responseBodyString: `[{"ip": "192.168.1.1"}]`,
			responseLineRegex:  `^200 OK \| headers: .+ \| body: \[\{"ip": "192\.168\.1\.1"\}\]$`,
		},
		"token redacted": {
			requestMethod:      http.MethodGet,
			requestPath:        "/203.0.113.7/json?token=secret",
			requestBodyNil:     true,
			requestLineRegex:   `^GET http://127\.0\.0\.1:[0-9]{1,5}/203\.0\.113\.7/json\?token=REDACTED$`,
			responseStatusCode: http.StatusOK,
			responseBodyString: `{"ip": "203.0.113.7"}`,
			responseLineRegex:  `^200 OK \| headers: .+ \| body: \{"ip": "203\.0\.113\.7"\}$`,
		},
		"long body cut": {
			requestMethod:      http.MethodGet,
			requestPath:        "/static/data/articles.json",
			requestBodyNil:     true,
			requestLineRegex:   `^GET http://127\.0\.0\.1:[0-9]{1,5}/static/data/articles\.json$`,
			responseStatusCode: http.StatusOK,
			responseBodyString: strings.Repeat("a", 300),
			responseLineRegex:  `^200 OK \| headers: .+ \| body: a{256}\.\.\. \(300 bytes\)$`,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)

			handler := http.HandlerFunc(func(rw http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.requestMethod, request.Method)
				for key, expectedValues := range testCase.requestHeaders {
					assert.Equal(t, expectedValues, request.Header[key])
				}

				b, err := io.ReadAll(request.Body)
				assert.NoError(t, err)
				assert.Equal(t, testCase.requestBodyString, string(b))

				rw.WriteHeader(testCase.responseStatusCode)
				_, _ = rw.Write([]byte(testCase.responseBodyString))
			})
			server := httptest.NewServer(handler)
			t.Cleanup(server.Close)

			logger := mock_httplog.NewMockDebugLogger(ctrl)
			requestLog := logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
				Do(func(s string) {
					assert.Regexp(t, testCase.requestLineRegex, s)
				})
			logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
				Do(func(s string) {
					assert.Regexp(t, testCase.responseLineRegex, s)
				}).After(requestLog)

			client := server.Client()
			logClient := NewClient(client, logger)

			assert.Equal(t, client.Timeout, logClient.Timeout)

			var requestBody io.Reader
			if !testCase.requestBodyNil {
				requestBody = bytes.NewBufferString(testCase.requestBodyString)
			}
			url := server.URL + testCase.requestPath
			request, err := http.NewRequestWithContext(context.Background(),
				testCase.requestMethod, url, requestBody)
			require.NoError(t, err)
			if testCase.requestHeaders != nil {
				request.Header = testCase.requestHeaders
			}

			response, err := logClient.Do(request)
			require.NoError(t, err)
			defer response.Body.Close()

			assert.Equal(t, testCase.responseStatusCode, response.StatusCode)
			b, err := io.ReadAll(response.Body)
			require.NoError(t, err)
			assert.Equal(t, testCase.responseBodyString, string(b))
		})
	}
}

func Test_NewClient_round_trip_error(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/json?token=secret"
	server.Close()

	logger := mock_httplog.NewMockDebugLogger(ctrl)
	requestLog := logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
		Do(func(s string) {
			assert.Regexp(t, `^GET http://127\.0\.0\.1:[0-9]{1,5}/json\?token=REDACTED$`, s)
		})
	logger.EXPECT().Debug(gomock.AssignableToTypeOf("")).
		Do(func(s string) {
			assert.Regexp(t, `^GET http://127\.0\.0\.1:[0-9]{1,5}/json\?token=REDACTED failed: .+$`, s)
			assert.NotContains(t, s, "secret")
		}).After(requestLog)

	client := NewClient(&http.Client{}, logger)
	request, err := http.NewRequestWithContext(context.Background(), http.MethodGet, url, nil)
	require.NoError(t, err)

	response, err := client.Do(request)
	if response != nil {
		_ = response.Body.Close()
	}
	assert.Error(t, err)
}

func Test_formatHeader(t *testing.T) {
	t.Parallel()

	header := http.Header{
		"Content-Type":  []string{"application/json"},
		"Authorization": []string{"Bearer secret"},
		"Accept":        []string{"text/html", "application/json"},
	}

	assert.Equal(t, " | headers: Accept: text/html,application/json; "+
		"Authorization: REDACTED; Content-Type: application/json", formatHeader(header))
	assert.Empty(t, formatHeader(http.Header{}))
}

func Test_ToSingleLine(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		s    string
		line string
	}{
		"empty": {},
		"already_single_line": {
			s:    "not found",
			line: "not found",
		},
		"html_page": {
			s:    "<html>\r\n  <body>\n\t<p>Bad gateway</p>\n  </body>\n</html>\n",
			line: "<html> <body> <p>Bad gateway</p> </body></html>",
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.line, ToSingleLine(testCase.s))
		})
	}
}
