package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpapi "activity-signup-service/internal/http"
	"activity-signup-service/internal/http/mocks"
	"activity-signup-service/internal/model"
	"activity-signup-service/internal/service"
)

var testLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))

type errorPayload struct {
	Detail string `json:"detail"`
	Error  struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestHandler_Signup(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		mockBehavior   func(as *mocks.ActivityService)
		expectedStatus int
		expectedDetail string
	}{
		{
			name:   "Success",
			target: "/activities/Soccer%20Team/signup?email=test@mergington.edu",
			mockBehavior: func(as *mocks.ActivityService) {
				as.On("Signup", mock.Anything, "Soccer Team", "test@mergington.edu").
					Return(model.SignupResult{Message: "Signed up test@mergington.edu for Soccer Team"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Not Found: activity",
			target: "/activities/Nonexistent%20Activity/signup?email=test@mergington.edu",
			mockBehavior: func(as *mocks.ActivityService) {
				as.On("Signup", mock.Anything, "Nonexistent Activity", "test@mergington.edu").
					Return(model.SignupResult{}, service.ErrNotFound("Activity not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedDetail: "Activity not found",
		},
		{
			name:   "Bad Request: already signed up",
			target: "/activities/Soccer%20Team/signup?email=alex@mergington.edu",
			mockBehavior: func(as *mocks.ActivityService) {
				as.On("Signup", mock.Anything, "Soccer Team", "alex@mergington.edu").
					Return(model.SignupResult{}, service.ErrDomain(service.CodeAlreadySignedUp, "Student is already signed up for this activity"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedDetail: "Student is already signed up for this activity",
		},
		{
			name:           "Unprocessable: missing email",
			target:         "/activities/Soccer%20Team/signup",
			mockBehavior:   func(as *mocks.ActivityService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedDetail: "email query parameter is required",
		},
		{
			name:   "Encoded slash in activity name",
			target: "/activities/AC%2FDC%20Tribute/signup?email=test@mergington.edu",
			mockBehavior: func(as *mocks.ActivityService) {
				as.On("Signup", mock.Anything, "AC/DC Tribute", "test@mergington.edu").
					Return(model.SignupResult{}, service.ErrNotFound("Activity not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedDetail: "Activity not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activities := mocks.NewActivityService(t)
			tt.mockBehavior(activities)

			h := httpapi.NewHandler(activities, testLogger, httpapi.Options{})

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedDetail != "" {
				var body errorPayload
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedDetail, body.Detail)
				assert.Equal(t, tt.expectedDetail, body.Error.Message)
			}
		})
	}
}

func TestHandler_Unregister(t *testing.T) {
	tests := []struct {
		name           string
		target         string
		mockBehavior   func(as *mocks.ActivityService)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:   "Success",
			target: "/activities/Soccer%20Team/unregister?email=alex@mergington.edu",
			mockBehavior: func(as *mocks.ActivityService) {
				as.On("Unregister", mock.Anything, "Soccer Team", "alex@mergington.edu").
					Return(model.SignupResult{Message: "Unregistered alex@mergington.edu from Soccer Team"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Not Found: participant",
			target: "/activities/Soccer%20Team/unregister?email=notregistered@mergington.edu",
			mockBehavior: func(as *mocks.ActivityService) {
				as.On("Unregister", mock.Anything, "Soccer Team", "notregistered@mergington.edu").
					Return(model.SignupResult{}, service.ErrNotFound("Participant not found in this activity"))
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:   "Internal Error: unexpected error type",
			target: "/activities/Soccer%20Team/unregister?email=alex@mergington.edu",
			mockBehavior: func(as *mocks.ActivityService) {
				as.On("Unregister", mock.Anything, "Soccer Team", "alex@mergington.edu").
					Return(model.SignupResult{}, assert.AnError)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activities := mocks.NewActivityService(t)
			tt.mockBehavior(activities)

			h := httpapi.NewHandler(activities, testLogger, httpapi.Options{})

			req := httptest.NewRequest(http.MethodDelete, tt.target, nil)
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedCode != "" {
				var body errorPayload
				require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, tt.expectedCode, body.Error.Code)
			}
		})
	}
}

func TestHandler_ListActivities(t *testing.T) {
	activities := mocks.NewActivityService(t)
	activities.On("ListActivities", mock.Anything).Return(model.Catalog{
		"Chess Club": {
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    []string{"michael@mergington.edu"},
		},
	}, nil)

	h := httpapi.NewHandler(activities, testLogger, httpapi.Options{})

	req := httptest.NewRequest(http.MethodGet, "/activities", nil)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"Chess Club": {
			"description": "Learn strategies and compete in chess tournaments",
			"schedule": "Fridays, 3:30 PM - 5:00 PM",
			"max_participants": 12,
			"participants": ["michael@mergington.edu"]
		}
	}`, w.Body.String())
}

func TestHandler_RootRedirectsToStatic(t *testing.T) {
	h := httpapi.NewHandler(mocks.NewActivityService(t), testLogger, httpapi.Options{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	assert.Equal(t, "/static/index.html", w.Header().Get("Location"))
}

func TestHandler_ServesStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("<h1>Mergington High School</h1>"), 0o600))

	h := httpapi.NewHandler(mocks.NewActivityService(t), testLogger, httpapi.Options{StaticDir: dir})

	req := httptest.NewRequest(http.MethodGet, "/static/index.html", nil)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mergington High School")
}

func TestHandler_BundledFrontend(t *testing.T) {
	h := httpapi.NewHandler(mocks.NewActivityService(t), testLogger, httpapi.Options{StaticDir: "../../static"})

	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/index.html", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Mergington High School")

	// Имена и email участников попадают в DOM только через textContent
	w = httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "innerHTML")
	assert.NotContains(t, w.Body.String(), "insertAdjacentHTML")
	assert.Contains(t, w.Body.String(), "textContent")
}

func TestHandler_LandingMissingIsNotFound(t *testing.T) {
	h := httpapi.NewHandler(mocks.NewActivityService(t), testLogger, httpapi.Options{StaticDir: t.TempDir()})

	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/index.html", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ServesOtherStaticFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte("fetchActivities();"), 0o600))

	h := httpapi.NewHandler(mocks.NewActivityService(t), testLogger, httpapi.Options{StaticDir: dir})

	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "fetchActivities")
}

// ctxRecorder запоминает request id из контекста каждой записи лога.
type ctxRecorder struct {
	mu         sync.Mutex
	requestIDs []string
}

func (c *ctxRecorder) Enabled(context.Context, slog.Level) bool { return true }

func (c *ctxRecorder) Handle(ctx context.Context, rec slog.Record) error {
	if rec.Message != "handler error" {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.requestIDs = append(c.requestIDs, middleware.GetReqID(ctx))
	return nil
}

func (c *ctxRecorder) WithAttrs([]slog.Attr) slog.Handler { return c }
func (c *ctxRecorder) WithGroup(string) slog.Handler      { return c }

func TestHandler_ErrorLogCarriesRequestContext(t *testing.T) {
	activities := mocks.NewActivityService(t)
	activities.On("Signup", mock.Anything, "Soccer Team", "test@mergington.edu").
		Return(model.SignupResult{}, service.ErrNotFound("Activity not found"))

	rec := &ctxRecorder{}
	h := httpapi.NewHandler(activities, slog.New(rec), httpapi.Options{})

	req := httptest.NewRequest(http.MethodPost, "/activities/Soccer%20Team/signup?email=test@mergington.edu", nil)
	req.Header.Set(middleware.RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.Equal(t, []string{"req-42"}, rec.requestIDs)
}

func TestHandler_HealthAndMetrics(t *testing.T) {
	h := httpapi.NewHandler(mocks.NewActivityService(t), testLogger, httpapi.Options{})

	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	h.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CORSPreflight(t *testing.T) {
	h := httpapi.NewHandler(mocks.NewActivityService(t), testLogger, httpapi.Options{
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	})

	req := httptest.NewRequest(http.MethodOptions, "/activities/Chess%20Club/signup", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	h.Router().ServeHTTP(w, req)

	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
