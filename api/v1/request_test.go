package v1

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/capstone-portal/apperrors"
	"github.com/capstone-portal/models"
	"github.com/capstone-portal/repositories"
	"github.com/capstone-portal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDirectory struct {
	projects map[string]models.Project
}

func (d *stubDirectory) GetProject(projectID string) (models.Project, error) {
	project, ok := d.projects[projectID]
	if !ok {
		return models.Project{}, apperrors.New(apperrors.KindNotFound, "project not found")
	}
	return project, nil
}

// newRequestTestRouter wires the request controller against the in-memory
// repository with a header-based stand-in for the auth middleware.
func newRequestTestRouter(projects ...models.Project) *gin.Engine {
	gin.SetMode(gin.TestMode)

	directory := &stubDirectory{projects: make(map[string]models.Project)}
	for _, project := range projects {
		directory.projects[project.ID] = project
	}

	service := services.NewRequestServiceWith(repositories.NewMemoryRequestRepository(), directory)
	controller := NewRequestControllerWith(service, func(userID string) string {
		return "Kelompok " + userID
	})

	router := gin.New()
	group := router.Group("/api/v1")
	group.Use(func(ctx *gin.Context) {
		if user := ctx.GetHeader("X-Test-User"); user != "" {
			ctx.Set("userId", user)
		}
		ctx.Next()
	})
	controller.RegisterRoutes(group)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeData(t *testing.T, recorder *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var envelope struct {
		Status string                 `json:"status"`
		Data   map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Equal(t, "success", envelope.Status)
	return envelope.Data
}

func testProject(id, ownerID string) models.Project {
	return models.Project{
		ID:           id,
		Title:        "Library Seat Occupancy Tracker",
		Status:       models.ProjectStatusOpen,
		OwnerID:      ownerID,
		ProposalLink: "https://drive.google.com/drive/folders/xyz",
	}
}

func TestSubmitRequestEndpoint(t *testing.T) {
	router := newRequestTestRouter(testProject("p1", "owner"))

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "g1", `{"message":"We want to continue this"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	data := decodeData(t, recorder)
	assert.Equal(t, "p1", data["projectId"])
	assert.Equal(t, "g1", data["requesterId"])
	assert.Equal(t, "Kelompok g1", data["requesterName"])
	assert.Equal(t, string(models.RequestStatusWaiting), data["status"])
	assert.Equal(t, true, data["canEditOrCancel"])
	assert.NotContains(t, data, "proposalLink")
}

func TestSubmitRequestEndpointUnauthenticated(t *testing.T) {
	router := newRequestTestRouter(testProject("p1", "owner"))

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "", `{"message":"hi"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSubmitRequestEndpointMissingMessage(t *testing.T) {
	router := newRequestTestRouter(testProject("p1", "owner"))

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "g1", `{}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestSubmitRequestEndpointDuplicate(t *testing.T) {
	router := newRequestTestRouter(testProject("p1", "owner"))

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "g1", `{"message":"first"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "g1", `{"message":"second"}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestSubmitRequestEndpointClosedProject(t *testing.T) {
	project := testProject("p1", "owner")
	project.Status = models.ProjectStatusCompleted
	router := newRequestTestRouter(project)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "g1", `{"message":"hi"}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestSubmitRequestEndpointUnknownProject(t *testing.T) {
	router := newRequestTestRouter()

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/projects/missing/request", "g1", `{"message":"hi"}`)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestEditRequestEndpoint(t *testing.T) {
	router := newRequestTestRouter(testProject("p1", "owner"))

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "g1", `{"message":"first"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	requestID := decodeData(t, recorder)["id"].(string)

	recorder = doRequest(t, router, http.MethodPut, "/api/v1/requests/"+requestID, "g1", `{"message":"revised"}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "revised", decodeData(t, recorder)["message"])

	// A stranger cannot edit it
	recorder = doRequest(t, router, http.MethodPut, "/api/v1/requests/"+requestID, "g2", `{"message":"hijacked"}`)
	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestCancelRequestEndpoint(t *testing.T) {
	router := newRequestTestRouter(testProject("p1", "owner"))

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "g1", `{"message":"first"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	requestID := decodeData(t, recorder)["id"].(string)

	recorder = doRequest(t, router, http.MethodDelete, "/api/v1/requests/"+requestID+"/cancel", "g2", "")
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = doRequest(t, router, http.MethodDelete, "/api/v1/requests/"+requestID+"/cancel", "g1", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(t, router, http.MethodGet, "/api/v1/requests/"+requestID, "g1", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestApproveEndpoint(t *testing.T) {
	router := newRequestTestRouter(testProject("p1", "owner"))

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "g1", `{"message":"first"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	requestID := decodeData(t, recorder)["id"].(string)

	// The requester cannot decide their own request
	recorder = doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request/"+requestID+"/approve", "g1", "")
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request/"+requestID+"/approve", "owner", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	data := decodeData(t, recorder)
	assert.Equal(t, string(models.RequestStatusApproved), data["status"])
	assert.Equal(t, "https://drive.google.com/drive/folders/xyz", data["proposalLink"])
	assert.NotEmpty(t, data["respondedAt"])

	// A second approval reports the already-decided state
	recorder = doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request/"+requestID+"/approve", "owner", "")
	assert.Equal(t, http.StatusConflict, recorder.Code)

	// The requester now sees the disclosed link
	recorder = doRequest(t, router, http.MethodGet, "/api/v1/requests/"+requestID, "g1", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "https://drive.google.com/drive/folders/xyz", decodeData(t, recorder)["proposalLink"])
}

func TestRejectEndpoint(t *testing.T) {
	router := newRequestTestRouter(testProject("p1", "owner"))

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "g1", `{"message":"first"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	requestID := decodeData(t, recorder)["id"].(string)

	recorder = doRequest(t, router, http.MethodDelete, "/api/v1/projects/p1/requests/"+requestID+"/reject", "owner", `{"reason":"already taken"}`)
	require.Equal(t, http.StatusOK, recorder.Code)

	data := decodeData(t, recorder)
	assert.Equal(t, string(models.RequestStatusRejected), data["status"])
	assert.Equal(t, "already taken", data["rejectionReason"])

	// The request is gone afterwards
	recorder = doRequest(t, router, http.MethodGet, "/api/v1/requests/"+requestID, "g1", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestRequestVisibilityEndpoint(t *testing.T) {
	router := newRequestTestRouter(testProject("p1", "owner"))

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "g1", `{"message":"first"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	requestID := decodeData(t, recorder)["id"].(string)

	recorder = doRequest(t, router, http.MethodGet, "/api/v1/requests/"+requestID, "owner", "")
	assert.Equal(t, http.StatusOK, recorder.Code)

	recorder = doRequest(t, router, http.MethodGet, "/api/v1/requests/"+requestID, "g2", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestListEndpoints(t *testing.T) {
	router := newRequestTestRouter(testProject("p1", "owner"))

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "g1", `{"message":"first"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)
	recorder = doRequest(t, router, http.MethodPost, "/api/v1/projects/p1/request", "g2", `{"message":"second"}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var envelope struct {
		Status string                   `json:"status"`
		Data   []map[string]interface{} `json:"data"`
	}

	recorder = doRequest(t, router, http.MethodGet, "/api/v1/projects/p1/requests", "owner", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)

	// Only the owner can list incoming requests
	recorder = doRequest(t, router, http.MethodGet, "/api/v1/projects/p1/requests", "g1", "")
	assert.Equal(t, http.StatusForbidden, recorder.Code)

	recorder = doRequest(t, router, http.MethodGet, "/api/v1/requests", "g1", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "g1", envelope.Data[0]["requesterId"])
}
