package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/workshophub-dev/workshophub/db"
	"github.com/workshophub-dev/workshophub/internal/geocoding"
	"github.com/workshophub-dev/workshophub/internal/handlers"
	"github.com/workshophub-dev/workshophub/internal/models"
	"github.com/workshophub-dev/workshophub/internal/types"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func createWorkshop(t *testing.T, mentorID uint) models.Workshop {
	t.Helper()

	workshop := models.Workshop{
		Title:    "Intro to Rust",
		MentorID: mentorID,
		Location: "Room 4",
		DateTime: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, db.DB.Create(&workshop).Error)

	return workshop
}

func TestCreateEnrollment_DuplicatesAllowed(t *testing.T) {
	r := setupTest(t)

	mentor, _ := createUser(t, types.RoleMentor)
	_, learnerToken := createUser(t, types.RoleLearner)
	workshop := createWorkshop(t, mentor.ID)

	payload := gin.H{"workshop_id": workshop.ID}

	w := doJSON(t, r, http.MethodPost, "/enrollments", learnerToken, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	// The same learner/workshop pair a second time must also succeed.
	w = doJSON(t, r, http.MethodPost, "/enrollments", learnerToken, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var count int64
	require.NoError(t, db.DB.Model(&models.Enrollment{}).Where("workshop_id = ?", workshop.ID).Count(&count).Error)
	require.Equal(t, int64(2), count)
}

func TestCreateEnrollment_NonExistentWorkshop(t *testing.T) {
	r := setupTest(t)

	_, learnerToken := createUser(t, types.RoleLearner)

	w := doJSON(t, r, http.MethodPost, "/enrollments", learnerToken, gin.H{"workshop_id": 9999})

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, types.ErrValidation, decodeError(t, w).Error.Kind)
}

func TestCreateEnrollment_MentorForbidden(t *testing.T) {
	r := setupTest(t)

	mentor, mentorToken := createUser(t, types.RoleMentor)
	workshop := createWorkshop(t, mentor.ID)

	w := doJSON(t, r, http.MethodPost, "/enrollments", mentorToken, gin.H{"workshop_id": workshop.ID})

	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestListEnrollments_OwnOnly(t *testing.T) {
	r := setupTest(t)

	mentor, _ := createUser(t, types.RoleMentor)
	learner, learnerToken := createUser(t, types.RoleLearner)
	other, _ := createUser(t, types.RoleLearner)
	workshop := createWorkshop(t, mentor.ID)

	require.NoError(t, db.DB.Create(&models.Enrollment{LearnerID: learner.ID, WorkshopID: workshop.ID}).Error)
	require.NoError(t, db.DB.Create(&models.Enrollment{LearnerID: other.ID, WorkshopID: workshop.ID}).Error)

	w := doJSON(t, r, http.MethodGet, "/enrollments", learnerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var enrollments []types.EnrollmentResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &enrollments))
	require.Len(t, enrollments, 1)
	require.Equal(t, learner.ID, enrollments[0].LearnerID)
}

func TestAddWorkshopToCalendar_NotFound(t *testing.T) {
	r := setupTest(t)

	_, token := createUser(t, types.RoleMentor)

	w := doJSON(t, r, http.MethodPost, "/workshops/9999/add-to-calendar", token, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, types.ErrNotFound, decodeError(t, w).Error.Kind)
}

func TestAddWorkshopToCalendar_NotConnected(t *testing.T) {
	r := setupTest(t)

	mentor, token := createUser(t, types.RoleMentor)
	workshop := createWorkshop(t, mentor.ID)

	w := doJSON(t, r, http.MethodPost, "/workshops/"+itoa(workshop.ID)+"/add-to-calendar", token, nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, types.ErrValidation, decodeError(t, w).Error.Kind)
}

func TestWorkshopLocation(t *testing.T) {
	r := setupTest(t)

	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		require.Equal(t, "Room 4", req.URL.Query().Get("address"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK","results":[{"formatted_address":"Room 4, Campus","geometry":{"location":{"lat":1.5,"lng":2.5}}}]}`))
	}))
	defer mockServer.Close()

	handlers.InitBridges(nil, geocoding.NewClient(mockServer.URL, "test-key", geocoding.WithRateLimit(100)))

	mentor, token := createUser(t, types.RoleMentor)
	workshop := createWorkshop(t, mentor.ID)

	w := doJSON(t, r, http.MethodGet, "/workshops/"+itoa(workshop.ID)+"/location", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Location []geocoding.Result `json:"location"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Location, 1)
	require.Equal(t, "Room 4, Campus", body.Location[0].FormattedAddress)
	require.Equal(t, 1.5, body.Location[0].Geometry.Location.Lat)
}

func TestWorkshopLocation_NotFound(t *testing.T) {
	r := setupTest(t)

	_, token := createUser(t, types.RoleMentor)

	w := doJSON(t, r, http.MethodGet, "/workshops/9999/location", token, nil)

	require.Equal(t, http.StatusNotFound, w.Code)
}
