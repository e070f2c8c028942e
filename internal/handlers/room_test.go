package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/agora-forum/agora/internal/database"
	"github.com/agora-forum/agora/internal/models"
)

func TestListRooms(t *testing.T) {
	topicID := uuid.New()
	topic := models.Topic{ID: topicID, Name: "Programming"}
	rooms := []models.Room{
		{ID: uuid.New(), Name: "Python", Description: "intro", TopicID: &topicID, Topic: &topic},
		{ID: uuid.New(), Name: "Pythonistas", TopicID: &topicID, Topic: &topic},
	}

	mockStore := &database.MockStore{}
	defer mockStore.AssertExpectations(t)

	mockStore.On("SearchRooms", "python").Return(rooms, nil).Once()
	mockStore.On("RecentTopics", 5).Return([]models.Topic{topic}, nil).Once()
	mockStore.On("TopicMessages", "python").Return([]models.Message{}, nil).Once()

	r := newTestRouter(uuid.Nil)
	r.GET("/api/rooms", NewRoomHandler(mockStore).ListRooms)

	w := performRequest(t, r, http.MethodGet, "/api/rooms?q=python", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(2), body["room_count"])
	assert.Len(t, body["rooms"], 2)
	assert.Len(t, body["topics"], 1)
}

func TestListRoomsDefaultsToMatchAll(t *testing.T) {
	mockStore := &database.MockStore{}
	defer mockStore.AssertExpectations(t)

	mockStore.On("SearchRooms", "").Return([]models.Room{}, nil).Once()
	mockStore.On("RecentTopics", 5).Return([]models.Topic{}, nil).Once()
	mockStore.On("TopicMessages", "").Return([]models.Message{}, nil).Once()

	r := newTestRouter(uuid.Nil)
	r.GET("/api/rooms", NewRoomHandler(mockStore).ListRooms)

	w := performRequest(t, r, http.MethodGet, "/api/rooms", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["room_count"])
}

func TestGetRoom(t *testing.T) {
	hostID := uuid.New()
	roomID := uuid.New()
	room := &models.Room{
		ID:     roomID,
		HostID: &hostID,
		Name:   "Python",
		Host:   &models.User{ID: hostID, Email: "host@example.com"},
		Participants: []models.User{
			{ID: hostID, Email: "host@example.com"},
		},
	}
	messages := []models.Message{
		{ID: uuid.New(), RoomID: roomID, UserID: hostID, Body: "newest"},
		{ID: uuid.New(), RoomID: roomID, UserID: hostID, Body: "older"},
	}

	mockStore := &database.MockStore{}
	defer mockStore.AssertExpectations(t)

	mockStore.On("GetRoom", roomID.String()).Return(room, nil).Once()
	mockStore.On("RoomMessages", roomID.String()).Return(messages, nil).Once()

	r := newTestRouter(uuid.Nil)
	r.GET("/api/rooms/:id", NewRoomHandler(mockStore).GetRoom)

	w := performRequest(t, r, http.MethodGet, "/api/rooms/"+roomID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Len(t, body["messages"], 2)
	assert.Len(t, body["participants"], 1)
}

func TestGetRoomNotFound(t *testing.T) {
	mockStore := &database.MockStore{}
	defer mockStore.AssertExpectations(t)

	id := uuid.New().String()
	mockStore.On("GetRoom", id).Return(nil, gorm.ErrRecordNotFound).Once()

	r := newTestRouter(uuid.Nil)
	r.GET("/api/rooms/:id", NewRoomHandler(mockStore).GetRoom)

	w := performRequest(t, r, http.MethodGet, "/api/rooms/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateRoom(t *testing.T) {
	userID := uuid.New()
	topic := &models.Topic{ID: uuid.New(), Name: "Programming"}

	mockStore := &database.MockStore{}
	defer mockStore.AssertExpectations(t)

	mockStore.On("GetOrCreateTopic", "Programming").Return(topic, true, nil).Once()
	mockStore.On("CreateRoom", mock.MatchedBy(func(room *models.Room) bool {
		return room.HostID != nil && *room.HostID == userID &&
			room.TopicID != nil && *room.TopicID == topic.ID &&
			room.Name == "Python"
	})).Return(nil).Once()
	mockStore.On("GetRoom", uuid.Nil.String()).Return(nil, gorm.ErrRecordNotFound).Once()

	r := newTestRouter(userID)
	r.POST("/api/rooms", NewRoomHandler(mockStore).CreateRoom)

	w := performRequest(t, r, http.MethodPost, "/api/rooms", map[string]string{
		"topic":       "Programming",
		"name":        "Python",
		"description": "intro",
	})

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestUpdateRoomForbiddenForNonHost(t *testing.T) {
	hostID := uuid.New()
	intruderID := uuid.New()
	roomID := uuid.New()
	room := &models.Room{ID: roomID, HostID: &hostID, Name: "Python"}

	mockStore := &database.MockStore{}
	defer mockStore.AssertExpectations(t)

	mockStore.On("GetRoom", roomID.String()).Return(room, nil).Once()

	r := newTestRouter(intruderID)
	r.PUT("/api/rooms/:id", NewRoomHandler(mockStore).UpdateRoom)

	w := performRequest(t, r, http.MethodPut, "/api/rooms/"+roomID.String(), map[string]string{
		"topic": "Hijacked",
		"name":  "Hijacked",
	})

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "You are not allowed here", body["error"])
	mockStore.AssertNotCalled(t, "UpdateRoom", mock.Anything)
	mockStore.AssertNotCalled(t, "GetOrCreateTopic", mock.Anything)
}

func TestUpdateRoom(t *testing.T) {
	hostID := uuid.New()
	roomID := uuid.New()
	room := &models.Room{ID: roomID, HostID: &hostID, Name: "Python", Description: "old"}
	topic := &models.Topic{ID: uuid.New(), Name: "Databases"}

	mockStore := &database.MockStore{}
	defer mockStore.AssertExpectations(t)

	mockStore.On("GetRoom", roomID.String()).Return(room, nil).Once()
	mockStore.On("GetOrCreateTopic", "Databases").Return(topic, false, nil).Once()
	mockStore.On("UpdateRoom", mock.MatchedBy(func(updated *models.Room) bool {
		return updated.ID == roomID && updated.Name == "Postgres" &&
			updated.TopicID != nil && *updated.TopicID == topic.ID
	})).Return(nil).Once()

	r := newTestRouter(hostID)
	r.PUT("/api/rooms/:id", NewRoomHandler(mockStore).UpdateRoom)

	w := performRequest(t, r, http.MethodPut, "/api/rooms/"+roomID.String(), map[string]string{
		"topic":       "Databases",
		"name":        "Postgres",
		"description": "new",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteRoomForbiddenForNonHost(t *testing.T) {
	hostID := uuid.New()
	intruderID := uuid.New()
	roomID := uuid.New()
	room := &models.Room{ID: roomID, HostID: &hostID, Name: "R1"}

	mockStore := &database.MockStore{}
	defer mockStore.AssertExpectations(t)

	mockStore.On("GetRoom", roomID.String()).Return(room, nil).Once()

	r := newTestRouter(intruderID)
	r.DELETE("/api/rooms/:id", NewRoomHandler(mockStore).DeleteRoom)

	w := performRequest(t, r, http.MethodDelete, "/api/rooms/"+roomID.String(), nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockStore.AssertNotCalled(t, "DeleteRoom", mock.Anything)
}

func TestDeleteRoom(t *testing.T) {
	hostID := uuid.New()
	roomID := uuid.New()
	room := &models.Room{ID: roomID, HostID: &hostID, Name: "R1"}

	mockStore := &database.MockStore{}
	defer mockStore.AssertExpectations(t)

	mockStore.On("GetRoom", roomID.String()).Return(room, nil).Once()
	mockStore.On("DeleteRoom", roomID.String()).Return(nil).Once()

	r := newTestRouter(hostID)
	r.DELETE("/api/rooms/:id", NewRoomHandler(mockStore).DeleteRoom)

	w := performRequest(t, r, http.MethodDelete, "/api/rooms/"+roomID.String(), nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteRoomNotFound(t *testing.T) {
	mockStore := &database.MockStore{}
	defer mockStore.AssertExpectations(t)

	id := uuid.New().String()
	mockStore.On("GetRoom", id).Return(nil, gorm.ErrRecordNotFound).Once()

	r := newTestRouter(uuid.New())
	r.DELETE("/api/rooms/:id", NewRoomHandler(mockStore).DeleteRoom)

	w := performRequest(t, r, http.MethodDelete, "/api/rooms/"+id, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEditRoomForbiddenForNonHost(t *testing.T) {
	hostID := uuid.New()
	roomID := uuid.New()
	room := &models.Room{ID: roomID, HostID: &hostID, Name: "R1"}

	mockStore := &database.MockStore{}
	defer mockStore.AssertExpectations(t)

	mockStore.On("GetRoom", roomID.String()).Return(room, nil).Once()

	r := newTestRouter(uuid.New())
	r.GET("/api/rooms/:id/edit", NewRoomHandler(mockStore).EditRoom)

	w := performRequest(t, r, http.MethodGet, "/api/rooms/"+roomID.String()+"/edit", nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
	mockStore.AssertNotCalled(t, "SearchTopics", mock.Anything)
}
