package handlers

import (
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/workshophub-dev/workshophub/db"
	"github.com/workshophub-dev/workshophub/internal/models"
	"github.com/workshophub-dev/workshophub/internal/types"
	"github.com/workshophub-dev/workshophub/internal/utils"
	"gorm.io/gorm"
)

var (
	workshopClients   = make(map[string]map[*websocket.Conn]bool)
	workshopClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

type EnrollmentNotification struct {
	WorkshopID  uint   `json:"workshop_id"`
	LearnerID   uint   `json:"learner_id"`
	LearnerName string `json:"learner_name"`
}

// BroadcastEnrollment pushes an enrollment notification to every
// connection subscribed to the workshop.
func BroadcastEnrollment(workshopID string, notification EnrollmentNotification) {
	workshopClientsMu.RLock()
	clients, exists := workshopClients[workshopID]
	if !exists || len(clients) == 0 {
		workshopClientsMu.RUnlock()
		return
	}

	// Copy the connection set to avoid holding the lock while writing
	clientsCopy := make([]*websocket.Conn, 0, len(clients))
	for conn := range clients {
		clientsCopy = append(clientsCopy, conn)
	}
	workshopClientsMu.RUnlock()

	for _, conn := range clientsCopy {
		if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
			log.Printf("Failed to set write deadline for broadcast: %v", err)
			continue
		}

		err := conn.WriteJSON(map[string]interface{}{
			"type":       "enrollment",
			"workshop":   workshopID,
			"enrollment": notification,
		})

		if err != nil {
			log.Printf("Failed to broadcast enrollment to client: %v", err)
			workshopClientsMu.Lock()
			if clients, exists := workshopClients[workshopID]; exists {
				delete(clients, conn)
				if len(clients) == 0 {
					delete(workshopClients, workshopID)
				}
			}
			workshopClientsMu.Unlock()
			conn.Close()
		}
	}
}

// WorkshopSocket streams enrollment notifications for a workshop to its
// mentor.
func WorkshopSocket(c *gin.Context) {
	workshopID := c.Param("workshop_id")

	if workshopID == "" {
		c.JSON(http.StatusBadRequest, types.NewError(types.ErrValidation, "Workshop ID is required"))
		return
	}

	userID, err := utils.GetCurrentUserID(c)

	if err != nil {
		c.JSON(http.StatusUnauthorized, types.NewError(types.ErrUnauthenticated, "User not authenticated"))
		return
	}

	var workshop models.Workshop

	if err := db.DB.Where("id = ? AND mentor_id = ?", workshopID, userID).First(&workshop).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, types.NewError(types.ErrNotFound, "Workshop not found"))
		} else {
			c.JSON(http.StatusInternalServerError, types.NewError(types.ErrInternal, "Failed to retrieve workshop"))
		}
		return
	}

	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			for _, allowed := range types.AllowedOrigins {
				if origin == allowed {
					return true
				}
			}
			return false
		},
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("Failed to set initial read deadline: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline in pong handler: %v", err)
		}
		return nil
	})

	// Register the connection to the workshop
	workshopClientsMu.Lock()
	if workshopClients[workshopID] == nil {
		workshopClients[workshopID] = make(map[*websocket.Conn]bool)
	}
	workshopClients[workshopID][conn] = true
	workshopClientsMu.Unlock()

	defer func() {
		workshopClientsMu.Lock()

		if clients, exists := workshopClients[workshopID]; exists {
			delete(clients, conn)

			if len(clients) == 0 {
				delete(workshopClients, workshopID)
			}
		}

		workshopClientsMu.Unlock()
		conn.Close()

		log.Printf("WebSocket connection closed for workshop %s", workshopID)
	}()

	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		log.Printf("Failed to set write deadline for welcome message: %v", err)
		return
	}

	err = conn.WriteJSON(map[string]string{
		"type":     "connected",
		"message":  "WebSocket connection established",
		"workshop": workshopID,
	})

	if err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				log.Printf("Failed to set write deadline for workshop %s: %v", workshopID, err)
				return
			}
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Printf("Ping failed for workshop %s: %v", workshopID, err)
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline for workshop %s: %v", workshopID, err)
			break
		}

		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error for workshop %s: %v", workshopID, err)
			}
			break
		}

		switch messageType {
		case websocket.TextMessage:
			log.Printf("Received message from client for workshop %s: %s", workshopID, string(message))
		case websocket.PongMessage:
			log.Printf("Received pong for workshop %s", workshopID)
		}
	}
}
