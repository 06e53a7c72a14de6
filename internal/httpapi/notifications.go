package httpapi

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/TemirB/bakeflow-admin/internal/domain"
)

type notificationItem struct {
	domain.Notification
	TimeAgo string `json:"time_ago"`
}

type notificationList struct {
	Notifications []notificationItem `json:"notifications"`
	Unread        int                `json:"unread"`
	HasUnread     bool               `json:"has_unread"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (s *Server) listNotifications(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	list := s.deps.Notifications.List()
	items := make([]notificationItem, len(list))
	for i, n := range list {
		items[i] = notificationItem{Notification: n, TimeAgo: domain.RelativeTime(n.CreatedAt, now)}
	}
	unread := s.deps.Notifications.UnreadCount()
	writeJSON(w, notificationList{Notifications: items, Unread: unread, HasUnread: unread > 0})
}

func (s *Server) readNotification(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "notification id required", nil)
		return
	}
	if !s.deps.Notifications.MarkAsRead(id) {
		writeError(w, http.StatusNotFound, "no notification with this id", nil)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) readAllNotifications(w http.ResponseWriter, r *http.Request) {
	s.deps.Notifications.MarkAllRead()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clearNotifications(w http.ResponseWriter, r *http.Request) {
	s.deps.Notifications.ClearAll()
	w.WriteHeader(http.StatusNoContent)
}

// streamNotifications pushes every center change to the browser as JSON.
func (s *Server) streamNotifications(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	events, cancel := s.deps.Notifications.Subscribe()
	defer cancel()

	// the reader only exists to notice the client going away
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-closed:
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		}
	}
}

func (s *Server) getPreview(w http.ResponseWriter, r *http.Request) {
	card, ok := s.deps.Preview.Current()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	lang := s.lang()
	writeJSON(w, card.View(func(key string) string { return s.deps.Translator.T(lang, key) }))
}

func (s *Server) dismissPreview(w http.ResponseWriter, r *http.Request) {
	s.deps.Preview.Dismiss()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) toasts(r *http.Request) (Toasts, bool) {
	page := r.URL.Query().Get("page")
	if page == "" {
		page = "orders"
	}
	t, ok := s.deps.Toasts[page]
	return t, ok
}

func (s *Server) getToast(w http.ResponseWriter, r *http.Request) {
	board, ok := s.toasts(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown page", nil)
		return
	}
	t, ok := board.Current()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, t)
}

func (s *Server) dismissToast(w http.ResponseWriter, r *http.Request) {
	board, ok := s.toasts(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown page", nil)
		return
	}
	board.Dismiss()
	w.WriteHeader(http.StatusNoContent)
}
