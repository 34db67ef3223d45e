package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/minsung-kang/dalcal/internal/backup"
	"github.com/minsung-kang/dalcal/internal/config"
	"github.com/minsung-kang/dalcal/internal/controller"
	"github.com/minsung-kang/dalcal/internal/handler"
	"github.com/minsung-kang/dalcal/internal/middleware"
	"github.com/minsung-kang/dalcal/internal/notify"
	"github.com/minsung-kang/dalcal/internal/store"
	ws "github.com/minsung-kang/dalcal/internal/websocket"
)

type Server struct {
	db            *sql.DB
	cfg           *config.Config
	hub           *ws.Hub
	eventH        *handler.EventHandler
	calendarH     *handler.CalendarHandler
	exportH       *handler.ExportHandler
	backupH       *handler.BackupHandler
	pushH         *handler.PushHandler
	pushStore     *store.PushStore
	rateLimiter   *middleware.RateLimiter
	backupManager *backup.Manager
	pushScheduler *notify.Scheduler
	logger        *slog.Logger
}

func New(db *sql.DB, cfg *config.Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	blobStore := store.NewBlobStore(db)
	pushStore := store.NewPushStore(db)

	// Push notification service + alert scheduler. Without VAPID keys the
	// event store falls back to a no-op notifier.
	var notifier store.Notifier = store.NopNotifier{}
	var pushSvc *notify.Service
	var pushSched *notify.Scheduler
	var pushH *handler.PushHandler
	if cfg.Push.VAPIDPublicKey != "" && cfg.Push.VAPIDPrivateKey != "" {
		pushSvc = notify.NewService(cfg.Push.VAPIDPublicKey, cfg.Push.VAPIDPrivateKey)
		pushSched = notify.NewScheduler(pushSvc, pushStore, logger.With("component", "scheduler"))
		pushH = handler.NewPushHandler(pushStore, pushSvc, logger.With("component", "push"))
		notifier = pushSched
	}

	eventStore := store.NewEventStore(blobStore, notifier, logger.With("component", "events"))
	cal := controller.New(eventStore)

	backupMgr := backup.NewManager(cfg.Backup, cfg.DBPath, db, logger.With("component", "backup"))

	return &Server{
		db:            db,
		cfg:           cfg,
		hub:           hub,
		eventH:        handler.NewEventHandler(eventStore, hub, logger.With("component", "events")),
		calendarH:     handler.NewCalendarHandler(cal, logger.With("component", "calendar")),
		exportH:       handler.NewExportHandler(eventStore, logger.With("component", "export")),
		backupH:       handler.NewBackupHandler(backupMgr, logger.With("component", "backup")),
		pushH:         pushH,
		pushStore:     pushStore,
		rateLimiter:   middleware.NewRateLimiter(),
		backupManager: backupMgr,
		pushScheduler: pushSched,
		logger:        logger,
	}
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

// BackupManager returns the backup manager.
func (s *Server) BackupManager() *backup.Manager {
	return s.backupManager
}

// PushScheduler returns the alert scheduler, nil when push is not configured.
func (s *Server) PushScheduler() *notify.Scheduler {
	return s.pushScheduler
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.healthHandler)

	// Event API routes
	mux.HandleFunc("POST /api/events", s.eventH.Create)
	mux.HandleFunc("GET /api/events", s.eventH.List)
	mux.HandleFunc("GET /api/events/{id}", s.eventH.Get)
	mux.HandleFunc("PUT /api/events/{id}", s.eventH.Update)
	mux.HandleFunc("DELETE /api/events/{id}", s.eventH.Delete)

	// Calendar view routes
	mux.HandleFunc("GET /api/calendar/month", s.calendarH.Month)
	mux.HandleFunc("GET /api/calendar/week", s.calendarH.Week)
	mux.HandleFunc("POST /api/calendar/next", s.calendarH.Next)
	mux.HandleFunc("POST /api/calendar/previous", s.calendarH.Previous)
	mux.HandleFunc("POST /api/calendar/today", s.calendarH.Today)
	mux.HandleFunc("POST /api/calendar/select", s.calendarH.Select)
	mux.HandleFunc("POST /api/calendar/mode", s.calendarH.Mode)
	mux.HandleFunc("POST /api/deeplink", s.calendarH.DeepLink)

	// ICS export
	mux.HandleFunc("GET /api/export.ics", s.exportH.ICS)

	// Backup routes
	mux.HandleFunc("GET /api/backup/status", s.backupH.Status)
	mux.HandleFunc("POST /api/backup/run", s.backupH.Run)
	mux.HandleFunc("GET /api/backup/list", s.backupH.List)
	mux.HandleFunc("POST /api/backup/restore", s.backupH.Restore)

	// Push notification routes
	if s.pushH != nil {
		mux.HandleFunc("POST /api/push/subscribe", s.pushH.Subscribe)
		mux.HandleFunc("DELETE /api/push/subscriptions/{id}", s.pushH.Unsubscribe)
		mux.HandleFunc("GET /api/push/subscriptions", s.pushH.Subscriptions)
		mux.HandleFunc("GET /api/push/vapid-key", s.pushH.VAPIDKey)
	}

	// WebSocket
	mux.HandleFunc("GET /ws", ws.Handle(s.hub, s.logger.With("component", "websocket")))

	authMiddleware := middleware.BasicAuth(s.cfg.BasicAuth, s.rateLimiter)
	return middleware.RequestLogger(s.logger.With("component", "http"))(authMiddleware(mux))
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
