// dalcal-widget prints the home-screen widget content for a given day: the
// week strip and that day's events. It opens the database read-only so it
// works alongside a running server, and tolerates a missing database.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/minsung-kang/dalcal/internal/database"
	"github.com/minsung-kang/dalcal/internal/grid"
	"github.com/minsung-kang/dalcal/internal/holiday"
	"github.com/minsung-kang/dalcal/internal/logging"
	"github.com/minsung-kang/dalcal/internal/store"
	"github.com/minsung-kang/dalcal/internal/widget"
)

func main() {
	dbPath := flag.String("db", "dalcal.db", "path to the calendar database")
	dateArg := flag.String("date", "", "day to render (YYYY-MM-DD, default today)")
	flag.Parse()

	logger := logging.Setup("warn")

	day := time.Now()
	if *dateArg != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *dateArg, time.Local)
		if err != nil {
			log.Fatalf("invalid -date: %v", err)
		}
		day = parsed
	}

	reader := widget.NewReader(openBlob(*dbPath, logger), logger)

	fmt.Println(day.Format("2006-01-02 Mon"))
	if name, ok := holiday.Lookup(day); ok {
		fmt.Printf("  %s\n", name)
	}

	for _, d := range reader.WeekDays(day) {
		marker := " "
		if grid.SameDay(d, day) {
			marker = "*"
		}
		fmt.Printf("%s%2d ", marker, d.Day())
	}
	fmt.Println()

	events := reader.EventsOn(day)
	if len(events) == 0 {
		fmt.Println("일정 없음")
		return
	}
	for _, e := range events {
		fmt.Printf("%s  %s\n", e.Timestamp.Format("15:04"), e.Title)
	}
}

// openBlob opens the database read-only. A missing or unreadable database
// yields an empty blob so the widget still renders.
func openBlob(path string, logger *slog.Logger) store.Blob {
	if _, err := os.Stat(path); err != nil {
		logger.Warn("database not found", "path", path)
		return emptyBlob{}
	}
	db, err := database.OpenReadOnly(path)
	if err != nil {
		logger.Warn("open database", "path", path, "error", err)
		return emptyBlob{}
	}
	return store.NewBlobStore(db)
}

type emptyBlob struct{}

func (emptyBlob) Load(string) ([]byte, error) { return nil, nil }
func (emptyBlob) Save(string, []byte) error   { return nil }
