package store

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Generation statuses.
const (
	StatusOK       = "ok"       // article and PDF both produced
	StatusDegraded = "degraded" // article produced, PDF failed
	StatusFailed   = "failed"   // upstream generation failed
)

// Generation is one generate request and its outcome. Artifacts on disk stay
// the source of truth; this table is a history ledger and is never used to
// rebuild a PDF.
type Generation struct {
	ID        string         `json:"id" gorm:"primaryKey"`
	Topic     string         `json:"topic"`
	Title     string         `json:"title"`
	Article   string         `json:"article"`
	PDFPath   string         `json:"pdf_path"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

var DB *gorm.DB

func Init(path string) error {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(&Generation{}); err != nil {
		return err
	}
	DB = db
	log.Printf("[Store] database ready at %s", path)
	return nil
}

// Save inserts a generation record, assigning an ID when missing.
func (g *Generation) Save() error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	return DB.Create(g).Error
}

// List returns the most recent generations, newest first.
func List(limit int) ([]Generation, error) {
	if limit <= 0 {
		limit = 50
	}
	var gens []Generation
	err := DB.Order("created_at desc").Limit(limit).Find(&gens).Error
	return gens, err
}

// Get looks up one generation by ID.
func Get(id string) (*Generation, error) {
	var g Generation
	if err := DB.First(&g, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}
