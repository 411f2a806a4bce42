package main

import (
	"fmt"
	"log"
	"os"

	"schedulehq-backend/internal/config"
	"schedulehq-backend/internal/database"
	"schedulehq-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// Simple structures that directly match the seed file schema
type ShiftTypeData struct {
	Key          string `yaml:"key"`
	Label        string `yaml:"label"`
	DefaultStart string `yaml:"default_start"`
	DefaultEnd   string `yaml:"default_end"`
	WindowStart  string `yaml:"window_start"`
	WindowEnd    string `yaml:"window_end"`
	Position     int    `yaml:"position"`
}

type EmployeeData struct {
	DisplayName string `yaml:"display_name"`
	Email       string `yaml:"email"`
	Position    string `yaml:"position"`
}

type TemplateEntryData struct {
	Weekday   int    `yaml:"weekday"`
	DayOff    bool   `yaml:"day_off"`
	StartTime string `yaml:"start_time"`
	EndTime   string `yaml:"end_time"`
}

type TemplateData struct {
	Employee string              `yaml:"employee"`
	Entries  []TemplateEntryData `yaml:"entries"`
}

type SeedFile struct {
	ShiftTypes []ShiftTypeData `yaml:"shift_types"`
	Employees  []EmployeeData  `yaml:"employees"`
	Templates  []TemplateData  `yaml:"templates"`
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var db *gorm.DB
	switch cfg.DatabaseDriver {
	case "sqlite":
		db, err = database.InitializeSQLite(cfg.SQLitePath, nil)
	default:
		db, err = database.Initialize(cfg.DatabaseURL, nil)
	}
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	seedPath := cfg.SeedFile
	if len(os.Args) > 1 {
		seedPath = os.Args[1]
	}

	seed, err := readSeedFile(seedPath)
	if err != nil {
		log.Fatalf("failed to read seed file: %v", err)
	}

	if err := loadSeed(db, seed); err != nil {
		log.Fatalf("failed to load seed data: %v", err)
	}

	log.Printf("Seed data loaded from %s: %d shift types, %d employees, %d templates",
		seedPath, len(seed.ShiftTypes), len(seed.Employees), len(seed.Templates))
}

func readSeedFile(path string) (*SeedFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var seed SeedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &seed, nil
}

func loadSeed(db *gorm.DB, seed *SeedFile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, st := range seed.ShiftTypes {
			shiftType := models.ShiftType{
				Key:          st.Key,
				Label:        st.Label,
				DefaultStart: st.DefaultStart,
				DefaultEnd:   st.DefaultEnd,
				WindowStart:  st.WindowStart,
				WindowEnd:    st.WindowEnd,
				Position:     st.Position,
			}
			if err := tx.Where("key = ?", st.Key).FirstOrCreate(&shiftType).Error; err != nil {
				return fmt.Errorf("shift type %s: %w", st.Key, err)
			}
		}

		byName := make(map[string]models.Employee, len(seed.Employees))
		for _, e := range seed.Employees {
			employee := models.Employee{
				DisplayName: e.DisplayName,
				Email:       e.Email,
				Position:    e.Position,
				Active:      true,
			}
			if err := tx.Where("display_name = ?", e.DisplayName).FirstOrCreate(&employee).Error; err != nil {
				return fmt.Errorf("employee %s: %w", e.DisplayName, err)
			}
			byName[e.DisplayName] = employee
		}

		for _, t := range seed.Templates {
			employee, ok := byName[t.Employee]
			if !ok {
				return fmt.Errorf("template references unknown employee %q", t.Employee)
			}
			for _, entry := range t.Entries {
				templateEntry := models.WeeklyTemplateEntry{
					EmployeeID: employee.ID,
					Weekday:    entry.Weekday,
					DayOff:     entry.DayOff,
					StartTime:  entry.StartTime,
					EndTime:    entry.EndTime,
				}
				if err := tx.Where("employee_id = ? AND weekday = ?", employee.ID, entry.Weekday).
					FirstOrCreate(&templateEntry).Error; err != nil {
					return fmt.Errorf("template for %s weekday %d: %w", t.Employee, entry.Weekday, err)
				}
			}
		}

		return nil
	})
}
