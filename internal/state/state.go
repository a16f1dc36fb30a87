// Package state manages the catalog of wellbeing metrics: built-in
// defaults, a curated additional catalog, and the user's own
// categories, merged by name with user entries shadowing defaults.
package state

import (
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	trkerr "github.com/Vinillian/daily-tracker/internal/errors"
	"github.com/Vinillian/daily-tracker/internal/fsjson"
	"github.com/Vinillian/daily-tracker/internal/models"
)

const (
	defaultCategoriesFile    = "state_categories.yaml"
	userCategoriesFile       = "user_state_categories.yaml"
	additionalCategoriesFile = "additional_state_categories.yaml"
)

// catalog is the on-disk shape of every category store.
type catalog struct {
	Categories []models.StateCategory `yaml:"categories"`
}

// Service manages state-category catalogs under a config directory.
type Service struct {
	configDir string
}

// NewService creates a state-category service rooted at configDir,
// seeding the default and additional catalogs on first use.
func NewService(configDir string) (*Service, error) {
	if err := fsjson.EnsureDir(configDir); err != nil {
		return nil, err
	}
	s := &Service{configDir: configDir}
	if err := s.seed(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) path(file string) string {
	return filepath.Join(s.configDir, file)
}

// seed materializes the built-in catalogs to disk if absent. The
// files are configuration, not user data; seeding an existing file
// never overwrites it.
func (s *Service) seed() error {
	if !fsjson.Exists(s.path(defaultCategoriesFile)) {
		if err := s.writeCatalog(defaultCategoriesFile, defaultCategories()); err != nil {
			return err
		}
	}
	if !fsjson.Exists(s.path(additionalCategoriesFile)) {
		if err := s.writeCatalog(additionalCategoriesFile, additionalCategories()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Service) readCatalog(file string) ([]models.StateCategory, error) {
	path := s.path(file)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, trkerr.WrapIO("reading "+path, err)
	}

	var c catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, trkerr.WrapIO("parsing YAML in "+path, err)
	}
	return c.Categories, nil
}

func (s *Service) writeCatalog(file string, categories []models.StateCategory) error {
	path := s.path(file)
	data, err := yaml.Marshal(catalog{Categories: categories})
	if err != nil {
		return trkerr.WrapIO("encoding "+path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return trkerr.WrapIO("writing "+path, err)
	}
	return nil
}

// LoadCategories returns the merged catalog sorted by display order:
// the user's categories plus every default not shadowed by a user
// category of the same name.
func (s *Service) LoadCategories() ([]models.StateCategory, error) {
	user, err := s.readCatalog(userCategoriesFile)
	if err != nil {
		return nil, err
	}
	defaults, err := s.readCatalog(defaultCategoriesFile)
	if err != nil {
		return nil, err
	}

	merged := make([]models.StateCategory, 0, len(user)+len(defaults))
	merged = append(merged, user...)

	seen := make(map[string]bool, len(user))
	for _, c := range user {
		seen[c.Name] = true
	}
	for _, c := range defaults {
		if !seen[c.Name] {
			merged = append(merged, c)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Order < merged[j].Order
	})
	return merged, nil
}

// LoadAdditional returns the curated additional catalog, minus any
// entries already present in the merged catalog.
func (s *Service) LoadAdditional() ([]models.StateCategory, error) {
	additional, err := s.readCatalog(additionalCategoriesFile)
	if err != nil {
		return nil, err
	}
	current, err := s.LoadCategories()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(current))
	for _, c := range current {
		seen[c.Name] = true
	}

	var available []models.StateCategory
	for _, c := range additional {
		if !seen[c.Name] {
			available = append(available, c)
		}
	}
	return available, nil
}

// Add appends a category to the user store. The name must be new
// across both the user and default sets.
func (s *Service) Add(category models.StateCategory) error {
	existing, err := s.LoadCategories()
	if err != nil {
		return err
	}
	for _, c := range existing {
		if c.Name == category.Name {
			return trkerr.Validation("category " + category.Name + " already exists")
		}
	}

	user, err := s.readCatalog(userCategoriesFile)
	if err != nil {
		return err
	}
	return s.writeCatalog(userCategoriesFile, append(user, category))
}

// Update replaces a user-saved category by name. Defaults that have
// not been shadowed into the user store cannot be updated.
func (s *Service) Update(name string, category models.StateCategory) error {
	user, err := s.readCatalog(userCategoriesFile)
	if err != nil {
		return err
	}
	for i := range user {
		if user[i].Name == name {
			user[i] = category
			return s.writeCatalog(userCategoriesFile, user)
		}
	}
	return trkerr.NotFound("category " + name + " not found among user categories")
}

// Delete removes a user category by name. Built-in default categories
// cannot be deleted.
func (s *Service) Delete(name string) error {
	defaults, err := s.readCatalog(defaultCategoriesFile)
	if err != nil {
		return err
	}
	for _, c := range defaults {
		if c.Name == name {
			return trkerr.Validation("category " + name + " is built in and cannot be deleted")
		}
	}

	user, err := s.readCatalog(userCategoriesFile)
	if err != nil {
		return err
	}
	for i := range user {
		if user[i].Name == name {
			return s.writeCatalog(userCategoriesFile, append(user[:i:i], user[i+1:]...))
		}
	}
	return trkerr.NotFound("category " + name + " not found")
}

// Reorder reassigns display orders following the given name sequence.
// Categories not mentioned keep their prior relative order after the
// mentioned ones. The full reordered catalog lands in the user store,
// shadowing the defaults it covers.
func (s *Service) Reorder(names []string) error {
	current, err := s.LoadCategories()
	if err != nil {
		return err
	}

	byName := make(map[string]models.StateCategory, len(current))
	for _, c := range current {
		byName[c.Name] = c
	}

	ordered := make([]models.StateCategory, 0, len(current))
	mentioned := make(map[string]bool, len(names))
	for _, name := range names {
		c, ok := byName[name]
		if !ok {
			return trkerr.NotFound("category " + name + " not found")
		}
		mentioned[name] = true
		ordered = append(ordered, c)
	}
	for _, c := range current {
		if !mentioned[c.Name] {
			ordered = append(ordered, c)
		}
	}

	for i := range ordered {
		ordered[i].Order = i + 1
	}
	return s.writeCatalog(userCategoriesFile, ordered)
}

func defaultCategories() []models.StateCategory {
	return []models.StateCategory{
		{Name: "💪 Энергия", Type: models.ValuePercent, Emoji: "💪", Color: "#FF6B6B", Description: "Уровень физической энергии", Order: 1},
		{Name: "🧠 Фокус", Type: models.ValueScale, Emoji: "🧠", Color: "#4ECDC4", Description: "Способность концентрироваться", Order: 2},
		{Name: "😌 Настроение", Type: models.ValueScale, Emoji: "😌", Color: "#FFD93D", Description: "Эмоциональное состояние", Order: 3},
		{Name: "🛌 Качество сна", Type: models.ValueScale, Emoji: "🛌", Color: "#6C5CE7", Description: "Как вы спали прошлой ночью", Order: 4},
		{Name: "🍽️ Пищеварение", Type: models.ValueText, Emoji: "🍽️", Color: "#00B894", Description: "Состояние пищеварительной системы", Order: 5},
	}
}

func additionalCategories() []models.StateCategory {
	return []models.StateCategory{
		{Name: "💧 Вода", Type: models.ValuePercent, Emoji: "💧", Color: "#74B9FF", Description: "Дневная норма воды", Order: 10},
		{Name: "😤 Стресс", Type: models.ValueScale, Emoji: "😤", Color: "#E17055", Description: "Уровень стресса", Order: 11},
		{Name: "🚶 Активность", Type: models.ValueScale, Emoji: "🚶", Color: "#55EFC4", Description: "Физическая активность за день", Order: 12},
		{Name: "🧘 Медитация", Type: models.ValueYesNo, Emoji: "🧘", Color: "#A29BFE", Description: "Была ли практика сегодня", Order: 13},
		{Name: "📖 Чтение", Type: models.ValueYesNo, Emoji: "📖", Color: "#FAB1A0", Description: "Читали ли сегодня", Order: 14},
		{Name: "🍎 Питание", Type: models.ValueText, Emoji: "🍎", Color: "#81ECEC", Description: "Качество питания", Order: 15},
	}
}

// FormatValue renders a raw input into the stored display string for
// the given value type: percents as "NN%", scales as "N/10", yes/no
// as the checked glyphs, text as-is.
func FormatValue(valueType models.ValueType, raw string) string {
	switch valueType {
	case models.ValuePercent:
		return raw + "%"
	case models.ValueScale:
		return raw + "/10"
	case models.ValueYesNo:
		if raw == "yes" || raw == "да" || raw == "✅ Да" {
			return "✅ Да"
		}
		return "❌ Нет"
	default:
		return raw
	}
}
