package settings

import (
	"encoding/json"
	"errors"
	"fmt"

	"subreddit-tracker/models/entities"
	"subreddit-tracker/utils/databases"

	"gorm.io/gorm"
)

func New(db databases.SqlConnection) *Impl {
	return &Impl{db: db}
}

func (repo *Impl) Names() ([]string, error) {
	var names []string
	if err := repo.load(NamesKey, &names); err != nil {
		return nil, err
	}
	return names, nil
}

func (repo *Impl) SaveNames(names []string) error {
	return repo.save(NamesKey, names)
}

func (repo *Impl) Enabled() ([]bool, error) {
	var flags []bool
	if err := repo.load(EnabledKey, &flags); err != nil {
		return nil, err
	}
	return flags, nil
}

func (repo *Impl) SaveEnabled(flags []bool) error {
	return repo.save(EnabledKey, flags)
}

func (repo *Impl) Count() int64 {
	count := new(int64)
	repo.db.GetDB().Model(&entities.Setting{}).Count(count)

	return *count
}

func (repo *Impl) load(key string, out any) error {
	var setting entities.Setting

	result := repo.db.GetDB().Where("key = ?", key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", ErrNotSeeded, key)
		}
		return fmt.Errorf("failed to read setting %s: %w", key, result.Error)
	}

	if err := json.Unmarshal([]byte(setting.Value), out); err != nil {
		return fmt.Errorf("failed to decode setting %s: %w", key, err)
	}

	return nil
}

func (repo *Impl) save(key string, value any) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s: %w", key, err)
	}

	var existing entities.Setting

	result := repo.db.GetDB().Where("key = ?", key).First(&existing)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			setting := entities.Setting{Key: key, Value: string(encoded)}
			if errCreate := repo.db.GetDB().Create(&setting).Error; errCreate != nil {
				return fmt.Errorf("failed to create setting %s: %w", key, errCreate)
			}
			return nil
		}
		return fmt.Errorf("failed to check setting existence: %w", result.Error)
	}

	if errUpdate := repo.db.GetDB().Model(&existing).Update("value", string(encoded)).Error; errUpdate != nil {
		return fmt.Errorf("failed to update setting %s: %w", key, errUpdate)
	}

	return nil
}
