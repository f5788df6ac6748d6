package database

import (
	"context"
	"io"
	"testing"

	"coursehub/config"
	"coursehub/models"
	"coursehub/models/course"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(sqlite.Open("file:" + t.Name() + "?mode=memory&cache=shared"))
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func TestDialector(t *testing.T) {
	for _, driver := range []string{"postgres", "mysql", "sqlite"} {
		d, err := Dialector(&config.Config{DBDriver: driver, DBName: "coursehub"})
		require.NoError(t, err, driver)
		assert.NotNil(t, d, driver)
	}

	_, err := Dialector(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestSeedData_FillsEmptyCatalogOnce(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	require.NoError(t, SeedData(ctx, db, bcrypt.MinCost, quietLogger()))

	var courses, categories, users, sections int64
	db.Model(&course.Course{}).Count(&courses)
	db.Model(&course.Category{}).Count(&categories)
	db.Model(&models.User{}).Count(&users)
	db.Model(&course.CourseSection{}).Count(&sections)

	assert.EqualValues(t, 15, courses)
	assert.EqualValues(t, 5, categories)
	assert.EqualValues(t, 1, users)
	assert.EqualValues(t, 45, sections)

	require.NoError(t, SeedData(ctx, db, bcrypt.MinCost, quietLogger()))

	var again int64
	db.Model(&course.Course{}).Count(&again)
	assert.Equal(t, courses, again)
}
