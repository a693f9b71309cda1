package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("DATABASE_URL", "mongodb://localhost:27017")
	t.Setenv("DATABASE_NAME", "campus")

	conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", conf.Mongo.URL)
	assert.Equal(t, "campus", conf.Mongo.Database)
	assert.Equal(t, "local", conf.Env)
	assert.Equal(t, "8000", conf.Listen.Port)
	assert.Equal(t, []string{"*"}, conf.Listen.Origins)
	assert.Equal(t, "admin@college.edu", conf.Admin.Email)
	assert.Equal(t, "Learn. Grow. Lead.", conf.College.Tagline)
	assert.Equal(t, "Mon-Fri 9:00 AM - 5:00 PM", conf.College.OfficeHours)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	data := []byte(`env: prod
mongo:
  url: mongodb://db:27017
  database: college_prod
listen:
  port: "9200"
college:
  name: Hillside College
  mission: Justice and healing.
  office_hours: Mon-Thu 8:00 AM - 4:00 PM
  programs: [Law, Medicine]
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "prod", conf.Env)
	assert.Equal(t, "college_prod", conf.Mongo.Database)
	assert.Equal(t, "9200", conf.Listen.Port)
	assert.Equal(t, "Hillside College", conf.College.Name)
	assert.Equal(t, []string{"Law", "Medicine"}, conf.College.Programs)
	assert.Equal(t, "Justice and healing.", conf.College.Mission)
	assert.Equal(t, "Mon-Thu 8:00 AM - 4:00 PM", conf.College.OfficeHours)
	assert.Equal(t, 5, conf.Mongo.Timeout)
}
