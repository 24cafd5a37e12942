package utils

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFrom_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_NAME=harapan-test\nPORT=9090\nDB_HOST=db.local\nDB_NAME=harapan\nCORS_ALLOWED_ORIGINS=https://a.example, https://b.example\nTICKET_QR_PREFIX=PHX\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("PORT", "7070")

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "harapan-test", cfg.App.Name)
	assert.Equal(t, "7070", cfg.App.Port, "environment wins over the file")
	assert.Equal(t, "db.local", cfg.Database.Host)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.App.AllowedOrigins)
	assert.Equal(t, "PHX", cfg.Ticket.QRPrefix)
	assert.Equal(t, 24, cfg.Session.ExpiryHours)
	assert.Equal(t, 5, cfg.Ticket.IssueAttempts)
}

func TestLoadConfigFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, []string{"*"}, cfg.App.AllowedOrigins)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestGenerateQRCode(t *testing.T) {
	bookingID := uuid.New()
	pattern := regexp.MustCompile(`^PH-` + bookingID.String() + `-[0-9A-F]{8}$`)

	a := GenerateQRCode("", bookingID)
	b := GenerateQRCode("PH", bookingID)
	assert.Regexp(t, pattern, a)
	assert.Regexp(t, pattern, b)
	assert.NotEqual(t, a, b)

	assert.Len(t, RandomHexSuffix(0), 32)
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("rahasia123", 4)
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia123", hash)
	assert.True(t, CheckPasswordHash("rahasia123", hash))
	assert.False(t, CheckPasswordHash("rahasia124", hash))

	// Out-of-range cost still hashes.
	hash, err = HashPassword("x", 99)
	require.NoError(t, err)
	assert.True(t, CheckPasswordHash("x", hash))
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	type body struct {
		Date     string `json:"rental_date" validate:"required,datetime=2006-01-02"`
		Quantity int    `json:"quantity" validate:"gte=1"`
		Note     string
	}

	errs := ValidateStruct(body{Date: "20/01/2026"})
	require.Len(t, errs, 2)
	assert.Equal(t, "Must be a date in format 2006-01-02", errs["rental_date"])
	assert.Equal(t, "Must be at least 1", errs["quantity"])

	assert.Nil(t, ValidateStruct(body{Date: "2026-01-20", Quantity: 1}))
}

func TestPaginationHelpers(t *testing.T) {
	assert.Equal(t, 3, CalculateTotalPages(21, 10))
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 20, CalculateOffset(3, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
	assert.Equal(t, 7, ParseInt("7", 1))
	assert.Equal(t, 1, ParseInt("-2", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
}
