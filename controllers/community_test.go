package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pictocat/services/community"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestGetCommunityCatalogDatabaseDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	cc := &CommunityController{
		Community: community.NewService(db, nil, nil, nil, zap.NewNop()),
		Log:       zap.NewNop(),
	}
	router := gin.New()
	router.GET("/api/community", cc.GetCommunity)

	mock.ExpectQuery(`SELECT \* FROM "catalog_items"`).
		WillReturnError(errors.New("connection reset by peer"))

	req, _ := http.NewRequest(http.MethodGet, "/api/community?resource=catalog", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, w.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCommunityNeedsViewer(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cc := &CommunityController{Log: zap.NewNop()}
	router := gin.New()
	router.GET("/api/community", cc.GetCommunity)

	req, _ := http.NewRequest(http.MethodGet, "/api/community?resource=feed", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
